package midi

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
)

// ColorfulDevice implements Device for the Launchpad Mini Mk3 in
// programmer mode. LED indices run from 11 (bottom left) to 99 (top right):
// index = (8-row)*10 + col + 11.
type ColorfulDevice struct{}

// Novation header followed by the Mini Mk3 model byte
var miniMk3Header = []byte{0x00, 0x20, 0x29, 0x02, 0x0D}

const (
	miniMk3Programmer = 0x0E
	miniMk3LEDs       = 0x03
	miniMk3RGB        = 0x03
	miniMk3Static     = 0x00
)

func (d *ColorfulDevice) sysex(body ...byte) midi.Message {
	data := make([]byte, 0, len(miniMk3Header)+len(body))
	data = append(data, miniMk3Header...)
	data = append(data, body...)
	return midi.SysEx(data)
}

func (d *ColorfulDevice) ActivateProgrammerMode(send func(midi.Message) error) error {
	if err := send(d.sysex(miniMk3Programmer, 0x01)); err != nil {
		return fmt.Errorf("failed to send programmer mode message: %w", err)
	}
	return nil
}

func (d *ColorfulDevice) SetPadColor(send func(midi.Message) error, row, col int, color PadColor) error {
	if row < 0 || row >= GridRows || col < 0 || col >= GridCols {
		return nil
	}
	led := uint8((8-row)*10 + col + 11)

	return send(d.sysex(miniMk3LEDs, miniMk3RGB, led,
		gamma(color.R)&0x7F,
		gamma(color.G)&0x7F,
		gamma(color.B)&0x7F,
	))
}

func (d *ColorfulDevice) ClearAllPads(send func(midi.Message) error) error {
	body := []byte{miniMk3LEDs}
	for i := 11; i <= 99; i++ {
		if i%10 != 0 {
			body = append(body, miniMk3Static, uint8(i), 0x00)
		}
	}
	return send(d.sysex(body...))
}

func (d *ColorfulDevice) HandleMessage(msg midi.Message) (row, col int, pressed bool, handled bool) {
	var channel, key, velocity uint8

	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		row, col, handled = d.noteToGrid(key)
		return row, col, velocity > 0, handled

	case msg.GetNoteOff(&channel, &key, &velocity):
		row, col, handled = d.noteToGrid(key)
		return row, col, false, handled

	case msg.GetControlChange(&channel, &key, &velocity):
		switch {
		case key >= 91 && key <= 98:
			// top row
			return 0, int(key - 91), velocity > 0, true
		case key%10 == 9 && key >= 19 && key <= 89:
			// scene column, 89 is row 1
			return 8 - int((key-19)/10), 8, velocity > 0, true
		}
	}

	return 0, 0, false, false
}

func (d *ColorfulDevice) noteToGrid(note uint8) (int, int, bool) {
	if note < 11 || note > 99 {
		return 0, 0, false
	}
	row := 8 - int((note-11)/10)
	col := int((note - 11) % 10)
	if col >= GridCols {
		return 0, 0, false
	}
	return row, col, true
}

// gamma squares the channel value so mid-range colors stay distinct on the
// Mini Mk3 LEDs
func gamma(value uint8) uint8 {
	if value == 0 {
		return 0
	}
	f := float64(value) / 127.0
	scaled := f * f * 127.0
	if scaled < 1 {
		scaled = 1
	}
	return uint8(scaled)
}
