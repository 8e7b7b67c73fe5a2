package midi

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
)

// ClassicDevice implements Device for the Launchpad S.
//
// Row 0 is the CC row (104-111, no pad at column 8). Rows 1-8 are notes,
// sixteen apart per row, with the scene column at col 8.
type ClassicDevice struct{}

const (
	classicTopCC    = 104
	classicFlags    = 0x0C // copy + clear bits
	classicOffLevel = 5
)

func (d *ClassicDevice) ActivateProgrammerMode(send func(midi.Message) error) error {
	// B0 00 00 resets the device
	if err := send(midi.ControlChange(0, 0, 0)); err != nil {
		return fmt.Errorf("failed to reset Launchpad S: %w", err)
	}
	return nil
}

// padAddress returns the note or CC number of a pad
func (d *ClassicDevice) padAddress(row, col int) (number uint8, isCC bool, ok bool) {
	if row < 0 || row >= GridRows || col < 0 || col >= GridCols {
		return 0, false, false
	}
	if row == 0 {
		if col == 8 {
			return 0, false, false
		}
		return uint8(classicTopCC + col), true, true
	}
	return uint8((row-1)*16 + col), false, true
}

// velocity packs a color into the Launchpad S format: GG CC RR with two
// bits of green, the flag bits and two bits of red. Blue is folded into
// both.
func (d *ClassicDevice) velocity(color PadColor) uint8 {
	if color.R < classicOffLevel && color.G < classicOffLevel && color.B < classicOffLevel {
		return classicFlags
	}

	r := min(int(color.R)+int(color.B)/4, 127)
	g := min(int(color.G)+(int(color.B)*3)/4, 127)

	return (level4(uint8(g)) << 4) | classicFlags | level4(uint8(r))
}

func (d *ClassicDevice) SetPadColor(send func(midi.Message) error, row, col int, color PadColor) error {
	number, isCC, ok := d.padAddress(row, col)
	if !ok {
		return nil
	}

	v := d.velocity(color)
	if isCC {
		return send(midi.ControlChange(0, number, v))
	}
	return send(midi.NoteOn(0, number, v))
}

func (d *ClassicDevice) ClearAllPads(send func(midi.Message) error) error {
	return send(midi.ControlChange(0, 0, 0))
}

func (d *ClassicDevice) HandleMessage(msg midi.Message) (row, col int, pressed bool, handled bool) {
	var channel, key, velocity uint8

	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		row, col, handled = d.noteToGrid(key)
		return row, col, velocity > 0, handled

	case msg.GetNoteOff(&channel, &key, &velocity):
		row, col, handled = d.noteToGrid(key)
		return row, col, false, handled

	case msg.GetControlChange(&channel, &key, &velocity):
		if key >= classicTopCC && key < classicTopCC+8 {
			return 0, int(key - classicTopCC), velocity > 0, true
		}
	}

	return 0, 0, false, false
}

func (d *ClassicDevice) noteToGrid(note uint8) (int, int, bool) {
	row := int(note/16) + 1
	col := int(note % 16)
	if row >= 1 && row < GridRows && col < GridCols {
		return row, col, true
	}
	return 0, 0, false
}

// level4 maps 0-127 onto the four brightness steps of the Launchpad S
func level4(value uint8) uint8 {
	switch {
	case value < 32:
		return 0
	case value < 64:
		return 1
	case value < 96:
		return 2
	}
	return 3
}
