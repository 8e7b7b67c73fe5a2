package midi

import "gitlab.com/gomidi/midi/v2"

// GenericDevice treats any note controller as a button matrix: note n is
// button n. It has no LEDs.
type GenericDevice struct{}

func (d *GenericDevice) ActivateProgrammerMode(send func(midi.Message) error) error {
	return nil
}

func (d *GenericDevice) SetPadColor(send func(midi.Message) error, row, col int, color PadColor) error {
	return nil
}

func (d *GenericDevice) ClearAllPads(send func(midi.Message) error) error {
	return nil
}

func (d *GenericDevice) HandleMessage(msg midi.Message) (row, col int, pressed bool, handled bool) {
	var channel, key, velocity uint8

	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		pressed = velocity > 0
	case msg.GetNoteOff(&channel, &key, &velocity):
		pressed = false
	default:
		return 0, 0, false, false
	}

	if int(key) >= GridRows*GridCols {
		return 0, 0, false, false
	}
	row, col = PadPosition(int(key))
	return row, col, pressed, true
}
