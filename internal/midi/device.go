package midi

import "gitlab.com/gomidi/midi/v2"

// Device is a grid controller that can act as a button matrix and show
// per-pad feedback
type Device interface {
	// ActivateProgrammerMode puts the device into a mode where the host owns the LEDs
	ActivateProgrammerMode(send func(midi.Message) error) error

	// SetPadColor lights a single pad
	SetPadColor(send func(midi.Message) error, row, col int, color PadColor) error

	// ClearAllPads turns every pad off
	ClearAllPads(send func(midi.Message) error) error

	// HandleMessage decodes a pad press or release. handled is false for
	// messages that do not belong to a pad.
	HandleMessage(msg midi.Message) (row, col int, pressed bool, handled bool)
}
