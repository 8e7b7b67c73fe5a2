package buttons

import "github.com/PixPMusic/gopher-deck/internal/config"

// Store is the read side of the settings database
type Store interface {
	Read(block config.Block, section config.Section, index int) int
}

// Board reports raw button levels from the hardware scanner
type Board interface {
	// Count is the number of button lines on the board
	Count() int

	// DataAvailable reports whether a new scan has completed since the last call
	DataAvailable() bool

	// RawState returns the undebounced level of a line, true = pressed
	RawState(id int) bool

	// EncoderPair returns the encoder index that may claim the line
	EncoderPair(id int) int
}

// Transport sends MIDI messages. Channels are 1-16.
type Transport interface {
	SendNoteOn(note, velocity, channel uint8)
	SendNoteOff(note, velocity, channel uint8)
	SendControlChange(controller, value, channel uint8)
	SendProgramChange(program, channel uint8)
}

// NoteState receives note-level state for indicators
type NoteState interface {
	SetNoteState(note, velocity uint8, on bool)
}

// Responder frames and sends diagnostic responses
type Responder interface {
	Enabled() bool
	StartResponse()
	AddToResponse(b uint8)
	SendResponse()
}

// Clock is a wrapping millisecond counter
type Clock interface {
	Millis() uint32
}
