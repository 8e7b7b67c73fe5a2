package config

import "fmt"

// Block identifies a group of settings in the database
type Block int

const (
	BlockMIDI Block = iota
	BlockButton
	BlockEncoder
	BlockAnalog
	BlockLED
)

// Section identifies a setting within a block
type Section int

// Button block sections
const (
	SectionButtonType Section = iota
	SectionButtonMessageType
	SectionButtonMIDIID
)

// MIDI block sections
const (
	SectionMIDIFeature Section = iota
	SectionMIDIChannel
)

// Encoder block sections
const (
	SectionEncoderEnabled Section = iota
)

// Indices within SectionMIDIChannel
const (
	ChannelNote = iota
	ChannelProgramChange
	ChannelCC
)

// Indices within SectionMIDIFeature
const (
	FeatureDiagnostics = iota
)

// ButtonMode selects how a control reacts to presses
type ButtonMode int

const (
	ModeMomentary ButtonMode = iota
	ModeLatching
)

func (m ButtonMode) String() string {
	switch m {
	case ModeMomentary:
		return "momentary"
	case ModeLatching:
		return "latching"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func (m ButtonMode) MarshalText() ([]byte, error) {
	switch m {
	case ModeMomentary, ModeLatching:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("unknown button mode: %d", int(m))
}

func (m *ButtonMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "momentary", "":
		*m = ModeMomentary
	case "latching":
		*m = ModeLatching
	default:
		return fmt.Errorf("unknown button mode: %q", text)
	}
	return nil
}

// MessageType selects which MIDI message a control sends
type MessageType int

const (
	MessageNote MessageType = iota
	MessageProgramChange
	MessageControlChange
)

func (t MessageType) String() string {
	switch t {
	case MessageNote:
		return "note"
	case MessageProgramChange:
		return "program_change"
	case MessageControlChange:
		return "cc"
	}
	return fmt.Sprintf("message(%d)", int(t))
}

func (t MessageType) MarshalText() ([]byte, error) {
	switch t {
	case MessageNote, MessageProgramChange, MessageControlChange:
		return []byte(t.String()), nil
	}
	return nil, fmt.Errorf("unknown message type: %d", int(t))
}

func (t *MessageType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "note", "":
		*t = MessageNote
	case "program_change", "pc":
		*t = MessageProgramChange
	case "cc":
		*t = MessageControlChange
	default:
		return fmt.Errorf("unknown message type: %q", text)
	}
	return nil
}

// BoardKind selects the hardware backend
type BoardKind string

const (
	BoardSim  BoardKind = "sim"  // in-memory lines
	BoardGPIO BoardKind = "gpio" // Raspberry Pi pins
	BoardGrid BoardKind = "grid" // MIDI pad controller used as a button matrix
)
