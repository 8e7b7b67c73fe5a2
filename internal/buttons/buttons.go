// Package buttons turns polled button levels into MIDI events.
//
// Each call to Update runs one scan to completion: every line is debounced,
// stable samples drive the momentary or latching state machine, emitted
// messages go to the Transport and the previous level of the line is kept
// for latching edge detection. Buttons is not safe for concurrent use.
package buttons

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/PixPMusic/gopher-deck/internal/bitset"
	"github.com/PixPMusic/gopher-deck/internal/clock"
	"github.com/PixPMusic/gopher-deck/internal/config"
)

const (
	VelocityOn  uint8 = 127
	VelocityOff uint8 = 0
)

// ErrControlOutOfRange is returned for ids outside the board
var ErrControlOutOfRange = errors.New("control id out of range")

// Deps are the collaborators of a Buttons instance. Store, Board and
// Transport are required.
type Deps struct {
	Store       Store
	Board       Board
	Transport   Transport
	NoteState   NoteState // optional
	Diagnostics Responder // optional
	Clock       Clock     // defaults to a monotonic clock
}

// Buttons processes the button lines of one board
type Buttons struct {
	store     Store
	board     Board
	transport Transport
	noteState NoteState
	reporter  *Reporter

	count     int
	pressed   *bitset.Bitset
	previous  *bitset.Bitset
	debouncer *Debouncer
}

// New returns a Buttons with all lines released
func New(d Deps) *Buttons {
	clk := d.Clock
	if clk == nil {
		clk = clock.NewMonotonic()
	}

	count := d.Board.Count()

	return &Buttons{
		store:     d.Store,
		board:     d.Board,
		transport: d.Transport,
		noteState: d.NoteState,
		reporter:  NewReporter(d.Diagnostics, clk),
		count:     count,
		pressed:   bitset.New(count),
		previous:  bitset.New(count),
		debouncer: NewDebouncer(count),
	}
}

// Count returns the number of lines handled
func (b *Buttons) Count() int {
	return b.count
}

// Pressed reports whether a control is logically pressed or latched on
func (b *Buttons) Pressed(id int) bool {
	return b.pressed.Get(id)
}

// Update runs one scan. Nothing happens if the board has no new data.
func (b *Buttons) Update() {
	if !b.board.DataAvailable() {
		return
	}

	for id := 0; id < b.count; id++ {
		var state bool

		pair := b.board.EncoderPair(id)
		if b.store.Read(config.BlockEncoder, config.SectionEncoderEnabled, pair) != 0 {
			// line belongs to an enabled encoder, always released
			state = false
		} else {
			state = b.board.RawState(id)
		}

		b.process(id, state, true)
	}
}

// Process feeds a single sample for a control. With debounce false the
// sample is taken as stable, which suits synthetic presses.
func (b *Buttons) Process(id int, state bool, debounce bool) error {
	if id < 0 || id >= b.count {
		return fmt.Errorf("%w: %d", ErrControlOutOfRange, id)
	}
	b.process(id, state, debounce)
	return nil
}

func (b *Buttons) process(id int, state bool, debounce bool) {
	if debounce && !b.debouncer.Sample(id, state) {
		return
	}

	mode := config.ButtonMode(b.store.Read(config.BlockButton, config.SectionButtonType, id))
	msg := config.MessageType(b.store.Read(config.BlockButton, config.SectionButtonMessageType, id))

	pressed, action := Step(mode, msg, b.pressed.Get(id), state, b.previous.Get(id))
	b.pressed.Set(id, pressed)

	if action != ActionNone {
		latching := mode == config.ModeLatching && msg != config.MessageProgramChange
		if b.emit(id, msg, action, latching) {
			b.reporter.Report(config.BlockButton, id)
		}
	}

	if b.previous.Get(id) != state {
		b.previous.Set(id, state)
	}
}

// emit sends the message for action and reports whether anything was sent
func (b *Buttons) emit(id int, msg config.MessageType, action Action, latching bool) bool {
	value := uint8(b.store.Read(config.BlockButton, config.SectionButtonMIDIID, id))
	press := action == ActionPress

	velocity := VelocityOff
	if press {
		velocity = VelocityOn
	}

	switch msg {
	case config.MessageNote:
		ch := b.channel(config.ChannelNote)
		if press {
			b.transport.SendNoteOn(value, velocity, ch)
		} else {
			b.transport.SendNoteOff(value, velocity, ch)
		}
		b.setNoteState(value, velocity, press)

	case config.MessageControlChange:
		b.transport.SendControlChange(value, velocity, b.channel(config.ChannelCC))
		if latching {
			b.setNoteState(value, velocity, press)
		}

	case config.MessageProgramChange:
		if !press {
			return false
		}
		b.transport.SendProgramChange(value, b.channel(config.ChannelProgramChange))

	default:
		return false
	}

	log.WithFields(log.Fields{
		"id":      id,
		"action":  action,
		"message": msg,
		"value":   value,
	}).Debug("button event")

	return true
}

func (b *Buttons) channel(index int) uint8 {
	return uint8(b.store.Read(config.BlockMIDI, config.SectionMIDIChannel, index))
}

func (b *Buttons) setNoteState(note, velocity uint8, on bool) {
	if b.noteState != nil {
		b.noteState.SetNoteState(note, velocity, on)
	}
}
