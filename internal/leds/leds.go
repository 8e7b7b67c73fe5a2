// Package leds keeps note-level indicator state and mirrors it onto the
// pads of a grid controller.
package leds

import (
	"sync"

	log "github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"

	"github.com/PixPMusic/gopher-deck/internal/bitset"
	internalmidi "github.com/PixPMusic/gopher-deck/internal/midi"
)

const noteCount = 128

// Colors used for lit and dark pads
var (
	OnColor  = internalmidi.PadColor{R: 0, G: 127, B: 40}
	OffColor = internalmidi.PadColor{}
)

// Tracker records which notes are on. Safe for concurrent use.
type Tracker struct {
	mu         sync.RWMutex
	on         *bitset.Bitset
	velocities [noteCount]uint8

	device internalmidi.Device
	send   func(midi.Message) error
}

// NewTracker returns a tracker with every note off
func NewTracker() *Tracker {
	return &Tracker{on: bitset.New(noteCount)}
}

// Mirror shows note n on pad n of device. A nil device stops mirroring.
func (t *Tracker) Mirror(device internalmidi.Device, send func(midi.Message) error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.device = device
	t.send = send
}

// SetNoteState records the state of a note
func (t *Tracker) SetNoteState(note, velocity uint8, on bool) {
	note &= 0x7F

	t.mu.Lock()
	t.on.Set(int(note), on)
	t.velocities[note] = velocity
	device, send := t.device, t.send
	t.mu.Unlock()

	if device == nil || send == nil {
		return
	}

	row, col := internalmidi.PadPosition(int(note))
	if row >= internalmidi.GridRows {
		return
	}

	color := OffColor
	if on {
		color = scale(OnColor, velocity)
	}
	if err := device.SetPadColor(send, row, col, color); err != nil {
		log.WithError(err).WithField("note", note).Warn("pad feedback failed")
	}
}

// NoteOn reports whether a note is on
func (t *Tracker) NoteOn(note uint8) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.on.Get(int(note & 0x7F))
}

// Velocity returns the velocity last recorded for a note
func (t *Tracker) Velocity(note uint8) uint8 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.velocities[note&0x7F]
}

// Active returns the notes that are on, in ascending order
func (t *Tracker) Active() []uint8 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var notes []uint8
	for n := 0; n < noteCount; n++ {
		if t.on.Get(n) {
			notes = append(notes, uint8(n))
		}
	}
	return notes
}

// scale dims color by velocity, keeping any non-zero channel lit
func scale(c internalmidi.PadColor, velocity uint8) internalmidi.PadColor {
	f := func(v uint8) uint8 {
		if v == 0 {
			return 0
		}
		s := uint16(v) * uint16(velocity&0x7F) / 127
		if s == 0 {
			s = 1
		}
		return uint8(s)
	}
	return internalmidi.PadColor{R: f(c.R), G: f(c.G), B: f(c.B)}
}
