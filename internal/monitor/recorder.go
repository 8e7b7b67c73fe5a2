package monitor

import (
	"fmt"

	"github.com/PixPMusic/gopher-deck/internal/buttons"
)

// Recorder keeps the most recent outgoing messages for display and passes
// every message on to next
type Recorder struct {
	next  buttons.Transport
	max   int
	lines []string
}

// NewRecorder returns a recorder holding up to max lines. next may be nil.
func NewRecorder(next buttons.Transport, max int) *Recorder {
	if max <= 0 {
		max = 1
	}
	return &Recorder{next: next, max: max}
}

func (r *Recorder) add(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
	if len(r.lines) > r.max {
		r.lines = r.lines[len(r.lines)-r.max:]
	}
}

func (r *Recorder) SendNoteOn(note, velocity, channel uint8) {
	r.add("ch%-2d note on   %3d vel %3d", channel, note, velocity)
	if r.next != nil {
		r.next.SendNoteOn(note, velocity, channel)
	}
}

func (r *Recorder) SendNoteOff(note, velocity, channel uint8) {
	r.add("ch%-2d note off  %3d vel %3d", channel, note, velocity)
	if r.next != nil {
		r.next.SendNoteOff(note, velocity, channel)
	}
}

func (r *Recorder) SendControlChange(controller, value, channel uint8) {
	r.add("ch%-2d cc       %3d val %3d", channel, controller, value)
	if r.next != nil {
		r.next.SendControlChange(controller, value, channel)
	}
}

func (r *Recorder) SendProgramChange(program, channel uint8) {
	r.add("ch%-2d program  %3d", channel, program)
	if r.next != nil {
		r.next.SendProgramChange(program, channel)
	}
}

// Recent returns the recorded lines, oldest first
func (r *Recorder) Recent() []string {
	return r.lines
}
