package leds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"

	internalmidi "github.com/PixPMusic/gopher-deck/internal/midi"
)

type padCall struct {
	row, col int
	color    internalmidi.PadColor
}

type fakeDevice struct {
	internalmidi.GenericDevice
	calls []padCall
}

func (d *fakeDevice) SetPadColor(send func(midi.Message) error, row, col int, color internalmidi.PadColor) error {
	d.calls = append(d.calls, padCall{row, col, color})
	return nil
}

func TestTrackerState(t *testing.T) {
	tr := NewTracker()

	tr.SetNoteState(60, 127, true)
	tr.SetNoteState(62, 90, true)
	assert.True(t, tr.NoteOn(60))
	assert.Equal(t, uint8(90), tr.Velocity(62))
	assert.Equal(t, []uint8{60, 62}, tr.Active())

	tr.SetNoteState(60, 0, false)
	assert.False(t, tr.NoteOn(60))
	assert.Equal(t, uint8(0), tr.Velocity(60))
	assert.Equal(t, []uint8{62}, tr.Active())
}

func TestTrackerMirror(t *testing.T) {
	tr := NewTracker()
	dev := &fakeDevice{}
	tr.Mirror(dev, func(midi.Message) error { return nil })

	tr.SetNoteState(10, 127, true)
	tr.SetNoteState(10, 0, false)
	tr.SetNoteState(100, 127, true) // beyond the grid

	require.Len(t, dev.calls, 2)
	assert.Equal(t, padCall{1, 1, OnColor}, dev.calls[0])
	assert.Equal(t, padCall{1, 1, OffColor}, dev.calls[1])
	assert.True(t, tr.NoteOn(100))
}

func TestScale(t *testing.T) {
	assert.Equal(t, internalmidi.PadColor{R: 0, G: 127, B: 40}, scale(OnColor, 127))
	dim := scale(OnColor, 1)
	assert.Equal(t, uint8(0), dim.R)
	assert.Equal(t, uint8(1), dim.G)
	assert.Equal(t, uint8(1), dim.B)
}
