package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/PixPMusic/gopher-deck/internal/buttons"
	"github.com/PixPMusic/gopher-deck/internal/clock"
	"github.com/PixPMusic/gopher-deck/internal/config"
	"github.com/PixPMusic/gopher-deck/internal/leds"
	"github.com/PixPMusic/gopher-deck/internal/midi"
)

// scan commits the current levels and polls n times
func scan(s *Sim, b *buttons.Buttons, n int) {
	for i := 0; i < n; i++ {
		s.Commit()
		b.Update()
	}
}

func TestSimDrivesButtons(t *testing.T) {
	cfg := config.Default()
	cfg.Board.Count = 8
	cfg.Controls = nil
	cfg.Encoders = nil
	cfg.Diagnostics = true
	cfg.Normalize()
	cfg.Controls[3] = config.Control{Mode: config.ModeMomentary, Message: config.MessageNote, Value: 60}

	var sent []gomidi.Message
	send := func(msg gomidi.Message) error {
		sent = append(sent, msg)
		return nil
	}

	responder := midi.NewResponder(send)
	responder.SetEnabled(true)
	tracker := leds.NewTracker()
	sim := NewSim(8)

	b := buttons.New(buttons.Deps{
		Store:       config.NewDatabase(cfg),
		Board:       sim,
		Transport:   midi.NewOut(send),
		NoteState:   tracker,
		Diagnostics: responder,
		Clock:       clock.NewManual(10_000),
	})

	sim.Set(3, true)
	scan(sim, b, 7)

	require.Len(t, sent, 2)
	var ch, key, vel uint8
	require.True(t, sent[0].GetNoteOn(&ch, &key, &vel))
	assert.Equal(t, []uint8{0, 60, 127}, []uint8{ch, key, vel})
	assert.Equal(t, []byte{0xF0, 0x00, 0x53, 0x43, 0x01, 0x00, 0x49, 0x01, 0x03, 0xF7}, []byte(sent[1]))
	assert.True(t, tracker.NoteOn(60))

	// polls without a committed scan change nothing
	sim.Set(3, false)
	for i := 0; i < 10; i++ {
		b.Update()
	}
	assert.Len(t, sent, 2)

	scan(sim, b, 7)
	require.Len(t, sent, 3)
	assert.True(t, sent[2].GetNoteOff(&ch, &key, &vel))
	assert.Equal(t, uint8(60), key)
	assert.False(t, tracker.NoteOn(60))
}
