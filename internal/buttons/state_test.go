package buttons

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PixPMusic/gopher-deck/internal/config"
)

func TestStep(t *testing.T) {
	const (
		momentary = config.ModeMomentary
		latching  = config.ModeLatching
		note      = config.MessageNote
		cc        = config.MessageControlChange
		pc        = config.MessageProgramChange
	)

	tests := []struct {
		name        string
		mode        config.ButtonMode
		msg         config.MessageType
		pressed     bool
		state       bool
		previous    bool
		wantPressed bool
		wantAction  Action
	}{
		{"momentary press", momentary, note, false, true, false, true, ActionPress},
		{"momentary held", momentary, note, true, true, true, true, ActionNone},
		{"momentary release", momentary, note, true, false, true, false, ActionRelease},
		{"momentary idle", momentary, note, false, false, false, false, ActionNone},
		{"momentary ignores previous", momentary, cc, false, true, true, true, ActionPress},

		{"latching on", latching, note, false, true, false, true, ActionPress},
		{"latching off", latching, cc, true, true, false, false, ActionRelease},
		{"latching held", latching, note, true, true, true, true, ActionNone},
		{"latching release edge", latching, note, true, false, true, true, ActionNone},
		{"latching release edge off", latching, note, false, false, true, false, ActionNone},

		{"pc press in latching mode", latching, pc, false, true, true, true, ActionPress},
		{"pc release in latching mode", latching, pc, true, false, true, false, ActionRelease},

		{"unknown mode", config.ButtonMode(9), note, false, true, false, false, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pressed, action := Step(tt.mode, tt.msg, tt.pressed, tt.state, tt.previous)
			assert.Equal(t, tt.wantPressed, pressed)
			assert.Equal(t, tt.wantAction, action)
		})
	}
}
