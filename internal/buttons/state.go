package buttons

import "github.com/PixPMusic/gopher-deck/internal/config"

// Action is what a control should send after a stable sample
type Action int

const (
	ActionNone Action = iota
	ActionPress
	ActionRelease
)

func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	}
	return "none"
}

// Step decides the next pressed flag and the action for one stable sample.
//
// Momentary controls compare state with the pressed flag. Latching controls
// compare state with the previous raw level and toggle only on the rising
// edge. Program change controls are always momentary.
func Step(mode config.ButtonMode, msg config.MessageType, pressed, state, previous bool) (bool, Action) {
	if msg == config.MessageProgramChange {
		mode = config.ModeMomentary
	}

	switch mode {
	case config.ModeMomentary:
		if state && !pressed {
			return true, ActionPress
		}
		if !state && pressed {
			return false, ActionRelease
		}

	case config.ModeLatching:
		if state != previous && state {
			if pressed {
				return false, ActionRelease
			}
			return true, ActionPress
		}
	}

	return pressed, ActionNone
}
