package config

import "sync"

// Database exposes a Config as block/section/index settings. Reads of
// unknown or out-of-range settings return 0.
type Database struct {
	mu  sync.RWMutex
	cfg *Config
}

// NewDatabase wraps cfg. The config must not be modified directly afterwards.
func NewDatabase(cfg *Config) *Database {
	if cfg == nil {
		cfg = Default()
	}
	cfg.Normalize()
	return &Database{cfg: cfg}
}

// Read returns the value of a setting
func (d *Database) Read(block Block, section Section, index int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	switch block {
	case BlockButton:
		if index < 0 || index >= len(d.cfg.Controls) {
			return 0
		}
		ctrl := d.cfg.Controls[index]
		switch section {
		case SectionButtonType:
			return int(ctrl.Mode)
		case SectionButtonMessageType:
			return int(ctrl.Message)
		case SectionButtonMIDIID:
			return int(ctrl.Value)
		}

	case BlockMIDI:
		switch section {
		case SectionMIDIChannel:
			switch index {
			case ChannelNote:
				return d.cfg.Channels.Note
			case ChannelProgramChange:
				return d.cfg.Channels.ProgramChange
			case ChannelCC:
				return d.cfg.Channels.CC
			}
		case SectionMIDIFeature:
			if index == FeatureDiagnostics && d.cfg.Diagnostics {
				return 1
			}
		}

	case BlockEncoder:
		if section == SectionEncoderEnabled && index >= 0 && index < len(d.cfg.Encoders) {
			if d.cfg.Encoders[index].Enabled {
				return 1
			}
		}
	}

	return 0
}

// Write updates a setting. It reports false if the setting does not exist.
func (d *Database) Write(block Block, section Section, index int, value int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch block {
	case BlockButton:
		if index < 0 || index >= len(d.cfg.Controls) {
			return false
		}
		ctrl := &d.cfg.Controls[index]
		switch section {
		case SectionButtonType:
			ctrl.Mode = ButtonMode(value)
		case SectionButtonMessageType:
			ctrl.Message = MessageType(value)
		case SectionButtonMIDIID:
			ctrl.Value = uint8(value & 0x7F)
		default:
			return false
		}
		return true

	case BlockMIDI:
		switch section {
		case SectionMIDIChannel:
			ch := clampChannel(value)
			switch index {
			case ChannelNote:
				d.cfg.Channels.Note = ch
			case ChannelProgramChange:
				d.cfg.Channels.ProgramChange = ch
			case ChannelCC:
				d.cfg.Channels.CC = ch
			default:
				return false
			}
			return true
		case SectionMIDIFeature:
			if index == FeatureDiagnostics {
				d.cfg.Diagnostics = value != 0
				return true
			}
		}

	case BlockEncoder:
		if section == SectionEncoderEnabled && index >= 0 && index < len(d.cfg.Encoders) {
			d.cfg.Encoders[index].Enabled = value != 0
			return true
		}
	}

	return false
}

// Control returns a copy of the mapping of a control
func (d *Database) Control(id int) (Control, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if id < 0 || id >= len(d.cfg.Controls) {
		return Control{}, false
	}
	return d.cfg.Controls[id], true
}

// Snapshot returns a deep copy of the underlying config
func (d *Database) Snapshot() *Config {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c := *d.cfg
	c.Controls = append([]Control(nil), d.cfg.Controls...)
	c.Encoders = append([]Encoder(nil), d.cfg.Encoders...)
	c.Board.Pins = append([]int(nil), d.cfg.Board.Pins...)
	return &c
}
