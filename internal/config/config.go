package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// ErrUnknownFormat is returned for config files that are neither JSON nor TOML
var ErrUnknownFormat = errors.New("unknown config format")

// DefaultControlCount is the number of controls in a fresh config
const DefaultControlCount = 32

// Control holds the MIDI mapping of a single button
type Control struct {
	Mode    ButtonMode  `json:"mode" toml:"mode"`
	Message MessageType `json:"message" toml:"message"`
	Value   uint8       `json:"value" toml:"value"` // note, controller or program number
}

// Channels holds the MIDI channel (1-16) used per message type
type Channels struct {
	Note          int `json:"note" toml:"note"`
	CC            int `json:"cc" toml:"cc"`
	ProgramChange int `json:"program_change" toml:"program_change"`
}

// Encoder holds the settings of an encoder wired to a pair of button lines
type Encoder struct {
	Enabled bool `json:"enabled" toml:"enabled"`
}

// Board describes where raw button levels come from
type Board struct {
	Kind       BoardKind `json:"kind" toml:"kind"`
	Count      int       `json:"count" toml:"count"`
	Pins       []int     `json:"pins,omitempty" toml:"pins,omitempty"`               // gpio: BCM pin per control
	InPort     string    `json:"in_port,omitempty" toml:"in_port,omitempty"`         // grid: MIDI input port
	FeedbackTo string    `json:"feedback_to,omitempty" toml:"feedback_to,omitempty"` // grid: LED output port
	DeviceType string    `json:"device_type,omitempty" toml:"device_type,omitempty"` // grid: classic, colorful, generic
}

// Config holds the whole controller profile
type Config struct {
	ID             string    `json:"id" toml:"id"`
	Name           string    `json:"name" toml:"name"`
	MIDIOut        string    `json:"midi_out" toml:"midi_out"`
	PollIntervalMs int       `json:"poll_interval_ms" toml:"poll_interval_ms"`
	Diagnostics    bool      `json:"diagnostics" toml:"diagnostics"`
	Board          Board     `json:"board" toml:"board"`
	Channels       Channels  `json:"channels" toml:"channels"`
	Controls       []Control `json:"controls" toml:"controls"`
	Encoders       []Encoder `json:"encoders" toml:"encoders"`

	path string
}

// Default returns a momentary note profile for a simulated board
func Default() *Config {
	c := &Config{
		ID:             uuid.New().String(),
		Name:           "gopher-deck",
		PollIntervalMs: 1,
		Board: Board{
			Kind:  BoardSim,
			Count: DefaultControlCount,
		},
		Channels: Channels{Note: 1, CC: 1, ProgramChange: 1},
	}
	c.Normalize()
	return c
}

// Normalize fills in missing values so that every control and encoder pair
// on the board has an entry
func (c *Config) Normalize() {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Board.Kind == "" {
		c.Board.Kind = BoardSim
	}
	if c.Board.Count <= 0 {
		if len(c.Board.Pins) > 0 {
			c.Board.Count = len(c.Board.Pins)
		} else {
			c.Board.Count = DefaultControlCount
		}
	}
	if c.PollIntervalMs <= 0 {
		c.PollIntervalMs = 1
	}
	c.Channels.Note = clampChannel(c.Channels.Note)
	c.Channels.CC = clampChannel(c.Channels.CC)
	c.Channels.ProgramChange = clampChannel(c.Channels.ProgramChange)

	for i := len(c.Controls); i < c.Board.Count; i++ {
		c.Controls = append(c.Controls, Control{
			Mode:    ModeMomentary,
			Message: MessageNote,
			Value:   uint8(i & 0x7F),
		})
	}
	pairs := (c.Board.Count + 1) / 2
	for i := len(c.Encoders); i < pairs; i++ {
		c.Encoders = append(c.Encoders, Encoder{})
	}
}

func clampChannel(ch int) int {
	if ch < 1 || ch > 16 {
		return 1
	}
	return ch
}

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "gopher-deck"), nil
}

// DefaultPath returns the full path to the default config file
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func isTOML(path string) (bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return true, nil
	case ".json", "":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads the config at path, returning defaults if the file does not exist
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	useTOML, err := isTOML(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		cfg.path = path
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if useTOML {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	cfg.path = path
	cfg.Normalize()
	return &cfg, nil
}

// Path returns the file the config was loaded from
func (c *Config) Path() string {
	return c.path
}

// SaveAs writes the config to path, in the format implied by its extension
func (c *Config) SaveAs(path string) error {
	useTOML, err := isTOML(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if useTOML {
		err = toml.NewEncoder(f).Encode(c)
	} else {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		err = enc.Encode(c)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	c.path = path
	return f.Close()
}

// Save writes the config back to the file it was loaded from
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	return c.SaveAs(path)
}
