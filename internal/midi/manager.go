package midi

import (
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// ErrPortNotFound is returned when no port has the requested name
var ErrPortNotFound = errors.New("midi port not found")

// Manager handles MIDI port discovery. A driver must be registered by the
// main package.
type Manager struct {
	mu sync.RWMutex
}

// NewManager creates a new MIDI manager
func NewManager() *Manager {
	return &Manager{}
}

// Close cleans up the MIDI driver
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListInPorts returns the names of available MIDI input ports
func (m *Manager) ListInPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// ListOutPorts returns the names of available MIDI output ports
func (m *Manager) ListOutPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

// GetInPort returns an input port by name
func (m *Manager) GetInPort(name string) (drivers.In, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, in := range midi.GetInPorts() {
		if in.String() == name {
			return in, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPortNotFound, name)
}

// GetOutPort returns an output port by name
func (m *Manager) GetOutPort(name string) (drivers.Out, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, out := range midi.GetOutPorts() {
		if out.String() == name {
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPortNotFound, name)
}

// OpenSender opens the named output port and returns its send function
func (m *Manager) OpenSender(name string) (func(midi.Message) error, error) {
	out, err := m.GetOutPort(name)
	if err != nil {
		return nil, err
	}

	send, err := midi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("failed to create sender: %w", err)
	}

	log.WithField("port", name).Info("midi output opened")
	return send, nil
}

// PadCallback is called for every pad message a device recognises
type PadCallback func(row, col int, pressed bool)

// Listen forwards pad presses arriving on the named input port, decoded by
// device, to callback. The returned function stops listening.
func (m *Manager) Listen(inPortName string, device Device, callback PadCallback) (func(), error) {
	in, err := m.GetInPort(inPortName)
	if err != nil {
		return nil, err
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		if row, col, pressed, ok := device.HandleMessage(msg); ok {
			callback(row, col, pressed)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start listening: %w", err)
	}

	log.WithField("port", inPortName).Info("midi input opened")
	return stop, nil
}
