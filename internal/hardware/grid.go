package hardware

import (
	"sync"

	"github.com/PixPMusic/gopher-deck/internal/bitset"
	"github.com/PixPMusic/gopher-deck/internal/midi"
)

// Grid uses the pads of a MIDI controller as button lines. Pad messages
// latch the level of a line until the opposite message arrives; every poll
// reads the latched levels.
type Grid struct {
	mu     sync.Mutex
	levels *bitset.Bitset
	stop   func()
}

// NewGrid returns a grid board with count lines. Pads beyond count are ignored.
func NewGrid(count int) *Grid {
	return &Grid{levels: bitset.New(count)}
}

// Attach starts listening on the named input port
func (g *Grid) Attach(m *midi.Manager, port string, device midi.Device) error {
	stop, err := m.Listen(port, device, g.Press)
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.stop = stop
	g.mu.Unlock()
	return nil
}

// Press records a pad message
func (g *Grid) Press(row, col int, pressed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.levels.Set(midi.PadIndex(row, col), pressed)
}

func (g *Grid) Count() int {
	return g.levels.Len()
}

func (g *Grid) DataAvailable() bool {
	return true
}

func (g *Grid) RawState(id int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.levels.Get(id)
}

func (g *Grid) EncoderPair(id int) int {
	return EncoderPair(id)
}

// Close stops listening
func (g *Grid) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stop != nil {
		g.stop()
		g.stop = nil
	}
	return nil
}
