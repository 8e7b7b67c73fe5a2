package hardware

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/stianeikeland/go-rpio/v4"

	"github.com/PixPMusic/gopher-deck/internal/bitset"
)

type pinReader interface {
	Read() rpio.State
}

// GPIO reads buttons wired between Raspberry Pi pins and ground. Pins use
// the internal pull-up, so a pressed button reads low.
type GPIO struct {
	pins   []pinReader
	levels *bitset.Bitset
	close  func() error
}

// OpenGPIO maps the memory of the GPIO controller and configures one
// input per BCM pin number. Line i is pins[i].
func OpenGPIO(pins []int) (*GPIO, error) {
	if len(pins) == 0 {
		return nil, ErrPinCount
	}
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("open gpio: %w", err)
	}

	readers := make([]pinReader, 0, len(pins))
	for _, n := range pins {
		pin := rpio.Pin(n)
		pin.Input()
		pin.PullUp()
		readers = append(readers, pin)
	}

	log.WithField("pins", pins).Info("gpio board opened")

	g := newGPIO(readers)
	g.close = rpio.Close
	return g, nil
}

func newGPIO(pins []pinReader) *GPIO {
	return &GPIO{
		pins:   pins,
		levels: bitset.New(len(pins)),
	}
}

func (g *GPIO) Count() int {
	return len(g.pins)
}

// DataAvailable samples every pin. Each call is a complete scan.
func (g *GPIO) DataAvailable() bool {
	for i, pin := range g.pins {
		g.levels.Set(i, pin.Read() == rpio.Low)
	}
	return true
}

func (g *GPIO) RawState(id int) bool {
	return g.levels.Get(id)
}

func (g *GPIO) EncoderPair(id int) int {
	return EncoderPair(id)
}

// Close unmaps the GPIO memory
func (g *GPIO) Close() error {
	if g.close == nil {
		return nil
	}
	return g.close()
}
