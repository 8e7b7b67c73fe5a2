package hardware

import (
	"testing"

	"github.com/stianeikeland/go-rpio/v4"
	"github.com/stretchr/testify/assert"
)

type fakePin struct {
	state rpio.State
	reads int
}

func (p *fakePin) Read() rpio.State {
	p.reads++
	return p.state
}

func TestGPIOActiveLow(t *testing.T) {
	a := &fakePin{state: rpio.High}
	b := &fakePin{state: rpio.Low}
	g := newGPIO([]pinReader{a, b})

	assert.Equal(t, 2, g.Count())
	assert.True(t, g.DataAvailable())
	assert.False(t, g.RawState(0))
	assert.True(t, g.RawState(1))

	a.state = rpio.Low
	assert.False(t, g.RawState(0), "levels only change on scan")
	g.DataAvailable()
	assert.True(t, g.RawState(0))

	assert.Equal(t, 2, a.reads)
	assert.NoError(t, g.Close())
}

func TestOpenGPIOWithoutPins(t *testing.T) {
	_, err := OpenGPIO(nil)
	assert.ErrorIs(t, err, ErrPinCount)
}
