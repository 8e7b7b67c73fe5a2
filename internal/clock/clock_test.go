package clock

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualWraps(t *testing.T) {
	m := NewManual(math.MaxUint32 - 10)
	then := m.Millis()
	m.Advance(30)

	assert.Equal(t, uint32(19), m.Millis())
	assert.Equal(t, uint32(30), m.Millis()-then)
}

func TestMonotonicAdvances(t *testing.T) {
	m := NewMonotonic()
	first := m.Millis()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, m.Millis()-first, uint32(4))
}
