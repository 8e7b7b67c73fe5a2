package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimScan(t *testing.T) {
	s := NewSim(4)
	assert.Equal(t, 4, s.Count())
	assert.False(t, s.DataAvailable())

	s.Set(1, true)
	assert.True(t, s.Level(1))
	assert.False(t, s.RawState(1), "not visible before commit")

	s.Commit()
	assert.True(t, s.DataAvailable())
	assert.False(t, s.DataAvailable(), "a scan is reported once")
	assert.True(t, s.RawState(1))

	assert.False(t, s.Toggle(1))
	assert.True(t, s.Toggle(2))
	s.Commit()
	assert.False(t, s.RawState(1))
	assert.True(t, s.RawState(2))
}

func TestEncoderPair(t *testing.T) {
	assert.Equal(t, 0, EncoderPair(0))
	assert.Equal(t, 0, EncoderPair(1))
	assert.Equal(t, 1, EncoderPair(2))
	assert.Equal(t, 7, EncoderPair(15))
}
