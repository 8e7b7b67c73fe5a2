package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	b := New(20)
	require.Equal(t, 20, b.Len())

	for _, id := range []int{0, 7, 8, 15, 19} {
		assert.False(t, b.Get(id))
		assert.True(t, b.Set(id, true))
		assert.True(t, b.Get(id), "id %d", id)
	}

	// neighbours in the same word are untouched
	assert.False(t, b.Get(1))
	assert.False(t, b.Get(9))

	b.Set(8, false)
	assert.False(t, b.Get(8))
	assert.True(t, b.Get(15))
}

func TestOutOfRange(t *testing.T) {
	b := New(9)
	b.Set(8, true)

	assert.False(t, b.Set(9, true))
	assert.False(t, b.Set(16, true))
	assert.False(t, b.Set(-1, true))
	assert.False(t, b.Get(9))
	assert.False(t, b.Get(-1))

	// the only flag in the second word survives rejected writes
	assert.True(t, b.Get(8))
	for id := 0; id < 8; id++ {
		assert.False(t, b.Get(id))
	}
}

func TestReset(t *testing.T) {
	b := New(16)
	for id := 0; id < 16; id++ {
		b.Set(id, true)
	}
	b.Reset()
	for id := 0; id < 16; id++ {
		assert.False(t, b.Get(id))
	}
}

func TestNegativeSize(t *testing.T) {
	b := New(-3)
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.Set(0, true))
}
