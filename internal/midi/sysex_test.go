package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponderFraming(t *testing.T) {
	c := &capture{}
	r := NewResponder(c.send)
	assert.False(t, r.Enabled())
	r.SetEnabled(true)
	assert.True(t, r.Enabled())

	r.StartResponse()
	r.AddToResponse(0x49)
	r.AddToResponse(0x01)
	r.AddToResponse(0x85) // masked to 7 bits
	r.SendResponse()

	require.Len(t, c.msgs, 1)
	assert.Equal(t, []byte{0xF0, 0x00, 0x53, 0x43, 0x01, 0x00, 0x49, 0x01, 0x05, 0xF7}, []byte(c.msgs[0]))

	// nothing pending
	r.SendResponse()
	assert.Len(t, c.msgs, 1)
}

func TestResponderRestart(t *testing.T) {
	c := &capture{}
	r := NewResponder(c.send)

	r.StartResponse()
	r.AddToResponse(0x10)
	r.StartResponse()
	r.AddToResponse(0x20)
	r.SendResponse()

	require.Len(t, c.msgs, 1)
	assert.Equal(t, []byte{0xF0, 0x00, 0x53, 0x43, 0x01, 0x00, 0x20, 0xF7}, []byte(c.msgs[0]))
}
