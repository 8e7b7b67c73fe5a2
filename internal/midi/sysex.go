package midi

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
)

// Manufacturer ID prefix of every response: 00 53 43
var sysExHeader = []byte{0x00, 0x53, 0x43}

const (
	sysExStatusAck uint8 = 0x01
	sysExPartFirst uint8 = 0x00
)

// Responder builds configuration responses and sends them as SysEx.
// Responses are only sent while the responder is enabled.
type Responder struct {
	send    func(midi.Message) error
	enabled atomic.Bool
	buf     []byte
}

// NewResponder returns a disabled responder writing to send
func NewResponder(send func(midi.Message) error) *Responder {
	return &Responder{send: send}
}

// SetEnabled switches configuration responses on or off
func (r *Responder) SetEnabled(on bool) {
	r.enabled.Store(on)
}

func (r *Responder) Enabled() bool {
	return r.enabled.Load()
}

// StartResponse discards any pending response and writes the header
func (r *Responder) StartResponse() {
	r.buf = append(r.buf[:0], sysExHeader...)
	r.buf = append(r.buf, sysExStatusAck, sysExPartFirst)
}

// AddToResponse appends a data byte, masked to seven bits
func (r *Responder) AddToResponse(b uint8) {
	if len(r.buf) == 0 {
		r.StartResponse()
	}
	r.buf = append(r.buf, b&0x7F)
}

// SendResponse sends the pending response
func (r *Responder) SendResponse() {
	if len(r.buf) == 0 || r.send == nil {
		return
	}

	payload := make([]byte, len(r.buf))
	copy(payload, r.buf)
	r.buf = r.buf[:0]

	if err := r.send(midi.SysEx(payload)); err != nil {
		log.WithError(err).Warn("sysex response failed")
	}
}
