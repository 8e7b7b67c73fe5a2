package midi

import (
	log "github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
)

// Out sends button events as channel voice messages. Sends never block the
// caller on errors; failures are logged and dropped.
type Out struct {
	send func(midi.Message) error
}

// NewOut wraps a send function. A nil send discards everything.
func NewOut(send func(midi.Message) error) *Out {
	return &Out{send: send}
}

func (o *Out) SendNoteOn(note, velocity, channel uint8) {
	o.write(midi.NoteOn(wireChannel(channel), note&0x7F, velocity&0x7F))
}

func (o *Out) SendNoteOff(note, velocity, channel uint8) {
	o.write(midi.NoteOffVelocity(wireChannel(channel), note&0x7F, velocity&0x7F))
}

func (o *Out) SendControlChange(controller, value, channel uint8) {
	o.write(midi.ControlChange(wireChannel(channel), controller&0x7F, value&0x7F))
}

func (o *Out) SendProgramChange(program, channel uint8) {
	o.write(midi.ProgramChange(wireChannel(channel), program&0x7F))
}

func (o *Out) write(msg midi.Message) {
	if o.send == nil {
		return
	}
	if err := o.send(msg); err != nil {
		log.WithError(err).WithField("msg", msg.String()).Warn("midi send failed")
	}
}

// wireChannel converts a 1-16 channel to the 0-15 wire value
func wireChannel(channel uint8) uint8 {
	if channel < 1 || channel > 16 {
		return 0
	}
	return channel - 1
}
