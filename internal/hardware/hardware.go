// Package hardware provides the boards that report raw button levels.
package hardware

import "errors"

// ErrPinCount is returned when a GPIO board is opened without pins
var ErrPinCount = errors.New("no button pins configured")

// EncoderPair returns the encoder index of a line. Encoders are wired to
// consecutive lines, so lines 2k and 2k+1 belong to encoder k.
func EncoderPair(id int) int {
	return id / 2
}
