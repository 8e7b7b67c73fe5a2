package buttons

import "github.com/PixPMusic/gopher-deck/internal/config"

const (
	// ComponentIDMarker opens every component info response
	ComponentIDMarker uint8 = 0x49

	// ComponentInfoTimeout is the minimum gap in ms between two responses
	// for the same block
	ComponentInfoTimeout uint32 = 500
)

// Reporter sends rate-limited "component changed" responses
type Reporter struct {
	out     Responder
	clock   Clock
	timeout uint32
	last    map[config.Block]uint32
}

// NewReporter returns a reporter writing to out. A nil out disables it.
func NewReporter(out Responder, clk Clock) *Reporter {
	return &Reporter{
		out:     out,
		clock:   clk,
		timeout: ComponentInfoTimeout,
		last:    make(map[config.Block]uint32),
	}
}

// Report sends {marker, block, id} unless responses are disabled or the
// previous one for block was sent within the timeout. It reports whether a
// response went out.
func (r *Reporter) Report(block config.Block, id int) bool {
	if r.out == nil || !r.out.Enabled() {
		return false
	}

	now := r.clock.Millis()
	if now-r.last[block] <= r.timeout {
		return false
	}

	r.out.StartResponse()
	r.out.AddToResponse(ComponentIDMarker)
	r.out.AddToResponse(uint8(block))
	r.out.AddToResponse(uint8(id))
	r.out.SendResponse()

	r.last[block] = now
	return true
}

// LastSent returns the time of the last response for block
func (r *Reporter) LastSent(block config.Block) uint32 {
	return r.last[block]
}
