package hardware

import (
	"sync"

	"github.com/PixPMusic/gopher-deck/internal/bitset"
)

// Sim is an in-memory board. Levels written with Set become visible to the
// poller as one scan after Commit.
type Sim struct {
	mu      sync.Mutex
	pending *bitset.Bitset
	scanned *bitset.Bitset
	ready   bool
}

// NewSim returns a board with count released lines
func NewSim(count int) *Sim {
	return &Sim{
		pending: bitset.New(count),
		scanned: bitset.New(count),
	}
}

func (s *Sim) Count() int {
	return s.pending.Len()
}

// Set changes the level of a line in the next scan
func (s *Sim) Set(id int, level bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.Set(id, level)
}

// Toggle flips the level of a line in the next scan and returns the new level
func (s *Sim) Toggle(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	level := !s.pending.Get(id)
	s.pending.Set(id, level)
	return level
}

// Level returns the level a line will have in the next scan
func (s *Sim) Level(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending.Get(id)
}

// Commit completes a scan
func (s *Sim) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := 0; id < s.pending.Len(); id++ {
		s.scanned.Set(id, s.pending.Get(id))
	}
	s.ready = true
}

// DataAvailable reports a committed scan once
func (s *Sim) DataAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ready := s.ready
	s.ready = false
	return ready
}

func (s *Sim) RawState(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanned.Get(id)
}

func (s *Sim) EncoderPair(id int) int {
	return EncoderPair(id)
}
