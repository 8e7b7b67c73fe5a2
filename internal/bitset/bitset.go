package bitset

// Bitset is a fixed-size set of flags packed eight to a byte.
// Indices outside [0, Len()) read as false and are never written.
type Bitset struct {
	words []uint8
	size  int
}

// New returns a cleared bitset holding size flags
func New(size int) *Bitset {
	if size < 0 {
		size = 0
	}
	return &Bitset{
		words: make([]uint8, (size+7)/8),
		size:  size,
	}
}

// Len returns the number of flags in the set
func (b *Bitset) Len() int {
	return b.size
}

// InRange reports whether id addresses a flag in the set
func (b *Bitset) InRange(id int) bool {
	return id >= 0 && id < b.size
}

// Get returns the flag at id
func (b *Bitset) Get(id int) bool {
	if !b.InRange(id) {
		return false
	}
	return b.words[id/8]&(1<<uint(id%8)) != 0
}

// Set writes the flag at id. It reports false when id is out of range.
func (b *Bitset) Set(id int, v bool) bool {
	if !b.InRange(id) {
		return false
	}
	mask := uint8(1 << uint(id%8))
	if v {
		b.words[id/8] |= mask
	} else {
		b.words[id/8] &^= mask
	}
	return true
}

// Reset clears every flag
func (b *Bitset) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
}
