package buttons

const debounceCompare uint8 = 0x80

// Debouncer keeps an eight bit shift register per line. A line is stable
// once the last seven samples agree.
type Debouncer struct {
	counters []uint8
}

// NewDebouncer returns a debouncer for count lines
func NewDebouncer(count int) *Debouncer {
	if count < 0 {
		count = 0
	}
	return &Debouncer{counters: make([]uint8, count)}
}

// Sample shifts state into the register of line id and reports whether the
// line is stable. 0x80 and 0xFF are absorbing, so a steady line reports
// stable on every call. Unknown ids are never stable.
func (d *Debouncer) Sample(id int, state bool) bool {
	if id < 0 || id >= len(d.counters) {
		return false
	}

	var bit uint8
	if state {
		bit = 1
	}

	c := (d.counters[id] << 1) | bit | debounceCompare
	d.counters[id] = c

	return c == debounceCompare || c == 0xFF
}

// Counter returns the raw register of line id
func (d *Debouncer) Counter(id int) uint8 {
	if id < 0 || id >= len(d.counters) {
		return 0
	}
	return d.counters[id]
}
