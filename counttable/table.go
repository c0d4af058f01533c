// Package counttable implements the direct-addressed k-mer count table:
// a flat array of 4^k uint32 counters indexed by packed fingerprint,
// together with its on-disk persistence format.
package counttable

import "github.com/george-hall-wtsi/zkc/internal/assert"

// Table is a direct-addressed counter array for k-mers of a fixed size.
// Index h (0 <= h < 4^K) holds the number of times fingerprint h has
// been observed. Counters saturate at the uint32 maximum rather than
// wrapping.
type Table struct {
	K      int
	Counts []uint32
}

// New allocates a zeroed table sized for k-mers of width k.
func New(k int) *Table {
	assert.Truef(k > 0 && k <= 17, "counttable: k out of range: %d", k)
	size := uint64(1) << uint(2*k)
	return &Table{K: k, Counts: make([]uint32, size)}
}

// Incr increments the counter at fingerprint h, saturating instead of
// wrapping on overflow.
func (t *Table) Incr(h uint64) {
	if t.Counts[h] != ^uint32(0) {
		t.Counts[h]++
	}
}

// Get returns the counter at fingerprint h.
func (t *Table) Get(h uint64) uint32 {
	return t.Counts[h]
}

// Len returns the number of addressable entries, 4^K.
func (t *Table) Len() int {
	return len(t.Counts)
}
