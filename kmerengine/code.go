// Package kmerengine implements the rolling k-mer fingerprint engine:
// base coding, window encoding, the O(1) amortised rolling update, the
// reverse-complement fingerprint, and the region/interval masks that
// drive the gapped and canonical variants.
package kmerengine

// Code maps a single base to its 2-bit code. A/a -> 0, C/c -> 1, G/g ->
// 2, T/t -> 3. Anything else, including N/n, is invalid and ok is
// false.
func Code(b byte) (code uint64, ok bool) {
	switch b {
	case 'A', 'a':
		return 0, true
	case 'C', 'c':
		return 1, true
	case 'G', 'g':
		return 2, true
	case 'T', 't':
		return 3, true
	default:
		return 0, false
	}
}
