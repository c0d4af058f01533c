package kmerengine

import "github.com/chmduquesne/rollinghash/buzhash32"

// LowComplexity reports whether seq contains fewer than minDistinct
// distinct dinucleotides. It is an optional, default-disabled
// pre-filter: low-complexity windows (homopolymer runs, short tandem
// repeats) are cheap to generate and rarely informative, so a caller
// may choose to skip counting them entirely.
//
// wk is caller-owned scratch space of length 25 (5 symbol classes,
// A/T/G/C/other, squared), reused across calls to avoid an allocation
// per window.
func LowComplexity(seq []byte, wk []int, minDistinct int) bool {
	for i := range wk {
		wk[i] = 0
	}

	var last, distinct int
	for i, x := range seq {
		var v int
		switch x {
		case 'A', 'a':
			v = 0
		case 'T', 't':
			v = 1
		case 'G', 'g':
			v = 2
		case 'C', 'c':
			v = 3
		default:
			v = 4
		}

		if i > 0 {
			k := 5*last + v
			if wk[k] == 0 {
				distinct++
			}
			wk[k]++
		}
		last = v
	}

	return distinct < minDistinct
}

// WindowSignature maintains a buzhash32 rolling hash over a fixed-width
// window of raw bases as a scan slides one base at a time. Long
// homopolymer runs and short tandem repeats produce long stretches of
// repeated signatures. The scanner's low-complexity pre-filter does not
// use it; it runs LowComplexity on every window.
type WindowSignature struct {
	h     *buzhash32.Buzhash32
	width int
}

// NewWindowSignature builds a signature tracker for windows of the
// given width.
func NewWindowSignature(width int) *WindowSignature {
	return &WindowSignature{h: buzhash32.New(), width: width}
}

// Init seeds the rolling hash from scratch with the width bytes at the
// start of seq and returns the resulting signature.
func (w *WindowSignature) Init(seq []byte) uint32 {
	w.h.Reset()
	w.h.Write(seq[:w.width])
	return w.h.Sum32()
}

// Roll advances the window by one base, dropping outgoing and taking on
// next, and returns the updated signature.
func (w *WindowSignature) Roll(next byte) uint32 {
	w.h.Roll(next)
	return w.h.Sum32()
}
