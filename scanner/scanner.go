// Package scanner walks a record's bases, driving the k-mer engine's
// window encoder and rolling updater, restarting across runs of N, and
// either filling a count table (BUILD) or consulting one and applying
// the masking/cutoff policy (EXTRACT).
package scanner

import (
	"fmt"

	"github.com/george-hall-wtsi/zkc/counttable"
	"github.com/george-hall-wtsi/zkc/internal/assert"
	"github.com/george-hall-wtsi/zkc/kmerengine"
)

// Scanner holds the configuration shared across every record scanned
// in one phase: the window parameters, whether the canonical
// fingerprint is indexed, the count table it fills or consults, and,
// in EXTRACT, the abundance band and masking policy.
type Scanner struct {
	params    kmerengine.Params
	canonical bool
	table     *counttable.Table

	minVal, maxVal int
	maskMode       Mode

	// lowComplexityMin, when non-zero, makes the scanner skip windows
	// whose raw bases contain fewer than this many distinct
	// dinucleotides entirely: no table mutation, no mask contribution,
	// as if the window had not been visited.
	lowComplexityMin int
	dinucBuf         []int

	codeBuf []uint64
}

// New builds a Scanner. minVal/maxVal are only consulted when Scan is
// called with extract=true. lowComplexityMin of 0 disables the
// low-complexity pre-filter.
func New(p kmerengine.Params, canonical bool, table *counttable.Table, minVal, maxVal int, maskMode Mode, lowComplexityMin int) (*Scanner, error) {
	if maskMode == MaskStrict && p.K != 15 {
		return nil, fmt.Errorf("scanner: strict masking requires k=15, got k=%d", p.K)
	}
	return &Scanner{
		params:           p,
		canonical:        canonical,
		table:            table,
		minVal:           minVal,
		maxVal:           maxVal,
		maskMode:         maskMode,
		lowComplexityMin: lowComplexityMin,
		dinucBuf:         make([]int, 25),
		codeBuf:          make([]uint64, p.Regions),
	}, nil
}

// Scan walks seq's windows in increasing order. In BUILD (extract is
// false) it increments the count table for every window and returns
// 0. In EXTRACT it looks up each window's count, counts how many fall
// in [minVal, maxVal], masks bases outside any in-band window's
// coverage, and returns the in-band window count ("kmer_hits").
func (s *Scanner) Scan(seq []byte, extract bool) int {
	p := s.params
	L := len(seq)
	if L < p.Window {
		return 0
	}

	st := newMaskState(s.maskMode, p.RegionSize+p.IntervalSize)

	kmerHits := 0
	searchFrom := 0
	haveWindow := false
	var fw, rc uint64
	var baseIndex int

	for {
		if !haveWindow {
			ws, nfw, found := s.findWindow(seq, searchFrom, extract, st)
			if !found {
				if extract {
					s.maskRange(seq, searchFrom, L-1, st)
				}
				break
			}
			fw = nfw
			rc = kmerengine.HashRC(fw, p.K)
			baseIndex = ws + p.Window - 1
			kmerHits += s.applyWindow(seq, baseIndex, fw, rc, extract, st)
			haveWindow = true
		}

		if baseIndex >= L-1 {
			if extract {
				s.maskRange(seq, baseIndex-p.Window+2, L-1, st)
			}
			break
		}

		next := baseIndex + 1
		codes, ok := s.gatherNewCodes(seq, next)
		if !ok {
			if extract {
				s.maskRange(seq, baseIndex-p.Window+2, next-1, st)
				s.maskAt(seq, next, st)
			}
			searchFrom = next + 1
			haveWindow = false
			continue
		}

		fw, rc, _ = kmerengine.ShiftHash(fw, rc, codes, p)
		baseIndex = next
		kmerHits += s.applyWindow(seq, baseIndex, fw, rc, extract, st)
	}

	return kmerHits
}

// findWindow advances from start until the window encoder succeeds,
// masking every position it skips along the way (EXTRACT only). It
// returns found=false once no W-wide span remains.
func (s *Scanner) findWindow(seq []byte, start int, extract bool, st *maskState) (ws int, fw uint64, found bool) {
	p := s.params
	L := len(seq)
	for bi := start; bi <= L-p.Window; bi++ {
		fw, ok := kmerengine.HashSequence(seq[bi:bi+p.Window], p)
		if ok {
			return bi, fw, true
		}
		if extract {
			s.maskAt(seq, bi, st)
		}
	}
	return 0, 0, false
}

// gatherNewCodes returns the R region codes entering the window as it
// slides so that its last base lands on baseIndex. Only the newest of
// the R (the last region's, at baseIndex itself) can be invalid: the
// others were already validated when each was itself the newest base,
// at an earlier baseIndex.
func (s *Scanner) gatherNewCodes(seq []byte, baseIndex int) ([]uint64, bool) {
	p := s.params
	period := p.RegionSize + p.IntervalSize

	for c := 0; c < p.Regions; c++ {
		pos := baseIndex - (p.Regions-1-c)*period
		code, ok := kmerengine.Code(seq[pos])
		if !ok {
			assert.Truef(c == p.Regions-1, "scanner: previously-validated base at %d became invalid", pos)
			return nil, false
		}
		s.codeBuf[c] = code
	}
	return s.codeBuf, true
}

// applyWindow runs the phase action for the window ending at
// baseIndex: BUILD increments the table; EXTRACT looks up the count,
// updates the in-band hit count and coverage state, and masks the
// window's leftmost base if it falls outside all recorded coverage.
func (s *Scanner) applyWindow(seq []byte, baseIndex int, fw, rc uint64, extract bool, st *maskState) int {
	leftmost := baseIndex - s.params.Window + 1

	if s.lowComplexityMin > 0 && kmerengine.LowComplexity(seq[leftmost:leftmost+s.params.Window], s.dinucBuf, s.lowComplexityMin) {
		return 0
	}

	indexed := fw
	if s.canonical {
		indexed = kmerengine.Canonical(fw, rc)
	}

	if !extract {
		s.table.Incr(indexed)
		return 0
	}

	v := int(s.table.Get(indexed))
	hit := 0
	if v >= s.minVal && v <= s.maxVal {
		hit = 1
		st.markInBand(leftmost, baseIndex, s.params.RegionSize, s.params.Regions)
	}
	s.maskAt(seq, leftmost, st)
	return hit
}

func (s *Scanner) maskAt(seq []byte, pos int, st *maskState) {
	if st.test(pos) {
		seq[pos] = 'N'
	}
}

func (s *Scanner) maskRange(seq []byte, from, to int, st *maskState) {
	for q := from; q <= to; q++ {
		s.maskAt(seq, q, st)
	}
}
