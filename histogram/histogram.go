// Package histogram builds the abundance histogram over a count table:
// bin i counts how many fingerprints were observed exactly i+1 times,
// with the final bin absorbing every count at or beyond NumBins.
// Fingerprints that were never observed (count 0) are not tabulated.
package histogram

import "github.com/george-hall-wtsi/zkc/counttable"

// NumBins is the number of bins in the histogram: one per abundance
// value from 1 to 10000, plus a final overflow bin for 10001 and
// above.
const NumBins = 10001

// Build tabulates t's positive counters into a NumBins-length
// histogram.
func Build(t *counttable.Table) []uint64 {
	h := make([]uint64, NumBins)
	for _, c := range t.Counts {
		if c == 0 {
			continue
		}
		idx := int(c)
		if idx > NumBins {
			idx = NumBins
		}
		h[idx-1]++
	}
	return h
}
