package kmerengine

// ShiftHash advances one window's forward and reverse-complement
// fingerprints by a single base position. newCodes holds one 2-bit code
// per region (len(newCodes) == p.Regions): the base newly entering each
// region's window as the whole gapped pattern slides forward by one.
//
// Fw slides by shifting left and discarding the bits that fall off the
// top; seqMask (cleared at exactly the slot each region's incoming code
// will occupy) keeps stray high bits from a prior wider shift out of the
// result. Rc slides the opposite way, shifting right, with each
// incoming code's complement inserted at the position rcMask clears.
// canonical is the strand-symmetric fingerprint: whichever of the two
// is numerically smaller.
func ShiftHash(fw, rc uint64, newCodes []uint64, p Params) (newFw, newRc, canonical uint64) {
	jump := uint(p.jump())
	width2k := uint(2 * p.K)

	newFw = (fw << 2) & p.seqMask
	newRc = (rc >> 2) & p.rcMask

	for c := 0; c < p.Regions; c++ {
		code := newCodes[c]

		posFw := width2k - uint(c+1)*jump
		newFw |= code << posFw

		posRc := uint(c)*jump + jump - 2
		newRc |= (code ^ 3) << posRc
	}

	return newFw, newRc, Canonical(newFw, newRc)
}
