package kmerengine

import (
	"math/rand"
	"testing"
)

func TestHashRCKnownExample(t *testing.T) {
	// ACGTACGTACGTA -> reverse complement TACGTACGTACGT (k=13).
	fw := packSeq(t, "ACGTACGTACGTA")
	want := packSeq(t, "TACGTACGTACGT")

	got := HashRC(fw, 13)
	if got != want {
		t.Fatalf("HashRC = %d, want %d", got, want)
	}
}

func TestHashRCInvolution(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		k := []int{13, 15, 17}[r.Intn(3)]
		var x uint64
		for j := 0; j < k; j++ {
			x = (x << 2) | uint64(r.Intn(4))
		}
		if got := HashRC(HashRC(x, k), k); got != x {
			t.Fatalf("HashRC(HashRC(%d, %d), %d) = %d, want %d", x, k, k, got, x)
		}
	}
}

func packSeq(t *testing.T, seq string) uint64 {
	t.Helper()
	var acc uint64
	for _, b := range []byte(seq) {
		code, ok := Code(b)
		if !ok {
			t.Fatalf("invalid base %q in test sequence", b)
		}
		acc = (acc << 2) | code
	}
	return acc
}
