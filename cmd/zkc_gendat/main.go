/*
Generate FASTA/FASTQ test data for the k-mer counting/extraction
pipeline.

Most records are random bases. A configurable fraction of records get
a single injected N part-way through, to exercise the N-restart path
in BUILD and EXTRACT. A configurable fraction of records are built
entirely from one repeating prefix, to exercise high-abundance k-mers
and the low-complexity pre-filter.
*/

package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
)

var (
	numRecords int
	recordLen  int
	nFraction  float64
	repeatFrac float64
	fastq      bool
	out        string
)

func genRand(n int) []byte {
	bases := []byte{'A', 'T', 'G', 'C'}
	seq := make([]byte, n)
	for j := 0; j < n; j++ {
		seq[j] = bases[rand.Intn(4)]
	}
	return seq
}

func writeRecord(w *bufio.Writer, i int, seq []byte) {
	if fastq {
		fmt.Fprintf(w, "@read_%d\n%s\n+\n", i, seq)
		for j := 0; j < len(seq); j++ {
			w.WriteByte('I')
		}
		w.WriteByte('\n')
	} else {
		fmt.Fprintf(w, ">read_%d\n%s\n", i, seq)
	}
}

func main() {
	flag.IntVar(&numRecords, "NumRecords", 1000, "Number of records")
	flag.IntVar(&recordLen, "RecordLen", 150, "Record length")
	flag.Float64Var(&nFraction, "NFraction", 0.05, "Fraction of records with one injected N")
	flag.Float64Var(&repeatFrac, "RepeatFraction", 0.02, "Fraction of records built from a repeating 4-base motif")
	flag.BoolVar(&fastq, "Fastq", false, "Write FASTQ instead of FASTA")
	flag.StringVar(&out, "Out", "reads.fa", "Output path")
	flag.Parse()

	if numRecords < 1 {
		panic("NumRecords must be at least 1")
	}
	if recordLen < 15 {
		panic("RecordLen must be at least 15 to admit a k=15 window")
	}

	fid, err := os.Create(out)
	if err != nil {
		panic(err)
	}
	defer fid.Close()

	w := bufio.NewWriter(fid)
	defer w.Flush()

	for i := 0; i < numRecords; i++ {
		var seq []byte

		switch {
		case rand.Float64() < repeatFrac:
			motif := genRand(4)
			seq = make([]byte, recordLen)
			for j := range seq {
				seq[j] = motif[j%len(motif)]
			}
		default:
			seq = genRand(recordLen)
		}

		if rand.Float64() < nFraction {
			pos := 1 + rand.Intn(recordLen-2)
			seq[pos] = 'N'
		}

		writeRecord(w, i, seq)
	}
}
