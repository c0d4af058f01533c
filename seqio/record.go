package seqio

// Record is one FASTA or FASTQ entry. Qual is nil for FASTA records;
// for FASTQ records it holds the qualities and its length always equals
// len(Seq).
type Record struct {
	Name string
	Seq  []byte
	Qual []byte
}
