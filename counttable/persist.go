package counttable

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// Save writes t's raw counter image to path: no header, no checksum,
// no versioning, just len(t.Counts) little-endian uint32s back to
// back. A path ending in ".sz" is snappy-compressed on the way out,
// the same convention the rest of this family of tools uses for its
// large intermediate files.
func Save(t *Table, path string) error {
	fid, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fid.Close()

	var w io.Writer = bufio.NewWriter(fid)
	if strings.HasSuffix(path, ".sz") {
		sw := snappy.NewBufferedWriter(fid)
		defer sw.Close()
		w = sw
	}

	if err := binary.Write(w, binary.LittleEndian, t.Counts); err != nil {
		return err
	}

	if bw, ok := w.(*bufio.Writer); ok {
		return bw.Flush()
	}
	return nil
}

// Load reads a table previously written by Save for k-mer size k: the
// file (after snappy decompression, if path ends in ".sz") must be
// exactly 4*4^k bytes, one little-endian uint32 per fingerprint. No
// header, no checksum, no versioning, and no other length is
// accepted.
func Load(path string, k int) (*Table, error) {
	fid, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fid.Close()

	var r io.Reader = bufio.NewReader(fid)
	if strings.HasSuffix(path, ".sz") {
		r = snappy.NewReader(fid)
	}

	n := uint64(1) << uint(2*k)
	counts := make([]uint32, n)
	if err := binary.Read(r, binary.LittleEndian, counts); err != nil {
		return nil, fmt.Errorf("counttable: %s is not a valid k=%d table image: %w", path, k, err)
	}

	var extra [1]byte
	if _, err := io.ReadFull(r, extra[:]); err != io.EOF {
		return nil, fmt.Errorf("counttable: %s is longer than 4^%d entries (4*4^%d bytes)", path, k, k)
	}

	return &Table{K: k, Counts: counts}, nil
}
