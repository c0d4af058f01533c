package counttable

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	tbl := New(13)
	tbl.Incr(0)
	tbl.Incr(0)
	tbl.Incr(42)
	tbl.Incr(tbl.Len() - 1)

	dir := t.TempDir()
	path := filepath.Join(dir, "table.bin")

	if err := Save(tbl, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path, tbl.K)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.K != tbl.K {
		t.Fatalf("K = %d, want %d", got.K, tbl.K)
	}
	if len(got.Counts) != len(tbl.Counts) {
		t.Fatalf("len(Counts) = %d, want %d", len(got.Counts), len(tbl.Counts))
	}
	for i := range tbl.Counts {
		if got.Counts[i] != tbl.Counts[i] {
			t.Fatalf("Counts[%d] = %d, want %d", i, got.Counts[i], tbl.Counts[i])
		}
	}

	// The plain image is exactly 4*4^k bytes: no header, no checksum,
	// no versioning.
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(4 * len(tbl.Counts)); info.Size() != want {
		t.Fatalf("file size = %d, want exactly %d", info.Size(), want)
	}
}

func TestSaveLoadRoundTripCompressed(t *testing.T) {
	tbl := New(13)
	tbl.Incr(7)

	dir := t.TempDir()
	path := filepath.Join(dir, "table.bin.sz")

	if err := Save(tbl, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path, tbl.K)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Get(7) != 1 {
		t.Fatalf("Get(7) = %d, want 1", got.Get(7))
	}
}

func TestLoadRejectsTruncatedFile(t *testing.T) {
	tbl := New(13)
	dir := t.TempDir()
	path := filepath.Join(dir, "table.bin")
	if err := Save(tbl, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data[:len(data)-1], 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path, tbl.K); err == nil {
		t.Fatal("expected Load to reject a file shorter than 4*4^k bytes")
	}
}

func TestLoadRejectsOversizedFile(t *testing.T) {
	tbl := New(13)
	dir := t.TempDir()
	path := filepath.Join(dir, "table.bin")
	if err := Save(tbl, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data = append(data, 0)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path, tbl.K); err == nil {
		t.Fatal("expected Load to reject a file longer than 4*4^k bytes")
	}
}

// A file that is the right size for a different k must also be
// rejected rather than silently reinterpreted, since the plain image
// carries no embedded k-mer size to check against.
func TestLoadRejectsSizeMismatchedForRequestedK(t *testing.T) {
	tbl := New(13)
	dir := t.TempDir()
	path := filepath.Join(dir, "table.bin")
	if err := Save(tbl, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := Load(path, 15); err == nil {
		t.Fatal("expected Load to reject a k=13 image requested as k=15")
	}
}
