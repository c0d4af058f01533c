package kmerengine

import "testing"

func TestCode(t *testing.T) {
	cases := []struct {
		b    byte
		want uint64
		ok   bool
	}{
		{'A', 0, true}, {'a', 0, true},
		{'C', 1, true}, {'c', 1, true},
		{'G', 2, true}, {'g', 2, true},
		{'T', 3, true}, {'t', 3, true},
		{'N', 0, false}, {'n', 0, false},
		{'-', 0, false}, {' ', 0, false},
	}

	for _, c := range cases {
		got, ok := Code(c.b)
		if ok != c.ok {
			t.Fatalf("Code(%q) ok = %v, want %v", c.b, ok, c.ok)
		}
		if ok && got != c.want {
			t.Fatalf("Code(%q) = %d, want %d", c.b, got, c.want)
		}
	}
}
