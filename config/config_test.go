package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMinimalHistRun(t *testing.T) {
	cfg, err := Parse("zkc", []string{"hist", "-k", "15", "reads.fa"})
	require.NoError(t, err)
	require.Equal(t, ModeHist, cfg.Mode)
	require.Equal(t, 15, cfg.KmerSize)
	require.Equal(t, []string{"reads.fa"}, cfg.Files)
}

func TestParseExtractDefaultsCutoffWhenNeitherGiven(t *testing.T) {
	cfg, err := Parse("zkc", []string{"extract", "-k", "15", "-a", "1", "-b", "999", "reads.fa"})
	require.NoError(t, err)
	require.Equal(t, 50, cfg.Cutoff)
}

func TestParseExtractHonoursExplicitMaxDifference(t *testing.T) {
	cfg, err := Parse("zkc", []string{"extract", "-k", "15", "-a", "1", "-b", "999", "-x", "3", "reads.fa"})
	require.NoError(t, err)
	require.Equal(t, 3, cfg.MaxDifference)
	require.Equal(t, unset, cfg.Cutoff, "cutoff should stay unset when max-difference is given")
}

func TestParseRejectsMissingMinInExtractMode(t *testing.T) {
	_, err := Parse("zkc", []string{"extract", "-k", "15", "-b", "999", "reads.fa"})
	require.Error(t, err)
}

func TestParseRejectsConflictingInAndOut(t *testing.T) {
	_, err := Parse("zkc", []string{"hist", "-k", "15", "-i", "table.bin", "-o", "other.bin", "reads.fa"})
	require.Error(t, err)
}

func TestParseRejectsConflictingMaskFlags(t *testing.T) {
	_, err := Parse("zkc", []string{"hist", "-k", "15", "-d", "-s", "reads.fa"})
	require.Error(t, err)
}

func TestParseRejectsStrictMaskOffK15(t *testing.T) {
	_, err := Parse("zkc", []string{"hist", "-k", "13", "-s", "reads.fa"})
	require.Error(t, err)
}

func TestParseRejectsRegionSizeOffK15(t *testing.T) {
	_, err := Parse("zkc", []string{"hist", "-k", "13", "-r", "3", "reads.fa"})
	require.Error(t, err)
}

func TestParseRejectsNoFiles(t *testing.T) {
	_, err := Parse("zkc", []string{"hist", "-k", "15"})
	require.Error(t, err)
}

func TestParseRejectsBadKmerSize(t *testing.T) {
	_, err := Parse("zkc", []string{"hist", "-k", "11", "reads.fa"})
	require.Error(t, err)
}

func TestParseFlagsOverrideJSONDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"KmerSize": 13, "MinVal": 1, "MaxVal": 999}`), 0644))

	cfg, err := Parse("zkc", []string{"hist", "-C", path, "-k", "17", "reads.fa"})
	require.NoError(t, err)
	require.Equal(t, 17, cfg.KmerSize, "the flag override should win over the JSON default")
	require.Equal(t, 1, cfg.MinVal, "the JSON-supplied value should survive when no flag overrides it")
}

func TestParseRejectsQuietAndVerboseTogether(t *testing.T) {
	_, err := Parse("zkc", []string{"hist", "-k", "15", "-q", "-v", "reads.fa"})
	require.Error(t, err)
}

func TestParseRejectsEmptyArgs(t *testing.T) {
	_, err := Parse("zkc", nil)
	require.Error(t, err)
}
