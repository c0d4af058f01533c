// Package config assembles run configuration from an optional JSON
// file overlaid by command-line flags, mirroring the config-file +
// flag-overlay pattern used across this family of tools: flags only
// override a setting when explicitly given, so a config file can
// supply the defaults for an otherwise flag-driven invocation.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

// Mode selects which phase(s) a run performs.
type Mode string

const (
	ModeHist    Mode = "hist"
	ModeExtract Mode = "extract"
	ModeBoth    Mode = "both"
)

// MaskMode selects the EXTRACT masking policy. The numeric values
// match the mask argument convention used throughout this family of
// tools (and mirrored by scanner.Mode): 0 disabled, 1 strict, 2
// normal.
type MaskMode int

const (
	MaskDisabled MaskMode = 0
	MaskStrict   MaskMode = 1
	MaskNormal   MaskMode = 2
)

// unset is the sentinel for integer options that distinguish "not
// given" from the valid value 0 (Cutoff, MaxDifference).
const unset = -1

// Config holds one fully-resolved run's parameters.
type Config struct {
	Mode Mode

	KmerSize     int
	RegionSize   int
	IntervalSize int
	Canonical    bool

	TableIn  string
	TableOut string

	MinVal        int
	MaxVal        int
	Cutoff        int // unset (-1) until resolved per record when MaxDifference is set
	MaxDifference int // unset (-1) if not given

	Mask MaskMode

	LowComplexityMinDinuc int // 0 disables the pre-filter

	Quiet   bool
	Verbose bool
	Profile bool

	Files []string
}

// fromJSON loads a Config from a JSON file. Any field absent from the
// file keeps its starting value (unset for Cutoff and MaxDifference,
// MaskNormal for Mask, Go's zero value otherwise), which Parse's flag
// overlay then fills in or validates against.
func fromJSON(path string) (*Config, error) {
	fid, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer fid.Close()

	cfg := &Config{Cutoff: unset, MaxDifference: unset, Mask: MaskNormal}
	dec := json.NewDecoder(fid)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}

// Parse builds a Config from args (excluding the program name), in the
// style of flag.Parse() but against a private FlagSet so it can be
// called more than once in a process (tests call it per case; the
// teacher's single-shot binaries never needed to).
func Parse(progName string, args []string) (*Config, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("config: usage: %s <mode> [options] <file> [<file>...]", progName)
	}
	mode := Mode(args[0])
	args = args[1:]

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)

	configPath := fs.String("config", "", "JSON file of default configuration values")
	fs.StringVar(configPath, "C", "", "JSON file of default configuration values")

	k := fs.Int("kmer-size", 0, "k-mer size: 13, 15 or 17")
	fs.IntVar(k, "k", 0, "k-mer size: 13, 15 or 17")
	tin := fs.String("in", "", "load table from PATH (skip BUILD)")
	fs.StringVar(tin, "i", "", "load table from PATH (skip BUILD)")
	tout := fs.String("out", "", "save table to PATH after BUILD")
	fs.StringVar(tout, "o", "", "save table to PATH after BUILD")
	minVal := fs.Int("min", unset, "EXTRACT: lower band bound on counts")
	fs.IntVar(minVal, "a", unset, "EXTRACT: lower band bound on counts")
	maxVal := fs.Int("max", unset, "EXTRACT: upper band bound on counts")
	fs.IntVar(maxVal, "b", unset, "EXTRACT: upper band bound on counts")
	cutoff := fs.Int("cutoff", unset, "EXTRACT: minimum in-band windows per record to emit")
	fs.IntVar(cutoff, "u", unset, "EXTRACT: minimum in-band windows per record to emit")
	maxDiff := fs.Int("max-difference", unset, "EXTRACT: maximum shortfall from a record's maximum possible window count")
	fs.IntVar(maxDiff, "x", unset, "EXTRACT: maximum shortfall from a record's maximum possible window count")
	canonical := fs.Bool("canonical", false, "index the canonical (strand-symmetric) fingerprint")
	fs.BoolVar(canonical, "c", false, "index the canonical (strand-symmetric) fingerprint")
	regionSize := fs.Int("region-size", 0, "region size (k=15 only): 1, 3, 5 or 15")
	fs.IntVar(regionSize, "r", 0, "region size (k=15 only): 1, 3, 5 or 15")
	intervalSize := fs.Int("interval-size", 0, "interval size (k=15 only)")
	fs.IntVar(intervalSize, "g", 0, "interval size (k=15 only)")
	disableMask := fs.Bool("disable-mask", false, "EXTRACT: never mask bases")
	fs.BoolVar(disableMask, "d", false, "EXTRACT: never mask bases")
	strictMask := fs.Bool("strict-mask", false, "EXTRACT: mask bases outside a window's contributing regions (k=15 only)")
	fs.BoolVar(strictMask, "s", false, "EXTRACT: mask bases outside a window's contributing regions (k=15 only)")
	lowComplexity := fs.Int("low-complexity-min", 0, "skip windows with fewer than N distinct dinucleotides (0 disables)")
	quiet := fs.Bool("quiet", false, "suppress progress messages")
	fs.BoolVar(quiet, "q", false, "suppress progress messages")
	verbose := fs.Bool("verbose", false, "print extra progress detail")
	fs.BoolVar(verbose, "v", false, "print extra progress detail")
	profileFlag := fs.Bool("profile", false, "capture a CPU profile for this run")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	files := fs.Args()
	if len(files) < 1 {
		return nil, fmt.Errorf("config: usage: %s <mode> [options] <file> [<file>...]", progName)
	}

	var cfg *Config
	if *configPath != "" {
		var err error
		cfg, err = fromJSON(*configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = &Config{Cutoff: unset, MaxDifference: unset, Mask: MaskNormal}
	}

	cfg.Mode = mode
	cfg.Files = files

	if *k != 0 {
		cfg.KmerSize = *k
	}
	if *tin != "" {
		cfg.TableIn = *tin
	}
	if *tout != "" {
		cfg.TableOut = *tout
	}
	if *minVal != unset {
		cfg.MinVal = *minVal
	}
	if *maxVal != unset {
		cfg.MaxVal = *maxVal
	}
	if *cutoff != unset {
		cfg.Cutoff = *cutoff
	}
	if *maxDiff != unset {
		cfg.MaxDifference = *maxDiff
	}
	if *canonical {
		cfg.Canonical = true
	}
	if *regionSize != 0 {
		cfg.RegionSize = *regionSize
	}
	if *intervalSize != 0 {
		cfg.IntervalSize = *intervalSize
	}
	if *disableMask {
		cfg.Mask = MaskDisabled
	}
	if *strictMask {
		cfg.Mask = MaskStrict
	}
	if *lowComplexity != 0 {
		cfg.LowComplexityMinDinuc = *lowComplexity
	}
	if *quiet {
		cfg.Quiet = true
	}
	if *verbose {
		cfg.Verbose = true
	}
	if *profileFlag {
		cfg.Profile = true
	}

	if err := cfg.validate(*disableMask, *strictMask); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate(disableMask, strictMask bool) error {
	if cfg.Mode != ModeHist && cfg.Mode != ModeExtract && cfg.Mode != ModeBoth {
		return fmt.Errorf("config: unknown mode %q, want hist, extract or both", cfg.Mode)
	}
	if cfg.KmerSize != 13 && cfg.KmerSize != 15 && cfg.KmerSize != 17 {
		return fmt.Errorf("config: -k/--kmer-size must be 13, 15 or 17, got %d", cfg.KmerSize)
	}
	if cfg.TableIn != "" && cfg.TableOut != "" {
		return fmt.Errorf("config: -i/--in and -o/--out are mutually exclusive")
	}
	if cfg.RegionSize != 0 && cfg.KmerSize != 15 {
		return fmt.Errorf("config: -r/--region-size is only valid when k=15")
	}
	if cfg.IntervalSize != 0 && cfg.KmerSize != 15 {
		return fmt.Errorf("config: -g/--interval-size is only valid when k=15")
	}
	if disableMask && strictMask {
		return fmt.Errorf("config: -d/--disable-mask and -s/--strict-mask are mutually exclusive")
	}
	if cfg.Quiet && cfg.Verbose {
		return fmt.Errorf("config: -q/--quiet and -v/--verbose are mutually exclusive")
	}
	if strictMask && cfg.KmerSize != 15 {
		return fmt.Errorf("config: -s/--strict-mask requires k=15")
	}

	if cfg.Mode == ModeExtract || cfg.Mode == ModeBoth {
		if cfg.MinVal <= 0 {
			return fmt.Errorf("config: -a/--min is required and must be > 0 in extract mode")
		}
		if cfg.MaxVal <= 0 || cfg.MaxVal < cfg.MinVal {
			return fmt.Errorf("config: -b/--max is required, must be > 0 and >= --min")
		}
		if cfg.Cutoff == unset && cfg.MaxDifference == unset {
			cfg.Cutoff = 50
		}
	}

	if len(cfg.Files) == 0 {
		return fmt.Errorf("config: at least one input file is required")
	}

	return nil
}
