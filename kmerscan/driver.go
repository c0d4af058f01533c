// Package kmerscan sequences BUILD, HIST and EXTRACT over one or more
// input files against a shared count table, the way the rest of this
// family of tools drives a pipeline stage from a resolved Config.
package kmerscan

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/george-hall-wtsi/zkc/config"
	"github.com/george-hall-wtsi/zkc/counttable"
	"github.com/george-hall-wtsi/zkc/histogram"
	"github.com/george-hall-wtsi/zkc/internal/assert"
	"github.com/george-hall-wtsi/zkc/kmerengine"
	"github.com/george-hall-wtsi/zkc/scanner"
	"github.com/george-hall-wtsi/zkc/seqio"
)

// Driver owns the count table and the resolved configuration for one
// run, and sequences its phases over Cfg.Files.
type Driver struct {
	Cfg    *config.Config
	Logger *log.Logger
	Out    io.Writer

	params kmerengine.Params
	table  *counttable.Table
}

// Run executes the phases Cfg.Mode calls for, in the order BUILD (or
// table load), optional save, then HIST and/or EXTRACT.
func (d *Driver) Run() error {
	p, err := kmerengine.NewParams(d.Cfg.KmerSize, d.Cfg.RegionSize, d.Cfg.IntervalSize)
	if err != nil {
		return err
	}
	d.params = p

	runID := uuid.New().String()
	d.logf("run %s: k=%d region=%d interval=%d mode=%s", runID, p.K, p.RegionSize, p.IntervalSize, d.Cfg.Mode)

	if d.Cfg.TableIn != "" {
		d.logf("loading table from %s", d.Cfg.TableIn)
		t, err := counttable.Load(d.Cfg.TableIn, p.K)
		if err != nil {
			return fmt.Errorf("kmerscan: loading table: %w", err)
		}
		d.table = t
	} else {
		d.table = counttable.New(p.K)
		if err := d.build(); err != nil {
			return err
		}
		if d.Cfg.TableOut != "" {
			if err := counttable.Save(d.table, d.Cfg.TableOut); err != nil {
				d.logf("warning: failed to save table to %s: %v", d.Cfg.TableOut, err)
			}
		}
	}

	if d.Cfg.Mode == config.ModeHist || d.Cfg.Mode == config.ModeBoth {
		d.hist()
	}
	if d.Cfg.Mode == config.ModeExtract || d.Cfg.Mode == config.ModeBoth {
		if err := d.extract(); err != nil {
			return err
		}
	}

	return nil
}

func (d *Driver) build() error {
	sc, err := scanner.New(d.params, d.Cfg.Canonical, d.table, 0, 0, scanner.MaskDisabled, d.Cfg.LowComplexityMinDinuc)
	if err != nil {
		return err
	}

	for _, path := range d.Cfg.Files {
		d.logf("BUILD: %s", path)
		if err := d.eachRecord(path, func(rec seqio.Record) {
			sc.Scan(rec.Seq, false)
		}); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) hist() {
	h := histogram.Build(d.table)
	for i, c := range h {
		if c > 0 {
			fmt.Fprintf(d.Out, "%d %d\n", i+1, c)
		}
	}
}

func (d *Driver) extract() error {
	mode := mapMaskMode(d.Cfg.Mask)
	sc, err := scanner.New(d.params, d.Cfg.Canonical, d.table, d.Cfg.MinVal, d.Cfg.MaxVal, mode, d.Cfg.LowComplexityMinDinuc)
	if err != nil {
		return err
	}

	for _, path := range d.Cfg.Files {
		d.logf("EXTRACT: %s", path)
		if err := d.eachRecord(path, func(rec seqio.Record) {
			hits := sc.Scan(rec.Seq, true)
			cutoff := d.effectiveCutoff(len(rec.Seq))
			if hits >= cutoff {
				fmt.Fprintf(d.Out, ">%s %d\n%s\n", rec.Name, hits, rec.Seq)
			}
		}); err != nil {
			return err
		}
	}
	return nil
}

// effectiveCutoff resolves the per-record cutoff: when --max-difference
// is set, it is the shortfall the record is allowed from its own
// maximum possible window count, clamped at 0 and further bounded by
// an explicit --cutoff if both were given; otherwise it is --cutoff
// (defaulted to 50 by config validation when neither flag was given).
func (d *Driver) effectiveCutoff(recordLen int) int {
	assert.Truef(d.Cfg.Cutoff >= 0 || d.Cfg.MaxDifference >= 0, "kmerscan: neither cutoff nor max-difference resolved")

	maxPossible := recordLen - d.params.K + 1
	if maxPossible < 0 {
		maxPossible = 0
	}

	if d.Cfg.MaxDifference < 0 {
		return d.Cfg.Cutoff
	}

	byDifference := maxPossible - d.Cfg.MaxDifference
	if byDifference < 0 {
		byDifference = 0
	}
	if d.Cfg.Cutoff < 0 {
		return byDifference
	}
	if d.Cfg.Cutoff < byDifference {
		return d.Cfg.Cutoff
	}
	return byDifference
}

func (d *Driver) eachRecord(path string, fn func(seqio.Record)) error {
	fid, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("kmerscan: opening %s: %w", path, err)
	}
	defer fid.Close()

	rd := seqio.NewReader(bufio.NewReader(fid))
	for {
		rec, err := rd.Next()
		if err == io.EOF {
			break
		}
		fn(rec)
	}
	return nil
}

func (d *Driver) logf(format string, args ...interface{}) {
	if d.Cfg.Quiet {
		return
	}
	d.Logger.Printf(format, args...)
}

func mapMaskMode(m config.MaskMode) scanner.Mode {
	switch m {
	case config.MaskDisabled:
		return scanner.MaskDisabled
	case config.MaskStrict:
		return scanner.MaskStrict
	default:
		return scanner.MaskNormal
	}
}
