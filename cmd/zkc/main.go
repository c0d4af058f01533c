// Command zkc counts and queries k-mers in FASTA/FASTQ sequence
// files: it can build an abundance histogram, extract records with
// enough in-band k-mers, or both.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/george-hall-wtsi/zkc/config"
	"github.com/george-hall-wtsi/zkc/kmerscan"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := log.New(os.Stderr, "", log.Ltime)

	if cfg.Profile {
		p := profile.Start(profile.ProfilePath("."))
		defer p.Stop()
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	d := &kmerscan.Driver{Cfg: cfg, Logger: logger, Out: out}

	if err := run(d); err != nil {
		out.Flush()
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

// run isolates the internal assertion/panic boundary: malformed input
// and a triggered invariant surface as a panic, and this is the only
// place that recovers one. Other fatal conditions after argument
// parsing (an input file or table that cannot be opened or loaded)
// come back from Run as ordinary errors.
func run(d *kmerscan.Driver) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("zkc: %v", r)
		}
	}()
	return d.Run()
}
