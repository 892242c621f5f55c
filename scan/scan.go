// Package scan implements the application's end-to-end extraction and deduplication pipeline.
package scan

import (
	"fmt"
	"io"
	"os"

	"github.com/hexvar-cli/hexvar/artifact"
	"github.com/hexvar-cli/hexvar/cluster"
	"github.com/hexvar-cli/hexvar/filesystem"
	"github.com/hexvar-cli/hexvar/icon"
	"github.com/hexvar-cli/hexvar/log"
	"github.com/hexvar-cli/hexvar/namer"
	"github.com/hexvar-cli/hexvar/scanner"
	"github.com/hexvar-cli/hexvar/util"
	"github.com/samber/mo"
)

// Options configures one pipeline invocation.
type Options struct {
	// Out receives the JSON report when OutPath is empty. Defaults to stdout.
	Out io.Writer
	// Roots are the files or directories to scan.
	Roots []string
	// Extensions restricts which files are read.
	Extensions []string
	// Ignore excludes any path containing one of these substrings.
	Ignore []string
	// Threshold is the clustering Delta E bound.
	Threshold float64
	// NameThreshold is the naming Delta E bound.
	NameThreshold float64
	// Prefix is prepended to every generated identifier.
	Prefix string
	// Table is the named reference table; defaults to the CSS web colors.
	Table namer.Table
	// CSSPath, when set, receives the :root declaration block.
	CSSPath string
	// OutPath, when set, receives the JSON report instead of Out.
	OutPath string
	// Progress enables the per-file erasable progress message.
	Progress bool
}

// Analysis is the pipeline state after clustering and naming, before rendering.
// The rewrite command consumes it directly instead of going through the report.
type Analysis struct {
	Scanned *scanner.Result
	Named   []namer.Named
	Report  *artifact.Report
}

// Analyze runs the computational pipeline: walk and aggregate, partition into
// clusters, assign identifiers, and assemble the report. No output is written.
func Analyze(options *Options) (*Analysis, error) {
	if options.Table == nil {
		options.Table = namer.Web()
	}

	onFile := mo.None[func(string)]()
	if options.Progress {
		var erase func()
		onFile = mo.Some(func(path string) {
			if erase != nil {
				erase()
			}
			erase = util.PrintErasable(fmt.Sprintf("%s Scanning %s...", icon.Get(icon.Scan), path))
		})
		defer func() {
			if erase != nil {
				erase()
			}
		}()
	}

	// Step 1: Traverse the roots and aggregate literal occurrences.
	scanned, err := scanner.Scan(&scanner.Options{
		Roots:      options.Roots,
		Extensions: options.Extensions,
		Ignore:     options.Ignore,
		OnFile:     onFile,
	})
	if err != nil {
		return nil, err
	}
	log.Infof("scanned %d files, %d unique literals", scanned.Files, scanned.Colors.Unique())

	// Step 2: Partition the observed colors into canonical groups.
	clusters, err := cluster.Partition(scanned.Colors.Observed(), options.Threshold)
	if err != nil {
		return nil, err
	}

	// Step 3: Assign a unique identifier to each group.
	named, err := namer.Assign(clusters, namer.Options{
		Table:         options.Table,
		NameThreshold: options.NameThreshold,
		Prefix:        options.Prefix,
	})
	if err != nil {
		return nil, err
	}

	// Step 4: Assemble the declaration, mapping, and audit artifacts.
	report := artifact.NewReport(named, scanned.Colors.Counts(), scanned.Files)

	return &Analysis{Scanned: scanned, Named: named, Report: report}, nil
}

// Run executes the full pipeline and renders its outputs: the summary banner to
// stderr, the optional CSS variables file, and the JSON report to OutPath or Out.
func Run(options *Options) error {
	analysis, err := Analyze(options)
	if err != nil {
		return err
	}

	// Banner goes to stderr so a piped stdout stays valid JSON.
	fmt.Fprintln(os.Stderr, Summarize(analysis.Report))

	if options.CSSPath != "" {
		if err := filesystem.API().WriteFile(options.CSSPath, []byte(analysis.Report.CSS()), 0644); err != nil {
			return fmt.Errorf("write css variables file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "%s Wrote CSS variables to %s\n", icon.Get(icon.Palette), options.CSSPath)
	}

	if options.OutPath != "" {
		file, err := filesystem.API().Create(options.OutPath)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer util.Ignore(file.Close)

		return analysis.Report.WriteJSON(file)
	}

	out := options.Out
	if out == nil {
		out = os.Stdout
	}
	return analysis.Report.WriteJSON(out)
}
