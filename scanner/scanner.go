// Package scanner walks source trees and extracts hexadecimal color literals.
//
// Files are treated as plain text: no stylesheet or template syntax is parsed,
// only substrings matching the hex literal pattern are collected. Occurrence
// counts are accumulated together with first-seen order, which downstream
// clustering relies on as its deterministic tie-break.
package scanner

import (
	"regexp"

	"github.com/hexvar-cli/hexvar/cluster"
	"github.com/hexvar-cli/hexvar/filesystem"
	"github.com/hexvar-cli/hexvar/hexcolor"
	"github.com/hexvar-cli/hexvar/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// pattern matches 8, 6, or 3 digit hex literals. Longest alternative first, and
// deliberately no 4-digit form.
var pattern = regexp.MustCompile(`#(?:[0-9a-fA-F]{8}|[0-9a-fA-F]{6}|[0-9a-fA-F]{3})`)

// Occurrences accumulates normalized literals with their counts, remembering
// the order in which distinct literals were first seen.
type Occurrences struct {
	counts map[hexcolor.Hex]int
	order  []hexcolor.Hex
}

// NewOccurrences returns an empty accumulator.
func NewOccurrences() *Occurrences {
	return &Occurrences{counts: make(map[hexcolor.Hex]int)}
}

// Add records n further occurrences of a literal.
func (o *Occurrences) Add(h hexcolor.Hex, n int) {
	if _, seen := o.counts[h]; !seen {
		o.order = append(o.order, h)
	}
	o.counts[h] += n
}

// Count returns the recorded occurrence count for a literal.
func (o *Occurrences) Count(h hexcolor.Hex) int {
	return o.counts[h]
}

// Unique returns the number of distinct literals observed.
func (o *Occurrences) Unique() int {
	return len(o.counts)
}

// Total returns the total number of occurrences across all literals.
func (o *Occurrences) Total() int {
	return lo.Sum(lo.Values(o.counts))
}

// Observed returns the accumulated colors in first-seen order, ready for clustering.
func (o *Occurrences) Observed() []cluster.Observed {
	return lo.Map(o.order, func(h hexcolor.Hex, _ int) cluster.Observed {
		return cluster.Observed{Hex: h, Count: o.counts[h]}
	})
}

// Counts returns a copy of the raw count table for the audit artifact.
func (o *Occurrences) Counts() map[hexcolor.Hex]int {
	copied := make(map[hexcolor.Hex]int, len(o.counts))
	for h, n := range o.counts {
		copied[h] = n
	}
	return copied
}

// Extract accumulates every hex literal found in the content.
// The pattern guarantees every match parses, so normalization cannot fail here.
func (o *Occurrences) Extract(content string) {
	for _, match := range pattern.FindAllString(content, -1) {
		o.Add(lo.Must(hexcolor.Parse(match)), 1)
	}
}

// Options configures a scan.
type Options struct {
	// Roots are the files or directories to traverse.
	Roots []string
	// Extensions restricts which files are read (without the leading dot).
	Extensions []string
	// Ignore excludes any path containing one of these substrings.
	Ignore []string
	// OnFile is invoked with each file path before it is read.
	OnFile mo.Option[func(path string)]
}

// Result is the outcome of a scan.
type Result struct {
	Files  int
	Colors *Occurrences
}

// Scan traverses the configured roots in a fixed, repeatable order and
// aggregates every extracted literal. Unreadable files are logged and skipped;
// they never abort the scan.
func Scan(options *Options) (*Result, error) {
	paths, err := Files(options.Roots, options.Extensions, options.Ignore)
	if err != nil {
		return nil, err
	}

	result := &Result{Colors: NewOccurrences()}
	for _, path := range paths {
		if options.OnFile.IsPresent() {
			options.OnFile.MustGet()(path)
		}

		content, err := filesystem.API().ReadFile(path)
		if err != nil {
			log.Warnf("skipping unreadable file %s: %v", path, err)
			continue
		}

		result.Files++
		result.Colors.Extract(string(content))
	}

	return result, nil
}
