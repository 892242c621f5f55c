// Package artifact renders named canonical groups into the pipeline's output artifacts:
// the canonical declaration block, the refactor mapping, and the raw audit table.
package artifact

import (
	"github.com/hexvar-cli/hexvar/hexcolor"
	"github.com/hexvar-cli/hexvar/namer"
)

// Declaration is a single canonical color declaration.
type Declaration struct {
	Identifier string       `json:"identifier" jsonschema:"description=Unique identifier assigned to the canonical group."`
	Hex        hexcolor.Hex `json:"hex" jsonschema:"description=Hex value of the group's representative color."`
	Count      int          `json:"count" jsonschema:"description=Total occurrences across all members of the group."`
}

// Target describes where an observed literal should be redirected.
type Target struct {
	Identifier string       `json:"identifier" jsonschema:"description=Identifier of the owning canonical group."`
	Hex        hexcolor.Hex `json:"hex" jsonschema:"description=Representative hex value of the owning group."`
}

// Summary aggregates scan-level statistics for the report header.
type Summary struct {
	FilesScanned     int `json:"files_scanned" jsonschema:"description=Number of files read during the scan."`
	UniqueColors     int `json:"unique_colors" jsonschema:"description=Number of distinct hex literals observed."`
	TotalOccurrences int `json:"total_occurrences" jsonschema:"description=Total hex literal occurrences across all files."`
	Clusters         int `json:"clusters" jsonschema:"description=Number of canonical groups after deduplication."`
}

// Report is the complete structured output of one pipeline run.
type Report struct {
	Summary Summary `json:"summary"`
	// Palette is the canonical declaration sequence, in cluster order.
	Palette []Declaration `json:"palette"`
	// Mapping redirects every observed literal to its owning group; its key set
	// is exactly the set of distinct input literals.
	Mapping map[hexcolor.Hex]Target `json:"mapping"`
	// Counts is the untouched observed-color-to-count table, for auditing.
	Counts map[hexcolor.Hex]int `json:"counts"`
}

// NewReport assembles the three output artifacts from the named cluster sequence
// and the raw count table. Pure accounting: no color math happens here.
func NewReport(named []namer.Named, counts map[hexcolor.Hex]int, filesScanned int) *Report {
	report := &Report{
		Palette: make([]Declaration, 0, len(named)),
		Mapping: make(map[hexcolor.Hex]Target),
		Counts:  counts,
	}

	total := 0
	for _, n := range named {
		report.Palette = append(report.Palette, Declaration{
			Identifier: n.Identifier,
			Hex:        n.Representative,
			Count:      n.Count(),
		})

		target := Target{Identifier: n.Identifier, Hex: n.Representative}
		for _, member := range n.Members {
			report.Mapping[member.Hex] = target
			total += member.Count
		}
	}

	report.Summary = Summary{
		FilesScanned:     filesScanned,
		UniqueColors:     len(counts),
		TotalOccurrences: total,
		Clusters:         len(named),
	}

	return report
}
