// Package namer assigns stable, readable identifiers to canonical color groups.
//
// A group whose representative sits close enough to a named reference color
// adopts that color's name; everything else falls back to the representative's
// hex digits. A fixed prefix keeps every identifier valid as a stylesheet
// custom property name (letters, digits, and hyphens, never digit-first).
package namer

import (
	"strconv"
	"strings"

	"github.com/hexvar-cli/hexvar/cluster"
	"github.com/hexvar-cli/hexvar/hexcolor"
	"github.com/samber/mo"
)

// DefaultNameThreshold is the Delta E below which a representative adopts a
// reference color's name. Deliberately much tighter than the clustering
// threshold: a borrowed name must be a near-exact visual match.
const DefaultNameThreshold = 2.5

// DefaultPrefix is the identifier prefix used when none is configured.
const DefaultPrefix = "color"

// Named pairs a cluster with its assigned identifier.
type Named struct {
	cluster.Cluster
	Identifier string
}

// Options controls identifier assignment.
type Options struct {
	// Table is the read-only reference table to borrow names from.
	Table Table
	// NameThreshold is the maximum Delta E for a name match.
	NameThreshold float64
	// Prefix is prepended (hyphen-separated) to every identifier.
	Prefix string
}

// Assign derives a unique identifier for each cluster, in cluster order.
// Collisions are resolved by appending a numeric suffix (1, 2, 3, ...) until
// the identifier is unused, so assignments are deterministic for a fixed
// cluster sequence.
func Assign(clusters []cluster.Cluster, options Options) ([]Named, error) {
	if options.Prefix == "" {
		options.Prefix = DefaultPrefix
	}

	labs := make([]hexcolor.Lab, len(options.Table))
	for i, ref := range options.Table {
		lab, err := ref.Hex.Lab()
		if err != nil {
			return nil, err
		}
		labs[i] = lab
	}

	taken := make(map[string]struct{})
	named := make([]Named, 0, len(clusters))

	for _, c := range clusters {
		base := strings.TrimPrefix(string(c.Representative), "#")
		if match := nearest(c.Lab, options.Table, labs, options.NameThreshold); match.IsPresent() {
			base = Slugify(match.MustGet().Name)
		}

		identifier := options.Prefix + "-" + base
		for suffix := 1; ; suffix++ {
			if _, exists := taken[identifier]; !exists {
				break
			}
			identifier = options.Prefix + "-" + base + "-" + strconv.Itoa(suffix)
		}
		taken[identifier] = struct{}{}

		named = append(named, Named{Cluster: c, Identifier: identifier})
	}

	return named, nil
}

// nearest returns the closest reference color when it lies within the threshold.
func nearest(lab hexcolor.Lab, table Table, labs []hexcolor.Lab, threshold float64) mo.Option[Reference] {
	best := mo.None[Reference]()
	bestDistance := threshold

	for i, ref := range table {
		if d := hexcolor.DeltaE(lab, labs[i]); d < bestDistance {
			best = mo.Some(ref)
			bestDistance = d
		}
	}

	return best
}

// Slugify lowercases a name and collapses every non-alphanumeric run into a hyphen.
func Slugify(name string) string {
	var b strings.Builder
	pending := false

	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteRune('-')
			pending = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
