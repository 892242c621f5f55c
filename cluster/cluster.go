// Package cluster implements the greedy perceptual grouping of observed hex colors.
//
// Colors are processed in descending occurrence order (ties broken by first-seen
// order) and each one joins the first existing cluster whose representative lies
// within the configured Delta E threshold, or opens a new cluster otherwise.
// The representative is fixed when a cluster is created: since colors arrive in
// descending count order, the opener is guaranteed to be the most frequent member
// the cluster will ever hold, so no re-election pass is needed.
package cluster

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/hexvar-cli/hexvar/hexcolor"
)

// ErrThresholdOutOfRange indicates a negative or non-finite clustering threshold.
var ErrThresholdOutOfRange = errors.New("clustering threshold out of range")

// DefaultThreshold is the Delta E below which two colors are treated as visually equivalent.
const DefaultThreshold = 10.0

// Observed pairs a normalized hex literal with its occurrence count in the scanned corpus.
type Observed struct {
	Hex   hexcolor.Hex
	Count int
}

// Cluster is a group of observed colors judged perceptually equivalent.
// Every member lies within the partition threshold of the representative.
type Cluster struct {
	Representative hexcolor.Hex
	Lab            hexcolor.Lab
	Members        []Observed
}

// Count returns the total number of occurrences across all cluster members.
func (c *Cluster) Count() (total int) {
	for _, m := range c.Members {
		total += m.Count
	}
	return total
}

// Partition groups the observed colors into clusters under the given Delta E threshold.
//
// The input slice must be in first-seen order; that order is the deterministic
// tie-break for equal counts, and the whole partition is reproducible only if the
// caller preserves it across runs. Every observed color lands in exactly one
// cluster. An empty input yields an empty partition, not an error.
func Partition(observed []Observed, threshold float64) ([]Cluster, error) {
	if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, fmt.Errorf("%w: %v", ErrThresholdOutOfRange, threshold)
	}

	ordered := make([]Observed, len(observed))
	copy(ordered, observed)

	// Stable sort keeps first-seen order within equal counts.
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Count > ordered[j].Count
	})

	var clusters []Cluster
	for _, obs := range ordered {
		lab, err := obs.Hex.Lab()
		if err != nil {
			return nil, err
		}

		// First match in creation order wins, not the nearest representative.
		matched := false
		for i := range clusters {
			if hexcolor.DeltaE(lab, clusters[i].Lab) < threshold {
				clusters[i].Members = append(clusters[i].Members, obs)
				matched = true
				break
			}
		}

		if !matched {
			clusters = append(clusters, Cluster{
				Representative: obs.Hex,
				Lab:            lab,
				Members:        []Observed{obs},
			})
		}
	}

	return clusters, nil
}
