package analytics

import (
	"fmt"
	"strings"

	"amcbackend/models"
)

// SummaryPolicy selects which nodes contribute asset counts to a summary.
type SummaryPolicy string

const (
	// SummarizeLeaves counts each room once. Totals are real asset counts.
	SummarizeLeaves SummaryPolicy = "leaves"
	// SummarizeAllLevels adds the counts of every node at every level, the way
	// the legacy dashboard did. Because parents already hold the sum of their
	// children, a room in a full six-level chain is counted six times.
	SummarizeAllLevels SummaryPolicy = "all_levels"
)

// ParseSummaryPolicy accepts "leaves" and "all_levels". Empty means leaves.
func ParseSummaryPolicy(s string) (SummaryPolicy, error) {
	switch SummaryPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SummarizeLeaves:
		return SummarizeLeaves, nil
	case SummarizeAllLevels:
		return SummarizeAllLevels, nil
	}
	return "", fmt.Errorf("unknown summary policy %q (want %q or %q)", s, SummarizeLeaves, SummarizeAllLevels)
}

// Summarize folds a coverage tree into the dashboard summary.
//
// LocationCount is the number of nodes at every level under either policy.
// Which nodes feed TotalAssets and CoveredAssets depends on policy; an
// unrecognised policy behaves like SummarizeLeaves.
func Summarize(tree []models.LocationNode, policy SummaryPolicy) models.CoverageSummary {
	var s models.CoverageSummary
	var walk func(nodes []models.LocationNode)
	walk = func(nodes []models.LocationNode) {
		for _, n := range nodes {
			s.LocationCount++
			if policy == SummarizeAllLevels || n.Level == models.LevelRoom {
				s.TotalAssets += n.Total
				s.CoveredAssets += n.Covered
			}
			walk(n.Children)
		}
	}
	walk(tree)

	s.UncoveredAssets = s.TotalAssets - s.CoveredAssets
	s.OverallCoveragePercent = Percent(s.CoveredAssets, s.TotalAssets)
	return s
}

// SummarizeSites returns one summary per site tree, in tree order.
func SummarizeSites(tree []models.LocationNode, policy SummaryPolicy) []models.CoverageSummary {
	out := make([]models.CoverageSummary, 0, len(tree))
	for _, site := range tree {
		out = append(out, Summarize([]models.LocationNode{site}, policy))
	}
	return out
}
