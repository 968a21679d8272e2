package analytics

import (
	"testing"

	"amcbackend/models"
)

const singleChainPayload = `{"Site": {"Building": {"Wing": {"Floor": {"Area": {"Room": {"total": 10, "covered": 6, "percent": 60}}}}}}}`

func TestSummarize_SingleChain(t *testing.T) {
	tree := BuildCoverageTree(mustParse(t, singleChainPayload))

	tests := []struct {
		policy SummaryPolicy
		want   models.CoverageSummary
	}{
		{
			policy: SummarizeLeaves,
			want:   models.CoverageSummary{TotalAssets: 10, CoveredAssets: 6, UncoveredAssets: 4, OverallCoveragePercent: 60, LocationCount: 6},
		},
		{
			// each of the six levels repeats the room's counts
			policy: SummarizeAllLevels,
			want:   models.CoverageSummary{TotalAssets: 60, CoveredAssets: 36, UncoveredAssets: 24, OverallCoveragePercent: 60, LocationCount: 6},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			if got := Summarize(tree, tt.policy); got != tt.want {
				t.Errorf("Summarize(%s) = %+v, want %+v", tt.policy, got, tt.want)
			}
		})
	}
}

func TestSummarize_Branching(t *testing.T) {
	tree := BuildCoverageTree(mustParse(t, singleAreaPayload))

	leaves := Summarize(tree, SummarizeLeaves)
	want := models.CoverageSummary{TotalAssets: 15, CoveredAssets: 11, UncoveredAssets: 4, OverallCoveragePercent: 73.3, LocationCount: 7}
	if leaves != want {
		t.Errorf("leaves = %+v, want %+v", leaves, want)
	}

	// five ancestor levels at 15/11 plus two rooms at 10/6 and 5/5
	all := Summarize(tree, SummarizeAllLevels)
	want = models.CoverageSummary{TotalAssets: 90, CoveredAssets: 66, UncoveredAssets: 24, OverallCoveragePercent: 73.3, LocationCount: 7}
	if all != want {
		t.Errorf("all levels = %+v, want %+v", all, want)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil, SummarizeLeaves)
	if got != (models.CoverageSummary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", got)
	}

	tree := BuildCoverageTree(mustParse(t, `{"A": {}, "B": {"B1": {}}}`))
	got = Summarize(tree, SummarizeAllLevels)
	if got.LocationCount != 3 || got.TotalAssets != 0 || got.OverallCoveragePercent != 0 {
		t.Errorf("Summarize(empty sites) = %+v", got)
	}
}

func TestSummarize_UnknownPolicyCountsLeaves(t *testing.T) {
	tree := BuildCoverageTree(mustParse(t, singleChainPayload))
	if got := Summarize(tree, SummaryPolicy("bogus")); got.TotalAssets != 10 {
		t.Errorf("TotalAssets = %d, want 10", got.TotalAssets)
	}
}

func TestSummarizeSites(t *testing.T) {
	tree := BuildCoverageTree(mustParse(t, `{
	  "North": {"B": {"W": {"F": {"A": {"R": {"total": 4, "covered": 1}}}}}},
	  "South": {"B": {"W": {"F": {"A": {"R": {"total": 2, "covered": 2}}}}}}
	}`))

	got := SummarizeSites(tree, SummarizeLeaves)
	if len(got) != 2 {
		t.Fatalf("got %d summaries", len(got))
	}
	if got[0].OverallCoveragePercent != 25 || got[1].OverallCoveragePercent != 100 {
		t.Errorf("per-site percent = %v, %v", got[0].OverallCoveragePercent, got[1].OverallCoveragePercent)
	}
}

func TestParseSummaryPolicy(t *testing.T) {
	for in, want := range map[string]SummaryPolicy{
		"":            SummarizeLeaves,
		"leaves":      SummarizeLeaves,
		" ALL_LEVELS": SummarizeAllLevels,
	} {
		got, err := ParseSummaryPolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseSummaryPolicy(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseSummaryPolicy("average"); err == nil {
		t.Error("ParseSummaryPolicy(average) succeeded, want error")
	}
}
