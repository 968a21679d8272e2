package analytics

import "amcbackend/models"

// LabeledCount is one input slot of a distribution.
type LabeledCount struct {
	Label string
	Count int
}

// ToDistribution converts counts into percentages of their total, keeping the
// caller's label order. Each percentage is rounded on its own, so a split may
// sum to 99.9 or 100.1. A zero total gives 0 for every label.
func ToDistribution(counts ...LabeledCount) []models.DistributionEntry {
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	out := make([]models.DistributionEntry, 0, len(counts))
	for _, c := range counts {
		out = append(out, models.DistributionEntry{
			Label:      c.Label,
			Count:      c.Count,
			Percentage: Percent(c.Count, total),
		})
	}
	return out
}

// BreakdownVsPreventive splits AMC visits into Breakdown and Preventive.
func BreakdownVsPreventive(v models.VisitCounts) []models.DistributionEntry {
	return ToDistribution(
		LabeledCount{Label: "Breakdown", Count: v.Breakdown},
		LabeledCount{Label: "Preventive", Count: v.Preventive},
	)
}

// UnitResourceWise splits contracts into Services and Assets.
func UnitResourceWise(u models.UnitResourceCounts) []models.DistributionEntry {
	return ToDistribution(
		LabeledCount{Label: "Services", Count: u.Services},
		LabeledCount{Label: "Assets", Count: u.Assets},
	)
}

// ServiceStats splits scheduled services into Completed, Pending and Overdue.
func ServiceStats(s models.ServiceCounts) []models.DistributionEntry {
	return ToDistribution(
		LabeledCount{Label: "Completed", Count: s.Completed},
		LabeledCount{Label: "Pending", Count: s.Pending},
		LabeledCount{Label: "Overdue", Count: s.Overdue},
	)
}

// ExpiryAnalysis lays the expiry counts out as chart buckets.
func ExpiryAnalysis(e models.ExpiryCounts) []models.ExpiryBucket {
	return []models.ExpiryBucket{
		{Period: "Expired", ExpiredCount: e.Expired},
		{Period: "Next 30 Days", ExpiringCount: e.Days30},
		{Period: "Next 60 Days", ExpiringCount: e.Days60},
		{Period: "Next 90 Days", ExpiringCount: e.Days90},
	}
}

// StatusSummary maps raw status counts onto the status card.
func StatusSummary(s models.AMCStatusStats) models.AMCStatusSummary {
	return models.AMCStatusSummary{
		TotalAMCs:              s.TotalCount,
		ActiveAMCs:             s.ActiveAMCs,
		InactiveAMCs:           s.InactiveAMCs,
		CriticalAssetsUnderAMC: s.CriticalAssetsUnderAMC,
		MissingAMC:             s.MissingAMC,
		ComprehensiveAMCs:      s.ComprehensiveAMCs,
		NonComprehensiveAMCs:   s.NonComprehensiveAMCs,
	}
}
