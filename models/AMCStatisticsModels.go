package models

import "time"

// Filters echoes the query scope back to the dashboard.
type Filters struct {
	SiteIDs   []int    `json:"site_ids"`
	SiteNames []string `json:"site_names"`
	FromDate  string   `json:"from_date"`
	ToDate    string   `json:"to_date"`
}

// StatisticsQuery is the parsed scope of an AMC statistics request.
type StatisticsQuery struct {
	SiteIDs  []int
	FromDate time.Time
	ToDate   time.Time
}

// DistributionEntry is one slice of a count split (breakdown/preventive,
// completed/pending/overdue, ...). Percentages of a split are rounded
// independently and may add up to 99.9 or 100.1.
type DistributionEntry struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AMCStatusStats are the raw contract status counts.
type AMCStatusStats struct {
	ActiveAMCs             int `json:"active_amcs" gorm:"column:active_amcs"`
	InactiveAMCs           int `json:"inactive_amcs" gorm:"column:inactive_amcs"`
	TotalCount             int `json:"total_count" gorm:"column:total_count"`
	CriticalAssetsUnderAMC int `json:"critical_assets_under_amc" gorm:"-"`
	MissingAMC             int `json:"missing_amc" gorm:"-"`
	ComprehensiveAMCs      int `json:"comprehensive_amcs" gorm:"column:comprehensive_amcs"`
	NonComprehensiveAMCs   int `json:"non_comprehensive_amcs" gorm:"column:non_comprehensive_amcs"`
}

// AMCStatusSummary is the status card record.
type AMCStatusSummary struct {
	TotalAMCs              int `json:"totalAMCs"`
	ActiveAMCs             int `json:"activeAMCs"`
	InactiveAMCs           int `json:"inactiveAMCs"`
	CriticalAssetsUnderAMC int `json:"criticalAssetsUnderAMC"`
	MissingAMC             int `json:"missingAMC"`
	ComprehensiveAMCs      int `json:"comprehensiveAMCs"`
	NonComprehensiveAMCs   int `json:"nonComprehensiveAMCs"`
}

// VisitCounts splits AMC visits by kind.
type VisitCounts struct {
	Breakdown  int `json:"breakdown_count" gorm:"column:breakdown"`
	Preventive int `json:"preventive_count" gorm:"column:preventive"`
}

// UnitResourceCounts splits contracts by what they cover.
type UnitResourceCounts struct {
	Services int `json:"service_count" gorm:"column:services"`
	Assets   int `json:"asset_count" gorm:"column:assets"`
}

// ServiceCounts splits scheduled AMC services by state.
type ServiceCounts struct {
	Completed int `json:"completed_services" gorm:"column:completed"`
	Pending   int `json:"pending_services" gorm:"column:pending"`
	Overdue   int `json:"overdue_services" gorm:"column:overdue"`
}

// ExpiryCounts are expired contracts plus the 30/60/90 day forecast.
type ExpiryCounts struct {
	Expired int `json:"expired_count" gorm:"column:expired"`
	Days30  int `json:"days_30" gorm:"column:days30"`
	Days60  int `json:"days_60" gorm:"column:days60"`
	Days90  int `json:"days_90" gorm:"column:days90"`
}

// ExpiryBucket is one bar of the expiry chart.
type ExpiryBucket struct {
	Period        string `json:"period"`
	ExpiringCount int    `json:"expiringCount"`
	ExpiredCount  int    `json:"expiredCount"`
}
