package models

import (
	"time"
)

// GORM-compatible models with proper tags

// SiteGorm represents the sites table
type SiteGorm struct {
	ID   int    `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"column:name;not null" json:"name"`
}

// TableName specifies the table name for SiteGorm
func (SiteGorm) TableName() string {
	return "sites"
}

// AssetGorm represents the assets table. Location columns point at the six
// hierarchy tables.
type AssetGorm struct {
	ID         int  `gorm:"primaryKey;column:id" json:"id"`
	SiteID     int  `gorm:"column:site_id;not null" json:"site_id"`
	BuildingID int  `gorm:"column:building_id" json:"building_id"`
	WingID     int  `gorm:"column:wing_id" json:"wing_id"`
	FloorID    int  `gorm:"column:floor_id" json:"floor_id"`
	AreaID     int  `gorm:"column:area_id" json:"area_id"`
	RoomID     int  `gorm:"column:room_id" json:"room_id"`
	Critical   bool `gorm:"column:critical;default:false" json:"critical"`
}

// TableName specifies the table name for AssetGorm
func (AssetGorm) TableName() string {
	return "assets"
}

// AssetAMCGorm represents the asset_amcs table: one maintenance contract on
// an asset or a service.
type AssetAMCGorm struct {
	ID           int       `gorm:"primaryKey;column:id" json:"id"`
	SiteID       int       `gorm:"column:site_id;not null" json:"site_id"`
	AssetID      *int      `gorm:"column:asset_id" json:"asset_id,omitempty"`
	ServiceID    *int      `gorm:"column:service_id" json:"service_id,omitempty"`
	ResourceType string    `gorm:"column:resource_type;not null" json:"resource_type"` // asset | service
	AMCType      string    `gorm:"column:amc_type" json:"amc_type"`                    // comprehensive | non_comprehensive
	VendorName   string    `gorm:"column:vendor_name" json:"vendor_name"`
	Active       bool      `gorm:"column:active;default:true" json:"active"`
	StartDate    time.Time `gorm:"column:start_date;not null" json:"start_date"`
	EndDate      time.Time `gorm:"column:end_date;not null" json:"end_date"`
}

// TableName specifies the table name for AssetAMCGorm
func (AssetAMCGorm) TableName() string {
	return "asset_amcs"
}

// AMCVisitGorm represents the amc_visits table
type AMCVisitGorm struct {
	ID         int       `gorm:"primaryKey;column:id" json:"id"`
	AssetAMCID int       `gorm:"column:asset_amc_id;not null" json:"asset_amc_id"`
	SiteID     int       `gorm:"column:site_id;not null" json:"site_id"`
	VisitType  string    `gorm:"column:visit_type;not null" json:"visit_type"` // breakdown | preventive
	Status     string    `gorm:"column:status;not null" json:"status"`         // completed | pending
	VisitDate  time.Time `gorm:"column:visit_date;not null" json:"visit_date"`
}

// TableName specifies the table name for AMCVisitGorm
func (AMCVisitGorm) TableName() string {
	return "amc_visits"
}

// AMCCoverageSnapshot is the daily per-site coverage summary written by the
// snapshot job. Only the summary is stored, never the tree.
type AMCCoverageSnapshot struct {
	ID                     string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	SiteID                 int       `gorm:"column:site_id;not null;index" json:"site_id"`
	SiteName               string    `gorm:"column:site_name;not null" json:"site_name"`
	Policy                 string    `gorm:"column:policy;not null" json:"policy"`
	TotalAssets            int       `gorm:"column:total_assets" json:"total_assets"`
	CoveredAssets          int       `gorm:"column:covered_assets" json:"covered_assets"`
	UncoveredAssets        int       `gorm:"column:uncovered_assets" json:"uncovered_assets"`
	OverallCoveragePercent float64   `gorm:"column:overall_coverage_percent;type:numeric(6,1)" json:"overall_coverage_percent"`
	LocationCount          int       `gorm:"column:location_count" json:"location_count"`
	FromDate               time.Time `gorm:"column:from_date;type:date" json:"from_date"`
	ToDate                 time.Time `gorm:"column:to_date;type:date" json:"to_date"`
	CreatedAt              time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for AMCCoverageSnapshot
func (AMCCoverageSnapshot) TableName() string {
	return "amc_coverage_snapshots"
}
