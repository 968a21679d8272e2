package models

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level identifies one of the six fixed tiers of the location hierarchy.
type Level string

const (
	LevelSite     Level = "site"
	LevelBuilding Level = "building"
	LevelWing     Level = "wing"
	LevelFloor    Level = "floor"
	LevelArea     Level = "area"
	LevelRoom     Level = "room"
)

// Levels lists the hierarchy top-down.
var Levels = []Level{LevelSite, LevelBuilding, LevelWing, LevelFloor, LevelArea, LevelRoom}

// Depth returns the zero-based position of the level, site being 0.
// Unknown levels return -1.
func (l Level) Depth() int {
	for i, lv := range Levels {
		if lv == l {
			return i
		}
	}
	return -1
}

// Title returns the display label used in exports ("Site", "Room", ...).
func (l Level) Title() string {
	return cases.Title(language.Und).String(string(l))
}

// RoomCoverage is one leaf of the coverage_by_location payload.
//
// ReportedPercent carries whatever percentage the upstream report computed.
// It is kept only so the payload round-trips; the rollup never reads it and
// always derives the percentage from Total and Covered.
type RoomCoverage struct {
	Total           int     `json:"total"`
	Covered         int     `json:"covered"`
	ReportedPercent float64 `json:"percent"`
}

// The raw payload is six levels of keyed objects. Ordered maps keep the key
// order of the JSON document, which is the sibling order of the output tree.
type (
	Rooms              = orderedmap.OrderedMap[string, RoomCoverage]
	Areas              = orderedmap.OrderedMap[string, *Rooms]
	Floors             = orderedmap.OrderedMap[string, *Areas]
	Wings              = orderedmap.OrderedMap[string, *Floors]
	Buildings          = orderedmap.OrderedMap[string, *Wings]
	CoverageByLocation = orderedmap.OrderedMap[string, *Buildings]
)

// NewCoverageByLocation returns an empty payload ready for Set calls.
func NewCoverageByLocation() *CoverageByLocation {
	return orderedmap.New[string, *Buildings]()
}

// ParseCoverageByLocation decodes a coverage_by_location object, keeping key
// order at every level. Anything that is not six nested objects ending in
// room records is an error.
func ParseCoverageByLocation(data []byte) (*CoverageByLocation, error) {
	raw := NewCoverageByLocation()
	if err := json.Unmarshal(data, raw); err != nil {
		return nil, fmt.Errorf("decode coverage_by_location: %w", err)
	}
	return raw, nil
}

// AddRoom files row under its site/building/wing/floor/area path, creating
// missing levels in first-seen order. A room seen twice accumulates counts.
func AddRoom(raw *CoverageByLocation, row CoverageRow) {
	areas := childMap(childMap(childMap(childMap(raw, row.SiteName), row.BuildingName), row.WingName), row.FloorName)
	rooms := childMap(areas, row.AreaName)

	leaf, _ := rooms.Get(row.RoomName)
	leaf.Total += row.Total
	leaf.Covered += row.Covered
	rooms.Set(row.RoomName, leaf)
}

func childMap[V any](m *orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, V]], key string) *orderedmap.OrderedMap[string, V] {
	child, ok := m.Get(key)
	if !ok || child == nil {
		child = orderedmap.New[string, V]()
		m.Set(key, child)
	}
	return child
}

// LocationNode is one annotated node of the coverage tree. Children keeps the
// order of the raw input keys and is empty for rooms.
type LocationNode struct {
	Name     string         `json:"name"`
	Level    Level          `json:"level"`
	Total    int            `json:"total"`
	Covered  int            `json:"covered"`
	Percent  float64        `json:"percent"`
	Children []LocationNode `json:"children"`
}

// CoverageSummary is the flat record shown at the top of the coverage dashboard.
type CoverageSummary struct {
	TotalAssets            int     `json:"totalAssets"`
	CoveredAssets          int     `json:"coveredAssets"`
	UncoveredAssets        int     `json:"uncoveredAssets"`
	OverallCoveragePercent float64 `json:"overallCoveragePercent"`
	LocationCount          int     `json:"locationCount"`
}

// CoverageReport is the response of the coverage endpoints.
type CoverageReport struct {
	Coverage []LocationNode  `json:"coverage"`
	Summary  CoverageSummary `json:"summary"`
	Filters  *Filters        `json:"filters,omitempty"`
}

// CoverageRow is one room of the coverage query as read from the database.
type CoverageRow struct {
	SiteName     string
	BuildingName string
	WingName     string
	FloorName    string
	AreaName     string
	RoomName     string
	Total        int
	Covered      int
}
