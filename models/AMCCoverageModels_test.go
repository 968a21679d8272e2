package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	for i, l := range Levels {
		assert.Equal(t, i, l.Depth())
	}
	assert.Equal(t, -1, Level("basement").Depth())
	assert.Equal(t, "Site", LevelSite.Title())
	assert.Equal(t, "Room", LevelRoom.Title())
}

func TestAddRoom(t *testing.T) {
	raw := NewCoverageByLocation()
	AddRoom(raw, CoverageRow{SiteName: "S", BuildingName: "B", WingName: "W", FloorName: "F", AreaName: "A", RoomName: "R2", Total: 3, Covered: 1})
	AddRoom(raw, CoverageRow{SiteName: "S", BuildingName: "B", WingName: "W", FloorName: "F", AreaName: "A", RoomName: "R1", Total: 2, Covered: 2})
	AddRoom(raw, CoverageRow{SiteName: "S", BuildingName: "B", WingName: "W", FloorName: "F", AreaName: "A", RoomName: "R2", Total: 4, Covered: 4})

	out, err := json.Marshal(raw)
	require.NoError(t, err)
	assert.Equal(t,
		`{"S":{"B":{"W":{"F":{"A":{"R2":{"total":7,"covered":5,"percent":0},"R1":{"total":2,"covered":2,"percent":0}}}}}}}`,
		string(out))
}

func TestParseCoverageByLocation_KeepsReportedPercent(t *testing.T) {
	raw, err := ParseCoverageByLocation([]byte(`{"S": {"B": {"W": {"F": {"A": {"R": {"total": 4, "covered": 1, "percent": 80}}}}}}}`))
	require.NoError(t, err)

	b, _ := raw.Get("S")
	w, _ := b.Get("B")
	f, _ := w.Get("W")
	a, _ := f.Get("F")
	rooms, _ := a.Get("A")
	room, ok := rooms.Get("R")
	require.True(t, ok)
	assert.Equal(t, RoomCoverage{Total: 4, Covered: 1, ReportedPercent: 80}, room)
}
