package repository

import (
	"encoding/json"
	"errors"
	"testing"

	"amcbackend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	rows [][]interface{}
	pos  int
	err  error
}

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.rows) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Scan(dest ...interface{}) error {
	row := f.rows[f.pos-1]
	if len(dest) != len(row) {
		return errors.New("column count mismatch")
	}
	for i, v := range row {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int:
			*d = v.(int)
		default:
			return errors.New("unsupported destination")
		}
	}
	return nil
}

func (f *fakeRows) Err() error { return f.err }

func TestScanCoverageRows(t *testing.T) {
	rows := &fakeRows{rows: [][]interface{}{
		{"HQ", "Tower", "East", "L1", "Lobby", "Reception", 4, 3},
		{"HQ", "Tower", "East", "L1", "Lobby", "Security", 2, 0},
	}}

	got, err := scanCoverageRows(rows)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.CoverageRow{
		SiteName: "HQ", BuildingName: "Tower", WingName: "East", FloorName: "L1",
		AreaName: "Lobby", RoomName: "Reception", Total: 4, Covered: 3,
	}, got[0])
}

func TestScanCoverageRows_Error(t *testing.T) {
	_, err := scanCoverageRows(&fakeRows{err: errors.New("connection reset")})
	assert.EqualError(t, err, "connection reset")

	_, err = scanCoverageRows(&fakeRows{rows: [][]interface{}{{"only one column"}}})
	assert.Error(t, err)
}

func TestBuildCoverageByLocation(t *testing.T) {
	raw := BuildCoverageByLocation([]models.CoverageRow{
		{SiteName: "HQ", BuildingName: "Tower", WingName: "West", FloorName: "L2", AreaName: "Pantry", RoomName: "R2", Total: 3, Covered: 1},
		{SiteName: "HQ", BuildingName: "Tower", WingName: "East", FloorName: "L1", AreaName: "Lobby", RoomName: "R1", Total: 2, Covered: 2},
		{SiteName: "HQ", BuildingName: "Tower", WingName: "West", FloorName: "L2", AreaName: "Pantry", RoomName: "R2", Total: 1, Covered: 1},
		{SiteName: "Annex", BuildingName: "Main", WingName: "-", FloorName: "G", AreaName: "Store", RoomName: "S1", Total: 0, Covered: 0},
	})

	out, err := json.Marshal(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{
	  "HQ": {"Tower": {
	    "West": {"L2": {"Pantry": {"R2": {"total": 4, "covered": 2, "percent": 0}}}},
	    "East": {"L1": {"Lobby": {"R1": {"total": 2, "covered": 2, "percent": 0}}}}
	  }},
	  "Annex": {"Main": {"-": {"G": {"Store": {"S1": {"total": 0, "covered": 0, "percent": 0}}}}}}
	}`, string(out))

	// JSONEq ignores key order, so check it directly.
	var sites []string
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		sites = append(sites, pair.Key)
	}
	assert.Equal(t, []string{"HQ", "Annex"}, sites)

	buildings, _ := raw.Get("HQ")
	wings, _ := buildings.Get("Tower")
	var wingNames []string
	for pair := wings.Oldest(); pair != nil; pair = pair.Next() {
		wingNames = append(wingNames, pair.Key)
	}
	assert.Equal(t, []string{"West", "East"}, wingNames)
}
