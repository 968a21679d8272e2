package repository

import "amcbackend/models"

// rowScanner is the part of *sql.Rows the coverage scan needs.
type rowScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanCoverageRows(rows rowScanner) ([]models.CoverageRow, error) {
	var out []models.CoverageRow
	for rows.Next() {
		var r models.CoverageRow
		if err := rows.Scan(&r.SiteName, &r.BuildingName, &r.WingName, &r.FloorName,
			&r.AreaName, &r.RoomName, &r.Total, &r.Covered); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// BuildCoverageByLocation folds per-room rows into the nested payload.
// Locations appear in the order of their first row.
func BuildCoverageByLocation(rows []models.CoverageRow) *models.CoverageByLocation {
	raw := models.NewCoverageByLocation()
	for _, row := range rows {
		models.AddRoom(raw, row)
	}
	return raw
}
