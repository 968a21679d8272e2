package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"amcbackend/models"
	"amcbackend/utils"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AMCRepository reads AMC statistics from Postgres. Coverage rows come from
// a grouped raw query; the flat counts and snapshots go through GORM.
type AMCRepository struct {
	db   *sql.DB
	gorm *gorm.DB
}

func NewAMCRepository(db *sql.DB, gormDB *gorm.DB) *AMCRepository {
	return &AMCRepository{db: db, gorm: gormDB}
}

// coverageQuery counts assets per room and those with an active contract
// overlapping [$2, $3]. Rows are ordered by location ids so the payload keeps
// the order locations were created in.
const coverageQuery = `
	SELECT s.name, b.name, w.name, f.name, ar.name, r.name,
	       COUNT(a.id) AS total,
	       COUNT(a.id) FILTER (WHERE EXISTS (
	           SELECT 1 FROM asset_amcs am
	           WHERE am.asset_id = a.id
	             AND am.active
	             AND am.start_date <= $3
	             AND am.end_date >= $2
	       )) AS covered
	FROM assets a
	JOIN sites s      ON s.id = a.site_id
	JOIN buildings b  ON b.id = a.building_id
	JOIN wings w      ON w.id = a.wing_id
	JOIN floors f     ON f.id = a.floor_id
	JOIN areas ar     ON ar.id = a.area_id
	JOIN rooms r      ON r.id = a.room_id
	WHERE ($1::bigint[] IS NULL OR a.site_id = ANY($1))
	GROUP BY s.id, s.name, b.id, b.name, w.id, w.name, f.id, f.name, ar.id, ar.name, r.id, r.name
	ORDER BY s.id, b.id, w.id, f.id, ar.id, r.id`

// CoverageByLocation returns the six-level coverage payload for q.
func (r *AMCRepository) CoverageByLocation(ctx context.Context, q models.StatisticsQuery) (*models.CoverageByLocation, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.SlowQueryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, coverageQuery, siteArray(q.SiteIDs), q.FromDate, q.ToDate)
	if err != nil {
		return nil, fmt.Errorf("query coverage by location: %w", err)
	}
	defer rows.Close()

	coverageRows, err := scanCoverageRows(rows)
	if err != nil {
		return nil, fmt.Errorf("scan coverage by location: %w", err)
	}
	return BuildCoverageByLocation(coverageRows), nil
}

// ListSites returns id and name of the requested sites, or of every site
// when ids is empty, ordered by id.
func (r *AMCRepository) ListSites(ctx context.Context, ids []int) ([]models.SiteGorm, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	var sites []models.SiteGorm
	tx := r.gorm.WithContext(ctx).Model(&models.SiteGorm{})
	if len(ids) > 0 {
		tx = tx.Where("id IN ?", ids)
	}
	if err := tx.Order("id").Find(&sites).Error; err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	return sites, nil
}

// StatusStats counts contracts by state and assets by contract presence.
func (r *AMCRepository) StatusStats(ctx context.Context, q models.StatisticsQuery) (models.AMCStatusStats, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	var stats models.AMCStatusStats
	err := r.contracts(ctx, q).
		Select(`COUNT(*) AS total_count,
			COUNT(*) FILTER (WHERE active) AS active_amcs,
			COUNT(*) FILTER (WHERE NOT active) AS inactive_amcs,
			COUNT(*) FILTER (WHERE amc_type = 'comprehensive') AS comprehensive_amcs,
			COUNT(*) FILTER (WHERE amc_type = 'non_comprehensive') AS non_comprehensive_amcs`).
		Scan(&stats).Error
	if err != nil {
		return stats, fmt.Errorf("count contracts: %w", err)
	}

	activeContract := `EXISTS (SELECT 1 FROM asset_amcs am WHERE am.asset_id = assets.id AND am.active)`
	var critical, missing int64
	if err := r.assets(ctx, q).Where("critical").Where(activeContract).Count(&critical).Error; err != nil {
		return stats, fmt.Errorf("count critical assets under amc: %w", err)
	}
	if err := r.assets(ctx, q).Where("NOT " + activeContract).Count(&missing).Error; err != nil {
		return stats, fmt.Errorf("count assets missing amc: %w", err)
	}
	stats.CriticalAssetsUnderAMC = int(critical)
	stats.MissingAMC = int(missing)
	return stats, nil
}

// VisitCounts splits visits in range into breakdown and preventive.
func (r *AMCRepository) VisitCounts(ctx context.Context, q models.StatisticsQuery) (models.VisitCounts, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	var counts models.VisitCounts
	err := r.visits(ctx, q).
		Select(`COUNT(*) FILTER (WHERE visit_type = 'breakdown') AS breakdown,
			COUNT(*) FILTER (WHERE visit_type = 'preventive') AS preventive`).
		Scan(&counts).Error
	if err != nil {
		return counts, fmt.Errorf("count visits: %w", err)
	}
	return counts, nil
}

// UnitResourceCounts splits contracts into service and asset contracts.
func (r *AMCRepository) UnitResourceCounts(ctx context.Context, q models.StatisticsQuery) (models.UnitResourceCounts, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	var counts models.UnitResourceCounts
	err := r.contracts(ctx, q).
		Select(`COUNT(*) FILTER (WHERE resource_type = 'service') AS services,
			COUNT(*) FILTER (WHERE resource_type = 'asset') AS assets`).
		Scan(&counts).Error
	if err != nil {
		return counts, fmt.Errorf("count contracts by resource: %w", err)
	}
	return counts, nil
}

// ServiceCounts splits scheduled visits into completed, pending (due today
// or later) and overdue (pending, due before today).
func (r *AMCRepository) ServiceCounts(ctx context.Context, q models.StatisticsQuery) (models.ServiceCounts, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	var counts models.ServiceCounts
	err := r.visits(ctx, q).
		Select(`COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COUNT(*) FILTER (WHERE status = 'pending' AND visit_date >= CURRENT_DATE) AS pending,
			COUNT(*) FILTER (WHERE status = 'pending' AND visit_date < CURRENT_DATE) AS overdue`).
		Scan(&counts).Error
	if err != nil {
		return counts, fmt.Errorf("count services: %w", err)
	}
	return counts, nil
}

// ExpiryCounts counts expired active contracts and those ending within the
// next 1-30, 31-60 and 61-90 days.
func (r *AMCRepository) ExpiryCounts(ctx context.Context, q models.StatisticsQuery) (models.ExpiryCounts, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	var counts models.ExpiryCounts
	tx := r.gorm.WithContext(ctx).Model(&models.AssetAMCGorm{}).Where("active")
	if len(q.SiteIDs) > 0 {
		tx = tx.Where("site_id IN ?", q.SiteIDs)
	}
	err := tx.Select(`COUNT(*) FILTER (WHERE end_date < CURRENT_DATE) AS expired,
			COUNT(*) FILTER (WHERE end_date >= CURRENT_DATE AND end_date < CURRENT_DATE + 30) AS days30,
			COUNT(*) FILTER (WHERE end_date >= CURRENT_DATE + 30 AND end_date < CURRENT_DATE + 60) AS days60,
			COUNT(*) FILTER (WHERE end_date >= CURRENT_DATE + 60 AND end_date < CURRENT_DATE + 90) AS days90`).
		Scan(&counts).Error
	if err != nil {
		return counts, fmt.Errorf("count expiring contracts: %w", err)
	}
	return counts, nil
}

// SaveSnapshots inserts snapshot rows in one statement.
func (r *AMCRepository) SaveSnapshots(ctx context.Context, snapshots []models.AMCCoverageSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	if err := r.gorm.WithContext(ctx).Create(&snapshots).Error; err != nil {
		return fmt.Errorf("save coverage snapshots: %w", err)
	}
	return nil
}

// LatestSnapshots returns up to limit snapshots, newest first, optionally for
// one site (siteID 0 means all sites).
func (r *AMCRepository) LatestSnapshots(ctx context.Context, siteID, limit int) ([]models.AMCCoverageSnapshot, error) {
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	var snapshots []models.AMCCoverageSnapshot
	tx := r.gorm.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if siteID > 0 {
		tx = tx.Where("site_id = ?", siteID)
	}
	if err := tx.Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("load coverage snapshots: %w", err)
	}
	return snapshots, nil
}

// SiteNames resolves ids to names for the filters block.
func (r *AMCRepository) SiteNames(ctx context.Context, ids []int) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	ctx, cancel := utils.QueryContext(ctx, utils.FastQueryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT name FROM sites WHERE id = ANY($1) ORDER BY id`, siteArray(ids))
	if err != nil {
		return nil, fmt.Errorf("query site names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan site name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *AMCRepository) contracts(ctx context.Context, q models.StatisticsQuery) *gorm.DB {
	tx := r.gorm.WithContext(ctx).Model(&models.AssetAMCGorm{}).
		Where("start_date <= ? AND end_date >= ?", endOfDay(q.ToDate), q.FromDate)
	if len(q.SiteIDs) > 0 {
		tx = tx.Where("site_id IN ?", q.SiteIDs)
	}
	return tx
}

func (r *AMCRepository) visits(ctx context.Context, q models.StatisticsQuery) *gorm.DB {
	tx := r.gorm.WithContext(ctx).Model(&models.AMCVisitGorm{}).
		Where("visit_date >= ? AND visit_date <= ?", q.FromDate, endOfDay(q.ToDate))
	if len(q.SiteIDs) > 0 {
		tx = tx.Where("site_id IN ?", q.SiteIDs)
	}
	return tx
}

func (r *AMCRepository) assets(ctx context.Context, q models.StatisticsQuery) *gorm.DB {
	tx := r.gorm.WithContext(ctx).Model(&models.AssetGorm{})
	if len(q.SiteIDs) > 0 {
		tx = tx.Where("site_id IN ?", q.SiteIDs)
	}
	return tx
}

// siteArray converts ids to a Postgres bigint[]; no ids becomes NULL.
func siteArray(ids []int) interface{} {
	if len(ids) == 0 {
		return pq.Array([]int64(nil))
	}
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return pq.Array(out)
}

func endOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
