package services

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"amcbackend/analytics"
	"amcbackend/models"

	"github.com/google/uuid"
)

// SnapshotStore is what the snapshot job reads from and writes to.
type SnapshotStore interface {
	ListSites(ctx context.Context, ids []int) ([]models.SiteGorm, error)
	CoverageByLocation(ctx context.Context, q models.StatisticsQuery) (*models.CoverageByLocation, error)
	SaveSnapshots(ctx context.Context, snapshots []models.AMCCoverageSnapshot) error
}

// SnapshotWindow is the contract look-back used for each snapshot.
const SnapshotWindow = 30 * 24 * time.Hour

// SnapshotJob records one coverage summary per site.
type SnapshotJob struct {
	store   SnapshotStore
	siteIDs []int
	policy  analytics.SummaryPolicy
	timeout time.Duration
	now     func() time.Time

	running int32
}

// NewSnapshotJob builds a job over siteIDs (all sites when empty).
func NewSnapshotJob(store SnapshotStore, siteIDs []int, policy analytics.SummaryPolicy) *SnapshotJob {
	return &SnapshotJob{
		store:   store,
		siteIDs: siteIDs,
		policy:  policy,
		timeout: 10 * time.Minute,
		now:     time.Now,
	}
}

// Run computes and stores a snapshot for every site and returns how many
// were written. A failing site aborts the run; nothing is saved for it.
func (j *SnapshotJob) Run(ctx context.Context) (int, error) {
	sites, err := j.store.ListSites(ctx, j.siteIDs)
	if err != nil {
		return 0, err
	}

	to := j.now().UTC().Truncate(24 * time.Hour)
	from := to.Add(-SnapshotWindow)

	snapshots := make([]models.AMCCoverageSnapshot, 0, len(sites))
	for _, site := range sites {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		raw, err := j.store.CoverageByLocation(ctx, models.StatisticsQuery{
			SiteIDs:  []int{site.ID},
			FromDate: from,
			ToDate:   to,
		})
		if err != nil {
			return 0, fmt.Errorf("site %d: %w", site.ID, err)
		}

		summary := analytics.Summarize(analytics.BuildCoverageTree(raw), j.policy)
		snapshots = append(snapshots, models.AMCCoverageSnapshot{
			ID:                     uuid.NewString(),
			SiteID:                 site.ID,
			SiteName:               site.Name,
			Policy:                 string(j.policy),
			TotalAssets:            summary.TotalAssets,
			CoveredAssets:          summary.CoveredAssets,
			UncoveredAssets:        summary.UncoveredAssets,
			OverallCoveragePercent: summary.OverallCoveragePercent,
			LocationCount:          summary.LocationCount,
			FromDate:               from,
			ToDate:                 to,
			CreatedAt:              j.now().UTC(),
		})
	}

	if err := j.store.SaveSnapshots(ctx, snapshots); err != nil {
		return 0, err
	}
	return len(snapshots), nil
}

// Trigger is the cron entry point. A trigger that fires while a previous
// run is still going is skipped.
func (j *SnapshotJob) Trigger() {
	if !atomic.CompareAndSwapInt32(&j.running, 0, 1) {
		log.Println("Coverage snapshot still running. Skipping this run.")
		return
	}
	defer atomic.StoreInt32(&j.running, 0)

	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	n, err := j.Run(ctx)
	if err != nil {
		log.Printf("Coverage snapshot failed: %v", err)
		return
	}
	log.Printf("Coverage snapshot stored %d site summaries in %s", n, time.Since(start).Round(time.Millisecond))
}
