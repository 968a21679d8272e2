package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"amcbackend/analytics"
	"amcbackend/config"
	"amcbackend/models"

	"github.com/gin-gonic/gin"
)

// AMCStatisticsStore is the data source behind the AMC analytics endpoints.
type AMCStatisticsStore interface {
	CoverageByLocation(ctx context.Context, q models.StatisticsQuery) (*models.CoverageByLocation, error)
	SiteNames(ctx context.Context, ids []int) ([]string, error)
	StatusStats(ctx context.Context, q models.StatisticsQuery) (models.AMCStatusStats, error)
	VisitCounts(ctx context.Context, q models.StatisticsQuery) (models.VisitCounts, error)
	UnitResourceCounts(ctx context.Context, q models.StatisticsQuery) (models.UnitResourceCounts, error)
	ServiceCounts(ctx context.Context, q models.StatisticsQuery) (models.ServiceCounts, error)
	ExpiryCounts(ctx context.Context, q models.StatisticsQuery) (models.ExpiryCounts, error)
	LatestSnapshots(ctx context.Context, siteID, limit int) ([]models.AMCCoverageSnapshot, error)
}

const dateLayout = "2006-01-02"

// defaultRange is the look-back used when the request names no dates.
const defaultRange = 30

// parseStatisticsQuery reads site_ids, from_date and to_date. Missing dates
// default to the 30 days ending today.
func parseStatisticsQuery(c *gin.Context, now time.Time) (models.StatisticsQuery, error) {
	var q models.StatisticsQuery

	ids, err := config.ParseIntList(c.Query("site_ids"))
	if err != nil {
		return q, errors.New("invalid site_ids: " + err.Error())
	}
	q.SiteIDs = ids

	today := now.UTC().Truncate(24 * time.Hour)
	q.ToDate = today
	if s := c.Query("to_date"); s != "" {
		if q.ToDate, err = time.Parse(dateLayout, s); err != nil {
			return q, errors.New("invalid to_date, expected YYYY-MM-DD")
		}
	}
	q.FromDate = q.ToDate.AddDate(0, 0, -defaultRange)
	if s := c.Query("from_date"); s != "" {
		if q.FromDate, err = time.Parse(dateLayout, s); err != nil {
			return q, errors.New("invalid from_date, expected YYYY-MM-DD")
		}
	}
	if q.FromDate.After(q.ToDate) {
		return q, errors.New("from_date must not be after to_date")
	}
	return q, nil
}

func filtersFor(ctx context.Context, store AMCStatisticsStore, q models.StatisticsQuery) (*models.Filters, error) {
	names, err := store.SiteNames(ctx, q.SiteIDs)
	if err != nil {
		return nil, err
	}
	ids := q.SiteIDs
	if ids == nil {
		ids = []int{}
	}
	return &models.Filters{
		SiteIDs:   ids,
		SiteNames: names,
		FromDate:  q.FromDate.Format(dateLayout),
		ToDate:    q.ToDate.Format(dateLayout),
	}, nil
}

// loadCoverageReport fetches the raw coverage for q and runs the rollup.
func loadCoverageReport(ctx context.Context, store AMCStatisticsStore, q models.StatisticsQuery, policy analytics.SummaryPolicy) (*models.CoverageReport, error) {
	raw, err := store.CoverageByLocation(ctx, q)
	if err != nil {
		return nil, err
	}
	filters, err := filtersFor(ctx, store, q)
	if err != nil {
		return nil, err
	}
	tree := analytics.BuildCoverageTree(raw)
	return &models.CoverageReport{
		Coverage: tree,
		Summary:  analytics.Summarize(tree, policy),
		Filters:  filters,
	}, nil
}

func queryOrAbort(c *gin.Context) (models.StatisticsQuery, bool) {
	q, err := parseStatisticsQuery(c, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return q, false
	}
	return q, true
}

func internalError(c *gin.Context, what string, err error) {
	log.Printf("%s: %v", what, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": what, "details": err.Error()})
}

// GetAMCCoverageByLocation godoc
// @Summary      AMC coverage rolled up by location
// @Description  Site > building > wing > floor > area > room tree with totals and percentages at every level, plus the dashboard summary.
// @Tags         amc-analytics
// @Security     BearerAuth
// @Produce      json
// @Param        site_ids   query  string  false  "Comma separated site ids"
// @Param        from_date  query  string  false  "YYYY-MM-DD"
// @Param        to_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  models.CoverageReport
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/amc/coverage_by_location [get]
func GetAMCCoverageByLocation(store AMCStatisticsStore, policy analytics.SummaryPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := queryOrAbort(c)
		if !ok {
			return
		}
		report, err := loadCoverageReport(c.Request.Context(), store, q, policy)
		if err != nil {
			internalError(c, "Failed to load coverage by location", err)
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// GetAMCCoverageStats godoc
// @Summary      AMC coverage summary
// @Tags         amc-analytics
// @Security     BearerAuth
// @Produce      json
// @Param        site_ids   query  string  false  "Comma separated site ids"
// @Param        from_date  query  string  false  "YYYY-MM-DD"
// @Param        to_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  models.CoverageSummary
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/amc/coverage_stats [get]
func GetAMCCoverageStats(store AMCStatisticsStore, policy analytics.SummaryPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := queryOrAbort(c)
		if !ok {
			return
		}
		raw, err := store.CoverageByLocation(c.Request.Context(), q)
		if err != nil {
			internalError(c, "Failed to load coverage by location", err)
			return
		}
		c.JSON(http.StatusOK, analytics.Summarize(analytics.BuildCoverageTree(raw), policy))
	}
}

// RollupAMCCoverage godoc
// @Summary      Roll up a coverage_by_location payload
// @Description  Accepts the raw six-level object and returns the annotated tree and summary. Reported leaf percentages are ignored.
// @Tags         amc-analytics
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.CoverageReport
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/amc/coverage_rollup [post]
func RollupAMCCoverage(policy analytics.SummaryPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
			return
		}
		raw, err := models.ParseCoverageByLocation(body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coverage_by_location payload", "details": err.Error()})
			return
		}
		tree := analytics.BuildCoverageTree(raw)
		c.JSON(http.StatusOK, models.CoverageReport{
			Coverage: tree,
			Summary:  analytics.Summarize(tree, policy),
		})
	}
}

// GetAMCStatus godoc
// @Summary      AMC status card
// @Tags         amc-analytics
// @Security     BearerAuth
// @Produce      json
// @Param        site_ids   query  string  false  "Comma separated site ids"
// @Param        from_date  query  string  false  "YYYY-MM-DD"
// @Param        to_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  models.AMCStatusSummary
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/amc/status [get]
func GetAMCStatus(store AMCStatisticsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := queryOrAbort(c)
		if !ok {
			return
		}
		stats, err := store.StatusStats(c.Request.Context(), q)
		if err != nil {
			internalError(c, "Failed to load AMC status", err)
			return
		}
		c.JSON(http.StatusOK, analytics.StatusSummary(stats))
	}
}

// distributionHandler serves one count split with its filters block.
func distributionHandler[T any](what string, load func(context.Context, models.StatisticsQuery) (T, error), split func(T) []models.DistributionEntry, store AMCStatisticsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := queryOrAbort(c)
		if !ok {
			return
		}
		counts, err := load(c.Request.Context(), q)
		if err != nil {
			internalError(c, "Failed to load "+what, err)
			return
		}
		filters, err := filtersFor(c.Request.Context(), store, q)
		if err != nil {
			internalError(c, "Failed to load filters", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": split(counts), "filters": filters})
	}
}

// GetAMCBreakdownVsPreventive godoc
// @Summary      Breakdown vs preventive visits
// @Tags         amc-analytics
// @Security     BearerAuth
// @Produce      json
// @Param        site_ids   query  string  false  "Comma separated site ids"
// @Param        from_date  query  string  false  "YYYY-MM-DD"
// @Param        to_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  models.DistributionResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/amc/breakdown_vs_preventive [get]
func GetAMCBreakdownVsPreventive(store AMCStatisticsStore) gin.HandlerFunc {
	return distributionHandler("visit counts", store.VisitCounts, analytics.BreakdownVsPreventive, store)
}

// GetAMCUnitResourceWise godoc
// @Summary      Service vs asset contracts
// @Tags         amc-analytics
// @Security     BearerAuth
// @Produce      json
// @Param        site_ids   query  string  false  "Comma separated site ids"
// @Param        from_date  query  string  false  "YYYY-MM-DD"
// @Param        to_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  models.DistributionResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/amc/unit_resource_wise [get]
func GetAMCUnitResourceWise(store AMCStatisticsStore) gin.HandlerFunc {
	return distributionHandler("contract resource counts", store.UnitResourceCounts, analytics.UnitResourceWise, store)
}

// GetAMCServiceStats godoc
// @Summary      Completed, pending and overdue services
// @Tags         amc-analytics
// @Security     BearerAuth
// @Produce      json
// @Param        site_ids   query  string  false  "Comma separated site ids"
// @Param        from_date  query  string  false  "YYYY-MM-DD"
// @Param        to_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  models.DistributionResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/amc/service_stats [get]
func GetAMCServiceStats(store AMCStatisticsStore) gin.HandlerFunc {
	return distributionHandler("service counts", store.ServiceCounts, analytics.ServiceStats, store)
}

// GetAMCExpiryAnalysis godoc
// @Summary      Expired contracts and 30/60/90 day forecast
// @Tags         amc-analytics
// @Security     BearerAuth
// @Produce      json
// @Param        site_ids  query  string  false  "Comma separated site ids"
// @Success      200  {array}   models.ExpiryBucket
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/amc/expiry_analysis [get]
func GetAMCExpiryAnalysis(store AMCStatisticsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := queryOrAbort(c)
		if !ok {
			return
		}
		counts, err := store.ExpiryCounts(c.Request.Context(), q)
		if err != nil {
			internalError(c, "Failed to load expiry counts", err)
			return
		}
		c.JSON(http.StatusOK, analytics.ExpiryAnalysis(counts))
	}
}

// GetAMCCoverageSnapshots godoc
// @Summary      Stored daily coverage snapshots
// @Tags         amc-analytics
// @Security     BearerAuth
// @Produce      json
// @Param        site_id  query  int  false  "Site id"
// @Param        limit    query  int  false  "Max rows (default 30, max 365)"
// @Success      200  {array}   models.AMCCoverageSnapshot
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/amc/coverage_snapshots [get]
func GetAMCCoverageSnapshots(store AMCStatisticsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		siteID, err := strconv.Atoi(c.DefaultQuery("site_id", "0"))
		if err != nil || siteID < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid site_id"})
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "30"))
		if err != nil || limit <= 0 || limit > 365 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 365"})
			return
		}
		snapshots, err := store.LatestSnapshots(c.Request.Context(), siteID, limit)
		if err != nil {
			internalError(c, "Failed to load coverage snapshots", err)
			return
		}
		if snapshots == nil {
			snapshots = []models.AMCCoverageSnapshot{}
		}
		c.JSON(http.StatusOK, snapshots)
	}
}
