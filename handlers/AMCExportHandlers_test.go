package handlers

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"amcbackend/analytics"
	"amcbackend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport(t *testing.T) *models.CoverageReport {
	tree := analytics.BuildCoverageTree(sampleCoverage(t))
	return &models.CoverageReport{
		Coverage: tree,
		Summary:  analytics.Summarize(tree, analytics.SummarizeLeaves),
		Filters:  &models.Filters{SiteIDs: []int{1}, SiteNames: []string{"SiteX"}, FromDate: "2024-01-01", ToDate: "2024-01-31"},
	}
}

func TestFlattenTree_DepthFirst(t *testing.T) {
	rows := flattenTree(sampleReport(t).Coverage, 0, nil)

	require.Len(t, rows, 7)
	var got []string
	for _, r := range rows {
		got = append(got, r.Node.Name)
		assert.Equal(t, r.Node.Level.Depth(), r.Depth)
	}
	assert.Equal(t, []string{"SiteX", "Bldg1", "WingA", "Floor1", "AreaA", "Room1", "Room2"}, got)
}

func TestBuildCoverageWorkbook(t *testing.T) {
	f, err := BuildCoverageWorkbook(sampleReport(t))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{coverageSheet, summarySheet}, f.GetSheetList())

	rows, err := f.GetRows(coverageSheet)
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, coverageHeaders, rows[0])
	assert.Equal(t, []string{"Site", "SiteX", "15", "11", "4", "73.3"}, rows[1])
	assert.Equal(t, []string{"Room", "Room1", "10", "6", "4", "60"}, rows[6])

	total, err := f.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "15", total)
	sites, err := f.GetCellValue(summarySheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, "SiteX", sites)
}

func TestBuildCoveragePDF(t *testing.T) {
	var buf bytes.Buffer
	pdf := BuildCoveragePDF(sampleReport(t), time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, pdf.Output(&buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, 1, pdf.PageCount())
}

func TestExportEndpoints(t *testing.T) {
	r := newTestRouter(&fakeStore{coverage: sampleCoverage(t)})

	w := do(r, http.MethodGet, "/api/amc/coverage_by_location/export.xlsx?site_ids=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	name, err := f.GetCellValue(coverageSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "SiteX", name)

	w = do(r, http.MethodGet, "/api/amc/coverage_by_location/export.pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = do(r, http.MethodGet, "/api/amc/coverage_by_location/export.pdf?to_date=bad", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
