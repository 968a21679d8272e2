package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"amcbackend/analytics"
	"amcbackend/models"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	coverageSheet = "Coverage"
	summarySheet  = "Summary"
)

var coverageHeaders = []string{"Level", "Location", "Total Assets", "Covered", "Uncovered", "Coverage %"}

// flatRow is one node of the tree in depth-first order.
type flatRow struct {
	Depth int
	Node  models.LocationNode
}

func flattenTree(nodes []models.LocationNode, depth int, out []flatRow) []flatRow {
	for _, n := range nodes {
		out = append(out, flatRow{Depth: depth, Node: n})
		out = flattenTree(n.Children, depth+1, out)
	}
	return out
}

// BuildCoverageWorkbook renders the report as a two-sheet workbook: the tree
// on "Coverage", one row per node indented by level, and the totals on
// "Summary".
func BuildCoverageWorkbook(report *models.CoverageReport) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(coverageSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create coverage sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}

	if err := writeCoverageSheet(f, report.Coverage); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSummarySheet(f, report); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   12,
			Family: "Arial",
			Color:  "#FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
}

func writeCoverageSheet(f *excelize.File, tree []models.LocationNode) error {
	header, err := headerStyle(f)
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	indent := make([]int, len(models.Levels))
	for depth := range indent {
		indent[depth], err = f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: depth == 0, Family: "Arial"},
			Alignment: &excelize.Alignment{Horizontal: "left", Indent: depth},
		})
		if err != nil {
			return fmt.Errorf("create indent style: %w", err)
		}
	}

	for i, h := range coverageHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(coverageSheet, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(coverageHeaders), 1)
	if err := f.SetCellStyle(coverageSheet, "A1", last, header); err != nil {
		return err
	}

	for i, r := range flattenTree(tree, 0, nil) {
		row := i + 2
		values := []interface{}{
			r.Node.Level.Title(),
			r.Node.Name,
			r.Node.Total,
			r.Node.Covered,
			r.Node.Total - r.Node.Covered,
			r.Node.Percent,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(coverageSheet, cell, v); err != nil {
				return err
			}
		}
		if r.Depth < len(indent) {
			cell, _ := excelize.CoordinatesToCellName(2, row)
			if err := f.SetCellStyle(coverageSheet, cell, cell, indent[r.Depth]); err != nil {
				return err
			}
		}
	}

	f.SetColWidth(coverageSheet, "A", "A", 12)
	f.SetColWidth(coverageSheet, "B", "B", 40)
	f.SetColWidth(coverageSheet, "C", "F", 15)
	return nil
}

func writeSummarySheet(f *excelize.File, report *models.CoverageReport) error {
	header, err := headerStyle(f)
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	s := report.Summary
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Assets", s.TotalAssets},
		{"Covered Assets", s.CoveredAssets},
		{"Uncovered Assets", s.UncoveredAssets},
		{"Overall Coverage %", s.OverallCoveragePercent},
		{"Locations", s.LocationCount},
	}
	if fl := report.Filters; fl != nil {
		rows = append(rows,
			[]interface{}{"Sites", strings.Join(fl.SiteNames, ", ")},
			[]interface{}{"From", fl.FromDate},
			[]interface{}{"To", fl.ToDate},
		)
	}
	for i, r := range rows {
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &r); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", "B1", header); err != nil {
		return err
	}
	f.SetColWidth(summarySheet, "A", "A", 25)
	f.SetColWidth(summarySheet, "B", "B", 35)
	return nil
}

// BuildCoveragePDF renders the report as an A4 table with a totals block.
func BuildCoveragePDF(report *models.CoverageReport, generated time.Time) *gofpdf.Fpdf {
	p := message.NewPrinter(language.English)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "AMC Coverage by Location")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Generated: "+generated.Format("02 Jan 2006 15:04"))
	pdf.Ln(6)
	if fl := report.Filters; fl != nil {
		sites := "All sites"
		if len(fl.SiteNames) > 0 {
			sites = strings.Join(fl.SiteNames, ", ")
		}
		pdf.Cell(0, 6, fmt.Sprintf("Sites: %s   Period: %s to %s", sites, fl.FromDate, fl.ToDate))
		pdf.Ln(6)
	}
	pdf.Ln(2)

	s := report.Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	for _, kv := range [][2]string{
		{"Total Assets", p.Sprintf("%d", s.TotalAssets)},
		{"Covered Assets", p.Sprintf("%d", s.CoveredAssets)},
		{"Uncovered Assets", p.Sprintf("%d", s.UncoveredAssets)},
		{"Overall Coverage", p.Sprintf("%.1f%%", s.OverallCoveragePercent)},
		{"Locations", p.Sprintf("%d", s.LocationCount)},
	} {
		pdf.CellFormat(60, 7, kv[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(40, 7, kv[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	widths := []float64{22, 78, 24, 22, 22, 22}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range coverageHeaders {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range flattenTree(report.Coverage, 0, nil) {
		if r.Depth == 0 {
			pdf.SetFont("Arial", "B", 9)
		}
		n := r.Node
		pdf.CellFormat(widths[0], 7, n.Level.Title(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, strings.Repeat("  ", r.Depth)+n.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, p.Sprintf("%d", n.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, p.Sprintf("%d", n.Covered), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, p.Sprintf("%d", n.Total-n.Covered), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 7, p.Sprintf("%.1f", n.Percent), "1", 1, "R", false, 0, "")
		if r.Depth == 0 {
			pdf.SetFont("Arial", "", 9)
		}
	}
	return pdf
}

func exportFilename(ext string, now time.Time) string {
	return fmt.Sprintf("amc_coverage_%s.%s", now.Format("20060102"), ext)
}

// ExportAMCCoverageXLSX godoc
// @Summary      Download coverage by location as Excel
// @Tags         amc-analytics
// @Security     BearerAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        site_ids   query  string  false  "Comma separated site ids"
// @Param        from_date  query  string  false  "YYYY-MM-DD"
// @Param        to_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}    file
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/amc/coverage_by_location/export.xlsx [get]
func ExportAMCCoverageXLSX(store AMCStatisticsStore, policy analytics.SummaryPolicy) gin.HandlerFunc {
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
		f, err := BuildCoverageWorkbook(report)
		if err != nil {
			internalError(c, "Failed to build workbook", err)
			return
		}
		defer f.Close()

		buf, err := f.WriteToBuffer()
		if err != nil {
			internalError(c, "Failed to write workbook", err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+exportFilename("xlsx", time.Now()))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}

// ExportAMCCoveragePDF godoc
// @Summary      Download coverage by location as PDF
// @Tags         amc-analytics
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        site_ids   query  string  false  "Comma separated site ids"
// @Param        from_date  query  string  false  "YYYY-MM-DD"
// @Param        to_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}    file
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/amc/coverage_by_location/export.pdf [get]
func ExportAMCCoveragePDF(store AMCStatisticsStore, policy analytics.SummaryPolicy) gin.HandlerFunc {
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

		now := time.Now()
		var buf bytes.Buffer
		if err := BuildCoveragePDF(report, now).Output(&buf); err != nil {
			internalError(c, "Failed to generate PDF", err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+exportFilename("pdf", now))
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	}
}
