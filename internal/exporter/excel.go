package exporter

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"salespulse/internal/dataprocessing"
)

// Sheet names in the generated workbook.
const (
	sheetTransactions = "Transactions"
	sheetProducts     = "Products"
	sheetRegions      = "Regions"
	sheetDaily        = "Daily"
)

// ExcelExporter builds the XLSX analysis workbook.
type ExcelExporter struct {
	logger      *slog.Logger
	topProducts int
}

// NewExcelExporter creates a new Excel exporter. topProducts bounds the bar
// chart (not the Products sheet, which lists every product).
func NewExcelExporter(logger *slog.Logger, topProducts int) *ExcelExporter {
	if logger == nil {
		logger = slog.Default()
	}
	if topProducts <= 0 {
		topProducts = 5
	}
	return &ExcelExporter{
		logger:      logger.With(slog.String("component", "excel_exporter")),
		topProducts: topProducts,
	}
}

// Write builds the workbook from the report and streams it to w.
func (e *ExcelExporter) Write(w io.Writer, report *dataprocessing.Report) error {
	f, err := e.build(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (e *ExcelExporter) build(report *dataprocessing.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetTransactions); err != nil {
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}
	if err := e.writeTransactions(f, report.Records); err != nil {
		return nil, err
	}

	summary := report.Summary
	if err := e.writeGroupSheet(f, sheetProducts, "Product", summary.ByProduct); err != nil {
		return nil, err
	}
	if err := e.writeGroupSheet(f, sheetRegions, "Region", summary.ByRegion); err != nil {
		return nil, err
	}
	if err := e.writeDailySheet(f, summary.Daily); err != nil {
		return nil, err
	}

	if err := e.addCharts(f, summary); err != nil {
		return nil, err
	}

	e.logger.Info("workbook built",
		slog.Int("transactions", len(report.Records)),
		slog.Int("products", len(summary.ByProduct)),
		slog.Int("regions", len(summary.ByRegion)),
		slog.Int("days", len(summary.Daily)))

	return f, nil
}

func (e *ExcelExporter) writeTransactions(f *excelize.File, records []dataprocessing.Record) error {
	header := []interface{}{"Date", "Product", "Quantity", "Price", "Region", "Total Sales"}
	if err := f.SetSheetRow(sheetTransactions, "A1", &header); err != nil {
		return fmt.Errorf("failed to write transaction header: %w", err)
	}
	for i, r := range records {
		row := []interface{}{
			r.Date.Format("2006-01-02"),
			r.Product,
			r.Quantity.InexactFloat64(),
			r.Price.InexactFloat64(),
			r.Region,
			r.TotalSales.InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetTransactions, cell, &row); err != nil {
			return fmt.Errorf("failed to write transaction row %d: %w", i, err)
		}
	}
	return nil
}

func (e *ExcelExporter) writeGroupSheet(f *excelize.File, sheet, keyName string, groups []dataprocessing.GroupTotal) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	header := []interface{}{keyName, "Total Sales"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	for i, g := range groups {
		row := []interface{}{g.Key, g.Total.InexactFloat64()}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i, err)
		}
	}
	return nil
}

func (e *ExcelExporter) writeDailySheet(f *excelize.File, daily []dataprocessing.DailyTotal) error {
	if _, err := f.NewSheet(sheetDaily); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetDaily, err)
	}
	header := []interface{}{"Date", "Total Sales"}
	if err := f.SetSheetRow(sheetDaily, "A1", &header); err != nil {
		return fmt.Errorf("failed to write daily header: %w", err)
	}
	for i, d := range daily {
		row := []interface{}{d.Date.Format("2006-01-02"), d.Total.InexactFloat64()}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetDaily, cell, &row); err != nil {
			return fmt.Errorf("failed to write daily row %d: %w", i, err)
		}
	}
	return nil
}

// addCharts embeds the three analysis charts next to their data sheets.
func (e *ExcelExporter) addCharts(f *excelize.File, summary *dataprocessing.Summary) error {
	lineChart := &excelize.Chart{
		Type:  excelize.Line,
		Title: []excelize.RichTextRun{{Text: "Daily Total Sales Over Time"}},
		Series: []excelize.ChartSeries{{
			Name:       "Total Sales",
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheetDaily, len(summary.Daily)+1),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheetDaily, len(summary.Daily)+1),
			Marker:     excelize.ChartMarker{Symbol: "circle"},
		}},
	}
	if err := f.AddChart(sheetDaily, "D2", lineChart); err != nil {
		return fmt.Errorf("failed to add line chart: %w", err)
	}

	topRows := len(dataprocessing.TopN(summary.ByProduct, e.topProducts))
	barChart := &excelize.Chart{
		Type:  excelize.Col,
		Title: []excelize.RichTextRun{{Text: fmt.Sprintf("Top %d Products by Total Sales", e.topProducts)}},
		Series: []excelize.ChartSeries{{
			Name:       "Total Sales",
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheetProducts, topRows+1),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheetProducts, topRows+1),
		}},
	}
	if err := f.AddChart(sheetProducts, "D2", barChart); err != nil {
		return fmt.Errorf("failed to add bar chart: %w", err)
	}

	pieChart := &excelize.Chart{
		Type:  excelize.Pie,
		Title: []excelize.RichTextRun{{Text: "Total Sales by Region"}},
		Series: []excelize.ChartSeries{{
			Name:       "Total Sales",
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheetRegions, len(summary.ByRegion)+1),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheetRegions, len(summary.ByRegion)+1),
		}},
		PlotArea: excelize.ChartPlotArea{ShowPercent: true},
	}
	if err := f.AddChart(sheetRegions, "D2", pieChart); err != nil {
		return fmt.Errorf("failed to add pie chart: %w", err)
	}

	return nil
}
