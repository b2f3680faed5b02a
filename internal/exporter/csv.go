package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"salespulse/internal/dataprocessing"
)

// CSVExporter writes cleaned transactions as CSV.
type CSVExporter struct {
	logger *slog.Logger
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(logger *slog.Logger) *CSVExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVExporter{logger: logger.With(slog.String("component", "csv_exporter"))}
}

// WriteOptions configures CSV output behavior.
type WriteOptions struct {
	BOMPrefix bool // add UTF-8 BOM so Excel recognizes the encoding
}

var transactionHeader = []string{"Date", "Product", "Quantity", "Price", "Region", "Total Sales"}

// WriteTransactions streams the cleaned records, Total Sales included.
func (e *CSVExporter) WriteTransactions(w io.Writer, records []dataprocessing.Record, options WriteOptions) error {
	if options.BOMPrefix {
		if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(transactionHeader); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, r := range records {
		row := []string{
			r.Date.Format("2006-01-02"),
			r.Product,
			formatQuantity(r.Quantity),
			formatDecimal(r.Price),
			r.Region,
			formatDecimal(r.TotalSales),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
