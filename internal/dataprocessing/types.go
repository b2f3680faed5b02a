package dataprocessing

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTable is the loader's output: the CSV content split into header and
// row cells, everything still text. Column typing happens in the cleaner.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// NumRows returns the number of data rows (header excluded).
func (t *RawTable) NumRows() int {
	return len(t.Rows)
}

// Head returns up to n leading rows without copying cell data.
func (t *RawTable) Head(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

// Record is one cleaned sales transaction. Quantity is decimal rather than
// int because median imputation over an even count can produce a fractional
// value; input coercion still requires integer syntax.
type Record struct {
	Date       time.Time       `json:"date"`
	Product    string          `json:"product"`
	Quantity   decimal.Decimal `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Region     string          `json:"region"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// CleaningStats reports what the cleaning stage did. The counts are
// diagnostic output, not behavior the rest of the pipeline branches on.
type CleaningStats struct {
	RowsIn            int             `json:"rows_in"`
	MissingQuantity   int             `json:"missing_quantity"`
	MedianQuantity    decimal.Decimal `json:"median_quantity"`
	RowsDroppedPrice  int             `json:"rows_dropped_price"`
	DuplicatesRemoved int             `json:"duplicates_removed"`
	RowsOut           int             `json:"rows_out"`
}

// GroupTotal is one entry of a grouped summary (product or region).
type GroupTotal struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
}

// DailyTotal is one entry of the daily sales series.
type DailyTotal struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// Summary holds every aggregate the pipeline produces. ByProduct and
// ByRegion are sorted descending by total with first-encountered order
// breaking ties; Daily is in ascending date order. Each grouping partitions
// the cleaned table, so each slice sums back to OverallTotal.
type Summary struct {
	OverallTotal decimal.Decimal `json:"overall_total"`
	ByProduct    []GroupTotal    `json:"by_product"`
	ByRegion     []GroupTotal    `json:"by_region"`
	Daily        []DailyTotal    `json:"daily"`
}

// Report is the full pipeline result consumed by the text reporter, the
// HTTP handlers, and the exporters.
type Report struct {
	GeneratedAt    time.Time     `json:"generated_at"`
	RawRows        int           `json:"raw_rows"`
	RawMissing     MissingCounts `json:"raw_missing"`
	CleanedMissing MissingCounts `json:"cleaned_missing"`
	Cleaning       CleaningStats `json:"cleaning"`
	Records        []Record      `json:"records"`
	Summary        *Summary      `json:"summary"`
}

// MissingCounts tracks per-column missing values, keyed in column order.
type MissingCounts struct {
	Date     int `json:"date"`
	Product  int `json:"product"`
	Quantity int `json:"quantity"`
	Price    int `json:"price"`
	Region   int `json:"region"`
}
