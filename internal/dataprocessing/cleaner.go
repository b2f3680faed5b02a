package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cleaner coerces the raw table's columns into typed values, imputes missing
// quantities with the column median, drops rows whose price fails to parse,
// and removes exact-duplicate rows.
type Cleaner struct {
	logger     *slog.Logger
	dateFormat string
}

// CleanerConfig holds configuration options for the Cleaner.
type CleanerConfig struct {
	DateFormat string // layout for the Date column, defaults to 2006-01-02
}

// DefaultCleanerConfig returns the configuration matching the dataset's
// ISO-style date column.
func DefaultCleanerConfig() CleanerConfig {
	return CleanerConfig{DateFormat: "2006-01-02"}
}

// NewCleaner creates a new cleaner with the given configuration.
func NewCleaner(logger *slog.Logger, config CleanerConfig) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	if config.DateFormat == "" {
		config.DateFormat = "2006-01-02"
	}
	return &Cleaner{
		logger:     logger.With(slog.String("component", "cleaner")),
		dateFormat: config.DateFormat,
	}
}

// draft is a row mid-coercion. quantity stays unset while missing is true.
type draft struct {
	raw      []string
	date     time.Time
	product  string
	quantity decimal.Decimal
	missing  bool
	price    decimal.Decimal
	dropped  bool
	region   string
}

// Clean runs every cleaning step in order and returns the typed records plus
// the diagnostic counts. A malformed date is the one unrecovered failure:
// it aborts the whole run.
func (c *Cleaner) Clean(ctx context.Context, raw *RawTable) ([]Record, CleaningStats, error) {
	stats := CleaningStats{RowsIn: raw.NumRows()}

	drafts := make([]draft, 0, raw.NumRows())
	for _, row := range raw.Rows {
		drafts = append(drafts, draft{
			raw:     row,
			product: row[1],
			region:  row[4],
		})
	}

	// Quantity: integer coercion, parse failure becomes a missing marker.
	for i := range drafts {
		qty, err := strconv.ParseInt(strings.TrimSpace(drafts[i].raw[2]), 10, 64)
		if err != nil {
			drafts[i].missing = true
			stats.MissingQuantity++
			continue
		}
		drafts[i].quantity = decimal.NewFromInt(qty)
	}

	// Median imputation over the non-missing quantities.
	stats.MedianQuantity = medianQuantity(drafts)
	for i := range drafts {
		if drafts[i].missing {
			drafts[i].quantity = stats.MedianQuantity
			drafts[i].missing = false
		}
	}
	c.logger.InfoContext(ctx, "imputed missing quantities",
		slog.Int("missing", stats.MissingQuantity),
		slog.String("median", stats.MedianQuantity.String()))

	// Date: single consistent format, hard failure on a malformed value.
	for i := range drafts {
		d, err := time.Parse(c.dateFormat, strings.TrimSpace(drafts[i].raw[0]))
		if err != nil {
			return nil, stats, fmt.Errorf("failed to parse date %q on row %d: %w", drafts[i].raw[0], i+1, err)
		}
		drafts[i].date = d
	}

	// Price: decimal coercion, parse failure drops the entire row.
	for i := range drafts {
		price, err := decimal.NewFromString(strings.TrimSpace(drafts[i].raw[3]))
		if err != nil {
			drafts[i].dropped = true
			stats.RowsDroppedPrice++
			c.logger.WarnContext(ctx, "dropping row with unparseable price",
				slog.Int("row", i+1),
				slog.String("price", drafts[i].raw[3]))
			continue
		}
		drafts[i].price = price
	}

	// Deduplication across all five original columns, keeping the first
	// occurrence and preserving the order of the remainder.
	seen := make(map[string]bool, len(drafts))
	records := make([]Record, 0, len(drafts))
	for i := range drafts {
		if drafts[i].dropped {
			continue
		}
		key := dedupKey(&drafts[i], c.dateFormat)
		if seen[key] {
			stats.DuplicatesRemoved++
			continue
		}
		seen[key] = true
		records = append(records, Record{
			Date:     drafts[i].date,
			Product:  drafts[i].product,
			Quantity: drafts[i].quantity,
			Price:    drafts[i].price,
			Region:   drafts[i].region,
		})
	}
	stats.RowsOut = len(records)

	c.logger.InfoContext(ctx, "cleaning completed",
		slog.Int("rows_in", stats.RowsIn),
		slog.Int("rows_out", stats.RowsOut),
		slog.Int("dropped_price", stats.RowsDroppedPrice),
		slog.Int("duplicates_removed", stats.DuplicatesRemoved))

	return records, stats, nil
}

// Deduplicate removes exact duplicates from an already-cleaned record slice,
// keeping first occurrences. Running it on a deduplicated slice is a no-op.
func Deduplicate(records []Record, dateFormat string) ([]Record, int) {
	if dateFormat == "" {
		dateFormat = "2006-01-02"
	}
	seen := make(map[string]bool, len(records))
	out := make([]Record, 0, len(records))
	removed := 0
	for _, r := range records {
		key := strings.Join([]string{
			r.Date.Format(dateFormat), r.Product, r.Quantity.String(), r.Price.String(), r.Region,
		}, "\x1f")
		if seen[key] {
			removed++
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out, removed
}

func dedupKey(d *draft, dateFormat string) string {
	return strings.Join([]string{
		d.date.Format(dateFormat), d.product, d.quantity.String(), d.price.String(), d.region,
	}, "\x1f")
}

// medianQuantity returns the median of the non-missing quantities. An even
// count averages the two middle values exactly, so the result may be
// fractional. Zero when no row has a numeric quantity.
func medianQuantity(drafts []draft) decimal.Decimal {
	values := make([]decimal.Decimal, 0, len(drafts))
	for i := range drafts {
		if !drafts[i].missing {
			values = append(values, drafts[i].quantity)
		}
	}
	if len(values) == 0 {
		return decimal.Zero
	}
	sort.Slice(values, func(i, j int) bool { return values[i].Cmp(values[j]) < 0 })

	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return values[mid-1].Add(values[mid]).Div(decimal.NewFromInt(2))
}
