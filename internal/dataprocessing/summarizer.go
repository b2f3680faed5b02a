package dataprocessing

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Summarizer computes the derived Total Sales column and the grouped
// aggregates over a cleaned record slice.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a new summarizer.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger.With(slog.String("component", "summarizer"))}
}

// Summarize fills each record's TotalSales (Quantity × Price, exact) and
// returns the overall total, the product and region summaries sorted
// descending by total with first-encountered order breaking ties, and the
// daily series in ascending date order.
func (s *Summarizer) Summarize(ctx context.Context, records []Record) (*Summary, error) {
	overall := decimal.Zero
	for i := range records {
		records[i].TotalSales = records[i].Quantity.Mul(records[i].Price)
		overall = overall.Add(records[i].TotalSales)
	}

	summary := &Summary{
		OverallTotal: overall,
		ByProduct:    groupTotals(records, func(r *Record) string { return r.Product }),
		ByRegion:     groupTotals(records, func(r *Record) string { return r.Region }),
		Daily:        dailyTotals(records),
	}

	s.logger.InfoContext(ctx, "summaries computed",
		slog.Int("records", len(records)),
		slog.String("overall_total", overall.StringFixed(2)),
		slog.Int("products", len(summary.ByProduct)),
		slog.Int("regions", len(summary.ByRegion)),
		slog.Int("days", len(summary.Daily)))

	return summary, nil
}

// groupTotals sums TotalSales per key and sorts descending by total. The
// sort is stable over first-encountered key order, so equal totals keep the
// order their groups first appeared in the table.
func groupTotals(records []Record, keyFn func(*Record) string) []GroupTotal {
	totals := make(map[string]decimal.Decimal, 8)
	order := make([]string, 0, 8)

	for i := range records {
		key := keyFn(&records[i])
		if _, ok := totals[key]; !ok {
			order = append(order, key)
			totals[key] = decimal.Zero
		}
		totals[key] = totals[key].Add(records[i].TotalSales)
	}

	groups := make([]GroupTotal, 0, len(order))
	for _, key := range order {
		groups = append(groups, GroupTotal{Key: key, Total: totals[key]})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.Cmp(groups[j].Total) > 0
	})
	return groups
}

// dailyTotals sums TotalSales per calendar date, ascending by date.
func dailyTotals(records []Record) []DailyTotal {
	totals := make(map[time.Time]decimal.Decimal, 32)
	for i := range records {
		day := records[i].Date
		totals[day] = totals[day].Add(records[i].TotalSales)
	}

	days := make([]DailyTotal, 0, len(totals))
	for day, total := range totals {
		days = append(days, DailyTotal{Date: day, Total: total})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

// TopN returns up to n leading entries of a grouped summary.
func TopN(groups []GroupTotal, n int) []GroupTotal {
	if n > 0 && len(groups) > n {
		return groups[:n]
	}
	return groups
}
