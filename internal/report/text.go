// Package report renders the analysis result as a plain-text report,
// mirroring the sections of the interactive analysis: raw preview, schema,
// missing-value counts, cleaning diagnostics, and the grouped summaries.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"salespulse/internal/dataprocessing"
)

// TextReporter writes the full text report to a writer (stdout for the CLI,
// the response body for the HTTP text endpoint).
type TextReporter struct {
	w        io.Writer
	headRows int
}

// NewTextReporter creates a reporter. headRows bounds the table previews;
// values below one fall back to the conventional five.
func NewTextReporter(w io.Writer, headRows int) *TextReporter {
	if headRows < 1 {
		headRows = 5
	}
	return &TextReporter{w: w, headRows: headRows}
}

// Write renders the whole report. Any write error aborts immediately.
func (t *TextReporter) Write(raw *dataprocessing.RawTable, rep *dataprocessing.Report) error {
	sections := []func(*dataprocessing.RawTable, *dataprocessing.Report) error{
		t.writeRawHead,
		t.writeSchema,
		t.writeMissing,
		t.writeCleaning,
		t.writeCleanedHead,
		t.writeSummaries,
	}
	for _, section := range sections {
		if err := section(raw, rep); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextReporter) writeRawHead(raw *dataprocessing.RawTable, _ *dataprocessing.Report) error {
	if err := t.section("Original Data Head"); err != nil {
		return err
	}
	if err := t.row(raw.Header); err != nil {
		return err
	}
	for _, r := range raw.Head(t.headRows) {
		if err := t.row(r); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextReporter) writeSchema(raw *dataprocessing.RawTable, _ *dataprocessing.Report) error {
	if err := t.section("Original Data Info"); err != nil {
		return err
	}
	types := []string{"date", "text", "integer", "decimal", "text"}
	for i, name := range raw.Header {
		typ := "text"
		if i < len(types) {
			typ = types[i]
		}
		if _, err := fmt.Fprintf(t.w, "%-10s %s\n", name, typ); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(t.w, "%d rows x %d columns\n", raw.NumRows(), len(raw.Header))
	return err
}

func (t *TextReporter) writeMissing(_ *dataprocessing.RawTable, rep *dataprocessing.Report) error {
	if err := t.section("Missing Values (before cleaning)"); err != nil {
		return err
	}
	if err := t.missingCounts(rep.RawMissing); err != nil {
		return err
	}
	if err := t.section("Missing Values (after cleaning)"); err != nil {
		return err
	}
	return t.missingCounts(rep.CleanedMissing)
}

func (t *TextReporter) missingCounts(m dataprocessing.MissingCounts) error {
	lines := []struct {
		name  string
		count int
	}{
		{"Date", m.Date}, {"Product", m.Product}, {"Quantity", m.Quantity},
		{"Price", m.Price}, {"Region", m.Region},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(t.w, "%-10s %d\n", l.name, l.count); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextReporter) writeCleaning(_ *dataprocessing.RawTable, rep *dataprocessing.Report) error {
	if err := t.section("Cleaning"); err != nil {
		return err
	}
	s := rep.Cleaning
	_, err := fmt.Fprintf(t.w,
		"Filled %d missing 'Quantity' value(s) with median: %s\n"+
			"Dropped %d row(s) with unparseable 'Price'\n"+
			"Removed %d duplicate row(s)\n"+
			"%d row(s) in, %d row(s) out\n",
		s.MissingQuantity, s.MedianQuantity, s.RowsDroppedPrice, s.DuplicatesRemoved, s.RowsIn, s.RowsOut)
	return err
}

func (t *TextReporter) writeCleanedHead(_ *dataprocessing.RawTable, rep *dataprocessing.Report) error {
	if err := t.section("Cleaned Data Head (with Total Sales)"); err != nil {
		return err
	}
	if err := t.row([]string{"Date", "Product", "Quantity", "Price", "Region", "Total Sales"}); err != nil {
		return err
	}
	n := t.headRows
	if n > len(rep.Records) {
		n = len(rep.Records)
	}
	for _, r := range rep.Records[:n] {
		cells := []string{
			r.Date.Format("2006-01-02"), r.Product, r.Quantity.String(),
			r.Price.StringFixed(2), r.Region, r.TotalSales.StringFixed(2),
		}
		if err := t.row(cells); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextReporter) writeSummaries(_ *dataprocessing.RawTable, rep *dataprocessing.Report) error {
	sum := rep.Summary

	if err := t.section("Overall Total Sales"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(t.w, "%s\n", FormatMoney(sum.OverallTotal)); err != nil {
		return err
	}

	if err := t.groupSection("Sales by Product", sum.ByProduct); err != nil {
		return err
	}
	if err := t.groupSection("Sales by Region", sum.ByRegion); err != nil {
		return err
	}

	if err := t.section(fmt.Sprintf("Daily Sales (first %d entries)", t.headRows)); err != nil {
		return err
	}
	n := t.headRows
	if n > len(sum.Daily) {
		n = len(sum.Daily)
	}
	for _, d := range sum.Daily[:n] {
		if _, err := fmt.Fprintf(t.w, "%-12s %12s\n", d.Date.Format("2006-01-02"), d.Total.StringFixed(2)); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextReporter) groupSection(title string, groups []dataprocessing.GroupTotal) error {
	if err := t.section(title); err != nil {
		return err
	}
	for _, g := range groups {
		if _, err := fmt.Fprintf(t.w, "%-12s %12s\n", g.Key, g.Total.StringFixed(2)); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextReporter) section(title string) error {
	_, err := fmt.Fprintf(t.w, "\n--- %s ---\n", title)
	return err
}

func (t *TextReporter) row(cells []string) error {
	_, err := fmt.Fprintln(t.w, strings.Join(cells, "  "))
	return err
}

// FormatMoney renders a decimal as a dollar amount with thousands
// separators and exactly two decimal places, e.g. 12184 -> "$12,184.00".
func FormatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	whole := fixed[:len(fixed)-3]
	cents := fixed[len(fixed)-3:]

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return sign + "$" + b.String() + cents
}
