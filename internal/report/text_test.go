package report

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespulse/internal/dataprocessing"
)

func runPipeline(t *testing.T) (*dataprocessing.Report, *dataprocessing.RawTable) {
	t.Helper()
	processor := dataprocessing.NewProcessor(slog.Default(), dataprocessing.DefaultCleanerConfig())
	report, raw, err := processor.Run(context.Background())
	require.NoError(t, err)
	return report, raw
}

func TestTextReporter_Write(t *testing.T) {
	rep, raw := runPipeline(t)

	var buf bytes.Buffer
	reporter := NewTextReporter(&buf, 5)
	require.NoError(t, reporter.Write(raw, rep))

	out := buf.String()

	wantSections := []string{
		"--- Original Data Head ---",
		"--- Original Data Info ---",
		"--- Missing Values (before cleaning) ---",
		"--- Missing Values (after cleaning) ---",
		"--- Cleaning ---",
		"--- Cleaned Data Head (with Total Sales) ---",
		"--- Overall Total Sales ---",
		"--- Sales by Product ---",
		"--- Sales by Region ---",
		"--- Daily Sales (first 5 entries) ---",
	}
	for _, section := range wantSections {
		assert.Contains(t, out, section)
	}

	assert.Contains(t, out, "$12,184.00")
	assert.Contains(t, out, "Filled 2 missing 'Quantity' value(s) with median: 2")
	assert.Contains(t, out, "Removed 0 duplicate row(s)")
	assert.Contains(t, out, "24 rows x 5 columns")
	assert.Contains(t, out, "Laptop")
}

func TestNewTextReporter_HeadRowsFallback(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewTextReporter(&buf, 0)
	assert.Equal(t, 5, reporter.headRows)
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "12184", want: "$12,184.00"},
		{name: "cents preserved", input: "2527.5", want: "$2,527.50"},
		{name: "millions", input: "1234567.89", want: "$1,234,567.89"},
		{name: "under a thousand", input: "459", want: "$459.00"},
		{name: "zero", input: "0", want: "$0.00"},
		{name: "negative", input: "-1500.25", want: "-$1,500.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatMoney(d))
		})
	}
}
