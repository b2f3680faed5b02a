package chart

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespulse/internal/dataprocessing"
)

func summaryFixture(t *testing.T) *dataprocessing.Summary {
	t.Helper()
	processor := dataprocessing.NewProcessor(slog.Default(), dataprocessing.DefaultCleanerConfig())
	report, _, err := processor.Run(context.Background())
	require.NoError(t, err)
	return report.Summary
}

func TestBuilder_DailyLine(t *testing.T) {
	builder := NewBuilder(summaryFixture(t))

	line := builder.DailyLine()
	require.NotNil(t, line)

	var buf bytes.Buffer
	require.NoError(t, line.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "Daily Total Sales Over Time")
	assert.Contains(t, out, "2023-01-01")
	assert.Contains(t, out, "2023-01-22")
}

func TestBuilder_ProductBar_TopFiveOnly(t *testing.T) {
	builder := NewBuilder(summaryFixture(t))

	bar := builder.ProductBar()
	require.NotNil(t, bar)

	var buf bytes.Buffer
	require.NoError(t, bar.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "Top 5 Products by Total Sales")
	assert.Contains(t, out, "Laptop")
	// Webcam is rank six and must not appear in a top-five chart.
	assert.NotContains(t, out, "Webcam")
}

func TestBuilder_RegionPie(t *testing.T) {
	builder := NewBuilder(summaryFixture(t))

	pie := builder.RegionPie()
	require.NotNil(t, pie)

	var buf bytes.Buffer
	require.NoError(t, pie.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "Total Sales by Region")
	for _, region := range []string{"North", "South", "East", "West"} {
		assert.Contains(t, out, region)
	}
	assert.Contains(t, out, "{d}%", "pie labels must show percentages")
}

func TestBuilder_RenderAll(t *testing.T) {
	builder := NewBuilder(summaryFixture(t))

	var buf bytes.Buffer
	require.NoError(t, builder.RenderAll(&buf))
	out := buf.String()

	assert.Contains(t, out, "Daily Total Sales Over Time")
	assert.Contains(t, out, "Top 5 Products by Total Sales")
	assert.Contains(t, out, "Total Sales by Region")
}
