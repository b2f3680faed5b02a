// Package chart builds the three analysis charts (daily line, top-products
// bar, region pie) as renderable go-echarts objects.
package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"salespulse/internal/dataprocessing"
)

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// TopProducts is how many products the bar chart shows.
const TopProducts = 5

// Builder produces the charts from a computed summary.
type Builder struct {
	summary *dataprocessing.Summary
}

// NewBuilder creates a chart builder over a summary.
func NewBuilder(summary *dataprocessing.Summary) *Builder {
	return &Builder{summary: summary}
}

// DailyLine is the daily-total-sales line chart, one symbol per point.
func (b *Builder) DailyLine() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Daily Total Sales Over Time"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Total Sales ($)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithColorsOpts(opts.Colors(defaultColors)),
	)

	dates := make([]string, 0, len(b.summary.Daily))
	points := make([]opts.LineData, 0, len(b.summary.Daily))
	for _, d := range b.summary.Daily {
		dates = append(dates, d.Date.Format("2006-01-02"))
		points = append(points, opts.LineData{Value: d.Total.InexactFloat64()})
	}

	line.SetXAxis(dates).AddSeries("Total Sales", points,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: true}))
	return line
}

// ProductBar is the top-products bar chart, descending, with rotated
// category labels.
func (b *Builder) ProductBar() *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top 5 Products by Total Sales"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Product",
			AxisLabel: &opts.AxisLabel{Show: true, Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Total Sales ($)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithColorsOpts(opts.Colors(defaultColors)),
	)

	top := dataprocessing.TopN(b.summary.ByProduct, TopProducts)
	names := make([]string, 0, len(top))
	values := make([]opts.BarData, 0, len(top))
	for _, g := range top {
		names = append(names, g.Key)
		values = append(values, opts.BarData{Value: g.Total.InexactFloat64()})
	}

	bar.SetXAxis(names).AddSeries("Total Sales", values)
	return bar
}

// RegionPie is the region-share pie chart with percentage labels.
func (b *Builder) RegionPie() *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Total Sales by Region"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithColorsOpts(opts.Colors(defaultColors)),
	)

	slices := make([]opts.PieData, 0, len(b.summary.ByRegion))
	for _, g := range b.summary.ByRegion {
		slices = append(slices, opts.PieData{Name: g.Key, Value: g.Total.InexactFloat64()})
	}

	pie.AddSeries("Region", slices).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: true, Formatter: "{b}: {d}%"}),
		charts.WithPieChartOpts(opts.PieChart{Radius: "60%"}),
	)
	return pie
}

// RenderAll writes a single HTML page containing all three charts, in the
// original display order: line, bar, pie.
func (b *Builder) RenderAll(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "Sales Analysis"
	page.AddCharts(b.DailyLine(), b.ProductBar(), b.RegionPie())
	return page.Render(w)
}
