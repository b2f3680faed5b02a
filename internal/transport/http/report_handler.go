package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"salespulse/internal/chart"
	apierrors "salespulse/internal/errors"
	"salespulse/internal/exporter"
	"salespulse/internal/report"
)

// ReportHandler serves the analysis report, summaries, and exports.
type ReportHandler struct {
	service      ReportService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	excel        *exporter.ExcelExporter
	csv          *exporter.CSVExporter
	headRows     int
}

// NewReportHandler creates a new report handler.
func NewReportHandler(service ReportService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, topProducts, headRows int) *ReportHandler {
	return &ReportHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "report_handler")),
		errorHandler: errorHandler,
		excel:        exporter.NewExcelExporter(logger, topProducts),
		csv:          exporter.NewCSVExporter(logger),
		headRows:     headRows,
	}
}

// Routes returns the report routes.
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/report", h.GetReport)
	r.Get("/report.txt", h.GetReportText)

	r.Route("/summary/{group}", func(r chi.Router) {
		r.Use(h.GroupCtx)
		r.Get("/", h.GetSummary)
	})

	r.Get("/export/xlsx", h.ExportExcel)
	r.Get("/export/csv", h.ExportCSV)

	return r
}

// GroupCtx validates the summary group parameter.
func (h *ReportHandler) GroupCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch chi.URLParam(r, "group") {
		case "products", "regions", "daily":
			next.ServeHTTP(w, r)
		default:
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("group",
				"group must be one of: products, regions, daily"))
		}
	})
}

// GetReport handles GET /api/report.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Report())
}

// GetReportText handles GET /api/report.txt with the plain-text rendition.
func (h *ReportHandler) GetReportText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	reporter := report.NewTextReporter(w, h.headRows)
	if err := reporter.Write(h.service.Raw(), h.service.Report()); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write text report",
			slog.String("error", err.Error()))
	}
}

// GetSummary handles GET /api/summary/{group}.
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary := h.service.Report().Summary
	switch chi.URLParam(r, "group") {
	case "products":
		render.JSON(w, r, summary.ByProduct)
	case "regions":
		render.JSON(w, r, summary.ByRegion)
	case "daily":
		render.JSON(w, r, summary.Daily)
	}
}

// ExportExcel handles GET /api/export/xlsx, streaming the workbook.
func (h *ReportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="sales_analysis.xlsx"`)
	if err := h.excel.Write(w, h.service.Report()); err != nil {
		// Headers are gone at this point; log and give up on the body.
		h.logger.ErrorContext(r.Context(), "failed to stream workbook",
			slog.String("error", err.Error()))
	}
}

// ExportCSV handles GET /api/export/csv, streaming the cleaned rows.
func (h *ReportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sales_cleaned.csv"`)
	err := h.csv.WriteTransactions(w, h.service.Report().Records, exporter.WriteOptions{BOMPrefix: true})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to stream CSV",
			slog.String("error", err.Error()))
	}
}

// ChartHandler serves the go-echarts pages.
type ChartHandler struct {
	service ReportService
	logger  *slog.Logger
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(service ReportService, logger *slog.Logger) *ChartHandler {
	return &ChartHandler{
		service: service,
		logger:  logger.With(slog.String("component", "chart_handler")),
	}
}

// Routes returns the chart routes.
func (h *ChartHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetAllCharts)
	r.Get("/daily", h.GetDailyChart)
	r.Get("/products", h.GetProductChart)
	r.Get("/regions", h.GetRegionChart)
	return r
}

func (h *ChartHandler) builder() *chart.Builder {
	return chart.NewBuilder(h.service.Report().Summary)
}

// GetAllCharts handles GET /charts with all three charts on one page.
func (h *ChartHandler) GetAllCharts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.logRenderError(r, h.builder().RenderAll(w))
}

// GetDailyChart handles GET /charts/daily.
func (h *ChartHandler) GetDailyChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.logRenderError(r, h.builder().DailyLine().Render(w))
}

// GetProductChart handles GET /charts/products.
func (h *ChartHandler) GetProductChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.logRenderError(r, h.builder().ProductBar().Render(w))
}

// GetRegionChart handles GET /charts/regions.
func (h *ChartHandler) GetRegionChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.logRenderError(r, h.builder().RegionPie().Render(w))
}

func (h *ChartHandler) logRenderError(r *http.Request, err error) {
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render chart",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path))
	}
}
