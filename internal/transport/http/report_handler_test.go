package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespulse/internal/dataprocessing"
	apierrors "salespulse/internal/errors"
)

type staticReportService struct {
	report *dataprocessing.Report
	raw    *dataprocessing.RawTable
}

func (s *staticReportService) Report() *dataprocessing.Report { return s.report }

func (s *staticReportService) Raw() *dataprocessing.RawTable { return s.raw }

func newTestService(t *testing.T) *staticReportService {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	processor := dataprocessing.NewProcessor(logger, dataprocessing.DefaultCleanerConfig())
	report, raw, err := processor.Run(context.Background())
	require.NoError(t, err)

	return &staticReportService{report: report, raw: raw}
}

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := newTestService(t)
	handler := NewReportHandler(service, logger, apierrors.NewErrorHandler(logger), 5, 5)
	charts := NewChartHandler(service, logger)
	health := NewHealthHandler(logger, "1.0.0-test")

	r := chi.NewRouter()
	r.Route("/api", func(api chi.Router) {
		health.Register(api)
		api.Mount("/", handler.Routes())
	})
	r.Mount("/charts", charts.Routes())
	return r
}

func TestReportHandler_GetReport(t *testing.T) {
	service := newTestService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewReportHandler(service, logger, apierrors.NewErrorHandler(logger), 5, 5)

	r := chi.NewRouter()
	r.Mount("/api", handler.Routes())

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		RawRows int `json:"raw_rows"`
		Summary struct {
			OverallTotal string `json:"overall_total"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 24, payload.RawRows)
	assert.Equal(t, "12184", payload.Summary.OverallTotal)
}

func TestReportHandler_GetReportText(t *testing.T) {
	service := newTestService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewReportHandler(service, logger, apierrors.NewErrorHandler(logger), 5, 5)

	r := chi.NewRouter()
	r.Mount("/api", handler.Routes())

	req := httptest.NewRequest(http.MethodGet, "/api/report.txt", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "--- Overall Total Sales ---")
	assert.Contains(t, rec.Body.String(), "$12,184.00")
}

func TestReportHandler_GetSummary(t *testing.T) {
	service := newTestService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewReportHandler(service, logger, apierrors.NewErrorHandler(logger), 5, 5)

	r := chi.NewRouter()
	r.Mount("/api", handler.Routes())

	t.Run("products descending", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/summary/products", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var groups []struct {
			Key   string `json:"key"`
			Total string `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
		require.Len(t, groups, 6)
		assert.Equal(t, "Laptop", groups[0].Key)
		assert.Equal(t, "8400", groups[0].Total)
	})

	t.Run("regions descending", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/summary/regions", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var groups []struct {
			Key string `json:"key"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
		require.Len(t, groups, 4)
		assert.Equal(t, "North", groups[0].Key)
	})

	t.Run("daily ascending", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/summary/daily", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var days []struct {
			Date string `json:"date"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
		require.Len(t, days, 22)
		assert.Contains(t, days[0].Date, "2023-01-01")
	})

	t.Run("unknown group rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/summary/channels", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")

		var problem struct {
			Type   string `json:"type"`
			Detail string `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
		assert.Equal(t, "/errors/validation", problem.Type)
		assert.Contains(t, problem.Detail, "group")
	})
}

func TestReportHandler_ExportCSV(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/export/csv", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "sales_cleaned.csv")

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"), "expected UTF-8 BOM prefix")
	assert.Contains(t, body, "Date,Product,Quantity,Price,Region,Total Sales")
	assert.Contains(t, body, "2023-01-01,Laptop,2,1200.00,North,2400.00")
}

func TestReportHandler_ExportExcel(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/export/xlsx", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "sales_analysis.xlsx")
	assert.NotZero(t, rec.Body.Len())
}

func TestChartHandler_Routes(t *testing.T) {
	r := newTestRouter(t)

	paths := []string{"/charts", "/charts/daily", "/charts/products", "/charts/regions"}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html", path)
		assert.Contains(t, rec.Body.String(), "echarts", path)
	}

	req := httptest.NewRequest(http.MethodGet, "/charts/daily", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), "Daily Total Sales Over Time")
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var payload HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "healthy", payload.Status)
	})

	t.Run("version", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var payload VersionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "1.0.0-test", payload.Version)
		assert.NotEmpty(t, payload.GoVersion)
	})
}
