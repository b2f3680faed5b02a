// Package app wires configuration, the analysis pipeline, and the HTTP
// server into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"salespulse/internal/config"
	"salespulse/internal/dataprocessing"
	apierrors "salespulse/internal/errors"
	"salespulse/internal/infrastructure"
	custommw "salespulse/internal/middleware"
	handlers "salespulse/internal/transport/http"
)

// Version is the application version, overridable at build time.
var Version = "dev"

// Application is the assembled server: configuration, logger, the computed
// analysis, and the router serving it.
type Application struct {
	Config *config.Config
	Logger *slog.Logger
	Router *chi.Mux

	report *dataprocessing.Report
	raw    *dataprocessing.RawTable
	server *http.Server
}

// Report returns the computed analysis report.
func (a *Application) Report() *dataprocessing.Report { return a.report }

// Raw returns the raw table the analysis started from.
func (a *Application) Raw() *dataprocessing.RawTable { return a.raw }

// New loads configuration, runs the analysis pipeline once, and builds the
// HTTP surface over the result. The dataset is embedded, so the pipeline
// runs at startup rather than per request.
func New(ctx context.Context) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return NewWithConfig(ctx, cfg)
}

// NewWithConfig builds the application from an already-loaded configuration.
func NewWithConfig(ctx context.Context, cfg *config.Config) (*Application, error) {
	logger := infrastructure.NewLogger(cfg.Logging)

	logger.InfoContext(ctx, "application starting",
		slog.String("version", Version),
		slog.Int("port", cfg.Server.Port))

	processor := dataprocessing.NewProcessor(logger, dataprocessing.CleanerConfig{
		DateFormat: cfg.Analysis.DateFormat,
	})
	report, raw, err := processor.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run analysis pipeline: %w", err)
	}

	app := &Application{
		Config: cfg,
		Logger: logger,
		report: report,
		raw:    raw,
	}
	app.Router = app.buildRouter()
	app.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return app, nil
}

func (a *Application) buildRouter() *chi.Mux {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := custommw.NewHTTPMetrics(registry)

	r := chi.NewRouter()
	r.Use(custommw.RequestID)
	r.Use(custommw.RealIP)
	r.Use(custommw.StructuredLogger(a.Logger))
	r.Use(custommw.Recoverer(a.Logger))
	r.Use(custommw.Timeout(a.Config.Server.WriteTimeout, a.Logger))
	r.Use(metrics.Handler)
	if a.Config.Server.RateLimit.Enabled {
		limiter := custommw.NewRateLimiter(
			a.Config.Server.RateLimit.RPS,
			a.Config.Server.RateLimit.Burst,
			a.Logger)
		r.Use(limiter.Handler)
	}

	errorHandler := apierrors.NewErrorHandler(a.Logger)
	reportHandler := handlers.NewReportHandler(a, a.Logger, errorHandler,
		a.Config.Analysis.TopProducts, a.Config.Analysis.HeadRows)
	chartHandler := handlers.NewChartHandler(a, a.Logger)
	healthHandler := handlers.NewHealthHandler(a.Logger, Version)

	r.Route("/api", func(api chi.Router) {
		api.Use(render.SetContentType(render.ContentTypeJSON))
		healthHandler.Register(api)
		api.Mount("/", reportHandler.Routes())
	})
	r.Mount("/charts", chartHandler.Routes())
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		errorHandler.HandleError(w, req, apierrors.ErrNotFound("resource not found"))
	})

	return r
}

// Run serves HTTP until the context is canceled or SIGINT/SIGTERM arrives,
// then shuts down gracefully within the configured timeout.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.InfoContext(gctx, "http server listening",
			slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("shutting down http server",
			slog.Duration("timeout", a.Config.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	a.Logger.Info("application stopped", slog.Duration("uptime", time.Since(a.report.GeneratedAt).Round(time.Second)))
	return err
}
