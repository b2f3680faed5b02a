// Command analyzer runs the sales analysis pipeline over the embedded
// dataset and prints the text report to stdout. Logs go to stderr so the
// report stays pipeable.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"salespulse/internal/config"
	"salespulse/internal/dataprocessing"
	"salespulse/internal/infrastructure"
	"salespulse/internal/report"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "analyzer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging := cfg.Logging
	logging.Output = "stderr"
	logger := infrastructure.NewLogger(logging)

	ctx := context.Background()
	processor := dataprocessing.NewProcessor(logger, dataprocessing.CleanerConfig{
		DateFormat: cfg.Analysis.DateFormat,
	})
	result, raw, err := processor.Run(ctx)
	if err != nil {
		return err
	}

	reporter := report.NewTextReporter(os.Stdout, cfg.Analysis.HeadRows)
	if err := reporter.Write(raw, result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.InfoContext(ctx, "analysis complete",
		slog.Int("records", len(result.Records)),
		slog.String("overall_total", result.Summary.OverallTotal.StringFixed(2)))
	return nil
}
