// Package dataprocessing implements the sales analysis pipeline.
//
// The pipeline is a linear sequence of four stages over the embedded
// dataset:
//
// Loader: parses the CSV literal into a RawTable of untyped cells.
//
// Cleaner: coerces column types, imputes missing quantities with the column
// median, drops rows with unparseable prices, and removes exact-duplicate
// rows. A malformed date aborts the run.
//
// Summarizer: computes the derived Total Sales column and the grouped
// aggregates (overall, by product, by region, daily).
//
// Processor: orchestrates the stages and assembles the Report consumed by
// the text reporter, the HTTP handlers, and the exporters.
//
// Example usage:
//
//	processor := dataprocessing.NewProcessor(logger, dataprocessing.DefaultCleanerConfig())
//	report, raw, err := processor.Run(ctx)
package dataprocessing
