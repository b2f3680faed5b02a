package http

import (
	"salespulse/internal/dataprocessing"
)

// ReportService provides the computed analysis to the handlers. The dataset
// is static, so implementations compute once and serve from memory.
type ReportService interface {
	// Report returns the full pipeline result.
	Report() *dataprocessing.Report
	// Raw returns the pre-cleaning table for the text report's previews.
	Raw() *dataprocessing.RawTable
}
