// Package exporter streams the analysis result in downloadable formats.
//
// ExcelExporter builds an XLSX workbook with the cleaned transactions, one
// sheet per grouped summary, and the three charts embedded as native Excel
// charts (line, bar, pie).
//
// CSVExporter writes the cleaned transactions, Total Sales included, as CSV
// with an optional UTF-8 BOM for Excel compatibility.
//
// Both exporters write to an io.Writer; nothing touches the filesystem.
package exporter
