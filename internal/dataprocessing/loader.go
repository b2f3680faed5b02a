package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// LoadCSV parses raw comma-separated text into a RawTable. The first row is
// taken as the header; every cell stays a string until the cleaning stage
// coerces it. The input is expected to be well-formed CSV (the embedded
// dataset is), so the only failures are structural ones from the reader.
func LoadCSV(data string) (*RawTable, error) {
	reader := csv.NewReader(strings.NewReader(data))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV input has no header row")
	}

	header := rows[0]
	body := rows[1:]
	for i, row := range body {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d columns, header has %d", i+1, len(row), len(header))
		}
	}

	return &RawTable{Header: header, Rows: body}, nil
}

// CountMissing tallies empty and "NA" cells per column of the raw table.
// Mirrors the pre-cleaning missing-value report.
func CountMissing(t *RawTable) MissingCounts {
	var counts MissingCounts
	for _, row := range t.Rows {
		for col, cell := range row {
			if !isMissingCell(cell) {
				continue
			}
			switch col {
			case 0:
				counts.Date++
			case 1:
				counts.Product++
			case 2:
				counts.Quantity++
			case 3:
				counts.Price++
			case 4:
				counts.Region++
			}
		}
	}
	return counts
}

func isMissingCell(cell string) bool {
	trimmed := strings.TrimSpace(cell)
	return trimmed == "" || strings.EqualFold(trimmed, "NA")
}
