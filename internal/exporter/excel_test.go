package exporter

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelExporter_Write(t *testing.T) {
	report := reportFixture(t)

	var buf bytes.Buffer
	err := NewExcelExporter(slog.Default(), 5).Write(&buf, report)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{sheetTransactions, sheetProducts, sheetRegions, sheetDaily},
		f.GetSheetList())

	transactions, err := f.GetRows(sheetTransactions)
	require.NoError(t, err)
	assert.Len(t, transactions, 25, "header plus 24 cleaned rows")

	products, err := f.GetRows(sheetProducts)
	require.NoError(t, err)
	require.Len(t, products, 7, "header plus six products")
	assert.Equal(t, "Laptop", products[1][0], "products sheet sorted descending by total")
	assert.Equal(t, "8400", products[1][1])

	regions, err := f.GetRows(sheetRegions)
	require.NoError(t, err)
	require.Len(t, regions, 5)
	assert.Equal(t, "North", regions[1][0])

	daily, err := f.GetRows(sheetDaily)
	require.NoError(t, err)
	require.Len(t, daily, 23, "header plus 22 distinct dates")
	assert.Equal(t, "2023-01-01", daily[1][0])
}

func TestNewExcelExporter_Defaults(t *testing.T) {
	e := NewExcelExporter(nil, 0)
	assert.Equal(t, 5, e.topProducts)
	assert.NotNil(t, e.logger)
}
