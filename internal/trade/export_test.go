package trade

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tradejournal/internal/models"
)

func TestWriteWorkbook(t *testing.T) {
	trades := sampleTrades()
	// newest first on input; the sheet is chronological
	trades[0], trades[2] = trades[2], trades[0]

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, trades, fullSummary()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{tradesSheet, summarySheet}, f.GetSheetList())

	date, err := f.GetCellValue(tradesSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", date)

	result, err := f.GetCellValue(tradesSheet, "E3")
	require.NoError(t, err)
	assert.Equal(t, string(models.ResultLose), result)

	net, err := f.GetCellValue(summarySheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "140", net)
}

func TestWriteWorkbookEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, nil, fullSummary()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(tradesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
