package trade

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"tradejournal/internal/models"
	"tradejournal/internal/stats"
)

const (
	tradesSheet  = "Trades"
	summarySheet = "Summary"
)

var tradeHeader = []interface{}{
	"Date", "Instrument", "Type", "Lot", "Result", "Profit", "Pips", "Strategy", "Notes",
}

// WriteWorkbook renders trades, oldest first, plus a summary sheet as xlsx.
func WriteWorkbook(w io.Writer, trades []models.Trade, sum stats.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", tradesSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(tradesSheet, "A1", &tradeHeader); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(tradesSheet, "A1", "I1", bold); err != nil {
		return err
	}

	for i, t := range stats.Chronological(trades) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			t.Date.Format("2006-01-02"),
			t.Instrument,
			t.Type,
			t.Lot,
			string(t.Result),
			t.Profit,
			t.Pips,
			t.Strategy,
			t.Notes,
		}
		if err := f.SetSheetRow(tradesSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(tradesSheet, "A", "H", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(tradesSheet, "I", "I", 40); err != nil {
		return err
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total trades", sum.TotalTrades},
		{"Win rate %", sum.WinRate},
		{"Net profit", sum.NetProfit},
		{"Profit factor", sum.ProfitFactor},
		{"ROI %", sum.ROI},
		{"Max drawdown", sum.MaxDrawdown},
		{"Max drawdown %", sum.MaxDrawdownPercent},
		{"Final balance", sum.FinalBalance},
		{"Total pips", sum.TotalPips},
	}
	for i := range rows {
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &rows[i]); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", "B1", bold); err != nil {
		return err
	}

	return f.Write(w)
}
