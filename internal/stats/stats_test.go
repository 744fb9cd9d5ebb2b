package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tradejournal/internal/models"
)

func day(d int) time.Time {
	return time.Date(2026, 1, d, 9, 0, 0, 0, time.UTC)
}

func TestCalculateWinLossPair(t *testing.T) {
	trades := []models.Trade{
		{Date: day(1), Profit: 100, Result: models.ResultWin},
		{Date: day(2), Profit: -40, Result: models.ResultLose},
	}

	s := Calculate(trades, 1000)

	assert.Equal(t, float64(50), s.WinRate)
	assert.Equal(t, float64(60), s.NetProfit)
	assert.Equal(t, 2.5, s.ProfitFactor)
	assert.Equal(t, float64(30), s.AverageProfit)
	assert.Equal(t, float64(6), s.ROI)
	assert.Equal(t, float64(40), s.MaxDrawdown)
	assert.InDelta(t, 3.64, s.MaxDrawdownPercent, 0.001)
	assert.Equal(t, float64(1060), s.FinalBalance)
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil, 5000)
	assert.Equal(t, 0, s.TotalTrades)
	assert.Equal(t, float64(0), s.WinRate)
	assert.Equal(t, float64(0), s.ProfitFactor)
	assert.Equal(t, float64(5000), s.FinalBalance)
}

func TestProfitFactorEdges(t *testing.T) {
	assert.Equal(t, float64(0), ProfitFactor(0, 0))
	assert.True(t, math.IsInf(ProfitFactor(120, 0), 1))
	assert.Equal(t, float64(0), DisplayProfitFactor(ProfitFactor(120, 0)))
	assert.Equal(t, 1.33, DisplayProfitFactor(ProfitFactor(4, 3)))

	allWins := []models.Trade{
		{Date: day(1), Profit: 50, Result: models.ResultWin},
		{Date: day(2), Profit: 70, Result: models.ResultWin},
	}
	assert.Equal(t, float64(0), Calculate(allWins, 1000).ProfitFactor)
}

func TestCalculateStreaksUseChronologicalOrder(t *testing.T) {
	trades := []models.Trade{
		{Date: day(5), Profit: -10, Result: models.ResultLose},
		{Date: day(1), Profit: 10, Result: models.ResultWin},
		{Date: day(2), Profit: 10, Result: models.ResultWin},
		{Date: day(3), Profit: 10, Result: models.ResultWin},
		{Date: day(4), Profit: 0, Result: models.ResultBreakeven},
		{Date: day(6), Profit: -10, Result: models.ResultLose},
	}

	s := Calculate(trades, 1000)

	assert.Equal(t, 3, s.MaxWinStreak)
	assert.Equal(t, 2, s.MaxLossStreak)
	assert.Equal(t, 2, s.CurrentStreak)
	assert.Equal(t, StreakLoss, s.CurrentStreakType)
	assert.Equal(t, 1, s.BreakevenTrades)
}

func TestCalculateDrawdownTracksRunningPeak(t *testing.T) {
	trades := []models.Trade{
		{Date: day(1), Profit: 500},
		{Date: day(2), Profit: -200},
		{Date: day(3), Profit: 400},
		{Date: day(4), Profit: -600},
	}

	s := Calculate(trades, 1000)

	// peak 1700 after day 3, trough 1100 after day 4
	assert.Equal(t, float64(600), s.MaxDrawdown)
	assert.InDelta(t, 35.29, s.MaxDrawdownPercent, 0.001)
	assert.Equal(t, 2, s.WinningTrades)
	assert.Equal(t, 2, s.LosingTrades)
}

func TestMergePrefersCachedNonZero(t *testing.T) {
	calc := Summary{TotalTrades: 4, WinRate: 50, NetProfit: 120, ProfitFactor: 2, CurrentStreakType: StreakWin}
	cached := &Summary{TotalTrades: 5, WinRate: 60}

	merged := Merge(cached, calc)

	assert.Equal(t, 5, merged.TotalTrades)
	assert.Equal(t, float64(60), merged.WinRate)
	assert.Equal(t, float64(120), merged.NetProfit)
	assert.Equal(t, float64(2), merged.ProfitFactor)
	assert.Equal(t, StreakWin, merged.CurrentStreakType)

	assert.Equal(t, calc, Merge(nil, calc))
}

func TestMonthly(t *testing.T) {
	trades := []models.Trade{
		{Date: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), Profit: -20, Result: models.ResultLose},
		{Date: time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), Profit: 30, Result: models.ResultWin},
		{Date: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC), Profit: 10, Result: models.ResultWin},
	}

	months := Monthly(trades)

	assert.Len(t, months, 2)
	assert.Equal(t, "2026-01", months[0].Month)
	assert.Equal(t, float64(40), months[0].Profit)
	assert.Equal(t, float64(100), months[0].WinRate)
	assert.Equal(t, "2026-02", months[1].Month)
	assert.Equal(t, float64(0), months[1].WinRate)
}

func TestByInstrument(t *testing.T) {
	trades := []models.Trade{
		{Instrument: "EURUSD", Profit: 20, Pips: 15, Result: models.ResultWin},
		{Instrument: "XAUUSD", Profit: 90, Pips: 40, Result: models.ResultWin},
		{Instrument: "EURUSD", Profit: -5, Pips: -4, Result: models.ResultLose},
	}

	rows := ByInstrument(trades)

	assert.Len(t, rows, 2)
	assert.Equal(t, "XAUUSD", rows[0].Instrument)
	assert.Equal(t, "EURUSD", rows[1].Instrument)
	assert.Equal(t, float64(15), rows[1].Profit)
	assert.Equal(t, float64(11), rows[1].Pips)
	assert.Equal(t, float64(50), rows[1].WinRate)
}

func TestByStrategyAndDistribution(t *testing.T) {
	trades := []models.Trade{
		{Strategy: "breakout", Profit: 40, Result: models.ResultWin},
		{Strategy: "breakout", Profit: -10, Result: models.ResultLose},
		{Profit: 5},
		{Strategy: "scalp", Profit: 0, Result: models.ResultBreakeven},
	}

	rows := ByStrategy(trades)
	assert.Len(t, rows, 3)
	assert.Equal(t, "breakout", rows[0].Strategy)
	assert.Equal(t, float64(30), rows[0].Profit)
	assert.Equal(t, float64(50), rows[0].WinRate)
	assert.Equal(t, "untagged", rows[1].Strategy)

	assert.Equal(t, Distribution{Wins: 2, Losses: 1, Breakeven: 1}, Distribute(trades))
}
