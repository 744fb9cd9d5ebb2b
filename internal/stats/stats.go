// Package stats derives performance figures from the raw trade list.
// Nothing here is persisted; every view recomputes from trades.
package stats

import (
	"math"
	"sort"

	"tradejournal/internal/models"
)

type StreakType string

const (
	StreakNone StreakType = ""
	StreakWin  StreakType = "win"
	StreakLoss StreakType = "lose"
)

type Summary struct {
	TotalTrades        int        `json:"totalTrades"`
	WinningTrades      int        `json:"winningTrades"`
	LosingTrades       int        `json:"losingTrades"`
	BreakevenTrades    int        `json:"breakevenTrades"`
	WinRate            float64    `json:"winRate"`
	NetProfit          float64    `json:"netProfit"`
	GrossProfit        float64    `json:"grossProfit"`
	GrossLoss          float64    `json:"grossLoss"`
	ProfitFactor       float64    `json:"profitFactor"`
	AverageProfit      float64    `json:"averageProfit"`
	AverageWin         float64    `json:"averageWin"`
	AverageLoss        float64    `json:"averageLoss"`
	LargestWin         float64    `json:"largestWin"`
	LargestLoss        float64    `json:"largestLoss"`
	ROI                float64    `json:"roi"`
	FinalBalance       float64    `json:"finalBalance"`
	MaxDrawdown        float64    `json:"maxDrawdown"`
	MaxDrawdownPercent float64    `json:"maxDrawdownPercent"`
	MaxWinStreak       int        `json:"maxWinStreak"`
	MaxLossStreak      int        `json:"maxLossStreak"`
	CurrentStreak      int        `json:"currentStreak"`
	CurrentStreakType  StreakType `json:"currentStreakType"`
	TotalPips          float64    `json:"totalPips"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ProfitFactor is gross wins over gross losses. With no losses it is 0 when
// there are no wins either and +Inf otherwise.
func ProfitFactor(grossProfit, grossLoss float64) float64 {
	if grossLoss == 0 {
		if grossProfit == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return grossProfit / grossLoss
}

// DisplayProfitFactor rounds for display. Infinity displays as 0.
func DisplayProfitFactor(pf float64) float64 {
	if math.IsInf(pf, 0) || math.IsNaN(pf) {
		return 0
	}
	return round2(pf)
}

// Chronological returns a copy of trades ordered by date, ties kept stable.
func Chronological(trades []models.Trade) []models.Trade {
	out := make([]models.Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func classify(t models.Trade) models.TradeResult {
	switch t.Result {
	case models.ResultWin, models.ResultLose, models.ResultBreakeven:
		return t.Result
	}
	switch {
	case t.Profit > 0:
		return models.ResultWin
	case t.Profit < 0:
		return models.ResultLose
	}
	return models.ResultBreakeven
}

// Calculate computes the summary in one chronological pass.
func Calculate(trades []models.Trade, initialBalance float64) Summary {
	s := Summary{TotalTrades: len(trades), FinalBalance: round2(initialBalance)}
	if len(trades) == 0 {
		return s
	}

	balance := initialBalance
	peak := initialBalance
	winStreak, lossStreak := 0, 0

	for _, t := range Chronological(trades) {
		s.NetProfit += t.Profit
		s.TotalPips += t.Pips

		switch classify(t) {
		case models.ResultWin:
			s.WinningTrades++
			winStreak++
			lossStreak = 0
		case models.ResultLose:
			s.LosingTrades++
			lossStreak++
			winStreak = 0
		default:
			s.BreakevenTrades++
			winStreak, lossStreak = 0, 0
		}
		if winStreak > s.MaxWinStreak {
			s.MaxWinStreak = winStreak
		}
		if lossStreak > s.MaxLossStreak {
			s.MaxLossStreak = lossStreak
		}

		if t.Profit > 0 {
			s.GrossProfit += t.Profit
			if t.Profit > s.LargestWin {
				s.LargestWin = t.Profit
			}
		} else if t.Profit < 0 {
			s.GrossLoss += -t.Profit
			if t.Profit < s.LargestLoss {
				s.LargestLoss = t.Profit
			}
		}

		balance += t.Profit
		if balance > peak {
			peak = balance
		}
		if dd := peak - balance; dd > s.MaxDrawdown {
			s.MaxDrawdown = dd
			if peak > 0 {
				s.MaxDrawdownPercent = dd / peak * 100
			}
		}
	}

	switch {
	case winStreak > 0:
		s.CurrentStreak, s.CurrentStreakType = winStreak, StreakWin
	case lossStreak > 0:
		s.CurrentStreak, s.CurrentStreakType = lossStreak, StreakLoss
	}

	total := float64(s.TotalTrades)
	s.WinRate = round2(float64(s.WinningTrades) / total * 100)
	s.ProfitFactor = DisplayProfitFactor(ProfitFactor(s.GrossProfit, s.GrossLoss))
	s.AverageProfit = round2(s.NetProfit / total)
	if s.WinningTrades > 0 {
		s.AverageWin = round2(s.GrossProfit / float64(s.WinningTrades))
	}
	if s.LosingTrades > 0 {
		s.AverageLoss = round2(s.GrossLoss / float64(s.LosingTrades))
	}
	if initialBalance > 0 {
		s.ROI = round2(s.NetProfit / initialBalance * 100)
	}

	s.NetProfit = round2(s.NetProfit)
	s.GrossProfit = round2(s.GrossProfit)
	s.GrossLoss = round2(s.GrossLoss)
	s.LargestWin = round2(s.LargestWin)
	s.LargestLoss = round2(s.LargestLoss)
	s.MaxDrawdown = round2(s.MaxDrawdown)
	s.MaxDrawdownPercent = round2(s.MaxDrawdownPercent)
	s.TotalPips = round2(s.TotalPips)
	s.FinalBalance = round2(balance)

	return s
}

func pickFloat(cached, calculated float64) float64 {
	if cached != 0 {
		return cached
	}
	return calculated
}

func pickInt(cached, calculated int) int {
	if cached != 0 {
		return cached
	}
	return calculated
}

// Merge overlays the cached server summary on the locally calculated one.
// Any non-zero cached field wins; zero cached fields fall back to the
// calculated value. The two sources are not reconciled.
func Merge(cached *Summary, calculated Summary) Summary {
	if cached == nil {
		return calculated
	}
	out := Summary{
		TotalTrades:        pickInt(cached.TotalTrades, calculated.TotalTrades),
		WinningTrades:      pickInt(cached.WinningTrades, calculated.WinningTrades),
		LosingTrades:       pickInt(cached.LosingTrades, calculated.LosingTrades),
		BreakevenTrades:    pickInt(cached.BreakevenTrades, calculated.BreakevenTrades),
		WinRate:            pickFloat(cached.WinRate, calculated.WinRate),
		NetProfit:          pickFloat(cached.NetProfit, calculated.NetProfit),
		GrossProfit:        pickFloat(cached.GrossProfit, calculated.GrossProfit),
		GrossLoss:          pickFloat(cached.GrossLoss, calculated.GrossLoss),
		ProfitFactor:       pickFloat(cached.ProfitFactor, calculated.ProfitFactor),
		AverageProfit:      pickFloat(cached.AverageProfit, calculated.AverageProfit),
		AverageWin:         pickFloat(cached.AverageWin, calculated.AverageWin),
		AverageLoss:        pickFloat(cached.AverageLoss, calculated.AverageLoss),
		LargestWin:         pickFloat(cached.LargestWin, calculated.LargestWin),
		LargestLoss:        pickFloat(cached.LargestLoss, calculated.LargestLoss),
		ROI:                pickFloat(cached.ROI, calculated.ROI),
		FinalBalance:       pickFloat(cached.FinalBalance, calculated.FinalBalance),
		MaxDrawdown:        pickFloat(cached.MaxDrawdown, calculated.MaxDrawdown),
		MaxDrawdownPercent: pickFloat(cached.MaxDrawdownPercent, calculated.MaxDrawdownPercent),
		MaxWinStreak:       pickInt(cached.MaxWinStreak, calculated.MaxWinStreak),
		MaxLossStreak:      pickInt(cached.MaxLossStreak, calculated.MaxLossStreak),
		CurrentStreak:      pickInt(cached.CurrentStreak, calculated.CurrentStreak),
		CurrentStreakType:  cached.CurrentStreakType,
		TotalPips:          pickFloat(cached.TotalPips, calculated.TotalPips),
	}
	if out.CurrentStreakType == StreakNone {
		out.CurrentStreakType = calculated.CurrentStreakType
	}
	return out
}
