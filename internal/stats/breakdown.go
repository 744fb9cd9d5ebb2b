package stats

import (
	"sort"

	"tradejournal/internal/models"
)

type MonthlyPerformance struct {
	Month   string  `json:"month"`
	Trades  int     `json:"trades"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Profit  float64 `json:"profit"`
	WinRate float64 `json:"winRate"`
}

type InstrumentPerformance struct {
	Instrument string  `json:"instrument"`
	Trades     int     `json:"trades"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Profit     float64 `json:"profit"`
	Pips       float64 `json:"pips"`
	WinRate    float64 `json:"winRate"`
}

// Monthly groups trades by calendar month (YYYY-MM), oldest first.
func Monthly(trades []models.Trade) []MonthlyPerformance {
	byMonth := map[string]*MonthlyPerformance{}
	for _, t := range trades {
		key := t.Date.Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			m = &MonthlyPerformance{Month: key}
			byMonth[key] = m
		}
		m.Trades++
		m.Profit += t.Profit
		switch classify(t) {
		case models.ResultWin:
			m.Wins++
		case models.ResultLose:
			m.Losses++
		}
	}

	out := make([]MonthlyPerformance, 0, len(byMonth))
	for _, m := range byMonth {
		m.Profit = round2(m.Profit)
		m.WinRate = round2(float64(m.Wins) / float64(m.Trades) * 100)
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// ByInstrument groups trades by instrument, most profitable first.
func ByInstrument(trades []models.Trade) []InstrumentPerformance {
	byInstr := map[string]*InstrumentPerformance{}
	for _, t := range trades {
		key := t.Instrument
		if key == "" {
			key = "UNKNOWN"
		}
		p, ok := byInstr[key]
		if !ok {
			p = &InstrumentPerformance{Instrument: key}
			byInstr[key] = p
		}
		p.Trades++
		p.Profit += t.Profit
		p.Pips += t.Pips
		switch classify(t) {
		case models.ResultWin:
			p.Wins++
		case models.ResultLose:
			p.Losses++
		}
	}

	out := make([]InstrumentPerformance, 0, len(byInstr))
	for _, p := range byInstr {
		p.Profit = round2(p.Profit)
		p.Pips = round2(p.Pips)
		p.WinRate = round2(float64(p.Wins) / float64(p.Trades) * 100)
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Profit == out[j].Profit {
			return out[i].Instrument < out[j].Instrument
		}
		return out[i].Profit > out[j].Profit
	})
	return out
}

type StrategyPerformance struct {
	Strategy string  `json:"strategy"`
	Trades   int     `json:"trades"`
	Wins     int     `json:"wins"`
	Profit   float64 `json:"profit"`
	WinRate  float64 `json:"winRate"`
}

// ByStrategy groups trades by their strategy tag; untagged trades share one row.
func ByStrategy(trades []models.Trade) []StrategyPerformance {
	byStrategy := map[string]*StrategyPerformance{}
	for _, t := range trades {
		key := t.Strategy
		if key == "" {
			key = "untagged"
		}
		p, ok := byStrategy[key]
		if !ok {
			p = &StrategyPerformance{Strategy: key}
			byStrategy[key] = p
		}
		p.Trades++
		p.Profit += t.Profit
		if classify(t) == models.ResultWin {
			p.Wins++
		}
	}

	out := make([]StrategyPerformance, 0, len(byStrategy))
	for _, p := range byStrategy {
		p.Profit = round2(p.Profit)
		p.WinRate = round2(float64(p.Wins) / float64(p.Trades) * 100)
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Profit == out[j].Profit {
			return out[i].Strategy < out[j].Strategy
		}
		return out[i].Profit > out[j].Profit
	})
	return out
}

type Distribution struct {
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
	Breakeven int `json:"breakeven"`
}

func Distribute(trades []models.Trade) Distribution {
	var d Distribution
	for _, t := range trades {
		switch classify(t) {
		case models.ResultWin:
			d.Wins++
		case models.ResultLose:
			d.Losses++
		default:
			d.Breakeven++
		}
	}
	return d
}
