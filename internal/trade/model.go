package trade

import (
	"strings"
	"time"

	"tradejournal/internal/featuregate"
	"tradejournal/internal/models"
	"tradejournal/internal/stats"
)

type TradeRequest struct {
	Date       string             `json:"date" validate:"required"`
	Instrument string             `json:"instrument" validate:"required,max=20"`
	Type       string             `json:"type,omitempty" validate:"omitempty,oneof=buy sell"`
	Lot        float64            `json:"lot" validate:"gte=0"`
	Result     models.TradeResult `json:"result" validate:"required,oneof=win lose breakeven"`
	Profit     float64            `json:"profit"`
	Pips       float64            `json:"pips"`
	Strategy   string             `json:"strategy,omitempty" validate:"max=50"`
	Notes      string             `json:"notes,omitempty" validate:"max=1000"`
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(v string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		t, perr := time.Parse(layout, strings.TrimSpace(v))
		if perr == nil {
			return t, nil
		}
		err = perr
	}
	return time.Time{}, err
}

func (r TradeRequest) toTrade() (models.Trade, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return models.Trade{}, ErrInvalidDate
	}
	return models.Trade{
		Date:       date,
		Instrument: strings.ToUpper(strings.TrimSpace(r.Instrument)),
		Type:       r.Type,
		Lot:        r.Lot,
		Result:     r.Result,
		Profit:     r.Profit,
		Pips:       r.Pips,
		Strategy:   strings.TrimSpace(r.Strategy),
		Notes:      r.Notes,
	}, nil
}

type Locked map[featuregate.Feature]*featuregate.Prompt

type PerformanceView struct {
	Plan        models.Plan                   `json:"plan"`
	Summary     stats.Summary                 `json:"summary"`
	Monthly     []stats.MonthlyPerformance    `json:"monthly"`
	Instruments []stats.InstrumentPerformance `json:"instruments"`
	Locked      Locked                        `json:"locked,omitempty"`
}

type AnalyticsView struct {
	Plan         models.Plan                   `json:"plan"`
	Distribution stats.Distribution            `json:"distribution"`
	Monthly      []stats.MonthlyPerformance    `json:"monthly"`
	Instruments  []stats.InstrumentPerformance `json:"instruments"`
	Strategies   []stats.StrategyPerformance   `json:"strategies"`
	Locked       Locked                        `json:"locked,omitempty"`
}

type DashboardView struct {
	User         *models.User                 `json:"user"`
	Plan         models.Plan                  `json:"plan"`
	Summary      stats.Summary                `json:"summary"`
	RecentTrades []models.Trade               `json:"recentTrades"`
	Gates        map[featuregate.Feature]bool `json:"gates"`
	Locked       Locked                       `json:"locked,omitempty"`
}
