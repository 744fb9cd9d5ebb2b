package calendar

import (
	"strings"
	"time"

	"tradejournal/internal/featuregate"
	"tradejournal/internal/models"
)

type EventRequest struct {
	Date        string           `json:"date" validate:"required"`
	Title       string           `json:"title" validate:"required,max=100"`
	Type        models.EventType `json:"type" validate:"required,oneof=market_news economic_event trade_idea reminder trade_review journal_entry"`
	Description string           `json:"description,omitempty" validate:"max=1000"`
	Time        string           `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Impact      models.Impact    `json:"impact,omitempty" validate:"omitempty,oneof=none low medium high"`
	Instrument  string           `json:"instrument,omitempty"`
	Strategy    string           `json:"strategy,omitempty"`
	Sentiment   string           `json:"sentiment,omitempty" validate:"omitempty,oneof=bullish bearish neutral"`
	Color       string           `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

func (r EventRequest) toEvent() (models.CalendarEvent, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(r.Date))
	if err != nil {
		return models.CalendarEvent{}, ErrInvalidDate
	}
	return models.CalendarEvent{
		Date:        date,
		Title:       strings.TrimSpace(r.Title),
		Type:        r.Type,
		Description: r.Description,
		Time:        r.Time,
		Impact:      r.Impact,
		Instrument:  strings.ToUpper(strings.TrimSpace(r.Instrument)),
		Strategy:    r.Strategy,
		Sentiment:   r.Sentiment,
		Color:       r.Color,
	}, nil
}

// CalendarView mirrors the server-side cap: the count covers the current
// month only and Limit is nil on unlimited plans.
type CalendarView struct {
	Events    []models.CalendarEvent `json:"events"`
	Plan      models.Plan            `json:"plan"`
	Count     int                    `json:"count"`
	Limit     *int                   `json:"limit"`
	CanCreate bool                   `json:"canCreate"`
	Upgrade   *featuregate.Prompt    `json:"upgrade,omitempty"`
}
