package calendar

import (
	"context"

	"tradejournal/internal/models"
	"tradejournal/internal/store"
)

type Repository interface {
	FetchEvents(ctx context.Context) ([]models.CalendarEvent, error)
	CreateEvent(ctx context.Context, ev models.CalendarEvent) (*models.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id string, ev models.CalendarEvent) (*models.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
	ToggleEventCompletion(ctx context.Context, id string) (*models.CalendarEvent, error)
	Calendar() store.CalendarState
	Plan() models.Plan
}
