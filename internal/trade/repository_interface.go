package trade

import (
	"context"

	"tradejournal/internal/models"
	"tradejournal/internal/stats"
	"tradejournal/internal/store"
)

// Repository is the trades slice of the view-state store.
type Repository interface {
	FetchTrades(ctx context.Context) ([]models.Trade, error)
	CreateTrade(ctx context.Context, t models.Trade) (*models.Trade, error)
	UpdateTrade(ctx context.Context, id string, t models.Trade) (*models.Trade, error)
	DeleteTrade(ctx context.Context, id string) error
	Performance(initialBalance float64) stats.Summary
	Auth() store.AuthState
	Plan() models.Plan
}
