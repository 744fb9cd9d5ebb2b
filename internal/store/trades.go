package store

import (
	"context"

	"tradejournal/internal/logger"
	"tradejournal/internal/models"
	"tradejournal/internal/stats"
)

func (s *Store) beginTrades() {
	s.mu.Lock()
	s.trades.begin()
	s.mu.Unlock()
}

func (s *Store) failTrades(err error) error {
	s.mu.Lock()
	s.trades.fail(err)
	s.mu.Unlock()
	return err
}

// FetchTrades loads the list and the server summary. A failing summary
// call leaves the previous cached summary in place. The returned slice is
// the caller's own copy.
func (s *Store) FetchTrades(ctx context.Context) ([]models.Trade, error) {
	s.beginTrades()
	trades, err := s.api.ListTrades(ctx)
	if err != nil {
		return nil, s.failTrades(err)
	}

	summary, statsErr := s.api.TradeStats(ctx)
	if statsErr != nil {
		logger.WithError(statsErr).Warn("trade stats unavailable, using calculated values")
	}

	s.mu.Lock()
	s.trades.Trades = trades
	if statsErr == nil {
		s.trades.Stats = summary
	}
	s.trades.succeed()
	s.mu.Unlock()
	return append([]models.Trade(nil), trades...), nil
}

func (s *Store) CreateTrade(ctx context.Context, t models.Trade) (*models.Trade, error) {
	s.beginTrades()
	created, err := s.api.CreateTrade(ctx, t)
	if err != nil {
		return nil, s.failTrades(err)
	}
	s.mu.Lock()
	s.trades.Trades = append([]models.Trade{*created}, s.trades.Trades...)
	s.trades.succeed()
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateTrade(ctx context.Context, id string, t models.Trade) (*models.Trade, error) {
	s.beginTrades()
	updated, err := s.api.UpdateTrade(ctx, id, t)
	if err != nil {
		return nil, s.failTrades(err)
	}
	s.mu.Lock()
	for i := range s.trades.Trades {
		if s.trades.Trades[i].ID == id {
			s.trades.Trades[i] = *updated
			break
		}
	}
	s.trades.succeed()
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteTrade(ctx context.Context, id string) error {
	s.beginTrades()
	if err := s.api.DeleteTrade(ctx, id); err != nil {
		return s.failTrades(err)
	}
	s.mu.Lock()
	kept := make([]models.Trade, 0, len(s.trades.Trades))
	for _, t := range s.trades.Trades {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.trades.Trades = kept
	s.trades.succeed()
	s.mu.Unlock()
	return nil
}

// Performance recomputes the summary from the cached trades and overlays
// the cached server summary.
func (s *Store) Performance(initialBalance float64) stats.Summary {
	st := s.Trades()
	return stats.Merge(st.Stats, stats.Calculate(st.Trades, initialBalance))
}
