package backend

import (
	"context"
	"net/http"
	"net/url"

	"tradejournal/internal/models"
	"tradejournal/internal/stats"
)

func (c *Client) ListTrades(ctx context.Context) ([]models.Trade, error) {
	out := []models.Trade{}
	if err := c.do(ctx, http.MethodGet, "/trades", "/trades", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TradeStats returns the server-computed summary cached alongside the list.
func (c *Client) TradeStats(ctx context.Context) (*stats.Summary, error) {
	var out stats.Summary
	if err := c.do(ctx, http.MethodGet, "/trades/stats", "/trades/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTrade(ctx context.Context, trade models.Trade) (*models.Trade, error) {
	var out models.Trade
	if err := c.do(ctx, http.MethodPost, "/trades", "/trades", trade, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTrade(ctx context.Context, id string, trade models.Trade) (*models.Trade, error) {
	var out models.Trade
	if err := c.do(ctx, http.MethodPut, "/trades/:id", "/trades/"+url.PathEscape(id), trade, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTrade(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/trades/:id", "/trades/"+url.PathEscape(id), nil, nil)
}
