package backend

import (
	"context"
	"net/http"
	"net/url"

	"tradejournal/internal/models"
)

func (c *Client) ListEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	out := []models.CalendarEvent{}
	if err := c.do(ctx, http.MethodGet, "/calendar/events", "/calendar/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*models.CalendarEvent, error) {
	var out models.CalendarEvent
	if err := c.do(ctx, http.MethodGet, "/calendar/events/:id", "/calendar/events/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEvent(ctx context.Context, ev models.CalendarEvent) (*models.CalendarEvent, error) {
	var out models.CalendarEvent
	if err := c.do(ctx, http.MethodPost, "/calendar/events", "/calendar/events", ev, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, ev models.CalendarEvent) (*models.CalendarEvent, error) {
	var out models.CalendarEvent
	if err := c.do(ctx, http.MethodPut, "/calendar/events/:id", "/calendar/events/"+url.PathEscape(id), ev, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/calendar/events/:id", "/calendar/events/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ToggleEventCompletion(ctx context.Context, id string) (*models.CalendarEvent, error) {
	var out models.CalendarEvent
	path := "/calendar/events/" + url.PathEscape(id) + "/toggle"
	if err := c.do(ctx, http.MethodPatch, "/calendar/events/:id/toggle", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
