package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tradejournal/internal/featuregate"
	"tradejournal/internal/logger"
	"tradejournal/internal/models"
)

// FreeEventLimit is the backend's per-month cap for free accounts.
const FreeEventLimit = 10

var (
	ErrEventLimitReached = errors.New("calendar event limit reached")
	ErrInvalidDate       = errors.New("invalid event date, expected YYYY-MM-DD")
)

type Service interface {
	List(ctx context.Context) (*CalendarView, error)
	Create(ctx context.Context, req EventRequest) (*models.CalendarEvent, error)
	Update(ctx context.Context, id string, req EventRequest) (*models.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) (*models.CalendarEvent, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

// CountInMonth counts events dated in the same calendar month as now.
func CountInMonth(events []models.CalendarEvent, now time.Time) int {
	y, m, _ := now.Date()
	n := 0
	for _, ev := range events {
		ey, em, _ := ev.Date.In(now.Location()).Date()
		if ey == y && em == m {
			n++
		}
	}
	return n
}

func (s *service) view(events []models.CalendarEvent) *CalendarView {
	plan := s.repo.Plan()
	v := &CalendarView{
		Events:    events,
		Plan:      plan,
		Count:     CountInMonth(events, s.now()),
		CanCreate: true,
	}
	if featuregate.HasAccess(plan, featuregate.UnlimitedCalendarEvents) {
		return v
	}
	limit := FreeEventLimit
	v.Limit = &limit
	if v.Count >= limit {
		v.CanCreate = false
		p := featuregate.PromptFor(featuregate.UnlimitedCalendarEvents)
		v.Upgrade = &p
	}
	return v
}

func (s *service) List(ctx context.Context) (*CalendarView, error) {
	events, err := s.repo.FetchEvents(ctx)
	if err != nil {
		return nil, err
	}
	return s.view(events), nil
}

// Create refuses locally once a free account is at the cap, without
// calling the backend.
func (s *service) Create(ctx context.Context, req EventRequest) (*models.CalendarEvent, error) {
	ev, err := req.toEvent()
	if err != nil {
		return nil, err
	}

	cal := s.repo.Calendar()
	events := cal.Events
	if !cal.IsSuccess {
		if events, err = s.repo.FetchEvents(ctx); err != nil {
			return nil, err
		}
	}
	if v := s.view(events); !v.CanCreate {
		logger.Info("calendar event blocked by plan cap", "count", v.Count, "limit", FreeEventLimit)
		return nil, fmt.Errorf("%w: %w", ErrEventLimitReached,
			featuregate.Require(v.Plan, featuregate.UnlimitedCalendarEvents))
	}
	return s.repo.CreateEvent(ctx, ev)
}

func (s *service) Update(ctx context.Context, id string, req EventRequest) (*models.CalendarEvent, error) {
	ev, err := req.toEvent()
	if err != nil {
		return nil, err
	}
	ev.ID = id
	return s.repo.UpdateEvent(ctx, id, ev)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteEvent(ctx, id)
}

func (s *service) Toggle(ctx context.Context, id string) (*models.CalendarEvent, error) {
	return s.repo.ToggleEventCompletion(ctx, id)
}
