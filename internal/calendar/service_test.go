package calendar

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/featuregate"
	"tradejournal/internal/models"
	"tradejournal/internal/store"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FetchEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CalendarEvent), args.Error(1)
}

func (m *MockRepository) CreateEvent(ctx context.Context, ev models.CalendarEvent) (*models.CalendarEvent, error) {
	args := m.Called(ctx, ev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CalendarEvent), args.Error(1)
}

func (m *MockRepository) UpdateEvent(ctx context.Context, id string, ev models.CalendarEvent) (*models.CalendarEvent, error) {
	args := m.Called(ctx, id, ev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CalendarEvent), args.Error(1)
}

func (m *MockRepository) DeleteEvent(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ToggleEventCompletion(ctx context.Context, id string) (*models.CalendarEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CalendarEvent), args.Error(1)
}

func (m *MockRepository) Calendar() store.CalendarState {
	return m.Called().Get(0).(store.CalendarState)
}

func (m *MockRepository) Plan() models.Plan {
	return m.Called().Get(0).(models.Plan)
}

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository) Service {
	return &service{repo: repo, now: func() time.Time { return fixedNow }}
}

// events builds n events this month and older events in February.
func events(thisMonth, older int) []models.CalendarEvent {
	var out []models.CalendarEvent
	for i := 0; i < thisMonth; i++ {
		out = append(out, models.CalendarEvent{ID: fmt.Sprintf("m%d", i), Date: time.Date(2026, 3, 1+i%28, 0, 0, 0, 0, time.UTC)})
	}
	for i := 0; i < older; i++ {
		out = append(out, models.CalendarEvent{ID: fmt.Sprintf("o%d", i), Date: time.Date(2026, 2, 1+i%28, 0, 0, 0, 0, time.UTC)})
	}
	return out
}

func validRequest() EventRequest {
	return EventRequest{Date: "2026-03-20", Title: "FOMC", Type: models.EventEconomic, Impact: models.ImpactHigh}
}

func TestCountInMonth(t *testing.T) {
	assert.Equal(t, 10, CountInMonth(events(10, 21), fixedNow))
	assert.Equal(t, 0, CountInMonth(nil, fixedNow))
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		plan      models.Plan
		events    []models.CalendarEvent
		wantLimit bool
		canCreate bool
	}{
		{"free under cap", models.PlanFree, events(9, 5), true, true},
		{"free at cap", models.PlanFree, events(10, 21), true, false},
		{"pro over cap", models.PlanPro, events(25, 0), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("FetchEvents", ctx).Return(tt.events, nil)
			repo.On("Plan").Return(tt.plan)

			view, err := newTestService(repo).List(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.canCreate, view.CanCreate)
			assert.Equal(t, tt.wantLimit, view.Limit != nil)
			if !tt.canCreate {
				require.NotNil(t, view.Upgrade)
				assert.Equal(t, featuregate.UnlimitedCalendarEvents, view.Upgrade.Feature)
			}
		})
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("FreeAtCapNeverCallsBackend", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Calendar").Return(store.CalendarState{Events: events(10, 21), Status: store.Status{IsSuccess: true}})
		repo.On("Plan").Return(models.PlanFree)

		_, err := newTestService(repo).Create(ctx, validRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEventLimitReached)
		assert.ErrorIs(t, err, featuregate.ErrUpgradeRequired)

		var denied *featuregate.DeniedError
		require.True(t, errors.As(err, &denied))
		assert.Equal(t, featuregate.UnlimitedCalendarEvents, denied.Prompt.Feature)
		repo.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
	})

	t.Run("FetchesWhenNotLoaded", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Calendar").Return(store.CalendarState{})
		repo.On("FetchEvents", ctx).Return(events(3, 0), nil)
		repo.On("Plan").Return(models.PlanFree)
		repo.On("CreateEvent", ctx, mock.MatchedBy(func(ev models.CalendarEvent) bool {
			return ev.Title == "FOMC" && ev.Date.Day() == 20
		})).Return(&models.CalendarEvent{ID: "e1", Title: "FOMC"}, nil)

		ev, err := newTestService(repo).Create(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, "e1", ev.ID)
		repo.AssertExpectations(t)
	})

	t.Run("LifetimeUnlimited", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Calendar").Return(store.CalendarState{Events: events(40, 0), Status: store.Status{IsSuccess: true}})
		repo.On("Plan").Return(models.PlanLifetime)
		repo.On("CreateEvent", ctx, mock.Anything).Return(&models.CalendarEvent{ID: "e41"}, nil)

		_, err := newTestService(repo).Create(ctx, validRequest())
		assert.NoError(t, err)
	})

	t.Run("InvalidDate", func(t *testing.T) {
		repo := new(MockRepository)
		req := validRequest()
		req.Date = "20/03/2026"

		_, err := newTestService(repo).Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestService_UpdateCarriesID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("UpdateEvent", ctx, "e7", mock.MatchedBy(func(ev models.CalendarEvent) bool {
		return ev.ID == "e7"
	})).Return(&models.CalendarEvent{ID: "e7"}, nil)

	_, err := newTestService(repo).Update(ctx, "e7", validRequest())
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
