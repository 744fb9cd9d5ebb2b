// Package store holds the session's view-state in independent slices.
//
// Every asynchronous operation runs the same lifecycle on its slice:
// begin sets IsLoading, success stores the payload and sets IsSuccess,
// failure stores a display-ready message and sets IsError.
package store

import (
	"context"
	"sync"
	"time"

	"tradejournal/internal/backend"
	"tradejournal/internal/logger"
	"tradejournal/internal/models"
	"tradejournal/internal/stats"
)

// API is the subset of the backend client the store dispatches to.
type API interface {
	Login(ctx context.Context, req backend.LoginRequest) (*backend.AuthResponse, error)
	Register(ctx context.Context, req backend.RegisterRequest) (*backend.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req backend.UpdateProfileRequest) (*models.User, error)
	Logout(ctx context.Context) error

	ListTrades(ctx context.Context) ([]models.Trade, error)
	TradeStats(ctx context.Context) (*stats.Summary, error)
	CreateTrade(ctx context.Context, trade models.Trade) (*models.Trade, error)
	UpdateTrade(ctx context.Context, id string, trade models.Trade) (*models.Trade, error)
	DeleteTrade(ctx context.Context, id string) error

	MySubscription(ctx context.Context) (*models.Subscription, error)

	ListEvents(ctx context.Context) ([]models.CalendarEvent, error)
	CreateEvent(ctx context.Context, ev models.CalendarEvent) (*models.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id string, ev models.CalendarEvent) (*models.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
	ToggleEventCompletion(ctx context.Context, id string) (*models.CalendarEvent, error)
}

type Status struct {
	IsLoading bool   `json:"isLoading"`
	IsSuccess bool   `json:"isSuccess"`
	IsError   bool   `json:"isError"`
	Message   string `json:"message"`
}

func (s *Status) begin() {
	s.IsLoading = true
	s.IsSuccess = false
	s.IsError = false
	s.Message = ""
}

func (s *Status) succeed() {
	s.IsLoading = false
	s.IsSuccess = true
	s.IsError = false
	s.Message = ""
}

func (s *Status) fail(err error) {
	s.IsLoading = false
	s.IsSuccess = false
	s.IsError = true
	s.Message = backend.Message(err)
}

type AuthState struct {
	User  *models.User `json:"user"`
	Token string       `json:"-"`
	Status
}

type TradesState struct {
	Trades []models.Trade `json:"trades"`
	Stats  *stats.Summary `json:"stats"`
	Status
}

type SubscriptionState struct {
	Subscription *models.Subscription `json:"subscription"`
	Status
}

type CalendarState struct {
	Events []models.CalendarEvent `json:"events"`
	Status
}

type Store struct {
	api API
	now func() time.Time

	mu           sync.RWMutex
	auth         AuthState
	trades       TradesState
	subscription SubscriptionState
	calendar     CalendarState
}

func New(api API) *Store {
	return &Store{api: api, now: time.Now}
}

func (s *Store) Auth() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.auth
	if s.auth.User != nil {
		u := *s.auth.User
		out.User = &u
	}
	return out
}

func (s *Store) Trades() TradesState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.trades
	out.Trades = append([]models.Trade(nil), s.trades.Trades...)
	if s.trades.Stats != nil {
		st := *s.trades.Stats
		out.Stats = &st
	}
	return out
}

func (s *Store) SubscriptionState() SubscriptionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.subscription
	if s.subscription.Subscription != nil {
		sub := *s.subscription.Subscription
		out.Subscription = &sub
	}
	return out
}

func (s *Store) Calendar() CalendarState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.calendar
	out.Events = append([]models.CalendarEvent(nil), s.calendar.Events...)
	return out
}

// Subscription returns the current subscription or the free default.
func (s *Store) Subscription() models.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.subscription.Subscription != nil {
		return *s.subscription.Subscription
	}
	if s.auth.User != nil && s.auth.User.Subscription != nil {
		return *s.auth.User.Subscription
	}
	return models.FreeSubscription()
}

// Plan is the effective plan used for feature gating.
func (s *Store) Plan() models.Plan {
	sub := s.Subscription()
	return sub.EffectivePlan(s.now())
}

// SetSubscription writes a confirmed subscription change back into state.
func (s *Store) SetSubscription(sub models.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscription.Subscription = &sub
	s.subscription.succeed()
	if s.auth.User != nil {
		u := *s.auth.User
		u.Subscription = &sub
		s.auth.User = &u
	}
	logger.Info("subscription updated", "plan", sub.Plan)
}

// Reset drops every slice back to its zero state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = AuthState{}
	s.trades = TradesState{}
	s.subscription = SubscriptionState{}
	s.calendar = CalendarState{}
}
