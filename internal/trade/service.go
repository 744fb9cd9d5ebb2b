package trade

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"tradejournal/internal/featuregate"
	"tradejournal/internal/logger"
	"tradejournal/internal/models"
	"tradejournal/internal/stats"
)

var ErrInvalidDate = errors.New("invalid trade date, expected YYYY-MM-DD")

const recentTradesLimit = 5

type Service interface {
	List(ctx context.Context) ([]models.Trade, error)
	Create(ctx context.Context, req TradeRequest) (*models.Trade, error)
	Update(ctx context.Context, id string, req TradeRequest) (*models.Trade, error)
	Delete(ctx context.Context, id string) error
	Performance(ctx context.Context) (*PerformanceView, error)
	Analytics(ctx context.Context) (*AnalyticsView, error)
	Dashboard(ctx context.Context) (*DashboardView, error)
	Export(ctx context.Context) (*bytes.Buffer, error)
}

type service struct {
	repo           Repository
	initialBalance float64
}

// NewService uses initialBalance when the profile carries none.
func NewService(repo Repository, initialBalance float64) Service {
	return &service{
		repo:           repo,
		initialBalance: initialBalance,
	}
}

func (s *service) balance() float64 {
	if u := s.repo.Auth().User; u != nil && u.InitialBalance > 0 {
		return u.InitialBalance
	}
	return s.initialBalance
}

func (s *service) List(ctx context.Context) ([]models.Trade, error) {
	return s.repo.FetchTrades(ctx)
}

func (s *service) Create(ctx context.Context, req TradeRequest) (*models.Trade, error) {
	t, err := req.toTrade()
	if err != nil {
		return nil, err
	}
	return s.repo.CreateTrade(ctx, t)
}

func (s *service) Update(ctx context.Context, id string, req TradeRequest) (*models.Trade, error) {
	t, err := req.toTrade()
	if err != nil {
		return nil, err
	}
	t.ID = id
	return s.repo.UpdateTrade(ctx, id, t)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteTrade(ctx, id)
}

// lockSummary blanks the figures the plan cannot see and records a prompt
// for each.
func lockSummary(plan models.Plan, sum *stats.Summary, locked Locked) {
	if ok, p := featuregate.Check(plan, featuregate.ProfitFactor); !ok {
		sum.ProfitFactor = 0
		locked[featuregate.ProfitFactor] = p
	}
	if ok, p := featuregate.Check(plan, featuregate.DrawdownAnalysis); !ok {
		sum.MaxDrawdown = 0
		sum.MaxDrawdownPercent = 0
		locked[featuregate.DrawdownAnalysis] = p
	}
	if ok, p := featuregate.Check(plan, featuregate.StreakAnalysis); !ok {
		sum.MaxWinStreak = 0
		sum.MaxLossStreak = 0
		sum.CurrentStreak = 0
		sum.CurrentStreakType = stats.StreakNone
		locked[featuregate.StreakAnalysis] = p
	}
}

func (s *service) Performance(ctx context.Context) (*PerformanceView, error) {
	trades, err := s.repo.FetchTrades(ctx)
	if err != nil {
		return nil, err
	}

	plan := s.repo.Plan()
	view := &PerformanceView{
		Plan:    plan,
		Summary: s.repo.Performance(s.balance()),
		Locked:  Locked{},
	}
	lockSummary(plan, &view.Summary, view.Locked)

	if ok, p := featuregate.Check(plan, featuregate.MonthlyPerformance); ok {
		view.Monthly = stats.Monthly(trades)
	} else {
		view.Locked[featuregate.MonthlyPerformance] = p
	}
	if ok, p := featuregate.Check(plan, featuregate.InstrumentPerformance); ok {
		view.Instruments = stats.ByInstrument(trades)
	} else {
		view.Locked[featuregate.InstrumentPerformance] = p
	}
	return view, nil
}

func (s *service) Analytics(ctx context.Context) (*AnalyticsView, error) {
	trades, err := s.repo.FetchTrades(ctx)
	if err != nil {
		return nil, err
	}

	plan := s.repo.Plan()
	view := &AnalyticsView{
		Plan:         plan,
		Distribution: stats.Distribute(trades),
	}
	if ok, p := featuregate.Check(plan, featuregate.AdvancedAnalytics); !ok {
		view.Locked = Locked{featuregate.AdvancedAnalytics: p}
		return view, nil
	}
	view.Monthly = stats.Monthly(trades)
	view.Instruments = stats.ByInstrument(trades)
	view.Strategies = stats.ByStrategy(trades)
	return view, nil
}

func (s *service) Dashboard(ctx context.Context) (*DashboardView, error) {
	trades, err := s.repo.FetchTrades(ctx)
	if err != nil {
		return nil, err
	}

	plan := s.repo.Plan()
	view := &DashboardView{
		User:    s.repo.Auth().User,
		Plan:    plan,
		Summary: s.repo.Performance(s.balance()),
		Gates:   featuregate.Gates(plan),
		Locked:  Locked{},
	}
	lockSummary(plan, &view.Summary, view.Locked)

	recent := stats.Chronological(trades)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if len(recent) > recentTradesLimit {
		recent = recent[:recentTradesLimit]
	}
	view.RecentTrades = recent
	return view, nil
}

func (s *service) Export(ctx context.Context) (*bytes.Buffer, error) {
	if err := featuregate.Require(s.repo.Plan(), featuregate.TradeExport); err != nil {
		return nil, err
	}

	trades, err := s.repo.FetchTrades(ctx)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := WriteWorkbook(buf, trades, s.repo.Performance(s.balance())); err != nil {
		return nil, fmt.Errorf("failed to build export: %w", err)
	}
	logger.Info("trades exported", "count", len(trades), "bytes", buf.Len())
	return buf, nil
}
