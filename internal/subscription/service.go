package subscription

import (
	"context"
	"errors"
	"time"

	"tradejournal/internal/checkout"
	"tradejournal/internal/featuregate"
	"tradejournal/internal/logger"
	"tradejournal/internal/models"
	"tradejournal/internal/txstore"
)

type Repository interface {
	FetchSubscription(ctx context.Context) (*models.Subscription, error)
	Subscription() models.Subscription
}

type FeatureView struct {
	Key       featuregate.Feature `json:"key"`
	HasAccess bool                `json:"hasAccess"`
	featuregate.Info
	Upgrade *featuregate.Prompt `json:"upgrade,omitempty"`
}

type UpgradeView struct {
	CurrentPlan models.Plan         `json:"currentPlan"`
	Plans       []checkout.PlanInfo `json:"plans"`
	Features    []FeatureView       `json:"features"`
	Pending     *txstore.Record     `json:"pendingTransaction,omitempty"`
}

type DetailsView struct {
	Subscription    models.Subscription   `json:"subscription"`
	EffectivePlan   models.Plan           `json:"effectivePlan"`
	Expired         bool                  `json:"expired"`
	DaysLeft        *int                  `json:"daysLeft"`
	Features        []featuregate.Feature `json:"features"`
	LastTransaction *txstore.Record       `json:"lastTransaction,omitempty"`
}

type Service interface {
	Upgrade(ctx context.Context) (*UpgradeView, error)
	Feature(ctx context.Context, key string) (*FeatureView, error)
	Details(ctx context.Context) (*DetailsView, error)
}

type service struct {
	repo Repository
	txs  txstore.Store
	now  func() time.Time
}

func NewService(repo Repository, txs txstore.Store) Service {
	return &service{
		repo: repo,
		txs:  txs,
		now:  time.Now,
	}
}

// current refreshes from the backend and falls back to the cached plan.
func (s *service) current(ctx context.Context) models.Subscription {
	if _, err := s.repo.FetchSubscription(ctx); err != nil {
		logger.WithError(err).Warn("subscription refresh failed, using cached plan")
	}
	return s.repo.Subscription()
}

func (s *service) lastTransaction(ctx context.Context) *txstore.Record {
	rec, err := s.txs.Load(ctx)
	if err != nil {
		if !errors.Is(err, txstore.ErrNotFound) {
			logger.WithError(err).Warn("failed to load last transaction")
		}
		return nil
	}
	return rec
}

func featureView(plan models.Plan, f featuregate.Feature) FeatureView {
	info, _ := featuregate.Describe(f)
	ok, prompt := featuregate.Check(plan, f)
	return FeatureView{Key: f, HasAccess: ok, Info: info, Upgrade: prompt}
}

func (s *service) Upgrade(ctx context.Context) (*UpgradeView, error) {
	sub := s.current(ctx)
	plan := sub.EffectivePlan(s.now())

	view := &UpgradeView{
		CurrentPlan: plan,
		Plans:       checkout.Plans(),
	}
	for _, f := range featuregate.All {
		info, _ := featuregate.Describe(f)
		view.Features = append(view.Features, FeatureView{
			Key:       f,
			HasAccess: featuregate.HasAccess(plan, f),
			Info:      info,
		})
	}
	if rec := s.lastTransaction(ctx); rec != nil && !rec.Status.IsTerminal() {
		view.Pending = rec
	}
	return view, nil
}

func (s *service) Feature(ctx context.Context, key string) (*FeatureView, error) {
	f, err := featuregate.Parse(key)
	if err != nil {
		return nil, err
	}
	sub := s.repo.Subscription()
	v := featureView(sub.EffectivePlan(s.now()), f)
	return &v, nil
}

func (s *service) Details(ctx context.Context) (*DetailsView, error) {
	sub, err := s.repo.FetchSubscription(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	plan := sub.EffectivePlan(now)
	return &DetailsView{
		Subscription:    *sub,
		EffectivePlan:   plan,
		Expired:         sub.Expired(now),
		DaysLeft:        sub.DaysLeft(now),
		Features:        featuregate.PlanFeatures(plan),
		LastTransaction: s.lastTransaction(ctx),
	}, nil
}
