package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"tradejournal/internal/backend"
	"tradejournal/internal/logger"
	"tradejournal/internal/metrics"
	"tradejournal/internal/models"
	"tradejournal/internal/txstore"
)

type statusAPI interface {
	TransactionStatus(ctx context.Context, orderID string) (*models.Transaction, error)
}

// PendingView backs the pending payment page.
type PendingView struct {
	OrderID     string                   `json:"orderId"`
	Plan        models.Plan              `json:"plan,omitempty"`
	Token       string                   `json:"token,omitempty"`
	Status      models.TransactionStatus `json:"status"`
	CheckedAt   time.Time                `json:"checkedAt"`
	Message     string                   `json:"message,omitempty"`
	Watching    bool                     `json:"watching"`
	ContinueURL string                   `json:"continueUrl,omitempty"`
}

// PendingWatcher re-checks one pending transaction on a slow, unbounded
// schedule until it resolves or the page goes away.
type PendingWatcher struct {
	api        statusAPI
	txs        txstore.Store
	interval   time.Duration
	newTicker  TickerFunc
	onResolved func(ctx context.Context, tx models.Transaction)

	mu     sync.Mutex
	view   *PendingView
	poller *Poller
}

func newPendingWatcher(api statusAPI, txs txstore.Store, interval time.Duration, newTicker TickerFunc, onResolved func(context.Context, models.Transaction)) *PendingWatcher {
	return &PendingWatcher{
		api:        api,
		txs:        txs,
		interval:   interval,
		newTicker:  newTicker,
		onResolved: onResolved,
	}
}

// Watch checks orderID once and keeps polling while it stays pending. An
// empty orderID falls back to the stored lastTransaction.
func (w *PendingWatcher) Watch(ctx context.Context, orderID string) (PendingView, error) {
	rec, err := w.txs.Load(ctx)
	if err != nil && !errors.Is(err, txstore.ErrNotFound) {
		logger.WithError(err).Warn("failed to load last transaction for pending page")
	}
	if orderID == "" {
		if rec == nil {
			return PendingView{}, txstore.ErrNotFound
		}
		orderID = rec.OrderID
	}

	w.mu.Lock()
	if w.view != nil && w.view.OrderID == orderID && w.poller != nil && w.poller.Running() {
		defer w.mu.Unlock()
		out := *w.view
		out.Watching = true
		return out, nil
	}
	if w.poller != nil {
		w.poller.Stop()
	}
	view := &PendingView{OrderID: orderID, Status: models.StatusPendingPayment}
	if rec != nil && rec.OrderID == orderID {
		view.Plan = rec.Plan
		view.Token = rec.Token
	}
	w.view = view
	p := NewPoller("pending-payment", w.interval, 0, w.newTicker,
		func(ctx context.Context) (bool, error) { return w.check(ctx, view) },
		nil)
	w.poller = p
	w.mu.Unlock()

	finished, _ := p.CheckNow(ctx)
	if !finished {
		p.Start(context.WithoutCancel(ctx))
		metrics.PendingWatchers.Inc()
		go func() {
			p.Wait()
			metrics.PendingWatchers.Dec()
		}()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	out := *view
	out.Watching = !finished
	return out, nil
}

func (w *PendingWatcher) check(ctx context.Context, view *PendingView) (bool, error) {
	tx, err := w.api.TransactionStatus(ctx, view.OrderID)
	if err != nil {
		if backend.IsUnauthorized(err) {
			w.mu.Lock()
			view.Message = SessionExpiredMessage
			w.mu.Unlock()
			return true, nil
		}
		metrics.RecordStatusPoll("error")
		return false, err
	}
	metrics.RecordStatusPoll(strings.ToLower(string(tx.Status)))

	w.mu.Lock()
	if w.view != view {
		w.mu.Unlock()
		return true, nil
	}
	view.Status = tx.Status
	view.CheckedAt = time.Now()
	if tx.Plan.Valid() {
		view.Plan = tx.Plan
	}
	if view.Token == "" {
		view.Token = tx.SnapToken
	}
	if !tx.Status.IsTerminal() && view.Token != "" {
		view.ContinueURL = "/checkout?orderId=" + view.OrderID
	}
	switch {
	case tx.Status == models.StatusPaid:
		view.Message = "Payment received. Your plan is now active."
		view.ContinueURL = ""
	case tx.Status.IsFailure():
		view.Message = "Payment " + strings.ToLower(string(tx.Status)) + ". Please choose a plan again."
		view.ContinueURL = ""
	}
	resolved := tx.Status.IsTerminal()
	w.mu.Unlock()

	if resolved {
		w.markResolved(ctx, *tx)
		if w.onResolved != nil {
			w.onResolved(ctx, *tx)
		}
	}
	return resolved, nil
}

func (w *PendingWatcher) markResolved(ctx context.Context, tx models.Transaction) {
	rec, err := w.txs.Load(ctx)
	if err != nil || rec.OrderID != tx.OrderID {
		return
	}
	rec.Status = tx.Status
	if err := w.txs.Save(ctx, *rec); err != nil {
		logger.WithError(err).Warn("failed to update last transaction", "orderId", tx.OrderID)
	}
}

func (w *PendingWatcher) View() (PendingView, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.view == nil {
		return PendingView{}, false
	}
	out := *w.view
	out.Watching = w.poller != nil && w.poller.Running()
	return out, true
}

func (w *PendingWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.poller != nil {
		w.poller.Stop()
	}
}

func (w *PendingWatcher) Wait() {
	w.mu.Lock()
	p := w.poller
	w.mu.Unlock()
	if p != nil {
		p.Wait()
	}
}
