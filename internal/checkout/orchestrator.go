// Package checkout runs plan checkout: pricing, the downgrade confirmation
// step, the embedded Snap widget session, and reconciliation of payment
// status against the backend.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"tradejournal/internal/backend"
	"tradejournal/internal/featuregate"
	"tradejournal/internal/logger"
	"tradejournal/internal/metrics"
	"tradejournal/internal/models"
	"tradejournal/internal/tracing"
	"tradejournal/internal/txstore"
)

var (
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrCheckoutInProgress   = errors.New("checkout already in progress")
	ErrTransactionTerminal  = errors.New("transaction already finished")
	ErrDisposed             = errors.New("checkout orchestrator disposed")
)

const (
	AlreadyFreeMessage     = "You are already on the Free plan. There is nothing to downgrade."
	DowngradedMessage      = "Your plan has been changed to Free."
	StillProcessingMessage = "Your payment is still being processed. Please check your dashboard later."
	SessionExpiredMessage  = "Your session has expired. Please log in again."
	PaymentFailedMessage   = "Payment failed"
	InvalidCouponMessage   = "Invalid coupon code"
	ConfirmCancelMessage   = "Are you sure you want to cancel this payment?"
)

const (
	RouteLogin    = "/"
	RouteUpgrade  = "/upgrade"
	RouteSuccess  = "/checkout/success"
	RoutePending  = "/checkout/pending"
	RouteError    = "/checkout/error"
	RouteSettings = "/subscription/details"
)

// Backend is the part of the REST client checkout needs.
type Backend interface {
	CreateTransaction(ctx context.Context, req backend.CreateTransactionRequest) (*models.CreatedTransaction, error)
	TransactionStatus(ctx context.Context, orderID string) (*models.Transaction, error)
	CancelTransaction(ctx context.Context, orderID string) error
	Downgrade(ctx context.Context) (*models.Subscription, error)
	MySubscription(ctx context.Context) (*models.Subscription, error)
}

// SubscriptionSink receives confirmed subscription changes.
type SubscriptionSink interface {
	Subscription() models.Subscription
	SetSubscription(sub models.Subscription)
}

type Navigation struct {
	Path  string
	Delay time.Duration
}

func (n Navigation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Path    string `json:"path"`
		DelayMs int64  `json:"delayMs"`
	}{n.Path, n.Delay.Milliseconds()})
}

func navigate(path string, query url.Values) *Navigation {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return &Navigation{Path: path}
}

type DowngradePreview struct {
	From models.Plan          `json:"from"`
	Lost []featuregate.Feature `json:"lost"`
	Kept []featuregate.Feature `json:"kept"`
}

type Snapshot struct {
	State           State                    `json:"state"`
	Plan            models.Plan              `json:"plan,omitempty"`
	Quote           *Quote                   `json:"quote,omitempty"`
	OrderID         string                   `json:"orderId,omitempty"`
	InvoiceNumber   string                   `json:"invoiceNumber,omitempty"`
	Status          models.TransactionStatus `json:"status,omitempty"`
	PaymentMethod   string                   `json:"paymentMethod,omitempty"`
	Message         string                   `json:"message,omitempty"`
	Attempts        int                      `json:"attempts"`
	MaxAttempts     int                      `json:"maxAttempts"`
	Widget          *Session                 `json:"widget,omitempty"`
	Downgrade       *DowngradePreview        `json:"downgrade,omitempty"`
	ConfirmCancel   bool                     `json:"confirmCancel"`
	Redirect        *Navigation              `json:"redirect,omitempty"`
	PendingPayment  *PendingView             `json:"pendingPayment,omitempty"`
	AvailableEvents []Event                  `json:"availableEvents"`
}

type Options struct {
	PollInterval        time.Duration
	MaxAttempts         int
	PendingInterval     time.Duration
	TokenTTL            time.Duration
	SessionExpiredDelay time.Duration
	NewTicker           TickerFunc
	Now                 func() time.Time
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = 3 * time.Second
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 60
	}
	if o.PendingInterval <= 0 {
		o.PendingInterval = 30 * time.Second
	}
	if o.TokenTTL <= 0 {
		o.TokenTTL = 24 * time.Hour
	}
	if o.SessionExpiredDelay <= 0 {
		o.SessionExpiredDelay = 3 * time.Second
	}
	if o.NewTicker == nil {
		o.NewTicker = NewRealTicker
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Orchestrator owns one user's checkout: its state, widget session and
// pollers. All methods are safe for concurrent use.
type Orchestrator struct {
	api    Backend
	subs   SubscriptionSink
	txs    txstore.Store
	widget Widget
	opts   Options

	mu            sync.Mutex
	run           uint64
	state         State
	plan          models.Plan
	draft         *Quote
	quote         *Quote
	orderID       string
	token         string
	invoiceNumber string
	status        models.TransactionStatus
	paymentMethod string
	message       string
	downgrade     *DowngradePreview
	confirmCancel bool
	canceling     bool
	redirect      *Navigation
	poller        *Poller
	pending       *PendingWatcher
	disposed      bool
}

func NewOrchestrator(api Backend, subs SubscriptionSink, txs txstore.Store, widget Widget, opts Options) *Orchestrator {
	o := &Orchestrator{
		api:    api,
		subs:   subs,
		txs:    txs,
		widget: widget,
		opts:   opts.withDefaults(),
		state:  StateIdle,
	}
	o.pending = newPendingWatcher(api, txs, o.opts.PendingInterval, o.opts.NewTicker, o.onPendingResolved)
	return o
}

// apply runs one machine transition. Callers hold o.mu.
func (o *Orchestrator) apply(ev Event) error {
	next, err := Transition(o.state, ev)
	if err != nil {
		logger.Warn("rejected checkout event", "state", o.state, "event", ev)
		return err
	}
	if next != o.state {
		logger.Info("checkout transition", "from", o.state, "event", ev, "to", next, "orderId", o.orderID)
	}
	o.state = next
	return nil
}

// resetLocked clears the previous run. Callers hold o.mu.
func (o *Orchestrator) resetLocked() {
	o.stopPollingLocked()
	o.pending.Stop()
	o.widget.Unmount()
	o.run++
	_ = o.apply(EventReset)
	o.plan = ""
	o.quote = nil
	o.orderID = ""
	o.token = ""
	o.invoiceNumber = ""
	o.status = ""
	o.paymentMethod = ""
	o.message = ""
	o.downgrade = nil
	o.confirmCancel = false
	o.canceling = false
	o.redirect = nil
}

func (o *Orchestrator) stopPollingLocked() {
	if o.poller != nil {
		o.poller.Stop()
	}
}

func (o *Orchestrator) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:           o.state,
		Plan:            o.plan,
		OrderID:         o.orderID,
		InvoiceNumber:   o.invoiceNumber,
		Status:          o.status,
		PaymentMethod:   o.paymentMethod,
		Message:         o.message,
		MaxAttempts:     o.opts.MaxAttempts,
		ConfirmCancel:   o.confirmCancel,
		AvailableEvents: EventsFrom(o.state),
	}
	if o.quote != nil {
		q := *o.quote
		snap.Quote = &q
	}
	if o.poller != nil {
		snap.Attempts = o.poller.Attempts()
	}
	if s, ok := o.widget.Current(); ok && o.state == StateAwaitingPayment {
		snap.Widget = &s
	}
	if o.downgrade != nil {
		d := *o.downgrade
		snap.Downgrade = &d
	}
	if o.redirect != nil {
		r := *o.redirect
		snap.Redirect = &r
	}
	if view, ok := o.pending.View(); ok {
		snap.PendingPayment = &view
	}
	return snap
}

func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

func (o *Orchestrator) currentPlan() models.Plan {
	sub := o.subs.Subscription()
	return sub.EffectivePlan(o.opts.Now())
}

// ApplyCoupon prices plan with code. An invalid code leaves the draft
// quote, including any earlier discount, untouched.
func (o *Orchestrator) ApplyCoupon(plan models.Plan, code string) (Quote, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.draft == nil || o.draft.Plan != plan {
		q, err := NewQuote(plan)
		if err != nil {
			return Quote{}, err
		}
		o.draft = &q
	}
	q, err := o.draft.ApplyCoupon(code)
	if err != nil {
		return *o.draft, err
	}
	o.draft = &q
	return q, nil
}

// Start begins checkout for plan. A free plan goes to the downgrade
// confirmation step; a paid plan creates a transaction and mounts the widget.
func (o *Orchestrator) Start(ctx context.Context, plan models.Plan, coupon string) (Snapshot, error) {
	ctx, span := tracing.StartSpan(ctx, "checkout.Start")
	defer span.End()
	span.SetAttributes(attribute.String("plan", string(plan)))

	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return Snapshot{}, ErrDisposed
	}
	if !plan.Valid() {
		o.mu.Unlock()
		return Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownPlan, plan)
	}

	if o.state == StateAwaitingPayment && o.plan == plan {
		if _, mounted := o.widget.Current(); mounted {
			defer o.mu.Unlock()
			return o.snapshotLocked(), nil
		}
	}
	if o.state.Active() {
		defer o.mu.Unlock()
		return o.snapshotLocked(), ErrCheckoutInProgress
	}

	if plan == models.PlanFree {
		defer o.mu.Unlock()
		return o.startDowngradeLocked()
	}

	quote, err := o.quoteForLocked(plan, coupon)
	if err != nil {
		o.message = InvalidCouponMessage
		defer o.mu.Unlock()
		return o.snapshotLocked(), err
	}

	o.resetLocked()
	o.plan = plan
	o.quote = &quote
	_ = o.apply(EventStartPaid)
	run := o.run
	o.mu.Unlock()

	created, err := o.api.CreateTransaction(ctx, backend.CreateTransactionRequest{
		Plan:       plan,
		CouponCode: quote.CouponCode,
		Discount:   quote.Discount.InexactFloat64(),
		Total:      quote.Total().InexactFloat64(),
	})

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.run != run {
		return o.snapshotLocked(), nil
	}
	if err != nil {
		span.RecordError(err)
		logger.WithError(err).Error("create transaction failed", "plan", plan)
		if backend.IsUnauthorized(err) {
			o.expireSessionLocked()
			return o.snapshotLocked(), err
		}
		_ = o.apply(EventCreateFailed)
		o.message = backend.Message(err)
		o.redirect = navigate(RouteError, url.Values{"message": {o.message}})
		metrics.RecordCheckoutOutcome(string(plan), "create_failed")
		return o.snapshotLocked(), err
	}

	o.orderID = created.OrderID
	o.token = created.Token
	o.invoiceNumber = created.InvoiceNumber
	o.status = models.StatusPendingPayment
	span.SetAttributes(attribute.String("order_id", created.OrderID))

	o.persistLocked(ctx, o.opts.Now())
	o.widget.Mount(created.Token, created.OrderID)
	_ = o.apply(EventCreated)
	o.redirect = nil
	logger.Info("transaction created", "orderId", created.OrderID, "plan", plan, "total", quote.Total().String())
	return o.snapshotLocked(), nil
}

func (o *Orchestrator) quoteForLocked(plan models.Plan, coupon string) (Quote, error) {
	if strings.TrimSpace(coupon) == "" {
		if o.draft != nil && o.draft.Plan == plan {
			return *o.draft, nil
		}
		return NewQuote(plan)
	}
	q, err := NewQuote(plan)
	if err != nil {
		return Quote{}, err
	}
	return q.ApplyCoupon(coupon)
}

func (o *Orchestrator) startDowngradeLocked() (Snapshot, error) {
	current := o.currentPlan()
	if current == models.PlanFree {
		o.message = AlreadyFreeMessage
		return o.snapshotLocked(), nil
	}
	o.resetLocked()
	lost, kept := featuregate.Diff(current, models.PlanFree)
	o.plan = models.PlanFree
	o.downgrade = &DowngradePreview{From: current, Lost: lost, Kept: kept}
	_ = o.apply(EventStartFree)
	return o.snapshotLocked(), nil
}

// ConfirmDowngrade completes or dismisses the downgrade step.
func (o *Orchestrator) ConfirmDowngrade(ctx context.Context, confirmed bool) (Snapshot, error) {
	ctx, span := tracing.StartSpan(ctx, "checkout.ConfirmDowngrade")
	defer span.End()

	o.mu.Lock()
	if o.state != StateConfirmingDowngrade {
		defer o.mu.Unlock()
		return o.snapshotLocked(), fmt.Errorf("%w: downgrade confirmation in %s", ErrInvalidTransition, o.state)
	}
	if !confirmed {
		defer o.mu.Unlock()
		_ = o.apply(EventDowngradeDismissed)
		o.downgrade = nil
		o.plan = ""
		return o.snapshotLocked(), nil
	}
	if o.currentPlan() == models.PlanFree {
		defer o.mu.Unlock()
		_ = o.apply(EventDowngradeDismissed)
		o.message = AlreadyFreeMessage
		return o.snapshotLocked(), nil
	}
	run := o.run
	o.mu.Unlock()

	sub, err := o.api.Downgrade(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.run != run {
		return o.snapshotLocked(), nil
	}
	if err != nil {
		span.RecordError(err)
		logger.WithError(err).Error("downgrade failed")
		if backend.IsUnauthorized(err) {
			o.message = SessionExpiredMessage
			o.redirect = &Navigation{Path: RouteLogin, Delay: o.opts.SessionExpiredDelay}
			return o.snapshotLocked(), err
		}
		o.message = backend.Message(err)
		return o.snapshotLocked(), err
	}

	if sub == nil || sub.Plan != models.PlanFree {
		free := models.FreeSubscription()
		sub = &free
	}
	o.subs.SetSubscription(*sub)
	_ = o.apply(EventDowngradeConfirmed)
	o.message = DowngradedMessage
	o.redirect = navigate(RouteSettings, nil)
	metrics.RecordCheckoutOutcome(string(models.PlanFree), "downgraded")
	return o.snapshotLocked(), nil
}

// HandleWidgetEvent feeds a Snap callback into the machine.
func (o *Orchestrator) HandleWidgetEvent(ctx context.Context, ev WidgetEvent) (Snapshot, error) {
	ctx, span := tracing.StartSpan(ctx, "checkout.HandleWidgetEvent")
	defer span.End()
	span.SetAttributes(attribute.String("widget_event", string(ev.Type)))

	event, ok := ev.Type.event()
	if !ok {
		return o.Snapshot(), fmt.Errorf("%w: widget event %q", ErrInvalidTransition, ev.Type)
	}
	metrics.RecordWidgetEvent(string(ev.Type))

	o.mu.Lock()
	if ev.OrderID != "" && o.orderID != "" && ev.OrderID != o.orderID {
		logger.Warn("widget event for a different order", "eventOrderId", ev.OrderID, "orderId", o.orderID)
	}
	if o.canceling {
		defer o.mu.Unlock()
		return o.snapshotLocked(), fmt.Errorf("%w: widget event while canceling", ErrInvalidTransition)
	}
	if err := o.apply(event); err != nil {
		defer o.mu.Unlock()
		return o.snapshotLocked(), err
	}
	o.widget.Unmount()
	o.confirmCancel = false

	switch event {
	case EventWidgetSuccess:
		o.status = models.StatusPaid
		o.paymentMethod = ev.PaymentType
		o.persistLocked(ctx, time.Time{})
		o.redirect = navigate(RouteSuccess, url.Values{
			"orderId":       {o.orderID},
			"status":        {string(models.StatusPaid)},
			"paymentMethod": {ev.PaymentType},
		})
		metrics.RecordCheckoutOutcome(string(o.plan), "success")
		plan, orderID := o.plan, o.orderID
		o.mu.Unlock()
		o.refreshSubscription(ctx, plan, orderID, ev.PaymentType)
		return o.Snapshot(), nil

	case EventWidgetPending, EventWidgetClose:
		o.redirect = navigate(RouteSuccess, url.Values{
			"orderId": {o.orderID},
			"status":  {"pending"},
			"token":   {o.token},
		})
		o.startPollingLocked(ctx)

	case EventWidgetError:
		o.message = ev.StatusMessage
		if o.message == "" {
			o.message = PaymentFailedMessage
		}
		if ev.TransactionStatus != "" {
			o.status = models.NormalizeStatus(ev.TransactionStatus)
		}
		o.persistLocked(ctx, time.Time{})
		o.redirect = navigate(RouteError, url.Values{"message": {o.message}})
		metrics.RecordCheckoutOutcome(string(o.plan), "gateway_error")
	}

	defer o.mu.Unlock()
	return o.snapshotLocked(), nil
}

// startPollingLocked begins the bounded status loop for the current run.
func (o *Orchestrator) startPollingLocked(ctx context.Context) {
	o.stopPollingLocked()
	run := o.run
	o.poller = NewPoller(
		"checkout-status",
		o.opts.PollInterval,
		o.opts.MaxAttempts,
		o.opts.NewTicker,
		func(ctx context.Context) (bool, error) { return o.checkStatus(ctx, run) },
		func() { o.pollExhausted(run) },
	)
	o.poller.Start(context.WithoutCancel(ctx))
}

func (o *Orchestrator) checkStatus(ctx context.Context, run uint64) (bool, error) {
	o.mu.Lock()
	if o.run != run || (o.state != StatePendingVerification && o.state != StateStillProcessing) {
		o.mu.Unlock()
		return true, nil
	}
	orderID := o.orderID
	o.mu.Unlock()

	tx, err := o.api.TransactionStatus(ctx, orderID)
	if err != nil {
		if backend.IsUnauthorized(err) {
			metrics.RecordStatusPoll("unauthorized")
			o.mu.Lock()
			if o.run == run {
				o.expireSessionLocked()
			}
			o.mu.Unlock()
			return true, nil
		}
		metrics.RecordStatusPoll("error")
		return false, err
	}
	metrics.RecordStatusPoll(strings.ToLower(string(tx.Status)))

	o.mu.Lock()
	if o.run != run {
		o.mu.Unlock()
		return true, nil
	}
	paid := o.applyStatusLocked(ctx, tx)
	finished := o.state.Terminal()
	plan, method := o.plan, o.paymentMethod
	o.mu.Unlock()

	if paid {
		o.refreshSubscription(ctx, plan, orderID, method)
	}
	return finished, nil
}

// applyStatusLocked moves the machine on a fetched status and reports
// whether the payment has just been confirmed.
func (o *Orchestrator) applyStatusLocked(ctx context.Context, tx *models.Transaction) bool {
	if o.canceling {
		return false
	}
	ev := StatusEvent(tx.Status)
	if err := o.apply(ev); err != nil {
		return false
	}
	o.status = tx.Status
	if tx.PaymentMethod != "" {
		o.paymentMethod = tx.PaymentMethod
	}
	if tx.Plan.Valid() && o.plan == "" {
		o.plan = tx.Plan
	}

	switch ev {
	case EventStatusPaid:
		o.stopPollingLocked()
		o.widget.Unmount()
		o.message = ""
		o.persistLocked(ctx, time.Time{})
		o.redirect = navigate(RouteSuccess, url.Values{
			"orderId":       {o.orderID},
			"status":        {string(models.StatusPaid)},
			"paymentMethod": {o.paymentMethod},
		})
		metrics.RecordCheckoutOutcome(string(o.plan), "success")
		return true
	case EventStatusFailed:
		o.stopPollingLocked()
		o.widget.Unmount()
		o.message = fmt.Sprintf("Payment %s. Please choose a plan again.", strings.ToLower(string(tx.Status)))
		o.persistLocked(ctx, time.Time{})
		o.redirect = navigate(RouteUpgrade, nil)
		metrics.RecordCheckoutOutcome(string(o.plan), strings.ToLower(string(tx.Status)))
	}
	return false
}

func (o *Orchestrator) pollExhausted(run uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.run != run {
		return
	}
	if err := o.apply(EventPollExhausted); err != nil {
		return
	}
	o.message = StillProcessingMessage
	metrics.RecordCheckoutOutcome(string(o.plan), "still_processing")
}

func (o *Orchestrator) expireSessionLocked() {
	o.stopPollingLocked()
	o.widget.Unmount()
	_ = o.apply(EventSessionExpired)
	o.message = SessionExpiredMessage
	o.redirect = &Navigation{Path: RouteLogin, Delay: o.opts.SessionExpiredDelay}
	metrics.RecordCheckoutOutcome(string(o.plan), "session_expired")
}

// persistLocked writes the lastTransaction record. A zero createdAt keeps
// the stored timestamp so token freshness is measured from issue time.
func (o *Orchestrator) persistLocked(ctx context.Context, createdAt time.Time) {
	if o.orderID == "" {
		return
	}
	rec := txstore.Record{
		OrderID:       o.orderID,
		Plan:          o.plan,
		Token:         o.token,
		InvoiceNumber: o.invoiceNumber,
		Timestamp:     createdAt,
		Status:        o.status,
	}
	if createdAt.IsZero() {
		rec.Timestamp = o.opts.Now()
		if prev, err := o.txs.Load(ctx); err == nil && prev.OrderID == o.orderID {
			rec.Timestamp = prev.Timestamp
		}
	}
	if err := o.txs.Save(ctx, rec); err != nil {
		logger.WithError(err).Warn("failed to persist last transaction", "orderId", o.orderID)
	}
}

// refreshSubscription pulls the upgraded subscription. When the backend
// cannot be reached the paid plan is recorded locally.
func (o *Orchestrator) refreshSubscription(ctx context.Context, plan models.Plan, orderID, method string) {
	sub, err := o.api.MySubscription(ctx)
	if err == nil && sub != nil && sub.Plan.IsPaid() {
		o.subs.SetSubscription(*sub)
		return
	}
	if err != nil {
		logger.WithError(err).Warn("subscription refresh failed after payment", "orderId", orderID)
	}
	if !plan.IsPaid() {
		return
	}
	now := o.opts.Now()
	o.subs.SetSubscription(models.Subscription{
		Plan:          plan,
		IsValid:       true,
		StartDate:     &now,
		PaymentMethod: method,
		TransactionID: orderID,
	})
}

// Resume restores an interrupted checkout after a reload. The backend
// status is checked first; a widget is only reopened for a transaction
// that is still pending.
func (o *Orchestrator) Resume(ctx context.Context, orderID string) (Snapshot, error) {
	ctx, span := tracing.StartSpan(ctx, "checkout.Resume")
	defer span.End()

	rec, err := o.txs.Load(ctx)
	if err != nil && !errors.Is(err, txstore.ErrNotFound) {
		logger.WithError(err).Warn("failed to load last transaction")
	}
	if rec != nil && orderID != "" && rec.OrderID != orderID {
		rec = nil
	}
	if orderID == "" {
		if rec == nil {
			return o.Snapshot(), txstore.ErrNotFound
		}
		orderID = rec.OrderID
	}
	span.SetAttributes(attribute.String("order_id", orderID))

	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return Snapshot{}, ErrDisposed
	}
	if o.orderID == orderID && o.state == StateAwaitingPayment {
		if _, mounted := o.widget.Current(); mounted {
			defer o.mu.Unlock()
			return o.snapshotLocked(), nil
		}
	}
	o.resetLocked()
	o.orderID = orderID
	if rec != nil {
		o.plan = rec.Plan
		o.invoiceNumber = rec.InvoiceNumber
		o.status = rec.Status
	}
	run := o.run
	o.mu.Unlock()

	tx, err := o.api.TransactionStatus(ctx, orderID)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.run != run {
		return o.snapshotLocked(), nil
	}

	now := o.opts.Now()
	localToken := ""
	if rec != nil && rec.Fresh(now, o.opts.TokenTTL) {
		localToken = rec.Token
	}

	if err != nil {
		span.RecordError(err)
		logger.WithError(err).Warn("status check on resume failed", "orderId", orderID)
		if backend.IsUnauthorized(err) {
			_ = o.apply(EventStatusFailed)
			o.message = SessionExpiredMessage
			o.redirect = &Navigation{Path: RouteLogin, Delay: o.opts.SessionExpiredDelay}
			return o.snapshotLocked(), err
		}
		if localToken == "" {
			_ = o.apply(EventStatusFailed)
			o.message = backend.Message(err)
			o.redirect = navigate(RouteError, url.Values{"message": {o.message}})
			return o.snapshotLocked(), err
		}
		o.reopenLocked(localToken)
		return o.snapshotLocked(), nil
	}

	if tx.Plan.Valid() {
		o.plan = tx.Plan
	}
	if tx.Status.IsTerminal() {
		paid := o.applyStatusLocked(ctx, tx)
		if paid {
			plan, method := o.plan, o.paymentMethod
			o.mu.Unlock()
			o.refreshSubscription(ctx, plan, orderID, method)
			o.mu.Lock()
			return o.snapshotLocked(), nil
		}
		return o.snapshotLocked(), ErrTransactionTerminal
	}

	token := localToken
	if token == "" {
		token = tx.SnapToken
	}
	if token == "" {
		_ = o.apply(EventStatusFailed)
		o.message = "This payment can no longer be continued. Please choose a plan again."
		o.redirect = navigate(RouteUpgrade, nil)
		return o.snapshotLocked(), nil
	}
	if token != localToken {
		o.token = token
		o.status = tx.Status
		o.persistLocked(ctx, now)
	}
	o.reopenLocked(token)
	return o.snapshotLocked(), nil
}

func (o *Orchestrator) reopenLocked(token string) {
	o.token = token
	if o.status == "" {
		o.status = models.StatusPendingPayment
	}
	o.widget.Mount(token, o.orderID)
	_ = o.apply(EventReopen)
	o.message = ""
	o.redirect = nil
}

// Cancel tears down an open payment. The first call without confirmed
// asks for confirmation. The backend cancel is best effort.
func (o *Orchestrator) Cancel(ctx context.Context, confirmed bool) (Snapshot, error) {
	ctx, span := tracing.StartSpan(ctx, "checkout.Cancel")
	defer span.End()

	o.mu.Lock()
	if o.canceling {
		defer o.mu.Unlock()
		return o.snapshotLocked(), ErrCheckoutInProgress
	}
	if _, err := Transition(o.state, EventCancelConfirmed); err != nil {
		defer o.mu.Unlock()
		return o.snapshotLocked(), err
	}
	if !confirmed {
		defer o.mu.Unlock()
		o.confirmCancel = true
		o.message = ConfirmCancelMessage
		return o.snapshotLocked(), ErrConfirmationRequired
	}
	// Widget callbacks and status results are refused until the cancel lands.
	o.stopPollingLocked()
	o.widget.Unmount()
	o.canceling = true
	orderID, plan, run := o.orderID, o.plan, o.run
	o.mu.Unlock()

	if err := o.api.CancelTransaction(ctx, orderID); err != nil {
		logger.WithError(err).Warn("best-effort cancel failed", "orderId", orderID)
	}
	if err := o.txs.Clear(ctx); err != nil {
		logger.WithError(err).Warn("failed to clear last transaction", "orderId", orderID)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.run != run {
		return o.snapshotLocked(), nil
	}
	o.canceling = false
	if err := o.apply(EventCancelConfirmed); err != nil {
		return o.snapshotLocked(), err
	}
	o.status = models.StatusCanceled
	o.confirmCancel = false
	o.message = ""
	o.redirect = navigate(RouteUpgrade, nil)
	metrics.RecordCheckoutOutcome(string(plan), "canceled")
	return o.snapshotLocked(), nil
}

// Retry restarts status polling with a fresh attempt counter. From a
// failed run it returns to plan selection.
func (o *Orchestrator) Retry(ctx context.Context) (Snapshot, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.canceling {
		return o.snapshotLocked(), ErrCheckoutInProgress
	}
	switch o.state {
	case StateError, StateCanceled:
		o.resetLocked()
		o.redirect = navigate(RouteUpgrade, nil)
		return o.snapshotLocked(), nil
	}
	if err := o.apply(EventRetry); err != nil {
		return o.snapshotLocked(), err
	}
	o.message = ""
	o.startPollingLocked(ctx)
	o.poller.ResetAttempts()
	return o.snapshotLocked(), nil
}

// CheckNow runs one status check outside the polling schedule.
func (o *Orchestrator) CheckNow(ctx context.Context) (Snapshot, error) {
	o.mu.Lock()
	if o.canceling {
		defer o.mu.Unlock()
		return o.snapshotLocked(), ErrCheckoutInProgress
	}
	if o.state != StatePendingVerification && o.state != StateStillProcessing {
		defer o.mu.Unlock()
		return o.snapshotLocked(), fmt.Errorf("%w: status check in %s", ErrInvalidTransition, o.state)
	}
	if o.poller == nil {
		run := o.run
		o.poller = NewPoller("checkout-status", o.opts.PollInterval, o.opts.MaxAttempts, o.opts.NewTicker,
			func(ctx context.Context) (bool, error) { return o.checkStatus(ctx, run) },
			func() { o.pollExhausted(run) })
	}
	p := o.poller
	o.mu.Unlock()

	p.CheckNow(ctx)
	return o.Snapshot(), nil
}

// WatchPending starts the slow poll behind the pending payment page.
func (o *Orchestrator) WatchPending(ctx context.Context, orderID string) (PendingView, error) {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return PendingView{}, ErrDisposed
	}
	o.mu.Unlock()
	return o.pending.Watch(ctx, orderID)
}

// LeavePending stops the pending page poll. The last view stays readable.
func (o *Orchestrator) LeavePending() {
	o.pending.Stop()
}

func (o *Orchestrator) onPendingResolved(ctx context.Context, tx models.Transaction) {
	if tx.Status != models.StatusPaid {
		return
	}
	metrics.RecordCheckoutOutcome(string(tx.Plan), "success")
	o.refreshSubscription(ctx, tx.Plan, tx.OrderID, tx.PaymentMethod)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.orderID == tx.OrderID && !o.state.Terminal() {
		o.applyStatusLocked(ctx, &tx)
	}
}

// Reset abandons the current run without touching the stored
// lastTransaction, so the payment can still be resumed after a new login.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resetLocked()
	o.draft = nil
}

// Dispose stops every timer and releases the widget. The orchestrator
// cannot be used afterwards.
func (o *Orchestrator) Dispose() {
	o.mu.Lock()
	o.disposed = true
	o.stopPollingLocked()
	o.widget.Unmount()
	p := o.poller
	o.mu.Unlock()

	o.pending.Stop()
	if p != nil {
		p.Wait()
	}
	o.pending.Wait()
	logger.Info("checkout orchestrator disposed")
}
