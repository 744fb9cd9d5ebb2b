package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/backend"
	"tradejournal/internal/featuregate"
	"tradejournal/internal/models"
	"tradejournal/internal/txstore"
)

type MockBackend struct{ mock.Mock }

func (m *MockBackend) CreateTransaction(ctx context.Context, req backend.CreateTransactionRequest) (*models.CreatedTransaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreatedTransaction), args.Error(1)
}

func (m *MockBackend) TransactionStatus(ctx context.Context, orderID string) (*models.Transaction, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockBackend) CancelTransaction(ctx context.Context, orderID string) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *MockBackend) Downgrade(ctx context.Context) (*models.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockBackend) MySubscription(ctx context.Context) (*models.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

type fakeSink struct {
	mu  sync.Mutex
	sub models.Subscription
}

func (f *fakeSink) Subscription() models.Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sub
}

func (f *fakeSink) SetSubscription(sub models.Subscription) {
	f.mu.Lock()
	f.sub = sub
	f.mu.Unlock()
}

type manualTicker struct{ ch chan time.Time }

func (m *manualTicker) Chan() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop() {}

func (m *manualTicker) tick(t *testing.T) {
	t.Helper()
	select {
	case m.ch <- time.Now():
	case <-time.After(2 * time.Second):
		t.Fatal("tick was not consumed")
	}
}

type manualClock struct{ tickers chan *manualTicker }

func newManualClock() *manualClock {
	return &manualClock{tickers: make(chan *manualTicker, 8)}
}

func (c *manualClock) NewTicker(time.Duration) Ticker {
	tk := &manualTicker{ch: make(chan time.Time)}
	c.tickers <- tk
	return tk
}

func (c *manualClock) next(t *testing.T) *manualTicker {
	t.Helper()
	select {
	case tk := <-c.tickers:
		return tk
	case <-time.After(2 * time.Second):
		t.Fatal("no ticker was created")
		return nil
	}
}

type harness struct {
	api    *MockBackend
	sink   *fakeSink
	txs    *txstore.MemoryStore
	widget *SnapWidget
	clock  *manualClock
	orch   *Orchestrator
}

func newHarness(t *testing.T, plan models.Plan) *harness {
	h := &harness{
		api:    new(MockBackend),
		sink:   &fakeSink{sub: models.Subscription{Plan: plan, IsValid: true}},
		txs:    txstore.NewMemoryStore(),
		widget: NewSnapWidget("client-key", "https://app.sandbox.midtrans.com/snap/snap.js"),
		clock:  newManualClock(),
	}
	h.orch = h.newOrchestrator()
	t.Cleanup(h.orch.Dispose)
	return h
}

func (h *harness) newOrchestrator() *Orchestrator {
	return NewOrchestrator(h.api, h.sink, h.txs, h.widget, Options{
		PollInterval: 3 * time.Second,
		MaxAttempts:  60,
		NewTicker:    h.clock.NewTicker,
	})
}

func created(orderID string) *models.CreatedTransaction {
	return &models.CreatedTransaction{Token: "snap-" + orderID, OrderID: orderID, InvoiceNumber: "INV-" + orderID}
}

func txWithStatus(orderID string, status models.TransactionStatus) *models.Transaction {
	return &models.Transaction{OrderID: orderID, Plan: models.PlanPro, Status: status}
}

// startAndClose opens a pro checkout and dismisses the widget so the
// status loop starts.
func (h *harness) startAndClose(t *testing.T, orderID string) *manualTicker {
	t.Helper()
	h.api.On("CreateTransaction", mock.Anything, mock.Anything).Return(created(orderID), nil).Once()

	snap, err := h.orch.Start(context.Background(), models.PlanPro, "")
	require.NoError(t, err)
	require.Equal(t, StateAwaitingPayment, snap.State)

	snap, err = h.orch.HandleWidgetEvent(context.Background(), WidgetEvent{Type: WidgetClose})
	require.NoError(t, err)
	require.Equal(t, StatePendingVerification, snap.State)
	return h.clock.next(t)
}

func TestStartPaidCheckout(t *testing.T) {
	h := newHarness(t, models.PlanFree)
	h.api.On("CreateTransaction", mock.Anything, backend.CreateTransactionRequest{
		Plan:       models.PlanPro,
		CouponCode: "PRO20",
		Discount:   13800,
		Total:      55200,
	}).Return(created("ORD-1"), nil).Once()

	snap, err := h.orch.Start(context.Background(), models.PlanPro, "PRO20")
	require.NoError(t, err)

	assert.Equal(t, StateAwaitingPayment, snap.State)
	assert.Equal(t, "ORD-1", snap.OrderID)
	require.NotNil(t, snap.Widget)
	assert.Equal(t, "snap-ORD-1", snap.Widget.Token)
	assert.Equal(t, "client-key", snap.Widget.ClientKey)
	assert.Equal(t, "55200", snap.Quote.Total().String())

	rec, err := h.txs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", rec.OrderID)
	assert.Equal(t, models.PlanPro, rec.Plan)
	assert.Equal(t, "snap-ORD-1", rec.Token)
	assert.Equal(t, models.StatusPendingPayment, rec.Status)

	t.Run("SecondStartIsNoOp", func(t *testing.T) {
		again, err := h.orch.Start(context.Background(), models.PlanPro, "PRO20")
		require.NoError(t, err)
		assert.Equal(t, snap.Widget.EmbedID, again.Widget.EmbedID)
		h.api.AssertNumberOfCalls(t, "CreateTransaction", 1)
	})

	t.Run("OtherPlanWhileOpen", func(t *testing.T) {
		_, err := h.orch.Start(context.Background(), models.PlanLifetime, "")
		assert.ErrorIs(t, err, ErrCheckoutInProgress)
	})
}

func TestStartInvalidCoupon(t *testing.T) {
	h := newHarness(t, models.PlanFree)

	snap, err := h.orch.Start(context.Background(), models.PlanPro, "NOPE")
	assert.ErrorIs(t, err, ErrInvalidCoupon)
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, InvalidCouponMessage, snap.Message)
	h.api.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestStartCreateFailure(t *testing.T) {
	h := newHarness(t, models.PlanFree)
	h.api.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, &backend.APIError{StatusCode: 400, Message: "Plan unavailable"})

	snap, err := h.orch.Start(context.Background(), models.PlanPro, "")
	require.Error(t, err)
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, "Plan unavailable", snap.Message)
	require.NotNil(t, snap.Redirect)
	assert.Contains(t, snap.Redirect.Path, RouteError)

	snap, err = h.orch.Retry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, RouteUpgrade, snap.Redirect.Path)
}

func TestApplyCouponDraft(t *testing.T) {
	h := newHarness(t, models.PlanFree)

	q, err := h.orch.ApplyCoupon(models.PlanPro, "PRO20")
	require.NoError(t, err)
	assert.Equal(t, "55200", q.Total().String())

	q, err = h.orch.ApplyCoupon(models.PlanPro, "EXPIRED")
	assert.ErrorIs(t, err, ErrInvalidCoupon)
	assert.Equal(t, "55200", q.Total().String())

	h.api.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req backend.CreateTransactionRequest) bool {
		return req.CouponCode == "PRO20" && req.Total == 55200
	})).Return(created("ORD-D"), nil).Once()

	_, err = h.orch.Start(context.Background(), models.PlanPro, "")
	require.NoError(t, err)
	h.api.AssertExpectations(t)
}

func TestWidgetEvents(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := newHarness(t, models.PlanFree)
		h.api.On("CreateTransaction", mock.Anything, mock.Anything).Return(created("ORD-S"), nil)
		h.api.On("MySubscription", mock.Anything).Return(&models.Subscription{Plan: models.PlanPro, IsValid: true}, nil)

		_, err := h.orch.Start(context.Background(), models.PlanPro, "")
		require.NoError(t, err)

		snap, err := h.orch.HandleWidgetEvent(context.Background(), WidgetEvent{Type: WidgetSuccess, OrderID: "ORD-S", PaymentType: "gopay"})
		require.NoError(t, err)
		assert.Equal(t, StateSuccess, snap.State)
		assert.Nil(t, snap.Widget)
		assert.Equal(t, "/checkout/success?orderId=ORD-S&paymentMethod=gopay&status=PAID", snap.Redirect.Path)
		assert.Equal(t, models.PlanPro, h.sink.Subscription().Plan)

		rec, err := h.txs.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.StatusPaid, rec.Status)
	})

	t.Run("Error", func(t *testing.T) {
		h := newHarness(t, models.PlanFree)
		h.api.On("CreateTransaction", mock.Anything, mock.Anything).Return(created("ORD-E"), nil)

		_, err := h.orch.Start(context.Background(), models.PlanPro, "")
		require.NoError(t, err)

		snap, err := h.orch.HandleWidgetEvent(context.Background(), WidgetEvent{Type: WidgetError, StatusMessage: "Card declined", TransactionStatus: "deny"})
		require.NoError(t, err)
		assert.Equal(t, StateError, snap.State)
		assert.Equal(t, "Card declined", snap.Message)
		assert.Equal(t, models.StatusDenied, snap.Status)
		assert.Contains(t, snap.Redirect.Path, RouteError)
	})

	t.Run("PendingCarriesToken", func(t *testing.T) {
		h := newHarness(t, models.PlanFree)
		h.api.On("CreateTransaction", mock.Anything, mock.Anything).Return(created("ORD-P"), nil)

		_, err := h.orch.Start(context.Background(), models.PlanPro, "")
		require.NoError(t, err)

		snap, err := h.orch.HandleWidgetEvent(context.Background(), WidgetEvent{Type: WidgetPending})
		require.NoError(t, err)
		assert.Equal(t, StatePendingVerification, snap.State)
		assert.Equal(t, "/checkout/success?orderId=ORD-P&status=pending&token=snap-ORD-P", snap.Redirect.Path)
	})

	t.Run("UnknownType", func(t *testing.T) {
		h := newHarness(t, models.PlanFree)
		_, err := h.orch.HandleWidgetEvent(context.Background(), WidgetEvent{Type: "exploded"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("EventWithoutWidget", func(t *testing.T) {
		h := newHarness(t, models.PlanFree)
		_, err := h.orch.HandleWidgetEvent(context.Background(), WidgetEvent{Type: WidgetSuccess})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestPollingStopsOnPaid(t *testing.T) {
	h := newHarness(t, models.PlanFree)
	h.api.On("TransactionStatus", mock.Anything, "ORD-1").Return(txWithStatus("ORD-1", models.StatusPendingPayment), nil).Twice()
	h.api.On("TransactionStatus", mock.Anything, "ORD-1").Return(txWithStatus("ORD-1", models.StatusPaid), nil).Once()
	h.api.On("MySubscription", mock.Anything).Return(&models.Subscription{Plan: models.PlanPro, IsValid: true}, nil)

	ticker := h.startAndClose(t, "ORD-1")
	ticker.tick(t)
	ticker.tick(t)
	ticker.tick(t)

	require.Eventually(t, func() bool {
		return h.orch.Snapshot().State == StateSuccess
	}, 2*time.Second, 10*time.Millisecond)
	h.orch.poller.Wait()

	select {
	case ticker.ch <- time.Now():
		t.Fatal("status loop still running after PAID")
	default:
	}
	h.api.AssertNumberOfCalls(t, "TransactionStatus", 3)
	assert.Equal(t, 3, h.orch.Snapshot().Attempts)
	assert.Equal(t, models.PlanPro, h.sink.Subscription().Plan)
}

func TestPollingGivesUpAfterMaxAttempts(t *testing.T) {
	h := newHarness(t, models.PlanFree)
	h.api.On("TransactionStatus", mock.Anything, "ORD-2").Return(txWithStatus("ORD-2", models.StatusPendingPayment), nil)

	ticker := h.startAndClose(t, "ORD-2")
	for i := 0; i < 60; i++ {
		ticker.tick(t)
	}

	require.Eventually(t, func() bool {
		return h.orch.Snapshot().State == StateStillProcessing
	}, 2*time.Second, 10*time.Millisecond)

	snap := h.orch.Snapshot()
	assert.Equal(t, StillProcessingMessage, snap.Message)
	assert.Equal(t, 60, snap.Attempts)
	h.api.AssertNumberOfCalls(t, "TransactionStatus", 60)

	t.Run("RetryResetsCounter", func(t *testing.T) {
		snap, err := h.orch.Retry(context.Background())
		require.NoError(t, err)
		assert.Equal(t, StatePendingVerification, snap.State)
		assert.Equal(t, 0, snap.Attempts)
		assert.Empty(t, snap.Message)

		retried := h.clock.next(t)
		retried.tick(t)
		require.Eventually(t, func() bool {
			return h.orch.Snapshot().Attempts == 1
		}, 2*time.Second, 10*time.Millisecond)
	})
}

func TestPollingSwallowsTransientErrors(t *testing.T) {
	h := newHarness(t, models.PlanFree)
	h.api.On("TransactionStatus", mock.Anything, "ORD-3").Return(nil, errors.New("connection reset")).Once()
	h.api.On("TransactionStatus", mock.Anything, "ORD-3").Return(txWithStatus("ORD-3", models.StatusExpired), nil).Once()

	ticker := h.startAndClose(t, "ORD-3")
	ticker.tick(t)
	ticker.tick(t)

	require.Eventually(t, func() bool {
		return h.orch.Snapshot().State == StateError
	}, 2*time.Second, 10*time.Millisecond)

	snap := h.orch.Snapshot()
	assert.Equal(t, models.StatusExpired, snap.Status)
	assert.Equal(t, RouteUpgrade, snap.Redirect.Path)
}

func TestPollingSessionExpired(t *testing.T) {
	h := newHarness(t, models.PlanFree)
	h.api.On("TransactionStatus", mock.Anything, "ORD-4").Return(nil, &backend.APIError{StatusCode: 401, Message: "Unauthorized"}).Once()

	ticker := h.startAndClose(t, "ORD-4")
	ticker.tick(t)

	require.Eventually(t, func() bool {
		return h.orch.Snapshot().State == StateError
	}, 2*time.Second, 10*time.Millisecond)

	snap := h.orch.Snapshot()
	assert.Equal(t, SessionExpiredMessage, snap.Message)
	assert.Equal(t, RouteLogin, snap.Redirect.Path)
	assert.Equal(t, 3*time.Second, snap.Redirect.Delay)
	h.api.AssertNumberOfCalls(t, "TransactionStatus", 1)
}

func TestResume(t *testing.T) {
	ctx := context.Background()

	t.Run("ReloadRecoversOrderAndToken", func(t *testing.T) {
		h := newHarness(t, models.PlanFree)
		h.api.On("CreateTransaction", mock.Anything, mock.Anything).Return(created("ORD-R"), nil).Once()
		_, err := h.orch.Start(ctx, models.PlanPro, "")
		require.NoError(t, err)

		// page reload: new widget and orchestrator over the same storage
		h.orch.Dispose()
		h.widget = NewSnapWidget("client-key", "snap.js")
		reloaded := h.newOrchestrator()
		defer reloaded.Dispose()

		h.api.On("TransactionStatus", mock.Anything, "ORD-R").Return(txWithStatus("ORD-R", models.StatusPendingPayment), nil).Once()

		snap, err := reloaded.Resume(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, StateAwaitingPayment, snap.State)
		assert.Equal(t, "ORD-R", snap.OrderID)
		require.NotNil(t, snap.Widget)
		assert.Equal(t, "snap-ORD-R", snap.Widget.Token)
		h.api.AssertNumberOfCalls(t, "CreateTransaction", 1)
	})

	t.Run("AlreadyPaidGoesToSuccess", func(t *testing.T) {
		h := newHarness(t, models.PlanFree)
		require.NoError(t, h.txs.Save(ctx, txstore.Record{OrderID: "ORD-P", Plan: models.PlanPro, Token: "tok", Timestamp: time.Now()}))
		h.api.On("TransactionStatus", mock.Anything, "ORD-P").Return(txWithStatus("ORD-P", models.StatusPaid), nil)
		h.api.On("MySubscription", mock.Anything).Return(nil, errors.New("offline"))

		snap, err := h.orch.Resume(ctx, "ORD-P")
		require.NoError(t, err)
		assert.Equal(t, StateSuccess, snap.State)
		assert.Nil(t, snap.Widget)
		_, mounted := h.widget.Current()
		assert.False(t, mounted)
		assert.Contains(t, snap.Redirect.Path, RouteSuccess)
		assert.Equal(t, models.PlanPro, h.sink.Subscription().Plan)
	})

	t.Run("TerminalFailureNeverReopens", func(t *testing.T) {
		h := newHarness(t, models.PlanFree)
		require.NoError(t, h.txs.Save(ctx, txstore.Record{OrderID: "ORD-X", Plan: models.PlanPro, Token: "tok", Timestamp: time.Now()}))
		h.api.On("TransactionStatus", mock.Anything, "ORD-X").Return(txWithStatus("ORD-X", models.StatusExpired), nil)

		snap, err := h.orch.Resume(ctx, "ORD-X")
		assert.ErrorIs(t, err, ErrTransactionTerminal)
		assert.Equal(t, StateError, snap.State)
		assert.Nil(t, snap.Widget)
		assert.Equal(t, RouteUpgrade, snap.Redirect.Path)
	})

	t.Run("StaleTokenUsesBackendToken", func(t *testing.T) {
		h := newHarness(t, models.PlanFree)
		require.NoError(t, h.txs.Save(ctx, txstore.Record{OrderID: "ORD-O", Plan: models.PlanPro, Token: "old", Timestamp: time.Now().Add(-48 * time.Hour)}))
		tx := txWithStatus("ORD-O", models.StatusPendingPayment)
		tx.SnapToken = "fresh"
		h.api.On("TransactionStatus", mock.Anything, "ORD-O").Return(tx, nil)

		snap, err := h.orch.Resume(ctx, "ORD-O")
		require.NoError(t, err)
		assert.Equal(t, "fresh", snap.Widget.Token)

		rec, err := h.txs.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "fresh", rec.Token)
	})

	t.Run("NothingStored", func(t *testing.T) {
		h := newHarness(t, models.PlanFree)
		_, err := h.orch.Resume(ctx, "")
		assert.ErrorIs(t, err, txstore.ErrNotFound)
	})
}

func TestDowngrade(t *testing.T) {
	ctx := context.Background()

	t.Run("AlreadyFree", func(t *testing.T) {
		h := newHarness(t, models.PlanFree)

		snap, err := h.orch.Start(ctx, models.PlanFree, "")
		require.NoError(t, err)
		assert.Equal(t, StateIdle, snap.State)
		assert.Equal(t, AlreadyFreeMessage, snap.Message)
		assert.NotEqual(t, DowngradedMessage, snap.Message)
		h.api.AssertNotCalled(t, "Downgrade", mock.Anything)
	})

	t.Run("ExpiredProCountsAsFree", func(t *testing.T) {
		h := newHarness(t, models.PlanPro)
		past := time.Now().Add(-time.Hour)
		h.sink.SetSubscription(models.Subscription{Plan: models.PlanPro, IsValid: true, ExpiresAt: &past})

		snap, err := h.orch.Start(ctx, models.PlanFree, "")
		require.NoError(t, err)
		assert.Equal(t, AlreadyFreeMessage, snap.Message)
	})

	t.Run("RequiresConfirmation", func(t *testing.T) {
		h := newHarness(t, models.PlanPro)

		snap, err := h.orch.Start(ctx, models.PlanFree, "")
		require.NoError(t, err)
		assert.Equal(t, StateConfirmingDowngrade, snap.State)
		require.NotNil(t, snap.Downgrade)
		assert.Equal(t, models.PlanPro, snap.Downgrade.From)
		assert.ElementsMatch(t, featuregate.All, snap.Downgrade.Lost)
		assert.Empty(t, snap.Downgrade.Kept)

		snap, err = h.orch.ConfirmDowngrade(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, StateIdle, snap.State)
		assert.Equal(t, models.PlanPro, h.sink.Subscription().Plan)
		h.api.AssertNotCalled(t, "Downgrade", mock.Anything)
	})

	t.Run("Confirmed", func(t *testing.T) {
		h := newHarness(t, models.PlanLifetime)
		h.api.On("Downgrade", mock.Anything).Return(&models.Subscription{Plan: models.PlanFree, IsValid: true}, nil).Once()

		_, err := h.orch.Start(ctx, models.PlanFree, "")
		require.NoError(t, err)

		snap, err := h.orch.ConfirmDowngrade(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, StateDowngraded, snap.State)
		assert.Equal(t, DowngradedMessage, snap.Message)
		assert.Equal(t, models.PlanFree, h.sink.Subscription().Plan)
	})

	t.Run("BackendRejects", func(t *testing.T) {
		h := newHarness(t, models.PlanPro)
		h.api.On("Downgrade", mock.Anything).Return(nil, &backend.APIError{StatusCode: 409, Message: "Pending invoice"}).Once()

		_, err := h.orch.Start(ctx, models.PlanFree, "")
		require.NoError(t, err)

		snap, err := h.orch.ConfirmDowngrade(ctx, true)
		require.Error(t, err)
		assert.Equal(t, StateConfirmingDowngrade, snap.State)
		assert.Equal(t, "Pending invoice", snap.Message)
		assert.Equal(t, models.PlanPro, h.sink.Subscription().Plan)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, models.PlanFree)
	h.api.On("CreateTransaction", mock.Anything, mock.Anything).Return(created("ORD-C"), nil)
	h.api.On("CancelTransaction", mock.Anything, "ORD-C").Return(errors.New("gateway timeout"))

	_, err := h.orch.Start(ctx, models.PlanPro, "")
	require.NoError(t, err)

	snap, err := h.orch.Cancel(ctx, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.True(t, snap.ConfirmCancel)
	assert.Equal(t, StateAwaitingPayment, snap.State)
	h.api.AssertNotCalled(t, "CancelTransaction", mock.Anything, mock.Anything)

	snap, err = h.orch.Cancel(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, StateCanceled, snap.State)
	assert.Nil(t, snap.Widget)
	assert.Equal(t, RouteUpgrade, snap.Redirect.Path)

	_, err = h.txs.Load(ctx)
	assert.ErrorIs(t, err, txstore.ErrNotFound)

	_, err = h.orch.Cancel(ctx, true)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelRefusesLatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("WidgetSuccessDuringCancel", func(t *testing.T) {
		h := newHarness(t, models.PlanFree)
		h.api.On("CreateTransaction", mock.Anything, mock.Anything).Return(created("ORD-R"), nil)

		_, err := h.orch.Start(ctx, models.PlanPro, "")
		require.NoError(t, err)

		var lateErr error
		h.api.On("CancelTransaction", mock.Anything, "ORD-R").Run(func(mock.Arguments) {
			_, lateErr = h.orch.HandleWidgetEvent(ctx, WidgetEvent{Type: WidgetSuccess, OrderID: "ORD-R", PaymentType: "qris"})
		}).Return(nil).Once()

		snap, err := h.orch.Cancel(ctx, true)
		require.NoError(t, err)
		assert.ErrorIs(t, lateErr, ErrInvalidTransition)

		assert.Equal(t, StateCanceled, snap.State)
		assert.Equal(t, models.StatusCanceled, snap.Status)
		assert.Equal(t, models.PlanFree, h.sink.Subscription().Plan)
		h.api.AssertNotCalled(t, "MySubscription", mock.Anything)
	})

	t.Run("StatusCheckDuringCancel", func(t *testing.T) {
		h := newHarness(t, models.PlanFree)
		h.startAndClose(t, "ORD-S")
		h.api.On("TransactionStatus", mock.Anything, "ORD-S").Return(txWithStatus("ORD-S", models.StatusPaid), nil)

		var checkErr error
		var finished bool
		h.api.On("CancelTransaction", mock.Anything, "ORD-S").Run(func(mock.Arguments) {
			_, checkErr = h.orch.CheckNow(ctx)
			h.orch.mu.Lock()
			run := h.orch.run
			h.orch.mu.Unlock()
			finished, _ = h.orch.checkStatus(ctx, run)
		}).Return(nil).Once()

		snap, err := h.orch.Cancel(ctx, true)
		require.NoError(t, err)
		assert.ErrorIs(t, checkErr, ErrCheckoutInProgress)
		assert.False(t, finished)

		assert.Equal(t, StateCanceled, snap.State)
		assert.Equal(t, models.StatusCanceled, snap.Status)
		assert.Equal(t, RouteUpgrade, snap.Redirect.Path)
		assert.Equal(t, models.PlanFree, h.sink.Subscription().Plan)
	})
}

func TestCheckNow(t *testing.T) {
	h := newHarness(t, models.PlanFree)
	h.api.On("TransactionStatus", mock.Anything, "ORD-N").Return(txWithStatus("ORD-N", models.StatusPaid), nil).Once()
	h.api.On("MySubscription", mock.Anything).Return(&models.Subscription{Plan: models.PlanPro, IsValid: true}, nil)

	h.startAndClose(t, "ORD-N")

	snap, err := h.orch.CheckNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, snap.State)
	assert.Equal(t, 0, snap.Attempts)
}

func TestDisposeStopsPolling(t *testing.T) {
	h := newHarness(t, models.PlanFree)
	ticker := h.startAndClose(t, "ORD-Z")

	h.orch.Dispose()

	select {
	case ticker.ch <- time.Now():
		t.Fatal("status loop survived dispose")
	default:
	}

	_, err := h.orch.Start(context.Background(), models.PlanPro, "")
	assert.ErrorIs(t, err, ErrDisposed)
	h.api.AssertNotCalled(t, "TransactionStatus", mock.Anything, mock.Anything)
}

func TestNewRunStopsPendingWatch(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, models.PlanFree)
	h.api.On("TransactionStatus", mock.Anything, "ORD-OLD").Return(txWithStatus("ORD-OLD", models.StatusPendingPayment), nil).Once()

	view, err := h.orch.WatchPending(ctx, "ORD-OLD")
	require.NoError(t, err)
	require.True(t, view.Watching)
	ticker := h.clock.next(t)

	h.api.On("CreateTransaction", mock.Anything, mock.Anything).Return(created("ORD-NEW"), nil).Once()
	_, err = h.orch.Start(ctx, models.PlanPro, "")
	require.NoError(t, err)
	h.orch.pending.Wait()

	select {
	case ticker.ch <- time.Now():
		t.Fatal("pending poll survived a new checkout")
	default:
	}
	h.api.AssertNumberOfCalls(t, "TransactionStatus", 1)
}

func TestResetKeepsStoredTransaction(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, models.PlanFree)
	h.startAndClose(t, "ORD-L")

	h.orch.Reset()
	h.orch.poller.Wait()
	assert.False(t, h.orch.poller.Running())

	snap := h.orch.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Empty(t, snap.OrderID)
	_, mounted := h.widget.Current()
	assert.False(t, mounted)

	rec, err := h.txs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ORD-L", rec.OrderID)
}
