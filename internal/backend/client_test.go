package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api", 2*time.Second)
}

func writeEnvelope(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status < 300,
		"data":    data,
		"message": message,
	})
}

func TestCreateTransactionReturnsData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions/create", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		var body CreateTransactionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.PlanPro, body.Plan)
		assert.Equal(t, float64(55200), body.Total)

		writeEnvelope(w, http.StatusCreated, map[string]string{
			"token":         "snap-abc",
			"orderId":       "ORD-1",
			"invoiceNumber": "INV-1",
		}, "created")
	})
	c.SetToken("session-token")

	out, err := c.CreateTransaction(context.Background(), CreateTransactionRequest{Plan: models.PlanPro, Discount: 13800, Total: 55200})
	require.NoError(t, err)
	assert.Equal(t, "snap-abc", out.Token)
	assert.Equal(t, "ORD-1", out.OrderID)
	assert.Equal(t, "INV-1", out.InvoiceNumber)
}

func TestContextTokenOverridesSessionToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer from-context", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, []interface{}{}, "")
	})
	c.SetToken("session-token")

	_, err := c.ListTrades(WithToken(context.Background(), "from-context"))
	require.NoError(t, err)
}

func TestBackendMessageSurfaced(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, nil, "Calendar event limit reached")
	})

	_, err := c.CreateEvent(context.Background(), models.CalendarEvent{Title: "NFP"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Calendar event limit reached", Message(err))
	assert.False(t, IsUnauthorized(err))
}

func TestUnstructuredErrorFallsBackToNetworkMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	err := c.DeleteTrade(context.Background(), "t1")
	require.Error(t, err)
	assert.Equal(t, NetworkErrorMessage, Message(err))
}

func TestTransportErrorIsNetworkError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)

	_, err := c.Me(context.Background())
	require.Error(t, err)
	assert.Equal(t, NetworkErrorMessage, Message(err))
}

func TestUnauthorizedDetected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, nil, "Token expired")
	})

	_, err := c.TransactionStatus(context.Background(), "ORD-1")
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Token expired", Message(err))
}

func TestTransactionStatusNormalized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions/status/ORD-7", r.URL.Path)
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"orderId":        "ORD-7",
			"status":         "settlement",
			"payment_method": "bank_transfer",
		}, "")
	})

	tx, err := c.TransactionStatus(context.Background(), "ORD-7")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, tx.Status)
	assert.Equal(t, "bank_transfer", tx.PaymentMethod)
}

func TestInvoicePDF(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions/invoice-pdf/ORD-2", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	})

	data, ct, err := c.InvoicePDF(context.Background(), "ORD-2")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", ct)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}

func TestToggleEventCompletion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/calendar/events/ev-1/toggle", r.URL.Path)
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"id": "ev-1", "isCompleted": true}, "")
	})

	ev, err := c.ToggleEventCompletion(context.Background(), "ev-1")
	require.NoError(t, err)
	assert.True(t, ev.IsCompleted)
}
