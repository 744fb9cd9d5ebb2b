package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/api"
	"tradejournal/internal/auth"
	"tradejournal/internal/backend"
	"tradejournal/internal/calendar"
	"tradejournal/internal/checkout"
	"tradejournal/internal/config"
	"tradejournal/internal/store"
	"tradejournal/internal/subscription"
	"tradejournal/internal/trade"
	"tradejournal/internal/transaction"
	"tradejournal/internal/txstore"
	"tradejournal/internal/user"
)

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/trades", func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"t1","instrument":"EURUSD","result":"win","profit":50}]}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"Not found"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:                  "0",
		AppEnv:                "test",
		APIBaseURL:            fakeBackend(t).URL,
		AssetsBaseURL:         "http://assets.local",
		HTTPTimeout:           2 * time.Second,
		MidtransClientKey:     "SB-Mid-client-test",
		StatusPollInterval:    time.Hour,
		StatusPollMaxAttempts: 3,
		PendingPollInterval:   time.Hour,
		InitialBalance:        1000,
	}

	client := backend.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	st := store.New(client)
	txs := txstore.NewMemoryStore()
	orch := checkout.NewOrchestrator(client, st, txs,
		checkout.NewSnapWidget(cfg.MidtransClientKey, cfg.SnapScriptURL()),
		checkout.Options{PollInterval: cfg.StatusPollInterval, MaxAttempts: cfg.StatusPollMaxAttempts, PendingInterval: cfg.PendingPollInterval})
	t.Cleanup(orch.Dispose)

	return New(cfg, client, Handlers{
		User:         user.NewHandler(user.NewService(st, client, orch.Reset)),
		Trade:        trade.NewHandler(trade.NewService(st, cfg.InitialBalance)),
		Calendar:     calendar.NewHandler(calendar.NewService(st)),
		Subscription: subscription.NewHandler(subscription.NewService(st, txs)),
		Transaction:  transaction.NewHandler(client),
		Checkout:     checkout.NewHandler(orch),
	})
}

func bearer(t *testing.T) string {
	t.Helper()
	claims := &auth.Claims{
		UserID: "u-1",
		Email:  "trader@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestServerPublicRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{"Health", "/health", http.StatusOK},
		{"Config", "/config", http.StatusOK},
		{"Plans", "/plans", http.StatusOK},
		{"Metrics", "/metrics", http.StatusOK},
		{"Swagger doc", "/swagger/doc.json", http.StatusOK},
		{"Dashboard needs auth", "/dashboard", http.StatusUnauthorized},
		{"Checkout needs auth", "/checkout/state", http.StatusUnauthorized},
		{"Unknown route", "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(requestIDHeader))
		})
	}
}

func TestServerClientConfig(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	var body api.ClientConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "SB-Mid-client-test", body.ClientKey)
	assert.Equal(t, "https://app.sandbox.midtrans.com/snap/snap.js", body.SnapScriptURL)
	assert.Equal(t, "http://assets.local", body.AssetsBaseURL)
	assert.False(t, body.Production)
}

func TestServerAuthenticatedRoutes(t *testing.T) {
	srv := newTestServer(t)
	token := bearer(t)

	t.Run("CheckoutState", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/checkout/state", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"state":"IDLE"`)
	})

	t.Run("TradesForwardToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/trades", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"instrument":"EURUSD"`)
		assert.NotEmpty(t, w.Header().Get(auth.SessionExpiresHeader))
	})

	t.Run("OpaqueTokenForwarded", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/trades", nil)
		req.Header.Set("Authorization", "Bearer sess_opaque")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get(auth.SessionExpiresHeader))
	})

	t.Run("BackendNotFound", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transactions/ORD-1/invoice", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Not found")
	})
}
