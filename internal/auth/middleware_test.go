package auth

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/backend"
)

type staticSession string

func (s staticSession) Token() string { return string(s) }

func TestAuthMiddlewareHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{"Empty header", "", http.StatusUnauthorized},
		{"Invalid format", "Token abc", http.StatusUnauthorized},
		{"Empty token", "Bearer ", http.StatusUnauthorized},
		{"Opaque token", "Bearer abc", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			req := httptest.NewRequest("GET", "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			c.Request = req

			handler := AuthMiddleware(nil)
			handler(c)
			if !c.IsAborted() {
				c.Status(http.StatusOK)
				c.Writer.WriteHeaderNow()
			}

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthMiddlewareSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	valid := signedToken(t, "u-7", time.Now().Add(time.Hour))

	newRouter := func(session TokenSource) *gin.Engine {
		r := gin.New()
		r.Use(AuthMiddleware(session))
		r.GET("/me", func(c *gin.Context) {
			id, _ := GetUserID(c)
			c.JSON(http.StatusOK, gin.H{"id": id, "has_token": c.GetString("token") != ""})
		})
		return r
	}

	t.Run("Bearer header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+valid)
		newRouter(nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"u-7","has_token":true}`, w.Body.String())

		left, err := strconv.Atoi(w.Header().Get(SessionExpiresHeader))
		require.NoError(t, err)
		assert.InDelta(t, 3600, left, 5)
	})

	t.Run("Opaque token passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer sess_8f2c01")
		newRouter(nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"","has_token":true}`, w.Body.String())
		assert.Empty(t, w.Header().Get(SessionExpiresHeader))
	})

	t.Run("Falls back to session token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(staticSession(valid)).ServeHTTP(w, httptest.NewRequest("GET", "/me", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Expired session", func(t *testing.T) {
		expired := signedToken(t, "u-7", time.Now().Add(-time.Hour))
		w := httptest.NewRecorder()
		newRouter(staticSession(expired)).ServeHTTP(w, httptest.NewRequest("GET", "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), SessionExpiredMessage)
	})
}

func TestTokenReachesBackendContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	valid := signedToken(t, "u-1", time.Now().Add(time.Hour))

	var seen string
	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"u-1"}}`))
	}))
	defer backendSrv.Close()

	client := backend.NewClient(backendSrv.URL, time.Second)
	r := gin.New()
	r.Use(AuthMiddleware(nil))
	r.GET("/me", func(c *gin.Context) {
		u, err := client.Me(c.Request.Context())
		if err != nil {
			c.Status(http.StatusBadGateway)
			return
		}
		c.JSON(http.StatusOK, u)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+valid)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer "+valid, seen)
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		userID   any
		expected string
		ok       bool
	}{
		{"Valid ID", "u-42", "u-42", true},
		{"Missing ID", nil, "", false},
		{"Wrong type", 42, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			if tt.userID != nil {
				c.Set("user_id", tt.userID)
			}
			c.Request = httptest.NewRequest("GET", "/", nil)

			id, ok := GetUserID(c)
			assert.Equal(t, tt.expected, id)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
