package auth

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tradejournal/internal/backend"
	"tradejournal/internal/logger"
)

const SessionExpiredMessage = "Your session has expired. Please log in again."

// SessionExpiresHeader carries the seconds left on a JWT session so the
// shell can warn before it lapses.
const SessionExpiresHeader = "X-Session-Expires-In"

// TokenSource yields the session token when a request carries none.
type TokenSource interface {
	Token() string
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", true
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func AuthMiddleware(session TokenSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}
		if tokenString == "" && session != nil {
			tokenString = session.Token()
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		now := time.Now()
		claims, err := Inspect(tokenString, now)
		switch {
		case errors.Is(err, ErrTokenExpired):
			logger.Info("rejected expired session", "user_id", claims.Subject())
			c.JSON(http.StatusUnauthorized, gin.H{"error": SessionExpiredMessage, "redirect": "/"})
			c.Abort()
			return
		case err != nil:
			// Opaque session tokens have no readable expiry. The backend
			// answers 401 if it does not accept them.
			logger.Debug("session token is not a JWT, forwarding unchecked")
		default:
			c.Set("user_id", claims.Subject())
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)
			if left := ExpiresIn(claims, now); left > 0 {
				c.Header(SessionExpiresHeader, strconv.FormatInt(int64(left/time.Second), 10))
			}
		}

		c.Set("token", tokenString)
		c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), tokenString))

		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}
