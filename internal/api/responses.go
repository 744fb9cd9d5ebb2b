package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradejournal/internal/backend"
	"tradejournal/internal/featuregate"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// UpgradeRequiredResponse is returned when a free plan hits a Pro feature.
type UpgradeRequiredResponse struct {
	Error   string              `json:"error" example:"upgrade required"`
	Upgrade *featuregate.Prompt `json:"upgrade"`
}

// ClientConfig is what the browser shell needs before loading snap.js.
type ClientConfig struct {
	SnapScriptURL string `json:"snapScriptUrl"`
	ClientKey     string `json:"clientKey"`
	AssetsBaseURL string `json:"assetsBaseUrl"`
	Production    bool   `json:"production"`
}

// RespondUpgradeRequired answers 403 with the upgrade prompt when err is a
// feature denial, and reports whether it did.
func RespondUpgradeRequired(c *gin.Context, err error) bool {
	var denied *featuregate.DeniedError
	if !errors.As(err, &denied) {
		return false
	}
	c.JSON(http.StatusForbidden, UpgradeRequiredResponse{
		Error:   err.Error(),
		Upgrade: &denied.Prompt,
	})
	return true
}

// RespondBackendError forwards the backend's message. Client-side statuses
// pass through; everything else is reported as a bad gateway.
func RespondBackendError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
			http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity:
			status = apiErr.StatusCode
		}
	}
	c.JSON(status, ErrorResponse{Error: backend.Message(err)})
}
