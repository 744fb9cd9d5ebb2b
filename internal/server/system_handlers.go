package server

import (
	"net/http"

	"tradejournal/internal/api"
	"tradejournal/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}

// @Summary      Client configuration
// @Description  Snap script location and client key for the browser shell
// @Tags         system
// @Produce      json
// @Success      200 {object} api.ClientConfig
// @Router       /config [get]
func ClientConfig(cfg *config.Config) gin.HandlerFunc {
	body := api.ClientConfig{
		SnapScriptURL: cfg.SnapScriptURL(),
		ClientKey:     cfg.MidtransClientKey,
		AssetsBaseURL: cfg.AssetsBaseURL,
		Production:    cfg.MidtransProduction,
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, body)
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
