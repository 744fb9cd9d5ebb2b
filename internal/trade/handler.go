package trade

import (
	"errors"
	"net/http"
	"time"

	"tradejournal/internal/api"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidDate):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case api.RespondUpgradeRequired(c, err):
	default:
		api.RespondBackendError(c, err)
	}
}

// @Summary      List trades
// @Tags         trades
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Trade
// @Failure      401 {object} api.ErrorResponse
// @Failure      502 {object} api.ErrorResponse
// @Router       /trades [get]
func (h *Handler) ListTrades(c *gin.Context) {
	trades, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trades)
}

// @Summary      Record a trade
// @Tags         trades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body trade.TradeRequest true "Trade payload"
// @Success      201 {object} models.Trade
// @Failure      400 {object} api.ErrorResponse
// @Router       /trades [post]
func (h *Handler) CreateTrade(c *gin.Context) {
	var req TradeRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// @Summary      Update a trade
// @Tags         trades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Trade ID"
// @Param        request body trade.TradeRequest true "Trade payload"
// @Success      200 {object} models.Trade
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trades/{id} [put]
func (h *Handler) UpdateTrade(c *gin.Context) {
	var req TradeRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	t, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary      Delete a trade
// @Tags         trades
// @Security     BearerAuth
// @Param        id path string true "Trade ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trades/{id} [delete]
func (h *Handler) DeleteTrade(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Trade deleted"})
}

// @Summary      Export trades as xlsx
// @Description  Pro feature. Free plans receive the upgrade prompt.
// @Tags         trades
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200 {file} file
// @Failure      403 {object} api.UpgradeRequiredResponse
// @Router       /trades/export [get]
func (h *Handler) ExportTrades(c *gin.Context) {
	buf, err := h.service.Export(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	filename := "trades-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// @Summary      Performance view
// @Tags         performance
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} trade.PerformanceView
// @Router       /performance [get]
func (h *Handler) Performance(c *gin.Context) {
	view, err := h.service.Performance(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Analytics view
// @Tags         performance
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} trade.AnalyticsView
// @Router       /analytics [get]
func (h *Handler) Analytics(c *gin.Context) {
	view, err := h.service.Analytics(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Dashboard view
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} trade.DashboardView
// @Router       /dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	view, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
