package checkout

import (
	"context"
	"errors"
	"net/http"

	"tradejournal/internal/api"
	"tradejournal/internal/backend"
	"tradejournal/internal/models"
	"tradejournal/internal/txstore"

	"github.com/gin-gonic/gin"
)

// Service is the part of the Orchestrator the HTTP layer drives.
type Service interface {
	ApplyCoupon(plan models.Plan, code string) (Quote, error)
	Start(ctx context.Context, plan models.Plan, coupon string) (Snapshot, error)
	ConfirmDowngrade(ctx context.Context, confirmed bool) (Snapshot, error)
	HandleWidgetEvent(ctx context.Context, ev WidgetEvent) (Snapshot, error)
	Resume(ctx context.Context, orderID string) (Snapshot, error)
	Cancel(ctx context.Context, confirmed bool) (Snapshot, error)
	Retry(ctx context.Context) (Snapshot, error)
	CheckNow(ctx context.Context) (Snapshot, error)
	WatchPending(ctx context.Context, orderID string) (PendingView, error)
	LeavePending()
	Snapshot() Snapshot
}

type StartRequest struct {
	Plan       models.Plan `json:"plan" validate:"required,oneof=free pro lifetime"`
	CouponCode string      `json:"couponCode,omitempty" validate:"omitempty,max=32"`
}

type CouponRequest struct {
	Plan models.Plan `json:"plan" validate:"required,oneof=pro lifetime"`
	Code string      `json:"code" validate:"required,max=32"`
}

type ConfirmRequest struct {
	Confirmed bool `json:"confirmed"`
}

// ErrorResponse carries the checkout state alongside the failure.
type ErrorResponse struct {
	Error    string    `json:"error"`
	Checkout *Snapshot `json:"checkout,omitempty"`
}

type CouponResponse struct {
	Quote   Quote  `json:"quote"`
	Message string `json:"message,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownPlan), errors.Is(err, ErrInvalidCoupon):
		return http.StatusBadRequest
	case errors.Is(err, ErrCheckoutInProgress),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrTransactionTerminal):
		return http.StatusConflict
	case errors.Is(err, ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	case errors.Is(err, txstore.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDisposed):
		return http.StatusServiceUnavailable
	case backend.IsUnauthorized(err):
		return http.StatusUnauthorized
	}
	return http.StatusBadGateway
}

func errorMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return backend.Message(err)
	}
	return err.Error()
}

func (h *Handler) respond(c *gin.Context, snap Snapshot, err error) {
	if err == nil {
		c.JSON(http.StatusOK, snap)
		return
	}
	msg := snap.Message
	if msg == "" {
		msg = errorMessage(err)
	}
	resp := ErrorResponse{Error: msg}
	if snap.State != "" {
		resp.Checkout = &snap
	}
	c.JSON(statusFor(err), resp)
}

// @Summary      Start checkout
// @Description  Creates a Midtrans transaction for a paid plan, or opens the downgrade confirmation for free
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body checkout.StartRequest true "Plan and optional coupon"
// @Success      200 {object} checkout.Snapshot
// @Failure      400 {object} checkout.ErrorResponse
// @Failure      409 {object} checkout.ErrorResponse
// @Failure      502 {object} checkout.ErrorResponse
// @Router       /checkout [post]
func (h *Handler) Start(c *gin.Context) {
	var req StartRequest
	if !api.BindAndValidate(c, &req) {
		return
	}
	snap, err := h.service.Start(c.Request.Context(), req.Plan, req.CouponCode)
	h.respond(c, snap, err)
}

// @Summary      Apply a coupon
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body checkout.CouponRequest true "Plan and coupon code"
// @Success      200 {object} checkout.CouponResponse
// @Failure      400 {object} checkout.CouponResponse
// @Router       /checkout/coupon [post]
func (h *Handler) ApplyCoupon(c *gin.Context) {
	var req CouponRequest
	if !api.BindAndValidate(c, &req) {
		return
	}
	q, err := h.service.ApplyCoupon(req.Plan, req.Code)
	if err != nil {
		if errors.Is(err, ErrInvalidCoupon) {
			c.JSON(http.StatusBadRequest, CouponResponse{Quote: q, Message: InvalidCouponMessage})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, CouponResponse{Quote: q})
}

// @Summary      Confirm or dismiss a downgrade
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body checkout.ConfirmRequest true "Confirmation"
// @Success      200 {object} checkout.Snapshot
// @Failure      409 {object} checkout.ErrorResponse
// @Router       /checkout/downgrade/confirm [post]
func (h *Handler) ConfirmDowngrade(c *gin.Context) {
	var req ConfirmRequest
	if !api.BindAndValidate(c, &req) {
		return
	}
	snap, err := h.service.ConfirmDowngrade(c.Request.Context(), req.Confirmed)
	h.respond(c, snap, err)
}

// @Summary      Report a Snap widget callback
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body checkout.WidgetEvent true "Widget callback"
// @Success      200 {object} checkout.Snapshot
// @Failure      409 {object} checkout.ErrorResponse
// @Router       /checkout/events [post]
func (h *Handler) WidgetEvent(c *gin.Context) {
	var req WidgetEvent
	if !api.BindAndValidate(c, &req) {
		return
	}
	snap, err := h.service.HandleWidgetEvent(c.Request.Context(), req)
	h.respond(c, snap, err)
}

// @Summary      Resume a stored payment
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Param        orderId path string true "Order ID"
// @Success      200 {object} checkout.Snapshot
// @Failure      404 {object} checkout.ErrorResponse
// @Failure      409 {object} checkout.ErrorResponse
// @Router       /checkout/resume/{orderId} [post]
func (h *Handler) Resume(c *gin.Context) {
	snap, err := h.service.Resume(c.Request.Context(), c.Param("orderId"))
	h.respond(c, snap, err)
}

// @Summary      Resume the last stored payment
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} checkout.Snapshot
// @Failure      404 {object} checkout.ErrorResponse
// @Router       /checkout/resume [post]
func (h *Handler) ResumeLast(c *gin.Context) {
	snap, err := h.service.Resume(c.Request.Context(), "")
	h.respond(c, snap, err)
}

// @Summary      Cancel the open payment
// @Description  The first call without confirmed answers 428 and asks for confirmation
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body checkout.ConfirmRequest false "Confirmation"
// @Success      200 {object} checkout.Snapshot
// @Failure      409 {object} checkout.ErrorResponse
// @Failure      428 {object} checkout.ErrorResponse
// @Router       /checkout/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	var req ConfirmRequest
	if c.Request.ContentLength != 0 && !api.BindAndValidate(c, &req) {
		return
	}
	snap, err := h.service.Cancel(c.Request.Context(), req.Confirmed)
	h.respond(c, snap, err)
}

// @Summary      Retry status verification
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} checkout.Snapshot
// @Failure      409 {object} checkout.ErrorResponse
// @Router       /checkout/retry [post]
func (h *Handler) Retry(c *gin.Context) {
	snap, err := h.service.Retry(c.Request.Context())
	h.respond(c, snap, err)
}

// @Summary      Check payment status now
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} checkout.Snapshot
// @Failure      409 {object} checkout.ErrorResponse
// @Router       /checkout/check [post]
func (h *Handler) CheckNow(c *gin.Context) {
	snap, err := h.service.CheckNow(c.Request.Context())
	h.respond(c, snap, err)
}

// @Summary      Current checkout state
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} checkout.Snapshot
// @Router       /checkout/state [get]
func (h *Handler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Snapshot())
}

// @Summary      Pending payment page
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Param        orderId query string false "Order ID, defaults to the last stored transaction"
// @Success      200 {object} checkout.PendingView
// @Failure      404 {object} api.ErrorResponse
// @Router       /checkout/pending [get]
func (h *Handler) Pending(c *gin.Context) {
	view, err := h.service.WatchPending(c.Request.Context(), c.Query("orderId"))
	if err != nil {
		if errors.Is(err, txstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No pending payment found"})
			return
		}
		c.JSON(statusFor(err), api.ErrorResponse{Error: errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Leave the pending payment page
// @Description  Stops the background status check started by GET /checkout/pending
// @Tags         checkout
// @Security     BearerAuth
// @Success      204
// @Router       /checkout/pending [delete]
func (h *Handler) LeavePending(c *gin.Context) {
	h.service.LeavePending()
	c.Status(http.StatusNoContent)
}

// @Summary      Plan catalog
// @Tags         checkout
// @Produce      json
// @Success      200 {array} checkout.PlanInfo
// @Router       /plans [get]
func (h *Handler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, Plans())
}
