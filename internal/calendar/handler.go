package calendar

import (
	"errors"
	"net/http"

	"tradejournal/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, ErrInvalidDate) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if api.RespondUpgradeRequired(c, err) {
		return
	}
	api.RespondBackendError(c, err)
}

// @Summary      List calendar events
// @Description  Includes the monthly count and, on free plans, the cap.
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} calendar.CalendarView
// @Router       /calendar/events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	view, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Create a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body calendar.EventRequest true "Event payload"
// @Success      201 {object} models.CalendarEvent
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.UpgradeRequiredResponse
// @Router       /calendar/events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	var req EventRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	ev, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// @Summary      Update a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Param        request body calendar.EventRequest true "Event payload"
// @Success      200 {object} models.CalendarEvent
// @Router       /calendar/events/{id} [put]
func (h *Handler) UpdateEvent(c *gin.Context) {
	var req EventRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	ev, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// @Summary      Delete a calendar event
// @Tags         calendar
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Success      200 {object} api.MessageResponse
// @Router       /calendar/events/{id} [delete]
func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Event deleted"})
}

// @Summary      Toggle event completion
// @Tags         calendar
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Success      200 {object} models.CalendarEvent
// @Router       /calendar/events/{id}/toggle [patch]
func (h *Handler) ToggleEvent(c *gin.Context) {
	ev, err := h.service.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}
