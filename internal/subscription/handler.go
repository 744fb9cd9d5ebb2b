package subscription

import (
	"errors"
	"net/http"

	"tradejournal/internal/api"
	"tradejournal/internal/featuregate"

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

// @Summary      Upgrade page
// @Description  Plan catalog with prices in IDR and the feature gates for the current plan.
// @Tags         subscription
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} subscription.UpgradeView
// @Router       /upgrade [get]
func (h *Handler) ListPlans(c *gin.Context) {
	view, err := h.service.Upgrade(c.Request.Context())
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Feature gate
// @Tags         subscription
// @Produce      json
// @Security     BearerAuth
// @Param        key path string true "Feature key"
// @Success      200 {object} subscription.FeatureView
// @Failure      404 {object} api.ErrorResponse
// @Router       /features/{key} [get]
func (h *Handler) GetFeature(c *gin.Context) {
	view, err := h.service.Feature(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, featuregate.ErrUnknownFeature) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Subscription details
// @Tags         subscription
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} subscription.DetailsView
// @Failure      502 {object} api.ErrorResponse
// @Router       /subscription/details [get]
func (h *Handler) Details(c *gin.Context) {
	view, err := h.service.Details(c.Request.Context())
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
