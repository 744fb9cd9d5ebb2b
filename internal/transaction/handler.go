package transaction

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"tradejournal/internal/api"
	"tradejournal/internal/models"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo: repo,
	}
}

type History struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
	Limit        int                  `json:"limit"`
	Offset       int                  `json:"offset"`
}

// @Summary      Transaction history
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int    false "Page size" default(50)
// @Param        offset query int    false "Offset" default(0)
// @Param        status query string false "Filter by status, e.g. PAID"
// @Success      200 {object} transaction.History
// @Router       /transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	txs, err := h.repo.UserTransactions(c.Request.Context())
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}

	if status := c.Query("status"); status != "" {
		want := models.NormalizeStatus(status)
		filtered := txs[:0]
		for _, tx := range txs {
			if tx.Status == want {
				filtered = append(filtered, tx)
			}
		}
		txs = filtered
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})

	page := []models.Transaction{}
	if offset < len(txs) {
		end := offset + limit
		if end > len(txs) {
			end = len(txs)
		}
		page = txs[offset:end]
	}

	c.JSON(http.StatusOK, History{
		Transactions: page,
		Total:        len(txs),
		Limit:        limit,
		Offset:       offset,
	})
}

// @Summary      Invoice for a transaction
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        orderId path string true "Order ID"
// @Success      200 {object} models.Invoice
// @Failure      404 {object} api.ErrorResponse
// @Router       /transactions/{orderId}/invoice [get]
func (h *Handler) GetInvoice(c *gin.Context) {
	inv, err := h.repo.Invoice(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// @Summary      Download invoice PDF
// @Tags         transactions
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        orderId path string true "Order ID"
// @Success      200 {file} file
// @Failure      404 {object} api.ErrorResponse
// @Router       /transactions/{orderId}/invoice.pdf [get]
func (h *Handler) DownloadInvoice(c *gin.Context) {
	orderID := c.Param("orderId")
	data, contentType, err := h.repo.InvoicePDF(c.Request.Context(), orderID)
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}
	if contentType == "" || !strings.Contains(contentType, "pdf") {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", `attachment; filename="invoice-`+orderID+`.pdf"`)
	c.Data(http.StatusOK, contentType, data)
}
