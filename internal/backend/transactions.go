package backend

import (
	"context"
	"net/http"
	"net/url"

	"tradejournal/internal/models"
)

type CreateTransactionRequest struct {
	Plan       models.Plan `json:"plan"`
	CouponCode string      `json:"couponCode,omitempty"`
	Discount   float64     `json:"discount"`
	Total      float64     `json:"total"`
}

func (c *Client) MySubscription(ctx context.Context) (*models.Subscription, error) {
	var out models.Subscription
	if err := c.do(ctx, http.MethodGet, "/subscription/my-subscription", "/subscription/my-subscription", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Downgrade moves the account back to the free plan.
func (c *Client) Downgrade(ctx context.Context) (*models.Subscription, error) {
	var out models.Subscription
	if err := c.do(ctx, http.MethodPost, "/subscription/downgrade", "/subscription/downgrade", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*models.CreatedTransaction, error) {
	var out models.CreatedTransaction
	if err := c.do(ctx, http.MethodPost, "/transactions/create", "/transactions/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TransactionStatus fetches the transaction and normalizes its status.
func (c *Client) TransactionStatus(ctx context.Context, orderID string) (*models.Transaction, error) {
	var out models.Transaction
	path := "/transactions/status/" + url.PathEscape(orderID)
	if err := c.do(ctx, http.MethodGet, "/transactions/status/:orderId", path, nil, &out); err != nil {
		return nil, err
	}
	out.Status = models.NormalizeStatus(string(out.Status))
	if out.OrderID == "" {
		out.OrderID = orderID
	}
	return &out, nil
}

func (c *Client) CancelTransaction(ctx context.Context, orderID string) error {
	path := "/transactions/" + url.PathEscape(orderID) + "/cancel"
	return c.do(ctx, http.MethodPost, "/transactions/:orderId/cancel", path, nil, nil)
}

func (c *Client) UserTransactions(ctx context.Context) ([]models.Transaction, error) {
	out := []models.Transaction{}
	if err := c.do(ctx, http.MethodGet, "/transactions/user", "/transactions/user", nil, &out); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Status = models.NormalizeStatus(string(out[i].Status))
	}
	return out, nil
}

func (c *Client) Invoice(ctx context.Context, orderID string) (*models.Invoice, error) {
	var out models.Invoice
	path := "/transactions/invoice/" + url.PathEscape(orderID)
	if err := c.do(ctx, http.MethodGet, "/transactions/invoice/:orderId", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InvoicePDF returns the raw PDF bytes and their content type.
func (c *Client) InvoicePDF(ctx context.Context, orderID string) ([]byte, string, error) {
	path := "/transactions/invoice-pdf/" + url.PathEscape(orderID)
	return c.doBinary(ctx, "/transactions/invoice-pdf/:orderId", path)
}
