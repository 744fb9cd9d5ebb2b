package transaction

import (
	"context"

	"tradejournal/internal/models"
)

// Repository is the transaction half of the backend client.
type Repository interface {
	UserTransactions(ctx context.Context) ([]models.Transaction, error)
	Invoice(ctx context.Context, orderID string) (*models.Invoice, error)
	InvoicePDF(ctx context.Context, orderID string) ([]byte, string, error)
}
