// Package txstore persists the single lastTransaction record used to resume
// an interrupted checkout. Writers are last-writer-wins.
package txstore

import (
	"context"
	"errors"
	"time"

	"tradejournal/internal/models"
)

var ErrNotFound = errors.New("no stored transaction")

type Record struct {
	OrderID       string                   `json:"orderId" db:"order_id"`
	Plan          models.Plan              `json:"plan" db:"plan"`
	Token         string                   `json:"token" db:"token"`
	InvoiceNumber string                   `json:"invoiceNumber" db:"invoice_number"`
	Timestamp     time.Time                `json:"timestamp" db:"created_at"`
	Status        models.TransactionStatus `json:"status" db:"status"`
}

// Fresh reports whether the stored token is younger than ttl.
func (r Record) Fresh(now time.Time, ttl time.Duration) bool {
	return r.Token != "" && now.Sub(r.Timestamp) < ttl
}

type Store interface {
	Save(ctx context.Context, rec Record) error
	Load(ctx context.Context) (*Record, error)
	Clear(ctx context.Context) error
}
