package txstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const recordID = 1

type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Save(ctx context.Context, rec Record) error {
	query := s.db.Rebind(`INSERT INTO last_transaction (id, order_id, plan, token, invoice_number, created_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			order_id = excluded.order_id,
			plan = excluded.plan,
			token = excluded.token,
			invoice_number = excluded.invoice_number,
			created_at = excluded.created_at,
			status = excluded.status`)

	_, err := s.db.ExecContext(ctx, query,
		recordID, rec.OrderID, rec.Plan, rec.Token, rec.InvoiceNumber, rec.Timestamp, rec.Status)
	if err != nil {
		return fmt.Errorf("save last transaction: %w", err)
	}
	return nil
}

func (s *SQLStore) Load(ctx context.Context) (*Record, error) {
	rec := &Record{}
	query := s.db.Rebind(`SELECT order_id, plan, token, invoice_number, created_at, status
		FROM last_transaction WHERE id = ?`)
	err := s.db.GetContext(ctx, rec, query, recordID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load last transaction: %w", err)
	}
	return rec, nil
}

func (s *SQLStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM last_transaction WHERE id = ?`), recordID)
	if err != nil {
		return fmt.Errorf("clear last transaction: %w", err)
	}
	return nil
}
