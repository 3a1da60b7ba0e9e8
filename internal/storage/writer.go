package storage

import (
	"database/sql"

	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// Writer bundles per-table writers bound to a single transaction.
type Writer struct {
	tx      *sql.Tx
	Expense *expense.Writer
}

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx:      tx,
		Expense: expense.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
