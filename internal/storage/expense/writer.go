package expense

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotFound reports an id-targeted mutation that matched no row.
var ErrNotFound = errors.New("expense not found")

// ErrNoColumns reports an update carrying no columns. Callers are expected
// to reject the empty case before reaching storage.
var ErrNoColumns = errors.New("no columns to update")

// Writer performs mutations against the expenses table.
type Writer struct {
	exec Execer
}

// NewWriter creates a Writer bound to the given executor.
func NewWriter(exec Execer) *Writer {
	return &Writer{exec: exec}
}

// Insert creates one expense row with fresh timestamps and returns its
// assigned id.
func (w *Writer) Insert(ctx context.Context, create *ExpenseCreate) (int64, error) {
	now := time.Now().UTC().Format(timeFormat)
	result, err := w.exec.ExecContext(ctx, `
INSERT INTO expenses (date, amount, currency, category, subcategory, payment_method, merchant, notes, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		create.Date, create.Amount.InexactFloat64(), create.Currency,
		create.Category, create.Subcategory, create.PaymentMethod,
		create.Merchant, create.Notes, now, now)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update rewrites only the supplied columns and always refreshes updated_at.
// Returns ErrNotFound when no row matched the id.
func (w *Writer) Update(ctx context.Context, id int64, update *ExpenseUpdate) error {
	set, args := update.assignments()
	if len(set) == 0 {
		return ErrNoColumns
	}

	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(timeFormat), id)

	result, err := w.exec.ExecContext(ctx,
		"UPDATE expenses SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row with the matching id. Returns ErrNotFound on zero
// rows affected.
func (w *Writer) Delete(ctx context.Context, id int64) error {
	result, err := w.exec.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// assignments maps present fields to "column = ?" fragments. The column names
// are a fixed allowlist; caller input only ever reaches the bound parameters,
// never the statement text.
func (u *ExpenseUpdate) assignments() ([]string, []any) {
	if u == nil {
		return nil, nil
	}

	var set []string
	var args []any
	if u.Date != nil {
		set = append(set, "date = ?")
		args = append(args, *u.Date)
	}
	if u.Amount != nil {
		set = append(set, "amount = ?")
		args = append(args, u.Amount.InexactFloat64())
	}
	if u.Currency != nil {
		set = append(set, "currency = ?")
		args = append(args, *u.Currency)
	}
	if u.Category != nil {
		set = append(set, "category = ?")
		args = append(args, *u.Category)
	}
	if u.Subcategory != nil {
		set = append(set, "subcategory = ?")
		args = append(args, *u.Subcategory)
	}
	if u.PaymentMethod != nil {
		set = append(set, "payment_method = ?")
		args = append(args, *u.PaymentMethod)
	}
	if u.Merchant != nil {
		set = append(set, "merchant = ?")
		args = append(args, *u.Merchant)
	}
	if u.Notes != nil {
		set = append(set, "notes = ?")
		args = append(args, *u.Notes)
	}
	return set, args
}
