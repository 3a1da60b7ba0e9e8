package expense

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const expenseColumns = "id, date, amount, currency, category, subcategory, payment_method, merchant, notes, created_at, updated_at"

// Reader performs read queries against the expenses table.
type Reader struct {
	exec Execer
}

// NewReader creates a Reader bound to the given executor.
func NewReader(exec Execer) *Reader {
	return &Reader{exec: exec}
}

// List returns expenses matching the filter, most recent first. Same-day rows
// tie-break on id descending so newer inserts come first.
func (r *Reader) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	var where []string
	var args []any
	limit := DefaultLimit

	if filter != nil {
		if filter.StartDate != "" {
			where = append(where, "date >= ?")
			args = append(args, filter.StartDate)
		}
		if filter.EndDate != "" {
			where = append(where, "date <= ?")
			args = append(args, filter.EndDate)
		}
		if filter.Limit > 0 {
			limit = filter.Limit
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	query := "SELECT " + expenseColumns + " FROM expenses"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Expense
	for rows.Next() {
		row, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// FindByID retrieves an expense by primary key, or nil when absent.
func (r *Reader) FindByID(ctx context.Context, id int64) (*Expense, error) {
	row := r.exec.QueryRowContext(ctx, "SELECT "+expenseColumns+" FROM expenses WHERE id = ?", id)
	result, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SumTotal returns the grand total across all rows, 0 for an empty table,
// rounded to 2 decimal places.
func (r *Reader) SumTotal(ctx context.Context) (decimal.Decimal, error) {
	var total float64
	row := r.exec.QueryRowContext(ctx, "SELECT COALESCE(SUM(amount), 0) FROM expenses")
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(total).Round(2), nil
}

// SumByCategory returns per (category, subcategory) subtotals ordered by
// subtotal descending. Pairs summing to zero are excluded.
func (r *Reader) SumByCategory(ctx context.Context) ([]*CategoryTotal, error) {
	rows, err := r.exec.QueryContext(ctx, `
SELECT category, subcategory, SUM(amount) AS subtotal
FROM expenses
GROUP BY category, subcategory
HAVING SUM(amount) <> 0
ORDER BY subtotal DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*CategoryTotal
	for rows.Next() {
		var entry CategoryTotal
		var subtotal float64
		if err := rows.Scan(&entry.Category, &entry.Subcategory, &subtotal); err != nil {
			return nil, err
		}
		entry.Total = decimal.NewFromFloat(subtotal).Round(2)
		result = append(result, &entry)
	}
	return result, rows.Err()
}

// rowScanner abstracts *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*Expense, error) {
	var e Expense
	var amount float64
	var createdAt, updatedAt string

	err := row.Scan(&e.ID, &e.Date, &amount, &e.Currency, &e.Category,
		&e.Subcategory, &e.PaymentMethod, &e.Merchant, &e.Notes,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	e.Amount = decimal.NewFromFloat(amount)
	if e.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = time.Parse(timeFormat, updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
