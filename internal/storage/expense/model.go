package expense

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Schema creates the expenses table and its date index. Safe to execute on
// every startup; AUTOINCREMENT keeps ids monotonic and never reused, even
// after deletes.
const Schema = `
CREATE TABLE IF NOT EXISTS expenses (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    date           TEXT NOT NULL,
    amount         REAL NOT NULL CHECK (amount >= 0),
    currency       TEXT NOT NULL DEFAULT 'USD' CHECK (length(currency) = 3),
    category       TEXT NOT NULL,
    subcategory    TEXT NOT NULL DEFAULT '',
    payment_method TEXT NOT NULL DEFAULT '',
    merchant       TEXT NOT NULL DEFAULT '',
    notes          TEXT NOT NULL DEFAULT '',
    created_at     TEXT NOT NULL,
    updated_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses (date);
`

// timeFormat is the stored layout for created_at and updated_at.
const timeFormat = time.RFC3339Nano

// DateFormat is the calendar-date layout for the date column and filters.
const DateFormat = "2006-01-02"

const (
	// DefaultLimit applies when a listing does not request a limit.
	DefaultLimit = 100
	// MaxLimit caps any requested limit to bound response size.
	MaxLimit = 1000
)

// Expense represents one stored expense row.
type Expense struct {
	ID            int64
	Date          string
	Amount        decimal.Decimal
	Currency      string
	Category      string
	Subcategory   string
	PaymentMethod string
	Merchant      string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ExpenseCreate is the input for inserting a new expense. Date must already
// be normalized to YYYY-MM-DD and Currency to a 3-letter uppercase code.
type ExpenseCreate struct {
	Date          string
	Amount        decimal.Decimal
	Currency      string
	Category      string
	Subcategory   string
	PaymentMethod string
	Merchant      string
	Notes         string
}

// ExpenseUpdate carries the subset of columns to rewrite. Nil fields are
// left untouched.
type ExpenseUpdate struct {
	Date          *string
	Amount        *decimal.Decimal
	Currency      *string
	Category      *string
	Subcategory   *string
	PaymentMethod *string
	Merchant      *string
	Notes         *string
}

// Empty reports whether the update carries no columns.
func (u *ExpenseUpdate) Empty() bool {
	set, _ := u.assignments()
	return len(set) == 0
}

// ExpenseFilter bounds a listing by inclusive date range and row count.
// Empty date bounds are open-ended; Limit <= 0 uses DefaultLimit.
type ExpenseFilter struct {
	StartDate string
	EndDate   string
	Limit     int
}

// CategoryTotal is one (category, subcategory) subtotal in the summary.
type CategoryTotal struct {
	Category    string
	Subcategory string
	Total       decimal.Decimal
}

// Execer is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// readers and writers work both on the pooled handle and inside a
// transaction.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
