package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an expense in the service layer.
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

// ExpenseCreate is the caller-supplied input for CreateExpense, before
// validation. An empty Currency defaults to USD.
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

// ExpenseUpdate carries the optional fields for a partial update. Nil fields
// are left untouched.
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

// CategoryTotal is one (category, subcategory) subtotal in a Summary.
// Subcategory is empty for expenses recorded without one.
type CategoryTotal struct {
	Category    string
	Subcategory string
	Total       decimal.Decimal
}

// Summary aggregates all stored expenses: the grand total plus per-category
// subtotals ordered by subtotal descending.
type Summary struct {
	Total      decimal.Decimal
	ByCategory []CategoryTotal
}
