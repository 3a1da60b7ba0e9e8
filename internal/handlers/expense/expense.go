// Package expense exposes the expense repository operations as MCP tools.
// Every handler returns a structured {success, ...} result; service failures
// are folded into the result, never surfaced as protocol faults.
package expense

import (
	"time"

	"github.com/carson-networks/expense-server/internal/service"
)

// Expense is the wire model returned by list_expenses.
type Expense struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Category      string  `json:"category"`
	Subcategory   string  `json:"subcategory,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Merchant      string  `json:"merchant,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func fromService(e service.Expense) Expense {
	return Expense{
		ID:            e.ID,
		Date:          e.Date,
		Amount:        e.Amount.InexactFloat64(),
		Currency:      e.Currency,
		Category:      e.Category,
		Subcategory:   e.Subcategory,
		PaymentMethod: e.PaymentMethod,
		Merchant:      e.Merchant,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.Format(time.RFC3339),
	}
}

// failureFields maps a service error to the error kind and message carried
// by a failed result.
func failureFields(err error) (kind, message string) {
	return string(service.KindOf(err)), service.MessageOf(err)
}
