package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

const defaultCurrency = "USD"

// ExpenseService handles expense business logic. Reads go straight to
// storage; mutations are dispatched through the operator so each runs in its
// own transaction on the write queue.
type ExpenseService struct {
	storage  *storage.Storage
	operator *operator.OperatorDelegator
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage, op *operator.OperatorDelegator) *ExpenseService {
	return &ExpenseService{storage: store, operator: op}
}

// CreateExpense validates the input, inserts one row, and returns the
// assigned id. Validation failures never reach storage.
func (s *ExpenseService) CreateExpense(ctx context.Context, create ExpenseCreate) (int64, error) {
	date, err := normalizeDate(create.Date)
	if err != nil {
		return 0, err
	}
	if create.Amount.IsNegative() {
		return 0, NewValidationError("amount must be >= 0, got %s", create.Amount)
	}
	currency, err := normalizeCurrency(create.Currency)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(create.Category) == "" {
		return 0, NewValidationError("category is required")
	}

	action := &actions.CreateExpense{
		Create: &expense.ExpenseCreate{
			Date:          date,
			Amount:        create.Amount,
			Currency:      currency,
			Category:      create.Category,
			Subcategory:   create.Subcategory,
			PaymentMethod: create.PaymentMethod,
			Merchant:      create.Merchant,
			Notes:         create.Notes,
		},
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, NewStorageError("insert expense", err)
	}
	return action.ID, nil
}

// ListExpenses returns expenses in the inclusive date range, newest first.
// Empty bounds are open-ended; limit <= 0 uses the default and every limit is
// capped by the storage ceiling.
func (s *ExpenseService) ListExpenses(ctx context.Context, startDate, endDate string, limit int) ([]Expense, error) {
	filter := &expense.ExpenseFilter{Limit: limit}
	if startDate != "" {
		date, err := normalizeDate(startDate)
		if err != nil {
			return nil, NewValidationError("invalid start_date %q, expected YYYY-MM-DD", startDate)
		}
		filter.StartDate = date
	}
	if endDate != "" {
		date, err := normalizeDate(endDate)
		if err != nil {
			return nil, NewValidationError("invalid end_date %q, expected YYYY-MM-DD", endDate)
		}
		filter.EndDate = date
	}

	rows, err := s.storage.Expenses.List(ctx, filter)
	if err != nil {
		return nil, NewStorageError("list expenses", err)
	}

	result := make([]Expense, len(rows))
	for i, row := range rows {
		result[i] = Expense{
			ID:            row.ID,
			Date:          row.Date,
			Amount:        row.Amount,
			Currency:      row.Currency,
			Category:      row.Category,
			Subcategory:   row.Subcategory,
			PaymentMethod: row.PaymentMethod,
			Merchant:      row.Merchant,
			Notes:         row.Notes,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		}
	}
	return result, nil
}

// UpdateExpense rewrites only the supplied fields and refreshes updated_at.
// An update carrying no fields is rejected without touching storage;
// a miss on id is reported as not found.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id int64, update ExpenseUpdate) error {
	upd := &expense.ExpenseUpdate{
		Category:      update.Category,
		Subcategory:   update.Subcategory,
		PaymentMethod: update.PaymentMethod,
		Merchant:      update.Merchant,
		Notes:         update.Notes,
	}
	if update.Date != nil {
		date, err := normalizeDate(*update.Date)
		if err != nil {
			return err
		}
		upd.Date = &date
	}
	if update.Amount != nil {
		if update.Amount.IsNegative() {
			return NewValidationError("amount must be >= 0, got %s", update.Amount)
		}
		upd.Amount = update.Amount
	}
	if update.Currency != nil {
		currency, err := normalizeCurrency(*update.Currency)
		if err != nil {
			return err
		}
		upd.Currency = &currency
	}
	if update.Category != nil && strings.TrimSpace(*update.Category) == "" {
		return NewValidationError("category must not be empty")
	}
	if upd.Empty() {
		return NewValidationError("no fields to update")
	}

	action := &actions.UpdateExpense{ID: id, Update: upd}
	if err := s.operator.Process(ctx, action); err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			return NewNotFoundError("expense %d not found", id)
		}
		return NewStorageError("update expense", err)
	}
	return nil
}

// DeleteExpense removes one expense by id.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64) error {
	action := &actions.DeleteExpense{ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			return NewNotFoundError("expense %d not found", id)
		}
		return NewStorageError("delete expense", err)
	}
	return nil
}

// Summarize computes the grand total across all expenses and the per
// (category, subcategory) breakdown, subtotals descending, zero subtotals
// excluded. Totals are rounded to 2 decimal places.
func (s *ExpenseService) Summarize(ctx context.Context) (*Summary, error) {
	total, err := s.storage.Expenses.SumTotal(ctx)
	if err != nil {
		return nil, NewStorageError("sum expenses", err)
	}
	byCategory, err := s.storage.Expenses.SumByCategory(ctx)
	if err != nil {
		return nil, NewStorageError("sum expenses by category", err)
	}

	summary := &Summary{Total: total}
	for _, entry := range byCategory {
		summary.ByCategory = append(summary.ByCategory, CategoryTotal{
			Category:    entry.Category,
			Subcategory: entry.Subcategory,
			Total:       entry.Total,
		})
	}
	return summary, nil
}

// normalizeDate parses and re-formats a YYYY-MM-DD calendar date.
func normalizeDate(value string) (string, error) {
	parsed, err := time.Parse(expense.DateFormat, strings.TrimSpace(value))
	if err != nil {
		return "", NewValidationError("invalid date %q, expected YYYY-MM-DD", value)
	}
	return parsed.Format(expense.DateFormat), nil
}

// normalizeCurrency uppercases a 3-letter currency code, defaulting to USD
// when empty.
func normalizeCurrency(value string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(value))
	if code == "" {
		return defaultCurrency, nil
	}
	if len(code) != 3 {
		return "", NewValidationError("currency must be a 3-letter code, got %q", value)
	}
	return code, nil
}
