package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// CreateExpense inserts one expense row.
type CreateExpense struct {
	Create *expense.ExpenseCreate

	// ID carries the assigned id back to the caller after a successful
	// Perform.
	ID int64
}

func (a *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Expense.Insert(ctx, a.Create)
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}
