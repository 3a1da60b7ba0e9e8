package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// UpdateExpense rewrites the supplied columns of one expense row. A miss
// surfaces as expense.ErrNotFound.
type UpdateExpense struct {
	ID     int64
	Update *expense.ExpenseUpdate
}

func (a *UpdateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Expense.Update(ctx, a.ID, a.Update)
}
