package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage"
)

// DeleteExpense removes one expense row. A miss surfaces as
// expense.ErrNotFound.
type DeleteExpense struct {
	ID int64
}

func (a *DeleteExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Expense.Delete(ctx, a.ID)
}
