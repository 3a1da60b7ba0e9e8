package expense

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
)

func newTestService(t *testing.T) *service.ExpenseService {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "expenses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.InitSchema(context.Background()))

	delegator := operator.NewOperatorDelegator(store, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	return service.NewExpenseService(store, delegator)
}

func TestAddExpense_Success(t *testing.T) {
	svc := newTestService(t)
	handler := AddExpenseHandler(svc)

	_, out, err := handler(context.Background(), nil, AddExpenseInput{
		Date: "2024-01-05", Amount: 12.50, Category: "Food",
	})

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, int64(1), out.ID)
	assert.Empty(t, out.Error)
}

func TestAddExpense_ValidationFailureIsStructured(t *testing.T) {
	svc := newTestService(t)
	handler := AddExpenseHandler(svc)

	_, out, err := handler(context.Background(), nil, AddExpenseInput{
		Date: "2024-01-05", Amount: -1, Category: "Food",
	})

	// Faults never cross the dispatcher boundary; the result carries them.
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, string(service.KindValidation), out.Error)
	assert.NotEmpty(t, out.Message)
}

func TestListExpenses_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	add := AddExpenseHandler(svc)
	list := ListExpensesHandler(svc)

	_, added, err := add(context.Background(), nil, AddExpenseInput{
		Date: "2024-01-05", Amount: 12.50, Category: "Food",
	})
	require.NoError(t, err)
	require.True(t, added.Success)

	_, out, err := list(context.Background(), nil, ListExpensesInput{
		StartDate: "2024-01-01", EndDate: "2024-01-31",
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, 1, out.Count)
	require.Len(t, out.Expenses, 1)
	assert.Equal(t, added.ID, out.Expenses[0].ID)
	assert.Equal(t, "2024-01-05", out.Expenses[0].Date)
	assert.Equal(t, 12.5, out.Expenses[0].Amount)
	assert.Equal(t, "USD", out.Expenses[0].Currency)
	assert.Equal(t, "Food", out.Expenses[0].Category)
	assert.NotEmpty(t, out.Expenses[0].CreatedAt)
}

func TestUpdateExpense_NegativeAmountLeavesRowUntouched(t *testing.T) {
	svc := newTestService(t)
	add := AddExpenseHandler(svc)
	update := UpdateExpenseHandler(svc)
	list := ListExpensesHandler(svc)

	_, added, err := add(context.Background(), nil, AddExpenseInput{
		Date: "2024-01-05", Amount: 12.50, Category: "Food",
	})
	require.NoError(t, err)

	amount := -5.0
	_, out, err := update(context.Background(), nil, UpdateExpenseInput{ID: added.ID, Amount: &amount})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, string(service.KindValidation), out.Error)

	_, listed, err := list(context.Background(), nil, ListExpensesInput{})
	require.NoError(t, err)
	require.Len(t, listed.Expenses, 1)
	assert.Equal(t, 12.5, listed.Expenses[0].Amount)
}

func TestUpdateExpense_NoFields(t *testing.T) {
	svc := newTestService(t)
	add := AddExpenseHandler(svc)
	update := UpdateExpenseHandler(svc)

	_, added, err := add(context.Background(), nil, AddExpenseInput{
		Date: "2024-01-05", Amount: 12.50, Category: "Food",
	})
	require.NoError(t, err)

	_, out, err := update(context.Background(), nil, UpdateExpenseInput{ID: added.ID})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, "no fields to update", out.Message)
}

func TestUpdateExpense_NotFoundDistinctFromValidation(t *testing.T) {
	svc := newTestService(t)
	update := UpdateExpenseHandler(svc)

	notes := "missing"
	_, out, err := update(context.Background(), nil, UpdateExpenseInput{ID: 999, Notes: &notes})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, string(service.KindNotFound), out.Error)
}

func TestDeleteExpense_NotFoundOnEmptyTable(t *testing.T) {
	svc := newTestService(t)
	handler := DeleteExpenseHandler(svc)

	_, out, err := handler(context.Background(), nil, DeleteExpenseInput{ID: 999})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, string(service.KindNotFound), out.Error)
	assert.Contains(t, out.Message, "not found")
}

func TestSummary_TotalsAndBreakdown(t *testing.T) {
	svc := newTestService(t)
	add := AddExpenseHandler(svc)
	summary := SummaryHandler(svc)

	for _, input := range []AddExpenseInput{
		{Date: "2024-01-05", Amount: 12.50, Category: "Food", Subcategory: "Groceries"},
		{Date: "2024-01-06", Amount: 7.25, Category: "Food", Subcategory: "Groceries"},
		{Date: "2024-01-07", Amount: 40.00, Category: "Housing", Subcategory: "Rent"},
	} {
		_, out, err := add(context.Background(), nil, input)
		require.NoError(t, err)
		require.True(t, out.Success)
	}

	_, out, err := summary(context.Background(), nil, SummaryInput{})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, 59.75, out.Total)
	require.Len(t, out.ByCategory, 2)
	assert.Equal(t, "Housing", out.ByCategory[0].Category)
	assert.Equal(t, 40.00, out.ByCategory[0].Total)
	assert.Equal(t, "Food", out.ByCategory[1].Category)
	assert.Equal(t, 19.75, out.ByCategory[1].Total)
}

func TestSummary_EmptyTable(t *testing.T) {
	svc := newTestService(t)
	handler := SummaryHandler(svc)

	_, out, err := handler(context.Background(), nil, SummaryInput{})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, 0.0, out.Total)
	assert.Empty(t, out.ByCategory)
}
