package expense

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expenses.db")
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(Schema)
	require.NoError(t, err)
	return db
}

func seedExpense(t *testing.T, db *sql.DB, date string, amount float64, category, subcategory string) int64 {
	t.Helper()
	writer := NewWriter(db)
	id, err := writer.Insert(context.Background(), &ExpenseCreate{
		Date:     date,
		Amount:   decimal.NewFromFloat(amount),
		Currency: "USD",
		Category: category, Subcategory: subcategory,
	})
	require.NoError(t, err)
	return id
}

// -- Insert tests --

func TestInsert_AssignsMonotonicIDs(t *testing.T) {
	db := newTestDB(t)

	first := seedExpense(t, db, "2024-01-05", 12.50, "Food", "")
	second := seedExpense(t, db, "2024-01-06", 3.00, "Transport", "")

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestInsert_IDsNeverReused(t *testing.T) {
	db := newTestDB(t)
	writer := NewWriter(db)

	first := seedExpense(t, db, "2024-01-05", 12.50, "Food", "")
	require.NoError(t, writer.Delete(context.Background(), first))

	second := seedExpense(t, db, "2024-01-06", 3.00, "Transport", "")
	assert.Greater(t, second, first)
}

func TestInsert_SetsTimestamps(t *testing.T) {
	db := newTestDB(t)
	reader := NewReader(db)

	id := seedExpense(t, db, "2024-01-05", 12.50, "Food", "")

	row, err := reader.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.False(t, row.CreatedAt.IsZero())
	assert.Equal(t, row.CreatedAt, row.UpdatedAt)
}

// -- List tests --

func TestList_OrdersByDateThenIDDescending(t *testing.T) {
	db := newTestDB(t)
	reader := NewReader(db)

	older := seedExpense(t, db, "2024-01-04", 1.00, "Food", "")
	sameDayFirst := seedExpense(t, db, "2024-01-05", 2.00, "Food", "")
	sameDaySecond := seedExpense(t, db, "2024-01-05", 3.00, "Food", "")

	rows, err := reader.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, sameDaySecond, rows[0].ID)
	assert.Equal(t, sameDayFirst, rows[1].ID)
	assert.Equal(t, older, rows[2].ID)
}

func TestList_FiltersInclusiveDateRange(t *testing.T) {
	db := newTestDB(t)
	reader := NewReader(db)

	seedExpense(t, db, "2023-12-31", 1.00, "Food", "")
	inRange := seedExpense(t, db, "2024-01-01", 2.00, "Food", "")
	alsoInRange := seedExpense(t, db, "2024-01-31", 3.00, "Food", "")
	seedExpense(t, db, "2024-02-01", 4.00, "Food", "")

	rows, err := reader.List(context.Background(), &ExpenseFilter{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, alsoInRange, rows[0].ID)
	assert.Equal(t, inRange, rows[1].ID)
}

func TestList_AppliesLimit(t *testing.T) {
	db := newTestDB(t)
	reader := NewReader(db)

	for i := 0; i < 5; i++ {
		seedExpense(t, db, "2024-01-05", 1.00, "Food", "")
	}

	rows, err := reader.List(context.Background(), &ExpenseFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestList_CapsRequestedLimit(t *testing.T) {
	// MaxLimit only bounds the SQL LIMIT argument; verify the oversized
	// request still succeeds and returns everything below the ceiling.
	db := newTestDB(t)
	reader := NewReader(db)

	seedExpense(t, db, "2024-01-05", 1.00, "Food", "")

	rows, err := reader.List(context.Background(), &ExpenseFilter{Limit: MaxLimit * 10})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

// -- Update tests --

func TestUpdate_RewritesOnlySuppliedColumns(t *testing.T) {
	db := newTestDB(t)
	reader := NewReader(db)
	writer := NewWriter(db)

	id := seedExpense(t, db, "2024-01-05", 12.50, "Food", "Groceries")
	before, err := reader.FindByID(context.Background(), id)
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	amount := decimal.NewFromFloat(20.00)
	err = writer.Update(context.Background(), id, &ExpenseUpdate{Amount: &amount})
	require.NoError(t, err)

	after, err := reader.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, after)

	assert.True(t, after.Amount.Equal(amount))
	assert.Equal(t, "Food", after.Category)
	assert.Equal(t, "Groceries", after.Subcategory)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestUpdate_NotFound(t *testing.T) {
	db := newTestDB(t)
	writer := NewWriter(db)

	notes := "missing"
	err := writer.Update(context.Background(), 999, &ExpenseUpdate{Notes: &notes})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_NoColumns(t *testing.T) {
	db := newTestDB(t)
	writer := NewWriter(db)

	id := seedExpense(t, db, "2024-01-05", 12.50, "Food", "")
	err := writer.Update(context.Background(), id, &ExpenseUpdate{})
	assert.ErrorIs(t, err, ErrNoColumns)
}

// -- Delete tests --

func TestDelete_RemovesRow(t *testing.T) {
	db := newTestDB(t)
	reader := NewReader(db)
	writer := NewWriter(db)

	id := seedExpense(t, db, "2024-01-05", 12.50, "Food", "")
	require.NoError(t, writer.Delete(context.Background(), id))

	row, err := reader.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, row)
}

func TestDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	writer := NewWriter(db)

	err := writer.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

// -- Summary tests --

func TestSumTotal_EmptyTableIsZero(t *testing.T) {
	db := newTestDB(t)
	reader := NewReader(db)

	total, err := reader.SumTotal(context.Background())
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestSumByCategory_OrdersBySubtotalDescending(t *testing.T) {
	db := newTestDB(t)
	reader := NewReader(db)

	seedExpense(t, db, "2024-01-05", 10.00, "Food", "Groceries")
	seedExpense(t, db, "2024-01-06", 5.00, "Food", "Groceries")
	seedExpense(t, db, "2024-01-07", 40.00, "Housing", "Rent")
	seedExpense(t, db, "2024-01-08", 2.50, "Transport", "")

	breakdown, err := reader.SumByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, breakdown, 3)

	assert.Equal(t, "Housing", breakdown[0].Category)
	assert.True(t, breakdown[0].Total.Equal(decimal.NewFromFloat(40.00)))
	assert.Equal(t, "Food", breakdown[1].Category)
	assert.True(t, breakdown[1].Total.Equal(decimal.NewFromFloat(15.00)))
	assert.Equal(t, "Transport", breakdown[2].Category)
	assert.Equal(t, "", breakdown[2].Subcategory)
}

func TestSumByCategory_ExcludesZeroSubtotals(t *testing.T) {
	db := newTestDB(t)
	reader := NewReader(db)

	seedExpense(t, db, "2024-01-05", 0, "Food", "Groceries")
	seedExpense(t, db, "2024-01-06", 9.99, "Transport", "")

	breakdown, err := reader.SumByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, breakdown, 1)
	assert.Equal(t, "Transport", breakdown[0].Category)
}
