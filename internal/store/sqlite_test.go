package store

import (
	"path/filepath"
	"testing"

	"github.com/theirongolddev/spend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "expenses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLite_ExistsBeforeSave(t *testing.T) {
	db := openTestDB(t)
	ok, err := db.Exists()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLite_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Save(sampleLedger()))

	got, err := db.Load()
	require.NoError(t, err)
	require.Len(t, got.Expenses, 2)
	assert.Equal(t, 4, got.NextID)
	assert.Equal(t, 1, got.Expenses[0].ID)
	assert.Equal(t, 3, got.Expenses[1].ID)
	assert.Equal(t, `Taxi "airport"`, got.Expenses[1].Description)
	assert.Equal(t, "12.345", got.Expenses[1].Amount.String())
	assert.True(t, got.Budgets[model.YearMonth{Year: 2025, Month: 8}].Equal(decimal.NewFromInt(100)))
}

func TestSQLite_SaveReplacesEverything(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Save(sampleLedger()))

	smaller := model.NewLedger()
	smaller.NextID = 9
	require.NoError(t, db.Save(smaller))

	n, err := db.ExpenseCount()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	got, err := db.Load()
	require.NoError(t, err)
	assert.Equal(t, 9, got.NextID)
	assert.Empty(t, got.Budgets)
}
