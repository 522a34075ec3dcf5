package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

type testConfig struct {
	driver string
	path   string
}

func (c testConfig) Driver() string   { return c.driver }
func (c testConfig) Path() string     { return c.path }
func (c testConfig) Host() string     { return "" }
func (c testConfig) Username() string { return "" }
func (c testConfig) Password() string { return "" }
func (c testConfig) Database() string { return "" }

func backends(t *testing.T) map[string]Storage {
	t.Helper()

	sqlite, err := New(testConfig{driver: DriverSQLite, path: filepath.Join(t.TempDir(), "db", "expenses.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	memory, err := New(testConfig{driver: DriverMemory})
	require.NoError(t, err)

	return map[string]Storage{
		DriverSQLite: sqlite,
		DriverMemory: memory,
	}
}

func Test_Storage_InsertThenGetAll_ShouldRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			full := expense.Record{
				ID:       1,
				Name:     "Lunch",
				Amount:   expense.Amount(120.5),
				Date:     "2025-03-01",
				Time:     &expense.TimeOfDay{Hour: 13, Minute: 5},
				Category: "Food",
			}
			sparse := expense.Record{ID: 2, Date: "2025-03-02"}

			require.NoError(t, s.InsertExpense(ctx, full))
			require.NoError(t, s.InsertExpense(ctx, sparse))

			all, err := s.GetAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, []expense.Record{full, sparse}, all)
		})
	}
}

func Test_Storage_InsertDuplicateID_ShouldFail(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.InsertExpense(ctx, expense.Record{ID: 7, Date: "2025-03-01"}))
			err := s.InsertExpense(ctx, expense.Record{ID: 7, Date: "2025-03-02"})
			assert.ErrorIs(t, err, ErrAlreadyExists)
		})
	}
}

func Test_Storage_Totals(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, e := range []expense.Record{
				{ID: 1, Amount: expense.Amount(100), Date: "2025-03-01"},
				{ID: 2, Amount: expense.Amount(50), Date: "2025-03-01"},
				{ID: 3, Amount: expense.Amount(30), Date: "2025-03-02"},
				{ID: 4, Date: "2025-03-02"},
				{ID: 5, Amount: expense.Amount(999), Date: "2025-04-01"},
				{ID: 6, Amount: expense.Amount(5), Date: "2025-3-1"},
				{ID: 7, Amount: expense.Amount(7), Date: "2025-03-99"},
				{ID: 8, Amount: expense.Amount(9), Date: "2025-03-xx"},
			} {
				require.NoError(t, s.InsertExpense(ctx, e))
			}

			daily, err := s.DailyTotal(ctx, "2025-03-01")
			require.NoError(t, err)
			assert.Equal(t, 150.0, daily)

			empty, err := s.DailyTotal(ctx, "2025-03-03")
			require.NoError(t, err)
			assert.Equal(t, 0.0, empty)

			monthly, err := s.MonthlyTotal(ctx, 3, 2025)
			require.NoError(t, err)
			assert.Equal(t, 180.0, monthly)
		})
	}
}

func Test_Storage_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			rec := expense.Record{ID: 1, Name: "Taxi", Amount: expense.Amount(10), Date: "2025-03-01", Category: "Transport"}
			require.NoError(t, s.InsertExpense(ctx, rec))

			rec.Amount = nil
			rec.Name = ""
			require.NoError(t, s.UpdateExpense(ctx, rec))

			got, err := s.GetExpense(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, rec, got)

			assert.ErrorIs(t, s.UpdateExpense(ctx, expense.Record{ID: 99}), ErrNotFound)

			require.NoError(t, s.DeleteExpense(ctx, 1))
			_, err = s.GetExpense(ctx, 1)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.ErrorIs(t, s.DeleteExpense(ctx, 1), ErrNotFound)
		})
	}
}

func Test_Storage_FindByName(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.InsertExpense(ctx, expense.Record{ID: 1, Name: "coffee beans", Date: "2025-03-01"}))
			require.NoError(t, s.InsertExpense(ctx, expense.Record{ID: 2, Name: "tea", Date: "2025-03-01"}))

			got, err := s.FindByName(ctx, "coffee%")
			require.NoError(t, err)
			assert.Equal(t, int64(1), got.ID)

			_, err = s.FindByName(ctx, "juice%")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func Test_Storage_Categories(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			food := category.Record{Name: "Food", Icon: "🍴", Color: 0xFFA5D6A7}
			bills := category.Record{Name: "Bills", Icon: "🧾", Color: 0xFFFFCC80}
			require.NoError(t, s.InsertCategory(ctx, food))
			require.NoError(t, s.InsertCategory(ctx, bills))
			assert.ErrorIs(t, s.InsertCategory(ctx, food), ErrAlreadyExists)

			cats, err := s.GetCategories(ctx)
			require.NoError(t, err)
			assert.Equal(t, []category.Record{bills, food}, cats)

			got, err := s.GetCategory(ctx, "Food")
			require.NoError(t, err)
			assert.Equal(t, food, got)

			require.NoError(t, s.DeleteCategory(ctx, "Food"))
			_, err = s.GetCategory(ctx, "Food")
			assert.ErrorIs(t, err, ErrNotFound)
			assert.ErrorIs(t, s.DeleteCategory(ctx, "Food"), ErrNotFound)
		})
	}
}

func Test_Storage_OnboardedFlag(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			onboarded, err := s.IsOnboarded(ctx)
			require.NoError(t, err)
			assert.False(t, onboarded)

			require.NoError(t, s.SetOnboarded(ctx))
			require.NoError(t, s.SetOnboarded(ctx))

			onboarded, err = s.IsOnboarded(ctx)
			require.NoError(t, err)
			assert.True(t, onboarded)
		})
	}
}

func Test_RunMigrations_ShouldBeIdempotent(t *testing.T) {
	cfg := testConfig{driver: DriverSQLite, path: filepath.Join(t.TempDir(), "expenses.db")}
	require.NoError(t, RunMigrations(cfg))
	require.NoError(t, RunMigrations(cfg))
}

func Test_New_ShouldRejectUnknownDriver(t *testing.T) {
	_, err := New(testConfig{driver: "oracle"})
	assert.Error(t, err)
}
