package storage

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

const onboardedSetting = "onboarded"

// monthPrefix is the stored date prefix shared by every day of a month.
func monthPrefix(month, year int) string {
	return fmt.Sprintf("%04d-%02d-", year, month)
}

// inMonth reports whether date parses as a YYYY-MM-DD day of the month.
// Malformed dates belong to no month.
func inMonth(date string, month, year int) bool {
	d, ok := expense.Record{Date: date}.ParsedDate()
	return ok && int(d.Month()) == month && d.Year() == year
}

// Storage is what both backends provide. Consumers should declare the
// narrower interface they need.
type Storage interface {
	GetAll(ctx context.Context) ([]expense.Record, error)
	GetExpense(ctx context.Context, id int64) (expense.Record, error)
	FindByName(ctx context.Context, pattern string) (expense.Record, error)
	DailyTotal(ctx context.Context, date string) (float64, error)
	MonthlyTotal(ctx context.Context, month, year int) (float64, error)
	InsertExpense(ctx context.Context, rec expense.Record) error
	UpdateExpense(ctx context.Context, rec expense.Record) error
	DeleteExpense(ctx context.Context, id int64) error

	GetCategories(ctx context.Context) ([]category.Record, error)
	GetCategory(ctx context.Context, name string) (category.Record, error)
	InsertCategory(ctx context.Context, rec category.Record) error
	DeleteCategory(ctx context.Context, name string) error

	IsOnboarded(ctx context.Context) (bool, error)
	SetOnboarded(ctx context.Context) error

	Close() error
}

// New opens the backend named by config.Driver(), running migrations first
// for the SQL ones.
func New(config config) (Storage, error) {
	if config.Driver() == DriverMemory {
		return NewInMemStorage(), nil
	}
	if err := RunMigrations(config); err != nil {
		return nil, errors.Wrap(err, "migrate storage")
	}
	s, err := NewSQLStorage(config)
	if err != nil {
		return nil, err
	}
	return s, nil
}
