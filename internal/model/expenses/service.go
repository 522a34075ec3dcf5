package expenses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/rates"
	"max.ks1230/expense-tracker/internal/model/storage"
)

// maxID keeps generated ids inside a signed 32-bit column.
const maxID = 1<<31 - 1

var (
	ErrInvalidAmount     = errors.New("amount must be a positive number")
	ErrInvalidDate       = errors.New("date must be YYYY-MM-DD")
	ErrEmptyCategory     = errors.New("category name is empty")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrCategoryInUse     = errors.New("category is used by expenses")
)

type expensesStorage interface {
	GetAll(ctx context.Context) ([]expense.Record, error)
	GetExpense(ctx context.Context, id int64) (expense.Record, error)
	FindByName(ctx context.Context, pattern string) (expense.Record, error)
	InsertExpense(ctx context.Context, rec expense.Record) error
	UpdateExpense(ctx context.Context, rec expense.Record) error
	DeleteExpense(ctx context.Context, id int64) error

	GetCategories(ctx context.Context) ([]category.Record, error)
	InsertCategory(ctx context.Context, rec category.Record) error
	DeleteCategory(ctx context.Context, name string) error

	IsOnboarded(ctx context.Context) (bool, error)
	SetOnboarded(ctx context.Context) error
}

type converter interface {
	Convert(ctx context.Context, raw, code, accessKey string) rates.Result
}

// ConversionError blocks a save when the amount could not be expressed in
// the home currency.
type ConversionError struct {
	Result rates.Result
}

func (e *ConversionError) Error() string {
	return e.Result.Reason()
}

func (e *ConversionError) Unwrap() error {
	return e.Result.Err
}

// Draft is an expense as typed in, before conversion.
type Draft struct {
	Name      string
	Amount    string
	Currency  string
	AccessKey string
	Date      string
	Time      *expense.TimeOfDay
	Category  string
}

// Service performs every mutating action. Nothing is cached, callers
// recompute their views after each call.
type Service struct {
	storage   expensesStorage
	converter converter
	now       func() time.Time
}

func NewService(storage expensesStorage, converter converter) *Service {
	return &Service{
		storage:   storage,
		converter: converter,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for ids and default dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// AddExpense converts the amount to the home currency and stores a new
// record. Nothing is stored when the conversion fails.
func (s *Service) AddExpense(ctx context.Context, d Draft) (rec expense.Record, err error) {
	logger.Info("AddExpense - start", zap.String("currency", d.Currency), zap.String("category", d.Category))
	defer logger.Info("AddExpense - end")

	if _, err = rates.ParseAmount(d.Amount); err != nil {
		return rec, errors.Wrap(ErrInvalidAmount, d.Amount)
	}

	now := s.now()
	rec.Date = expense.FormatDate(now)
	if strings.TrimSpace(d.Date) != "" {
		if rec.Date, err = expense.NormalizeDate(d.Date); err != nil {
			return expense.Record{}, errors.Wrap(ErrInvalidDate, d.Date)
		}
	}
	rec.Time = d.Time
	if rec.Time == nil {
		rec.Time = &expense.TimeOfDay{Hour: now.Hour(), Minute: now.Minute()}
	}
	rec.Category = strings.TrimSpace(d.Category)

	res := s.converter.Convert(ctx, d.Amount, d.Currency, d.AccessKey)
	if res.Status != rates.Succeeded {
		logger.Error("conversion failed", zap.Error(res.Err))
		return expense.Record{}, &ConversionError{Result: res}
	}
	rec.Amount = expense.Amount(res.Float())

	rec.Name = strings.TrimSpace(d.Name)
	if rec.Name == "" {
		rec.Name = fmt.Sprintf("%s %s", res.Amount, rec.CategoryOrDefault())
	}

	if rec.ID, err = s.nextID(ctx, now); err != nil {
		return expense.Record{}, err
	}
	if err = s.storage.InsertExpense(ctx, rec); err != nil {
		return expense.Record{}, errors.Wrap(err, "insert expense")
	}
	return rec, nil
}

// nextID derives the id from the clock and steps past ids already taken.
func (s *Service) nextID(ctx context.Context, now time.Time) (int64, error) {
	id := now.UnixMilli() % maxID
	for {
		_, err := s.storage.GetExpense(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return 0, errors.Wrap(err, "check expense id")
		}
		id = (id + 1) % maxID
	}
}

// ModifyExpense replaces the record with rec.ID, inserting it when the id
// does not exist yet.
func (s *Service) ModifyExpense(ctx context.Context, rec expense.Record) (expense.Record, error) {
	logger.Info("ModifyExpense - start", zap.Int64("id", rec.ID))
	defer logger.Info("ModifyExpense - end")

	if rec.Amount == nil || !expense.ValidAmount(*rec.Amount) {
		return rec, ErrInvalidAmount
	}
	date, err := expense.NormalizeDate(rec.Date)
	if err != nil {
		return rec, errors.Wrap(ErrInvalidDate, rec.Date)
	}
	rec.Date = date
	rec.Name = strings.TrimSpace(rec.Name)
	rec.Category = strings.TrimSpace(rec.Category)

	_, err = s.storage.GetExpense(ctx, rec.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		err = s.storage.InsertExpense(ctx, rec)
	case err == nil:
		err = s.storage.UpdateExpense(ctx, rec)
	}
	if err != nil {
		return rec, errors.Wrap(err, "save expense")
	}
	return rec, nil
}

func (s *Service) DeleteExpense(ctx context.Context, id int64) error {
	logger.Info("DeleteExpense - start", zap.Int64("id", id))
	defer logger.Info("DeleteExpense - end")

	return errors.Wrap(s.storage.DeleteExpense(ctx, id), "delete expense")
}

func (s *Service) GetExpense(ctx context.Context, id int64) (expense.Record, error) {
	rec, err := s.storage.GetExpense(ctx, id)
	return rec, errors.Wrap(err, "get expense")
}

// FindExpense is a best-effort lookup by note, % and _ act as wildcards.
func (s *Service) FindExpense(ctx context.Context, pattern string) (expense.Record, error) {
	rec, err := s.storage.FindByName(ctx, pattern)
	return rec, errors.Wrap(err, "find expense")
}

// Expenses lists every record in the requested order.
func (s *Service) Expenses(ctx context.Context, opt expense.SortOption) ([]expense.Record, error) {
	all, err := s.storage.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list expenses")
	}
	return expense.Sort(all, opt), nil
}
