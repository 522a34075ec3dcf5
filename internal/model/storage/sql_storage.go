package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	// sql drivers
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	postgresDSNTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"
	sqliteDSNTemplate   = "%s?_journal_mode=WAL&_busy_timeout=5000"
)

var expenseColumns = []string{"uid", "name", "amount", "date", "time", "category"}

type config interface {
	Driver() string
	Path() string
	Host() string
	Username() string
	Password() string
	Database() string
}

// SQLStorage keeps expenses and categories in sqlite or postgres.
type SQLStorage struct {
	db   *sql.DB
	psql sq.StatementBuilderType
}

func dataSourceName(config config) (string, error) {
	switch config.Driver() {
	case DriverSQLite:
		return fmt.Sprintf(sqliteDSNTemplate, config.Path()), nil
	case DriverPostgres:
		return fmt.Sprintf(postgresDSNTemplate,
			config.Username(),
			config.Password(),
			config.Host(),
			config.Database()), nil
	}
	return "", fmt.Errorf("unsupported storage driver %q", config.Driver())
}

func ensureDir(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return errors.Wrap(err, "cannot create database directory")
	}
	return nil
}

func NewSQLStorage(config config) (*SQLStorage, error) {
	dsn, err := dataSourceName(config)
	if err != nil {
		return nil, err
	}

	var placeholder sq.PlaceholderFormat = sq.Dollar
	if config.Driver() == DriverSQLite {
		placeholder = sq.Question
		if err = ensureDir(config.Path()); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(config.Driver(), dsn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if config.Driver() == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &SQLStorage{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}, nil
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}

func (s *SQLStorage) GetAll(ctx context.Context) ([]expense.Record, error) {
	query := s.psql.Select(expenseColumns...).
		From("expenses").
		OrderBy("uid")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}
	defer closeRows(rows)

	exps := make([]expense.Record, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, errors.Wrap(err, "get expenses")
		}
		exps = append(exps, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}
	return exps, nil
}

func (s *SQLStorage) GetExpense(ctx context.Context, id int64) (expense.Record, error) {
	query := s.psql.Select(expenseColumns...).
		From("expenses").
		Where(sq.Eq{"uid": id})

	e, err := scanExpense(query.RunWith(s.db).QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return expense.Record{}, ErrNotFound
	}
	return e, errors.Wrap(err, "get expense")
}

// FindByName returns the first expense whose name matches a LIKE pattern.
func (s *SQLStorage) FindByName(ctx context.Context, pattern string) (expense.Record, error) {
	query := s.psql.Select(expenseColumns...).
		From("expenses").
		Where(sq.Expr("name LIKE ?", pattern)).
		OrderBy("uid").
		Limit(1)

	e, err := scanExpense(query.RunWith(s.db).QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return expense.Record{}, ErrNotFound
	}
	return e, errors.Wrap(err, "find expense")
}

// DailyTotal sums amounts whose date string equals date exactly.
func (s *SQLStorage) DailyTotal(ctx context.Context, date string) (float64, error) {
	query := s.psql.Select("COALESCE(SUM(amount), 0)").
		From("expenses").
		Where(sq.Eq{"date": date})

	var total float64
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&total)
	return total, errors.Wrap(err, "daily total")
}

func (s *SQLStorage) MonthlyTotal(ctx context.Context, month, year int) (float64, error) {
	query := s.psql.Select("date", "amount").
		From("expenses").
		Where(sq.Expr("date LIKE ?", monthPrefix(month, year)+"%"))

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "monthly total")
	}
	defer closeRows(rows)

	total := 0.0
	for rows.Next() {
		var (
			date   string
			amount sql.NullFloat64
		)
		if err = rows.Scan(&date, &amount); err != nil {
			return 0, errors.Wrap(err, "monthly total")
		}
		if amount.Valid && inMonth(date, month, year) {
			total += amount.Float64
		}
	}
	return total, errors.Wrap(rows.Err(), "monthly total")
}

func (s *SQLStorage) InsertExpense(ctx context.Context, rec expense.Record) error {
	query := s.psql.Insert("expenses").
		Columns(expenseColumns...).
		Values(expenseValues(rec)...).
		Suffix("ON CONFLICT (uid) DO NOTHING")

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "insert expense")
	}
	return expectAffected(res, ErrAlreadyExists, "insert expense")
}

// UpdateExpense replaces every field of the expense with the same id.
func (s *SQLStorage) UpdateExpense(ctx context.Context, rec expense.Record) error {
	values := expenseValues(rec)
	query := s.psql.Update("expenses").
		Set("name", values[1]).
		Set("amount", values[2]).
		Set("date", values[3]).
		Set("time", values[4]).
		Set("category", values[5]).
		Where(sq.Eq{"uid": rec.ID})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "update expense")
	}
	return expectAffected(res, ErrNotFound, "update expense")
}

func (s *SQLStorage) DeleteExpense(ctx context.Context, id int64) error {
	query := s.psql.Delete("expenses").
		Where(sq.Eq{"uid": id})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "delete expense")
	}
	return expectAffected(res, ErrNotFound, "delete expense")
}

func (s *SQLStorage) GetCategories(ctx context.Context) ([]category.Record, error) {
	query := s.psql.Select("name", "icon", "color").
		From("categories").
		OrderBy("name ASC")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get categories")
	}
	defer closeRows(rows)

	cats := make([]category.Record, 0)
	for rows.Next() {
		var c category.Record
		var color int64
		if err = rows.Scan(&c.Name, &c.Icon, &color); err != nil {
			return nil, errors.Wrap(err, "get categories")
		}
		c.Color = uint32(color)
		cats = append(cats, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get categories")
	}
	return cats, nil
}

func (s *SQLStorage) GetCategory(ctx context.Context, name string) (category.Record, error) {
	query := s.psql.Select("name", "icon", "color").
		From("categories").
		Where(sq.Eq{"name": name})

	var c category.Record
	var color int64
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&c.Name, &c.Icon, &color)
	if errors.Is(err, sql.ErrNoRows) {
		return category.Record{}, ErrNotFound
	}
	if err != nil {
		return category.Record{}, errors.Wrap(err, "get category")
	}
	c.Color = uint32(color)
	return c, nil
}

func (s *SQLStorage) InsertCategory(ctx context.Context, rec category.Record) error {
	query := s.psql.Insert("categories").
		Columns("name", "icon", "color").
		Values(rec.Name, rec.Icon, int64(rec.Color)).
		Suffix("ON CONFLICT (name) DO NOTHING")

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "insert category")
	}
	return expectAffected(res, ErrAlreadyExists, "insert category")
}

func (s *SQLStorage) DeleteCategory(ctx context.Context, name string) error {
	query := s.psql.Delete("categories").
		Where(sq.Eq{"name": name})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "delete category")
	}
	return expectAffected(res, ErrNotFound, "delete category")
}

func (s *SQLStorage) IsOnboarded(ctx context.Context) (bool, error) {
	query := s.psql.Select("value").
		From("settings").
		Where(sq.Eq{"name": onboardedSetting})

	var value string
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "get onboarded flag")
	}
	onboarded, err := strconv.ParseBool(value)
	if err != nil {
		logger.Debug("malformed onboarded flag", zap.String("value", value))
		return false, nil
	}
	return onboarded, nil
}

func (s *SQLStorage) SetOnboarded(ctx context.Context) error {
	value := strconv.FormatBool(true)
	query := s.psql.Insert("settings").
		Columns("name", "value").
		Values(onboardedSetting, value).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = ?", value)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "set onboarded flag")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExpense(row rowScanner) (expense.Record, error) {
	var (
		e        expense.Record
		name     sql.NullString
		amount   sql.NullFloat64
		date     sql.NullString
		tod      sql.NullString
		cat      sql.NullString
	)
	if err := row.Scan(&e.ID, &name, &amount, &date, &tod, &cat); err != nil {
		return expense.Record{}, err
	}
	e.Name = name.String
	e.Date = date.String
	e.Category = cat.String
	if amount.Valid {
		e.Amount = expense.Amount(amount.Float64)
	}
	if tod.Valid {
		t, err := expense.ParseTimeOfDay(tod.String)
		if err != nil {
			logger.Debug("skipping malformed time of day", zap.Int64("uid", e.ID), zap.String("time", tod.String))
		} else {
			e.Time = &t
		}
	}
	return e, nil
}

func expenseValues(rec expense.Record) []interface{} {
	var amount, tod interface{}
	if rec.Amount != nil {
		amount = *rec.Amount
	}
	if rec.Time != nil {
		tod = rec.Time.String()
	}
	return []interface{}{rec.ID, nullable(rec.Name), amount, nullable(rec.Date), tod, nullable(rec.Category)}
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func expectAffected(res sql.Result, notAffected error, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, op)
	}
	if n == 0 {
		return notAffected
	}
	return nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Error("error closing rows", zap.Error(err))
	}
}
