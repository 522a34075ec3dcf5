package storage

import (
	"context"
	"path"
	"sort"
	"strings"
	"sync"

	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

// InMemStorage keeps everything in maps. It backs tests and the "memory"
// storage driver.
type InMemStorage struct {
	mu         sync.RWMutex
	expenses   map[int64]expense.Record
	categories map[string]category.Record
	onboarded  bool
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		expenses:   make(map[int64]expense.Record),
		categories: make(map[string]category.Record),
	}
}

func (s *InMemStorage) Close() error {
	return nil
}

func (s *InMemStorage) GetAll(_ context.Context) ([]expense.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]expense.Record, 0, len(s.expenses))
	for _, e := range s.expenses {
		res = append(res, clone(e))
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].ID < res[j].ID
	})
	return res, nil
}

func (s *InMemStorage) GetExpense(_ context.Context, id int64) (expense.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.expenses[id]
	if !ok {
		return expense.Record{}, ErrNotFound
	}
	return clone(e), nil
}

// FindByName supports the same % and _ wildcards as SQL LIKE, case-insensitively.
func (s *InMemStorage) FindByName(ctx context.Context, pattern string) (expense.Record, error) {
	all, _ := s.GetAll(ctx)
	glob := likeToGlob(strings.ToLower(pattern))
	for _, e := range all {
		if ok, _ := path.Match(glob, strings.ToLower(e.Name)); ok {
			return e, nil
		}
	}
	return expense.Record{}, ErrNotFound
}

func (s *InMemStorage) DailyTotal(_ context.Context, date string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, e := range s.expenses {
		if e.Date == date {
			total += e.AmountOrZero()
		}
	}
	return total, nil
}

func (s *InMemStorage) MonthlyTotal(_ context.Context, month, year int) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, e := range s.expenses {
		if inMonth(e.Date, month, year) {
			total += e.AmountOrZero()
		}
	}
	return total, nil
}

func (s *InMemStorage) InsertExpense(_ context.Context, rec expense.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[rec.ID]; ok {
		return ErrAlreadyExists
	}
	s.expenses[rec.ID] = clone(rec)
	return nil
}

func (s *InMemStorage) UpdateExpense(_ context.Context, rec expense.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[rec.ID]; !ok {
		return ErrNotFound
	}
	s.expenses[rec.ID] = clone(rec)
	return nil
}

func (s *InMemStorage) DeleteExpense(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[id]; !ok {
		return ErrNotFound
	}
	delete(s.expenses, id)
	return nil
}

func (s *InMemStorage) GetCategories(_ context.Context) ([]category.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]category.Record, 0, len(s.categories))
	for _, c := range s.categories {
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res, nil
}

func (s *InMemStorage) GetCategory(_ context.Context, name string) (category.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[name]
	if !ok {
		return category.Record{}, ErrNotFound
	}
	return c, nil
}

func (s *InMemStorage) InsertCategory(_ context.Context, rec category.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[rec.Name]; ok {
		return ErrAlreadyExists
	}
	s.categories[rec.Name] = rec
	return nil
}

func (s *InMemStorage) DeleteCategory(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[name]; !ok {
		return ErrNotFound
	}
	delete(s.categories, name)
	return nil
}

func (s *InMemStorage) IsOnboarded(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.onboarded, nil
}

func (s *InMemStorage) SetOnboarded(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onboarded = true
	return nil
}

func clone(e expense.Record) expense.Record {
	if e.Amount != nil {
		e.Amount = expense.Amount(*e.Amount)
	}
	if e.Time != nil {
		t := *e.Time
		e.Time = &t
	}
	return e
}

func likeToGlob(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '%':
			b.WriteByte('*')
		case '_':
			b.WriteByte('?')
		case '*', '?', '[', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
