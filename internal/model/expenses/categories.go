package expenses

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/palette"
	"max.ks1230/expense-tracker/internal/model/storage"
)

// CreateCategory stores a new category with its palette icon and color.
// Names are unique ignoring case.
func (s *Service) CreateCategory(ctx context.Context, name string) (category.Record, error) {
	logger.Info("CreateCategory - start", zap.String("name", name))
	defer logger.Info("CreateCategory - end")

	name = strings.TrimSpace(name)
	if name == "" {
		return category.Record{}, ErrEmptyCategory
	}

	existing, err := s.CategoryNames(ctx)
	if err != nil {
		return category.Record{}, err
	}
	if category.Contains(existing, name) {
		return category.Record{}, errors.Wrap(ErrDuplicateCategory, name)
	}

	rec := category.Record{
		Name:  name,
		Icon:  palette.IconFor(name),
		Color: uint32(palette.ColorFor(name)),
	}
	err = s.storage.InsertCategory(ctx, rec)
	if errors.Is(err, storage.ErrAlreadyExists) {
		return category.Record{}, errors.Wrap(ErrDuplicateCategory, name)
	}
	if err != nil {
		return category.Record{}, errors.Wrap(err, "insert category")
	}
	return rec, nil
}

// DeleteCategory removes a category nobody references. Expenses are never
// reassigned.
func (s *Service) DeleteCategory(ctx context.Context, name string) error {
	logger.Info("DeleteCategory - start", zap.String("name", name))
	defer logger.Info("DeleteCategory - end")

	cats, err := s.Categories(ctx)
	if err != nil {
		return err
	}
	stored := ""
	for _, c := range cats {
		if category.SameName(c.Name, name) {
			stored = c.Name
			break
		}
	}
	if stored == "" {
		return errors.Wrap(storage.ErrNotFound, name)
	}

	all, err := s.storage.GetAll(ctx)
	if err != nil {
		return errors.Wrap(err, "list expenses")
	}
	for _, e := range all {
		if category.SameName(e.CategoryOrDefault(), stored) {
			return errors.Wrap(ErrCategoryInUse, stored)
		}
	}

	return errors.Wrap(s.storage.DeleteCategory(ctx, stored), "delete category")
}

func (s *Service) Categories(ctx context.Context) ([]category.Record, error) {
	cats, err := s.storage.GetCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return cats, nil
}

func (s *Service) CategoryNames(ctx context.Context) ([]string, error) {
	cats, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names, nil
}

// SeedCategories fills an empty category table with names. It does nothing
// once any category exists, so it is safe to call on every start.
func (s *Service) SeedCategories(ctx context.Context, names []string) (int, error) {
	cats, err := s.Categories(ctx)
	if err != nil {
		return 0, err
	}
	if len(cats) > 0 {
		return 0, nil
	}

	seeded := 0
	for _, name := range names {
		if _, err = s.CreateCategory(ctx, name); err != nil {
			if errors.Is(err, ErrDuplicateCategory) || errors.Is(err, ErrEmptyCategory) {
				continue
			}
			return seeded, err
		}
		seeded++
	}
	logger.Info("seeded categories", zap.Int("count", seeded))
	return seeded, nil
}

// Onboarded reports whether the first-run screens were already shown.
func (s *Service) Onboarded(ctx context.Context) (bool, error) {
	ok, err := s.storage.IsOnboarded(ctx)
	return ok, errors.Wrap(err, "read onboarding flag")
}

func (s *Service) CompleteOnboarding(ctx context.Context) error {
	return errors.Wrap(s.storage.SetOnboarded(ctx), "set onboarding flag")
}
