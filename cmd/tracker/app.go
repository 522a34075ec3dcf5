package main

import (
	"context"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/clients/cache"
	"max.ks1230/expense-tracker/internal/clients/exchangerates"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/palette"
	"max.ks1230/expense-tracker/internal/model/rates"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/view"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// categoryStyle paints a category name in its palette color.
func categoryStyle(c palette.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// app is everything one command needs, opened per invocation.
type app struct {
	conf      *config.Service
	db        storage.Storage
	expenses  *expenses.Service
	reports   *reports.Generator
	converter *rates.Converter
	renderer  *view.Renderer
}

func newApp(ctx context.Context) (*app, error) {
	conf, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "init config")
	}

	db, err := storage.New(conf.Storage())
	if err != nil {
		return nil, errors.Wrap(err, "init storage")
	}

	rateCache, err := cache.New(conf.Cache(), conf.App().HomeCurrency())
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init rate cache")
	}

	converter := rates.NewConverter(conf.App(), exchangerates.New(conf.Rates()), rateCache)
	a := &app{
		conf:      conf,
		db:        db,
		expenses:  expenses.NewService(db, converter),
		reports:   reports.NewGenerator(conf.App(), db),
		converter: converter,
		renderer:  view.NewRenderer(conf.App().HomeCurrency(), conf.App().WeekStartDay()),
	}

	if _, err = a.expenses.SeedCategories(ctx, conf.App().SeedCategories()); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		logger.Error("failed to close storage", zap.Error(err))
	}
	logger.Sync()
}

// withApp opens the app for the duration of fn.
func withApp(ctx context.Context, fn func(a *app) error) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
