package reports

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

type expensesStorage interface {
	GetAll(ctx context.Context) ([]expense.Record, error)
	DailyTotal(ctx context.Context, date string) (float64, error)
	MonthlyTotal(ctx context.Context, month, year int) (float64, error)
}

type config interface {
	RecentLimit() int
	WeekStartDay() time.Weekday
}

// Dashboard is the home screen: today, the browsed month and its calendar.
type Dashboard struct {
	Today      string
	TodayTotal float64
	Period     Period
	MonthTotal float64
	Recent     []expense.Record
	Calendar   map[int]float64
}

// Analytics is the per-month category and weekly breakdown.
type Analytics struct {
	Period     Period
	Total      float64
	Categories []CategoryTotal
	Weeks      [WeeksInChart]float64
}

// Generator recomputes every view from the store on each call.
type Generator struct {
	storage     expensesStorage
	recentLimit int
	weekStart   time.Weekday
}

func NewGenerator(config config, storage expensesStorage) *Generator {
	return &Generator{
		storage:     storage,
		recentLimit: config.RecentLimit(),
		weekStart:   config.WeekStartDay(),
	}
}

func (g *Generator) Dashboard(ctx context.Context, asOf time.Time, p Period) (dash *Dashboard, err error) {
	logger.Info("Dashboard - start", zap.Stringer("period", p))
	defer logger.Info("Dashboard - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "dashboard")
	defer finishSpan(span, &err)

	dash = &Dashboard{
		Today:  expense.FormatDate(asOf),
		Period: p,
	}

	dash.TodayTotal, err = g.storage.DailyTotal(ctx, dash.Today)
	if err != nil {
		return nil, errors.Wrap(err, "generate dashboard")
	}

	dash.MonthTotal, err = g.storage.MonthlyTotal(ctx, int(p.Month), p.Year)
	if err != nil {
		return nil, errors.Wrap(err, "generate dashboard")
	}

	all, err := g.storage.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "generate dashboard")
	}
	dash.Recent = Recent(all, g.recentLimit)

	dash.Calendar, err = CalendarMap(ctx, g.storage, p)
	if err != nil {
		return nil, errors.Wrap(err, "generate dashboard")
	}
	return dash, nil
}

// Analytics totals p by the given categories. Total is the sum of the
// category totals, so spending in unlisted categories is not counted.
func (g *Generator) Analytics(ctx context.Context, p Period, categories []string) (an *Analytics, err error) {
	logger.Info("Analytics - start", zap.Stringer("period", p), zap.Int("categories", len(categories)))
	defer logger.Info("Analytics - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "analytics")
	defer finishSpan(span, &err)

	all, err := g.storage.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "generate analytics")
	}

	an = &Analytics{
		Period:     p,
		Categories: CategoryTotals(all, p, categories),
		Weeks:      WeekTotals(all, p, g.weekStart),
	}
	for _, c := range an.Categories {
		an.Total += c.Amount
	}
	return an, nil
}

func finishSpan(span opentracing.Span, err *error) {
	if *err != nil {
		ext.Error.Set(span, true)
	}
	span.Finish()
}
