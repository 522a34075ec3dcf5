package reports

import (
	"context"
	"time"

	"github.com/jinzhu/now"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/palette"
)

// WeeksInChart is the fixed number of week buckets of a month.
const WeeksInChart = 5

type CategoryTotal struct {
	Name   string
	Icon   string
	Color  palette.Color
	Amount float64
}

type dailyTotaler interface {
	DailyTotal(ctx context.Context, date string) (float64, error)
}

// Snapshot is a point-in-time copy of the store. It answers daily totals
// without going back to the store.
type Snapshot []expense.Record

func (s Snapshot) DailyTotal(_ context.Context, date string) (float64, error) {
	return DailyTotal(s, date), nil
}

// DailyTotal sums amounts whose date string equals date. Equivalent dates in
// other formats do not match.
func DailyTotal(exps []expense.Record, date string) float64 {
	total := 0.0
	for _, e := range exps {
		if e.Date == date {
			total += e.AmountOrZero()
		}
	}
	return total
}

// MonthlyTotal sums amounts whose parsed date falls within p. Unparseable
// dates are skipped.
func MonthlyTotal(exps []expense.Record, p Period) float64 {
	total := 0.0
	for _, e := range inPeriod(exps, p) {
		total += e.AmountOrZero()
	}
	return total
}

// Recent returns the n newest records by date, then time of day.
func Recent(exps []expense.Record, n int) []expense.Record {
	sorted := expense.Sort(exps, expense.SortNewest)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// CalendarMap asks src for the total of every day of p, one call per day.
// Days without expenses map to 0.
func CalendarMap(ctx context.Context, src dailyTotaler, p Period) (map[int]float64, error) {
	days := p.Days()
	res := make(map[int]float64, days)
	for day := 1; day <= days; day++ {
		total, err := src.DailyTotal(ctx, p.Date(day))
		if err != nil {
			return nil, err
		}
		res[day] = total
	}
	return res, nil
}

// CategoryTotals returns one entry per name in categories, in order, even
// when nothing was spent on it. Expense categories match case-insensitively
// and an absent category counts as "Other".
func CategoryTotals(exps []expense.Record, p Period, categories []string) []CategoryTotal {
	filtered := inPeriod(exps, p)
	res := make([]CategoryTotal, 0, len(categories))
	for _, name := range categories {
		amount := 0.0
		for _, e := range filtered {
			if category.SameName(e.CategoryOrDefault(), name) {
				amount += e.AmountOrZero()
			}
		}
		res = append(res, CategoryTotal{
			Name:   name,
			Icon:   palette.IconFor(name),
			Color:  palette.ColorFor(name),
			Amount: amount,
		})
	}
	return res
}

// WeekTotals buckets the expenses of p by week of month. The index of a day is
// the number of week starts between the first of the month and that day.
// Days landing past the last bucket are dropped.
func WeekTotals(exps []expense.Record, p Period, weekStart time.Weekday) [WeeksInChart]float64 {
	var res [WeeksInChart]float64

	cfg := &now.Config{WeekStartDay: weekStart, TimeLocation: time.UTC}
	base := cfg.With(p.first()).BeginningOfWeek()

	for _, e := range inPeriod(exps, p) {
		d, _ := e.ParsedDate()
		week := int(cfg.With(d).BeginningOfWeek().Sub(base).Hours()) / (24 * 7)
		if week < 0 || week >= WeeksInChart {
			logger.Debug("dropping expense outside week buckets",
				zap.Int64("uid", e.ID), zap.String("date", e.Date), zap.Int("week", week))
			continue
		}
		res[week] += e.AmountOrZero()
	}
	return res
}

func inPeriod(exps []expense.Record, p Period) []expense.Record {
	res := make([]expense.Record, 0, len(exps))
	for _, e := range exps {
		d, ok := e.ParsedDate()
		if !ok {
			logger.Debug("skipping expense with malformed date", zap.Int64("uid", e.ID), zap.String("date", e.Date))
			continue
		}
		if p.Contains(d) {
			res = append(res, e)
		}
	}
	return res
}
