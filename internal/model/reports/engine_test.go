package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/palette"
)

var march2025 = Period{Month: time.March, Year: 2025}

func scenario() []expense.Record {
	return []expense.Record{
		{ID: 1, Amount: expense.Amount(100), Date: "2025-03-01", Category: "Food"},
		{ID: 2, Amount: expense.Amount(50), Date: "2025-03-01", Category: "food"},
		{ID: 3, Amount: expense.Amount(30), Date: "2025-03-02", Category: "Transport"},
	}
}

func Test_DailyAndMonthlyTotal_Scenario(t *testing.T) {
	exps := scenario()
	assert.Equal(t, 150.0, DailyTotal(exps, "2025-03-01"))
	assert.Equal(t, 180.0, MonthlyTotal(exps, march2025))
}

func Test_DailyTotal_ShouldUseStringEquality(t *testing.T) {
	exps := []expense.Record{
		{ID: 1, Amount: expense.Amount(10), Date: "2025-03-01"},
		{ID: 2, Amount: expense.Amount(20), Date: "2025-3-1"},
		{ID: 3, Date: "2025-03-01"},
	}
	assert.Equal(t, 10.0, DailyTotal(exps, "2025-03-01"))
	assert.Equal(t, 20.0, DailyTotal(exps, "2025-3-1"))
	assert.Equal(t, 0.0, DailyTotal(exps, "2025-03-02"))
}

func Test_MonthlyTotal_ShouldSkipMalformedDates(t *testing.T) {
	exps := append(scenario(),
		expense.Record{ID: 4, Amount: expense.Amount(1000), Date: "not a date"},
		expense.Record{ID: 5, Amount: expense.Amount(1000), Date: "2025-03-xx"},
		expense.Record{ID: 6, Amount: expense.Amount(1000), Date: "2024-03-05"},
		expense.Record{ID: 7, Date: "2025-03-05"},
	)
	assert.Equal(t, 180.0, MonthlyTotal(exps, march2025))
}

func Test_CalendarMap_ShouldSumToMonthlyTotal(t *testing.T) {
	exps := append(scenario(),
		expense.Record{ID: 4, Amount: expense.Amount(12.5), Date: "2025-03-31"},
		expense.Record{ID: 5, Amount: expense.Amount(7), Date: "2025-04-01"},
		expense.Record{ID: 6, Amount: expense.Amount(7), Date: "garbage"},
	)

	cal, err := CalendarMap(context.Background(), Snapshot(exps), march2025)
	require.NoError(t, err)
	assert.Len(t, cal, 31)
	assert.Equal(t, 150.0, cal[1])
	assert.Equal(t, 30.0, cal[2])
	assert.Equal(t, 0.0, cal[15])
	assert.Equal(t, 12.5, cal[31])

	sum := 0.0
	for _, v := range cal {
		sum += v
	}
	assert.Equal(t, MonthlyTotal(exps, march2025), sum)
}

func Test_CalendarMap_ShouldCoverLeapFebruary(t *testing.T) {
	cal, err := CalendarMap(context.Background(), Snapshot(nil), Period{Month: time.February, Year: 2024})
	require.NoError(t, err)
	assert.Len(t, cal, 29)
	assert.Equal(t, 0.0, cal[29])
}

func Test_Recent_ShouldSortByDateThenTime(t *testing.T) {
	exps := []expense.Record{
		{ID: 1, Date: "2025-03-01", Time: &expense.TimeOfDay{Hour: 9}},
		{ID: 2, Date: "2025-03-02"},
		{ID: 3, Date: "2025-03-01", Time: &expense.TimeOfDay{Hour: 18, Minute: 30}},
		{ID: 4, Date: "2025-02-28", Time: &expense.TimeOfDay{Hour: 23}},
	}

	recent := Recent(exps, 3)
	require.Len(t, recent, 3)
	assert.Equal(t, int64(2), recent[0].ID)
	assert.Equal(t, int64(3), recent[1].ID)
	assert.Equal(t, int64(1), recent[2].ID)

	assert.Len(t, Recent(exps, 10), 4)
	assert.Empty(t, Recent(nil, 5))
}

func Test_CategoryTotals_ShouldKeepEmptyCategories(t *testing.T) {
	exps := append(scenario(),
		expense.Record{ID: 4, Amount: expense.Amount(5), Date: "2025-03-03"},
		expense.Record{ID: 5, Amount: expense.Amount(500), Date: "2025-04-03", Category: "Food"},
	)

	totals := CategoryTotals(exps, march2025, []string{"Food", "Travel", "Other"})
	require.Len(t, totals, 3)

	assert.Equal(t, "Food", totals[0].Name)
	assert.Equal(t, 150.0, totals[0].Amount)
	assert.Equal(t, palette.ColorFor("food"), totals[0].Color)
	assert.Equal(t, "🍴", totals[0].Icon)

	assert.Equal(t, "Travel", totals[1].Name)
	assert.Equal(t, 0.0, totals[1].Amount)

	assert.Equal(t, "Other", totals[2].Name)
	assert.Equal(t, 5.0, totals[2].Amount)
}

func Test_WeekTotals_SundayStart(t *testing.T) {
	exps := []expense.Record{
		{ID: 1, Amount: expense.Amount(1), Date: "2025-03-01"},  // Sat, first partial week
		{ID: 2, Amount: expense.Amount(2), Date: "2025-03-02"},  // Sun
		{ID: 3, Amount: expense.Amount(4), Date: "2025-03-08"},  // Sat
		{ID: 4, Amount: expense.Amount(8), Date: "2025-03-09"},  // Sun
		{ID: 5, Amount: expense.Amount(16), Date: "2025-03-29"}, // Sat
		{ID: 6, Amount: expense.Amount(32), Date: "2025-03-30"}, // Sun, sixth week
		{ID: 7, Amount: expense.Amount(64), Date: "2025-03-31"}, // Mon, sixth week
		{ID: 8, Amount: expense.Amount(128), Date: "2025-04-01"},
	}

	weeks := WeekTotals(exps, march2025, time.Sunday)
	assert.Equal(t, [WeeksInChart]float64{1, 2 + 4, 8, 0, 16}, weeks)
}

func Test_WeekTotals_MondayStart(t *testing.T) {
	exps := []expense.Record{
		{ID: 1, Amount: expense.Amount(1), Date: "2025-03-01"},  // Sat
		{ID: 2, Amount: expense.Amount(2), Date: "2025-03-02"},  // Sun, same week
		{ID: 3, Amount: expense.Amount(4), Date: "2025-03-03"},  // Mon
		{ID: 4, Amount: expense.Amount(8), Date: "2025-03-30"},  // Sun
		{ID: 5, Amount: expense.Amount(16), Date: "2025-03-31"}, // Mon, sixth week
	}

	weeks := WeekTotals(exps, march2025, time.Monday)
	assert.Equal(t, [WeeksInChart]float64{3, 4, 0, 0, 8}, weeks)
}

func Test_Period_Navigation(t *testing.T) {
	dec := Period{Month: time.December, Year: 2024}
	assert.Equal(t, Period{Month: time.January, Year: 2025}, dec.Shift(1))
	assert.Equal(t, Period{Month: time.November, Year: 2024}, dec.Shift(-1))
	assert.Equal(t, 31, dec.Days())
	assert.Equal(t, "2024-12-05", dec.Date(5))
	assert.Equal(t, "December 2024", dec.String())

	p, err := ParsePeriod("2025-03")
	require.NoError(t, err)
	assert.Equal(t, march2025, p)

	_, err = ParsePeriod("03/2025")
	assert.Error(t, err)

	_, err = NewPeriod(13, 2025)
	assert.Error(t, err)
}
