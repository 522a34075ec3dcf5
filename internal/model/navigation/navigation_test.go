package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports"
)

var asOf = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

func Test_Transition_Graph(t *testing.T) {
	rec := expense.Record{ID: 3, Amount: expense.Amount(5)}
	cases := []struct {
		from Screen
		ev   Event
		to   Screen
	}{
		{NewUser{}, Continue{}, NewUser2{}},
		{NewUser{}, Skip{}, Dashboard{}},
		{NewUser2{}, Continue{}, Dashboard{}},
		{NewUser2{}, Back{}, NewUser{}},
		{Dashboard{}, OpenAddExpense{}, AddExpense{}},
		{Dashboard{}, OpenAllExpenses{}, AllExpenses{}},
		{Dashboard{}, OpenAnalytics{}, Analytics{}},
		{Dashboard{}, OpenCreateCategory{}, CreateCategory{}},
		{Dashboard{}, Edit{Expense: rec}, ModifyExpense{Expense: rec}},
		{AddExpense{}, Saved{}, Dashboard{}},
		{AddExpense{}, OpenCreateCategory{}, CreateCategory{}},
		{AllExpenses{}, Edit{Expense: rec}, ModifyExpense{Expense: rec}},
		{AllExpenses{}, SortBy{Option: expense.SortAmountAsc}, AllExpenses{}},
		{Analytics{}, NextMonth{}, Analytics{}},
		{CreateCategory{}, Saved{}, Dashboard{}},
		{ModifyExpense{Expense: rec}, Saved{}, AllExpenses{}},
		{ModifyExpense{Expense: rec}, Home{}, Dashboard{}},
	}

	for _, tc := range cases {
		got, err := Transition(tc.from, tc.ev)
		require.NoError(t, err, "%s on %s", tc.ev.Name(), tc.from.Name())
		assert.Equal(t, tc.to, got, "%s on %s", tc.ev.Name(), tc.from.Name())
	}
}

func Test_Transition_ShouldRejectUnknownEdges(t *testing.T) {
	got, err := Transition(NewUser{}, OpenAnalytics{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, NewUser{}, got)

	_, err = Transition(AddExpense{}, PrevMonth{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func Test_OnHomeDuringOnboarding_ShouldStayPut(t *testing.T) {
	for _, from := range []Screen{NewUser{}, NewUser2{}} {
		got, err := Transition(from, Home{})
		assert.ErrorIs(t, err, ErrInvalidTransition, from.Name())
		assert.Equal(t, from, got)
	}

	s := NewSession(false, nil, asOf)
	_, err := s.Apply(Home{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, s.Onboarded)
	assert.Equal(t, NewUser{}, s.Screen)
}

func Test_OnFirstRun_ShouldOnboardThenMarkDone(t *testing.T) {
	s := NewSession(false, nil, asOf)
	assert.Equal(t, NewUser{}, s.Screen)
	assert.True(t, s.InOnboarding())

	step, err := s.Apply(Continue{})
	require.NoError(t, err)
	assert.False(t, step.OnboardingDone)

	step, err = s.Apply(Continue{})
	require.NoError(t, err)
	assert.True(t, step.OnboardingDone)
	assert.True(t, s.Onboarded)
	assert.Equal(t, Dashboard{}, s.Screen)

	_, err = s.Apply(OpenAnalytics{})
	require.NoError(t, err)
	step, err = s.Apply(Back{})
	require.NoError(t, err)
	assert.False(t, step.OnboardingDone)
}

func Test_OnReturningUser_ShouldStartOnDashboard(t *testing.T) {
	cats := []category.Record{{Name: "Food"}, {Name: "Bills"}}
	s := NewSession(true, cats, asOf)
	assert.Equal(t, Dashboard{}, s.Screen)
	assert.Equal(t, []string{"Food", "Bills"}, s.CategoryNames())
	assert.Equal(t, expense.SortNewest, s.Sort)
}

func Test_OnMonthNavigation_ShouldMoveTheVisibleView(t *testing.T) {
	s := NewSession(true, nil, asOf)

	step, err := s.Apply(PrevMonth{})
	require.NoError(t, err)
	assert.True(t, step.PeriodChanged)
	assert.Equal(t, reports.Period{Month: time.December, Year: 2024}, s.CalendarPeriod)
	assert.Equal(t, reports.Period{Month: time.January, Year: 2025}, s.AnalyticsPeriod)

	_, err = s.Apply(OpenAnalytics{})
	require.NoError(t, err)
	_, err = s.Apply(NextMonth{})
	require.NoError(t, err)
	assert.Equal(t, reports.Period{Month: time.February, Year: 2025}, s.AnalyticsPeriod)
	assert.Equal(t, reports.Period{Month: time.December, Year: 2024}, s.CalendarPeriod)
}

func Test_OnSortBy_ShouldRememberOption(t *testing.T) {
	s := NewSession(true, nil, asOf)
	_, err := s.Apply(OpenAllExpenses{})
	require.NoError(t, err)

	_, err = s.Apply(SortBy{Option: expense.SortCategoryDesc})
	require.NoError(t, err)
	assert.Equal(t, expense.SortCategoryDesc, s.Sort)
	assert.Equal(t, AllExpenses{}, s.Screen)
}
