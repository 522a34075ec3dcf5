package navigation

import (
	"time"

	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports"
)

// Session is the state of one user's walk through the screens. It is not
// safe for concurrent use.
type Session struct {
	Screen          Screen
	Categories      []category.Record
	CalendarPeriod  reports.Period
	AnalyticsPeriod reports.Period
	Sort            expense.SortOption
	Onboarded       bool
}

// Step describes what Apply did so callers know what to persist and redraw.
type Step struct {
	From, To       Screen
	OnboardingDone bool
	PeriodChanged  bool
}

// NewSession starts on the onboarding screens for a first run and on the
// dashboard otherwise. Both month views start at asOf.
func NewSession(onboarded bool, categories []category.Record, asOf time.Time) *Session {
	p := reports.PeriodOf(asOf)
	s := &Session{
		Screen:          Dashboard{},
		Categories:      categories,
		CalendarPeriod:  p,
		AnalyticsPeriod: p,
		Sort:            expense.SortNewest,
		Onboarded:       onboarded,
	}
	if !onboarded {
		s.Screen = NewUser{}
	}
	return s
}

// Apply moves the session along one event.
func (s *Session) Apply(e Event) (Step, error) {
	step := Step{From: s.Screen}
	to, err := Transition(s.Screen, e)
	if err != nil {
		return step, err
	}

	switch ev := e.(type) {
	case PrevMonth, NextMonth:
		delta := 1
		if _, ok := ev.(PrevMonth); ok {
			delta = -1
		}
		if _, ok := s.Screen.(Analytics); ok {
			s.AnalyticsPeriod = s.AnalyticsPeriod.Shift(delta)
		} else {
			s.CalendarPeriod = s.CalendarPeriod.Shift(delta)
		}
		step.PeriodChanged = true
	case SortBy:
		s.Sort = ev.Option
	}

	if _, ok := to.(Dashboard); ok && !s.Onboarded {
		s.Onboarded = true
		step.OnboardingDone = true
	}

	s.Screen = to
	step.To = to
	return step, nil
}

// CategoryNames lists the session's categories in display order.
func (s *Session) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	for _, c := range s.Categories {
		names = append(names, c.Name)
	}
	return names
}

// InOnboarding reports whether the first-run screens are showing.
func (s *Session) InOnboarding() bool {
	return isOnboarding(s.Screen)
}
