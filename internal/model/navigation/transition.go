package navigation

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrInvalidTransition = errors.New("invalid transition")

// Transition is the whole navigation graph. Month and sort events keep the
// current screen; the session applies their side effects. Home leads to the
// dashboard from anywhere but the onboarding screens, which only Continue or
// Skip can leave.
func Transition(from Screen, e Event) (Screen, error) {
	if _, ok := e.(Home); ok && !isOnboarding(from) {
		return Dashboard{}, nil
	}

	switch from.(type) {
	case NewUser:
		switch e.(type) {
		case Continue:
			return NewUser2{}, nil
		case Skip:
			return Dashboard{}, nil
		}
	case NewUser2:
		switch e.(type) {
		case Continue, Skip:
			return Dashboard{}, nil
		case Back:
			return NewUser{}, nil
		}
	case Dashboard:
		switch ev := e.(type) {
		case OpenAddExpense:
			return AddExpense{}, nil
		case OpenAllExpenses:
			return AllExpenses{}, nil
		case OpenAnalytics:
			return Analytics{}, nil
		case OpenCreateCategory:
			return CreateCategory{}, nil
		case Edit:
			return ModifyExpense{Expense: ev.Expense}, nil
		case PrevMonth, NextMonth:
			return from, nil
		}
	case AddExpense:
		switch e.(type) {
		case Saved, Back:
			return Dashboard{}, nil
		case OpenCreateCategory:
			return CreateCategory{}, nil
		}
	case AllExpenses:
		switch ev := e.(type) {
		case Edit:
			return ModifyExpense{Expense: ev.Expense}, nil
		case SortBy:
			return from, nil
		case Back:
			return Dashboard{}, nil
		}
	case Analytics:
		switch e.(type) {
		case PrevMonth, NextMonth:
			return from, nil
		case Back:
			return Dashboard{}, nil
		}
	case CreateCategory:
		switch e.(type) {
		case Saved, Back:
			return Dashboard{}, nil
		}
	case ModifyExpense:
		switch e.(type) {
		case Saved, Back:
			return AllExpenses{}, nil
		}
	}
	return from, errors.Wrap(ErrInvalidTransition, fmt.Sprintf("%s on %s", e.Name(), from.Name()))
}
