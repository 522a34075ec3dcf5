package navigation

import "max.ks1230/expense-tracker/internal/entity/expense"

// Event is a user action that may move the session to another screen.
type Event interface {
	Name() string
	event()
}

type (
	Continue           struct{}
	Skip               struct{}
	Back               struct{}
	Home               struct{}
	Saved              struct{}
	OpenAddExpense     struct{}
	OpenAllExpenses    struct{}
	OpenAnalytics      struct{}
	OpenCreateCategory struct{}
	PrevMonth          struct{}
	NextMonth          struct{}
	Edit               struct {
		Expense expense.Record
	}
	SortBy struct {
		Option expense.SortOption
	}
)

func (Continue) Name() string           { return "continue" }
func (Skip) Name() string               { return "skip" }
func (Back) Name() string               { return "back" }
func (Home) Name() string               { return "home" }
func (Saved) Name() string              { return "saved" }
func (OpenAddExpense) Name() string     { return "open_add_expense" }
func (OpenAllExpenses) Name() string    { return "open_all_expenses" }
func (OpenAnalytics) Name() string      { return "open_analytics" }
func (OpenCreateCategory) Name() string { return "open_create_category" }
func (PrevMonth) Name() string          { return "prev_month" }
func (NextMonth) Name() string          { return "next_month" }
func (Edit) Name() string               { return "edit" }
func (SortBy) Name() string             { return "sort_by" }

func (Continue) event()           {}
func (Skip) event()               {}
func (Back) event()               {}
func (Home) event()               {}
func (Saved) event()              {}
func (OpenAddExpense) event()     {}
func (OpenAllExpenses) event()    {}
func (OpenAnalytics) event()      {}
func (OpenCreateCategory) event() {}
func (PrevMonth) event()          {}
func (NextMonth) event()          {}
func (Edit) event()               {}
func (SortBy) event()             {}
