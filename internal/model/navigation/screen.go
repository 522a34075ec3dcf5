package navigation

import "max.ks1230/expense-tracker/internal/entity/expense"

// Screen is one of the closed set of screens below. Only ModifyExpense
// carries data.
type Screen interface {
	Name() string
	screen()
}

type (
	NewUser        struct{}
	NewUser2       struct{}
	Dashboard      struct{}
	AddExpense     struct{}
	AllExpenses    struct{}
	Analytics      struct{}
	CreateCategory struct{}
	ModifyExpense  struct {
		Expense expense.Record
	}
)

func (NewUser) Name() string        { return "new_user" }
func (NewUser2) Name() string       { return "new_user_2" }
func (Dashboard) Name() string      { return "dashboard" }
func (AddExpense) Name() string     { return "add_expense" }
func (AllExpenses) Name() string    { return "all_expenses" }
func (Analytics) Name() string      { return "analytics" }
func (CreateCategory) Name() string { return "create_category" }
func (ModifyExpense) Name() string  { return "modify_expense" }

func (NewUser) screen()        {}
func (NewUser2) screen()       {}
func (Dashboard) screen()      {}
func (AddExpense) screen()     {}
func (AllExpenses) screen()    {}
func (Analytics) screen()      {}
func (CreateCategory) screen() {}
func (ModifyExpense) screen()  {}

func isOnboarding(s Screen) bool {
	switch s.(type) {
	case NewUser, NewUser2:
		return true
	}
	return false
}
