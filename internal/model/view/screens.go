package view

import (
	"fmt"
	"strings"

	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

const (
	WelcomeText = "Welcome! 👋 Track every expense, see where it goes by category and month.\n\n/continue · /skip"
	TourText    = "Add expenses in any currency, they are converted to your home currency.\n" +
		"Browse the calendar, the recent list and monthly charts.\n\n/continue · /back"
)

// AddExpenseHelp lists the add form fields with the options the user has.
func (r *Renderer) AddExpenseHelp(categories []string) string {
	return fmt.Sprintf("Send: /expense <amount> [currency] [category] [YYYY-MM-DD] [HH:MM] [note...]\n"+
		"Currencies: %s\nCategories: %s\nBlank note becomes \"<amount> <category>\".",
		strings.Join(currency.Currencies, ", "), strings.Join(categories, ", "))
}

func (r *Renderer) CreateCategoryHelp() string {
	return "Send: /category <name>"
}

func (r *Renderer) EditHelp(e expense.Record) string {
	return fmt.Sprintf("Send: /edit %d <amount> [category] [YYYY-MM-DD] [HH:MM] [note...], /delete %d or /back", e.ID, e.ID)
}

func SortHelp() string {
	opts := make([]string, 0, len(expense.SortOptions))
	for _, o := range expense.SortOptions {
		opts = append(opts, string(o))
	}
	return "Sort with /list <" + strings.Join(opts, "|") + ">"
}
