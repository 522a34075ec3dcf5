package view

import (
	"fmt"

	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

var symbols = map[string]string{
	currency.INR: "₹",
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
	currency.JPY: "¥",
}

// Symbol returns the sign of a currency code, or the code itself.
func Symbol(code string) string {
	if s, ok := symbols[currency.Normalize(code)]; ok {
		return s
	}
	return currency.Normalize(code) + " "
}

func Money(home string, v float64) string {
	return fmt.Sprintf("%s%.2f", Symbol(home), v)
}

// Amount renders an expense amount, "-" when it is absent.
func Amount(home string, r expense.Record) string {
	if r.Amount == nil {
		return "-"
	}
	return Money(home, *r.Amount)
}
