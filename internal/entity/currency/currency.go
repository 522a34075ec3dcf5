package currency

import (
	"fmt"
	"strings"
)

const (
	INR = "INR"
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
	JPY = "JPY"
)

// Currencies are the codes offered when recording an expense.
var Currencies = []string{INR, USD, EUR, GBP, JPY}

// Table maps a currency code to a rate. What the rate is relative to depends
// on where the table came from.
type Table map[string]float64

// Rebase turns a table relative to some service base into a table expressing
// the value of one unit of each currency in home: rebased[X] = table[home] / table[X].
func (t Table) Rebase(home string) (Table, error) {
	homeRate, ok := t[home]
	if !ok || homeRate == 0 {
		return nil, fmt.Errorf("no rate for home currency %s", home)
	}
	res := make(Table, len(t))
	for code, rate := range t {
		if rate == 0 {
			continue
		}
		res[code] = homeRate / rate
	}
	return res, nil
}

// Normalize upper-cases and trims a user supplied code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
