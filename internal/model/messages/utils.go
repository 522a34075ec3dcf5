package messages

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/expenses"
)

const commandParts = 2

var errUsage = errors.New("incorrect usage")

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts {
		return strings.ToLower(split[0]), strings.TrimSpace(split[1])
	}
	if strings.HasPrefix(text, "/") {
		return strings.ToLower(text), ""
	}
	return "", text
}

func parseID(arg string) (int64, string, error) {
	split := strings.SplitN(strings.TrimSpace(arg), " ", commandParts)
	id, err := strconv.ParseInt(strings.TrimPrefix(split[0], "#"), 10, 64)
	if err != nil {
		return 0, "", errors.Wrap(errUsage, "expense id")
	}
	rest := ""
	if len(split) == commandParts {
		rest = strings.TrimSpace(split[1])
	}
	return id, rest, nil
}

// fields are the optional parts of an expense line. Each token is
// recognised by shape until one is not; it and everything after it is the
// note.
type fields struct {
	currency string
	category string
	date     string
	time     *expense.TimeOfDay
	note     string
}

func parseFields(tokens []string, categories []string) fields {
	var f fields
	for i, tok := range tokens {
		switch {
		case f.currency == "" && isCurrency(tok):
			f.currency = currency.Normalize(tok)
		case f.category == "" && category.Contains(categories, tok):
			f.category = canonical(categories, tok)
		case f.date == "" && isDate(tok):
			f.date = tok
		case f.time == nil && isTime(tok):
			t, _ := expense.ParseTimeOfDay(tok)
			f.time = &t
		default:
			f.note = strings.Join(tokens[i:], " ")
			return f
		}
	}
	return f
}

// parseDraft reads "<amount> [currency] [category] [date] [time] [note...]".
func parseDraft(arg string, categories []string) (expenses.Draft, error) {
	tokens := strings.Fields(arg)
	if len(tokens) == 0 {
		return expenses.Draft{}, errUsage
	}
	f := parseFields(tokens[1:], categories)
	return expenses.Draft{
		Amount:   tokens[0],
		Currency: f.currency,
		Category: f.category,
		Date:     f.date,
		Time:     f.time,
		Name:     f.note,
	}, nil
}

// applyEdit reads "<amount> [category] [date] [time] [note...]" over rec.
// Amounts are already in the home currency; omitted fields keep their value.
func applyEdit(rec expense.Record, arg string, categories []string) (expense.Record, error) {
	tokens := strings.Fields(arg)
	if len(tokens) == 0 {
		return rec, errUsage
	}
	amount, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil || !expense.ValidAmount(amount) {
		return rec, expenses.ErrInvalidAmount
	}
	rec.Amount = expense.Amount(amount)

	f := parseFields(tokens[1:], categories)
	if f.category != "" {
		rec.Category = f.category
	}
	if f.date != "" {
		rec.Date = f.date
	}
	if f.time != nil {
		rec.Time = f.time
	}
	if f.note != "" {
		rec.Name = f.note
	}
	return rec, nil
}

func isCurrency(tok string) bool {
	code := currency.Normalize(tok)
	for _, c := range currency.Currencies {
		if c == code {
			return true
		}
	}
	return false
}

func isDate(tok string) bool {
	_, err := expense.NormalizeDate(tok)
	return err == nil
}

func isTime(tok string) bool {
	_, err := expense.ParseTimeOfDay(tok)
	return err == nil
}

func canonical(names []string, name string) string {
	for _, n := range names {
		if category.SameName(n, name) {
			return n
		}
	}
	return name
}
