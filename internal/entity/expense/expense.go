package expense

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the only accepted representation of a stored expense date.
const DateLayout = "2006-01-02"

// DefaultCategory stands in for records saved without a category.
const DefaultCategory = "Other"

// TimeOfDay is a wall-clock time with minute granularity.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// ParseTimeOfDay accepts "15:04" and "3:04PM" forms.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "3:04PM", "3:04 PM"} {
		t, err := time.Parse(layout, strings.ToUpper(s))
		if err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

// Record is a single expense. Amount and Time are nil when absent, Name and
// Category are empty when absent.
type Record struct {
	ID       int64
	Name     string
	Amount   *float64
	Date     string
	Time     *TimeOfDay
	Category string
}

// AmountOrZero is the value every aggregation uses: a missing amount counts as 0.
func (r Record) AmountOrZero() float64 {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}

// CategoryOrDefault resolves an absent category to DefaultCategory.
func (r Record) CategoryOrDefault() string {
	if r.Category == "" {
		return DefaultCategory
	}
	return r.Category
}

// ParsedDate parses the stored date. ok is false for malformed dates, which
// callers skip rather than report.
func (r Record) ParsedDate() (date time.Time, ok bool) {
	d, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// ValidAmount reports whether v can be stored: finite and positive.
func ValidAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Amount is a helper for building records with a present amount.
func Amount(v float64) *float64 {
	return &v
}

// FormatDate renders t in the stored date representation.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeDate reparses s and renders it back so that equivalent inputs
// ("2025-3-1" is not one of them) always produce the stored form.
func NormalizeDate(s string) (string, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return FormatDate(d), nil
}
