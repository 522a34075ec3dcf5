package reports

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// Period is a calendar month.
type Period struct {
	Month time.Month
	Year  int
}

func PeriodOf(t time.Time) Period {
	return Period{Month: t.Month(), Year: t.Year()}
}

// NewPeriod validates a 1-12 month number.
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("month %d out of range", month)
	}
	return Period{Month: time.Month(month), Year: year}, nil
}

// ParsePeriod accepts "YYYY-MM".
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid month %q, want YYYY-MM", s)
	}
	return PeriodOf(t), nil
}

func (p Period) first() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Shift moves n months forward (or back for negative n), crossing years.
func (p Period) Shift(n int) Period {
	return PeriodOf(now.With(p.first()).BeginningOfMonth().AddDate(0, n, 0))
}

func (p Period) Days() int {
	return now.With(p.first()).EndOfMonth().Day()
}

// Date renders day of the period in the stored date format.
func (p Period) Date(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", p.Year, int(p.Month), day)
}

func (p Period) Contains(t time.Time) bool {
	return t.Month() == p.Month && t.Year() == p.Year
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}
