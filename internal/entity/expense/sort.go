package expense

import (
	"sort"
	"strings"
)

type SortOption string

const (
	SortAmountAsc    SortOption = "amount-asc"
	SortAmountDesc   SortOption = "amount-desc"
	SortNewest       SortOption = "newest"
	SortOldest       SortOption = "oldest"
	SortCategoryAsc  SortOption = "category-asc"
	SortCategoryDesc SortOption = "category-desc"
)

var SortOptions = []SortOption{
	SortAmountAsc, SortAmountDesc, SortNewest, SortOldest, SortCategoryAsc, SortCategoryDesc,
}

// Sort returns a sorted copy of records. Unknown options fall back to SortNewest.
func Sort(records []Record, opt SortOption) []Record {
	res := make([]Record, len(records))
	copy(res, records)

	var less func(a, b Record) bool
	switch opt {
	case SortAmountAsc:
		less = func(a, b Record) bool { return a.AmountOrZero() < b.AmountOrZero() }
	case SortAmountDesc:
		less = func(a, b Record) bool { return a.AmountOrZero() > b.AmountOrZero() }
	case SortOldest:
		less = func(a, b Record) bool { return newer(b, a) }
	case SortCategoryAsc:
		less = func(a, b Record) bool { return categoryKey(a) < categoryKey(b) }
	case SortCategoryDesc:
		less = func(a, b Record) bool { return categoryKey(a) > categoryKey(b) }
	default:
		less = newer
	}

	sort.SliceStable(res, func(i, j int) bool {
		return less(res[i], res[j])
	})
	return res
}

// newer orders by date string then time of day, both descending. A missing
// time sorts as midnight.
func newer(a, b Record) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	return minutes(a) > minutes(b)
}

func minutes(r Record) int {
	if r.Time == nil {
		return 0
	}
	return r.Time.Minutes()
}

func categoryKey(r Record) string {
	return strings.ToLower(r.Category)
}
