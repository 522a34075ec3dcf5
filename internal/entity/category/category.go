package category

import "strings"

// Record is a user-visible expense category. Color is packed ARGB.
type Record struct {
	Name  string
	Icon  string
	Color uint32
}

// Defaults are seeded once, on the first run against an empty store.
var Defaults = []string{"Food", "Transport", "Shopping", "Bills", "Others"}

// SameName compares category names the way the rest of the app does: ignoring case.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Contains reports whether names holds name, case-insensitively.
func Contains(names []string, name string) bool {
	for _, n := range names {
		if SameName(n, name) {
			return true
		}
	}
	return false
}
