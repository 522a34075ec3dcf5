package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/palette"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const (
	barWidth   = 12
	noExpenses = "No expenses yet."
)

// heat levels from no spend to the busiest day of the month
var heat = []string{"·", "░", "▒", "▓", "█"}

// Renderer turns computed views into chat text. It never queries anything.
type Renderer struct {
	home      string
	weekStart time.Weekday
}

func NewRenderer(home string, weekStart time.Weekday) *Renderer {
	return &Renderer{home: home, weekStart: weekStart}
}

// Home is the currency every amount is shown in.
func (r *Renderer) Home() string {
	return r.home
}

func (r *Renderer) money(v float64) string {
	return Money(r.home, v)
}

func (r *Renderer) Dashboard(d *reports.Dashboard, categories []category.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 Today (%s): %s\n", d.Today, r.money(d.TodayTotal))
	fmt.Fprintf(&b, "🗓 %s: %s\n\n", d.Period, r.money(d.MonthTotal))
	b.WriteString(r.Calendar(d.Period, d.Calendar))
	b.WriteString("\nRecent:\n")
	if len(d.Recent) == 0 {
		b.WriteString(noExpenses + "\n")
	}
	for _, e := range d.Recent {
		b.WriteString(r.ExpenseLine(e, categories))
		b.WriteByte('\n')
	}
	b.WriteString("\n/expense add · /list all · /analytics charts · /prev /next month")
	return b.String()
}

// Calendar draws the month as a heat map, one row per week.
func (r *Renderer) Calendar(p reports.Period, days map[int]float64) string {
	peak := 0.0
	for _, v := range days {
		peak = math.Max(peak, v)
	}

	var b strings.Builder
	for i := 0; i < 7; i++ {
		b.WriteString(time.Weekday((int(r.weekStart)+i)%7).String()[:2])
		b.WriteByte(' ')
	}
	b.WriteByte('\n')

	first := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) - int(r.weekStart) + 7) % 7
	b.WriteString(strings.Repeat("   ", offset))
	for day := 1; day <= p.Days(); day++ {
		b.WriteString(heatCell(days[day], peak) + " ")
		if (offset+day)%7 == 0 && day != p.Days() {
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func heatCell(v, peak float64) string {
	if v <= 0 || peak <= 0 {
		return heat[0] + heat[0]
	}
	level := 1 + int(v/peak*float64(len(heat)-2)+0.5)
	if level >= len(heat) {
		level = len(heat) - 1
	}
	return heat[level] + heat[level]
}

// ExpenseLine is the one-line form used in every list.
func (r *Renderer) ExpenseLine(e expense.Record, categories []category.Record) string {
	when := e.Date
	if e.Time != nil {
		when += " " + e.Time.String()
	}
	name := e.CategoryOrDefault()
	return fmt.Sprintf("#%d %s %s %s %s · %s", e.ID, when, iconOf(name, categories), name, Amount(r.home, e), e.Name)
}

func (r *Renderer) Expenses(list []expense.Record, categories []category.Record, opt expense.SortOption) string {
	if len(list) == 0 {
		return noExpenses
	}
	var b strings.Builder
	fmt.Fprintf(&b, "All expenses (%s):\n", opt)
	total := 0.0
	for _, e := range list {
		b.WriteString(r.ExpenseLine(e, categories))
		b.WriteByte('\n')
		total += e.AmountOrZero()
	}
	fmt.Fprintf(&b, "Total: %s", r.money(total))
	return b.String()
}

// Expense shows one record in full, the way the edit screen does.
func (r *Renderer) Expense(e expense.Record, categories []category.Record) string {
	when := "-"
	if e.Time != nil {
		when = e.Time.String()
	}
	name := e.CategoryOrDefault()
	return fmt.Sprintf("Expense #%d\nNote: %s\nAmount: %s\nDate: %s\nTime: %s\nCategory: %s %s",
		e.ID, e.Name, Amount(r.home, e), e.Date, when, iconOf(name, categories), name)
}

func (r *Renderer) Analytics(a *reports.Analytics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s\nTotal: %s\n\nBy category:\n", a.Period, r.money(a.Total))
	for _, c := range a.Categories {
		share := 0.0
		if a.Total > 0 {
			share = c.Amount / a.Total * 100
		}
		fmt.Fprintf(&b, "%s %s %s %s (%.0f%%)\n", c.Icon, c.Name, bar(c.Amount, a.Total), r.money(c.Amount), share)
	}

	peak := 0.0
	for _, w := range a.Weeks {
		peak = math.Max(peak, w)
	}
	b.WriteString("\nBy week:\n")
	for i, w := range a.Weeks {
		fmt.Fprintf(&b, "W%d %s %s\n", i+1, bar(w, peak), r.money(w))
	}
	b.WriteString("\n/prev /next month · /back")
	return b.String()
}

func bar(v, peak float64) string {
	n := 0
	if peak > 0 && v > 0 {
		n = int(math.Ceil(v / peak * barWidth))
	}
	return strings.Repeat("▇", n) + strings.Repeat(" ", barWidth-n)
}

func (r *Renderer) Categories(cats []category.Record) string {
	if len(cats) == 0 {
		return "No categories yet. Create one with /category <name>."
	}
	var b strings.Builder
	b.WriteString("Categories:\n")
	for _, c := range cats {
		fmt.Fprintf(&b, "%s %s %s\n", c.Icon, c.Name, palette.Color(c.Color).Hex())
	}
	return strings.TrimRight(b.String(), "\n")
}

// iconOf prefers the icon stored with the category; names without a stored
// category resolve through the palette.
func iconOf(name string, categories []category.Record) string {
	for _, c := range categories {
		if category.SameName(c.Name, name) && c.Icon != "" {
			return c.Icon
		}
	}
	return palette.IconFor(name)
}
