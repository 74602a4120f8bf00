// Package calendar computes the pure date model behind the picker: the
// padded month grid, effective selection bounds, and time-of-day
// windows. Everything here is a pure function of its inputs plus an
// injectable "today", so results are safe to memoize and re-request.
package calendar

import "time"

// Cell is one day slot in a month grid. Date is always a valid day at
// midnight UTC-of-location; InMonth marks whether it belongs to the
// displayed month or is adjacent-month padding.
type Cell struct {
	Date    time.Time
	InMonth bool
}

// MonthMatrix returns the day grid for the given month as complete
// weeks of 7 cells, padded with trailing days of the previous month and
// leading days of the next. firstDay rotates which weekday starts each
// row. The result always has at least 5 rows and a cell count divisible
// by 7.
func MonthMatrix(year int, month time.Month, firstDay time.Weekday) [][]Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// Days of leading padding before the 1st, relative to firstDay.
	lead := (int(first.Weekday()) - int(firstDay) + 7) % 7

	daysIn := DaysInMonth(year, month)
	rows := (lead + daysIn + 6) / 7
	if rows < 5 {
		rows = 5
	}

	start := first.AddDate(0, 0, -lead)
	grid := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		week := make([]Cell, 7)
		for c := 0; c < 7; c++ {
			d := start.AddDate(0, 0, r*7+c)
			week[c] = Cell{Date: d, InMonth: d.Month() == month && d.Year() == year}
		}
		grid[r] = week
	}
	return grid
}

// WeekdayLabels returns the two-letter weekday headers rotated so the
// given weekday comes first.
func WeekdayLabels(firstDay time.Weekday) []string {
	base := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	out := make([]string, 7)
	for i := 0; i < 7; i++ {
		out[i] = base[(int(firstDay)+i)%7]
	}
	return out
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths moves a date by n months, clamping the day to the target
// month's length. Unlike time.Time.AddDate, overflow days never
// normalize into the following month: May 31 plus one month is
// June 30, not July 1.
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)

	day := t.Day()
	if max := DaysInMonth(first.Year(), first.Month()); day > max {
		day = max
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// StripTime truncates an instant to its date component at midnight UTC.
// Bounds comparisons operate on date components only; time-of-day
// constraints are checked separately.
func StripTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
