package domain

import "time"

const DateLayout = "2006-01-02"

// DateKey formats t as the canonical YYYY-MM-DD key in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey accepts only canonical, zero-padded keys. The result is
// midnight in loc.
func ParseDateKey(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil || t.Format(DateLayout) != s {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ValidDateKey reports whether s is a canonical date key.
func ValidDateKey(s string) bool {
	_, err := ParseDateKey(s, time.UTC)
	return err == nil
}

// InMonth reports whether a date key falls in the given year and month.
// Keys that do not parse are never in any month.
func InMonth(key string, year int, month time.Month) bool {
	t, err := ParseDateKey(key, time.UTC)
	if err != nil {
		return false
	}
	return t.Year() == year && t.Month() == month
}

func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthGrid lists the days of a month, preceded by the trailing days of the
// previous month so that index 0 is a Sunday. Nothing is appended after the
// last day.
func MonthGrid(year int, month time.Month, loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.Local
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	offset := int(first.Weekday())
	days := DaysIn(year, month)

	grid := make([]time.Time, 0, offset+days)
	for i := 0; i < offset; i++ {
		grid = append(grid, time.Date(year, month, i-offset+1, 0, 0, 0, 0, loc))
	}
	for d := 1; d <= days; d++ {
		grid = append(grid, time.Date(year, month, d, 0, 0, 0, 0, loc))
	}
	return grid
}

func MonthName(month time.Month) string {
	return month.String()
}
