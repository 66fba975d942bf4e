package domain

import (
	"slices"
	"strings"
	"time"
)

// MonthRecords returns the records of one month sorted by ascending date.
func MonthRecords(all []DayProgress, year int, month time.Month) []DayProgress {
	var out []DayProgress
	for _, p := range all {
		if InMonth(p.Date, year, month) {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b DayProgress) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out
}

func DailySeries(all []DayProgress, year int, month time.Month) []DailyPoint {
	records := MonthRecords(all, year, month)

	series := make([]DailyPoint, 0, len(records))
	for _, p := range records {
		t, _ := ParseDateKey(p.Date, time.UTC)
		series = append(series, DailyPoint{
			Date:     p.Date,
			Day:      t.Day(),
			Progress: p.Progress,
		})
	}
	return series
}

// CurrentStreak walks records from the most recent date backwards and counts
// how many in a row have the habit completed. Calendar gaps are not breaks;
// only a record where the habit is false or missing stops the count.
func CurrentStreak(habitID string, all []DayProgress) int {
	sorted := slices.Clone(all)
	slices.SortStableFunc(sorted, func(a, b DayProgress) int {
		return strings.Compare(b.Date, a.Date)
	})
	return streakFrom(habitID, sorted)
}

func streakFrom(habitID string, newestFirst []DayProgress) int {
	current := 0
	for _, p := range newestFirst {
		if !p.Habits[habitID] {
			break
		}
		current++
	}
	return current
}

func Streaks(habits []Habit, all []DayProgress) []HabitStreak {
	sorted := slices.Clone(all)
	slices.SortStableFunc(sorted, func(a, b DayProgress) int {
		return strings.Compare(b.Date, a.Date)
	})

	out := make([]HabitStreak, 0, len(habits))
	for _, h := range habits {
		out = append(out, HabitStreak{
			HabitID: h.ID,
			Name:    h.Name,
			Color:   h.Color,
			Icon:    h.Icon,
			Streak:  streakFrom(h.ID, sorted),
		})
	}
	return out
}

// Summarize aggregates one month. Best and worst day are the first record,
// in ascending date order, holding the max and min progress.
func Summarize(all []DayProgress, year int, month time.Month) MonthlySummary {
	records := MonthRecords(all, year, month)

	var summary MonthlySummary
	summary.TotalDays = len(records)
	if len(records) == 0 {
		return summary
	}

	sum := 0
	best, worst := 0, 0
	for i, p := range records {
		sum += p.Progress
		if p.Progress == 100 {
			summary.PerfectDays++
		}
		if p.Progress > records[best].Progress {
			best = i
		}
		if p.Progress < records[worst].Progress {
			worst = i
		}
	}

	n := len(records)
	summary.AvgProgress = (2*sum + n) / (2 * n)

	bestDay := records[best]
	worstDay := records[worst]
	summary.BestDay = &bestDay
	summary.WorstDay = &worstDay

	return summary
}

func Monthly(all []DayProgress, year int, month time.Month) MonthlyReport {
	return MonthlyReport{
		Year:      year,
		Month:     int(month),
		MonthName: MonthName(month),
		Daily:     DailySeries(all, year, month),
		Summary:   Summarize(all, year, month),
	}
}

func indexByDate(all []DayProgress) map[string]DayProgress {
	idx := make(map[string]DayProgress, len(all))
	for _, p := range all {
		if _, seen := idx[p.Date]; !seen {
			idx[p.Date] = p
		}
	}
	return idx
}

// Heatmap covers the HeatmapDays calendar days ending on today, oldest
// first. Days without a record get progress 0.
func Heatmap(all []DayProgress, today time.Time) []HeatmapCell {
	idx := indexByDate(all)
	y, m, d := today.Date()

	cells := make([]HeatmapCell, 0, HeatmapDays)
	for i := HeatmapDays - 1; i >= 0; i-- {
		day := time.Date(y, m, d-i, 0, 0, 0, 0, today.Location())
		key := DateKey(day)
		cells = append(cells, HeatmapCell{
			Date:     key,
			Day:      day.Day(),
			Progress: idx[key].Progress,
		})
	}
	return cells
}

// Calendar annotates the month grid with the stored progress of each day.
func Calendar(all []DayProgress, year int, month time.Month, now time.Time) CalendarMonth {
	idx := indexByDate(all)
	todayKey := DateKey(now)

	grid := MonthGrid(year, month, now.Location())
	days := make([]CalendarDay, 0, len(grid))
	for _, t := range grid {
		key := DateKey(t)
		rec, ok := idx[key]
		days = append(days, CalendarDay{
			Date:     key,
			Day:      t.Day(),
			Weekday:  int(t.Weekday()),
			InMonth:  t.Month() == month,
			IsToday:  key == todayKey,
			Progress: rec.Progress,
			Recorded: ok,
		})
	}

	return CalendarMonth{
		Year:      year,
		Month:     int(month),
		MonthName: MonthName(month),
		Days:      days,
	}
}
