package domain

import (
	"errors"
	"maps"
)

var (
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// DayProgress is the completion record of one calendar date. Habits is a
// snapshot of the habit ids active when it was written and may contain ids
// that no longer exist.
type DayProgress struct {
	Date     string          `json:"date"`
	Habits   map[string]bool `json:"habits"`
	Progress int             `json:"progress"`
}

// CalculateProgress returns round(100 * completed / total), 0 for an empty map.
// Halves round up.
func CalculateProgress(habits map[string]bool) int {
	total := len(habits)
	if total == 0 {
		return 0
	}

	completed := 0
	for _, done := range habits {
		if done {
			completed++
		}
	}

	return (200*completed + total) / (2 * total)
}

// NewDayProgress copies the completion map and derives the percentage from it.
// Progress is never set any other way.
func NewDayProgress(date string, habits map[string]bool) DayProgress {
	snapshot := make(map[string]bool, len(habits))
	maps.Copy(snapshot, habits)

	return DayProgress{
		Date:     date,
		Habits:   snapshot,
		Progress: CalculateProgress(snapshot),
	}
}

func (d DayProgress) Completed(habitID string) bool {
	return d.Habits[habitID]
}

func (d DayProgress) IsPerfect() bool {
	return d.Progress == 100
}

// CompletedCount counts completed ids among the given habits only.
func (d DayProgress) CompletedCount(habits []Habit) int {
	n := 0
	for _, h := range habits {
		if d.Habits[h.ID] {
			n++
		}
	}
	return n
}

// HabitCheck is one row of a day view: a current habit and whether it is done.
type HabitCheck struct {
	Habit
	Completed bool `json:"completed"`
}

// DayView reconciles a stored record with the current habit list. Ids only
// present in the record are ignored and habits missing from it count as not
// done. Progress is the stored value, untouched.
type DayView struct {
	Date           string       `json:"date"`
	Habits         []HabitCheck `json:"habits"`
	CompletedCount int          `json:"completed_count"`
	Total          int          `json:"total"`
	Progress       int          `json:"progress"`
	Recorded       bool         `json:"recorded"`
}

func NewDayView(date string, habits []Habit, record DayProgress, recorded bool) DayView {
	view := DayView{
		Date:     date,
		Habits:   make([]HabitCheck, 0, len(habits)),
		Total:    len(habits),
		Recorded: recorded,
	}
	if recorded {
		view.Progress = record.Progress
	}

	for _, h := range habits {
		done := recorded && record.Completed(h.ID)
		if done {
			view.CompletedCount++
		}
		view.Habits = append(view.Habits, HabitCheck{Habit: h, Completed: done})
	}
	return view
}

// ToggleSnapshot returns the map to store when habitID is switched to
// completed on a day. Without an existing record every current habit starts
// as not done.
func ToggleSnapshot(habits []Habit, record DayProgress, recorded bool, habitID string, completed bool) map[string]bool {
	snapshot := make(map[string]bool, len(habits)+1)
	if recorded {
		maps.Copy(snapshot, record.Habits)
	} else {
		for _, h := range habits {
			snapshot[h.ID] = false
		}
	}
	snapshot[habitID] = completed
	return snapshot
}
