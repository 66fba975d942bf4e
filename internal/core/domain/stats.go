package domain

import (
	"errors"
	"time"
)

var ErrInvalidMonth = errors.New("invalid month, expected year 1-9999 and month 1-12")

const HeatmapDays = 30

type DailyPoint struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	Progress int    `json:"progress"`
}

type HabitStreak struct {
	HabitID string `json:"habit_id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Icon    string `json:"icon"`
	Streak  int    `json:"streak"`
}

type MonthlySummary struct {
	TotalDays   int          `json:"total_days"`
	AvgProgress int          `json:"avg_progress"`
	BestDay     *DayProgress `json:"best_day,omitempty"`
	WorstDay    *DayProgress `json:"worst_day,omitempty"`
	PerfectDays int          `json:"perfect_days"`
}

type MonthlyReport struct {
	Year      int            `json:"year"`
	Month     int            `json:"month"`
	MonthName string         `json:"month_name"`
	Daily     []DailyPoint   `json:"daily"`
	Summary   MonthlySummary `json:"summary"`
}

type HeatmapCell struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	Progress int    `json:"progress"`
}

type CalendarDay struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	Weekday  int    `json:"weekday"`
	InMonth  bool   `json:"in_month"`
	IsToday  bool   `json:"is_today"`
	Progress int    `json:"progress"`
	Recorded bool   `json:"recorded"`
}

type CalendarMonth struct {
	Year      int           `json:"year"`
	Month     int           `json:"month"`
	MonthName string        `json:"month_name"`
	Days      []CalendarDay `json:"days"`
}

// Snapshot is the input of every derivation: the current habits, all stored
// day records and the moment they were read.
type Snapshot struct {
	Habits   []Habit
	Progress []DayProgress
	Now      time.Time
}

// ValidMonth reports whether year and month can be rendered.
func ValidMonth(year int, month time.Month) error {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return ErrInvalidMonth
	}
	return nil
}
