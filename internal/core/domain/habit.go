package domain

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty   = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
	ErrInvalidColor     = errors.New("invalid color format (must be #RRGGBB)")
	ErrHabitNotFound    = errors.New("habit not found")
	ErrInvalidOrder     = errors.New("order must list every habit exactly once")
	ErrNoHabits         = errors.New("at least one habit is required")
	ErrHabitIDRequired  = errors.New("habit id is required")
	ErrDuplicateHabitID = errors.New("habit ids must be unique")
)

var colorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

const (
	MaxNameLen = 100

	// DefaultHabitName is used when a habit is added without a name.
	DefaultHabitName = "New Habit"
)

// Palettes handed out round-robin to new habits that don't pick their own.
var (
	ColorPalette = []string{
		"#10b981", "#3b82f6", "#8b5cf6", "#ec4899", "#f59e0b",
		"#ef4444", "#14b8a6", "#06b6d4", "#6366f1", "#f97316",
	}
	IconPalette = []string{
		"💧", "🏃", "📖", "🧘", "🥗", "💪", "🎯", "✍️", "🌅", "😴", "🎨", "🎵", "🧠", "💼",
	}
)

type Habit struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrHabitNameEmpty
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLen {
		return "", ErrHabitNameTooLong
	}
	return trimmed, nil
}

func validateColor(color string) error {
	if color != "" && !colorRegex.MatchString(color) {
		return ErrInvalidColor
	}
	return nil
}

// NewHabit builds a habit for the given list position. Position only picks
// the default color and icon.
func NewHabit(name, color, icon string, position int) (*Habit, error) {
	cleanName, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if err := validateColor(color); err != nil {
		return nil, err
	}

	if position < 0 {
		position = 0
	}
	if color == "" {
		color = ColorPalette[position%len(ColorPalette)]
	}
	if icon == "" {
		icon = IconPalette[position%len(IconPalette)]
	}

	return &Habit{
		ID:    uuid.NewString(),
		Name:  cleanName,
		Color: color,
		Icon:  icon,
	}, nil
}

// Update edits the habit in place. Empty color or icon keep the current value.
func (h *Habit) Update(name, color, icon string) error {
	cleanName, err := validateName(name)
	if err != nil {
		return err
	}
	if err := validateColor(color); err != nil {
		return err
	}

	h.Name = cleanName
	if color != "" {
		h.Color = color
	}
	if icon != "" {
		h.Icon = icon
	}
	return nil
}

// Validate checks a habit that arrives from outside, e.g. a full list replace.
func (h Habit) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return ErrHabitIDRequired
	}
	if _, err := validateName(h.Name); err != nil {
		return err
	}
	return validateColor(h.Color)
}

// IndexHabits returns the position of each habit id.
func IndexHabits(habits []Habit) map[string]int {
	idx := make(map[string]int, len(habits))
	for i, h := range habits {
		idx[h.ID] = i
	}
	return idx
}
