package domain

import (
	"context"
)

// Store persists habits and day records. Malformed stored data reads as an
// empty collection; errors are reserved for the backend itself failing.
type Store interface {
	// ListHabits returns habits in insertion order.
	ListHabits(ctx context.Context) ([]Habit, error)

	// ReplaceHabits overwrites the whole habit collection.
	ReplaceHabits(ctx context.Context, habits []Habit) error

	// ListAllProgress returns every day record, in no particular order.
	ListAllProgress(ctx context.Context) ([]DayProgress, error)

	// GetProgress looks a record up by exact date key.
	GetProgress(ctx context.Context, date string) (DayProgress, bool, error)

	// SetProgress recomputes the percentage from habits and upserts the
	// record for date.
	SetProgress(ctx context.Context, date string, habits map[string]bool) (DayProgress, error)
}

type SettingsStore interface {
	// GetNotificationSettings returns the defaults when nothing usable is stored.
	GetNotificationSettings(ctx context.Context) (NotificationSettings, error)

	SaveNotificationSettings(ctx context.Context, settings NotificationSettings) error
}
