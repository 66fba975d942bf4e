package domain

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrInvalidReminder       = errors.New("invalid reminder format (must be HH:MM 24h)")
	ErrPermissionDenied      = errors.New("notification permission denied, enable notifications in your settings")
	ErrNotificationsDisabled = errors.New("enable notifications first")
)

var reminderRegex = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

const DefaultReminderTime = "20:00"

type NotificationSettings struct {
	Enabled                bool   `json:"enabled"`
	DailyReminder          bool   `json:"dailyReminder"`
	ReminderTime           string `json:"reminderTime"`
	CompletionNotification bool   `json:"completionNotification"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled:                false,
		DailyReminder:          true,
		ReminderTime:           DefaultReminderTime,
		CompletionNotification: true,
	}
}

func (s NotificationSettings) Validate() error {
	if !reminderRegex.MatchString(s.ReminderTime) {
		return ErrInvalidReminder
	}
	return nil
}

// ReminderArmed reports whether the daily reminder check should be running.
func (s NotificationSettings) ReminderArmed() bool {
	return s.Enabled && s.DailyReminder
}

// ParseReminderTime splits an HH:MM string.
func ParseReminderTime(s string) (hour, minute int, err error) {
	if !reminderRegex.MatchString(s) {
		return 0, 0, ErrInvalidReminder
	}
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, ErrInvalidReminder
	}
	return hour, minute, nil
}

type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	PermissionDefault Permission = "default"
)

func ParsePermission(s string) Permission {
	switch Permission(s) {
	case PermissionGranted, PermissionDenied:
		return Permission(s)
	default:
		return PermissionDefault
	}
}

type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tag   string `json:"tag"`
}

var (
	DailyReminderNotification = Notification{
		Title: "Daily Habit Reminder",
		Body:  "Don't forget to track your habits today! 💪",
		Tag:   "daily-reminder",
	}
	PerfectDayNotification = Notification{
		Title: "🎉 Perfect Day!",
		Body:  "You completed all your habits today! Keep up the great work!",
		Tag:   "completion",
	}
	TestNotification = Notification{
		Title: "Test Notification",
		Body:  "This is how your habit reminders will look! 🔔",
		Tag:   "test",
	}
)

// Notifier is the platform channel that actually shows a notification.
type Notifier interface {
	Supported() bool
	Permission() Permission

	// RequestPermission asks the platform for permission and returns the
	// resulting state. It must not prompt again once the state is denied.
	RequestPermission(ctx context.Context) (Permission, error)

	Send(ctx context.Context, n Notification) error
}

// Deliver sends n only when the notifier exists, is supported and has been
// granted permission. Otherwise it does nothing and reports no error.
func Deliver(ctx context.Context, notifier Notifier, n Notification) error {
	if notifier == nil || !notifier.Supported() {
		return nil
	}
	if notifier.Permission() != PermissionGranted {
		return nil
	}
	return notifier.Send(ctx, n)
}
