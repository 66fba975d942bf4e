package services

import (
	"context"
	"log"
	"sync"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

// Reminder is the running daily reminder loop.
type Reminder interface {
	Schedule(at string) error
	Cancel()
	Active() bool
}

// NotificationStatus is what a settings screen needs to render.
type NotificationStatus struct {
	Supported      bool                        `json:"supported"`
	Permission     domain.Permission           `json:"permission"`
	ReminderActive bool                        `json:"reminder_active"`
	Settings       domain.NotificationSettings `json:"settings"`
}

type NotificationService struct {
	settings domain.SettingsStore
	notifier domain.Notifier
	reminder Reminder

	mu sync.Mutex
}

func NewNotificationService(settings domain.SettingsStore, notifier domain.Notifier, reminder Reminder) *NotificationService {
	return &NotificationService{
		settings: settings,
		notifier: notifier,
		reminder: reminder,
	}
}

func (s *NotificationService) Settings(ctx context.Context) (domain.NotificationSettings, error) {
	return s.settings.GetNotificationSettings(ctx)
}

func (s *NotificationService) Status(ctx context.Context) (*NotificationStatus, error) {
	settings, err := s.settings.GetNotificationSettings(ctx)
	if err != nil {
		return nil, err
	}

	status := &NotificationStatus{
		Permission:     domain.PermissionDefault,
		ReminderActive: s.reminder.Active(),
		Settings:       settings,
	}
	if s.notifier != nil {
		status.Supported = s.notifier.Supported()
		status.Permission = s.notifier.Permission()
	}
	return status, nil
}

// SaveSettings persists the settings and then arms or cancels the reminder
// to match them.
func (s *NotificationService) SaveSettings(ctx context.Context, settings domain.NotificationSettings) (domain.NotificationSettings, error) {
	if err := settings.Validate(); err != nil {
		return settings, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settings.SaveNotificationSettings(ctx, settings); err != nil {
		return settings, err
	}
	if err := s.apply(settings); err != nil {
		return settings, err
	}
	return settings, nil
}

// Resume arms the reminder from whatever is stored. Called once at startup.
func (s *NotificationService) Resume(ctx context.Context) error {
	settings, err := s.settings.GetNotificationSettings(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := settings.Validate(); err != nil {
		log.Printf("[REMINDER] Stored reminder time %q is invalid, reminder left off", settings.ReminderTime)
		s.reminder.Cancel()
		return nil
	}
	return s.apply(settings)
}

func (s *NotificationService) apply(settings domain.NotificationSettings) error {
	if settings.ReminderArmed() {
		return s.reminder.Schedule(settings.ReminderTime)
	}
	s.reminder.Cancel()
	return nil
}

// RequestPermission reports whether notifications may be shown, asking the
// channel only when the user has not decided yet.
func (s *NotificationService) RequestPermission(ctx context.Context) (bool, error) {
	if s.notifier == nil || !s.notifier.Supported() {
		log.Println("[NOTIFY] Notification channel not supported")
		return false, nil
	}

	switch s.notifier.Permission() {
	case domain.PermissionGranted:
		return true, nil
	case domain.PermissionDenied:
		return false, nil
	}

	p, err := s.notifier.RequestPermission(ctx)
	if err != nil {
		return false, err
	}
	return p == domain.PermissionGranted, nil
}

// Enable asks for permission and, once granted, turns notifications on.
func (s *NotificationService) Enable(ctx context.Context) (domain.NotificationSettings, error) {
	granted, err := s.RequestPermission(ctx)
	if err != nil {
		return domain.NotificationSettings{}, err
	}
	if !granted {
		return domain.NotificationSettings{}, domain.ErrPermissionDenied
	}

	settings, err := s.settings.GetNotificationSettings(ctx)
	if err != nil {
		return settings, err
	}
	settings.Enabled = true
	return s.SaveSettings(ctx, settings)
}

func (s *NotificationService) SendTest(ctx context.Context) error {
	if s.notifier == nil || !s.notifier.Supported() || s.notifier.Permission() != domain.PermissionGranted {
		return domain.ErrNotificationsDisabled
	}

	if err := domain.Deliver(ctx, s.notifier, domain.TestNotification); err != nil {
		log.Printf("[NOTIFY] Failed to send test notification: %v", err)
		return err
	}
	return nil
}

// OnPerfectDay sends the celebration when the user wants it. Failures are
// logged only.
func (s *NotificationService) OnPerfectDay(ctx context.Context, date string) {
	settings, err := s.settings.GetNotificationSettings(ctx)
	if err != nil {
		log.Printf("[NOTIFY] Could not read settings for %s: %v", date, err)
		return
	}
	if !settings.Enabled || !settings.CompletionNotification {
		return
	}

	if err := domain.Deliver(ctx, s.notifier, domain.PerfectDayNotification); err != nil {
		log.Printf("[NOTIFY] Failed to send perfect day notification for %s: %v", date, err)
	}
}
