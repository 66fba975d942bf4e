package workers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

const DefaultReminderInterval = time.Minute

const minuteKeyLayout = "2006-01-02 15:04"

// ReminderScheduler runs at most one periodic check that sends the daily
// reminder when the local clock reaches the configured HH:MM.
type ReminderScheduler struct {
	notifier domain.Notifier
	interval time.Duration
	now      func() time.Time

	// lifecycle serialises Schedule and Cancel so two loops never overlap.
	lifecycle sync.Mutex

	mu        sync.Mutex
	at        string
	lastFired string
	stop      context.CancelFunc
	done      chan struct{}
}

// NewReminderScheduler builds an idle scheduler. now must return the time in
// the user's location; nil means time.Now.
func NewReminderScheduler(notifier domain.Notifier, interval time.Duration, now func() time.Time) *ReminderScheduler {
	if interval <= 0 {
		interval = DefaultReminderInterval
	}
	if now == nil {
		now = time.Now
	}
	return &ReminderScheduler{
		notifier: notifier,
		interval: interval,
		now:      now,
	}
}

// Schedule replaces any running loop with one that fires at the given time.
// An invalid time leaves the current loop untouched.
func (s *ReminderScheduler) Schedule(at string) error {
	hour, minute, err := domain.ParseReminderTime(at)
	if err != nil {
		return err
	}

	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.stopLoop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	s.mu.Lock()
	s.at = at
	s.stop = cancel
	s.done = done
	s.mu.Unlock()

	go s.run(ctx, hour, minute, done)

	log.Printf("[REMINDER] Daily reminder armed for %s", at)
	return nil
}

// Cancel stops the running loop, if any, and waits for it to exit.
func (s *ReminderScheduler) Cancel() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if s.stopLoop() {
		log.Println("[REMINDER] Daily reminder cancelled")
	}
}

func (s *ReminderScheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

// At returns the armed time, or "" when idle.
func (s *ReminderScheduler) At() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.at
}

// stopLoop must be called with lifecycle held.
func (s *ReminderScheduler) stopLoop() bool {
	s.mu.Lock()
	cancel, done := s.stop, s.done
	s.stop, s.done, s.at = nil, nil, ""
	s.mu.Unlock()

	if cancel == nil {
		return false
	}
	cancel()
	<-done
	return true
}

func (s *ReminderScheduler) run(ctx context.Context, hour, minute int, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.check(ctx, hour, minute)
	for {
		select {
		case <-ticker.C:
			s.check(ctx, hour, minute)
		case <-ctx.Done():
			return
		}
	}
}

func (s *ReminderScheduler) check(ctx context.Context, hour, minute int) {
	now := s.now()
	if now.Hour() != hour || now.Minute() != minute {
		return
	}

	key := now.Format(minuteKeyLayout)

	s.mu.Lock()
	if s.lastFired == key {
		s.mu.Unlock()
		return
	}
	s.lastFired = key
	s.mu.Unlock()

	if err := domain.Deliver(ctx, s.notifier, domain.DailyReminderNotification); err != nil {
		log.Printf("[REMINDER] Failed to send daily reminder: %v", err)
	}
}
