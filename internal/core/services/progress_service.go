package services

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

// CompletionListener is told when a write leaves a day at 100%.
type CompletionListener interface {
	OnPerfectDay(ctx context.Context, date string)
}

type ProgressService struct {
	store    domain.Store
	listener CompletionListener

	mu sync.Mutex
}

func NewProgressService(store domain.Store, listener CompletionListener) *ProgressService {
	return &ProgressService{
		store:    store,
		listener: listener,
	}
}

type ToggleInput struct {
	Date      string
	HabitID   string
	Completed bool
}

func (s *ProgressService) List(ctx context.Context) ([]domain.DayProgress, error) {
	return s.store.ListAllProgress(ctx)
}

func (s *ProgressService) Day(ctx context.Context, date string) (*domain.DayView, error) {
	if !domain.ValidDateKey(date) {
		return nil, domain.ErrInvalidDate
	}

	habits, err := s.store.ListHabits(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok, err := s.store.GetProgress(ctx, date)
	if err != nil {
		return nil, err
	}

	view := domain.NewDayView(date, habits, rec, ok)
	return &view, nil
}

// Toggle marks one habit done or not done on a day and stores the result.
func (s *ProgressService) Toggle(ctx context.Context, input ToggleInput) (*domain.DayView, error) {
	if !domain.ValidDateKey(input.Date) {
		return nil, domain.ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.store.ListHabits(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := domain.IndexHabits(habits)[input.HabitID]; !ok {
		return nil, domain.ErrHabitNotFound
	}

	rec, ok, err := s.store.GetProgress(ctx, input.Date)
	if err != nil {
		return nil, err
	}

	snapshot := domain.ToggleSnapshot(habits, rec, ok, input.HabitID, input.Completed)
	saved, err := s.store.SetProgress(ctx, input.Date, snapshot)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, saved)

	view := domain.NewDayView(input.Date, habits, saved, true)
	return &view, nil
}

// Set stores a completion map for a day as given.
func (s *ProgressService) Set(ctx context.Context, date string, habits map[string]bool) (*domain.DayProgress, error) {
	if !domain.ValidDateKey(date) {
		return nil, domain.ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.store.SetProgress(ctx, date, habits)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, saved)
	return &saved, nil
}

func (s *ProgressService) notify(ctx context.Context, rec domain.DayProgress) {
	if s.listener != nil && rec.IsPerfect() {
		s.listener.OnPerfectDay(ctx, rec.Date)
	}
}
