package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

// StatsService loads the stored state and hands it to the pure derivations
// in domain. It never writes.
type StatsService struct {
	store domain.Store
	now   func() time.Time
}

// NewStatsService takes a clock that returns the time in the user's location.
func NewStatsService(store domain.Store, now func() time.Time) *StatsService {
	if now == nil {
		now = time.Now
	}
	return &StatsService{
		store: store,
		now:   now,
	}
}

func (s *StatsService) snapshot(ctx context.Context) (domain.Snapshot, error) {
	habits, err := s.store.ListHabits(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	all, err := s.store.ListAllProgress(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.Snapshot{Habits: habits, Progress: all, Now: s.now()}, nil
}

// CurrentMonth is the default month for reports.
func (s *StatsService) CurrentMonth() (int, time.Month) {
	now := s.now()
	return now.Year(), now.Month()
}

func (s *StatsService) Monthly(ctx context.Context, year int, month time.Month) (*domain.MonthlyReport, error) {
	if err := domain.ValidMonth(year, month); err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	report := domain.Monthly(snap.Progress, year, month)
	return &report, nil
}

func (s *StatsService) Streaks(ctx context.Context) ([]domain.HabitStreak, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Streaks(snap.Habits, snap.Progress), nil
}

func (s *StatsService) Heatmap(ctx context.Context) ([]domain.HeatmapCell, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Heatmap(snap.Progress, snap.Now), nil
}

func (s *StatsService) Calendar(ctx context.Context, year int, month time.Month) (*domain.CalendarMonth, error) {
	if err := domain.ValidMonth(year, month); err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	cal := domain.Calendar(snap.Progress, year, month, snap.Now)
	return &cal, nil
}
