package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calendar/internal/core/services"
)

func TestProgressService_Toggle(t *testing.T) {
	ctx := context.Background()

	t.Run("First toggle of a day snapshots every current habit", func(t *testing.T) {
		store := NewMockStore(threeHabits()...)
		svc := services.NewProgressService(store, nil)

		view, err := svc.Toggle(ctx, services.ToggleInput{Date: "2024-06-01", HabitID: "h2", Completed: true})
		require.NoError(t, err)

		assert.Equal(t, 33, view.Progress)
		assert.Equal(t, 1, view.CompletedCount)
		assert.Equal(t, 3, view.Total)

		rec, ok, _ := store.GetProgress(ctx, "2024-06-01")
		require.True(t, ok)
		assert.Equal(t, map[string]bool{"h1": false, "h2": true, "h3": false}, rec.Habits)
	})

	t.Run("Completing every habit fires the listener once per perfect write", func(t *testing.T) {
		store := NewMockStore(threeHabits()...)
		listener := &recordingListener{}
		svc := services.NewProgressService(store, listener)

		for _, id := range []string{"h1", "h2"} {
			_, err := svc.Toggle(ctx, services.ToggleInput{Date: "2024-06-01", HabitID: id, Completed: true})
			require.NoError(t, err)
		}
		assert.Empty(t, listener.dates)

		view, err := svc.Toggle(ctx, services.ToggleInput{Date: "2024-06-01", HabitID: "h3", Completed: true})
		require.NoError(t, err)
		assert.Equal(t, 100, view.Progress)
		assert.Equal(t, []string{"2024-06-01"}, listener.dates)
	})

	t.Run("Untoggling rewrites the same record", func(t *testing.T) {
		store := NewMockStore(threeHabits()...)
		svc := services.NewProgressService(store, nil)

		_, _ = svc.Toggle(ctx, services.ToggleInput{Date: "2024-06-01", HabitID: "h1", Completed: true})
		view, err := svc.Toggle(ctx, services.ToggleInput{Date: "2024-06-01", HabitID: "h1", Completed: false})
		require.NoError(t, err)
		assert.Equal(t, 0, view.Progress)

		all, _ := svc.List(ctx)
		assert.Len(t, all, 1)
	})

	t.Run("Existing record keeps orphaned ids in the percentage", func(t *testing.T) {
		store := NewMockStore(threeHabits()...)
		store.seed("2024-06-01", map[string]bool{"h1": false, "gone": true})
		svc := services.NewProgressService(store, nil)

		view, err := svc.Toggle(ctx, services.ToggleInput{Date: "2024-06-01", HabitID: "h1", Completed: true})
		require.NoError(t, err)
		assert.Equal(t, 100, view.Progress)
		assert.Equal(t, 1, view.CompletedCount)
	})

	t.Run("Fail: Unknown habit", func(t *testing.T) {
		svc := services.NewProgressService(NewMockStore(threeHabits()...), nil)

		_, err := svc.Toggle(ctx, services.ToggleInput{Date: "2024-06-01", HabitID: "nope", Completed: true})
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Fail: Bad date", func(t *testing.T) {
		svc := services.NewProgressService(NewMockStore(threeHabits()...), nil)

		_, err := svc.Toggle(ctx, services.ToggleInput{Date: "2024-13-01", HabitID: "h1"})
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})

	t.Run("Fail: Store error", func(t *testing.T) {
		store := NewMockStore(threeHabits()...)
		store.simulateError = errors.New("offline")
		svc := services.NewProgressService(store, nil)

		_, err := svc.Toggle(ctx, services.ToggleInput{Date: "2024-06-01", HabitID: "h1"})
		assert.EqualError(t, err, "offline")
	})
}

func TestProgressService_Day(t *testing.T) {
	ctx := context.Background()

	store := NewMockStore(threeHabits()...)
	store.seed("2024-06-01", map[string]bool{"h1": true, "h2": false})
	svc := services.NewProgressService(store, nil)

	t.Run("Recorded day", func(t *testing.T) {
		view, err := svc.Day(ctx, "2024-06-01")
		require.NoError(t, err)
		assert.True(t, view.Recorded)
		assert.Equal(t, 50, view.Progress)
		assert.Equal(t, 1, view.CompletedCount)
		assert.Equal(t, 3, view.Total)
	})

	t.Run("Empty day", func(t *testing.T) {
		view, err := svc.Day(ctx, "2024-06-02")
		require.NoError(t, err)
		assert.False(t, view.Recorded)
		assert.Zero(t, view.Progress)
	})

	t.Run("Bad date", func(t *testing.T) {
		_, err := svc.Day(ctx, "June 1st")
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestProgressService_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores the map as given and derives progress", func(t *testing.T) {
		listener := &recordingListener{}
		svc := services.NewProgressService(NewMockStore(), listener)

		rec, err := svc.Set(ctx, "2024-06-01", map[string]bool{"A": true, "B": true, "C": false})
		require.NoError(t, err)
		assert.Equal(t, 67, rec.Progress)
		assert.Empty(t, listener.dates)

		rec, err = svc.Set(ctx, "2024-06-01", map[string]bool{"A": true})
		require.NoError(t, err)
		assert.Equal(t, 100, rec.Progress)
		assert.Equal(t, []string{"2024-06-01"}, listener.dates)
	})

	t.Run("Empty map is stored with zero progress", func(t *testing.T) {
		svc := services.NewProgressService(NewMockStore(), nil)

		rec, err := svc.Set(ctx, "2024-06-01", map[string]bool{})
		require.NoError(t, err)
		assert.Zero(t, rec.Progress)
	})

	t.Run("Bad date", func(t *testing.T) {
		svc := services.NewProgressService(NewMockStore(), nil)
		_, err := svc.Set(ctx, "2024-6-1", map[string]bool{})
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}
