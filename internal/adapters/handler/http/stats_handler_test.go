package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

func seedJune(t *testing.T, app *testApp) {
	t.Helper()
	ctx := context.Background()
	app.seedHabits(t, habitRead, habitRun)

	for date, habits := range map[string]map[string]bool{
		"2024-05-31": {"h1": true, "h2": true},
		"2024-06-01": {"h1": true, "h2": true},
		"2024-06-02": {"h1": true, "h2": false},
	} {
		_, err := app.store.SetProgress(ctx, date, habits)
		require.NoError(t, err)
	}
}

func TestStatsMonthly(t *testing.T) {
	app := newTestApp(t, appOptions{})
	seedJune(t, app)

	t.Run("Defaults to the current month", func(t *testing.T) {
		w := app.do(http.MethodGet, api+"/stats/monthly", nil)
		requireStatus(t, http.StatusOK, w)

		report := decode[domain.MonthlyReport](t, w)
		assert.Equal(t, 2024, report.Year)
		assert.Equal(t, 6, report.Month)
		assert.Equal(t, "June", report.MonthName)
		assert.Len(t, report.Daily, 30)

		assert.Equal(t, 2, report.Summary.TotalDays)
		assert.Equal(t, 1, report.Summary.PerfectDays)
		assert.Equal(t, 75, report.Summary.AvgProgress)
		require.NotNil(t, report.Summary.BestDay)
		assert.Equal(t, "2024-06-01", report.Summary.BestDay.Date)
		require.NotNil(t, report.Summary.WorstDay)
		assert.Equal(t, "2024-06-02", report.Summary.WorstDay.Date)
	})

	t.Run("Explicit month", func(t *testing.T) {
		w := app.do(http.MethodGet, api+"/stats/monthly?year=2024&month=5", nil)
		requireStatus(t, http.StatusOK, w)

		report := decode[domain.MonthlyReport](t, w)
		assert.Len(t, report.Daily, 31)
		assert.Equal(t, 1, report.Summary.TotalDays)
	})

	t.Run("Empty month has no best or worst day", func(t *testing.T) {
		w := app.do(http.MethodGet, api+"/stats/monthly?year=2023&month=2", nil)
		requireStatus(t, http.StatusOK, w)

		report := decode[domain.MonthlyReport](t, w)
		assert.Len(t, report.Daily, 28)
		assert.Nil(t, report.Summary.BestDay)
		assert.Equal(t, 0, report.Summary.AvgProgress)
	})

	for _, q := range []string{"?month=13", "?month=0", "?month=june", "?year=abc", "?year=0"} {
		t.Run("Invalid query "+q, func(t *testing.T) {
			w := app.do(http.MethodGet, api+"/stats/monthly"+q, nil)
			requireStatus(t, http.StatusBadRequest, w)
			assert.Contains(t, w.Body.String(), domain.ErrInvalidMonth.Error())
		})
	}
}

func TestStatsStreaks(t *testing.T) {
	app := newTestApp(t, appOptions{})
	seedJune(t, app)

	w := app.do(http.MethodGet, api+"/stats/streaks", nil)
	requireStatus(t, http.StatusOK, w)

	streaks := decode[[]domain.HabitStreak](t, w)
	require.Len(t, streaks, 2)
	assert.Equal(t, "h1", streaks[0].HabitID)
	assert.Equal(t, 3, streaks[0].Streak)
	assert.Equal(t, 0, streaks[1].Streak)
}

func TestStatsHeatmap(t *testing.T) {
	app := newTestApp(t, appOptions{})
	seedJune(t, app)

	w := app.do(http.MethodGet, api+"/stats/heatmap", nil)
	requireStatus(t, http.StatusOK, w)

	cells := decode[[]domain.HeatmapCell](t, w)
	require.Len(t, cells, domain.HeatmapDays)
	assert.Equal(t, "2024-05-04", cells[0].Date)

	last := cells[len(cells)-1]
	assert.Equal(t, "2024-06-02", last.Date)
	assert.Equal(t, 50, last.Progress)
	assert.Equal(t, 100, cells[len(cells)-2].Progress)
}

func TestCalendar(t *testing.T) {
	app := newTestApp(t, appOptions{})
	seedJune(t, app)

	w := app.do(http.MethodGet, api+"/calendar", nil)
	requireStatus(t, http.StatusOK, w)

	cal := decode[domain.CalendarMonth](t, w)
	require.Len(t, cal.Days, 36)

	first := cal.Days[0]
	assert.Equal(t, "2024-05-26", first.Date)
	assert.Equal(t, 0, first.Weekday)
	assert.False(t, first.InMonth)

	may31 := cal.Days[5]
	assert.Equal(t, "2024-05-31", may31.Date)
	assert.True(t, may31.Recorded)

	june2 := cal.Days[7]
	assert.Equal(t, "2024-06-02", june2.Date)
	assert.True(t, june2.IsToday)
	assert.Equal(t, 50, june2.Progress)

	requireStatus(t, http.StatusBadRequest, app.do(http.MethodGet, api+"/calendar?month=99", nil))
}
