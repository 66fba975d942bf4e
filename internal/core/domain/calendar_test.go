package domain_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

func renderGrid(grid []time.Time) []byte {
	var b strings.Builder
	for _, d := range grid {
		fmt.Fprintf(&b, "%s %s\n", domain.DateKey(d), d.Weekday().String()[:3])
	}
	return []byte(b.String())
}

func TestMonthGrid_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	t.Run("Month starting on Wednesday", func(t *testing.T) {
		g.Assert(t, "month_grid_2024_05", renderGrid(domain.MonthGrid(2024, time.May, time.UTC)))
	})

	t.Run("Month starting on Saturday", func(t *testing.T) {
		g.Assert(t, "month_grid_2024_06", renderGrid(domain.MonthGrid(2024, time.June, time.UTC)))
	})
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name        string
		year        int
		month       time.Month
		wantLeading int
		wantLen     int
	}{
		{"Wednesday start pads 3", 2024, time.May, 3, 34},
		{"Sunday start pads nothing", 2024, time.September, 0, 30},
		{"Leap February", 2024, time.February, 4, 33},
		{"Saturday start pads 6", 2024, time.June, 6, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := domain.MonthGrid(tt.year, tt.month, time.UTC)

			require.Len(t, grid, tt.wantLen)
			assert.Equal(t, time.Sunday, grid[0].Weekday(), "grid must start on a Sunday")

			for i := 0; i < tt.wantLeading; i++ {
				assert.NotEqual(t, tt.month, grid[i].Month(), "leading day %d should belong to the previous month", i)
			}
			assert.Equal(t, 1, grid[tt.wantLeading].Day())
			assert.Equal(t, tt.month, grid[len(grid)-1].Month(), "no trailing padding")
			assert.Equal(t, domain.DaysIn(tt.year, tt.month), grid[len(grid)-1].Day())
		})
	}
}

func TestParseDateKey(t *testing.T) {
	t.Run("Success: canonical key", func(t *testing.T) {
		d, err := domain.ParseDateKey("2024-06-01", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d)
	})

	for _, bad := range []string{"", "2024-6-1", "2024/06/01", "2024-13-01", "2024-02-30", "2024-06-01T00:00:00Z"} {
		t.Run("Error: "+bad, func(t *testing.T) {
			_, err := domain.ParseDateKey(bad, time.UTC)
			assert.Equal(t, domain.ErrInvalidDate, err)
			assert.False(t, domain.ValidDateKey(bad))
		})
	}
}

func TestDateKey_UsesLocalCalendar(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	instant := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-06-01", domain.DateKey(instant))
	assert.Equal(t, "2024-06-02", domain.DateKey(instant.In(loc)))
}

func TestInMonth(t *testing.T) {
	assert.True(t, domain.InMonth("2024-06-30", 2024, time.June))
	assert.False(t, domain.InMonth("2024-07-01", 2024, time.June))
	assert.False(t, domain.InMonth("2023-06-15", 2024, time.June))
	assert.False(t, domain.InMonth("garbage", 2024, time.June))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", domain.MonthName(time.January))
	assert.Equal(t, "December", domain.MonthName(time.December))
}
