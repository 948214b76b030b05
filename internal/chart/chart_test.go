package chart_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderwise/backend/internal/chart"
	"github.com/pkordes/wanderwise/backend/internal/domain"
	"github.com/pkordes/wanderwise/backend/internal/registry"
)

func TestHourLabels(t *testing.T) {
	labels := chart.HourLabels()
	require.Len(t, labels, 24)
	assert.Equal(t, "00:00", labels[0])
	assert.Equal(t, "09:00", labels[9])
	assert.Equal(t, "23:00", labels[23])
}

func TestLastNDays_crossesMonthAndYear(t *testing.T) {
	now := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)

	labels := chart.LastNDays(4, now)

	assert.Equal(t, []string{"12/30", "12/31", "1/1", "1/2"}, labels)
}

func TestLastNDays_thirtyEndingToday(t *testing.T) {
	now := time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC)

	labels := chart.LastNDays(30, now)

	require.Len(t, labels, 30)
	assert.Equal(t, "2/14", labels[0])
	assert.Equal(t, "3/15", labels[29])
}

func TestSeries_perMode(t *testing.T) {
	d := registry.Baguio()[0]
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		mode      domain.Mode
		label     string
		firstTick string
		n         int
	}{
		{domain.ModeTime, "Hourly Visitors", "00:00", 24},
		{domain.ModeDay, "Daily (last 30 days) Visitors", "6/1", 30},
		{domain.ModeMonth, "Monthly Visitors", "Jan", 12},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			s := chart.Series(d, tt.mode, now)

			assert.Equal(t, tt.label, s.Label)
			require.Len(t, s.Labels, tt.n)
			require.Len(t, s.Data, tt.n)
			assert.Equal(t, tt.firstTick, s.Labels[0])
			assert.Equal(t, d.Visitors.Series(tt.mode), s.Data)
			assert.Equal(t, "rgb(75,192,192)", s.BorderColor)
		})
	}
}

// TestSeries_dataIsACopy verifies the chart can never write through to the
// destination's stored series.
func TestSeries_dataIsACopy(t *testing.T) {
	d := registry.Baguio()[1]
	want := d.Visitors.Hourly[0]

	s := chart.Series(d, domain.ModeTime, time.Now())
	s.Data[0] = -1

	assert.Equal(t, want, d.Visitors.Hourly[0])
}

func TestEmpty(t *testing.T) {
	s := chart.Empty()
	assert.Equal(t, "Visitors", s.Label)
	assert.Len(t, s.Labels, 24)
	assert.Equal(t, make([]int64, 24), s.Data)
}
