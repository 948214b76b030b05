// Package chart adapts a destination's visitor series into the single
// line-chart dataset the detail panel draws.
package chart

import (
	"fmt"
	"time"

	"github.com/pkordes/wanderwise/backend/internal/domain"
)

const (
	borderColor     = "rgb(75,192,192)"
	backgroundColor = "rgba(75,192,192,0.1)"
	tension         = 0.2
)

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// HourLabels returns "00:00" through "23:00".
func HourLabels() []string {
	out := make([]string, domain.HourlyBuckets)
	for h := range out {
		out[h] = fmt.Sprintf("%02d:00", h)
	}
	return out
}

// MonthLabels returns "Jan" through "Dec".
func MonthLabels() []string {
	return append([]string(nil), months...)
}

// LastNDays returns n "M/D" labels ending with now's date, oldest first.
// Days are stepped by calendar date so DST changes cannot skip or repeat one.
func LastNDays(n int, now time.Time) []string {
	out := make([]string, 0, n)
	y, m, d := now.Date()
	for i := n - 1; i >= 0; i-- {
		day := time.Date(y, m, d-i, 12, 0, 0, 0, now.Location())
		out = append(out, fmt.Sprintf("%d/%d", int(day.Month()), day.Day()))
	}
	return out
}

// Labels returns the x-axis labels for mode.
func Labels(mode domain.Mode, now time.Time) []string {
	switch mode {
	case domain.ModeDay:
		return LastNDays(domain.DailyBuckets, now)
	case domain.ModeMonth:
		return MonthLabels()
	default:
		return HourLabels()
	}
}

// DatasetLabel names the dataset for mode, e.g. "Hourly Visitors".
func DatasetLabel(mode domain.Mode) string {
	switch mode {
	case domain.ModeDay:
		return "Daily (last 30 days) Visitors"
	case domain.ModeMonth:
		return "Monthly Visitors"
	default:
		return "Hourly Visitors"
	}
}

// Series builds the dataset for d in mode. The data is a copy of d's series.
func Series(d domain.Destination, mode domain.Mode, now time.Time) domain.ChartSeries {
	return domain.ChartSeries{
		Labels:          Labels(mode, now),
		Label:           DatasetLabel(mode),
		Data:            append([]int64{}, d.Visitors.Series(mode)...),
		BorderColor:     borderColor,
		BackgroundColor: backgroundColor,
		Tension:         tension,
	}
}

// Empty is the placeholder dataset shown before any destination is selected:
// hourly labels over zeros.
func Empty() domain.ChartSeries {
	return domain.ChartSeries{
		Labels:          HourLabels(),
		Label:           "Visitors",
		Data:            make([]int64, domain.HourlyBuckets),
		BorderColor:     borderColor,
		BackgroundColor: backgroundColor,
		Tension:         tension,
	}
}
