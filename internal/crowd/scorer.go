// Package crowd computes crowd scores: a destination's percentage share of
// total visitation for a mode, and the level that percentage classifies to.
// Everything here is pure and deterministic.
package crowd

import (
	"math"

	"github.com/pkordes/wanderwise/backend/internal/domain"
)

// Total sums the visitor series that mode selects for d.
func Total(d domain.Destination, mode domain.Mode) int64 {
	var sum int64
	for _, v := range d.Visitors.Series(mode) {
		sum += v
	}
	return sum
}

// GrandTotal sums Total over all destinations.
func GrandTotal(all []domain.Destination, mode domain.Mode) int64 {
	var sum int64
	for _, d := range all {
		sum += Total(d, mode)
	}
	return sum
}

// Percent returns 100 * Total(d) / GrandTotal(all), or 0 when the grand
// total is 0.
func Percent(d domain.Destination, all []domain.Destination, mode domain.Mode) float64 {
	return percentOf(Total(d, mode), GrandTotal(all, mode))
}

// Score bundles Percent with its rounded value and level.
func Score(d domain.Destination, all []domain.Destination, mode domain.Mode) domain.Score {
	return newScore(d.ID, mode, Percent(d, all, mode))
}

// Scores scores every destination in all, preserving order.
// The grand total is computed once.
func Scores(all []domain.Destination, mode domain.Mode) []domain.Score {
	grand := GrandTotal(all, mode)
	out := make([]domain.Score, len(all))
	for i, d := range all {
		out[i] = newScore(d.ID, mode, percentOf(Total(d, mode), grand))
	}
	return out
}

// Round rounds pct to the nearest integer, halves up.
func Round(pct float64) int {
	return int(math.Floor(pct + 0.5))
}

// Classify maps a percentage to a level after rounding:
// >=30 very-high, >=20 high, >=10 moderate, otherwise low.
func Classify(pct float64) domain.Level {
	return LevelOf(Round(pct))
}

// LevelOf classifies an already rounded percentage.
func LevelOf(rounded int) domain.Level {
	switch {
	case rounded >= 30:
		return domain.LevelVeryHigh
	case rounded >= 20:
		return domain.LevelHigh
	case rounded >= 10:
		return domain.LevelModerate
	default:
		return domain.LevelLow
	}
}

func percentOf(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func newScore(id string, mode domain.Mode, pct float64) domain.Score {
	rounded := Round(pct)
	return domain.Score{
		DestinationID: id,
		Mode:          mode,
		Percent:       pct,
		Rounded:       rounded,
		Level:         LevelOf(rounded),
	}
}
