package domain

import "fmt"

// Mode is the time granularity that selects which visitor series is active.
type Mode string

const (
	ModeTime  Mode = "time"
	ModeDay   Mode = "day"
	ModeMonth Mode = "month"
)

// DefaultMode is the mode a fresh map starts in.
const DefaultMode = ModeTime

// Modes lists every valid mode in display order.
var Modes = []Mode{ModeTime, ModeDay, ModeMonth}

// ParseMode converts s into a Mode.
// Returns ErrValidation for anything other than "time", "day" or "month".
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: unknown mode %q (want time, day or month)", ErrValidation, s)
	}
	return m, nil
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeTime, ModeDay, ModeMonth:
		return true
	}
	return false
}

// SeriesKey names the visitor series m selects.
func (m Mode) SeriesKey() string {
	switch m {
	case ModeDay:
		return "daily"
	case ModeMonth:
		return "monthly"
	default:
		return "hourly"
	}
}
