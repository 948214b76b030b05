// Package domain contains the core data types for the WanderWise crowd map.
// This package has zero external dependencies and is imported by every other
// internal package (registry, crowd, repo, service, controller, handler).
package domain

import "fmt"

// Fixed bucket counts for each visitor series.
const (
	HourlyBuckets  = 24
	DailyBuckets   = 30
	MonthlyBuckets = 12
)

// Coords is a WGS84 latitude/longitude pair.
type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Visitors holds the three visitor-count time series of a destination.
// Daily covers the last 30 days, oldest first.
type Visitors struct {
	Hourly  []int64 `json:"hourly"`
	Daily   []int64 `json:"daily"`
	Monthly []int64 `json:"monthly"`
}

// Series returns the sequence selected by mode. The returned slice aliases
// the receiver's storage; callers that hand it out must copy it.
func (v Visitors) Series(m Mode) []int64 {
	switch m {
	case ModeDay:
		return v.Daily
	case ModeMonth:
		return v.Monthly
	default:
		return v.Hourly
	}
}

// Clone returns a deep copy of v.
func (v Visitors) Clone() Visitors {
	return Visitors{
		Hourly:  append([]int64(nil), v.Hourly...),
		Daily:   append([]int64(nil), v.Daily...),
		Monthly: append([]int64(nil), v.Monthly...),
	}
}

// Destination is a tourist site shown on the map.
// Destinations are immutable after initialization; registries hand out clones.
type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Coords      Coords   `json:"coords"`
	Description string   `json:"desc"`
	Crowd       string   `json:"crowd"` // qualitative label, e.g. "High (~2,000/day)"
	Visitors    Visitors `json:"visitors"`
}

// Clone returns a deep copy of d.
func (d Destination) Clone() Destination {
	c := d
	c.Visitors = d.Visitors.Clone()
	return c
}

// ValidateDestination enforces the registry invariants:
//   - ID and Name are non-empty.
//   - Each visitor series has its fixed length and no negative values.
func ValidateDestination(d Destination) error {
	if d.ID == "" {
		return fmt.Errorf("%w: destination id is required", ErrValidation)
	}
	if d.Name == "" {
		return fmt.Errorf("%w: destination %q: name is required", ErrValidation, d.ID)
	}
	for _, s := range []struct {
		name   string
		values []int64
		want   int
	}{
		{"hourly", d.Visitors.Hourly, HourlyBuckets},
		{"daily", d.Visitors.Daily, DailyBuckets},
		{"monthly", d.Visitors.Monthly, MonthlyBuckets},
	} {
		if len(s.values) != s.want {
			return fmt.Errorf("%w: destination %q: %s series has %d buckets, want %d",
				ErrValidation, d.ID, s.name, len(s.values), s.want)
		}
		for i, v := range s.values {
			if v < 0 {
				return fmt.Errorf("%w: destination %q: %s[%d] is negative",
					ErrValidation, d.ID, s.name, i)
			}
		}
	}
	return nil
}
