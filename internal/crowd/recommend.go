package crowd

import (
	"fmt"

	"github.com/pkordes/wanderwise/backend/internal/domain"
)

var recommendations = map[domain.Level]string{
	domain.LevelVeryHigh: "Very crowded \u2014 consider visiting early morning or another site.",
	domain.LevelHigh:     "Crowded \u2014 expect waits; visit off-peak if possible.",
	domain.LevelModerate: "Moderate crowd \u2014 comfortable for most visitors.",
	domain.LevelLow:      "Low crowd \u2014 pleasant and recommended.",
}

var colors = map[domain.Level]string{
	domain.LevelVeryHigh: "#e74c3c",
	domain.LevelHigh:     "#e67e22",
	domain.LevelModerate: "#f1c40f",
	domain.LevelLow:      "#2ecc71",
}

// Recommendation returns the visiting advice shown for a level.
func Recommendation(l domain.Level) string {
	return recommendations[l]
}

// Color returns the banner and marker colour for a level.
// Unknown levels get the low colour.
func Color(l domain.Level) string {
	if c, ok := colors[l]; ok {
		return c
	}
	return colors[domain.LevelLow]
}

// StrainFor builds the crowd banner for a scored destination,
// e.g. "Strain: 27% (High (~2,000/day))".
func StrainFor(d domain.Destination, s domain.Score) domain.Strain {
	return domain.Strain{
		Text:  fmt.Sprintf("Strain: %d%% (%s)", s.Rounded, d.Crowd),
		Color: Color(s.Level),
	}
}
