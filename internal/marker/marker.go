// Package marker renders crowd scores as map marker view-models.
package marker

import (
	"fmt"
	"html"

	"github.com/pkordes/wanderwise/backend/internal/crowd"
	"github.com/pkordes/wanderwise/backend/internal/domain"
)

// IconClassName is the wrapper class every marker icon carries.
const IconClassName = "custom-div-icon"

const iconSize = 40

// Icon renders the round percentage badge for pct. The badge shows the
// rounded value and is styled by its level.
func Icon(pct float64) domain.Icon {
	rounded := crowd.Round(pct)
	level := crowd.LevelOf(rounded)
	return domain.Icon{
		ClassName: IconClassName,
		HTML:      fmt.Sprintf(`<div class="pct-marker %s"><span>%d%%</span></div>`, level, rounded),
		Size:      [2]int{iconSize, iconSize},
		Anchor:    [2]int{iconSize / 2, iconSize / 2},
	}
}

// PercentElementID is the id of the popup element that shows d's percentage.
func PercentElementID(destinationID string) string {
	return "popup-percent-" + destinationID
}

// Popup renders the marker popup: name, description and a percent placeholder.
// Destination text is HTML-escaped.
func Popup(d domain.Destination) string {
	return fmt.Sprintf(`<b>%s</b><br>%s<br><i id="%s">Percent: N/A</i>`,
		html.EscapeString(d.Name),
		html.EscapeString(d.Description),
		html.EscapeString(PercentElementID(d.ID)))
}

// Render builds one marker per destination for mode, in registry order.
func Render(all []domain.Destination, mode domain.Mode) []domain.Marker {
	scores := crowd.Scores(all, mode)
	out := make([]domain.Marker, len(all))
	for i, d := range all {
		out[i] = domain.Marker{
			DestinationID: d.ID,
			Coords:        d.Coords,
			Icon:          Icon(scores[i].Percent),
			Popup:         Popup(d),
			Score:         scores[i],
		}
	}
	return out
}

// Stylesheet is the CSS the client injects once for marker badges.
func Stylesheet() string {
	return fmt.Sprintf(
		`.%s{background:transparent}`+
			`.pct-marker{width:40px;height:40px;border-radius:20px;display:flex;align-items:center;justify-content:center;color:#fff;font-weight:700;font-size:12px}`+
			`.pct-marker.low{background:%s}.pct-marker.moderate{background:%s}.pct-marker.high{background:%s}.pct-marker.very-high{background:%s}`,
		IconClassName,
		crowd.Color(domain.LevelLow), crowd.Color(domain.LevelModerate),
		crowd.Color(domain.LevelHigh), crowd.Color(domain.LevelVeryHigh))
}
