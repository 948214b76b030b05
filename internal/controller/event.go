package controller

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/wanderwise/backend/internal/domain"
	"github.com/pkordes/wanderwise/backend/internal/metrics"
)

// EventType names a controller state change.
type EventType string

const (
	EventModeChanged         EventType = "mode_changed"
	EventDestinationSelected EventType = "destination_selected"
	EventDetailClosed        EventType = "detail_closed"
	EventCommentAdded        EventType = "comment_added"
	EventThemeChanged        EventType = "theme_changed"
)

// Event describes one state change. Only the fields relevant to Type are set.
type Event struct {
	Type          EventType
	SessionID     uuid.UUID
	Mode          domain.Mode
	DestinationID string
	Markers       []domain.Marker
	Detail        *domain.DestinationDetail
	View          *domain.View
	Comment       *domain.Comment
	Theme         domain.Theme
}

// Listener receives controller events. Listeners run synchronously on the
// caller's goroutine, after the controller has released its lock.
type Listener func(ctx context.Context, e Event)

func notify(ctx context.Context, listeners []Listener, e Event) {
	for _, l := range listeners {
		l(ctx, e)
	}
}

// LogListener logs every event at debug level.
func LogListener(log *slog.Logger) Listener {
	return func(ctx context.Context, e Event) {
		attrs := []any{
			"event", string(e.Type),
			"session_id", e.SessionID.String(),
			"mode", string(e.Mode),
		}
		if e.Type == EventModeChanged {
			attrs = append(attrs, "series", e.Mode.SeriesKey())
		}
		if e.DestinationID != "" {
			attrs = append(attrs, "destination_id", e.DestinationID)
		}
		if e.Theme != "" {
			attrs = append(attrs, "theme", string(e.Theme))
		}
		log.DebugContext(ctx, "controller event", attrs...)
	}
}

// MetricsListener counts events by type.
func MetricsListener(m *metrics.Metrics) Listener {
	return func(_ context.Context, e Event) {
		m.Event(string(e.Type))
	}
}
