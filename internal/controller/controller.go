// Package controller holds the per-session map UI state (current mode,
// selected destination, detail panel visibility) and the event handlers that
// change it. Each change is published to registered listeners.
package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/wanderwise/backend/internal/chart"
	"github.com/pkordes/wanderwise/backend/internal/domain"
)

// MapReader is the read side of the map the controller renders from.
type MapReader interface {
	Config() domain.MapConfig
	GetDestination(ctx context.Context, id string) (domain.Destination, error)
	Markers(ctx context.Context, mode domain.Mode) ([]domain.Marker, error)
	Detail(ctx context.Context, id string, mode domain.Mode) (domain.DestinationDetail, error)
}

// Commenter records comments.
type Commenter interface {
	Add(ctx context.Context, destinationID, name, text string) (domain.Comment, error)
	List(ctx context.Context, destinationID string) ([]domain.Comment, error)
}

// ThemeToggler flips the persisted theme.
type ThemeToggler interface {
	Theme(ctx context.Context) (domain.Theme, error)
	ToggleTheme(ctx context.Context) (domain.Theme, error)
}

// State is a snapshot of what the page shows for one session.
type State struct {
	SessionID  uuid.UUID                 `json:"session_id"`
	Mode       domain.Mode               `json:"mode"`
	SelectedID string                    `json:"selected_id,omitempty"`
	DetailOpen bool                      `json:"detail_open"`
	View       domain.View               `json:"view"`
	Markers    []domain.Marker           `json:"markers"`
	Detail     *domain.DestinationDetail `json:"detail,omitempty"`
	// Chart is the selected destination's chart, or an empty placeholder.
	Chart domain.ChartSeries `json:"chart"`
}

// Controller is one page's UI state. Its methods are safe for concurrent use
// but are serialized, so events are published in the order state changed.
type Controller struct {
	id       uuid.UUID
	maps     MapReader
	comments Commenter
	theme    ThemeToggler

	mu         sync.Mutex
	mode       domain.Mode
	selected   string
	detailOpen bool
	view       domain.View
	lastUsed   time.Time
	listeners  []Listener
}

// New constructs a Controller in the default mode with nothing selected and
// the view at the map's initial center and zoom.
func New(id uuid.UUID, maps MapReader, comments Commenter, theme ThemeToggler) *Controller {
	cfg := maps.Config()
	return &Controller{
		id:       id,
		maps:     maps,
		comments: comments,
		theme:    theme,
		mode:     domain.DefaultMode,
		view:     domain.View{Center: cfg.Center, Zoom: cfg.Zoom},
		lastUsed: time.Now(),
	}
}

// ID returns the session id.
func (c *Controller) ID() uuid.UUID {
	return c.id
}

// Subscribe registers l to receive every event this controller publishes.
func (c *Controller) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// State renders the current snapshot.
func (c *Controller) State(ctx context.Context) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	st, err := c.stateLocked(ctx)
	if err != nil {
		return State{}, fmt.Errorf("controller.Controller.State: %w", err)
	}
	return st, nil
}

// SetMode switches the time granularity. Markers are re-scored and, when a
// destination is selected, its strain and chart follow the new mode.
// Returns domain.ErrValidation for an unknown mode.
func (c *Controller) SetMode(ctx context.Context, mode domain.Mode) (State, error) {
	if !mode.Valid() {
		return State{}, fmt.Errorf("%w: unknown mode %q", domain.ErrValidation, mode)
	}

	c.mu.Lock()
	c.touch()
	prev := c.mode
	c.mode = mode
	st, err := c.stateLocked(ctx)
	if err != nil {
		c.mode = prev
		c.mu.Unlock()
		return State{}, fmt.Errorf("controller.Controller.SetMode: %w", err)
	}
	listeners := c.listenersLocked()
	c.mu.Unlock()

	notify(ctx, listeners, Event{
		Type:          EventModeChanged,
		SessionID:     c.id,
		Mode:          mode,
		DestinationID: st.SelectedID,
		Markers:       st.Markers,
		Detail:        st.Detail,
	})
	return st, nil
}

// SelectDestination selects a destination, focuses the view on it (kept
// inside the map's max bounds) and opens the detail panel.
// Returns domain.ErrNotFound for an unknown id.
func (c *Controller) SelectDestination(ctx context.Context, id string) (State, error) {
	c.mu.Lock()
	c.touch()
	d, err := c.maps.GetDestination(ctx, id)
	if err != nil {
		c.mu.Unlock()
		return State{}, fmt.Errorf("controller.Controller.SelectDestination: %w", err)
	}

	prevSel, prevOpen, prevView := c.selected, c.detailOpen, c.view
	c.selected = d.ID
	c.detailOpen = true
	cfg := c.maps.Config()
	c.view = domain.View{Center: cfg.MaxBounds.Clamp(d.Coords), Zoom: cfg.FocusZoom}

	st, err := c.stateLocked(ctx)
	if err != nil {
		c.selected, c.detailOpen, c.view = prevSel, prevOpen, prevView
		c.mu.Unlock()
		return State{}, fmt.Errorf("controller.Controller.SelectDestination: %w", err)
	}
	listeners := c.listenersLocked()
	c.mu.Unlock()

	notify(ctx, listeners, Event{
		Type:          EventDestinationSelected,
		SessionID:     c.id,
		Mode:          st.Mode,
		DestinationID: d.ID,
		Detail:        st.Detail,
		View:          &st.View,
	})
	return st, nil
}

// CloseDetail hides the detail panel. The selection is kept, so mode
// switches and comments still apply to it.
func (c *Controller) CloseDetail(ctx context.Context) (State, error) {
	c.mu.Lock()
	c.touch()
	c.detailOpen = false
	st, err := c.stateLocked(ctx)
	if err != nil {
		c.mu.Unlock()
		return State{}, fmt.Errorf("controller.Controller.CloseDetail: %w", err)
	}
	listeners := c.listenersLocked()
	c.mu.Unlock()

	notify(ctx, listeners, Event{
		Type:          EventDetailClosed,
		SessionID:     c.id,
		Mode:          st.Mode,
		DestinationID: st.SelectedID,
	})
	return st, nil
}

// SubmitResult reports the outcome of SubmitComment.
type SubmitResult struct {
	// Added is false when the form was ignored because a field was blank.
	Added    bool             `json:"added"`
	Comment  *domain.Comment  `json:"comment,omitempty"`
	Comments []domain.Comment `json:"comments"`
}

// SubmitComment adds a comment to the selected destination.
// A blank name or text is ignored (Added=false), like an empty form submit.
// Returns domain.ErrNoSelection when nothing is selected.
func (c *Controller) SubmitComment(ctx context.Context, name, text string) (SubmitResult, error) {
	c.mu.Lock()
	c.touch()
	sel := c.selected
	if sel == "" {
		c.mu.Unlock()
		return SubmitResult{}, fmt.Errorf("controller.Controller.SubmitComment: %w", domain.ErrNoSelection)
	}

	if strings.TrimSpace(name) == "" || strings.TrimSpace(text) == "" {
		comments, err := c.comments.List(ctx, sel)
		c.mu.Unlock()
		if err != nil {
			return SubmitResult{}, fmt.Errorf("controller.Controller.SubmitComment: %w", err)
		}
		return SubmitResult{Added: false, Comments: comments}, nil
	}

	added, err := c.comments.Add(ctx, sel, name, text)
	if err != nil {
		c.mu.Unlock()
		return SubmitResult{}, fmt.Errorf("controller.Controller.SubmitComment: %w", err)
	}
	comments, err := c.comments.List(ctx, sel)
	if err != nil {
		c.mu.Unlock()
		return SubmitResult{}, fmt.Errorf("controller.Controller.SubmitComment: %w", err)
	}
	mode := c.mode
	listeners := c.listenersLocked()
	c.mu.Unlock()

	notify(ctx, listeners, Event{
		Type:          EventCommentAdded,
		SessionID:     c.id,
		Mode:          mode,
		DestinationID: sel,
		Comment:       &added,
	})
	return SubmitResult{Added: true, Comment: &added, Comments: comments}, nil
}

// ToggleTheme flips the persisted theme preference.
func (c *Controller) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	c.mu.Lock()
	c.touch()
	t, err := c.theme.ToggleTheme(ctx)
	if err != nil {
		c.mu.Unlock()
		return "", fmt.Errorf("controller.Controller.ToggleTheme: %w", err)
	}
	mode := c.mode
	listeners := c.listenersLocked()
	c.mu.Unlock()

	notify(ctx, listeners, Event{Type: EventThemeChanged, SessionID: c.id, Mode: mode, Theme: t})
	return t, nil
}

// idleSince returns when the controller was last used.
func (c *Controller) idleSince() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUsed
}

func (c *Controller) touch() {
	c.lastUsed = time.Now()
}

func (c *Controller) listenersLocked() []Listener {
	return append([]Listener(nil), c.listeners...)
}

// stateLocked renders markers for the current mode and, if a destination is
// selected, its detail panel.
func (c *Controller) stateLocked(ctx context.Context) (State, error) {
	markers, err := c.maps.Markers(ctx, c.mode)
	if err != nil {
		return State{}, err
	}
	st := State{
		SessionID:  c.id,
		Mode:       c.mode,
		SelectedID: c.selected,
		DetailOpen: c.detailOpen,
		View:       c.view,
		Markers:    markers,
		Chart:      chart.Empty(),
	}
	if c.selected != "" {
		d, err := c.maps.Detail(ctx, c.selected, c.mode)
		if err != nil {
			return State{}, err
		}
		st.Detail = &d
		st.Chart = d.Chart
	}
	return st, nil
}
