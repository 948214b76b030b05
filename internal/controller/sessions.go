package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/wanderwise/backend/internal/domain"
	"github.com/pkordes/wanderwise/backend/internal/metrics"
)

// Sessions is the table of open controllers, keyed by session id.
type Sessions struct {
	maps      MapReader
	comments  Commenter
	theme     ThemeToggler
	listeners []Listener
	metrics   *metrics.Metrics

	mu   sync.RWMutex
	byID map[uuid.UUID]*Controller
}

// NewSessions constructs an empty table. Every controller it creates is
// subscribed to listeners. m may be nil.
func NewSessions(maps MapReader, comments Commenter, theme ThemeToggler, m *metrics.Metrics, listeners ...Listener) *Sessions {
	return &Sessions{
		maps:      maps,
		comments:  comments,
		theme:     theme,
		listeners: listeners,
		metrics:   m,
		byID:      make(map[uuid.UUID]*Controller),
	}
}

// Create opens a new session.
func (s *Sessions) Create() *Controller {
	c := New(uuid.New(), s.maps, s.comments, s.theme)
	for _, l := range s.listeners {
		c.Subscribe(l)
	}

	s.mu.Lock()
	s.byID[c.ID()] = c
	s.mu.Unlock()

	s.metrics.SessionOpened()
	return c
}

// Get returns an open session. Returns domain.ErrNotFound if there is none.
func (s *Sessions) Get(id uuid.UUID) (*Controller, error) {
	s.mu.RLock()
	c, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("controller.Sessions.Get: %w", domain.ErrNotFound)
	}
	return c, nil
}

// Delete closes a session. Returns domain.ErrNotFound if there is none.
func (s *Sessions) Delete(id uuid.UUID) error {
	s.mu.Lock()
	_, ok := s.byID[id]
	delete(s.byID, id)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("controller.Sessions.Delete: %w", domain.ErrNotFound)
	}
	s.metrics.SessionClosed()
	return nil
}

// Len returns the number of open sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Prune closes sessions idle for longer than maxIdle and returns how many
// were closed. Idle times are read without holding the table lock, so a
// controller busy in a slow store call delays only the pruner.
func (s *Sessions) Prune(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.RLock()
	open := make(map[uuid.UUID]*Controller, len(s.byID))
	for id, c := range s.byID {
		open[id] = c
	}
	s.mu.RUnlock()

	var stale []uuid.UUID
	for id, c := range open {
		if c.idleSince().Before(cutoff) {
			stale = append(stale, id)
		}
	}
	if len(stale) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for _, id := range stale {
		// Skip sessions deleted or replaced since the snapshot.
		if c, ok := s.byID[id]; !ok || c != open[id] {
			continue
		}
		delete(s.byID, id)
		s.metrics.SessionClosed()
		pruned++
	}
	return pruned
}

// RunPruner calls Prune every interval until ctx is done.
func (s *Sessions) RunPruner(ctx context.Context, interval, maxIdle time.Duration, onPrune func(n int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.Prune(maxIdle); n > 0 && onPrune != nil {
				onPrune(n)
			}
		case <-ctx.Done():
			return
		}
	}
}
