// Package session keeps the in-memory dashboard state of every browser session and
// discards it once the session has been idle for too long.
package session

import (
	"context"
	"sync"
	"time"

	"gigdesk/backend/internal/seed"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager owns all live sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	fixtures *seed.Fixtures
	idleTTL  time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// Option customises a Manager.
type Option func(*Manager)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a manager whose sessions start from fixtures.
func NewManager(fixtures *seed.Fixtures, idleTTL time.Duration, log zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		fixtures: fixtures,
		idleTTL:  idleTTL,
		now:      time.Now,
		log:      log.With().Str("component", "sessions").Logger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open starts a new session with a random id.
func (m *Manager) Open() *Session {
	s := newSession(uuid.New().String(), m.fixtures, m.now)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.log.Debug().Str("session", s.ID).Msg("session opened")
	return s
}

// Get returns a live session.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Resume returns the session for id, or opens a new one when id is unknown or expired.
// created tells the caller to hand the new id back to the browser.
func (m *Manager) Resume(id string) (s *Session, created bool) {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s, false
		}
	}
	return m.Open(), true
}

// Len is the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many were removed.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.idleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.log.Info().Int("evicted", removed).Int("live", len(m.sessions)).Msg("idle sessions evicted")
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	m.log.Info().Dur("interval", interval).Dur("idle_ttl", m.idleTTL).Msg("session sweeper started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
