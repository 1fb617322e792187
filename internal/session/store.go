package session

import (
	"context"
	"sync"
	"time"

	"menu-kart/internal/menu"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session is one user's browsing interaction with a single restaurant's
// menu. It exclusively owns its engine.
type Session struct {
	ID           uuid.UUID
	RestaurantID string
	CreatedAt    time.Time

	mu       sync.Mutex
	engine   *menu.Engine
	lastSeen time.Time
	now      func() time.Time
}

// Do runs fn with the session's engine while holding the session lock, so
// intents against one session apply strictly one after another.
func (s *Session) Do(fn func(e *menu.Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = s.now()
	return fn(s.engine)
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Store is the process-local registry of live sessions.
type Store struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*Session
	idleTimeout time.Duration
	now         func() time.Time
	logger      zerolog.Logger
}

// NewStore creates an empty session store. Sessions untouched for longer
// than idleTimeout are removed by Sweep; zero disables expiry.
func NewStore(idleTimeout time.Duration, logger zerolog.Logger) *Store {
	return &Store{
		sessions:    make(map[uuid.UUID]*Session),
		idleTimeout: idleTimeout,
		now:         time.Now,
		logger:      logger.With().Str("component", "session-store").Logger(),
	}
}

// Create registers a new session around engine.
func (st *Store) Create(engine *menu.Engine) *Session {
	now := st.now()
	s := &Session{
		ID:           uuid.New(),
		RestaurantID: engine.RestaurantID(),
		CreatedAt:    now,
		engine:       engine,
		lastSeen:     now,
		now:          st.now,
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	total := len(st.sessions)
	st.mu.Unlock()

	st.logger.Debug().
		Str("session_id", s.ID.String()).
		Str("restaurant_id", s.RestaurantID).
		Int("active_sessions", total).
		Msg("session created")

	return s
}

// Get returns the session with the given ID, or false if there is none.
func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes a session. It reports whether the session existed.
func (st *Store) Delete(id uuid.UUID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes sessions idle since before now minus the idle timeout and
// returns how many were removed.
func (st *Store) Sweep(now time.Time) int {
	if st.idleTimeout <= 0 {
		return 0
	}
	cutoff := now.Add(-st.idleTimeout)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.idleSince().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		st.logger.Info().
			Int("expired", removed).
			Int("active_sessions", len(st.sessions)).
			Msg("expired idle sessions")
	}

	return removed
}

// Run sweeps idle sessions every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Sweep(st.now())
		}
	}
}
