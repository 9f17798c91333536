package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"retreat/internal/catalog"
	apperrors "retreat/internal/errors"
	"retreat/internal/pricing"
)

// Store keeps sessions in memory. Every callback runs under the store lock,
// so a session is never observed half-updated.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	catalog  *catalog.Catalog
	calc     *pricing.Calculator
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewStore(cat *catalog.Catalog, calc *pricing.Calculator, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		catalog:  cat,
		calc:     calc,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Create opens a new session and lets init seed it before it becomes
// visible to other callers. It returns the session id.
func (st *Store) Create(init func(*Session)) string {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := NewSession(uuid.New().String(), st.catalog, st.calc, st.now())
	if init != nil {
		init(s)
	}
	st.sessions[s.ID] = s
	return s.ID
}

// Update runs fn against the session and refreshes its idle timer. fn
// already sees the new UpdatedAt; a rejected update restores the old one.
func (st *Store) Update(id string, fn func(*Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.lookup(id)
	if err != nil {
		return err
	}
	prev := s.UpdatedAt
	s.UpdatedAt = st.now()
	if err := fn(s); err != nil {
		s.UpdatedAt = prev
		return err
	}
	return nil
}

// View runs fn against the session without marking it as touched.
func (st *Store) View(id string, fn func(*Session)) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.lookup(id)
	if err != nil {
		return err
	}
	fn(s)
	return nil
}

// Delete ends a session. Unknown or expired ids are a NotFoundError.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, err := st.lookup(id); err != nil {
		return err
	}
	delete(st.sessions, id)
	return nil
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) lookup(id string) (*Session, error) {
	s, ok := st.sessions[id]
	if !ok || st.expired(s) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("session %s not found", id))
	}
	return s, nil
}

func (st *Store) expired(s *Session) bool {
	return st.ttl > 0 && st.now().Sub(s.UpdatedAt) > st.ttl
}

// Sweep drops idle sessions and returns how many were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if st.expired(s) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper sweeps every interval until ctx is done.
func (st *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || st.ttl <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				st.logger.Info("expired sessions removed", zap.Int("count", n), zap.Int("remaining", st.Len()))
			}
		}
	}
}
