package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"retreat/internal/catalog"
	apperrors "retreat/internal/errors"
	"retreat/internal/pricing"
)

func newTestStore(ttl time.Duration) (*Store, *time.Time) {
	cat := catalog.Default()
	calc := pricing.NewCalculator(cat.Rooms, pricing.DefaultRates())
	st := NewStore(cat, calc, ttl, zap.NewNop())
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }
	return st, &now
}

func TestStore_CreateAndView(t *testing.T) {
	st, _ := newTestStore(time.Hour)

	id := st.Create(func(s *Session) {
		_ = s.SelectPackage("detox-renewal")
	})

	require.NotEmpty(t, id)
	var pkgID string
	require.NoError(t, st.View(id, func(s *Session) {
		pkgID = s.Data.SelectedPackage.ID
	}))
	assert.Equal(t, "detox-renewal", pkgID)
	assert.Equal(t, 1, st.Len())
}

func TestStore_UpdateNotFound(t *testing.T) {
	st, _ := newTestStore(time.Hour)

	err := st.Update("missing", func(s *Session) error { return nil })

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestStore_UpdatePropagatesError(t *testing.T) {
	st, now := newTestStore(time.Hour)
	id := st.Create(nil)
	created := *now
	*now = now.Add(time.Minute)

	boom := errors.New("boom")
	err := st.Update(id, func(s *Session) error { return boom })

	assert.ErrorIs(t, err, boom)
	require.NoError(t, st.View(id, func(s *Session) {
		assert.Equal(t, created, s.UpdatedAt, "failed updates do not touch the session")
	}))
}

func TestStore_ExpiryAndSweep(t *testing.T) {
	st, now := newTestStore(30 * time.Minute)
	stale := st.Create(nil)
	*now = now.Add(20 * time.Minute)
	fresh := st.Create(nil)

	*now = now.Add(15 * time.Minute)

	_, ok := apperrors.IsNotFoundError(st.View(stale, func(*Session) {}))
	assert.True(t, ok, "stale session is no longer visible")
	assert.NoError(t, st.View(fresh, func(*Session) {}))

	assert.Equal(t, 1, st.Sweep())
	assert.Equal(t, 1, st.Len())
}

func TestStore_UpdateRefreshesIdleTimer(t *testing.T) {
	st, now := newTestStore(30 * time.Minute)
	id := st.Create(nil)

	*now = now.Add(25 * time.Minute)
	require.NoError(t, st.Update(id, func(s *Session) error { return s.SelectRoom("valley-deluxe") }))
	*now = now.Add(25 * time.Minute)

	assert.NoError(t, st.View(id, func(*Session) {}))
}

func TestStore_Delete(t *testing.T) {
	st, _ := newTestStore(0)
	id := st.Create(nil)

	require.NoError(t, st.Delete(id))

	assert.Equal(t, 0, st.Len())
	_, ok := apperrors.IsNotFoundError(st.Delete(id))
	assert.True(t, ok)
}

func TestStore_UpdateTimestampVisibleToCallback(t *testing.T) {
	st, now := newTestStore(time.Hour)
	id := st.Create(nil)
	created := *now

	*now = now.Add(5 * time.Minute)
	var seen time.Time
	require.NoError(t, st.Update(id, func(s *Session) error {
		seen = s.UpdatedAt
		return nil
	}))
	assert.Equal(t, *now, seen)

	*now = now.Add(5 * time.Minute)
	err := st.Update(id, func(s *Session) error {
		return errors.New("rejected")
	})
	require.Error(t, err)

	var updated time.Time
	require.NoError(t, st.View(id, func(s *Session) { updated = s.UpdatedAt }))
	assert.Equal(t, created.Add(5*time.Minute), updated)
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	st, _ := newTestStore(0)
	id := st.Create(func(s *Session) { _ = s.SelectRoom("garden-single") })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(id, func(s *Session) error { return s.ToggleRoomAddOn("champagne") })
		}()
	}
	wg.Wait()

	require.NoError(t, st.View(id, func(s *Session) {
		assert.False(t, s.Data.RoomAddOns[0].Selected, "an even number of toggles")
	}))
}

func TestStore_RunSweeperStopsOnCancel(t *testing.T) {
	st, _ := newTestStore(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		st.RunSweeper(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
