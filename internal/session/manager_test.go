package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"gigdesk/backend/internal/models"
	"gigdesk/backend/internal/seed"
	"gigdesk/backend/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestManager(t *testing.T, ttl time.Duration) (*session.Manager, *fakeClock) {
	t.Helper()
	f, err := seed.Load()
	require.NoError(t, err)

	clock := &fakeClock{t: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
	return session.NewManager(f, ttl, zerolog.Nop(), session.WithClock(clock.Now)), clock
}

func TestManager_OpenAndGet(t *testing.T) {
	m, _ := newTestManager(t, time.Minute)

	s := m.Open()
	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err)

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, m.Len())

	_, ok = m.Get("unknown")
	assert.False(t, ok)
}

func TestManager_Resume(t *testing.T) {
	m, _ := newTestManager(t, time.Minute)

	first, created := m.Resume("")
	assert.True(t, created)

	again, created := m.Resume(first.ID)
	assert.False(t, created)
	assert.Same(t, first, again)

	other, created := m.Resume("not-a-live-session")
	assert.True(t, created)
	assert.NotEqual(t, first.ID, other.ID)
	assert.Equal(t, 2, m.Len())
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m, _ := newTestManager(t, time.Minute)
	a, b := m.Open(), m.Open()

	a.With(func(v *session.Views) {
		v.Gigs().Delete(1)
		v.Inbox().Compose("hello", time.Now())
		v.Settings().SetTheme("dark")
	})

	b.With(func(v *session.Views) {
		assert.Len(t, v.Gigs().List(), 4)
		assert.Len(t, v.Inbox().Thread(), 5)
		assert.Equal(t, "system", v.Settings().Settings().Theme)
	})
}

func TestManager_ViewsKeepStateAcrossRequests(t *testing.T) {
	m, _ := newTestManager(t, time.Minute)
	s := m.Open()

	s.With(func(v *session.Views) {
		v.Gigs().ToggleStatus(2)
		v.Sidebar().Toggle()
	})
	s.With(func(v *session.Views) {
		g, ok := v.Gigs().Get(2)
		require.True(t, ok)
		assert.Equal(t, models.GigPaused, g.Status)
		assert.True(t, v.Sidebar().Collapsed())
	})
}

func TestManager_FlashIsDrainedOnce(t *testing.T) {
	m, _ := newTestManager(t, time.Minute)
	s := m.Open()

	s.With(func(v *session.Views) {
		n, _ := v.Gigs().Delete(4)
		v.Flash(n)
	})
	s.With(func(v *session.Views) {
		flash := v.DrainFlash()
		require.Len(t, flash, 1)
		assert.Equal(t, "gig.deleted", flash[0].Key)
		assert.Empty(t, v.DrainFlash())
	})
}

func TestManager_SweepEvictsIdleSessions(t *testing.T) {
	m, clock := newTestManager(t, 10*time.Minute)

	idle := m.Open()
	active := m.Open()

	clock.Advance(6 * time.Minute)
	active.With(func(v *session.Views) { v.Sidebar().Toggle() })

	clock.Advance(6 * time.Minute)
	assert.Equal(t, 1, m.Sweep())

	_, ok := m.Get(idle.ID)
	assert.False(t, ok, "idle session state is discarded")
	_, ok = m.Get(active.ID)
	assert.True(t, ok)

	assert.Equal(t, 0, m.Sweep())
}

func TestManager_RunStopsOnCancel(t *testing.T) {
	m, _ := newTestManager(t, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSession_WithSerialisesAccess(t *testing.T) {
	m, _ := newTestManager(t, time.Minute)
	s := m.Open()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.With(func(v *session.Views) {
				v.Inbox().Compose("ping", time.Now())
			})
		}()
	}
	wg.Wait()

	s.With(func(v *session.Views) {
		thread := v.Inbox().Thread()
		assert.Len(t, thread, 55)
		seen := make(map[int]bool)
		for _, msg := range thread {
			assert.False(t, seen[msg.ID], "message ids stay unique")
			seen[msg.ID] = true
		}
	})
}

func TestSession_TouchKeepsSessionAlive(t *testing.T) {
	m, clock := newTestManager(t, 10*time.Minute)
	s := m.Open()

	clock.Advance(8 * time.Minute)
	s.Touch()
	assert.Equal(t, clock.Now(), s.LastSeen())

	clock.Advance(8 * time.Minute)
	assert.Equal(t, 0, m.Sweep())
	_, ok := m.Get(s.ID)
	assert.True(t, ok)
}
