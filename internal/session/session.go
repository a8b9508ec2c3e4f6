package session

import (
	"sync"
	"sync/atomic"
	"time"

	"gigdesk/backend/internal/dashboard"
	"gigdesk/backend/internal/models"
	"gigdesk/backend/internal/seed"
)

// Session is the state owned by one browser. Page containers are mounted lazily on first use
// and discarded together with the session.
type Session struct {
	ID string

	mu       sync.Mutex
	lastSeen atomic.Int64
	now      func() time.Time
	views    Views
}

func newSession(id string, base *seed.Fixtures, now func() time.Time) *Session {
	s := &Session{
		ID:    id,
		now:   now,
		views: Views{base: base},
	}
	s.Touch()
	return s
}

// With runs fn with exclusive access to the page containers. All state transitions of a
// session go through here, so each one is handled synchronously and in arrival order.
func (s *Session) With(fn func(v *Views)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Touch()
	fn(&s.views)
}

// LastSeen is the time of the last access.
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

// Touch marks the session as used without entering it, e.g. on websocket heartbeats.
func (s *Session) Touch() {
	s.lastSeen.Store(s.now().UnixNano())
}

// Views are the per-page state containers of a session.
type Views struct {
	base *seed.Fixtures

	inbox    *dashboard.Inbox
	gigs     *dashboard.GigBoard
	draft    *dashboard.GigDraft
	earnings *dashboard.EarningsChart
	profile  *dashboard.ProfileEditor
	settings *dashboard.SettingsPanel
	sidebar  dashboard.Sidebar

	flash []models.Notification
}

func (v *Views) Inbox() *dashboard.Inbox {
	if v.inbox == nil {
		v.inbox = dashboard.NewInbox(v.base.Conversations, v.base.Thread)
	}
	return v.inbox
}

func (v *Views) Gigs() *dashboard.GigBoard {
	if v.gigs == nil {
		v.gigs = dashboard.NewGigBoard(v.base.Gigs)
	}
	return v.gigs
}

func (v *Views) GigDraft() *dashboard.GigDraft {
	if v.draft == nil {
		v.draft = dashboard.NewGigDraft()
	}
	return v.draft
}

func (v *Views) Earnings() *dashboard.EarningsChart {
	if v.earnings == nil {
		v.earnings = dashboard.NewEarningsChart(v.base.Earnings)
	}
	return v.earnings
}

func (v *Views) Profile() *dashboard.ProfileEditor {
	if v.profile == nil {
		v.profile = dashboard.NewProfileEditor(v.base.Clone().Profile)
	}
	return v.profile
}

func (v *Views) Settings() *dashboard.SettingsPanel {
	if v.settings == nil {
		v.settings = dashboard.NewSettingsPanel(v.base.Settings)
	}
	return v.settings
}

func (v *Views) Sidebar() *dashboard.Sidebar {
	return &v.sidebar
}

// Cards are the static summary figures.
func (v *Views) Cards() []models.SummaryCard {
	out := make([]models.SummaryCard, len(v.base.Cards))
	copy(out, v.base.Cards)
	return out
}

// Flash queues a toast for the next rendered page.
func (v *Views) Flash(n models.Notification) {
	v.flash = append(v.flash, n)
}

// DrainFlash returns and forgets the queued toasts.
func (v *Views) DrainFlash() []models.Notification {
	out := v.flash
	v.flash = nil
	return out
}
