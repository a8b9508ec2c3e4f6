package dashboard

import (
	"slices"

	"gigdesk/backend/internal/models"
)

// Notification keys emitted by the gig list.
const (
	KeyGigPaused    = "gig.paused"
	KeyGigActivated = "gig.activated"
	KeyGigDeleted   = "gig.deleted"
)

// GigBoard is the "My Gigs" list with local status toggling and deletion.
type GigBoard struct {
	gigs []models.Gig
}

func NewGigBoard(gigs []models.Gig) *GigBoard {
	return &GigBoard{gigs: slices.Clone(gigs)}
}

// List returns a copy of the gigs in display order.
func (b *GigBoard) List() []models.Gig {
	return slices.Clone(b.gigs)
}

func (b *GigBoard) Get(id int) (models.Gig, bool) {
	i := b.index(id)
	if i < 0 {
		return models.Gig{}, false
	}
	return b.gigs[i], true
}

// ToggleStatus flips active/paused and describes the resulting state.
// ok is false (and nothing changes) when no gig has that id.
func (b *GigBoard) ToggleStatus(id int) (n models.Notification, ok bool) {
	i := b.index(id)
	if i < 0 {
		return models.Notification{}, false
	}

	b.gigs[i].Status = b.gigs[i].Status.Toggle()
	key := KeyGigActivated
	if b.gigs[i].Status == models.GigPaused {
		key = KeyGigPaused
	}
	return models.NewNotification(key, models.VariantDefault), true
}

// Delete removes the gig. Deleting an unknown id is a no-op.
func (b *GigBoard) Delete(id int) (n models.Notification, ok bool) {
	i := b.index(id)
	if i < 0 {
		return models.Notification{}, false
	}
	b.gigs = slices.Delete(b.gigs, i, i+1)
	return models.NewNotification(KeyGigDeleted, models.VariantDestructive), true
}

func (b *GigBoard) index(id int) int {
	return slices.IndexFunc(b.gigs, func(g models.Gig) bool { return g.ID == id })
}
