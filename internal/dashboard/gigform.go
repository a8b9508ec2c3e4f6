package dashboard

import (
	"slices"
	"strings"

	"gigdesk/backend/internal/config"
	"gigdesk/backend/internal/models"
)

const KeyGigCreated = "gig.created"

// GigDraft is the state of the "Create New Gig" form.
type GigDraft struct {
	tags   []string
	images []string
}

func NewGigDraft() *GigDraft {
	return &GigDraft{}
}

// AddTag adds a trimmed, non-empty tag that is not already present.
func (d *GigDraft) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || slices.Contains(d.tags, tag) {
		return false
	}
	d.tags = append(d.tags, tag)
	return true
}

func (d *GigDraft) RemoveTag(tag string) bool {
	i := slices.Index(d.tags, tag)
	if i < 0 {
		return false
	}
	d.tags = slices.Delete(d.tags, i, i+1)
	return true
}

func (d *GigDraft) Tags() []string {
	return slices.Clone(d.tags)
}

// AddImage opens a new upload slot, up to config.MaxGigImages.
func (d *GigDraft) AddImage() bool {
	if !d.CanAddImage() {
		return false
	}
	d.images = append(d.images, "")
	return true
}

func (d *GigDraft) RemoveImage(index int) bool {
	if index < 0 || index >= len(d.images) {
		return false
	}
	d.images = slices.Delete(d.images, index, index+1)
	return true
}

func (d *GigDraft) ImageCount() int {
	return len(d.images)
}

func (d *GigDraft) CanAddImage() bool {
	return len(d.images) < config.MaxGigImages
}

// Publish confirms the gig and resets the form. The gig list of other views is not touched.
func (d *GigDraft) Publish() models.Notification {
	d.tags = nil
	d.images = nil
	return models.NewNotification(KeyGigCreated, models.VariantDefault)
}
