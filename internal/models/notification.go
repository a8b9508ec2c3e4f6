package models

import (
	"time"

	"github.com/google/uuid"
)

// Variant is the visual style of a toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient confirmation shown after an action.
// Key selects the localized title and description ("<key>.title", "<key>.description").
type Notification struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewNotification creates a notification with a fresh id. Title and Description are filled in
// by the localizer before the toast is shown.
func NewNotification(key string, variant Variant) Notification {
	return Notification{
		ID:        uuid.New().String(),
		Key:       key,
		Variant:   variant,
		CreatedAt: time.Now(),
	}
}

// Destructive is a template helper.
func (n Notification) Destructive() bool {
	return n.Variant == VariantDestructive
}
