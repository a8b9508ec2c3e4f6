// Package notify delivers transient confirmations (toasts) to the browser session that
// triggered them. Toasts are never stored: a toast nobody is listening for is dropped.
package notify

import (
	"context"

	"gigdesk/backend/internal/models"
)

// Notifier fans toasts out to the subscribers of a session.
type Notifier interface {
	// Publish delivers n to every current subscriber of sessionID.
	Publish(ctx context.Context, sessionID string, n models.Notification) error
	// Subscribe registers a listener. The returned cancel func must be called to release it;
	// the channel is closed afterwards.
	Subscribe(ctx context.Context, sessionID string) (<-chan models.Notification, func(), error)
}
