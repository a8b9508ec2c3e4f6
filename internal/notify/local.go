package notify

import (
	"context"
	"sync"

	"gigdesk/backend/internal/config"
	"gigdesk/backend/internal/models"

	"github.com/rs/zerolog"
)

// LocalNotifier is an in-process Notifier for single-replica deployments.
type LocalNotifier struct {
	mu     sync.Mutex
	subs   map[string]map[chan models.Notification]struct{}
	buffer int
	log    zerolog.Logger
}

func NewLocalNotifier(log zerolog.Logger) *LocalNotifier {
	return &LocalNotifier{
		subs:   make(map[string]map[chan models.Notification]struct{}),
		buffer: config.ToastBufferSize,
		log:    log.With().Str("component", "notify").Logger(),
	}
}

func (n *LocalNotifier) Publish(_ context.Context, sessionID string, msg models.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for ch := range n.subs[sessionID] {
		select {
		case ch <- msg:
		default:
			// повільний клієнт: тост просто губиться
			n.log.Warn().Str("session", sessionID).Str("toast", msg.Key).Msg("subscriber buffer full, toast dropped")
		}
	}
	return nil
}

func (n *LocalNotifier) Subscribe(_ context.Context, sessionID string) (<-chan models.Notification, func(), error) {
	ch := make(chan models.Notification, n.buffer)

	n.mu.Lock()
	if n.subs[sessionID] == nil {
		n.subs[sessionID] = make(map[chan models.Notification]struct{})
	}
	n.subs[sessionID][ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs[sessionID], ch)
			if len(n.subs[sessionID]) == 0 {
				delete(n.subs, sessionID)
			}
			n.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel, nil
}

// Subscribers counts the listeners of a session.
func (n *LocalNotifier) Subscribers(sessionID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs[sessionID])
}
