package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"gigdesk/backend/internal/config"
	"gigdesk/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const channelPrefix = "toasts:"

// RedisNotifier fans toasts out through Redis Pub/Sub so that the replica holding the
// websocket receives toasts raised on another replica.
type RedisNotifier struct {
	Redis *redis.Client
	log   zerolog.Logger
}

func NewRedisNotifier(rdb *redis.Client, log zerolog.Logger) *RedisNotifier {
	return &RedisNotifier{
		Redis: rdb,
		log:   log.With().Str("component", "notify").Str("backend", "redis").Logger(),
	}
}

// Channel is the Pub/Sub channel of a session.
func Channel(sessionID string) string {
	return channelPrefix + sessionID
}

// Publish публікує тост у Redis Pub/Sub
func (n *RedisNotifier) Publish(ctx context.Context, sessionID string, msg models.Notification) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode toast: %w", err)
	}
	if err := n.Redis.Publish(ctx, Channel(sessionID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish toast for session %s: %w", sessionID, err)
	}
	return nil
}

func (n *RedisNotifier) Subscribe(ctx context.Context, sessionID string) (<-chan models.Notification, func(), error) {
	pubsub := n.Redis.Subscribe(ctx, Channel(sessionID))
	// Receive waits for the subscription confirmation, so publish errors surface here.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", Channel(sessionID), err)
	}

	out := make(chan models.Notification, config.ToastBufferSize)
	done := make(chan struct{})
	incoming := pubsub.Channel()
	go func() {
		defer close(out)
		for {
			select {
			case <-done:
				return
			case raw, ok := <-incoming:
				if !ok {
					return
				}
				msg, err := decode(raw.Payload)
				if err != nil {
					n.log.Error().Err(err).Str("channel", raw.Channel).Msg("error decoding toast")
					continue
				}
				select {
				case out <- msg:
				default:
					n.log.Warn().Str("session", sessionID).Msg("subscriber buffer full, toast dropped")
				}
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			if err := pubsub.Close(); err != nil {
				n.log.Error().Err(err).Str("session", sessionID).Msg("failed to close subscription")
			}
		})
	}
	return out, cancel, nil
}

// Ping checks the connection at start-up.
func (n *RedisNotifier) Ping(ctx context.Context) error {
	return n.Redis.Ping(ctx).Err()
}

func decode(payload string) (models.Notification, error) {
	var msg models.Notification
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return models.Notification{}, fmt.Errorf("bad toast payload: %w", err)
	}
	return msg, nil
}
