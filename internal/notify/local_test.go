package notify_test

import (
	"context"
	"testing"
	"time"

	"gigdesk/backend/internal/models"
	"gigdesk/backend/internal/notify"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan models.Notification) models.Notification {
	t.Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(time.Second):
		t.Fatal("no toast received")
		return models.Notification{}
	}
}

func TestLocalNotifier_FanOutPerSession(t *testing.T) {
	n := notify.NewLocalNotifier(zerolog.Nop())
	ctx := context.Background()

	tabA, cancelA, err := n.Subscribe(ctx, "s1")
	require.NoError(t, err)
	defer cancelA()
	tabB, cancelB, err := n.Subscribe(ctx, "s1")
	require.NoError(t, err)
	defer cancelB()
	other, cancelOther, err := n.Subscribe(ctx, "s2")
	require.NoError(t, err)
	defer cancelOther()

	toast := models.NewNotification("gig.paused", models.VariantDefault)
	require.NoError(t, n.Publish(ctx, "s1", toast))

	assert.Equal(t, toast.ID, recv(t, tabA).ID)
	assert.Equal(t, toast.ID, recv(t, tabB).ID)

	select {
	case got := <-other:
		t.Fatalf("toast leaked to another session: %+v", got)
	default:
	}
}

func TestLocalNotifier_PublishWithoutSubscribers(t *testing.T) {
	n := notify.NewLocalNotifier(zerolog.Nop())
	assert.NoError(t, n.Publish(context.Background(), "nobody", models.NewNotification("gig.deleted", models.VariantDestructive)))
}

func TestLocalNotifier_CancelClosesChannel(t *testing.T) {
	n := notify.NewLocalNotifier(zerolog.Nop())

	ch, cancel, err := n.Subscribe(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, n.Subscribers("s1"))

	cancel()
	cancel() // second call is harmless

	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, n.Subscribers("s1"))
}

func TestLocalNotifier_SlowSubscriberDropsToasts(t *testing.T) {
	n := notify.NewLocalNotifier(zerolog.Nop())

	ch, cancel, err := n.Subscribe(context.Background(), "s1")
	require.NoError(t, err)
	defer cancel()

	for i := 0; i < 100; i++ {
		require.NoError(t, n.Publish(context.Background(), "s1", models.NewNotification("gig.paused", models.VariantDefault)))
	}
	assert.Equal(t, cap(ch), len(ch), "buffer is full, the rest was dropped without blocking")
}
