package seed_test

import (
	"errors"
	"testing"

	"gigdesk/backend/internal/models"
	"gigdesk/backend/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedFixtures(t *testing.T) {
	f, err := seed.Load()
	require.NoError(t, err)

	assert.Len(t, f.Conversations, 4)
	assert.Len(t, f.Thread, 5)
	assert.Len(t, f.Gigs, 4)
	assert.Len(t, f.Earnings, 8)
	assert.Len(t, f.Cards, 4)

	assert.Equal(t, "Sarah Johnson", f.Conversations[0].ParticipantName)
	assert.Equal(t, models.ConversationRevision, f.Conversations[3].Status)
	assert.Equal(t, models.SenderClient, f.Thread[0].Sender)
	assert.Equal(t, models.GigPaused, f.Gigs[2].Status)
	assert.Equal(t, "$1,200", f.Gigs[0].PriceLabel)
	assert.InDelta(t, 5.0, f.Gigs[1].Rating, 1e-9)
	assert.Equal(t, models.EarningPoint{Month: "Aug", Amount: 3750}, f.Earnings[7])

	assert.Equal(t, []string{"React", "TypeScript", "Node.js", "PostgreSQL", "Tailwind CSS"}, f.Profile.Skills)
	assert.Equal(t, "system", f.Settings.Theme)
	assert.False(t, f.Settings.Notifications["sms"])
	assert.True(t, f.Settings.Notifications["payments"])
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	data := []byte(`
conversations:
  - {id: 1, participantName: A, status: active}
  - {id: 1, participantName: B, status: active}
settings: {theme: light}
`)
	_, err := seed.Parse(data)
	require.Error(t, err)

	var vErr *seed.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "conversations", vErr.Collection)
	assert.True(t, errors.Is(err, seed.ErrInvalidFixtures))
}

func TestParse_RejectsUnknownEnums(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		collection string
	}{
		{
			name:       "conversation status",
			data:       "conversations: [{id: 1, status: archived}]\nsettings: {theme: light}",
			collection: "conversations",
		},
		{
			name:       "gig status",
			data:       "conversations: [{id: 1, status: active}]\ngigs: [{id: 1, status: deleted}]\nsettings: {theme: light}",
			collection: "gigs",
		},
		{
			name:       "sender",
			data:       "conversations: [{id: 1, status: active}]\nthread: [{id: 1, sender: bot}]\nsettings: {theme: light}",
			collection: "thread",
		},
		{
			name:       "theme",
			data:       "conversations: [{id: 1, status: active}]\nsettings: {theme: sepia}",
			collection: "settings",
		},
		{
			name:       "notification channel",
			data:       "conversations: [{id: 1, status: active}]\nsettings: {theme: dark, notifications: {fax: true}}",
			collection: "settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Parse([]byte(tt.data))
			var vErr *seed.ValidationError
			require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.collection, vErr.Collection)
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := seed.Parse([]byte("conversations: [oops"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, seed.ErrInvalidFixtures))
}

func TestClone_IsDeep(t *testing.T) {
	f, err := seed.Load()
	require.NoError(t, err)

	c := f.Clone()
	c.Gigs[0].Status = models.GigPaused
	c.Profile.Skills[0] = "Go"
	c.Profile.Portfolio[0].Technologies[0] = "Gin"
	c.Settings.Notifications["sms"] = true
	c.Conversations = c.Conversations[:1]

	assert.Equal(t, models.GigActive, f.Gigs[0].Status)
	assert.Equal(t, "React", f.Profile.Skills[0])
	assert.Equal(t, "React", f.Profile.Portfolio[0].Technologies[0])
	assert.False(t, f.Settings.Notifications["sms"])
	assert.Len(t, f.Conversations, 4)
}
