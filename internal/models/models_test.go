package models_test

import (
	"reflect"
	"testing"

	"gigdesk/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGigStatusToggle_IsInvolution(t *testing.T) {
	for _, s := range []models.GigStatus{models.GigActive, models.GigPaused} {
		assert.NotEqual(t, s, s.Toggle())
		assert.Equal(t, s, s.Toggle().Toggle())
	}
}

func TestGigStatus_Valid(t *testing.T) {
	assert.True(t, models.GigActive.Valid())
	assert.True(t, models.GigPaused.Valid())
	assert.False(t, models.GigStatus("archived").Valid())
}

func TestGigClickRate(t *testing.T) {
	g := models.Gig{ViewCount: 245, ImpressionCount: 1200}
	assert.InDelta(t, 245.0/1200.0, g.ClickRate(), 1e-9)
	assert.Equal(t, "20.4%", g.ClickRateLabel())

	empty := models.Gig{ViewCount: 12, ImpressionCount: 0}
	assert.Zero(t, empty.ClickRate(), "zero impressions must not divide by zero")
	assert.Equal(t, "0.0%", empty.ClickRateLabel())
}

func TestConversationInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Sarah Johnson", "SJ"},
		{"Mike Chen", "MC"},
		{"Cher", "C"},
		{"  Ana   de  Armas ", "AdA"},
		{"", ""},
		{"Łukasz Żak", "ŁŻ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.Conversation{ParticipantName: tt.name}
			assert.Equal(t, tt.want, c.Initials())
		})
	}
}

func TestConversationStatus_Valid(t *testing.T) {
	assert.True(t, models.ConversationRevision.Valid())
	assert.False(t, models.ConversationStatus("archived").Valid())
}

func TestMessageFromMe(t *testing.T) {
	assert.True(t, models.Message{Sender: models.SenderMe}.FromMe())
	assert.False(t, models.Message{Sender: models.SenderClient}.FromMe())
}

// TestNewNotification_GeneratesUUID verifies every toast gets its own id.
func TestNewNotification_GeneratesUUID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		n := models.NewNotification("gig.deleted", models.VariantDestructive)

		_, err := uuid.Parse(n.ID)
		assert.NoError(t, err, "notification id must be a valid UUID")
		assert.NotContains(t, seen, n.ID)
		seen[n.ID] = true

		assert.True(t, n.Destructive())
		assert.False(t, n.CreatedAt.IsZero())
	}
}

// TestStructTags catches accidental tag removal; seed decoding and the JSON API both rely on them.
func TestStructTags(t *testing.T) {
	gigType := reflect.TypeOf(models.Gig{})
	field, found := gigType.FieldByName("ImpressionCount")
	assert.True(t, found)
	assert.Equal(t, "impressionCount", field.Tag.Get("yaml"))
	assert.Equal(t, "impressionCount", field.Tag.Get("json"))

	convType := reflect.TypeOf(models.Conversation{})
	field, found = convType.FieldByName("ParticipantName")
	assert.True(t, found)
	assert.Equal(t, "participantName", field.Tag.Get("yaml"))
}
