package models

import "strings"

// ConversationStatus is the lifecycle tag shown next to a conversation.
type ConversationStatus string

const (
	ConversationActive    ConversationStatus = "active"
	ConversationCompleted ConversationStatus = "completed"
	ConversationRevision  ConversationStatus = "revision"
)

// Valid reports whether s is one of the known conversation statuses.
func (s ConversationStatus) Valid() bool {
	switch s {
	case ConversationActive, ConversationCompleted, ConversationRevision:
		return true
	}
	return false
}

// Conversation is a read-only summary of a client conversation.
// UnreadCount and Status are seed values; nothing in the dashboard mutates them.
type Conversation struct {
	ID                 int                `yaml:"id" json:"id"`
	ParticipantName    string             `yaml:"participantName" json:"participantName"`
	AvatarRef          string             `yaml:"avatarRef" json:"avatarRef"`
	LastMessagePreview string             `yaml:"lastMessagePreview" json:"lastMessagePreview"`
	RelativeTimestamp  string             `yaml:"relativeTimestamp" json:"relativeTimestamp"`
	UnreadCount        int                `yaml:"unreadCount" json:"unreadCount"`
	ProjectLabel       string             `yaml:"projectLabel" json:"projectLabel"`
	Status             ConversationStatus `yaml:"status" json:"status"`
}

// Initials builds the avatar fallback from the first letter of each name part ("Sarah Johnson" -> "SJ").
func (c Conversation) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(c.ParticipantName) {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}
