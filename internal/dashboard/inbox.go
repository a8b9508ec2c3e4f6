// Package dashboard holds the per-page state containers of the freelancer dashboard.
// Every container is owned by exactly one session and one view; none of them is safe for
// concurrent use, callers serialise access (see session.Session.With).
package dashboard

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"gigdesk/backend/internal/models"
)

// ComposeTimeLayout is the display format of messages written in this session.
const ComposeTimeLayout = "3:04 PM"

// FilterConversations returns the conversations whose participant name or project label
// contains query, ignoring case. Order is preserved; an empty query returns everything.
func FilterConversations(list []models.Conversation, query string) []models.Conversation {
	q := strings.ToLower(query)
	out := make([]models.Conversation, 0, len(list))
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.ParticipantName), q) ||
			strings.Contains(strings.ToLower(c.ProjectLabel), q) {
			out = append(out, c)
		}
	}
	return out
}

// Inbox is the state of the messages page: conversation list, selection, thread and compose box.
type Inbox struct {
	conversations []models.Conversation
	thread        []models.Message
	selectedID    int
	query         string
	draft         string
	nextID        int
}

// NewInbox selects the first conversation, like the page does on mount.
func NewInbox(conversations []models.Conversation, thread []models.Message) *Inbox {
	in := &Inbox{
		conversations: slices.Clone(conversations),
		thread:        slices.Clone(thread),
		nextID:        1,
	}
	if len(in.conversations) > 0 {
		in.selectedID = in.conversations[0].ID
	}
	for _, m := range in.thread {
		if m.ID >= in.nextID {
			in.nextID = m.ID + 1
		}
	}
	return in
}

// SetQuery stores the search box text as typed.
func (in *Inbox) SetQuery(q string) {
	in.query = q
}

func (in *Inbox) Query() string {
	return in.query
}

// Visible is the conversation list filtered by the current query.
func (in *Inbox) Visible() []models.Conversation {
	return FilterConversations(in.conversations, in.query)
}

// Select makes id the active conversation. Unknown ids leave the selection untouched.
func (in *Inbox) Select(id int) error {
	for _, c := range in.conversations {
		if c.ID == id {
			in.selectedID = id
			return nil
		}
	}
	return fmt.Errorf("select %d: %w", id, ErrConversationNotFound)
}

func (in *Inbox) SelectedID() int {
	return in.selectedID
}

// Selected returns the active conversation; ok is false only for an empty inbox.
func (in *Inbox) Selected() (models.Conversation, bool) {
	for _, c := range in.conversations {
		if c.ID == in.selectedID {
			return c, true
		}
	}
	return models.Conversation{}, false
}

// Thread returns the messages in insertion order.
func (in *Inbox) Thread() []models.Message {
	return slices.Clone(in.thread)
}

func (in *Inbox) Draft() string {
	return in.draft
}

// Compose sends draft to the local thread. Whitespace-only drafts are ignored and kept in the
// input; otherwise the input is cleared and the message is appended with a clock timestamp.
func (in *Inbox) Compose(draft string, now time.Time) (models.Message, bool) {
	text := strings.TrimSpace(draft)
	if text == "" {
		in.draft = draft
		return models.Message{}, false
	}

	msg := models.Message{
		ID:               in.nextID,
		Sender:           models.SenderMe,
		Text:             text,
		DisplayTimestamp: now.Format(ComposeTimeLayout),
	}
	in.nextID++
	in.thread = append(in.thread, msg)
	in.draft = ""
	return msg, true
}
