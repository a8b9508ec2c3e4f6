package models

// SenderSide tells which side of the thread wrote a message.
type SenderSide string

const (
	SenderMe     SenderSide = "me"
	SenderClient SenderSide = "client"
)

// Message is a single entry of a thread. DisplayTimestamp is opaque and never used for ordering.
type Message struct {
	ID               int        `yaml:"id" json:"id"`
	Sender           SenderSide `yaml:"sender" json:"sender"`
	Text             string     `yaml:"text" json:"text"`
	DisplayTimestamp string     `yaml:"displayTimestamp" json:"displayTimestamp"`
}

// FromMe reports whether the freelancer wrote the message.
func (m Message) FromMe() bool {
	return m.Sender == SenderMe
}
