package intake

import "time"

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one entry in the session's append-only chat log. Messages are
// never mutated or deleted.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Session bundles one intake conversation: the cumulative patient record and
// the chat log. Sessions live only as long as their store TTL.
type Session struct {
	ID        string        `json:"id"`
	Record    PatientRecord `json:"record"`
	Messages  []Message     `json:"messages"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
