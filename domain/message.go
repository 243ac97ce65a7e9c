package domain

import "time"

// ChatMessage is one message inside a request-scoped conversation.
// Messages are append-only; mutation is limited to the read flag.
type ChatMessage struct {
	ID             string
	ConversationID string
	RequestID      string
	SenderID       string
	SenderRole     Role
	Text           string
	CreatedAt      time.Time
	Read           bool
	ReadAt         *time.Time
}
