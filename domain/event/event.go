// Package event defines the server→client events carried over a socket
// session. Each event is a tagged variant with a fixed schema; payloads
// never leave the server partially populated.
package event

import (
	"time"

	"bloodlink/domain"
)

// Outbound is delivered to sessions through the room router. Delivery is
// best-effort: a disconnected session simply never sees the event.
type Outbound interface {
	Event() string
}

type Welcome struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (Welcome) Event() string { return "welcome" }

type JoinedRoom struct {
	Room   string `json:"room"`
	UserID string `json:"userId"`
}

func (JoinedRoom) Event() string { return "joined-room" }

// NewBloodRequest fans out to every session except the requester; the
// requester is acknowledged with RequestCreated instead.
type NewBloodRequest struct {
	ID              string          `json:"id"`
	RequesterID     string          `json:"requesterId"`
	RequesterName   string          `json:"requester_name"`
	PatientName     string          `json:"patientName"`
	BloodType       string          `json:"bloodType"`
	UnitsNeeded     int             `json:"unitsNeeded"`
	Hospital        string          `json:"hospital"`
	Urgency         domain.Urgency  `json:"urgency"`
	Location        domain.Location `json:"location"`
	AdditionalNotes string          `json:"additionalNotes,omitempty"`
	Emergency       bool            `json:"emergency"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (NewBloodRequest) Event() string { return "new-blood-request" }

type RequestCreated struct {
	Status    string `json:"status"`
	RequestID string `json:"requestId"`
	Message   string `json:"message"`
}

func (RequestCreated) Event() string { return "request-created" }

type RequestError struct {
	Message string `json:"message"`
}

func (RequestError) Event() string { return "request-error" }

type DonorAvailable struct {
	RequestID    string    `json:"requestId"`
	DonorID      string    `json:"donorId"`
	DonorName    string    `json:"donorName"`
	Message      string    `json:"message"`
	ResponseTime time.Time `json:"responseTime"`
	ResponseID   string    `json:"responseId"`
}

func (DonorAvailable) Event() string { return "donor-available" }

type ResponseSent struct {
	Status     string `json:"status"`
	RequestID  string `json:"requestId"`
	ResponseID string `json:"responseId"`
}

func (ResponseSent) Event() string { return "response-sent" }

type ResponseError struct {
	Message string `json:"message"`
}

func (ResponseError) Event() string { return "response-error" }

type RequestStatusUpdated struct {
	RequestID string               `json:"requestId"`
	Status    domain.RequestStatus `json:"status"`
	UpdatedBy string               `json:"updatedBy"`
}

func (RequestStatusUpdated) Event() string { return "request-status-updated" }

type LocationUpdated struct {
	UserID    string          `json:"userId"`
	Location  domain.Location `json:"location"`
	Timestamp time.Time       `json:"timestamp"`
}

func (LocationUpdated) Event() string { return "location-updated" }

type Message struct {
	ID             string      `json:"id"`
	ConversationID string      `json:"conversationId"`
	Text           string      `json:"text"`
	SenderID       string      `json:"senderId"`
	SenderType     domain.Role `json:"senderType"`
	Timestamp      time.Time   `json:"timestamp"`
	ReadStatus     bool        `json:"readStatus"`
}

// ChatHistory replays the most recent persisted messages, timestamp
// ascending, on every conversation join. Bounded, not paginated.
type ChatHistory []Message

func (ChatHistory) Event() string { return "chat-history" }

type ConversationJoined struct {
	ConversationID string `json:"conversationId"`
	RequestID      string `json:"requestId"`
}

func (ConversationJoined) Event() string { return "conversation-joined" }

// NewMessage reaches every joined session including the sender; the
// sender's UI updates from the broadcast, never from a local echo.
type NewMessage Message

func (NewMessage) Event() string { return "new-message" }

type MessagesRead struct {
	MessageIDs []string `json:"messageIds"`
}

func (MessagesRead) Event() string { return "messages-read" }

type MessageReadReceipt struct {
	MessageID string    `json:"messageId"`
	ReadBy    string    `json:"readBy"`
	ReadAt    time.Time `json:"readAt"`
}

func (MessageReadReceipt) Event() string { return "message-read-receipt" }

type UserTyping struct {
	UserID   string `json:"userId"`
	IsTyping bool   `json:"isTyping"`
}

func (UserTyping) Event() string { return "user-typing" }

type UserJoined struct {
	UserID         string `json:"userId"`
	ConversationID string `json:"conversationId"`
}

func (UserJoined) Event() string { return "user-joined" }

type UserLeft struct {
	UserID         string `json:"userId"`
	ConversationID string `json:"conversationId"`
}

func (UserLeft) Event() string { return "user-left" }

type Error struct {
	Message string `json:"message"`
}

func (Error) Event() string { return "error" }
