package socket

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"bloodlink/domain"
	apperrors "bloodlink/errors"
)

var validate = validator.New()

// inboundEnvelope is the wire frame for client→server events. Each event
// name maps to exactly one payload schema below; anything that does not
// decode and validate against it is rejected before touching a service.
type inboundEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type joinUserPayload struct {
	UserID string `json:"userId" validate:"required"`
}

type createRequestPayload struct {
	PatientName     string          `json:"patientName" validate:"required"`
	BloodType       string          `json:"bloodType" validate:"required"`
	UnitsNeeded     int             `json:"unitsNeeded" validate:"required,gt=0"`
	Hospital        string          `json:"hospital" validate:"required"`
	Urgency         domain.Urgency  `json:"urgency" validate:"required,oneof=critical high medium low"`
	Location        domain.Location `json:"location"`
	AdditionalNotes string          `json:"additionalNotes"`
	Emergency       bool            `json:"emergency"`
}

type donorResponsePayload struct {
	RequestID    string    `json:"requestId" validate:"required"`
	Message      string    `json:"message"`
	Availability time.Time `json:"availability" validate:"required"`
}

type updateLocationPayload struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

type updateRequestStatusPayload struct {
	RequestID string               `json:"requestId" validate:"required"`
	Status    domain.RequestStatus `json:"status" validate:"required,oneof=fulfilled cancelled expired"`
}

type joinConversationPayload struct {
	ConversationID string `json:"conversationId" validate:"required"`
	UserID         string `json:"userId" validate:"required"`
	RequestID      string `json:"requestId" validate:"required"`
}

type sendMessagePayload struct {
	ConversationID string    `json:"conversationId" validate:"required"`
	Message        string    `json:"message" validate:"required"`
	SenderID       string    `json:"senderId" validate:"required"`
	SenderType     string    `json:"senderType"`
	RequestID      string    `json:"requestId" validate:"required"`
	Timestamp      time.Time `json:"timestamp"`
}

type markMessagesReadPayload struct {
	MessageIDs []string `json:"messageIds" validate:"required,min=1"`
}

type typingPayload struct {
	ConversationID string `json:"conversationId" validate:"required"`
	UserID         string `json:"userId"`
}

type messageReadPayload struct {
	MessageID      string `json:"messageId" validate:"required"`
	ConversationID string `json:"conversationId" validate:"required"`
}

type leaveConversationPayload struct {
	ConversationID string `json:"conversationId" validate:"required"`
	UserID         string `json:"userId"`
}

// decodePayload unmarshals and validates one inbound payload, failing
// closed on anything malformed.
func decodePayload[T any](data json.RawMessage) (T, error) {
	var payload T
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("%w: malformed payload: %v", apperrors.ErrValidation, err)
	}
	if err := validate.Struct(payload); err != nil {
		return payload, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return payload, nil
}
