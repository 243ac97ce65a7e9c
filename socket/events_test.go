package socket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"bloodlink/domain"
	apperrors "bloodlink/errors"
)

func TestDecodePayload_CreateRequest(t *testing.T) {
	t.Run("should accept a complete payload", func(t *testing.T) {
		req := require.New(t)
		raw := json.RawMessage(`{
			"patientName": "John Doe",
			"bloodType": "O+",
			"unitsNeeded": 2,
			"hospital": "Central Hospital",
			"urgency": "critical",
			"location": {"latitude": 48.85, "longitude": 2.35}
		}`)

		payload, err := decodePayload[createRequestPayload](raw)

		req.NoError(err)
		req.Equal("John Doe", payload.PatientName)
		req.Equal(domain.UrgencyCritical, payload.Urgency)
		req.Equal(48.85, payload.Location.Latitude)
	})

	t.Run("should fail closed on a missing required field", func(t *testing.T) {
		req := require.New(t)
		raw := json.RawMessage(`{"bloodType": "O+", "unitsNeeded": 2, "hospital": "H", "urgency": "high", "location": {"latitude": 1, "longitude": 1}}`)

		_, err := decodePayload[createRequestPayload](raw)

		req.ErrorIs(err, apperrors.ErrValidation)
	})

	t.Run("should fail closed on zero units", func(t *testing.T) {
		req := require.New(t)
		raw := json.RawMessage(`{"patientName": "P", "bloodType": "O+", "unitsNeeded": 0, "hospital": "H", "urgency": "high", "location": {"latitude": 1, "longitude": 1}}`)

		_, err := decodePayload[createRequestPayload](raw)

		req.ErrorIs(err, apperrors.ErrValidation)
	})

	t.Run("should fail closed on an unknown urgency", func(t *testing.T) {
		req := require.New(t)
		raw := json.RawMessage(`{"patientName": "P", "bloodType": "O+", "unitsNeeded": 1, "hospital": "H", "urgency": "panic", "location": {"latitude": 1, "longitude": 1}}`)

		_, err := decodePayload[createRequestPayload](raw)

		req.ErrorIs(err, apperrors.ErrValidation)
	})

	t.Run("should accept the null island like a location update does", func(t *testing.T) {
		req := require.New(t)
		raw := json.RawMessage(`{"patientName": "P", "bloodType": "O+", "unitsNeeded": 1, "hospital": "H", "urgency": "high", "location": {"latitude": 0, "longitude": 0}}`)

		payload, err := decodePayload[createRequestPayload](raw)

		req.NoError(err)
		req.Zero(payload.Location.Latitude)
	})

	t.Run("should fail closed on out-of-range coordinates", func(t *testing.T) {
		req := require.New(t)
		raw := json.RawMessage(`{"patientName": "P", "bloodType": "O+", "unitsNeeded": 1, "hospital": "H", "urgency": "high", "location": {"latitude": 123.4, "longitude": 5.6}}`)

		_, err := decodePayload[createRequestPayload](raw)

		req.ErrorIs(err, apperrors.ErrValidation)
	})

	t.Run("should fail closed on malformed json", func(t *testing.T) {
		req := require.New(t)

		_, err := decodePayload[createRequestPayload](json.RawMessage(`{not json`))

		req.ErrorIs(err, apperrors.ErrValidation)
	})
}

func TestDecodePayload_MarkMessagesRead(t *testing.T) {
	t.Run("should require at least one id", func(t *testing.T) {
		req := require.New(t)

		_, err := decodePayload[markMessagesReadPayload](json.RawMessage(`{"messageIds": []}`))

		req.ErrorIs(err, apperrors.ErrValidation)
	})

	t.Run("should accept a non-empty batch", func(t *testing.T) {
		req := require.New(t)

		payload, err := decodePayload[markMessagesReadPayload](json.RawMessage(`{"messageIds": ["m1", "m2"]}`))

		req.NoError(err)
		req.Len(payload.MessageIDs, 2)
	})
}

func TestDecodePayload_UpdateLocation(t *testing.T) {
	t.Run("should reject out-of-range coordinates", func(t *testing.T) {
		req := require.New(t)

		_, err := decodePayload[updateLocationPayload](json.RawMessage(`{"latitude": 123.4, "longitude": 5.6}`))

		req.ErrorIs(err, apperrors.ErrValidation)
	})

	t.Run("should accept the null island", func(t *testing.T) {
		req := require.New(t)

		payload, err := decodePayload[updateLocationPayload](json.RawMessage(`{"latitude": 0, "longitude": 0}`))

		req.NoError(err)
		req.Zero(payload.Latitude)
	})
}

func TestInboundEnvelope_Decoding(t *testing.T) {
	req := require.New(t)

	var env inboundEnvelope
	err := json.Unmarshal([]byte(`{"event": "send-message", "data": {"conversationId": "request:r1"}}`), &env)

	req.NoError(err)
	req.Equal("send-message", env.Event)
	req.JSONEq(`{"conversationId": "request:r1"}`, string(env.Data))
}
