package socket

import (
	"context"

	"github.com/samber/lo"

	"bloodlink/domain"
	"bloodlink/domain/event"
	apperrors "bloodlink/errors"
	"bloodlink/services"
)

// dispatch routes one inbound event to its handler. Every failure is
// turned into a named error event back to the originating session only;
// errors never propagate into a broadcast.
func (s *Server) dispatch(session *Session, env inboundEnvelope) {
	ctx := context.Background()
	origin := services.Origin{ConnID: session.ID, Identity: session.Identity}

	switch env.Event {
	case "join-user":
		s.handleJoinUser(ctx, session, env)

	case "create-request":
		payload, err := decodePayload[createRequestPayload](env.Data)
		if err != nil {
			s.emit(session, event.RequestError{Message: err.Error()})
			return
		}
		req, err := s.requests.Create(ctx, origin, services.CreateRequestCommand{
			PatientName:     payload.PatientName,
			BloodType:       payload.BloodType,
			UnitsNeeded:     payload.UnitsNeeded,
			Hospital:        payload.Hospital,
			Urgency:         payload.Urgency,
			Location:        payload.Location,
			AdditionalNotes: payload.AdditionalNotes,
			Emergency:       payload.Emergency,
		})
		if err != nil {
			s.emit(session, event.RequestError{Message: err.Error()})
			return
		}
		s.emit(session, event.RequestCreated{
			Status:    "success",
			RequestID: req.ID,
			Message:   "blood request broadcast to nearby donors",
		})

	case "donor-response":
		payload, err := decodePayload[donorResponsePayload](env.Data)
		if err != nil {
			s.emit(session, event.ResponseError{Message: err.Error()})
			return
		}
		resp, err := s.requests.Respond(ctx, origin, services.RespondCommand{
			RequestID:    payload.RequestID,
			Message:      payload.Message,
			Availability: payload.Availability,
		})
		if err != nil {
			s.emit(session, event.ResponseError{Message: err.Error()})
			return
		}
		s.emit(session, event.ResponseSent{
			Status:     "success",
			RequestID:  resp.RequestID,
			ResponseID: resp.ID,
		})

	case "update-location":
		payload, err := decodePayload[updateLocationPayload](env.Data)
		if err != nil {
			s.emit(session, event.Error{Message: err.Error()})
			return
		}
		loc := domain.Location{Latitude: payload.Latitude, Longitude: payload.Longitude}
		if err := s.requests.UpdateLocation(ctx, origin, loc); err != nil {
			s.emit(session, event.Error{Message: err.Error()})
		}

	case "update-request-status":
		payload, err := decodePayload[updateRequestStatusPayload](env.Data)
		if err != nil {
			s.emit(session, event.Error{Message: err.Error()})
			return
		}
		if err := s.requests.UpdateStatus(ctx, origin, payload.RequestID, payload.Status); err != nil {
			s.emit(session, event.Error{Message: err.Error()})
		}

	case "join-conversation":
		payload, err := decodePayload[joinConversationPayload](env.Data)
		if err != nil {
			s.emit(session, event.Error{Message: err.Error()})
			return
		}
		conversationID, history, err := s.chat.JoinConversation(ctx, origin, payload.RequestID)
		if err != nil {
			s.emit(session, event.Error{Message: err.Error()})
			return
		}
		s.emit(session, toChatHistory(history))
		s.emit(session, event.ConversationJoined{
			ConversationID: conversationID,
			RequestID:      payload.RequestID,
		})

	case "send-message":
		payload, err := decodePayload[sendMessagePayload](env.Data)
		if err != nil {
			s.emit(session, event.Error{Message: err.Error()})
			return
		}
		if _, err := s.chat.SendMessage(ctx, origin, services.SendMessageCommand{
			ConversationID: payload.ConversationID,
			RequestID:      payload.RequestID,
			Text:           payload.Message,
		}); err != nil {
			s.emit(session, event.Error{Message: err.Error()})
		}

	case "mark-messages-read":
		payload, err := decodePayload[markMessagesReadPayload](env.Data)
		if err != nil {
			s.emit(session, event.Error{Message: err.Error()})
			return
		}
		if err := s.chat.MarkRead(ctx, origin, payload.MessageIDs); err != nil {
			s.emit(session, event.Error{Message: err.Error()})
		}

	case "message-read":
		payload, err := decodePayload[messageReadPayload](env.Data)
		if err != nil {
			s.emit(session, event.Error{Message: err.Error()})
			return
		}
		if err := s.chat.MessageRead(ctx, origin, payload.MessageID, payload.ConversationID); err != nil {
			s.emit(session, event.Error{Message: err.Error()})
		}

	case "typing-start", "typing-stop":
		payload, err := decodePayload[typingPayload](env.Data)
		if err != nil {
			s.emit(session, event.Error{Message: err.Error()})
			return
		}
		s.chat.Typing(ctx, origin, payload.ConversationID, env.Event == "typing-start")

	case "leave-conversation":
		payload, err := decodePayload[leaveConversationPayload](env.Data)
		if err != nil {
			s.emit(session, event.Error{Message: err.Error()})
			return
		}
		s.chat.LeaveConversation(ctx, origin, payload.ConversationID)

	default:
		s.emit(session, event.Error{Message: "unknown event: " + env.Event})
	}
}

// handleJoinUser subscribes the session to its private notification room.
// Joining another identity's room is refused.
func (s *Server) handleJoinUser(ctx context.Context, session *Session, env inboundEnvelope) {
	payload, err := decodePayload[joinUserPayload](env.Data)
	if err != nil {
		s.emit(session, event.Error{Message: err.Error()})
		return
	}
	if payload.UserID != session.Identity.UserID {
		s.emit(session, event.Error{Message: apperrors.ErrUnauthorized.Error()})
		return
	}

	room := domain.UserRoom(session.Identity.UserID)
	s.registry.Join(session.ID, room)
	s.emit(session, event.JoinedRoom{Room: string(room), UserID: session.Identity.UserID})
}

func (s *Server) emit(session *Session, e event.Outbound) {
	_ = session.Consume(context.Background(), e)
}

func toChatHistory(messages []domain.ChatMessage) event.ChatHistory {
	return lo.Map(messages, func(msg domain.ChatMessage, _ int) event.Message {
		return event.Message{
			ID:             msg.ID,
			ConversationID: msg.ConversationID,
			Text:           msg.Text,
			SenderID:       msg.SenderID,
			SenderType:     msg.SenderRole,
			Timestamp:      msg.CreatedAt,
			ReadStatus:     msg.Read,
		}
	})
}
