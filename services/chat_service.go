//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"bloodlink/contract"
	"bloodlink/domain"
	"bloodlink/domain/event"
	apperrors "bloodlink/errors"
	"bloodlink/repositories"
)

// Moderator masks forbidden words in outgoing text. A nil moderator
// leaves messages untouched.
type Moderator interface {
	Censor(text string) string
}

type SendMessageCommand struct {
	ConversationID string
	RequestID      string
	Text           string
}

type IChatService interface {
	JoinConversation(ctx context.Context, origin Origin, requestID string) (string, []domain.ChatMessage, error)
	LeaveConversation(ctx context.Context, origin Origin, conversationID string)
	SendMessage(ctx context.Context, origin Origin, cmd SendMessageCommand) (domain.ChatMessage, error)
	MarkRead(ctx context.Context, origin Origin, messageIDs []string) error
	MessageRead(ctx context.Context, origin Origin, messageID, conversationID string) error
	Typing(ctx context.Context, origin Origin, conversationID string, isTyping bool)
}

// ChatService gates conversation membership, persists messages and drives
// delivery through the room router. Conversation membership is derived,
// never stored: access is re-checked against the request on every call.
type ChatService struct {
	log          *slog.Logger
	requests     repositories.IRequestRepository
	responses    repositories.IResponseRepository
	messages     repositories.IMessageRepository
	registry     contract.IRegistry
	moderator    Moderator
	historyLimit int
}

func NewChatService(log *slog.Logger, requests repositories.IRequestRepository,
	responses repositories.IResponseRepository, messages repositories.IMessageRepository,
	registry contract.IRegistry, moderator Moderator, historyLimit int) IChatService {
	return &ChatService{
		log:          log,
		requests:     requests,
		responses:    responses,
		messages:     messages,
		registry:     registry,
		moderator:    moderator,
		historyLimit: historyLimit,
	}
}

// JoinConversation re-derives the conversation id, re-checks access, joins
// the room and replays the most recent persisted messages in timestamp
// ascending order. Repeat joins are idempotent: the session is never
// double-counted for fan-out, it just receives history again.
func (s *ChatService) JoinConversation(ctx context.Context, origin Origin, requestID string) (string, []domain.ChatMessage, error) {
	if err := s.checkAccess(ctx, requestID, origin.Identity.UserID); err != nil {
		return "", nil, err
	}

	conversationID := domain.ConversationID(requestID)
	room := domain.ConversationRoom(conversationID)
	alreadyJoined := s.registry.InRoom(origin.ConnID, room)
	s.registry.Join(origin.ConnID, room)

	history, err := s.messages.History(ctx, conversationID, s.historyLimit)
	if err != nil {
		return "", nil, err
	}

	if !alreadyJoined {
		s.registry.EmitToRoom(ctx, room, event.UserJoined{
			UserID:         origin.Identity.UserID,
			ConversationID: conversationID,
		})
	}
	return conversationID, history, nil
}

func (s *ChatService) LeaveConversation(ctx context.Context, origin Origin, conversationID string) {
	room := domain.ConversationRoom(conversationID)
	if !s.registry.InRoom(origin.ConnID, room) {
		return
	}
	s.registry.Leave(origin.ConnID, room)
	s.registry.EmitToRoom(ctx, room, event.UserLeft{
		UserID:         origin.Identity.UserID,
		ConversationID: conversationID,
	})
}

// SendMessage persists then fans out to every currently-joined session,
// including the sender: the sender's own UI updates from the broadcast,
// which keeps a single source of truth for message ordering.
func (s *ChatService) SendMessage(ctx context.Context, origin Origin, cmd SendMessageCommand) (domain.ChatMessage, error) {
	if err := s.checkAccess(ctx, cmd.RequestID, origin.Identity.UserID); err != nil {
		return domain.ChatMessage{}, err
	}

	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return domain.ChatMessage{}, apperrors.ErrEmptyMessage
	}
	if s.moderator != nil {
		text = s.moderator.Censor(text)
	}

	conversationID := domain.ConversationID(cmd.RequestID)
	msg := domain.ChatMessage{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		RequestID:      cmd.RequestID,
		SenderID:       origin.Identity.UserID,
		SenderRole:     origin.Identity.Role,
		Text:           text,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.messages.Store(ctx, msg); err != nil {
		return domain.ChatMessage{}, err
	}

	s.registry.EmitToRoom(ctx, domain.ConversationRoom(conversationID), event.NewMessage{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		Text:           msg.Text,
		SenderID:       msg.SenderID,
		SenderType:     msg.SenderRole,
		Timestamp:      msg.CreatedAt,
		ReadStatus:     msg.Read,
	})
	return msg, nil
}

// MarkRead flips the read flag on a batch of messages and sends a read
// receipt to each original sender's private room. Receipts only go out
// once the store has committed the flags, so a failed batch leaves no
// user-visible trace.
func (s *ChatService) MarkRead(ctx context.Context, origin Origin, messageIDs []string) error {
	readAt := time.Now().UTC()

	type receipt struct {
		senderID  string
		messageID string
	}
	var readable []string
	var receipts []receipt
	accessByRequest := make(map[string]error)

	for _, id := range messageIDs {
		msg, err := s.messages.GetByID(ctx, id)
		if errors.Is(err, apperrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		// A sender cannot mark their own message read.
		if msg.SenderID == origin.Identity.UserID {
			continue
		}
		access, checked := accessByRequest[msg.RequestID]
		if !checked {
			access = s.checkAccess(ctx, msg.RequestID, origin.Identity.UserID)
			accessByRequest[msg.RequestID] = access
		}
		if access != nil {
			return access
		}
		readable = append(readable, id)
		receipts = append(receipts, receipt{senderID: msg.SenderID, messageID: msg.ID})
	}

	if err := s.messages.MarkRead(ctx, readable, readAt); err != nil {
		return err
	}

	for _, rc := range receipts {
		s.registry.EmitToRoom(ctx, domain.UserRoom(rc.senderID), event.MessageReadReceipt{
			MessageID: rc.messageID,
			ReadBy:    origin.Identity.UserID,
			ReadAt:    readAt,
		})
	}
	s.registry.EmitTo(ctx, origin.ConnID, event.MessagesRead{MessageIDs: readable})
	return nil
}

// MessageRead handles the single-message variant of the read receipt.
// Knowing a message id is not enough: the reader must hold conversation
// access, exactly as for join and send.
func (s *ChatService) MessageRead(ctx context.Context, origin Origin, messageID, conversationID string) error {
	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.ConversationID != conversationID || msg.SenderID == origin.Identity.UserID {
		return apperrors.ErrAccessDenied
	}
	if err := s.checkAccess(ctx, msg.RequestID, origin.Identity.UserID); err != nil {
		return err
	}

	readAt := time.Now().UTC()
	if err := s.messages.MarkRead(ctx, []string{messageID}, readAt); err != nil {
		return err
	}

	s.registry.EmitToRoom(ctx, domain.UserRoom(msg.SenderID), event.MessageReadReceipt{
		MessageID: messageID,
		ReadBy:    origin.Identity.UserID,
		ReadAt:    readAt,
	})
	return nil
}

// Typing is a pure ephemeral room broadcast: no persistence, no delivery
// guarantee. Sessions outside the room cannot spoof indicators into it.
func (s *ChatService) Typing(ctx context.Context, origin Origin, conversationID string, isTyping bool) {
	room := domain.ConversationRoom(conversationID)
	if !s.registry.InRoom(origin.ConnID, room) {
		return
	}
	s.registry.EmitToRoom(ctx, room, event.UserTyping{
		UserID:   origin.Identity.UserID,
		IsTyping: isTyping,
	})
}

// checkAccess implements the derived-membership rule: a user may access a
// conversation iff they are the request's requester or have an existing
// response of any status to that request.
func (s *ChatService) checkAccess(ctx context.Context, requestID, userID string) error {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.RequesterID == userID {
		return nil
	}

	responded, err := s.responses.HasResponse(ctx, requestID, userID)
	if err != nil {
		return err
	}
	if !responded {
		return apperrors.ErrAccessDenied
	}
	return nil
}
