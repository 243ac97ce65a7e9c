//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"bloodlink/domain"
	apperrors "bloodlink/errors"
)

type IMessageRepository interface {
	Store(ctx context.Context, msg domain.ChatMessage) error
	GetByID(ctx context.Context, id string) (domain.ChatMessage, error)
	// History returns at most limit of the newest messages in the
	// conversation, reordered timestamp ascending for replay.
	History(ctx context.Context, conversationID string, limit int) ([]domain.ChatMessage, error)
	MarkRead(ctx context.Context, ids []string, readAt time.Time) error
}

type MessageRepository struct {
	store *Store
}

func NewMessageRepository(store *Store) IMessageRepository {
	return &MessageRepository{store: store}
}

func (r *MessageRepository) Store(ctx context.Context, msg domain.ChatMessage) error {
	_, err := r.store.pool.Exec(ctx, `
		INSERT INTO chat_messages (id, conversation_id, request_id, sender_id, sender_role, text, created_at, read, read_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, msg.ID, msg.ConversationID, msg.RequestID, msg.SenderID, msg.SenderRole,
		msg.Text, msg.CreatedAt, msg.Read, msg.ReadAt)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (domain.ChatMessage, error) {
	row := r.store.pool.QueryRow(ctx, `
		SELECT id, conversation_id, request_id, sender_id, sender_role, text, created_at, read, read_at
		FROM chat_messages WHERE id = $1
	`, id)
	msg, err := scanMessage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ChatMessage{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("failed to query chat message: %w", err)
	}
	return msg, nil
}

// History selects the newest rows first to honor the cap, then flips them
// so the replay the client sees is in send order. The ordering key is the
// bigserial insertion sequence: timestamps truncate to microseconds in
// postgres, so back-to-back messages can share an instant, and a random
// uuid tie-break would shuffle them.
func (r *MessageRepository) History(ctx context.Context, conversationID string, limit int) ([]domain.ChatMessage, error) {
	rows, err := r.store.pool.Query(ctx, `
		SELECT id, conversation_id, request_id, sender_id, sender_role, text, created_at, read, read_at
		FROM chat_messages WHERE conversation_id = $1
		ORDER BY seq DESC
		LIMIT $2
	`, conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat messages: %w", err)
	}
	return orderForReplay(messages), nil
}

// orderForReplay flips a newest-first page into send order. It is a pure
// reversal: rows arrive ordered by the insertion sequence, so messages
// stored at the same instant keep their relative order.
func orderForReplay(messages []domain.ChatMessage) []domain.ChatMessage {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages
}

func (r *MessageRepository) MarkRead(ctx context.Context, ids []string, readAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.store.pool.Exec(ctx, `
		UPDATE chat_messages SET read = TRUE, read_at = $2 WHERE id = ANY($1) AND read = FALSE
	`, ids, readAt)
	if err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}

func scanMessage(row pgx.Row) (domain.ChatMessage, error) {
	var msg domain.ChatMessage
	err := row.Scan(&msg.ID, &msg.ConversationID, &msg.RequestID, &msg.SenderID,
		&msg.SenderRole, &msg.Text, &msg.CreatedAt, &msg.Read, &msg.ReadAt)
	return msg, err
}
