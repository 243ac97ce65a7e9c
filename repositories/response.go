//go:generate go run go.uber.org/mock/mockgen -source=response.go -destination=../mocks/mock_response_repository.go -package=mocks
package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"bloodlink/domain"
	apperrors "bloodlink/errors"
)

// uniqueViolation is the postgres error code raised when the
// (request_id, donor_id) unique constraint loses a race.
const uniqueViolation = "23505"

type IResponseRepository interface {
	Create(ctx context.Context, resp domain.DonorResponse) error
	HasResponse(ctx context.Context, requestID, donorID string) (bool, error)
	ListByRequest(ctx context.Context, requestID string) ([]domain.DonorResponse, error)
}

type ResponseRepository struct {
	store *Store
}

func NewResponseRepository(store *Store) IResponseRepository {
	return &ResponseRepository{store: store}
}

// Create inserts a pending response. The application-level duplicate check
// is advisory only: when two near-simultaneous responses from the same
// donor both pass it, the unique constraint decides and the loser surfaces
// ErrDuplicateResponse.
func (r *ResponseRepository) Create(ctx context.Context, resp domain.DonorResponse) error {
	_, err := r.store.pool.Exec(ctx, `
		INSERT INTO donor_responses (id, request_id, donor_id, message, availability, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, resp.ID, resp.RequestID, resp.DonorID, resp.Message, resp.Availability,
		resp.Status, resp.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicateResponse
		}
		return fmt.Errorf("failed to insert donor response: %w", err)
	}
	return nil
}

func (r *ResponseRepository) HasResponse(ctx context.Context, requestID, donorID string) (bool, error) {
	var exists bool
	err := r.store.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM donor_responses WHERE request_id = $1 AND donor_id = $2)
	`, requestID, donorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check donor response: %w", err)
	}
	return exists, nil
}

func (r *ResponseRepository) ListByRequest(ctx context.Context, requestID string) ([]domain.DonorResponse, error) {
	rows, err := r.store.pool.Query(ctx, `
		SELECT id, request_id, donor_id, message, availability, status, created_at
		FROM donor_responses WHERE request_id = $1 ORDER BY created_at
	`, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query donor responses: %w", err)
	}
	defer rows.Close()

	var responses []domain.DonorResponse
	for rows.Next() {
		var resp domain.DonorResponse
		if err := rows.Scan(&resp.ID, &resp.RequestID, &resp.DonorID, &resp.Message,
			&resp.Availability, &resp.Status, &resp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan donor response: %w", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating donor responses: %w", err)
	}
	return responses, nil
}
