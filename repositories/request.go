//go:generate go run go.uber.org/mock/mockgen -source=request.go -destination=../mocks/mock_request_repository.go -package=mocks
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bloodlink/domain"
	apperrors "bloodlink/errors"
)

type IRequestRepository interface {
	Create(ctx context.Context, req domain.BloodRequest) error
	GetByID(ctx context.Context, id string) (domain.BloodRequest, error)
	ListActive(ctx context.Context) ([]domain.BloodRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
	SelectDonor(ctx context.Context, requesterID, requestID, donorID string) (domain.Donation, error)
}

type RequestRepository struct {
	store *Store
}

func NewRequestRepository(store *Store) IRequestRepository {
	return &RequestRepository{store: store}
}

const requestColumns = `id, requester_id, patient_name, blood_type, units_needed,
	hospital, urgency, latitude, longitude, additional_notes, status, emergency,
	created_at, updated_at`

func (r *RequestRepository) Create(ctx context.Context, req domain.BloodRequest) error {
	_, err := r.store.pool.Exec(ctx, `
		INSERT INTO blood_requests (`+requestColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, req.ID, req.RequesterID, req.PatientName, req.BloodType, req.UnitsNeeded,
		req.Hospital, req.Urgency, req.Location.Latitude, req.Location.Longitude,
		req.AdditionalNotes, req.Status, req.Emergency, req.CreatedAt, req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert blood request: %w", err)
	}
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (domain.BloodRequest, error) {
	row := r.store.pool.QueryRow(ctx, `
		SELECT `+requestColumns+` FROM blood_requests WHERE id = $1
	`, id)
	req, err := scanRequest(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.BloodRequest{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.BloodRequest{}, fmt.Errorf("failed to query blood request: %w", err)
	}
	return req, nil
}

// ListActive returns active requests in canonical presentation order:
// urgency rank ascending (critical first), then creation time descending.
func (r *RequestRepository) ListActive(ctx context.Context) ([]domain.BloodRequest, error) {
	rows, err := r.store.pool.Query(ctx, `
		SELECT `+requestColumns+` FROM blood_requests
		WHERE status = 'active'
		ORDER BY CASE urgency
			WHEN 'critical' THEN 0
			WHEN 'high' THEN 1
			WHEN 'medium' THEN 2
			ELSE 3
		END, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query active requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.BloodRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blood request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blood requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus applies a transition guard in the statement itself so a
// concurrent transition cannot resurrect a terminal request.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	tag, err := r.store.pool.Exec(ctx, `
		UPDATE blood_requests SET status = $2, updated_at = $3
		WHERE id = $1 AND status = 'active'
	`, id, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInvalidState
	}
	return nil
}

// SelectDonor is the only multi-row atomic operation in the system. It runs
// as one serializable transaction: accept the chosen pending response,
// reject every other pending response, fulfil the request, and create
// exactly one donation. All four effects commit together or not at all.
func (r *RequestRepository) SelectDonor(ctx context.Context, requesterID, requestID, donorID string) (domain.Donation, error) {
	tx, err := r.store.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return domain.Donation{}, fmt.Errorf("failed to begin donor selection: %w", err)
	}
	defer tx.Rollback(ctx)

	var ownerID string
	var status domain.RequestStatus
	err = tx.QueryRow(ctx, `
		SELECT requester_id, status FROM blood_requests WHERE id = $1 FOR UPDATE
	`, requestID).Scan(&ownerID, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Donation{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.Donation{}, fmt.Errorf("failed to lock blood request: %w", err)
	}
	if ownerID != requesterID {
		return domain.Donation{}, apperrors.ErrUnauthorized
	}
	if status != domain.RequestActive {
		return domain.Donation{}, apperrors.ErrInvalidState
	}

	tag, err := tx.Exec(ctx, `
		UPDATE donor_responses SET status = 'accepted'
		WHERE request_id = $1 AND donor_id = $2 AND status = 'pending'
	`, requestID, donorID)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("failed to accept response: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Donation{}, apperrors.ErrInvalidDonor
	}

	// Remaining pending responses belong to other donors.
	if _, err := tx.Exec(ctx, `
		UPDATE donor_responses SET status = 'rejected'
		WHERE request_id = $1 AND status = 'pending'
	`, requestID); err != nil {
		return domain.Donation{}, fmt.Errorf("failed to reject other responses: %w", err)
	}

	now := time.Now().UTC()
	if _, err := tx.Exec(ctx, `
		UPDATE blood_requests SET status = 'fulfilled', updated_at = $2 WHERE id = $1
	`, requestID, now); err != nil {
		return domain.Donation{}, fmt.Errorf("failed to fulfil request: %w", err)
	}

	donation := domain.Donation{
		ID:        uuid.NewString(),
		RequestID: requestID,
		DonorID:   donorID,
		Status:    domain.DonationScheduled,
		CreatedAt: now,
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO donations (id, request_id, donor_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, donation.ID, donation.RequestID, donation.DonorID, donation.Status, donation.CreatedAt); err != nil {
		return domain.Donation{}, fmt.Errorf("failed to create donation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Donation{}, fmt.Errorf("failed to commit donor selection: %w", err)
	}
	return donation, nil
}

func scanRequest(row pgx.Row) (domain.BloodRequest, error) {
	var req domain.BloodRequest
	err := row.Scan(&req.ID, &req.RequesterID, &req.PatientName, &req.BloodType,
		&req.UnitsNeeded, &req.Hospital, &req.Urgency, &req.Location.Latitude,
		&req.Location.Longitude, &req.AdditionalNotes, &req.Status, &req.Emergency,
		&req.CreatedAt, &req.UpdatedAt)
	return req, err
}
