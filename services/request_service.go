//go:generate go run go.uber.org/mock/mockgen -source=request_service.go -destination=../mocks/mock_request_service.go -package=mocks
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"bloodlink/auth"
	"bloodlink/contract"
	"bloodlink/domain"
	"bloodlink/domain/event"
	apperrors "bloodlink/errors"
	"bloodlink/repositories"
)

// Origin identifies the session an operation came from. HTTP callers have
// no connection id; their broadcasts then reach every live session.
type Origin struct {
	ConnID   string
	Identity auth.Identity
}

type CreateRequestCommand struct {
	PatientName     string
	BloodType       string
	UnitsNeeded     int
	Hospital        string
	Urgency         domain.Urgency
	Location        domain.Location
	AdditionalNotes string
	Emergency       bool
}

type RespondCommand struct {
	RequestID    string
	Message      string
	Availability time.Time
}

type IRequestService interface {
	Create(ctx context.Context, origin Origin, cmd CreateRequestCommand) (domain.BloodRequest, error)
	Respond(ctx context.Context, origin Origin, cmd RespondCommand) (domain.DonorResponse, error)
	SelectDonor(ctx context.Context, origin Origin, requestID, donorID string) (domain.Donation, error)
	UpdateStatus(ctx context.Context, origin Origin, requestID string, status domain.RequestStatus) error
	ListActive(ctx context.Context) ([]domain.BloodRequest, error)
	ListResponses(ctx context.Context, origin Origin, requestID string) ([]domain.DonorResponse, error)
	UpdateLocation(ctx context.Context, origin Origin, loc domain.Location) error
}

// RequestService is the coordination engine driving the blood request
// state machine. Every mutation goes through the persistence gateway
// first; room-router fan-out happens only after the store has committed.
type RequestService struct {
	log       *slog.Logger
	requests  repositories.IRequestRepository
	responses repositories.IResponseRepository
	users     repositories.IUserRepository
	registry  contract.IRegistry
}

func NewRequestService(log *slog.Logger, requests repositories.IRequestRepository,
	responses repositories.IResponseRepository, users repositories.IUserRepository,
	registry contract.IRegistry) IRequestService {
	return &RequestService{
		log:       log,
		requests:  requests,
		responses: responses,
		users:     users,
		registry:  registry,
	}
}

// Create persists a new active request and fans it out to every session
// except the requester, who is acknowledged separately with the generated
// id.
func (s *RequestService) Create(ctx context.Context, origin Origin, cmd CreateRequestCommand) (domain.BloodRequest, error) {
	if err := validateCreate(cmd); err != nil {
		return domain.BloodRequest{}, err
	}

	now := time.Now().UTC()
	req := domain.BloodRequest{
		ID:              uuid.NewString(),
		RequesterID:     origin.Identity.UserID,
		PatientName:     cmd.PatientName,
		BloodType:       cmd.BloodType,
		UnitsNeeded:     cmd.UnitsNeeded,
		Hospital:        cmd.Hospital,
		Urgency:         cmd.Urgency,
		Location:        cmd.Location,
		AdditionalNotes: cmd.AdditionalNotes,
		Status:          domain.RequestActive,
		Emergency:       cmd.Emergency || cmd.Urgency == domain.UrgencyCritical,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.requests.Create(ctx, req); err != nil {
		return domain.BloodRequest{}, err
	}

	s.log.Info("Blood request created", "request", req.ID, "urgency", req.Urgency)
	s.registry.BroadcastExcept(ctx, origin.ConnID, event.NewBloodRequest{
		ID:              req.ID,
		RequesterID:     req.RequesterID,
		RequesterName:   origin.Identity.Name,
		PatientName:     req.PatientName,
		BloodType:       req.BloodType,
		UnitsNeeded:     req.UnitsNeeded,
		Hospital:        req.Hospital,
		Urgency:         req.Urgency,
		Location:        req.Location,
		AdditionalNotes: req.AdditionalNotes,
		Emergency:       req.Emergency,
		CreatedAt:       req.CreatedAt,
	})
	return req, nil
}

// Respond inserts a pending donor response and notifies the requester's
// private room. The requester may be offline, in which case the
// notification is simply dropped.
func (s *RequestService) Respond(ctx context.Context, origin Origin, cmd RespondCommand) (domain.DonorResponse, error) {
	if !origin.Identity.Role.CanDonate() {
		return domain.DonorResponse{}, apperrors.ErrUnauthorized
	}

	req, err := s.requests.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return domain.DonorResponse{}, err
	}
	if req.Status != domain.RequestActive {
		return domain.DonorResponse{}, apperrors.ErrNotFound
	}

	// Advisory fast path. The unique constraint on (request_id, donor_id)
	// is the final arbiter when two submissions race.
	exists, err := s.responses.HasResponse(ctx, cmd.RequestID, origin.Identity.UserID)
	if err != nil {
		return domain.DonorResponse{}, err
	}
	if exists {
		return domain.DonorResponse{}, apperrors.ErrDuplicateResponse
	}

	resp := domain.DonorResponse{
		ID:           uuid.NewString(),
		RequestID:    cmd.RequestID,
		DonorID:      origin.Identity.UserID,
		Message:      cmd.Message,
		Availability: cmd.Availability,
		Status:       domain.ResponsePending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.responses.Create(ctx, resp); err != nil {
		return domain.DonorResponse{}, err
	}

	s.registry.EmitToRoom(ctx, domain.UserRoom(req.RequesterID), event.DonorAvailable{
		RequestID:    resp.RequestID,
		DonorID:      resp.DonorID,
		DonorName:    origin.Identity.Name,
		Message:      resp.Message,
		ResponseTime: resp.Availability,
		ResponseID:   resp.ID,
	})
	return resp, nil
}

// SelectDonor delegates the four-way atomic effect to the gateway's
// serializable transaction, then broadcasts the fulfilment globally so
// any dashboard view stays consistent.
func (s *RequestService) SelectDonor(ctx context.Context, origin Origin, requestID, donorID string) (domain.Donation, error) {
	donation, err := s.requests.SelectDonor(ctx, origin.Identity.UserID, requestID, donorID)
	if err != nil {
		return domain.Donation{}, err
	}

	s.log.Info("Donor selected", "request", requestID, "donor", donorID, "donation", donation.ID)
	s.registry.BroadcastExcept(ctx, "", event.RequestStatusUpdated{
		RequestID: requestID,
		Status:    domain.RequestFulfilled,
		UpdatedBy: origin.Identity.UserID,
	})
	return donation, nil
}

// UpdateStatus applies an ownership-checked transition and broadcasts the
// new status to every session.
func (s *RequestService) UpdateStatus(ctx context.Context, origin Origin, requestID string, status domain.RequestStatus) error {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.RequesterID != origin.Identity.UserID {
		return apperrors.ErrUnauthorized
	}
	if !domain.CanTransition(req.Status, status) {
		return apperrors.ErrInvalidTransition
	}

	if err := s.requests.UpdateStatus(ctx, requestID, status); err != nil {
		return err
	}

	s.registry.BroadcastExcept(ctx, "", event.RequestStatusUpdated{
		RequestID: requestID,
		Status:    status,
		UpdatedBy: origin.Identity.UserID,
	})
	return nil
}

func (s *RequestService) ListActive(ctx context.Context) ([]domain.BloodRequest, error) {
	return s.requests.ListActive(ctx)
}

// ListResponses returns every donor response on a request. Only the
// requester sees them; donors learn the outcome through events.
func (s *RequestService) ListResponses(ctx context.Context, origin Origin, requestID string) ([]domain.DonorResponse, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.RequesterID != origin.Identity.UserID {
		return nil, apperrors.ErrUnauthorized
	}
	return s.responses.ListByRequest(ctx, requestID)
}

// UpdateLocation persists the caller's last-known location and echoes it
// to their private room, so every device of the same user stays in sync.
func (s *RequestService) UpdateLocation(ctx context.Context, origin Origin, loc domain.Location) error {
	if err := s.users.UpdateLocation(ctx, origin.Identity.UserID, loc); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnknownIdentity
		}
		return err
	}

	s.registry.EmitToRoom(ctx, domain.UserRoom(origin.Identity.UserID), event.LocationUpdated{
		UserID:    origin.Identity.UserID,
		Location:  loc,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func validateCreate(cmd CreateRequestCommand) error {
	if cmd.PatientName == "" {
		return fmt.Errorf("%w: patient name is required", apperrors.ErrValidation)
	}
	if cmd.BloodType == "" {
		return fmt.Errorf("%w: blood type is required", apperrors.ErrValidation)
	}
	if cmd.UnitsNeeded <= 0 {
		return fmt.Errorf("%w: units needed must be positive", apperrors.ErrValidation)
	}
	if !cmd.Urgency.Valid() {
		return fmt.Errorf("%w: unknown urgency %q", apperrors.ErrValidation, cmd.Urgency)
	}
	return nil
}
