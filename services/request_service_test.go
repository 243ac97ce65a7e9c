package services_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bloodlink/auth"
	"bloodlink/domain"
	"bloodlink/domain/event"
	apperrors "bloodlink/errors"
	"bloodlink/mocks"
	"bloodlink/services"
)

type requestFixture struct {
	requests  *mocks.MockIRequestRepository
	responses *mocks.MockIResponseRepository
	users     *mocks.MockIUserRepository
	registry  *mocks.MockIRegistry
	svc       services.IRequestService
}

func newRequestFixture(t *testing.T) requestFixture {
	ctrl := gomock.NewController(t)
	requests := mocks.NewMockIRequestRepository(ctrl)
	responses := mocks.NewMockIResponseRepository(ctrl)
	users := mocks.NewMockIUserRepository(ctrl)
	registry := mocks.NewMockIRegistry(ctrl)
	svc := services.NewRequestService(slog.New(slog.DiscardHandler), requests, responses, users, registry)
	return requestFixture{requests: requests, responses: responses, users: users, registry: registry, svc: svc}
}

func requesterOrigin() services.Origin {
	return services.Origin{
		ConnID:   "conn-a",
		Identity: auth.Identity{UserID: "user-a", Name: "Alice", Role: domain.RoleRecipient},
	}
}

func donorOrigin() services.Origin {
	return services.Origin{
		ConnID:   "conn-b",
		Identity: auth.Identity{UserID: "user-b", Name: "Bob", Role: domain.RoleDonor},
	}
}

func validCreateCommand() services.CreateRequestCommand {
	return services.CreateRequestCommand{
		PatientName: "John Doe",
		BloodType:   "O+",
		UnitsNeeded: 2,
		Hospital:    "Central Hospital",
		Urgency:     domain.UrgencyHigh,
		Location:    domain.Location{Latitude: 48.85, Longitude: 2.35},
	}
}

func TestRequestService_Create(t *testing.T) {
	t.Run("should persist an active request and broadcast to everyone but the requester", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)
		origin := requesterOrigin()

		var stored domain.BloodRequest
		f.requests.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r domain.BloodRequest) error {
				stored = r
				return nil
			})
		f.registry.EXPECT().
			BroadcastExcept(gomock.Any(), origin.ConnID, gomock.AssignableToTypeOf(event.NewBloodRequest{}))

		created, err := f.svc.Create(context.Background(), origin, validCreateCommand())

		req.NoError(err)
		req.NotEmpty(created.ID)
		req.Equal(domain.RequestActive, stored.Status)
		req.Equal(origin.Identity.UserID, stored.RequesterID)
	})

	t.Run("should flag critical requests as emergencies", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)
		cmd := validCreateCommand()
		cmd.Urgency = domain.UrgencyCritical

		f.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.registry.EXPECT().BroadcastExcept(gomock.Any(), gomock.Any(), gomock.Any())

		created, err := f.svc.Create(context.Background(), requesterOrigin(), cmd)

		req.NoError(err)
		req.True(created.Emergency)
	})

	t.Run("should reject missing patient name before any persistence call", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)
		cmd := validCreateCommand()
		cmd.PatientName = ""

		f.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.Create(context.Background(), requesterOrigin(), cmd)

		req.ErrorIs(err, apperrors.ErrValidation)
	})

	t.Run("should reject non-positive units", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)
		cmd := validCreateCommand()
		cmd.UnitsNeeded = 0

		_, err := f.svc.Create(context.Background(), requesterOrigin(), cmd)

		req.ErrorIs(err, apperrors.ErrValidation)
	})
}

func TestRequestService_Respond(t *testing.T) {
	activeRequest := domain.BloodRequest{
		ID:          "req-1",
		RequesterID: "user-a",
		Status:      domain.RequestActive,
	}

	t.Run("should insert a pending response and notify the requester's private room", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)
		origin := donorOrigin()

		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(activeRequest, nil)
		f.responses.EXPECT().HasResponse(gomock.Any(), "req-1", origin.Identity.UserID).Return(false, nil)

		var stored domain.DonorResponse
		f.responses.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r domain.DonorResponse) error {
				stored = r
				return nil
			})
		f.registry.EXPECT().
			EmitToRoom(gomock.Any(), domain.UserRoom("user-a"), gomock.AssignableToTypeOf(event.DonorAvailable{}))

		resp, err := f.svc.Respond(context.Background(), origin, services.RespondCommand{
			RequestID:    "req-1",
			Message:      "can help",
			Availability: time.Now().Add(time.Hour),
		})

		req.NoError(err)
		req.Equal(domain.ResponsePending, stored.Status)
		req.Equal(origin.Identity.UserID, resp.DonorID)
	})

	t.Run("should refuse a role that cannot donate before touching the store", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)

		f.requests.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
		f.responses.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.Respond(context.Background(), requesterOrigin(), services.RespondCommand{RequestID: "req-1"})

		req.ErrorIs(err, apperrors.ErrUnauthorized)
	})

	t.Run("should fail NotFound when the request is no longer active", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)
		fulfilled := activeRequest
		fulfilled.Status = domain.RequestFulfilled

		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(fulfilled, nil)

		_, err := f.svc.Respond(context.Background(), donorOrigin(), services.RespondCommand{RequestID: "req-1"})

		req.ErrorIs(err, apperrors.ErrNotFound)
	})

	t.Run("should fail on duplicate via the advisory check", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)

		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(activeRequest, nil)
		f.responses.EXPECT().HasResponse(gomock.Any(), "req-1", "user-b").Return(true, nil)
		f.responses.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.Respond(context.Background(), donorOrigin(), services.RespondCommand{RequestID: "req-1"})

		req.ErrorIs(err, apperrors.ErrDuplicateResponse)
	})

	t.Run("should surface the constraint violation when the advisory check loses the race", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)

		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(activeRequest, nil)
		f.responses.EXPECT().HasResponse(gomock.Any(), "req-1", "user-b").Return(false, nil)
		f.responses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrDuplicateResponse)

		_, err := f.svc.Respond(context.Background(), donorOrigin(), services.RespondCommand{RequestID: "req-1"})

		req.ErrorIs(err, apperrors.ErrDuplicateResponse)
	})
}

func TestRequestService_SelectDonor(t *testing.T) {
	t.Run("should delegate to the gateway transaction and broadcast fulfilment globally", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)
		origin := requesterOrigin()
		donation := domain.Donation{ID: "don-1", RequestID: "req-1", DonorID: "user-b", Status: domain.DonationScheduled}

		f.requests.EXPECT().
			SelectDonor(gomock.Any(), origin.Identity.UserID, "req-1", "user-b").
			Return(donation, nil)
		f.registry.EXPECT().
			BroadcastExcept(gomock.Any(), "", event.RequestStatusUpdated{
				RequestID: "req-1",
				Status:    domain.RequestFulfilled,
				UpdatedBy: origin.Identity.UserID,
			})

		got, err := f.svc.SelectDonor(context.Background(), origin, "req-1", "user-b")

		req.NoError(err)
		req.Equal(donation, got)
	})

	t.Run("should not broadcast when the transaction fails", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)

		f.requests.EXPECT().
			SelectDonor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.Donation{}, apperrors.ErrInvalidState)
		f.registry.EXPECT().BroadcastExcept(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.SelectDonor(context.Background(), requesterOrigin(), "req-1", "user-c")

		req.ErrorIs(err, apperrors.ErrInvalidState)
	})
}

func TestRequestService_UpdateStatus(t *testing.T) {
	owned := domain.BloodRequest{ID: "req-1", RequesterID: "user-a", Status: domain.RequestActive}

	t.Run("should apply an owned transition and broadcast the new status", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)
		origin := requesterOrigin()

		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(owned, nil)
		f.requests.EXPECT().UpdateStatus(gomock.Any(), "req-1", domain.RequestCancelled).Return(nil)
		f.registry.EXPECT().
			BroadcastExcept(gomock.Any(), "", event.RequestStatusUpdated{
				RequestID: "req-1",
				Status:    domain.RequestCancelled,
				UpdatedBy: origin.Identity.UserID,
			})

		err := f.svc.UpdateStatus(context.Background(), origin, "req-1", domain.RequestCancelled)

		req.NoError(err)
	})

	t.Run("should refuse a caller who does not own the request", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)

		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(owned, nil)
		f.requests.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := f.svc.UpdateStatus(context.Background(), donorOrigin(), "req-1", domain.RequestCancelled)

		req.ErrorIs(err, apperrors.ErrUnauthorized)
	})

	t.Run("should refuse transitions out of a terminal state", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)
		terminal := owned
		terminal.Status = domain.RequestFulfilled

		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(terminal, nil)

		err := f.svc.UpdateStatus(context.Background(), requesterOrigin(), "req-1", domain.RequestCancelled)

		req.ErrorIs(err, apperrors.ErrInvalidTransition)
	})
}

func TestRequestService_ListResponses(t *testing.T) {
	owned := domain.BloodRequest{ID: "req-1", RequesterID: "user-a", Status: domain.RequestActive}

	t.Run("should return responses to the requester", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)
		responses := []domain.DonorResponse{{ID: "resp-1", DonorID: "user-b"}}

		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(owned, nil)
		f.responses.EXPECT().ListByRequest(gomock.Any(), "req-1").Return(responses, nil)

		got, err := f.svc.ListResponses(context.Background(), requesterOrigin(), "req-1")

		req.NoError(err)
		req.Equal(responses, got)
	})

	t.Run("should refuse anyone but the requester", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)

		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(owned, nil)
		f.responses.EXPECT().ListByRequest(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.ListResponses(context.Background(), donorOrigin(), "req-1")

		req.ErrorIs(err, apperrors.ErrUnauthorized)
	})
}

func TestRequestService_UpdateLocation(t *testing.T) {
	t.Run("should persist and echo to the caller's private room", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)
		origin := donorOrigin()
		loc := domain.Location{Latitude: 45.76, Longitude: 4.83}

		f.users.EXPECT().UpdateLocation(gomock.Any(), origin.Identity.UserID, loc).Return(nil)
		f.registry.EXPECT().
			EmitToRoom(gomock.Any(), domain.UserRoom(origin.Identity.UserID), gomock.AssignableToTypeOf(event.LocationUpdated{}))

		err := f.svc.UpdateLocation(context.Background(), origin, loc)

		req.NoError(err)
	})

	t.Run("should map a vanished account to unknown identity", func(t *testing.T) {
		req := require.New(t)
		f := newRequestFixture(t)

		f.users.EXPECT().UpdateLocation(gomock.Any(), gomock.Any(), gomock.Any()).Return(apperrors.ErrNotFound)

		err := f.svc.UpdateLocation(context.Background(), donorOrigin(), domain.Location{})

		req.ErrorIs(err, apperrors.ErrUnknownIdentity)
	})
}
