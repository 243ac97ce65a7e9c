package httpapi

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bloodlink/auth"
	"bloodlink/domain"
	apperrors "bloodlink/errors"
	"bloodlink/mocks"
)

type apiFixture struct {
	requests *mocks.MockIRequestService
	mux      *http.ServeMux
	token    string
}

func newAPIFixture(t *testing.T) apiFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	codec := auth.NewCodec("test-secret")
	token, err := codec.Generate("u1", domain.RoleRecipient, time.Hour)
	require.NoError(t, err)

	users := mocks.NewMockIUserRepository(ctrl)
	users.EXPECT().GetByID(gomock.Any(), "u1").Return(domain.User{
		ID:   "u1",
		Name: "Alice",
		Role: domain.RoleRecipient,
	}, nil).AnyTimes()

	requests := mocks.NewMockIRequestService(ctrl)
	server := NewServer(slog.New(slog.DiscardHandler), auth.NewResolver(codec, users), requests)

	mux := http.NewServeMux()
	server.Register(mux)

	return apiFixture{requests: requests, mux: mux, token: token}
}

func (f apiFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+f.token)
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func TestServer_CreateRequest(t *testing.T) {
	t.Run("should create a request for an authenticated caller", func(t *testing.T) {
		req := require.New(t)
		f := newAPIFixture(t)

		f.requests.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.BloodRequest{ID: "r1", Status: domain.RequestActive}, nil)

		rec := f.do(http.MethodPost, "/api/requests", `{
			"patientName": "John Doe",
			"bloodType": "O+",
			"unitsNeeded": 2,
			"hospital": "Central Hospital",
			"urgency": "high",
			"location": {"latitude": 48.85, "longitude": 2.35}
		}`)

		req.Equal(http.StatusCreated, rec.Code)
		req.JSONEq(`{"requestId": "r1", "status": "active"}`, rec.Body.String())
	})

	t.Run("should reject a caller without a credential", func(t *testing.T) {
		req := require.New(t)
		f := newAPIFixture(t)

		r := httptest.NewRequest(http.MethodPost, "/api/requests", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, r)

		req.Equal(http.StatusUnauthorized, rec.Code)
	})

	t.Run("should translate validation failures to 400", func(t *testing.T) {
		req := require.New(t)
		f := newAPIFixture(t)

		f.requests.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.BloodRequest{}, apperrors.ErrValidation)

		rec := f.do(http.MethodPost, "/api/requests", `{"patientName": ""}`)

		req.Equal(http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Respond(t *testing.T) {
	t.Run("should forward the path id to the service", func(t *testing.T) {
		req := require.New(t)
		f := newAPIFixture(t)

		f.requests.EXPECT().
			Respond(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.DonorResponse{ID: "resp1", Status: domain.ResponsePending}, nil)

		rec := f.do(http.MethodPost, "/api/requests/r1/respond", `{"message": "on my way"}`)

		req.Equal(http.StatusCreated, rec.Code)
		req.JSONEq(`{"responseId": "resp1", "status": "pending"}`, rec.Body.String())
	})

	t.Run("should translate a duplicate response to 409", func(t *testing.T) {
		req := require.New(t)
		f := newAPIFixture(t)

		f.requests.EXPECT().
			Respond(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.DonorResponse{}, apperrors.ErrDuplicateResponse)

		rec := f.do(http.MethodPost, "/api/requests/r1/respond", `{"message": "again"}`)

		req.Equal(http.StatusConflict, rec.Code)
	})
}

func TestServer_SelectDonor(t *testing.T) {
	t.Run("should require a donor id", func(t *testing.T) {
		req := require.New(t)
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/requests/r1/select-donor", `{}`)

		req.Equal(http.StatusBadRequest, rec.Code)
	})

	t.Run("should translate forbidden selections to 403", func(t *testing.T) {
		req := require.New(t)
		f := newAPIFixture(t)

		f.requests.EXPECT().
			SelectDonor(gomock.Any(), gomock.Any(), "r1", "d1").
			Return(domain.Donation{}, apperrors.ErrUnauthorized)

		rec := f.do(http.MethodPost, "/api/requests/r1/select-donor", `{"donorId": "d1"}`)

		req.Equal(http.StatusForbidden, rec.Code)
	})
}

func TestServer_UpdateStatus(t *testing.T) {
	t.Run("should translate an illegal transition to 409", func(t *testing.T) {
		req := require.New(t)
		f := newAPIFixture(t)

		f.requests.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), "r1", domain.RequestCancelled).
			Return(apperrors.ErrInvalidTransition)

		rec := f.do(http.MethodPatch, "/api/requests/r1/status", `{"status": "cancelled"}`)

		req.Equal(http.StatusConflict, rec.Code)
	})
}

func TestServer_ListRequests(t *testing.T) {
	req := require.New(t)
	f := newAPIFixture(t)

	f.requests.EXPECT().
		ListActive(gomock.Any()).
		Return([]domain.BloodRequest{{ID: "r1"}, {ID: "r2"}}, nil)

	rec := f.do(http.MethodGet, "/api/requests", "")

	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"r1"`)
	req.Contains(rec.Body.String(), `"r2"`)
}
