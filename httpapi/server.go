// Package httpapi mirrors the coordination operations for non-socket
// clients. Semantics are identical to the socket surface; handlers stay
// thin and delegate everything to the services.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bloodlink/auth"
	"bloodlink/domain"
	apperrors "bloodlink/errors"
	"bloodlink/services"
)

type Server struct {
	log      *slog.Logger
	resolver auth.Resolver
	requests services.IRequestService
}

func NewServer(log *slog.Logger, resolver auth.Resolver, requests services.IRequestService) *Server {
	return &Server{log: log, resolver: resolver, requests: requests}
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/requests", s.withAuth(s.createRequest))
	mux.HandleFunc("GET /api/requests", s.withAuth(s.listRequests))
	mux.HandleFunc("POST /api/requests/{id}/respond", s.withAuth(s.respond))
	mux.HandleFunc("GET /api/requests/{id}/responses", s.withAuth(s.listResponses))
	mux.HandleFunc("POST /api/requests/{id}/select-donor", s.withAuth(s.selectDonor))
	mux.HandleFunc("PATCH /api/requests/{id}/status", s.withAuth(s.updateStatus))
}

type authedHandler func(w http.ResponseWriter, r *http.Request, identity auth.Identity)

// withAuth validates the bearer header and resolves it to an identity
// before the handler runs. HTTP callers carry no connection id, so their
// broadcasts reach every live session.
func (s *Server) withAuth(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		credential := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		identity, err := s.resolver.Authenticate(r.Context(), credential)
		if err != nil {
			s.writeError(w, err)
			return
		}
		next(w, r, identity)
	}
}

type createRequestBody struct {
	PatientName     string          `json:"patientName"`
	BloodType       string          `json:"bloodType"`
	UnitsNeeded     int             `json:"unitsNeeded"`
	Hospital        string          `json:"hospital"`
	Urgency         domain.Urgency  `json:"urgency"`
	Location        domain.Location `json:"location"`
	AdditionalNotes string          `json:"additionalNotes"`
	Emergency       bool            `json:"emergency"`
}

func (s *Server) createRequest(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	var body createRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, apperrors.ErrValidation)
		return
	}

	req, err := s.requests.Create(r.Context(), services.Origin{Identity: identity}, services.CreateRequestCommand{
		PatientName:     body.PatientName,
		BloodType:       body.BloodType,
		UnitsNeeded:     body.UnitsNeeded,
		Hospital:        body.Hospital,
		Urgency:         body.Urgency,
		Location:        body.Location,
		AdditionalNotes: body.AdditionalNotes,
		Emergency:       body.Emergency,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]any{"requestId": req.ID, "status": req.Status})
}

func (s *Server) listRequests(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	requests, err := s.requests.ListActive(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, requests)
}

type respondBody struct {
	Message      string    `json:"message"`
	Availability time.Time `json:"availability"`
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	var body respondBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, apperrors.ErrValidation)
		return
	}

	resp, err := s.requests.Respond(r.Context(), services.Origin{Identity: identity}, services.RespondCommand{
		RequestID:    r.PathValue("id"),
		Message:      body.Message,
		Availability: body.Availability,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]any{"responseId": resp.ID, "status": resp.Status})
}

func (s *Server) listResponses(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	responses, err := s.requests.ListResponses(r.Context(), services.Origin{Identity: identity}, r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, responses)
}

type selectDonorBody struct {
	DonorID string `json:"donorId"`
}

func (s *Server) selectDonor(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	var body selectDonorBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.DonorID == "" {
		s.writeError(w, apperrors.ErrValidation)
		return
	}

	donation, err := s.requests.SelectDonor(r.Context(), services.Origin{Identity: identity}, r.PathValue("id"), body.DonorID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"donationId": donation.ID, "status": donation.Status})
}

type updateStatusBody struct {
	Status domain.RequestStatus `json:"status"`
}

func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	var body updateStatusBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, apperrors.ErrValidation)
		return
	}

	if err := s.requests.UpdateStatus(r.Context(), services.Origin{Identity: identity}, r.PathValue("id"), body.Status); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"requestId": r.PathValue("id"), "status": body.Status})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrMissingCredential),
		errors.Is(err, apperrors.ErrInvalidCredential),
		errors.Is(err, apperrors.ErrExpiredCredential),
		errors.Is(err, apperrors.ErrUnknownIdentity):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicateResponse),
		errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrInvalidDonor),
		errors.Is(err, apperrors.ErrInvalidTransition):
		status = http.StatusConflict
	default:
		s.log.Error("Unhandled error", "error", err)
	}
	s.writeJSON(w, status, map[string]string{"message": err.Error()})
}
