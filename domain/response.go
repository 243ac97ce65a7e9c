package domain

import "time"

type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "pending"
	ResponseAccepted ResponseStatus = "accepted"
	ResponseRejected ResponseStatus = "rejected"
)

// DonorResponse records one donor's offer against one request. At most one
// row may ever exist per (request, donor) pair; the storage layer's unique
// constraint is the final arbiter. Responses become immutable once the
// parent request leaves the active state.
type DonorResponse struct {
	ID           string
	RequestID    string
	DonorID      string
	Message      string
	Availability time.Time
	Status       ResponseStatus
	CreatedAt    time.Time
}
