package domain

import "time"

type RequestStatus string

const (
	RequestActive    RequestStatus = "active"
	RequestFulfilled RequestStatus = "fulfilled"
	RequestCancelled RequestStatus = "cancelled"
	RequestExpired   RequestStatus = "expired"
)

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// Rank returns the dispatch priority of an urgency level, lower is more
// urgent. Unknown levels sort last.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 0
	case UrgencyHigh:
		return 1
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 3
	default:
		return 4
	}
}

func (u Urgency) Valid() bool {
	return u.Rank() < 4
}

// BloodRequest is the aggregate the coordination engine runs its state
// machine on. One requester owns exactly one lifecycle per request.
type BloodRequest struct {
	ID              string
	RequesterID     string
	PatientName     string
	BloodType       string
	UnitsNeeded     int
	Hospital        string
	Urgency         Urgency
	Location        Location
	AdditionalNotes string
	Status          RequestStatus
	Emergency       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Terminal reports whether no transition may leave the status.
func (s RequestStatus) Terminal() bool {
	return s == RequestFulfilled || s == RequestCancelled || s == RequestExpired
}

// CanTransition encodes the request state machine: active is the only
// non-terminal state and may move to any terminal one. The engine only
// accepts explicit transition requests, it never runs a timer.
func CanTransition(from, to RequestStatus) bool {
	return from == RequestActive && to.Terminal()
}
