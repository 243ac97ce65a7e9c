package domain

import "time"

type DonationStatus string

const (
	DonationScheduled DonationStatus = "scheduled"
	DonationCompleted DonationStatus = "completed"
	DonationMissed    DonationStatus = "missed"
)

// Donation is created exactly once, atomically with donor selection.
type Donation struct {
	ID        string
	RequestID string
	DonorID   string
	Status    DonationStatus
	CreatedAt time.Time
}
