// Package domain contains core concepts of the donation coordination system.
// No runtime, network, or persistence logic should be added here.
package domain

import "time"

type Role string

const (
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
	RoleBoth      Role = "both"
)

// User is owned by the identity/persistence layer. The coordination core
// reads it for display names and notification targets and never mutates
// role or credentials.
type User struct {
	ID        string
	Name      string
	Role      Role
	BloodType string
	Verified  bool
	Location  *Location
	UpdatedAt time.Time
}

type Location struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// CanDonate reports whether the role allows responding to requests.
func (r Role) CanDonate() bool {
	return r == RoleDonor || r == RoleBoth
}
