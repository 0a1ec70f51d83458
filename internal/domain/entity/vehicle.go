// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle represents an insured vehicle owned by exactly one party.
// BodyTypeID and VehicleTypeID referenced active catalog rows at creation
// time; a catalog row going inactive later does not invalidate the vehicle.
// IsActive=false marks a logically removed vehicle; the row is never
// physically deleted.
type Vehicle struct {
	ID             uuid.UUID `json:"id"`              // The unique identifier of the vehicle.
	RegistrationNo string    `json:"registration_no"` // The plate or registration number.
	Make           string    `json:"make"`            // Manufacturer, e.g. "Toyota".
	Model          string    `json:"model"`           // Model name, e.g. "Hilux".
	BodyTypeID     uuid.UUID `json:"body_type_id"`    // Reference to the body type catalog.
	VehicleTypeID  uuid.UUID `json:"vehicle_type_id"` // Reference to the vehicle type catalog.
	Owner          OwnerRef  `json:"owner"`           // The party that owns this vehicle.
	IsActive       bool      `json:"is_active"`       // False when the vehicle has been soft-deleted.
	CreatedAt      time.Time `json:"created_at"`      // Timestamp of when this record was created.
	UpdatedAt      time.Time `json:"updated_at"`      // Timestamp of the last modification.
}
