// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Policy is an insurance policy attached to one vehicle. Party is denormalized
// from the vehicle's owner for query convenience and must always agree with it;
// provisioning upstream is responsible for keeping the two in step.
type Policy struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier of the policy.
	PolicyNo  string    `json:"policy_no"`  // The issuer-assigned policy number.
	ValidFrom time.Time `json:"valid_from"` // Start of the coverage window.
	ValidTo   time.Time `json:"valid_to"`   // End of the coverage window.
	Status    string    `json:"status"`     // Issuer status tag, treated opaquely here.
	VehicleID uuid.UUID `json:"vehicle_id"` // The covered vehicle.
	Party     OwnerRef  `json:"party"`      // The policy holder; mirrors the vehicle's owner.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
