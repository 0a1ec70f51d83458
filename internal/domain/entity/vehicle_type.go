// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// VehicleType is a read-only reference catalog row describing a vehicle
// classification, distinct from BodyType but with the same contract.
type VehicleType struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}
