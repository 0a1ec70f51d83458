// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// BodyType is a read-only reference catalog row describing a vehicle body
// shape. The catalog is curated externally; this service only lists the
// active rows.
type BodyType struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}
