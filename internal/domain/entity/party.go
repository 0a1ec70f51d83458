// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Party is a vehicle owner: either a client or a customer. The two kinds live
// in distinct tables with the same shape, so a single entity carries both with
// the Kind discriminator preserved.
type Party struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier of the party.
	Kind      PartyKind `json:"kind"`       // Which party table this record came from.
	Name      string    `json:"name"`       // The party's display or legal name.
	Email     string    `json:"email"`      // Primary contact email.
	Phone     string    `json:"phone"`      // Primary contact phone number.
	Address   string    `json:"address"`    // Postal address.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
