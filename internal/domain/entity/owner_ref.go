// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// OwnerRef is a tagged reference to the party that owns a vehicle. Exactly one
// party owns a vehicle at a time; representing the reference as kind + id makes
// the "both set" and "neither set" states unrepresentable in the domain layer.
type OwnerRef struct {
	Kind PartyKind `json:"kind"` // Which party table the ID points at.
	ID   uuid.UUID `json:"id"`   // The owning party's identifier.
}

// ClientOwner builds an OwnerRef pointing at a client.
func ClientOwner(id uuid.UUID) OwnerRef {
	return OwnerRef{Kind: PartyKindClient, ID: id}
}

// CustomerOwner builds an OwnerRef pointing at a customer.
func CustomerOwner(id uuid.UUID) OwnerRef {
	return OwnerRef{Kind: PartyKindCustomer, ID: id}
}
