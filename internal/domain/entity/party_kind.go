// Package entity contains the core business objects of the project.
package entity

// PartyKind identifies which of the two party tables a reference points at.
// Lookups keyed by one kind must never fall back to the other.
type PartyKind string

const (
	// PartyKindClient indicates the party is a client.
	PartyKindClient PartyKind = "client"
	// PartyKindCustomer indicates the party is a customer.
	PartyKindCustomer PartyKind = "customer"
)

// String returns the string representation of the PartyKind.
func (k PartyKind) String() string {
	return string(k)
}

// IsValid checks if the PartyKind is a valid value.
func (k PartyKind) IsValid() bool {
	switch k {
	case PartyKindClient, PartyKindCustomer:
		return true
	default:
		return false
	}
}
