// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StickerStatus is the closed tag set describing a sticker's issuance state.
// It is orthogonal to the sticker's soft-delete flag: a sticker can be revoked
// and still active, or deactivated while its status still reads issued.
type StickerStatus string

const (
	// StickerStatusIssued indicates the sticker has been printed and handed out.
	StickerStatusIssued StickerStatus = "ISSUED"
	// StickerStatusActive indicates the sticker is in force on a vehicle.
	StickerStatusActive StickerStatus = "ACTIVE"
	// StickerStatusExpired indicates the sticker's validity window has passed.
	StickerStatusExpired StickerStatus = "EXPIRED"
	// StickerStatusRevoked indicates the issuer withdrew the sticker.
	StickerStatusRevoked StickerStatus = "REVOKED"
)

// String returns the string representation of the StickerStatus.
func (s StickerStatus) String() string {
	return string(s)
}

// IsValid checks if the StickerStatus is a valid value.
func (s StickerStatus) IsValid() bool {
	switch s {
	case StickerStatusIssued, StickerStatusActive, StickerStatusExpired, StickerStatusRevoked:
		return true
	default:
		return false
	}
}

// Sticker is an issued insurance sticker tied to one policy. Soft delete is
// monotonic: once IsActive is false and DeletedAt is set, the record never
// returns to active through this service, and DeletedAt is never re-stamped.
type Sticker struct {
	ID        uuid.UUID     `json:"id"`         // The unique identifier of the sticker.
	StickerNo string        `json:"sticker_no"` // The physical serial printed on the sticker.
	Status    StickerStatus `json:"status"`     // Issuance status tag, independent of IsActive.
	PolicyID  uuid.UUID     `json:"policy_id"`  // The policy this sticker was issued under.
	StockID   uuid.UUID     `json:"stock_id"`   // The stock batch the serial was drawn from.
	IsActive  bool          `json:"is_active"`  // False once the sticker is deactivated.
	DeletedAt *time.Time    `json:"deleted_at"` // Set exactly once, at deactivation.
	CreatedAt time.Time     `json:"created_at"` // Immutable after creation.
	UpdatedAt time.Time     `json:"updated_at"` // Strictly increases on every mutation.
}
