// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StickerStock is an inventory batch that sticker serial numbers are drawn
// from. Stock is provisioned and curated externally; this service only reads
// the active batches.
type StickerStock struct {
	ID        uuid.UUID `json:"id"`
	IssuedAt  time.Time `json:"issued_at"`  // When the batch was released to issuance.
	ValidFrom time.Time `json:"valid_from"` // Start of the batch validity window.
	ValidTo   time.Time `json:"valid_to"`   // End of the batch validity window.
	IsActive  bool      `json:"is_active"`
}
