package model

import (
	"time"

	"github.com/google/uuid"
)

// StickerModel is the GORM-specific struct for the 'stickers' table.
// DeletedAt is a plain column, not gorm.DeletedAt: deactivated stickers must
// stay readable so a repeated deactivation can return the stored snapshot.
type StickerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StickerNo string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status    string    `gorm:"type:varchar(20);not null"`
	PolicyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	StockID   uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive  bool      `gorm:"not null;default:true"`
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StickerModel) TableName() string {
	return "stickers"
}
