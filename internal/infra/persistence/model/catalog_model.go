// Package model contains the GORM-specific structs mapping domain entities to
// PostgreSQL tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// BodyTypeModel is the GORM-specific struct for the 'body_types' table.
// Reference data: rows are provisioned externally and read-only here.
type BodyTypeModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name     string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	IsActive bool      `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (BodyTypeModel) TableName() string {
	return "body_types"
}

// VehicleTypeModel is the GORM-specific struct for the 'vehicle_types' table.
type VehicleTypeModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name     string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	IsActive bool      `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleTypeModel) TableName() string {
	return "vehicle_types"
}

// StickerStockModel is the GORM-specific struct for the 'sticker_stock' table.
type StickerStockModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IssuedAt  time.Time `gorm:"not null"`
	ValidFrom time.Time `gorm:"not null"`
	ValidTo   time.Time `gorm:"not null"`
	IsActive  bool      `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (StickerStockModel) TableName() string {
	return "sticker_stock"
}
