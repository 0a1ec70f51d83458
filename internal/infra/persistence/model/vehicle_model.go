package model

import (
	"time"

	"github.com/google/uuid"
)

// VehicleModel is the GORM-specific struct for the 'vehicles' table.
// Exactly one of ClientID/CustomerID is set per row, enforced by a table-level
// CHECK constraint; the mapper in the postgres package folds the pair into the
// domain's tagged OwnerRef.
type VehicleModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RegistrationNo string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Make           string     `gorm:"type:varchar(100);not null"`
	Model          string     `gorm:"type:varchar(100);not null"`
	BodyTypeID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	VehicleTypeID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientID       *uuid.UUID `gorm:"type:uuid;index"`
	CustomerID     *uuid.UUID `gorm:"type:uuid;index"`
	IsActive       bool       `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}
