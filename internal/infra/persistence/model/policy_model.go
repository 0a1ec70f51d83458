package model

import (
	"time"

	"github.com/google/uuid"
)

// PolicyModel is the GORM-specific struct for the 'policies' table.
// The party pair is denormalized from the vehicle's owner; provisioning keeps
// the two in agreement.
type PolicyModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PolicyNo   string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	ValidFrom  time.Time  `gorm:"not null"`
	ValidTo    time.Time  `gorm:"not null"`
	Status     string     `gorm:"type:varchar(30);not null"`
	VehicleID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientID   *uuid.UUID `gorm:"type:uuid;index"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PolicyModel) TableName() string {
	return "policies"
}
