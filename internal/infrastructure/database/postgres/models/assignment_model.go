package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentModel represents the database model for the assignment ledger.
// EquipmentID carries a unique index: the ledger holds at most one open
// assignment per equipment unit, enforced by the database rather than by a
// check-then-insert in the application.
type AssignmentModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EquipmentID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DeviceUserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignmentPurpose   *string   `gorm:"type:text"`
	AssignmentStartDate time.Time `gorm:"type:date;not null"`
	CreatedAt           time.Time `gorm:"not null"`

	Equipment  *EquipmentModel  `gorm:"foreignKey:EquipmentID"`
	DeviceUser *DeviceUserModel `gorm:"foreignKey:DeviceUserID"`
}

func (AssignmentModel) TableName() string {
	return "equipment_assignments"
}
