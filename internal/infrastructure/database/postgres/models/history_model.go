package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryModel represents the database model for the append-only history log
type HistoryModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EquipmentID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeviceUserID        *uuid.UUID `gorm:"type:uuid"`
	LocationID          *uuid.UUID `gorm:"type:uuid"`
	Status              string     `gorm:"type:varchar(50);not null"`
	AssignmentStartDate time.Time  `gorm:"type:date;not null"`
	AssignmentEndDate   *time.Time `gorm:"type:date"`
	ChangeDate          time.Time  `gorm:"not null;index"`
	ChangeMadeBy        uuid.UUID  `gorm:"type:uuid;not null"`

	Equipment *EquipmentModel `gorm:"foreignKey:EquipmentID"`
}

func (HistoryModel) TableName() string {
	return "equipment_history"
}
