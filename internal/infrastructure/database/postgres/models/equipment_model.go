package models

import (
	"time"

	"github.com/google/uuid"
)

// EquipmentModel represents the database model for the equipment registry
type EquipmentModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AssetTag          string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	SerialNumber      *string    `gorm:"type:varchar(255)"`
	DeviceName        string     `gorm:"type:varchar(255);not null"`
	Status            string     `gorm:"type:varchar(50);not null;default:'Available';index"`
	Manufacturer      *string    `gorm:"type:varchar(100);index"`
	Model             *string    `gorm:"type:varchar(100)"`
	FormFactor        *string    `gorm:"type:varchar(50);index"`
	RAM               *string    `gorm:"type:varchar(50)"`
	StorageCapacity   *string    `gorm:"type:varchar(50)"`
	StorageType       *string    `gorm:"type:varchar(50)"`
	OperatingSystem   *string    `gorm:"type:varchar(100)"`
	LocationID        *uuid.UUID `gorm:"type:uuid;index"`
	Notes             *string    `gorm:"type:text"`
	WarrantyStartDate *time.Time `gorm:"type:date"`
	WarrantyEndDate   *time.Time `gorm:"type:date"`
	CreatedAt         time.Time  `gorm:"not null;index"`
	UpdatedAt         time.Time  `gorm:"not null"`

	Location *LocationModel `gorm:"foreignKey:LocationID"`
}

func (EquipmentModel) TableName() string {
	return "equipment"
}
