package models

import (
	"github.com/google/uuid"
)

// LocationModel represents the database model for locations
type LocationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BuildingID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FloorNumber int       `gorm:"type:integer;not null"`
	RoomNumber  string    `gorm:"type:varchar(50);not null"`
	Description *string   `gorm:"type:text"`

	Building *BuildingModel `gorm:"foreignKey:BuildingID"`
}

func (LocationModel) TableName() string {
	return "locations"
}

// BuildingModel represents the database model for buildings
type BuildingModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BuildingName      string    `gorm:"type:varchar(255);not null"`
	BuildingShortName string    `gorm:"type:varchar(50);not null;uniqueIndex"`

	Locations []LocationModel `gorm:"foreignKey:BuildingID"`
}

func (BuildingModel) TableName() string {
	return "buildings"
}
