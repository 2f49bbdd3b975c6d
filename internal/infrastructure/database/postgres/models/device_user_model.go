package models

import (
	"github.com/google/uuid"
)

// DeviceUserModel represents the database model for device users
type DeviceUserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName        string    `gorm:"type:varchar(100);not null"`
	LastName         string    `gorm:"type:varchar(100);not null"`
	Email            string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	DepartmentID     uuid.UUID `gorm:"type:uuid;not null;index"`
	EmploymentTypeID uuid.UUID `gorm:"type:uuid;not null"`

	Department     *DepartmentModel     `gorm:"foreignKey:DepartmentID"`
	EmploymentType *EmploymentTypeModel `gorm:"foreignKey:EmploymentTypeID"`
}

func (DeviceUserModel) TableName() string {
	return "device_users"
}

// DepartmentModel represents the database model for departments
type DepartmentModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DepartmentName      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	DepartmentShortName string    `gorm:"type:varchar(50);not null"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}

// EmploymentTypeModel represents the database model for employment types
type EmploymentTypeModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EmploymentTypeName string    `gorm:"type:varchar(100);not null;uniqueIndex"`
}

func (EmploymentTypeModel) TableName() string {
	return "employment_types"
}
