package deviceuser

import (
	"github.com/google/uuid"
)

// DeviceUser represents an employee who can have equipment assigned to them.
// Distinct from portal users: device users do not log in.
type DeviceUser struct {
	ID uuid.UUID

	FirstName string
	LastName  string
	Email     string

	DepartmentID     uuid.UUID
	EmploymentTypeID uuid.UUID

	Department     *Department
	EmploymentType *EmploymentType
}

// Department is reference data grouping device users.
type Department struct {
	ID                  uuid.UUID
	DepartmentName      string
	DepartmentShortName string
}

// EmploymentType is reference data (full-time, contractor, ...).
type EmploymentType struct {
	ID                 uuid.UUID
	EmploymentTypeName string
}

// SearchResult is the read model for the user search endpoint: the device
// user with their department name and open device count.
type SearchResult struct {
	DeviceUser  *DeviceUser
	Department  string
	DeviceCount int
}
