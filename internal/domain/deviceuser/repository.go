package deviceuser

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for device user operations
type Repository interface {
	Create(ctx context.Context, u *DeviceUser) error
	GetByID(ctx context.Context, deviceUserID uuid.UUID) (*DeviceUser, error)
	List(ctx context.Context, filter *Filter) ([]*DeviceUser, int64, error)
	Search(ctx context.Context, query string) ([]*SearchResult, error)

	GetDepartmentByName(ctx context.Context, name string) (*Department, error)
	ListDepartments(ctx context.Context) ([]*Department, error)
	ListEmploymentTypes(ctx context.Context) ([]*EmploymentType, error)
}

// Filter represents filtering options for listing device users
type Filter struct {
	DepartmentID     *uuid.UUID
	EmploymentTypeID *uuid.UUID

	// Case-insensitive substring match over first_name, last_name and email.
	Search string

	Page     int
	PageSize int
}
