package equipment

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for equipment registry operations
type Repository interface {
	Create(ctx context.Context, e *Equipment) error
	GetByID(ctx context.Context, equipmentID uuid.UUID) (*Equipment, error)
	Update(ctx context.Context, e *Equipment) error
	Delete(ctx context.Context, equipmentID uuid.UUID) error
	List(ctx context.Context, filter *Filter) ([]*Equipment, int64, error)

	// ListAll returns the full registry without pagination, used by the
	// dashboard's in-memory lookup-table joins.
	ListAll(ctx context.Context) ([]*Equipment, error)

	CountByManufacturer(ctx context.Context) ([]Distribution, error)
	CountByFormFactor(ctx context.Context) ([]Distribution, error)
}

// Filter represents filtering options for listing equipment
type Filter struct {
	Status     *Status
	LocationID *uuid.UUID
	FormFactor *string

	// Case-insensitive substring match over asset_tag, serial_number
	// and device_name. Empty means no filtering.
	Search string

	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
