package location

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for location and building reference data
type Repository interface {
	ListLocations(ctx context.Context) ([]*Location, error)
	GetLocationByID(ctx context.Context, locationID uuid.UUID) (*Location, error)

	ListBuildings(ctx context.Context) ([]*Building, error)
	GetBuildingByID(ctx context.Context, buildingID uuid.UUID) (*Building, error)
}
