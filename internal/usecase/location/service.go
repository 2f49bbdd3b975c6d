package location

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainLocation "github.com/PratikPaudel/nwcs-inventory/internal/domain/location"
)

// Service serves the location and building reference data
type Service struct {
	locationRepo domainLocation.Repository
}

// NewService creates a new location service
func NewService(locationRepo domainLocation.Repository) *Service {
	return &Service{locationRepo: locationRepo}
}

// ListLocations returns every location with its building
func (s *Service) ListLocations(ctx context.Context) ([]LocationResponse, error) {
	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	responses := make([]LocationResponse, len(locations))
	for i, l := range locations {
		responses[i] = ToLocationResponse(l)
	}

	return responses, nil
}

// GetLocationByID returns a single location with its building
func (s *Service) GetLocationByID(ctx context.Context, locationID uuid.UUID) (*LocationResponse, error) {
	l, err := s.locationRepo.GetLocationByID(ctx, locationID)
	if err != nil {
		return nil, err
	}

	resp := ToLocationResponse(l)
	return &resp, nil
}

// ListBuildings returns every building with its locations
func (s *Service) ListBuildings(ctx context.Context) ([]BuildingResponse, error) {
	buildings, err := s.locationRepo.ListBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	responses := make([]BuildingResponse, len(buildings))
	for i, b := range buildings {
		responses[i] = ToBuildingResponse(b)
	}

	return responses, nil
}

// GetBuildingByID returns a single building with its locations
func (s *Service) GetBuildingByID(ctx context.Context, buildingID uuid.UUID) (*BuildingResponse, error) {
	b, err := s.locationRepo.GetBuildingByID(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	resp := ToBuildingResponse(b)
	return &resp, nil
}
