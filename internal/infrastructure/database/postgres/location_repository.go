package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PratikPaudel/nwcs-inventory/internal/domain/location"
	"github.com/PratikPaudel/nwcs-inventory/internal/infrastructure/database/postgres/models"
)

type LocationRepository struct {
	db *DB
}

func NewLocationRepository(db *DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) ListLocations(ctx context.Context) ([]*location.Location, error) {
	var dbModels []models.LocationModel
	err := r.db.DB.WithContext(ctx).
		Preload("Building").
		Order("floor_number ASC, room_number ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	locations := make([]*location.Location, len(dbModels))
	for i := range dbModels {
		locations[i] = toLocationEntity(&dbModels[i])
	}

	return locations, nil
}

func (r *LocationRepository) GetLocationByID(ctx context.Context, locationID uuid.UUID) (*location.Location, error) {
	var dbModel models.LocationModel
	err := r.db.DB.WithContext(ctx).
		Preload("Building").
		Where("id = ?", locationID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, location.ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return toLocationEntity(&dbModel), nil
}

func (r *LocationRepository) ListBuildings(ctx context.Context) ([]*location.Building, error) {
	var dbModels []models.BuildingModel
	err := r.db.DB.WithContext(ctx).
		Order("building_name ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	buildings := make([]*location.Building, len(dbModels))
	for i := range dbModels {
		buildings[i] = toBuildingEntity(&dbModels[i])
	}

	return buildings, nil
}

func (r *LocationRepository) GetBuildingByID(ctx context.Context, buildingID uuid.UUID) (*location.Building, error) {
	var dbModel models.BuildingModel
	err := r.db.DB.WithContext(ctx).
		Preload("Locations").
		Where("id = ?", buildingID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, location.ErrBuildingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get building: %w", err)
	}

	return toBuildingEntity(&dbModel), nil
}

func toLocationEntity(m *models.LocationModel) *location.Location {
	l := &location.Location{
		ID:          m.ID,
		BuildingID:  m.BuildingID,
		FloorNumber: m.FloorNumber,
		RoomNumber:  m.RoomNumber,
		Description: m.Description,
	}
	if m.Building != nil {
		l.Building = &location.Building{
			ID:                m.Building.ID,
			BuildingName:      m.Building.BuildingName,
			BuildingShortName: m.Building.BuildingShortName,
		}
	}

	return l
}

func toBuildingEntity(m *models.BuildingModel) *location.Building {
	b := &location.Building{
		ID:                m.ID,
		BuildingName:      m.BuildingName,
		BuildingShortName: m.BuildingShortName,
	}
	for i := range m.Locations {
		b.Locations = append(b.Locations, *toLocationEntity(&m.Locations[i]))
	}

	return b
}
