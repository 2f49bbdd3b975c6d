package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainEquipment "github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	domainLocation "github.com/PratikPaudel/nwcs-inventory/internal/domain/location"
)

type fakeEquipmentRepo struct {
	items         []*domainEquipment.Equipment
	manufacturers []domainEquipment.Distribution
	formFactors   []domainEquipment.Distribution
}

func (r *fakeEquipmentRepo) Create(ctx context.Context, e *domainEquipment.Equipment) error {
	return nil
}

func (r *fakeEquipmentRepo) GetByID(ctx context.Context, equipmentID uuid.UUID) (*domainEquipment.Equipment, error) {
	return nil, domainEquipment.ErrEquipmentNotFound
}

func (r *fakeEquipmentRepo) Update(ctx context.Context, e *domainEquipment.Equipment) error {
	return nil
}

func (r *fakeEquipmentRepo) Delete(ctx context.Context, equipmentID uuid.UUID) error { return nil }

func (r *fakeEquipmentRepo) List(ctx context.Context, filter *domainEquipment.Filter) ([]*domainEquipment.Equipment, int64, error) {
	return nil, 0, nil
}

func (r *fakeEquipmentRepo) ListAll(ctx context.Context) ([]*domainEquipment.Equipment, error) {
	return r.items, nil
}

func (r *fakeEquipmentRepo) CountByManufacturer(ctx context.Context) ([]domainEquipment.Distribution, error) {
	return r.manufacturers, nil
}

func (r *fakeEquipmentRepo) CountByFormFactor(ctx context.Context) ([]domainEquipment.Distribution, error) {
	return r.formFactors, nil
}

type fakeLocationRepo struct {
	locations []*domainLocation.Location
}

func (r *fakeLocationRepo) ListLocations(ctx context.Context) ([]*domainLocation.Location, error) {
	return r.locations, nil
}

func (r *fakeLocationRepo) GetLocationByID(ctx context.Context, locationID uuid.UUID) (*domainLocation.Location, error) {
	return nil, domainLocation.ErrLocationNotFound
}

func (r *fakeLocationRepo) ListBuildings(ctx context.Context) ([]*domainLocation.Building, error) {
	return nil, nil
}

func (r *fakeLocationRepo) GetBuildingByID(ctx context.Context, buildingID uuid.UUID) (*domainLocation.Building, error) {
	return nil, domainLocation.ErrBuildingNotFound
}

func unit(locationID *uuid.UUID, status domainEquipment.Status, manufacturer, formFactor string) *domainEquipment.Equipment {
	return &domainEquipment.Equipment{
		ID:           uuid.New(),
		AssetTag:     "NWCS-" + uuid.NewString()[:8],
		DeviceName:   "unit",
		Status:       status,
		Manufacturer: &manufacturer,
		FormFactor:   &formFactor,
		LocationID:   locationID,
	}
}

func TestDevicesByBuilding(t *testing.T) {
	mainBuilding := &domainLocation.Building{ID: uuid.New(), BuildingName: "Main Office"}
	warehouse := &domainLocation.Building{ID: uuid.New(), BuildingName: "Warehouse"}

	mainRoom := &domainLocation.Location{ID: uuid.New(), BuildingID: mainBuilding.ID, RoomNumber: "101", Building: mainBuilding}
	mainLab := &domainLocation.Location{ID: uuid.New(), BuildingID: mainBuilding.ID, RoomNumber: "210", Building: mainBuilding}
	dock := &domainLocation.Location{ID: uuid.New(), BuildingID: warehouse.ID, RoomNumber: "D1", Building: warehouse}

	equipmentRepo := &fakeEquipmentRepo{
		items: []*domainEquipment.Equipment{
			unit(&mainRoom.ID, domainEquipment.StatusInUse, "Dell", "Laptop"),
			unit(&mainLab.ID, domainEquipment.StatusAvailable, "Dell", "Laptop"),
			unit(&mainRoom.ID, domainEquipment.StatusInUse, "Apple", "Laptop"),
			unit(&dock.ID, domainEquipment.StatusInStorage, "Lenovo", "Desktop"),
			unit(nil, domainEquipment.StatusRetired, "HP", "Desktop"),
		},
	}
	locationRepo := &fakeLocationRepo{locations: []*domainLocation.Location{mainRoom, mainLab, dock}}

	svc := NewService(equipmentRepo, locationRepo)

	resp, err := svc.DevicesByBuilding(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "devices_by_building", resp.Type)
	require.Len(t, resp.Data, 3)

	// Largest bucket first; ties break alphabetically.
	assert.Equal(t, domainEquipment.Distribution{Name: "Main Office", Value: 3}, resp.Data[0])
	assert.Equal(t, domainEquipment.Distribution{Name: "Unassigned", Value: 1}, resp.Data[1])
	assert.Equal(t, domainEquipment.Distribution{Name: "Warehouse", Value: 1}, resp.Data[2])
}

func TestDevicesByBuildingEmptyRegistry(t *testing.T) {
	svc := NewService(&fakeEquipmentRepo{}, &fakeLocationRepo{})

	resp, err := svc.DevicesByBuilding(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
}

func TestDevicesByManufacturer(t *testing.T) {
	equipmentRepo := &fakeEquipmentRepo{
		manufacturers: []domainEquipment.Distribution{
			{Name: "Dell", Value: 12},
			{Name: "Apple", Value: 4},
		},
	}

	svc := NewService(equipmentRepo, &fakeLocationRepo{})

	resp, err := svc.DevicesByManufacturer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "devices_by_manufacturer", resp.Type)
	assert.Equal(t, equipmentRepo.manufacturers, resp.Data)
}

func TestGenerateReport(t *testing.T) {
	laptopID := uuid.New()
	equipmentRepo := &fakeEquipmentRepo{
		items: []*domainEquipment.Equipment{
			unit(&laptopID, domainEquipment.StatusInUse, "Dell", "Laptop"),
			unit(nil, domainEquipment.StatusAvailable, "Dell", "Laptop"),
			unit(nil, domainEquipment.StatusAvailable, "Lenovo", "Desktop"),
		},
	}

	svc := NewService(equipmentRepo, &fakeLocationRepo{})

	status := "Available"
	formFactor := "Laptop"
	resp, err := svc.GenerateReport(context.Background(), &GenerateReportRequest{
		Status:     &status,
		FormFactor: &formFactor,
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Available", resp.Rows[0].Status)

	// No filters reports the whole registry.
	resp, err = svc.GenerateReport(context.Background(), &GenerateReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
}
