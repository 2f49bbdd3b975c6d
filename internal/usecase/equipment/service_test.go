package equipment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainEquipment "github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	domainHistory "github.com/PratikPaudel/nwcs-inventory/internal/domain/history"
	appErrors "github.com/PratikPaudel/nwcs-inventory/pkg/errors"
)

type fakeEquipmentRepo struct {
	items map[uuid.UUID]*domainEquipment.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: make(map[uuid.UUID]*domainEquipment.Equipment)}
}

func (r *fakeEquipmentRepo) Create(ctx context.Context, e *domainEquipment.Equipment) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	e.UpdatedAt = time.Now()
	r.items[e.ID] = e
	return nil
}

func (r *fakeEquipmentRepo) GetByID(ctx context.Context, equipmentID uuid.UUID) (*domainEquipment.Equipment, error) {
	e, ok := r.items[equipmentID]
	if !ok {
		return nil, domainEquipment.ErrEquipmentNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEquipmentRepo) Update(ctx context.Context, e *domainEquipment.Equipment) error {
	if _, ok := r.items[e.ID]; !ok {
		return domainEquipment.ErrEquipmentNotFound
	}
	e.UpdatedAt = time.Now()
	r.items[e.ID] = e
	return nil
}

func (r *fakeEquipmentRepo) Delete(ctx context.Context, equipmentID uuid.UUID) error {
	if _, ok := r.items[equipmentID]; !ok {
		return domainEquipment.ErrEquipmentNotFound
	}
	delete(r.items, equipmentID)
	return nil
}

func (r *fakeEquipmentRepo) List(ctx context.Context, filter *domainEquipment.Filter) ([]*domainEquipment.Equipment, int64, error) {
	var out []*domainEquipment.Equipment
	for _, e := range r.items {
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEquipmentRepo) ListAll(ctx context.Context) ([]*domainEquipment.Equipment, error) {
	out, _, _ := r.List(ctx, nil)
	return out, nil
}

func (r *fakeEquipmentRepo) CountByManufacturer(ctx context.Context) ([]domainEquipment.Distribution, error) {
	return nil, nil
}

func (r *fakeEquipmentRepo) CountByFormFactor(ctx context.Context) ([]domainEquipment.Distribution, error) {
	return nil, nil
}

type fakeHistoryRepo struct {
	records []*domainHistory.Record
}

func (r *fakeHistoryRepo) ListByEquipmentID(ctx context.Context, equipmentID uuid.UUID) ([]*domainHistory.Record, error) {
	var out []*domainHistory.Record
	for _, record := range r.records {
		if record.EquipmentID == equipmentID {
			out = append(out, record)
		}
	}
	return out, nil
}

func TestCreateEquipmentDefaultsToAvailable(t *testing.T) {
	repo := newFakeEquipmentRepo()
	svc := NewService(repo, &fakeHistoryRepo{})

	resp, err := svc.Create(context.Background(), &CreateEquipmentRequest{
		AssetTag:   "NWCS-0100",
		DeviceName: "ThinkPad T14",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domainEquipment.StatusAvailable), resp.Status)
}

func TestCreateEquipmentRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newFakeEquipmentRepo(), &fakeHistoryRepo{})

	status := "Broken"
	_, err := svc.Create(context.Background(), &CreateEquipmentRequest{
		AssetTag:   "NWCS-0101",
		DeviceName: "ThinkPad T14",
		Status:     &status,
	})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestUpdateEquipmentPatchesOnlyGivenFields(t *testing.T) {
	repo := newFakeEquipmentRepo()
	svc := NewService(repo, &fakeHistoryRepo{})

	manufacturer := "Lenovo"
	created, err := svc.Create(context.Background(), &CreateEquipmentRequest{
		AssetTag:     "NWCS-0102",
		DeviceName:   "ThinkPad T14",
		Manufacturer: &manufacturer,
	})
	require.NoError(t, err)

	notes := "Screen replaced 2026-08"
	updated, err := svc.Update(context.Background(), created.ID, &UpdateEquipmentRequest{
		Notes: &notes,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
	require.NotNil(t, updated.Manufacturer)
	assert.Equal(t, manufacturer, *updated.Manufacturer)
	assert.Equal(t, created.AssetTag, updated.AssetTag)
}

func TestUpdateEquipmentNotFound(t *testing.T) {
	svc := NewService(newFakeEquipmentRepo(), &fakeHistoryRepo{})

	_, err := svc.Update(context.Background(), uuid.New(), &UpdateEquipmentRequest{})
	require.ErrorIs(t, err, domainEquipment.ErrEquipmentNotFound)
}

func TestGetHistoryRequiresEquipment(t *testing.T) {
	svc := NewService(newFakeEquipmentRepo(), &fakeHistoryRepo{})

	_, err := svc.GetHistory(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainEquipment.ErrEquipmentNotFound)
}

func TestGetHistoryEmptyForFreshUnit(t *testing.T) {
	repo := newFakeEquipmentRepo()
	svc := NewService(repo, &fakeHistoryRepo{})

	created, err := svc.Create(context.Background(), &CreateEquipmentRequest{
		AssetTag:   "NWCS-0103",
		DeviceName: "ThinkPad T14",
	})
	require.NoError(t, err)

	records, err := svc.GetHistory(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGetHistoryReturnsRecords(t *testing.T) {
	repo := newFakeEquipmentRepo()
	historyRepo := &fakeHistoryRepo{}
	svc := NewService(repo, historyRepo)

	created, err := svc.Create(context.Background(), &CreateEquipmentRequest{
		AssetTag:   "NWCS-0105",
		DeviceName: "ThinkPad T14",
	})
	require.NoError(t, err)

	actor := uuid.New()
	historyRepo.records = append(historyRepo.records, &domainHistory.Record{
		ID:                  uuid.New(),
		EquipmentID:         created.ID,
		Status:              domainEquipment.StatusInUse,
		AssignmentStartDate: time.Now(),
		ChangeDate:          time.Now(),
		ChangeMadeBy:        actor,
	})

	records, err := svc.GetHistory(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, string(domainEquipment.StatusInUse), records[0].Status)
	assert.Equal(t, actor, records[0].ChangeMadeBy)
}

func TestSearchInventoryRowShape(t *testing.T) {
	repo := newFakeEquipmentRepo()
	svc := NewService(repo, &fakeHistoryRepo{})

	serial := "SN-778899"
	formFactor := "Laptop"
	_, err := svc.Create(context.Background(), &CreateEquipmentRequest{
		AssetTag:     "NWCS-0104",
		SerialNumber: &serial,
		DeviceName:   "MacBook Pro 14",
		FormFactor:   &formFactor,
	})
	require.NoError(t, err)

	rows, err := svc.SearchInventory(context.Background(), "0104")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "NWCS-0104", row.AssetTag)
	require.NotNil(t, row.SerialNumber)
	assert.Equal(t, serial, *row.SerialNumber)
	assert.Equal(t, "MacBook Pro 14", row.DeviceName)
	assert.Equal(t, string(domainEquipment.StatusAvailable), row.Status)
}
