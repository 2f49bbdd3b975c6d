package assignment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainAssignment "github.com/PratikPaudel/nwcs-inventory/internal/domain/assignment"
	domainDeviceUser "github.com/PratikPaudel/nwcs-inventory/internal/domain/deviceuser"
	domainEquipment "github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	domainHistory "github.com/PratikPaudel/nwcs-inventory/internal/domain/history"
	appErrors "github.com/PratikPaudel/nwcs-inventory/pkg/errors"
)

// fakeStore backs the fake repositories with a single locked state so the
// transition fakes can reproduce the conditional-write semantics of the real
// repository: the assignability check and the writes happen under one lock.
type fakeStore struct {
	mu sync.Mutex

	equipment   map[uuid.UUID]*domainEquipment.Equipment
	assignments map[uuid.UUID]*domainAssignment.Assignment
	byEquipment map[uuid.UUID]uuid.UUID
	history     []*domainHistory.Record
	deviceUsers map[uuid.UUID]*domainDeviceUser.DeviceUser
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		equipment:   make(map[uuid.UUID]*domainEquipment.Equipment),
		assignments: make(map[uuid.UUID]*domainAssignment.Assignment),
		byEquipment: make(map[uuid.UUID]uuid.UUID),
		deviceUsers: make(map[uuid.UUID]*domainDeviceUser.DeviceUser),
	}
}

type fakeEquipmentRepo struct{ store *fakeStore }

func (r *fakeEquipmentRepo) Create(ctx context.Context, e *domainEquipment.Equipment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.equipment[e.ID] = e
	return nil
}

func (r *fakeEquipmentRepo) GetByID(ctx context.Context, equipmentID uuid.UUID) (*domainEquipment.Equipment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.equipment[equipmentID]
	if !ok {
		return nil, domainEquipment.ErrEquipmentNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEquipmentRepo) Update(ctx context.Context, e *domainEquipment.Equipment) error {
	return nil
}

func (r *fakeEquipmentRepo) Delete(ctx context.Context, equipmentID uuid.UUID) error { return nil }

func (r *fakeEquipmentRepo) List(ctx context.Context, filter *domainEquipment.Filter) ([]*domainEquipment.Equipment, int64, error) {
	return nil, 0, nil
}

func (r *fakeEquipmentRepo) ListAll(ctx context.Context) ([]*domainEquipment.Equipment, error) {
	return nil, nil
}

func (r *fakeEquipmentRepo) CountByManufacturer(ctx context.Context) ([]domainEquipment.Distribution, error) {
	return nil, nil
}

func (r *fakeEquipmentRepo) CountByFormFactor(ctx context.Context) ([]domainEquipment.Distribution, error) {
	return nil, nil
}

type fakeDeviceUserRepo struct{ store *fakeStore }

func (r *fakeDeviceUserRepo) Create(ctx context.Context, u *domainDeviceUser.DeviceUser) error {
	return nil
}

func (r *fakeDeviceUserRepo) GetByID(ctx context.Context, deviceUserID uuid.UUID) (*domainDeviceUser.DeviceUser, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.deviceUsers[deviceUserID]
	if !ok {
		return nil, domainDeviceUser.ErrDeviceUserNotFound
	}
	return u, nil
}

func (r *fakeDeviceUserRepo) List(ctx context.Context, filter *domainDeviceUser.Filter) ([]*domainDeviceUser.DeviceUser, int64, error) {
	return nil, 0, nil
}

func (r *fakeDeviceUserRepo) Search(ctx context.Context, query string) ([]*domainDeviceUser.SearchResult, error) {
	return nil, nil
}

func (r *fakeDeviceUserRepo) GetDepartmentByName(ctx context.Context, name string) (*domainDeviceUser.Department, error) {
	return nil, domainDeviceUser.ErrDepartmentNotFound
}

func (r *fakeDeviceUserRepo) ListDepartments(ctx context.Context) ([]*domainDeviceUser.Department, error) {
	return nil, nil
}

func (r *fakeDeviceUserRepo) ListEmploymentTypes(ctx context.Context) ([]*domainDeviceUser.EmploymentType, error) {
	return nil, nil
}

type fakeAssignmentRepo struct{ store *fakeStore }

func (r *fakeAssignmentRepo) CreateWithTransition(ctx context.Context, a *domainAssignment.Assignment, record *domainHistory.Record) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.equipment[a.EquipmentID]
	if !ok || !e.Status.IsAssignable() {
		return domainAssignment.ErrAssignmentConflict
	}
	if _, open := r.store.byEquipment[a.EquipmentID]; open {
		return domainAssignment.ErrAssignmentConflict
	}

	e.Status = domainEquipment.StatusInUse
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	r.store.assignments[a.ID] = a
	r.store.byEquipment[a.EquipmentID] = a.ID

	record.ID = uuid.New()
	copied := *record
	r.store.history = append(r.store.history, &copied)
	return nil
}

func (r *fakeAssignmentRepo) EndWithTransition(ctx context.Context, a *domainAssignment.Assignment, newStatus domainEquipment.Status, record *domainHistory.Record) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.assignments[a.ID]; !ok {
		return domainAssignment.ErrAssignmentNotFound
	}

	if e, ok := r.store.equipment[a.EquipmentID]; ok {
		e.Status = newStatus
	}

	record.ID = uuid.New()
	copied := *record
	r.store.history = append(r.store.history, &copied)

	delete(r.store.assignments, a.ID)
	delete(r.store.byEquipment, a.EquipmentID)
	return nil
}

func (r *fakeAssignmentRepo) GetByID(ctx context.Context, assignmentID uuid.UUID) (*domainAssignment.Assignment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a, ok := r.store.assignments[assignmentID]
	if !ok {
		return nil, domainAssignment.ErrAssignmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAssignmentRepo) GetByEquipmentID(ctx context.Context, equipmentID uuid.UUID) (*domainAssignment.Assignment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	id, ok := r.store.byEquipment[equipmentID]
	if !ok {
		return nil, domainAssignment.ErrAssignmentNotFound
	}
	copied := *r.store.assignments[id]
	return &copied, nil
}

func (r *fakeAssignmentRepo) Update(ctx context.Context, a *domainAssignment.Assignment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.assignments[a.ID]; !ok {
		return domainAssignment.ErrAssignmentNotFound
	}
	r.store.assignments[a.ID] = a
	return nil
}

func (r *fakeAssignmentRepo) List(ctx context.Context, filter *domainAssignment.Filter) ([]*domainAssignment.Detail, int64, error) {
	return nil, 0, nil
}

func newTestService(store *fakeStore) *Service {
	return NewService(
		&fakeAssignmentRepo{store: store},
		&fakeEquipmentRepo{store: store},
		&fakeDeviceUserRepo{store: store},
	)
}

func seedEquipment(store *fakeStore, status domainEquipment.Status) uuid.UUID {
	id := uuid.New()
	store.equipment[id] = &domainEquipment.Equipment{
		ID:         id,
		AssetTag:   "NWCS-0042",
		DeviceName: "Latitude 5440",
		Status:     status,
	}
	return id
}

func seedDeviceUser(store *fakeStore) uuid.UUID {
	id := uuid.New()
	store.deviceUsers[id] = &domainDeviceUser.DeviceUser{
		ID:        id,
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana.reyes@example.com",
	}
	return id
}

func TestCreateAssignment(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	equipmentID := seedEquipment(store, domainEquipment.StatusAvailable)
	deviceUserID := seedDeviceUser(store)
	actor := uuid.New()

	resp, err := svc.Create(context.Background(), actor, &CreateAssignmentRequest{
		EquipmentID:         equipmentID,
		DeviceUserID:        deviceUserID,
		AssignmentStartDate: "2026-08-01",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, equipmentID, resp.EquipmentID)
	assert.Equal(t, "2026-08-01", resp.AssignmentStartDate)

	assert.Equal(t, domainEquipment.StatusInUse, store.equipment[equipmentID].Status)
	assert.Len(t, store.assignments, 1)

	require.Len(t, store.history, 1)
	record := store.history[0]
	assert.Equal(t, domainEquipment.StatusInUse, record.Status)
	assert.Equal(t, actor, record.ChangeMadeBy)
	require.NotNil(t, record.DeviceUserID)
	assert.Equal(t, deviceUserID, *record.DeviceUserID)
	assert.Nil(t, record.AssignmentEndDate)
}

func TestCreateAssignmentFromStorage(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	equipmentID := seedEquipment(store, domainEquipment.StatusInStorage)
	deviceUserID := seedDeviceUser(store)

	_, err := svc.Create(context.Background(), uuid.New(), &CreateAssignmentRequest{
		EquipmentID:         equipmentID,
		DeviceUserID:        deviceUserID,
		AssignmentStartDate: "2026-08-01",
	})
	require.NoError(t, err)
	assert.Equal(t, domainEquipment.StatusInUse, store.equipment[equipmentID].Status)
}

func TestCreateAssignmentNotAssignable(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	deviceUserID := seedDeviceUser(store)

	for _, status := range []domainEquipment.Status{
		domainEquipment.StatusInUse,
		domainEquipment.StatusUnderRepair,
		domainEquipment.StatusRetired,
	} {
		equipmentID := seedEquipment(store, status)

		_, err := svc.Create(context.Background(), uuid.New(), &CreateAssignmentRequest{
			EquipmentID:         equipmentID,
			DeviceUserID:        deviceUserID,
			AssignmentStartDate: "2026-08-01",
		})
		require.Error(t, err)

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "EQUIPMENT_NOT_ASSIGNABLE", appErr.Code)
		assert.Contains(t, appErr.Message, string(status))

		// Rejected transitions leave no trace.
		assert.Empty(t, store.assignments)
		assert.Empty(t, store.history)
		assert.Equal(t, status, store.equipment[equipmentID].Status)
	}
}

func TestCreateAssignmentEquipmentNotFound(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	deviceUserID := seedDeviceUser(store)

	_, err := svc.Create(context.Background(), uuid.New(), &CreateAssignmentRequest{
		EquipmentID:         uuid.New(),
		DeviceUserID:        deviceUserID,
		AssignmentStartDate: "2026-08-01",
	})
	require.ErrorIs(t, err, domainEquipment.ErrEquipmentNotFound)
	assert.Empty(t, store.assignments)
	assert.Empty(t, store.history)
}

func TestCreateAssignmentDeviceUserNotFound(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	equipmentID := seedEquipment(store, domainEquipment.StatusAvailable)

	_, err := svc.Create(context.Background(), uuid.New(), &CreateAssignmentRequest{
		EquipmentID:         equipmentID,
		DeviceUserID:        uuid.New(),
		AssignmentStartDate: "2026-08-01",
	})
	require.ErrorIs(t, err, domainDeviceUser.ErrDeviceUserNotFound)
	assert.Equal(t, domainEquipment.StatusAvailable, store.equipment[equipmentID].Status)
	assert.Empty(t, store.history)
}

func TestCreateAssignmentBadStartDate(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Create(context.Background(), uuid.New(), &CreateAssignmentRequest{
		EquipmentID:         seedEquipment(store, domainEquipment.StatusAvailable),
		DeviceUserID:        seedDeviceUser(store),
		AssignmentStartDate: "01/08/2026",
	})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestConcurrentCreateSingleWinner(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	equipmentID := seedEquipment(store, domainEquipment.StatusAvailable)
	userA := seedDeviceUser(store)
	userB := seedDeviceUser(store)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, deviceUserID := range []uuid.UUID{userA, userB} {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := svc.Create(context.Background(), uuid.New(), &CreateAssignmentRequest{
				EquipmentID:         equipmentID,
				DeviceUserID:        id,
				AssignmentStartDate: "2026-08-01",
			})
			errs <- err
		}(deviceUserID)
	}
	wg.Wait()
	close(errs)

	var failures int
	for err := range errs {
		if err != nil {
			failures++
			// The loser may fail the pre-check or the conditional write,
			// depending on interleaving.
			var appErr *appErrors.AppError
			isConflict := errors.Is(err, domainAssignment.ErrAssignmentConflict)
			isNotAssignable := errors.As(err, &appErr) && appErr.Code == "EQUIPMENT_NOT_ASSIGNABLE"
			assert.True(t, isConflict || isNotAssignable, "unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, failures)
	assert.Len(t, store.assignments, 1)
	assert.Len(t, store.history, 1)
	assert.Equal(t, domainEquipment.StatusInUse, store.equipment[equipmentID].Status)
}

func TestEndAssignment(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	equipmentID := seedEquipment(store, domainEquipment.StatusAvailable)
	deviceUserID := seedDeviceUser(store)
	actor := uuid.New()

	resp, err := svc.Create(context.Background(), actor, &CreateAssignmentRequest{
		EquipmentID:         equipmentID,
		DeviceUserID:        deviceUserID,
		AssignmentStartDate: "2026-08-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.End(context.Background(), actor, resp.ID, ""))

	// Status defaults to Available, the ledger row is gone and the closing
	// history record carries today's end date.
	assert.Equal(t, domainEquipment.StatusAvailable, store.equipment[equipmentID].Status)
	assert.Empty(t, store.assignments)

	require.Len(t, store.history, 2)
	closing := store.history[1]
	assert.Equal(t, domainEquipment.StatusAvailable, closing.Status)
	require.NotNil(t, closing.AssignmentEndDate)
	assert.WithinDuration(t, time.Now(), *closing.AssignmentEndDate, time.Minute)

	// Ending twice fails: the row no longer exists.
	err = svc.End(context.Background(), actor, resp.ID, "")
	require.ErrorIs(t, err, domainAssignment.ErrAssignmentNotFound)
	assert.Len(t, store.history, 2)
}

func TestEndAssignmentArbitraryStatus(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	equipmentID := seedEquipment(store, domainEquipment.StatusAvailable)
	deviceUserID := seedDeviceUser(store)

	resp, err := svc.Create(context.Background(), uuid.New(), &CreateAssignmentRequest{
		EquipmentID:         equipmentID,
		DeviceUserID:        deviceUserID,
		AssignmentStartDate: "2026-08-01",
	})
	require.NoError(t, err)

	// The new status is written through without an enum check.
	require.NoError(t, svc.End(context.Background(), uuid.New(), resp.ID, "Lost"))
	assert.Equal(t, domainEquipment.Status("Lost"), store.equipment[equipmentID].Status)
}

func TestUpdateAssignment(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	equipmentID := seedEquipment(store, domainEquipment.StatusAvailable)
	deviceUserID := seedDeviceUser(store)

	created, err := svc.Create(context.Background(), uuid.New(), &CreateAssignmentRequest{
		EquipmentID:         equipmentID,
		DeviceUserID:        deviceUserID,
		AssignmentStartDate: "2026-08-01",
	})
	require.NoError(t, err)

	purpose := "Field work laptop"
	updated, err := svc.Update(context.Background(), created.ID, &UpdateAssignmentRequest{
		AssignmentPurpose: &purpose,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.AssignmentPurpose)
	assert.Equal(t, purpose, *updated.AssignmentPurpose)

	// Updates never touch equipment status or history.
	assert.Equal(t, domainEquipment.StatusInUse, store.equipment[equipmentID].Status)
	assert.Len(t, store.history, 1)
}

func TestUpdateAssignmentEmptyPatch(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	equipmentID := seedEquipment(store, domainEquipment.StatusAvailable)
	deviceUserID := seedDeviceUser(store)

	created, err := svc.Create(context.Background(), uuid.New(), &CreateAssignmentRequest{
		EquipmentID:         equipmentID,
		DeviceUserID:        deviceUserID,
		AssignmentStartDate: "2026-08-01",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &UpdateAssignmentRequest{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.AssignmentStartDate, updated.AssignmentStartDate)
	assert.Len(t, store.history, 1)
}

func TestUpdateAssignmentNotFound(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Update(context.Background(), uuid.New(), &UpdateAssignmentRequest{})
	require.ErrorIs(t, err, domainAssignment.ErrAssignmentNotFound)
}
