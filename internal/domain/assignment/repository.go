package assignment

import (
	"context"

	"github.com/google/uuid"

	"github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	"github.com/PratikPaudel/nwcs-inventory/internal/domain/history"
)

// Repository defines the interface for assignment ledger operations.
//
// CreateWithTransition and EndWithTransition apply the ledger mutation, the
// equipment status mutation and the history append as one unit of work. The
// equipment status write is conditional: if the unit left the assignable
// states between the caller's check and the write, the whole transition fails
// with ErrAssignmentConflict and nothing is committed.
type Repository interface {
	CreateWithTransition(ctx context.Context, a *Assignment, record *history.Record) error
	EndWithTransition(ctx context.Context, a *Assignment, newStatus equipment.Status, record *history.Record) error

	GetByID(ctx context.Context, assignmentID uuid.UUID) (*Assignment, error)
	GetByEquipmentID(ctx context.Context, equipmentID uuid.UUID) (*Assignment, error)
	Update(ctx context.Context, a *Assignment) error
	List(ctx context.Context, filter *Filter) ([]*Detail, int64, error)
}

// Filter represents filtering options for listing assignments
type Filter struct {
	DeviceUserID *uuid.UUID
	DepartmentID *uuid.UUID
	Status       *equipment.Status

	Page     int
	PageSize int
}
