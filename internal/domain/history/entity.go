package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
)

// Record is one entry in the equipment history log: the status an equipment
// unit transitioned to, who it involved and who made the change. Records are
// append-only; they are never updated or deleted once written.
type Record struct {
	ID uuid.UUID

	EquipmentID  uuid.UUID
	DeviceUserID *uuid.UUID
	LocationID   *uuid.UUID

	Status equipment.Status

	AssignmentStartDate time.Time
	AssignmentEndDate   *time.Time

	ChangeDate   time.Time
	ChangeMadeBy uuid.UUID
}
