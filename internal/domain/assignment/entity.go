package assignment

import (
	"time"

	"github.com/google/uuid"

	"github.com/PratikPaudel/nwcs-inventory/internal/domain/deviceuser"
	"github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
)

// Assignment represents the current assignment of one equipment unit to one
// device user. The ledger holds only open assignments: at most one row per
// equipment unit, and ending an assignment deletes the row.
type Assignment struct {
	ID uuid.UUID

	EquipmentID  uuid.UUID
	DeviceUserID uuid.UUID

	AssignmentPurpose   *string
	AssignmentStartDate time.Time

	CreatedAt time.Time
}

// Detail is the read model for assignment listings: the ledger row joined
// with its equipment and device user records.
type Detail struct {
	Assignment
	Equipment  *equipment.Equipment
	DeviceUser *deviceuser.DeviceUser
}
