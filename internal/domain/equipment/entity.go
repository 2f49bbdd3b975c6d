package equipment

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle status of an equipment unit
type Status string

const (
	StatusAvailable   Status = "Available"   // Ready to be assigned
	StatusInStorage   Status = "In Storage"  // Stored but still assignable
	StatusInUse       Status = "In Use"      // Currently assigned to a device user
	StatusUnderRepair Status = "Under Repair"
	StatusRetired     Status = "Retired"
)

// IsAssignable reports whether an assignment may be opened against this status.
func (s Status) IsAssignable() bool {
	return s == StatusAvailable || s == StatusInStorage
}

// Equipment represents a physical asset in the registry. The registry owns
// the Status field: it is the single source of truth for assignability.
type Equipment struct {
	ID uuid.UUID

	AssetTag     string
	SerialNumber *string
	DeviceName   string
	Status       Status

	Manufacturer    *string
	Model           *string
	FormFactor      *string
	RAM             *string
	StorageCapacity *string
	StorageType     *string
	OperatingSystem *string

	LocationID *uuid.UUID
	Notes      *string

	WarrantyStartDate *time.Time
	WarrantyEndDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Distribution represents an aggregate count by a single dimension
// (building, manufacturer, form factor).
type Distribution struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
