package assignment

import (
	"fmt"

	domainEquipment "github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	appErrors "github.com/PratikPaudel/nwcs-inventory/pkg/errors"
)

// State machine for equipment status as driven by the assignment lifecycle:
//
//	Available / In Storage --create--> In Use
//	In Use --end(new_status)--> new_status
//
// Only create is gated on the current status. The end transition accepts any
// caller-supplied target status and writes it through unchecked.

// ValidateAssignable checks that an assignment may be opened against the
// equipment's current status. The returned error carries the offending
// status so the caller can see why the unit was rejected.
func ValidateAssignable(current domainEquipment.Status) error {
	if !current.IsAssignable() {
		return appErrors.NewAppError(
			"EQUIPMENT_NOT_ASSIGNABLE",
			fmt.Sprintf("Equipment is not available (current status: %s)", current),
			nil,
		)
	}

	return nil
}
