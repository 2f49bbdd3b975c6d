package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainEquipment "github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	appErrors "github.com/PratikPaudel/nwcs-inventory/pkg/errors"
)

func TestValidateAssignable(t *testing.T) {
	assert.NoError(t, ValidateAssignable(domainEquipment.StatusAvailable))
	assert.NoError(t, ValidateAssignable(domainEquipment.StatusInStorage))
}

func TestValidateAssignableRejected(t *testing.T) {
	for _, status := range []domainEquipment.Status{
		domainEquipment.StatusInUse,
		domainEquipment.StatusUnderRepair,
		domainEquipment.StatusRetired,
		domainEquipment.Status("Lost"),
	} {
		err := ValidateAssignable(status)
		require.Error(t, err, "status %q should be rejected", status)

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "EQUIPMENT_NOT_ASSIGNABLE", appErr.Code)
		assert.Contains(t, appErr.Message, string(status))
	}
}
