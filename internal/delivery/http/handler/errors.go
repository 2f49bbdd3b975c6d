package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainAssignment "github.com/PratikPaudel/nwcs-inventory/internal/domain/assignment"
	domainDeviceUser "github.com/PratikPaudel/nwcs-inventory/internal/domain/deviceuser"
	domainEquipment "github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	domainLocation "github.com/PratikPaudel/nwcs-inventory/internal/domain/location"
	domainUser "github.com/PratikPaudel/nwcs-inventory/internal/domain/user"
	appErrors "github.com/PratikPaudel/nwcs-inventory/pkg/errors"
	"github.com/PratikPaudel/nwcs-inventory/pkg/utils"
)

// respondError maps a service error to an HTTP status: missing rows are 404,
// rejected transitions and bad input are 400, write conflicts are 409 and
// everything else is a 500 with the detail kept out of the response.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainEquipment.ErrEquipmentNotFound),
		errors.Is(err, domainAssignment.ErrAssignmentNotFound),
		errors.Is(err, domainDeviceUser.ErrDeviceUserNotFound),
		errors.Is(err, domainDeviceUser.ErrDepartmentNotFound),
		errors.Is(err, domainDeviceUser.ErrEmploymentTypeNotFound),
		errors.Is(err, domainLocation.ErrLocationNotFound),
		errors.Is(err, domainLocation.ErrBuildingNotFound),
		errors.Is(err, domainUser.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return

	case errors.Is(err, domainAssignment.ErrAssignmentConflict),
		errors.Is(err, domainEquipment.ErrEquipmentAlreadyExists),
		errors.Is(err, domainEquipment.ErrEquipmentInUse),
		errors.Is(err, domainDeviceUser.ErrDeviceUserExists),
		errors.Is(err, domainUser.ErrUserAlreadyExists):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
		return
	}

	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "INVALID_CREDENTIALS":
			utils.ErrorResponse(c, http.StatusUnauthorized, appErr.Message)
		case "ACCOUNT_DISABLED":
			utils.ErrorResponse(c, http.StatusForbidden, appErr.Message)
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		}
		return
	}

	utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}
