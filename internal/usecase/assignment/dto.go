package assignment

import (
	"time"

	"github.com/google/uuid"

	domainAssignment "github.com/PratikPaudel/nwcs-inventory/internal/domain/assignment"
	domainEquipment "github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
)

const dateLayout = "2006-01-02"

type CreateAssignmentRequest struct {
	EquipmentID         uuid.UUID `json:"equipment_id" validate:"required"`
	DeviceUserID        uuid.UUID `json:"device_user_id" validate:"required"`
	AssignmentPurpose   *string   `json:"assignment_purpose" validate:"omitempty,max=500"`
	AssignmentStartDate string    `json:"assignment_start_date" validate:"required"`
}

// UpdateAssignmentRequest is a field-level patch of the ledger row. It never
// touches equipment status or history; only Create and End are lifecycle
// transitions.
type UpdateAssignmentRequest struct {
	DeviceUserID        *uuid.UUID `json:"device_user_id"`
	AssignmentPurpose   *string    `json:"assignment_purpose" validate:"omitempty,max=500"`
	AssignmentStartDate *string    `json:"assignment_start_date"`
}

type AssignmentFilterRequest struct {
	DeviceUserID *uuid.UUID `form:"device_user_id"`
	DepartmentID *uuid.UUID `form:"department_id"`
	Status       *string    `form:"status"`
	Page         int        `form:"page" validate:"omitempty,min=1"`
	PageSize     int        `form:"page_size" validate:"omitempty,min=1,max=100"`
}

type AssignmentResponse struct {
	ID                  uuid.UUID `json:"assignment_id"`
	EquipmentID         uuid.UUID `json:"equipment_id"`
	DeviceUserID        uuid.UUID `json:"device_user_id"`
	AssignmentPurpose   *string   `json:"assignment_purpose"`
	AssignmentStartDate string    `json:"assignment_start_date"`
	CreatedAt           time.Time `json:"created_at"`
}

type EquipmentSummary struct {
	ID           uuid.UUID `json:"equipment_id"`
	AssetTag     string    `json:"asset_tag"`
	DeviceName   string    `json:"device_name"`
	Status       string    `json:"status"`
	Manufacturer *string   `json:"manufacturer"`
	Model        *string   `json:"model"`
}

type DepartmentSummary struct {
	ID             uuid.UUID `json:"department_id"`
	DepartmentName string    `json:"department_name"`
}

type DeviceUserSummary struct {
	ID         uuid.UUID          `json:"device_user_id"`
	FirstName  string             `json:"first_name"`
	LastName   string             `json:"last_name"`
	Email      string             `json:"email"`
	Department *DepartmentSummary `json:"department,omitempty"`
}

type AssignmentDetailResponse struct {
	AssignmentResponse
	Equipment  *EquipmentSummary  `json:"equipment,omitempty"`
	DeviceUser *DeviceUserSummary `json:"device_user,omitempty"`
}

type AssignmentListResponse struct {
	Assignments []AssignmentDetailResponse `json:"assignments"`
	Total       int64                      `json:"total"`
	Page        int                        `json:"page"`
	PageSize    int                        `json:"page_size"`
}

func ToAssignmentResponse(a *domainAssignment.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:                  a.ID,
		EquipmentID:         a.EquipmentID,
		DeviceUserID:        a.DeviceUserID,
		AssignmentPurpose:   a.AssignmentPurpose,
		AssignmentStartDate: a.AssignmentStartDate.Format(dateLayout),
		CreatedAt:           a.CreatedAt,
	}
}

func ToAssignmentDetailResponse(d *domainAssignment.Detail) AssignmentDetailResponse {
	resp := AssignmentDetailResponse{
		AssignmentResponse: *ToAssignmentResponse(&d.Assignment),
	}

	if d.Equipment != nil {
		resp.Equipment = &EquipmentSummary{
			ID:           d.Equipment.ID,
			AssetTag:     d.Equipment.AssetTag,
			DeviceName:   d.Equipment.DeviceName,
			Status:       string(d.Equipment.Status),
			Manufacturer: d.Equipment.Manufacturer,
			Model:        d.Equipment.Model,
		}
	}

	if d.DeviceUser != nil {
		resp.DeviceUser = &DeviceUserSummary{
			ID:        d.DeviceUser.ID,
			FirstName: d.DeviceUser.FirstName,
			LastName:  d.DeviceUser.LastName,
			Email:     d.DeviceUser.Email,
		}
		if d.DeviceUser.Department != nil {
			resp.DeviceUser.Department = &DepartmentSummary{
				ID:             d.DeviceUser.Department.ID,
				DepartmentName: d.DeviceUser.Department.DepartmentName,
			}
		}
	}

	return resp
}

func toDomainFilter(req *AssignmentFilterRequest) *domainAssignment.Filter {
	filter := &domainAssignment.Filter{
		DeviceUserID: req.DeviceUserID,
		DepartmentID: req.DepartmentID,
		Page:         req.Page,
		PageSize:     req.PageSize,
	}
	if req.Status != nil && *req.Status != "" {
		status := domainEquipment.Status(*req.Status)
		filter.Status = &status
	}

	return filter
}
