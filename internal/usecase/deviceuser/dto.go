package deviceuser

import (
	"github.com/google/uuid"

	domainDeviceUser "github.com/PratikPaudel/nwcs-inventory/internal/domain/deviceuser"
)

type CreateDeviceUserRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`

	// Department is resolved by name, the way the intake form submits it.
	DepartmentName string `json:"department_name" validate:"required"`

	// EmploymentType defaults to Full-Time when left out.
	EmploymentType *string `json:"employment_type"`
}

type DeviceUserFilterRequest struct {
	DepartmentID     *uuid.UUID `form:"department_id"`
	EmploymentTypeID *uuid.UUID `form:"employment_type_id"`
	Search           string     `form:"search"`
	Page             int        `form:"page" validate:"omitempty,min=1"`
	PageSize         int        `form:"page_size" validate:"omitempty,min=1,max=100"`
}

type DeviceUserResponse struct {
	ID             uuid.UUID `json:"device_user_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Department     *string   `json:"department"`
	EmploymentType *string   `json:"employment_type"`
}

type DeviceUserListResponse struct {
	DeviceUsers []DeviceUserResponse `json:"device_users"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// UserSearchResponse is one row of the user search read model.
type UserSearchResponse struct {
	ID          uuid.UUID `json:"device_user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Department  string    `json:"department"`
	DeviceCount int       `json:"device_count"`
}

type DepartmentResponse struct {
	ID                  uuid.UUID `json:"department_id"`
	DepartmentName      string    `json:"department_name"`
	DepartmentShortName string    `json:"department_short_name"`
}

type EmploymentTypeResponse struct {
	ID                 uuid.UUID `json:"employment_type_id"`
	EmploymentTypeName string    `json:"employment_type_name"`
}

func ToDeviceUserResponse(u *domainDeviceUser.DeviceUser) *DeviceUserResponse {
	resp := &DeviceUserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
	if u.Department != nil {
		resp.Department = &u.Department.DepartmentName
	}
	if u.EmploymentType != nil {
		resp.EmploymentType = &u.EmploymentType.EmploymentTypeName
	}

	return resp
}

func ToUserSearchResponse(r *domainDeviceUser.SearchResult) UserSearchResponse {
	return UserSearchResponse{
		ID:          r.DeviceUser.ID,
		FirstName:   r.DeviceUser.FirstName,
		LastName:    r.DeviceUser.LastName,
		Email:       r.DeviceUser.Email,
		Department:  r.Department,
		DeviceCount: r.DeviceCount,
	}
}
