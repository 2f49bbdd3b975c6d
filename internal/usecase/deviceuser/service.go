package deviceuser

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainDeviceUser "github.com/PratikPaudel/nwcs-inventory/internal/domain/deviceuser"
	"github.com/PratikPaudel/nwcs-inventory/internal/logger"
	appErrors "github.com/PratikPaudel/nwcs-inventory/pkg/errors"
	"github.com/PratikPaudel/nwcs-inventory/pkg/utils"
)

const defaultEmploymentType = "Full-Time"

// Service implements the device user use cases
type Service struct {
	deviceUserRepo domainDeviceUser.Repository
}

// NewService creates a new device user service
func NewService(deviceUserRepo domainDeviceUser.Repository) *Service {
	return &Service{deviceUserRepo: deviceUserRepo}
}

// Create registers a device user. The department arrives by name and must
// already exist; the employment type defaults to Full-Time.
func (s *Service) Create(ctx context.Context, req *CreateDeviceUserRequest) (*DeviceUserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	dept, err := s.deviceUserRepo.GetDepartmentByName(ctx, req.DepartmentName)
	if err != nil {
		return nil, err
	}

	typeName := defaultEmploymentType
	if req.EmploymentType != nil && *req.EmploymentType != "" {
		typeName = *req.EmploymentType
	}
	empType, err := s.resolveEmploymentType(ctx, typeName)
	if err != nil {
		return nil, err
	}

	u := &domainDeviceUser.DeviceUser{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		DepartmentID:     dept.ID,
		EmploymentTypeID: empType.ID,
	}

	if err := s.deviceUserRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	u.Department = dept
	u.EmploymentType = empType

	logger.Info("Device user created",
		zap.String("device_user_id", u.ID.String()),
		zap.String("department", dept.DepartmentName),
		zap.String("event", "device_user_created"),
	)

	return ToDeviceUserResponse(u), nil
}

// GetByID returns a single device user with department and employment type
func (s *Service) GetByID(ctx context.Context, deviceUserID uuid.UUID) (*DeviceUserResponse, error) {
	u, err := s.deviceUserRepo.GetByID(ctx, deviceUserID)
	if err != nil {
		return nil, err
	}

	return ToDeviceUserResponse(u), nil
}

// List returns a filtered, paginated page of device users
func (s *Service) List(ctx context.Context, req *DeviceUserFilterRequest) (*DeviceUserListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	users, total, err := s.deviceUserRepo.List(ctx, &domainDeviceUser.Filter{
		DepartmentID:     req.DepartmentID,
		EmploymentTypeID: req.EmploymentTypeID,
		Search:           req.Search,
		Page:             req.Page,
		PageSize:         req.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list device users: %w", err)
	}

	responses := make([]DeviceUserResponse, len(users))
	for i, u := range users {
		responses[i] = *ToDeviceUserResponse(u)
	}

	return &DeviceUserListResponse{
		DeviceUsers: responses,
		Total:       total,
		Page:        req.Page,
		PageSize:    req.PageSize,
	}, nil
}

// Search runs the user search read model: case-insensitive substring match
// over name and email, with department name and open device count per hit.
func (s *Service) Search(ctx context.Context, query string) ([]UserSearchResponse, error) {
	results, err := s.deviceUserRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search device users: %w", err)
	}

	responses := make([]UserSearchResponse, len(results))
	for i, r := range results {
		responses[i] = ToUserSearchResponse(r)
	}

	return responses, nil
}

// ListDepartments returns the department reference data
func (s *Service) ListDepartments(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.deviceUserRepo.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		responses[i] = DepartmentResponse{
			ID:                  d.ID,
			DepartmentName:      d.DepartmentName,
			DepartmentShortName: d.DepartmentShortName,
		}
	}

	return responses, nil
}

// ListEmploymentTypes returns the employment type reference data
func (s *Service) ListEmploymentTypes(ctx context.Context) ([]EmploymentTypeResponse, error) {
	types, err := s.deviceUserRepo.ListEmploymentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employment types: %w", err)
	}

	responses := make([]EmploymentTypeResponse, len(types))
	for i, t := range types {
		responses[i] = EmploymentTypeResponse{
			ID:                 t.ID,
			EmploymentTypeName: t.EmploymentTypeName,
		}
	}

	return responses, nil
}

func (s *Service) resolveEmploymentType(ctx context.Context, name string) (*domainDeviceUser.EmploymentType, error) {
	types, err := s.deviceUserRepo.ListEmploymentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employment types: %w", err)
	}

	for _, t := range types {
		if strings.EqualFold(t.EmploymentTypeName, name) {
			return t, nil
		}
	}

	return nil, domainDeviceUser.ErrEmploymentTypeNotFound
}
