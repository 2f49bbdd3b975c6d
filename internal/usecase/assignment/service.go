package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainAssignment "github.com/PratikPaudel/nwcs-inventory/internal/domain/assignment"
	domainDeviceUser "github.com/PratikPaudel/nwcs-inventory/internal/domain/deviceuser"
	domainEquipment "github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	domainHistory "github.com/PratikPaudel/nwcs-inventory/internal/domain/history"
	"github.com/PratikPaudel/nwcs-inventory/internal/logger"
	appErrors "github.com/PratikPaudel/nwcs-inventory/pkg/errors"
	"github.com/PratikPaudel/nwcs-inventory/pkg/utils"
)

// Service implements the assignment lifecycle: equipment status, the
// assignment ledger and the history log move together, and every transition
// is recorded.
type Service struct {
	assignmentRepo domainAssignment.Repository
	equipmentRepo  domainEquipment.Repository
	deviceUserRepo domainDeviceUser.Repository
}

// NewService creates a new assignment service
func NewService(
	assignmentRepo domainAssignment.Repository,
	equipmentRepo domainEquipment.Repository,
	deviceUserRepo domainDeviceUser.Repository,
) *Service {
	return &Service{
		assignmentRepo: assignmentRepo,
		equipmentRepo:  equipmentRepo,
		deviceUserRepo: deviceUserRepo,
	}
}

// Create opens an assignment: the equipment must exist and be assignable.
// On success the equipment moves to In Use and a history record is appended,
// all in one unit of work. actorID is the authenticated caller, recorded as
// change_made_by on the history record.
func (s *Service) Create(ctx context.Context, actorID uuid.UUID, req *CreateAssignmentRequest) (*AssignmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	startDate, err := time.Parse(dateLayout, req.AssignmentStartDate)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "invalid assignment_start_date format, expected YYYY-MM-DD", err)
	}

	equip, err := s.equipmentRepo.GetByID(ctx, req.EquipmentID)
	if err != nil {
		return nil, err
	}

	if err := ValidateAssignable(equip.Status); err != nil {
		return nil, err
	}

	if _, err := s.deviceUserRepo.GetByID(ctx, req.DeviceUserID); err != nil {
		return nil, err
	}

	a := &domainAssignment.Assignment{
		EquipmentID:         req.EquipmentID,
		DeviceUserID:        req.DeviceUserID,
		AssignmentPurpose:   req.AssignmentPurpose,
		AssignmentStartDate: startDate,
	}

	record := &domainHistory.Record{
		EquipmentID:         req.EquipmentID,
		DeviceUserID:        &req.DeviceUserID,
		LocationID:          equip.LocationID,
		Status:              domainEquipment.StatusInUse,
		AssignmentStartDate: startDate,
		ChangeDate:          time.Now(),
		ChangeMadeBy:        actorID,
	}

	if err := s.assignmentRepo.CreateWithTransition(ctx, a, record); err != nil {
		return nil, err
	}

	logger.Info("Assignment created",
		zap.String("assignment_id", a.ID.String()),
		zap.String("equipment_id", a.EquipmentID.String()),
		zap.String("device_user_id", a.DeviceUserID.String()),
		zap.String("actor_id", actorID.String()),
		zap.String("event", "assignment_created"),
	)

	return ToAssignmentResponse(a), nil
}

// Update applies a field-level patch to the ledger row. An empty patch is a
// no-op and returns the row unchanged.
func (s *Service) Update(ctx context.Context, assignmentID uuid.UUID, req *UpdateAssignmentRequest) (*AssignmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	a, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	if req.DeviceUserID == nil && req.AssignmentPurpose == nil && req.AssignmentStartDate == nil {
		return ToAssignmentResponse(a), nil
	}

	if req.DeviceUserID != nil {
		if _, err := s.deviceUserRepo.GetByID(ctx, *req.DeviceUserID); err != nil {
			return nil, err
		}
		a.DeviceUserID = *req.DeviceUserID
	}
	if req.AssignmentPurpose != nil {
		a.AssignmentPurpose = req.AssignmentPurpose
	}
	if req.AssignmentStartDate != nil {
		startDate, err := time.Parse(dateLayout, *req.AssignmentStartDate)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "invalid assignment_start_date format, expected YYYY-MM-DD", err)
		}
		a.AssignmentStartDate = startDate
	}

	if err := s.assignmentRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	logger.Info("Assignment updated",
		zap.String("assignment_id", a.ID.String()),
		zap.String("event", "assignment_updated"),
	)

	return ToAssignmentResponse(a), nil
}

// End closes the assignment: the equipment status becomes newStatus, a
// closing history record with today's end date is appended and the ledger
// row is deleted. newStatus defaults to Available and is not checked against
// the status enum; any non-empty string is written through.
func (s *Service) End(ctx context.Context, actorID uuid.UUID, assignmentID uuid.UUID, newStatus string) error {
	if newStatus == "" {
		newStatus = string(domainEquipment.StatusAvailable)
	}

	a, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}

	endDate := time.Now()
	record := &domainHistory.Record{
		EquipmentID:         a.EquipmentID,
		DeviceUserID:        &a.DeviceUserID,
		Status:              domainEquipment.Status(newStatus),
		AssignmentStartDate: a.AssignmentStartDate,
		AssignmentEndDate:   &endDate,
		ChangeDate:          endDate,
		ChangeMadeBy:        actorID,
	}

	if err := s.assignmentRepo.EndWithTransition(ctx, a, domainEquipment.Status(newStatus), record); err != nil {
		return err
	}

	logger.Info("Assignment ended",
		zap.String("assignment_id", a.ID.String()),
		zap.String("equipment_id", a.EquipmentID.String()),
		zap.String("new_status", newStatus),
		zap.String("actor_id", actorID.String()),
		zap.String("event", "assignment_ended"),
	)

	return nil
}

// List returns the ledger joined with equipment and device user details.
func (s *Service) List(ctx context.Context, req *AssignmentFilterRequest) (*AssignmentListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	details, total, err := s.assignmentRepo.List(ctx, toDomainFilter(req))
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]AssignmentDetailResponse, len(details))
	for i, d := range details {
		responses[i] = ToAssignmentDetailResponse(d)
	}

	return &AssignmentListResponse{
		Assignments: responses,
		Total:       total,
		Page:        req.Page,
		PageSize:    req.PageSize,
	}, nil
}
