package equipment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainEquipment "github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	domainHistory "github.com/PratikPaudel/nwcs-inventory/internal/domain/history"
	"github.com/PratikPaudel/nwcs-inventory/internal/logger"
	appErrors "github.com/PratikPaudel/nwcs-inventory/pkg/errors"
	"github.com/PratikPaudel/nwcs-inventory/pkg/utils"
)

// Service implements the equipment registry use cases
type Service struct {
	equipmentRepo domainEquipment.Repository
	historyRepo   domainHistory.Repository
}

// NewService creates a new equipment service
func NewService(equipmentRepo domainEquipment.Repository, historyRepo domainHistory.Repository) *Service {
	return &Service{
		equipmentRepo: equipmentRepo,
		historyRepo:   historyRepo,
	}
}

// Create registers a new equipment unit. Status defaults to Available when
// the request leaves it out.
func (s *Service) Create(ctx context.Context, req *CreateEquipmentRequest) (*EquipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	status := domainEquipment.StatusAvailable
	if req.Status != nil {
		status = domainEquipment.Status(*req.Status)
	}

	e := &domainEquipment.Equipment{
		AssetTag:        req.AssetTag,
		SerialNumber:    req.SerialNumber,
		DeviceName:      req.DeviceName,
		Status:          status,
		Manufacturer:    req.Manufacturer,
		Model:           req.Model,
		FormFactor:      req.FormFactor,
		RAM:             req.RAM,
		StorageCapacity: req.StorageCapacity,
		StorageType:     req.StorageType,
		OperatingSystem: req.OperatingSystem,
		LocationID:      req.LocationID,
		Notes:           req.Notes,
	}

	if req.WarrantyStartDate != nil {
		start, err := time.Parse(dateLayout, *req.WarrantyStartDate)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "invalid warranty_start_date format, expected YYYY-MM-DD", err)
		}
		e.WarrantyStartDate = &start
	}
	if req.WarrantyEndDate != nil {
		end, err := time.Parse(dateLayout, *req.WarrantyEndDate)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "invalid warranty_end_date format, expected YYYY-MM-DD", err)
		}
		e.WarrantyEndDate = &end
	}

	if err := s.equipmentRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	logger.Info("Equipment created",
		zap.String("equipment_id", e.ID.String()),
		zap.String("asset_tag", e.AssetTag),
		zap.String("event", "equipment_created"),
	)

	return ToEquipmentResponse(e), nil
}

// GetByID returns a single equipment unit
func (s *Service) GetByID(ctx context.Context, equipmentID uuid.UUID) (*EquipmentResponse, error) {
	e, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	return ToEquipmentResponse(e), nil
}

// Update applies a field-level patch to an equipment unit. Only the fields
// present in the request are touched; the lifecycle status may be set here
// directly, outside of the assignment flow.
func (s *Service) Update(ctx context.Context, equipmentID uuid.UUID, req *UpdateEquipmentRequest) (*EquipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	e, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	if req.AssetTag != nil {
		e.AssetTag = *req.AssetTag
	}
	if req.SerialNumber != nil {
		e.SerialNumber = req.SerialNumber
	}
	if req.DeviceName != nil {
		e.DeviceName = *req.DeviceName
	}
	if req.Status != nil {
		e.Status = domainEquipment.Status(*req.Status)
	}
	if req.Manufacturer != nil {
		e.Manufacturer = req.Manufacturer
	}
	if req.Model != nil {
		e.Model = req.Model
	}
	if req.FormFactor != nil {
		e.FormFactor = req.FormFactor
	}
	if req.RAM != nil {
		e.RAM = req.RAM
	}
	if req.StorageCapacity != nil {
		e.StorageCapacity = req.StorageCapacity
	}
	if req.StorageType != nil {
		e.StorageType = req.StorageType
	}
	if req.OperatingSystem != nil {
		e.OperatingSystem = req.OperatingSystem
	}
	if req.LocationID != nil {
		e.LocationID = req.LocationID
	}
	if req.Notes != nil {
		e.Notes = req.Notes
	}
	if req.WarrantyStartDate != nil {
		start, err := time.Parse(dateLayout, *req.WarrantyStartDate)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "invalid warranty_start_date format, expected YYYY-MM-DD", err)
		}
		e.WarrantyStartDate = &start
	}
	if req.WarrantyEndDate != nil {
		end, err := time.Parse(dateLayout, *req.WarrantyEndDate)
		if err != nil {
			return nil, appErrors.NewAppError("VALIDATION_ERROR", "invalid warranty_end_date format, expected YYYY-MM-DD", err)
		}
		e.WarrantyEndDate = &end
	}

	if err := s.equipmentRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	logger.Info("Equipment updated",
		zap.String("equipment_id", e.ID.String()),
		zap.String("event", "equipment_updated"),
	)

	return ToEquipmentResponse(e), nil
}

// Delete removes an equipment unit. Units with an open assignment are
// refused; the assignment must be ended first.
func (s *Service) Delete(ctx context.Context, equipmentID uuid.UUID) error {
	if err := s.equipmentRepo.Delete(ctx, equipmentID); err != nil {
		return err
	}

	logger.Info("Equipment deleted",
		zap.String("equipment_id", equipmentID.String()),
		zap.String("event", "equipment_deleted"),
	)

	return nil
}

// List returns a filtered, paginated page of the registry
func (s *Service) List(ctx context.Context, req *EquipmentFilterRequest) (*EquipmentListResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	filter := &domainEquipment.Filter{
		LocationID: req.LocationID,
		Search:     req.Search,
		Page:       req.Page,
		PageSize:   req.PageSize,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}
	if req.Status != nil {
		status := domainEquipment.Status(*req.Status)
		filter.Status = &status
	}

	items, total, err := s.equipmentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	responses := make([]EquipmentResponse, len(items))
	for i, e := range items {
		responses[i] = *ToEquipmentResponse(e)
	}

	return &EquipmentListResponse{
		Equipment: responses,
		Total:     total,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}, nil
}

// SearchInventory runs the case-insensitive substring search over asset tag,
// serial number and device name and returns flat inventory rows. An empty
// query returns the full inventory.
func (s *Service) SearchInventory(ctx context.Context, query string) ([]InventoryItemResponse, error) {
	filter := &domainEquipment.Filter{
		Search:   query,
		Page:     1,
		PageSize: 500,
		SortBy:   "asset_tag",
	}

	items, _, err := s.equipmentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search inventory: %w", err)
	}

	responses := make([]InventoryItemResponse, len(items))
	for i, e := range items {
		responses[i] = ToInventoryItemResponse(e)
	}

	return responses, nil
}

// GetHistory returns the append-only history of a unit, newest change first.
// The unit must exist even when its history is empty.
func (s *Service) GetHistory(ctx context.Context, equipmentID uuid.UUID) ([]HistoryRecordResponse, error) {
	if _, err := s.equipmentRepo.GetByID(ctx, equipmentID); err != nil {
		return nil, err
	}

	records, err := s.historyRepo.ListByEquipmentID(ctx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load equipment history: %w", err)
	}

	responses := make([]HistoryRecordResponse, len(records))
	for i, record := range records {
		responses[i] = ToHistoryRecordResponse(record)
	}

	return responses, nil
}
