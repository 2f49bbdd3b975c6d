package equipment

import (
	"time"

	"github.com/google/uuid"

	domainEquipment "github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	domainHistory "github.com/PratikPaudel/nwcs-inventory/internal/domain/history"
)

const dateLayout = "2006-01-02"

type CreateEquipmentRequest struct {
	AssetTag          string     `json:"asset_tag" validate:"required,min=2,max=100"`
	SerialNumber      *string    `json:"serial_number" validate:"omitempty,max=255"`
	DeviceName        string     `json:"device_name" validate:"required,min=2,max=255"`
	Status            *string    `json:"status" validate:"omitempty,equipment_status"`
	Manufacturer      *string    `json:"manufacturer" validate:"omitempty,max=100"`
	Model             *string    `json:"model" validate:"omitempty,max=100"`
	FormFactor        *string    `json:"form_factor" validate:"omitempty,max=50"`
	RAM               *string    `json:"ram" validate:"omitempty,max=50"`
	StorageCapacity   *string    `json:"storage_capacity" validate:"omitempty,max=50"`
	StorageType       *string    `json:"storage_type" validate:"omitempty,max=50"`
	OperatingSystem   *string    `json:"operating_system" validate:"omitempty,max=100"`
	LocationID        *uuid.UUID `json:"location_id"`
	Notes             *string    `json:"notes" validate:"omitempty,max=2000"`
	WarrantyStartDate *string    `json:"warranty_start_date"`
	WarrantyEndDate   *string    `json:"warranty_end_date"`
}

type UpdateEquipmentRequest struct {
	AssetTag          *string    `json:"asset_tag" validate:"omitempty,min=2,max=100"`
	SerialNumber      *string    `json:"serial_number" validate:"omitempty,max=255"`
	DeviceName        *string    `json:"device_name" validate:"omitempty,min=2,max=255"`
	Status            *string    `json:"status" validate:"omitempty,equipment_status"`
	Manufacturer      *string    `json:"manufacturer" validate:"omitempty,max=100"`
	Model             *string    `json:"model" validate:"omitempty,max=100"`
	FormFactor        *string    `json:"form_factor" validate:"omitempty,max=50"`
	RAM               *string    `json:"ram" validate:"omitempty,max=50"`
	StorageCapacity   *string    `json:"storage_capacity" validate:"omitempty,max=50"`
	StorageType       *string    `json:"storage_type" validate:"omitempty,max=50"`
	OperatingSystem   *string    `json:"operating_system" validate:"omitempty,max=100"`
	LocationID        *uuid.UUID `json:"location_id"`
	Notes             *string    `json:"notes" validate:"omitempty,max=2000"`
	WarrantyStartDate *string    `json:"warranty_start_date"`
	WarrantyEndDate   *string    `json:"warranty_end_date"`
}

type EquipmentFilterRequest struct {
	Status     *string    `form:"status"`
	LocationID *uuid.UUID `form:"location_id"`
	Search     string     `form:"search"`
	Page       int        `form:"page" validate:"omitempty,min=1"`
	PageSize   int        `form:"page_size" validate:"omitempty,min=1,max=100"`
	SortBy     string     `form:"sort_by" validate:"omitempty,oneof=created_at updated_at asset_tag device_name status"`
	SortOrder  string     `form:"sort_order" validate:"omitempty,oneof=asc desc"`
}

type SearchInventoryRequest struct {
	Query string `json:"query"`
}

type EquipmentResponse struct {
	ID                uuid.UUID  `json:"equipment_id"`
	AssetTag          string     `json:"asset_tag"`
	SerialNumber      *string    `json:"serial_number"`
	DeviceName        string     `json:"device_name"`
	Status            string     `json:"status"`
	Manufacturer      *string    `json:"manufacturer"`
	Model             *string    `json:"model"`
	FormFactor        *string    `json:"form_factor"`
	RAM               *string    `json:"ram"`
	StorageCapacity   *string    `json:"storage_capacity"`
	StorageType       *string    `json:"storage_type"`
	OperatingSystem   *string    `json:"operating_system"`
	LocationID        *uuid.UUID `json:"location_id"`
	Notes             *string    `json:"notes"`
	WarrantyStartDate *string    `json:"warranty_start_date"`
	WarrantyEndDate   *string    `json:"warranty_end_date"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
	Total     int64               `json:"total"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

// InventoryItemResponse is the flat row shape served by the inventory search.
type InventoryItemResponse struct {
	ID           uuid.UUID `json:"equipment_id"`
	AssetTag     string    `json:"asset_tag"`
	SerialNumber *string   `json:"serial_number"`
	DeviceName   string    `json:"device_name"`
	Status       string    `json:"status"`
	FormFactor   *string   `json:"form_factor"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type HistoryRecordResponse struct {
	ID                  uuid.UUID  `json:"history_id"`
	EquipmentID         uuid.UUID  `json:"equipment_id"`
	DeviceUserID        *uuid.UUID `json:"device_user_id"`
	LocationID          *uuid.UUID `json:"location_id"`
	Status              string     `json:"status"`
	AssignmentStartDate string     `json:"assignment_start_date"`
	AssignmentEndDate   *string    `json:"assignment_end_date"`
	ChangeDate          time.Time  `json:"change_date"`
	ChangeMadeBy        uuid.UUID  `json:"change_made_by"`
}

func ToEquipmentResponse(e *domainEquipment.Equipment) *EquipmentResponse {
	resp := &EquipmentResponse{
		ID:              e.ID,
		AssetTag:        e.AssetTag,
		SerialNumber:    e.SerialNumber,
		DeviceName:      e.DeviceName,
		Status:          string(e.Status),
		Manufacturer:    e.Manufacturer,
		Model:           e.Model,
		FormFactor:      e.FormFactor,
		RAM:             e.RAM,
		StorageCapacity: e.StorageCapacity,
		StorageType:     e.StorageType,
		OperatingSystem: e.OperatingSystem,
		LocationID:      e.LocationID,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}

	if e.WarrantyStartDate != nil {
		formatted := e.WarrantyStartDate.Format(dateLayout)
		resp.WarrantyStartDate = &formatted
	}
	if e.WarrantyEndDate != nil {
		formatted := e.WarrantyEndDate.Format(dateLayout)
		resp.WarrantyEndDate = &formatted
	}

	return resp
}

func ToInventoryItemResponse(e *domainEquipment.Equipment) InventoryItemResponse {
	return InventoryItemResponse{
		ID:           e.ID,
		AssetTag:     e.AssetTag,
		SerialNumber: e.SerialNumber,
		DeviceName:   e.DeviceName,
		Status:       string(e.Status),
		FormFactor:   e.FormFactor,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToHistoryRecordResponse(record *domainHistory.Record) HistoryRecordResponse {
	resp := HistoryRecordResponse{
		ID:                  record.ID,
		EquipmentID:         record.EquipmentID,
		DeviceUserID:        record.DeviceUserID,
		LocationID:          record.LocationID,
		Status:              string(record.Status),
		AssignmentStartDate: record.AssignmentStartDate.Format(dateLayout),
		ChangeDate:          record.ChangeDate,
		ChangeMadeBy:        record.ChangeMadeBy,
	}
	if record.AssignmentEndDate != nil {
		formatted := record.AssignmentEndDate.Format(dateLayout)
		resp.AssignmentEndDate = &formatted
	}

	return resp
}
