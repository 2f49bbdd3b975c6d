package dashboard

import (
	"time"

	"github.com/google/uuid"

	domainEquipment "github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
)

type DistributionResponse struct {
	Type string                         `json:"type"`
	Data []domainEquipment.Distribution `json:"data"`
}

type GenerateReportRequest struct {
	Status     *string `json:"status" validate:"omitempty,equipment_status"`
	FormFactor *string `json:"form_factor" validate:"omitempty,max=50"`
}

type ReportRow struct {
	ID           uuid.UUID `json:"equipment_id"`
	AssetTag     string    `json:"asset_tag"`
	SerialNumber *string   `json:"serial_number"`
	DeviceName   string    `json:"device_name"`
	Status       string    `json:"status"`
	Manufacturer *string   `json:"manufacturer"`
	Model        *string   `json:"model"`
	FormFactor   *string   `json:"form_factor"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReportResponse struct {
	Total int         `json:"total"`
	Rows  []ReportRow `json:"rows"`
}

func toReportRow(e *domainEquipment.Equipment) ReportRow {
	return ReportRow{
		ID:           e.ID,
		AssetTag:     e.AssetTag,
		SerialNumber: e.SerialNumber,
		DeviceName:   e.DeviceName,
		Status:       string(e.Status),
		Manufacturer: e.Manufacturer,
		Model:        e.Model,
		FormFactor:   e.FormFactor,
		UpdatedAt:    e.UpdatedAt,
	}
}
