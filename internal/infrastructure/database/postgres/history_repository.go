package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	"github.com/PratikPaudel/nwcs-inventory/internal/domain/history"
	"github.com/PratikPaudel/nwcs-inventory/internal/infrastructure/database/postgres/models"
)

type HistoryRepository struct {
	db *DB
}

func NewHistoryRepository(db *DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) ListByEquipmentID(ctx context.Context, equipmentID uuid.UUID) ([]*history.Record, error) {
	var dbModels []models.HistoryModel
	err := r.db.DB.WithContext(ctx).
		Where("equipment_id = ?", equipmentID).
		Order("change_date DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	records := make([]*history.Record, len(dbModels))
	for i := range dbModels {
		records[i] = toHistoryEntity(&dbModels[i])
	}

	return records, nil
}

func toHistoryEntity(m *models.HistoryModel) *history.Record {
	return &history.Record{
		ID:                  m.ID,
		EquipmentID:         m.EquipmentID,
		DeviceUserID:        m.DeviceUserID,
		LocationID:          m.LocationID,
		Status:              equipment.Status(m.Status),
		AssignmentStartDate: m.AssignmentStartDate,
		AssignmentEndDate:   m.AssignmentEndDate,
		ChangeDate:          m.ChangeDate,
		ChangeMadeBy:        m.ChangeMadeBy,
	}
}
