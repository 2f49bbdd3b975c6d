package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	"github.com/PratikPaudel/nwcs-inventory/internal/infrastructure/database/postgres/models"
)

type EquipmentRepository struct {
	db *DB
}

func NewEquipmentRepository(db *DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *equipment.Equipment) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	e.UpdatedAt = time.Now()
	if e.Status == "" {
		e.Status = equipment.StatusAvailable
	}

	dbModel := toEquipmentModel(e)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return equipment.ErrEquipmentAlreadyExists
		}
		return fmt.Errorf("failed to create equipment: %w", err)
	}

	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, equipmentID uuid.UUID) (*equipment.Equipment, error) {
	var dbModel models.EquipmentModel
	err := r.db.DB.WithContext(ctx).
		Preload("Location").
		Preload("Location.Building").
		Where("id = ?", equipmentID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, equipment.ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	return toEquipmentEntity(&dbModel), nil
}

func (r *EquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	e.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.EquipmentModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"asset_tag":           e.AssetTag,
			"serial_number":       e.SerialNumber,
			"device_name":         e.DeviceName,
			"status":              string(e.Status),
			"manufacturer":        e.Manufacturer,
			"model":               e.Model,
			"form_factor":         e.FormFactor,
			"ram":                 e.RAM,
			"storage_capacity":    e.StorageCapacity,
			"storage_type":        e.StorageType,
			"operating_system":    e.OperatingSystem,
			"location_id":         e.LocationID,
			"notes":               e.Notes,
			"warranty_start_date": e.WarrantyStartDate,
			"warranty_end_date":   e.WarrantyEndDate,
			"updated_at":          e.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return equipment.ErrEquipmentNotFound
	}

	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, equipmentID uuid.UUID) error {
	// Refuse to delete a unit that still carries an open assignment.
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var openAssignments int64
		if err := tx.Model(&models.AssignmentModel{}).
			Where("equipment_id = ?", equipmentID).
			Count(&openAssignments).Error; err != nil {
			return fmt.Errorf("failed to check open assignments: %w", err)
		}
		if openAssignments > 0 {
			return equipment.ErrEquipmentInUse
		}

		result := tx.Where("id = ?", equipmentID).Delete(&models.EquipmentModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete equipment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return equipment.ErrEquipmentNotFound
		}

		return nil
	})
}

// equipmentSortColumns are the columns clients may sort the registry by.
// The sort clause is interpolated into SQL, so anything outside this set
// falls back to created_at.
var equipmentSortColumns = map[string]bool{
	"asset_tag":     true,
	"serial_number": true,
	"device_name":   true,
	"status":        true,
	"manufacturer":  true,
	"form_factor":   true,
	"created_at":    true,
	"updated_at":    true,
}

func equipmentOrderClause(sortBy, sortOrder string) string {
	if !equipmentSortColumns[sortBy] {
		sortBy = "created_at"
	}
	direction := "DESC"
	if strings.ToLower(sortOrder) == "asc" {
		direction = "ASC"
	}

	return sortBy + " " + direction
}

func (r *EquipmentRepository) List(ctx context.Context, filter *equipment.Filter) ([]*equipment.Equipment, int64, error) {
	var dbModels []models.EquipmentModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.EquipmentModel{}).
		Preload("Location").
		Preload("Location.Building")

	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}
	if filter.LocationID != nil {
		db = db.Where("location_id = ?", *filter.LocationID)
	}
	if filter.FormFactor != nil {
		db = db.Where("form_factor = ?", *filter.FormFactor)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		db = db.Where("asset_tag ILIKE ? OR serial_number ILIKE ? OR device_name ILIKE ?", search, search, search)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count equipment: %w", err)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	err := db.Order(equipmentOrderClause(filter.SortBy, filter.SortOrder)).
		Limit(pageSize).
		Offset(offset).
		Find(&dbModels).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list equipment: %w", err)
	}

	entities := make([]*equipment.Equipment, len(dbModels))
	for i := range dbModels {
		entities[i] = toEquipmentEntity(&dbModels[i])
	}

	return entities, total, nil
}

func (r *EquipmentRepository) ListAll(ctx context.Context) ([]*equipment.Equipment, error) {
	var dbModels []models.EquipmentModel
	if err := r.db.DB.WithContext(ctx).Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	entities := make([]*equipment.Equipment, len(dbModels))
	for i := range dbModels {
		entities[i] = toEquipmentEntity(&dbModels[i])
	}

	return entities, nil
}

func (r *EquipmentRepository) CountByManufacturer(ctx context.Context) ([]equipment.Distribution, error) {
	var rows []equipment.Distribution
	err := r.db.DB.WithContext(ctx).Raw(`
        SELECT manufacturer AS name, COUNT(*) AS value
        FROM equipment
        WHERE manufacturer IS NOT NULL
        GROUP BY manufacturer
        ORDER BY value DESC
    `).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count by manufacturer: %w", err)
	}

	return rows, nil
}

func (r *EquipmentRepository) CountByFormFactor(ctx context.Context) ([]equipment.Distribution, error) {
	var rows []equipment.Distribution
	err := r.db.DB.WithContext(ctx).Raw(`
        SELECT form_factor AS name, COUNT(*) AS value
        FROM equipment
        WHERE form_factor IS NOT NULL
        GROUP BY form_factor
        ORDER BY value DESC
    `).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count by form factor: %w", err)
	}

	return rows, nil
}

func toEquipmentModel(e *equipment.Equipment) *models.EquipmentModel {
	return &models.EquipmentModel{
		ID:                e.ID,
		AssetTag:          e.AssetTag,
		SerialNumber:      e.SerialNumber,
		DeviceName:        e.DeviceName,
		Status:            string(e.Status),
		Manufacturer:      e.Manufacturer,
		Model:             e.Model,
		FormFactor:        e.FormFactor,
		RAM:               e.RAM,
		StorageCapacity:   e.StorageCapacity,
		StorageType:       e.StorageType,
		OperatingSystem:   e.OperatingSystem,
		LocationID:        e.LocationID,
		Notes:             e.Notes,
		WarrantyStartDate: e.WarrantyStartDate,
		WarrantyEndDate:   e.WarrantyEndDate,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func toEquipmentEntity(m *models.EquipmentModel) *equipment.Equipment {
	e := &equipment.Equipment{
		ID:                m.ID,
		AssetTag:          m.AssetTag,
		SerialNumber:      m.SerialNumber,
		DeviceName:        m.DeviceName,
		Status:            equipment.Status(m.Status),
		Manufacturer:      m.Manufacturer,
		Model:             m.Model,
		FormFactor:        m.FormFactor,
		RAM:               m.RAM,
		StorageCapacity:   m.StorageCapacity,
		StorageType:       m.StorageType,
		OperatingSystem:   m.OperatingSystem,
		LocationID:        m.LocationID,
		Notes:             m.Notes,
		WarrantyStartDate: m.WarrantyStartDate,
		WarrantyEndDate:   m.WarrantyEndDate,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}

	return e
}
