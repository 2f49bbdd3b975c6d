package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PratikPaudel/nwcs-inventory/internal/domain/assignment"
	"github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	"github.com/PratikPaudel/nwcs-inventory/internal/domain/history"
	"github.com/PratikPaudel/nwcs-inventory/internal/infrastructure/database/postgres/models"
)

type AssignmentRepository struct {
	db *DB
}

func NewAssignmentRepository(db *DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// CreateWithTransition opens the assignment, flips the equipment status to
// In Use and appends the history record in one transaction. The status flip
// is conditional on the unit still being assignable, so of two concurrent
// creates exactly one commits; the unique index on equipment_id backstops
// the same invariant at the ledger.
func (r *AssignmentRepository) CreateWithTransition(ctx context.Context, a *assignment.Assignment, record *history.Record) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.EquipmentModel{}).
			Where("id = ? AND status IN ?", a.EquipmentID,
				[]string{string(equipment.StatusAvailable), string(equipment.StatusInStorage)}).
			Updates(map[string]interface{}{
				"status":     string(equipment.StatusInUse),
				"updated_at": time.Now(),
			})

		if result.Error != nil {
			return fmt.Errorf("failed to update equipment status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return assignment.ErrAssignmentConflict
		}

		if err := tx.Create(toAssignmentModel(a)).Error; err != nil {
			if strings.Contains(err.Error(), "duplicate key value") {
				return assignment.ErrAssignmentConflict
			}
			return fmt.Errorf("failed to create assignment: %w", err)
		}

		record.ID = uuid.New()
		if err := tx.Create(toHistoryModel(record)).Error; err != nil {
			return fmt.Errorf("failed to create history record: %w", err)
		}

		return nil
	})
}

// EndWithTransition sets the equipment status to the caller-supplied value,
// appends the closing history record and deletes the ledger row, all in one
// transaction.
func (r *AssignmentRepository) EndWithTransition(ctx context.Context, a *assignment.Assignment, newStatus equipment.Status, record *history.Record) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.EquipmentModel{}).
			Where("id = ?", a.EquipmentID).
			Updates(map[string]interface{}{
				"status":     string(newStatus),
				"updated_at": time.Now(),
			})

		if result.Error != nil {
			return fmt.Errorf("failed to update equipment status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return equipment.ErrEquipmentNotFound
		}

		record.ID = uuid.New()
		if err := tx.Create(toHistoryModel(record)).Error; err != nil {
			return fmt.Errorf("failed to create history record: %w", err)
		}

		deleted := tx.Where("id = ?", a.ID).Delete(&models.AssignmentModel{})
		if deleted.Error != nil {
			return fmt.Errorf("failed to delete assignment: %w", deleted.Error)
		}
		if deleted.RowsAffected == 0 {
			return assignment.ErrAssignmentNotFound
		}

		return nil
	})
}

func (r *AssignmentRepository) GetByID(ctx context.Context, assignmentID uuid.UUID) (*assignment.Assignment, error) {
	var dbModel models.AssignmentModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", assignmentID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, assignment.ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return toAssignmentEntity(&dbModel), nil
}

func (r *AssignmentRepository) GetByEquipmentID(ctx context.Context, equipmentID uuid.UUID) (*assignment.Assignment, error) {
	var dbModel models.AssignmentModel
	err := r.db.DB.WithContext(ctx).
		Where("equipment_id = ?", equipmentID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, assignment.ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return toAssignmentEntity(&dbModel), nil
}

func (r *AssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.AssignmentModel{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"device_user_id":        a.DeviceUserID,
			"assignment_purpose":    a.AssignmentPurpose,
			"assignment_start_date": a.AssignmentStartDate,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

func (r *AssignmentRepository) List(ctx context.Context, filter *assignment.Filter) ([]*assignment.Detail, int64, error) {
	var dbModels []models.AssignmentModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.AssignmentModel{}).
		Preload("Equipment").
		Preload("DeviceUser").
		Preload("DeviceUser.Department").
		Joins("LEFT JOIN equipment ON equipment.id = equipment_assignments.equipment_id").
		Joins("LEFT JOIN device_users ON device_users.id = equipment_assignments.device_user_id")

	if filter.DeviceUserID != nil {
		db = db.Where("equipment_assignments.device_user_id = ?", *filter.DeviceUserID)
	}
	if filter.DepartmentID != nil {
		db = db.Where("device_users.department_id = ?", *filter.DepartmentID)
	}
	if filter.Status != nil {
		db = db.Where("equipment.status = ?", string(*filter.Status))
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assignments: %w", err)
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

	err := db.Order("equipment_assignments.created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&dbModels).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}

	details := make([]*assignment.Detail, len(dbModels))
	for i := range dbModels {
		details[i] = toAssignmentDetail(&dbModels[i])
	}

	return details, total, nil
}

func toAssignmentModel(a *assignment.Assignment) *models.AssignmentModel {
	return &models.AssignmentModel{
		ID:                  a.ID,
		EquipmentID:         a.EquipmentID,
		DeviceUserID:        a.DeviceUserID,
		AssignmentPurpose:   a.AssignmentPurpose,
		AssignmentStartDate: a.AssignmentStartDate,
		CreatedAt:           a.CreatedAt,
	}
}

func toAssignmentEntity(m *models.AssignmentModel) *assignment.Assignment {
	return &assignment.Assignment{
		ID:                  m.ID,
		EquipmentID:         m.EquipmentID,
		DeviceUserID:        m.DeviceUserID,
		AssignmentPurpose:   m.AssignmentPurpose,
		AssignmentStartDate: m.AssignmentStartDate,
		CreatedAt:           m.CreatedAt,
	}
}

func toAssignmentDetail(m *models.AssignmentModel) *assignment.Detail {
	detail := &assignment.Detail{
		Assignment: *toAssignmentEntity(m),
	}
	if m.Equipment != nil {
		detail.Equipment = toEquipmentEntity(m.Equipment)
	}
	if m.DeviceUser != nil {
		detail.DeviceUser = toDeviceUserEntity(m.DeviceUser)
	}

	return detail
}

func toHistoryModel(record *history.Record) *models.HistoryModel {
	return &models.HistoryModel{
		ID:                  record.ID,
		EquipmentID:         record.EquipmentID,
		DeviceUserID:        record.DeviceUserID,
		LocationID:          record.LocationID,
		Status:              string(record.Status),
		AssignmentStartDate: record.AssignmentStartDate,
		AssignmentEndDate:   record.AssignmentEndDate,
		ChangeDate:          record.ChangeDate,
		ChangeMadeBy:        record.ChangeMadeBy,
	}
}
