package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PratikPaudel/nwcs-inventory/internal/domain/deviceuser"
	"github.com/PratikPaudel/nwcs-inventory/internal/infrastructure/database/postgres/models"
)

type DeviceUserRepository struct {
	db *DB
}

func NewDeviceUserRepository(db *DB) *DeviceUserRepository {
	return &DeviceUserRepository{db: db}
}

func (r *DeviceUserRepository) Create(ctx context.Context, u *deviceuser.DeviceUser) error {
	u.ID = uuid.New()

	dbModel := toDeviceUserModel(u)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return deviceuser.ErrDeviceUserExists
		}
		return fmt.Errorf("failed to create device user: %w", err)
	}

	return nil
}

func (r *DeviceUserRepository) GetByID(ctx context.Context, deviceUserID uuid.UUID) (*deviceuser.DeviceUser, error) {
	var dbModel models.DeviceUserModel
	err := r.db.DB.WithContext(ctx).
		Preload("Department").
		Preload("EmploymentType").
		Where("id = ?", deviceUserID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, deviceuser.ErrDeviceUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get device user: %w", err)
	}

	return toDeviceUserEntity(&dbModel), nil
}

func (r *DeviceUserRepository) List(ctx context.Context, filter *deviceuser.Filter) ([]*deviceuser.DeviceUser, int64, error) {
	var dbModels []models.DeviceUserModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.DeviceUserModel{}).
		Preload("Department").
		Preload("EmploymentType")

	if filter.DepartmentID != nil {
		db = db.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.EmploymentTypeID != nil {
		db = db.Where("employment_type_id = ?", *filter.EmploymentTypeID)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		db = db.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", search, search, search)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count device users: %w", err)
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

	err := db.Order("last_name ASC, first_name ASC").
		Limit(pageSize).
		Offset(offset).
		Find(&dbModels).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list device users: %w", err)
	}

	entities := make([]*deviceuser.DeviceUser, len(dbModels))
	for i := range dbModels {
		entities[i] = toDeviceUserEntity(&dbModels[i])
	}

	return entities, total, nil
}

func (r *DeviceUserRepository) Search(ctx context.Context, query string) ([]*deviceuser.SearchResult, error) {
	var dbModels []models.DeviceUserModel

	db := r.db.DB.WithContext(ctx).Model(&models.DeviceUserModel{}).
		Preload("Department")

	if query != "" {
		search := "%" + query + "%"
		db = db.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", search, search, search)
	}

	if err := db.Order("last_name ASC, first_name ASC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search device users: %w", err)
	}

	results := make([]*deviceuser.SearchResult, len(dbModels))
	for i := range dbModels {
		entity := toDeviceUserEntity(&dbModels[i])

		var deviceCount int64
		if err := r.db.DB.WithContext(ctx).
			Model(&models.AssignmentModel{}).
			Where("device_user_id = ?", entity.ID).
			Count(&deviceCount).Error; err != nil {
			return nil, fmt.Errorf("failed to count assigned devices: %w", err)
		}

		departmentName := ""
		if entity.Department != nil {
			departmentName = entity.Department.DepartmentName
		}

		results[i] = &deviceuser.SearchResult{
			DeviceUser:  entity,
			Department:  departmentName,
			DeviceCount: int(deviceCount),
		}
	}

	return results, nil
}

func (r *DeviceUserRepository) GetDepartmentByName(ctx context.Context, name string) (*deviceuser.Department, error) {
	var dbModel models.DepartmentModel
	err := r.db.DB.WithContext(ctx).
		Where("department_name = ?", name).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, deviceuser.ErrDepartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return toDepartmentEntity(&dbModel), nil
}

func (r *DeviceUserRepository) ListDepartments(ctx context.Context) ([]*deviceuser.Department, error) {
	var dbModels []models.DepartmentModel
	if err := r.db.DB.WithContext(ctx).Order("department_name ASC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	departments := make([]*deviceuser.Department, len(dbModels))
	for i := range dbModels {
		departments[i] = toDepartmentEntity(&dbModels[i])
	}

	return departments, nil
}

func (r *DeviceUserRepository) ListEmploymentTypes(ctx context.Context) ([]*deviceuser.EmploymentType, error) {
	var dbModels []models.EmploymentTypeModel
	if err := r.db.DB.WithContext(ctx).Order("employment_type_name ASC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list employment types: %w", err)
	}

	types := make([]*deviceuser.EmploymentType, len(dbModels))
	for i := range dbModels {
		types[i] = &deviceuser.EmploymentType{
			ID:                 dbModels[i].ID,
			EmploymentTypeName: dbModels[i].EmploymentTypeName,
		}
	}

	return types, nil
}

func toDeviceUserModel(u *deviceuser.DeviceUser) *models.DeviceUserModel {
	return &models.DeviceUserModel{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		DepartmentID:     u.DepartmentID,
		EmploymentTypeID: u.EmploymentTypeID,
	}
}

func toDeviceUserEntity(m *models.DeviceUserModel) *deviceuser.DeviceUser {
	u := &deviceuser.DeviceUser{
		ID:               m.ID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		DepartmentID:     m.DepartmentID,
		EmploymentTypeID: m.EmploymentTypeID,
	}
	if m.Department != nil {
		u.Department = toDepartmentEntity(m.Department)
	}
	if m.EmploymentType != nil {
		u.EmploymentType = &deviceuser.EmploymentType{
			ID:                 m.EmploymentType.ID,
			EmploymentTypeName: m.EmploymentType.EmploymentTypeName,
		}
	}

	return u
}

func toDepartmentEntity(m *models.DepartmentModel) *deviceuser.Department {
	return &deviceuser.Department{
		ID:                  m.ID,
		DepartmentName:      m.DepartmentName,
		DepartmentShortName: m.DepartmentShortName,
	}
}
