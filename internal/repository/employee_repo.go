package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Devendra616/collectEmpData-sub000/internal/model"
	pkgerrors "github.com/Devendra616/collectEmpData-sub000/pkg/errors"
)

// EmployeeListFilters narrows the admin roster listing.
type EmployeeListFilters struct {
	Submitted *bool
	Keyword   string // matches SAP ID or name
}

// EmployeeRepository is the employee-account data access interface.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetBySapID(ctx context.Context, sapID string) (*model.Employee, error)
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// SetSubmission flips the submission gate with an optimistic-lock
	// version check; racing admin/employee flips lose with ErrOptimisticLock.
	// Flipping to submitted stamps submitted_at, flipping back clears it.
	SetSubmission(ctx context.Context, id string, isSubmitted bool, version int) error
	List(ctx context.Context, filters *EmployeeListFilters, offset, limit int) ([]model.Employee, int64, error)
	ListAll(ctx context.Context) ([]model.Employee, error)
}

type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo creates the GORM-backed EmployeeRepository.
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) GetBySapID(ctx context.Context, sapID string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Where("sap_id = ?", sapID).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("employee_id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *employeeRepo) SetSubmission(ctx context.Context, id string, isSubmitted bool, version int) error {
	updates := map[string]interface{}{
		"is_submitted": isSubmitted,
		"version":      version + 1,
		"submitted_at": nil,
	}
	if isSubmitted {
		updates["submitted_at"] = time.Now()
	}
	result := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("employee_id = ? AND version = ?", id, version).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	return nil
}

func (r *employeeRepo) List(ctx context.Context, filters *EmployeeListFilters, offset, limit int) ([]model.Employee, int64, error) {
	var employees []model.Employee
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Employee{}).Where("is_admin = ?", false)

	if filters != nil {
		if filters.Submitted != nil {
			db = db.Where("is_submitted = ?", *filters.Submitted)
		}
		if filters.Keyword != "" {
			kw := "%" + filters.Keyword + "%"
			db = db.Where("sap_id ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", kw, kw, kw)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&employees).Error; err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepo) ListAll(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Where("is_admin = ?", false).
		Order("sap_id").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}
