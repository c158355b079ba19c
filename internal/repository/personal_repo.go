package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Devendra616/collectEmpData-sub000/internal/model"
)

// PersonalRepository stores the personal-details section.
type PersonalRepository interface {
	GetByEmployee(ctx context.Context, employeeID string) (*model.PersonalDetail, error)
	// Upsert replaces the whole document (find-by-employee-or-create).
	Upsert(ctx context.Context, detail *model.PersonalDetail) error
	ListAll(ctx context.Context) ([]model.PersonalDetail, error)
}

type personalRepo struct {
	db *gorm.DB
}

// NewPersonalRepo creates the GORM-backed PersonalRepository.
func NewPersonalRepo(db *gorm.DB) PersonalRepository {
	return &personalRepo{db: db}
}

func (r *personalRepo) GetByEmployee(ctx context.Context, employeeID string) (*model.PersonalDetail, error) {
	var detail model.PersonalDetail
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *personalRepo) Upsert(ctx context.Context, detail *model.PersonalDetail) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "first_name", "last_name", "gender", "date_of_birth",
				"birth_place", "marital_status", "category", "aadhaar_number",
				"pan_number", "mobile", "personal_email", "father_name", "updated_at",
			}),
		}).
		Create(detail).Error
}

func (r *personalRepo) ListAll(ctx context.Context) ([]model.PersonalDetail, error) {
	var details []model.PersonalDetail
	err := r.db.WithContext(ctx).
		Order("first_name").
		Find(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}
