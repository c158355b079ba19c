package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Devendra616/collectEmpData-sub000/internal/model"
)

// WorkRepository stores the work-experience section.
type WorkRepository interface {
	GetByEmployee(ctx context.Context, employeeID string) (*model.WorkExperienceRecord, error)
	// Upsert replaces the entire employers list, never merges.
	Upsert(ctx context.Context, record *model.WorkExperienceRecord) error
}

type workRepo struct {
	db *gorm.DB
}

// NewWorkRepo creates the GORM-backed WorkRepository.
func NewWorkRepo(db *gorm.DB) WorkRepository {
	return &workRepo{db: db}
}

func (r *workRepo) GetByEmployee(ctx context.Context, employeeID string) (*model.WorkExperienceRecord, error) {
	var record model.WorkExperienceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *workRepo) Upsert(ctx context.Context, record *model.WorkExperienceRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_working", "employers", "updated_at"}),
		}).
		Create(record).Error
}
