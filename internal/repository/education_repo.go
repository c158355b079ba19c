package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Devendra616/collectEmpData-sub000/internal/model"
)

// EducationRepository stores the education section.
type EducationRepository interface {
	GetByEmployee(ctx context.Context, employeeID string) (*model.EducationRecord, error)
	// Upsert replaces the entire entries list, never merges.
	Upsert(ctx context.Context, record *model.EducationRecord) error
}

type educationRepo struct {
	db *gorm.DB
}

// NewEducationRepo creates the GORM-backed EducationRepository.
func NewEducationRepo(db *gorm.DB) EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) GetByEmployee(ctx context.Context, employeeID string) (*model.EducationRecord, error) {
	var record model.EducationRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *educationRepo) Upsert(ctx context.Context, record *model.EducationRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"entries", "updated_at"}),
		}).
		Create(record).Error
}
