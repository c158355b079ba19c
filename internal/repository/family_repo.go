package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Devendra616/collectEmpData-sub000/internal/model"
)

// FamilyRepository stores the family section.
type FamilyRepository interface {
	GetByEmployee(ctx context.Context, employeeID string) (*model.FamilyRecord, error)
	// Upsert replaces the entire members list, never merges.
	Upsert(ctx context.Context, record *model.FamilyRecord) error
}

type familyRepo struct {
	db *gorm.DB
}

// NewFamilyRepo creates the GORM-backed FamilyRepository.
func NewFamilyRepo(db *gorm.DB) FamilyRepository {
	return &familyRepo{db: db}
}

func (r *familyRepo) GetByEmployee(ctx context.Context, employeeID string) (*model.FamilyRecord, error) {
	var record model.FamilyRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *familyRepo) Upsert(ctx context.Context, record *model.FamilyRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"members", "updated_at"}),
		}).
		Create(record).Error
}
