package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Devendra616/collectEmpData-sub000/internal/model"
)

// AddressRepository stores the address section.
type AddressRepository interface {
	GetByEmployee(ctx context.Context, employeeID string) (*model.AddressRecord, error)
	// Upsert replaces both addresses wholesale.
	Upsert(ctx context.Context, record *model.AddressRecord) error
}

type addressRepo struct {
	db *gorm.DB
}

// NewAddressRepo creates the GORM-backed AddressRepository.
func NewAddressRepo(db *gorm.DB) AddressRepository {
	return &addressRepo{db: db}
}

func (r *addressRepo) GetByEmployee(ctx context.Context, employeeID string) (*model.AddressRecord, error) {
	var record model.AddressRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *addressRepo) Upsert(ctx context.Context, record *model.AddressRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"addresses", "updated_at"}),
		}).
		Create(record).Error
}
