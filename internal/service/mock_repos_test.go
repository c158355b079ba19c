package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Devendra616/collectEmpData-sub000/internal/model"
	"github.com/Devendra616/collectEmpData-sub000/internal/repository"
	pkgerrors "github.com/Devendra616/collectEmpData-sub000/pkg/errors"
)

// ── mock EmployeeRepository ──

type mockEmployeeRepo struct {
	byID    map[string]*model.Employee
	bySapID map[string]*model.Employee
	nextID  int
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{
		byID:    make(map[string]*model.Employee),
		bySapID: make(map[string]*model.Employee),
	}
}

func (m *mockEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	if e.EmployeeID == "" {
		m.nextID++
		e.EmployeeID = "emp-" + e.SapID
	}
	if e.Version == 0 {
		e.Version = 1
	}
	m.byID[e.EmployeeID] = e
	m.bySapID[e.SapID] = e
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	if e, ok := m.byID[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetBySapID(_ context.Context, sapID string) (*model.Employee, error) {
	if e, ok := m.bySapID[sapID]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range m.byID {
		if e.Email == email {
			copied := *e
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) UpdatePassword(_ context.Context, id, hash string) error {
	e, ok := m.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.PasswordHash = hash
	return nil
}

func (m *mockEmployeeRepo) SetSubmission(_ context.Context, id string, isSubmitted bool, version int) error {
	e, ok := m.byID[id]
	if !ok || e.Version != version {
		return pkgerrors.ErrOptimisticLock
	}
	e.IsSubmitted = isSubmitted
	e.SubmittedAt = nil
	if isSubmitted {
		now := time.Now()
		e.SubmittedAt = &now
	}
	e.Version = version + 1
	return nil
}

func (m *mockEmployeeRepo) List(_ context.Context, filters *repository.EmployeeListFilters, offset, limit int) ([]model.Employee, int64, error) {
	var all []model.Employee
	for _, e := range m.byID {
		if e.IsAdmin {
			continue
		}
		if filters != nil && filters.Submitted != nil && e.IsSubmitted != *filters.Submitted {
			continue
		}
		all = append(all, *e)
	}
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockEmployeeRepo) ListAll(_ context.Context) ([]model.Employee, error) {
	var all []model.Employee
	for _, e := range m.byID {
		if !e.IsAdmin {
			all = append(all, *e)
		}
	}
	return all, nil
}

// ── mock section repositories ──

type mockPersonalRepo struct {
	docs map[string]*model.PersonalDetail
}

func newMockPersonalRepo() *mockPersonalRepo {
	return &mockPersonalRepo{docs: make(map[string]*model.PersonalDetail)}
}

func (m *mockPersonalRepo) GetByEmployee(_ context.Context, employeeID string) (*model.PersonalDetail, error) {
	if d, ok := m.docs[employeeID]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonalRepo) Upsert(_ context.Context, d *model.PersonalDetail) error {
	copied := *d
	m.docs[d.EmployeeID] = &copied
	return nil
}

func (m *mockPersonalRepo) ListAll(_ context.Context) ([]model.PersonalDetail, error) {
	var all []model.PersonalDetail
	for _, d := range m.docs {
		all = append(all, *d)
	}
	return all, nil
}

type mockEducationRepo struct {
	docs map[string]*model.EducationRecord
}

func newMockEducationRepo() *mockEducationRepo {
	return &mockEducationRepo{docs: make(map[string]*model.EducationRecord)}
}

func (m *mockEducationRepo) GetByEmployee(_ context.Context, employeeID string) (*model.EducationRecord, error) {
	if d, ok := m.docs[employeeID]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEducationRepo) Upsert(_ context.Context, r *model.EducationRecord) error {
	copied := *r
	m.docs[r.EmployeeID] = &copied
	return nil
}

type mockFamilyRepo struct {
	docs map[string]*model.FamilyRecord
}

func newMockFamilyRepo() *mockFamilyRepo {
	return &mockFamilyRepo{docs: make(map[string]*model.FamilyRecord)}
}

func (m *mockFamilyRepo) GetByEmployee(_ context.Context, employeeID string) (*model.FamilyRecord, error) {
	if d, ok := m.docs[employeeID]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFamilyRepo) Upsert(_ context.Context, r *model.FamilyRecord) error {
	copied := *r
	m.docs[r.EmployeeID] = &copied
	return nil
}

type mockAddressRepo struct {
	docs map[string]*model.AddressRecord
}

func newMockAddressRepo() *mockAddressRepo {
	return &mockAddressRepo{docs: make(map[string]*model.AddressRecord)}
}

func (m *mockAddressRepo) GetByEmployee(_ context.Context, employeeID string) (*model.AddressRecord, error) {
	if d, ok := m.docs[employeeID]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAddressRepo) Upsert(_ context.Context, r *model.AddressRecord) error {
	copied := *r
	m.docs[r.EmployeeID] = &copied
	return nil
}

type mockWorkRepo struct {
	docs map[string]*model.WorkExperienceRecord
}

func newMockWorkRepo() *mockWorkRepo {
	return &mockWorkRepo{docs: make(map[string]*model.WorkExperienceRecord)}
}

func (m *mockWorkRepo) GetByEmployee(_ context.Context, employeeID string) (*model.WorkExperienceRecord, error) {
	if d, ok := m.docs[employeeID]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWorkRepo) Upsert(_ context.Context, r *model.WorkExperienceRecord) error {
	copied := *r
	m.docs[r.EmployeeID] = &copied
	return nil
}

// newMockRepository bundles fresh mocks into a Repository.
func newMockRepository() *repository.Repository {
	return &repository.Repository{
		Employee:  newMockEmployeeRepo(),
		Personal:  newMockPersonalRepo(),
		Education: newMockEducationRepo(),
		Family:    newMockFamilyRepo(),
		Address:   newMockAddressRepo(),
		Work:      newMockWorkRepo(),
	}
}
