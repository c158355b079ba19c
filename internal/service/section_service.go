package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Devendra616/collectEmpData-sub000/internal/dto"
	"github.com/Devendra616/collectEmpData-sub000/internal/model"
	"github.com/Devendra616/collectEmpData-sub000/internal/repository"
	"github.com/Devendra616/collectEmpData-sub000/internal/validation"
)

// SectionService implements the section save protocol: authoritative
// validation, the submission-gate check, and whole-document upserts.
//
// Sections are independent documents; there is no cross-section transaction.
// A save touches exactly one document, and concurrent saves to the same
// section resolve last-write-wins. Both are deliberate.
type SectionService interface {
	Get(ctx context.Context, employeeID string, section model.Section) (*dto.SectionDataResponse, error)
	SavePersonal(ctx context.Context, employeeID string, req *dto.SavePersonalRequest) (*model.PersonalDetail, error)
	SaveEducation(ctx context.Context, employeeID string, req *dto.SaveEducationRequest) (*model.EducationRecord, error)
	SaveFamily(ctx context.Context, employeeID string, req *dto.SaveFamilyRequest) (*model.FamilyRecord, error)
	SaveAddress(ctx context.Context, employeeID string, req *dto.SaveAddressRequest) (*model.AddressRecord, error)
	SaveWork(ctx context.Context, employeeID string, req *dto.SaveWorkRequest) (*model.WorkExperienceRecord, error)
	// MissingSections lists sections with no saved document yet.
	MissingSections(ctx context.Context, employeeID string) ([]model.Section, error)
}

type sectionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSectionService creates the SectionService.
func NewSectionService(repo *repository.Repository, logger *zap.Logger) SectionService {
	return &sectionService{repo: repo, logger: logger}
}

func (s *sectionService) Get(ctx context.Context, employeeID string, section model.Section) (*dto.SectionDataResponse, error) {
	var (
		data interface{}
		err  error
	)

	switch section {
	case model.SectionPersonal:
		data, err = s.repo.Personal.GetByEmployee(ctx, employeeID)
	case model.SectionEducation:
		data, err = s.repo.Education.GetByEmployee(ctx, employeeID)
	case model.SectionFamily:
		data, err = s.repo.Family.GetByEmployee(ctx, employeeID)
	case model.SectionAddress:
		data, err = s.repo.Address.GetByEmployee(ctx, employeeID)
	case model.SectionWork:
		data, err = s.repo.Work.GetByEmployee(ctx, employeeID)
	default:
		return nil, ErrSectionNotFound
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		s.logger.Error("fetch section failed",
			zap.String("section", string(section)), zap.Error(err))
		return nil, err
	}

	return &dto.SectionDataResponse{Section: string(section), Data: data}, nil
}

// guard rejects the save when the employee is missing or has submitted.
func (s *sectionService) guard(ctx context.Context, employeeID string) error {
	employee, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("lookup employee failed", zap.Error(err))
		return err
	}
	if employee.IsSubmitted {
		return ErrAlreadySubmitted
	}
	return nil
}

func (s *sectionService) SavePersonal(ctx context.Context, employeeID string, req *dto.SavePersonalRequest) (*model.PersonalDetail, error) {
	if err := s.guard(ctx, employeeID); err != nil {
		return nil, err
	}

	detail := req.PersonalDetail
	if errs := validation.ValidatePersonal(&detail); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	detail.EmployeeID = employeeID
	if err := s.repo.Personal.Upsert(ctx, &detail); err != nil {
		s.logger.Error("upsert personal failed", zap.Error(err))
		return nil, err
	}
	return s.repo.Personal.GetByEmployee(ctx, employeeID)
}

func (s *sectionService) SaveEducation(ctx context.Context, employeeID string, req *dto.SaveEducationRequest) (*model.EducationRecord, error) {
	if err := s.guard(ctx, employeeID); err != nil {
		return nil, err
	}

	if errs := validation.ValidateEducation(req.Entries); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	record := &model.EducationRecord{
		EmployeeID: employeeID,
		Entries:    model.EducationEntries(req.Entries),
	}
	if err := s.repo.Education.Upsert(ctx, record); err != nil {
		s.logger.Error("upsert education failed", zap.Error(err))
		return nil, err
	}
	return s.repo.Education.GetByEmployee(ctx, employeeID)
}

func (s *sectionService) SaveFamily(ctx context.Context, employeeID string, req *dto.SaveFamilyRequest) (*model.FamilyRecord, error) {
	if err := s.guard(ctx, employeeID); err != nil {
		return nil, err
	}

	if errs := validation.ValidateFamily(req.Members); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	record := &model.FamilyRecord{
		EmployeeID: employeeID,
		Members:    model.FamilyMembers(req.Members),
	}
	if err := s.repo.Family.Upsert(ctx, record); err != nil {
		s.logger.Error("upsert family failed", zap.Error(err))
		return nil, err
	}
	return s.repo.Family.GetByEmployee(ctx, employeeID)
}

func (s *sectionService) SaveAddress(ctx context.Context, employeeID string, req *dto.SaveAddressRequest) (*model.AddressRecord, error) {
	if err := s.guard(ctx, employeeID); err != nil {
		return nil, err
	}

	if errs := validation.ValidateAddresses(req.Addresses); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	record := &model.AddressRecord{
		EmployeeID: employeeID,
		Addresses:  model.AddressEntries(req.Addresses),
	}
	if err := s.repo.Address.Upsert(ctx, record); err != nil {
		s.logger.Error("upsert address failed", zap.Error(err))
		return nil, err
	}
	return s.repo.Address.GetByEmployee(ctx, employeeID)
}

func (s *sectionService) SaveWork(ctx context.Context, employeeID string, req *dto.SaveWorkRequest) (*model.WorkExperienceRecord, error) {
	if err := s.guard(ctx, employeeID); err != nil {
		return nil, err
	}

	if errs := validation.ValidateWork(req.IsWorking, req.Employers); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	// derive durations server-side; client-supplied values are ignored
	employers := make(model.WorkEmployers, len(req.Employers))
	today := validation.Today()
	for i, e := range req.Employers {
		end := e.EndDate
		if e.IsCurrent || end.IsZero() {
			end = today
		}
		e.Duration = validation.DurationBetween(e.StartDate, end)
		employers[i] = e
	}

	record := &model.WorkExperienceRecord{
		EmployeeID: employeeID,
		IsWorking:  req.IsWorking,
		Employers:  employers,
	}
	if err := s.repo.Work.Upsert(ctx, record); err != nil {
		s.logger.Error("upsert work experience failed", zap.Error(err))
		return nil, err
	}
	return s.repo.Work.GetByEmployee(ctx, employeeID)
}

func (s *sectionService) MissingSections(ctx context.Context, employeeID string) ([]model.Section, error) {
	var missing []model.Section
	for _, section := range model.SectionOrder {
		_, err := s.Get(ctx, employeeID, section)
		if errors.Is(err, ErrSectionNotFound) {
			missing = append(missing, section)
			continue
		}
		if err != nil {
			return nil, err
		}
	}
	return missing, nil
}
