package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Devendra616/collectEmpData-sub000/config"
	"github.com/Devendra616/collectEmpData-sub000/internal/dto"
	"github.com/Devendra616/collectEmpData-sub000/internal/model"
	"github.com/Devendra616/collectEmpData-sub000/internal/repository"
)

// SubmissionService is the one-way submission gate. The normal flow can only
// flip not-submitted → submitted; only the admin path can flip it back.
type SubmissionService interface {
	Status(ctx context.Context, employeeID string) (*dto.SubmissionStatusResponse, error)
	Submit(ctx context.Context, employeeID string) (*dto.SubmissionStatusResponse, error)
}

type submissionService struct {
	cfg      *config.Config
	repo     *repository.Repository
	sections SectionService
	logger   *zap.Logger
}

// NewSubmissionService creates the SubmissionService.
func NewSubmissionService(cfg *config.Config, repo *repository.Repository, sections SectionService, logger *zap.Logger) SubmissionService {
	return &submissionService{cfg: cfg, repo: repo, sections: sections, logger: logger}
}

func (s *submissionService) Status(ctx context.Context, employeeID string) (*dto.SubmissionStatusResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("lookup employee failed", zap.Error(err))
		return nil, err
	}

	return statusResponse(employee), nil
}

func statusResponse(employee *model.Employee) *dto.SubmissionStatusResponse {
	resp := &dto.SubmissionStatusResponse{IsSubmitted: employee.IsSubmitted}
	if employee.SubmittedAt != nil {
		resp.SubmittedAt = employee.SubmittedAt.Format(time.RFC3339)
	}
	return resp
}

func (s *submissionService) Submit(ctx context.Context, employeeID string) (*dto.SubmissionStatusResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("lookup employee failed", zap.Error(err))
		return nil, err
	}

	// repeated submit is a no-op
	if employee.IsSubmitted {
		return statusResponse(employee), nil
	}

	if s.cfg.Submission.RequireComplete {
		missing, err := s.sections.MissingSections(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			return nil, &IncompleteSectionsError{Missing: missing}
		}
	}

	if err := s.repo.Employee.SetSubmission(ctx, employeeID, true, employee.Version); err != nil {
		s.logger.Error("flip submission failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("form submitted", zap.String("sap_id", employee.SapID))

	// re-read so the response carries the stamped submission time
	employee, err = s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		s.logger.Error("lookup employee failed", zap.Error(err))
		return nil, err
	}
	return statusResponse(employee), nil
}
