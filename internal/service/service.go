package service

import (
	"go.uber.org/zap"

	"github.com/Devendra616/collectEmpData-sub000/config"
	"github.com/Devendra616/collectEmpData-sub000/internal/repository"
	"github.com/Devendra616/collectEmpData-sub000/pkg/jwt"
	"github.com/Devendra616/collectEmpData-sub000/pkg/redis"
)

// Service aggregates all business services.
type Service struct {
	Auth       AuthService
	Section    SectionService
	Submission SubmissionService
	Admin      AdminService
	Export     ExportService
}

// NewService wires the service layer.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	sections := NewSectionService(repo, logger)
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Section:    sections,
		Submission: NewSubmissionService(cfg, repo, sections, logger),
		Admin:      NewAdminService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
