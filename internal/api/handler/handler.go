package handler

import "github.com/Devendra616/collectEmpData-sub000/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth       *AuthHandler
	Section    *SectionHandler
	Submission *SubmissionHandler
	Admin      *AdminHandler
	Export     *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Section:    NewSectionHandler(svc.Section),
		Submission: NewSubmissionHandler(svc.Submission),
		Admin:      NewAdminHandler(svc.Admin, svc.Auth),
		Export:     NewExportHandler(svc.Export),
	}
}
