package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Devendra616/collectEmpData-sub000/internal/service"
	"github.com/Devendra616/collectEmpData-sub000/pkg/response"
)

// SubmissionHandler serves the submission gate.
type SubmissionHandler struct {
	submissionSvc service.SubmissionService
}

// NewSubmissionHandler creates the SubmissionHandler.
func NewSubmissionHandler(submissionSvc service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionSvc: submissionSvc}
}

// Status reports the caller's submission state.
// GET /api/v1/submission-status
func (h *SubmissionHandler) Status(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	result, err := h.submissionSvc.Status(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, 13001, "employee not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Submit flips the caller's form to submitted. One-way; idempotent.
// POST /api/v1/submit
func (h *SubmissionHandler) Submit(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	result, err := h.submissionSvc.Submit(c.Request.Context(), employeeID)
	if err != nil {
		var ierr *service.IncompleteSectionsError
		switch {
		case errors.As(err, &ierr):
			response.Error(c, http.StatusUnprocessableEntity, 12003, ierr.Error())
		case errors.Is(err, service.ErrEmployeeNotFound):
			response.NotFound(c, 13001, "employee not found")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}
