package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Devendra616/collectEmpData-sub000/internal/dto"
	"github.com/Devendra616/collectEmpData-sub000/internal/model"
	"github.com/Devendra616/collectEmpData-sub000/internal/service"
	"github.com/Devendra616/collectEmpData-sub000/pkg/response"
)

// SectionHandler serves the per-section form endpoints. The owning
// employee always comes from the bearer token.
type SectionHandler struct {
	sectionSvc service.SectionService
}

// NewSectionHandler creates the SectionHandler.
func NewSectionHandler(sectionSvc service.SectionService) *SectionHandler {
	return &SectionHandler{sectionSvc: sectionSvc}
}

// Get returns a fetch handler for one section.
// GET /api/v1/{personal|education|family|address|work-experience}
func (h *SectionHandler) Get(section model.Section) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID, ok := MustGetEmployeeID(c)
		if !ok {
			return
		}

		result, err := h.sectionSvc.Get(c.Request.Context(), employeeID, section)
		if err != nil {
			if errors.Is(err, service.ErrSectionNotFound) {
				response.NotFound(c, 12001, "section not saved yet")
				return
			}
			response.InternalError(c)
			return
		}

		response.OK(c, result)
	}
}

// SavePersonal replaces the personal-details document.
// POST /api/v1/personal
func (h *SectionHandler) SavePersonal(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.SavePersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.sectionSvc.SavePersonal(c.Request.Context(), employeeID, &req)
	if err != nil {
		h.handleSaveError(c, err)
		return
	}
	response.OK(c, result)
}

// SaveEducation replaces the education entry list.
// POST /api/v1/education
func (h *SectionHandler) SaveEducation(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.SaveEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.sectionSvc.SaveEducation(c.Request.Context(), employeeID, &req)
	if err != nil {
		h.handleSaveError(c, err)
		return
	}
	response.OK(c, result)
}

// SaveFamily replaces the family member list.
// POST /api/v1/family
func (h *SectionHandler) SaveFamily(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.SaveFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.sectionSvc.SaveFamily(c.Request.Context(), employeeID, &req)
	if err != nil {
		h.handleSaveError(c, err)
		return
	}
	response.OK(c, result)
}

// SaveAddress replaces both addresses.
// POST /api/v1/address
func (h *SectionHandler) SaveAddress(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.SaveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.sectionSvc.SaveAddress(c.Request.Context(), employeeID, &req)
	if err != nil {
		h.handleSaveError(c, err)
		return
	}
	response.OK(c, result)
}

// SaveWork replaces the work-experience document.
// POST /api/v1/work-experience
func (h *SectionHandler) SaveWork(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.SaveWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.sectionSvc.SaveWork(c.Request.Context(), employeeID, &req)
	if err != nil {
		h.handleSaveError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *SectionHandler) handleSaveError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationFailed(c, verr.Fields)
	case errors.Is(err, service.ErrAlreadySubmitted):
		response.Error(c, http.StatusConflict, 12002, "form already submitted, sections are read-only")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 13001, "employee not found")
	default:
		response.InternalError(c)
	}
}
