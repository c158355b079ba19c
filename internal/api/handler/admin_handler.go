package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Devendra616/collectEmpData-sub000/internal/dto"
	"github.com/Devendra616/collectEmpData-sub000/internal/service"
	"github.com/Devendra616/collectEmpData-sub000/pkg/response"
)

// AdminHandler serves the admin override namespace.
type AdminHandler struct {
	adminSvc service.AdminService
	authSvc  service.AuthService
}

// NewAdminHandler creates the AdminHandler.
func NewAdminHandler(adminSvc service.AdminService, authSvc service.AuthService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, authSvc: authSvc}
}

// Login authenticates an admin account.
// POST /api/v1/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.authSvc.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, 11001, "invalid SAP ID or password")
		case errors.Is(err, service.ErrNotAdmin):
			response.Forbidden(c, 10003, "administrator access required")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// ListEmployees returns the paginated employee roster.
// GET /api/v1/admin/employees?page=1&page_size=20&submitted=true&keyword=xx
func (h *AdminHandler) ListEmployees(c *gin.Context) {
	var req dto.EmployeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	list, total, err := h.adminSvc.ListEmployees(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetEmployee returns one employee with every saved section document.
// GET /api/v1/admin/employees/:id
func (h *AdminHandler) GetEmployee(c *gin.Context) {
	bundle, err := h.adminSvc.GetEmployeeBundle(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, 13001, "employee not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, bundle)
}

// ResetPassword sets a temporary password for one employee.
// POST /api/v1/admin/employees/:id/reset-password
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	result, err := h.adminSvc.ResetPassword(c.Request.Context(), c.Param("id"))
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

// ResetAllPasswords sets a temporary password for every non-admin account.
// POST /api/v1/admin/reset-passwords
func (h *AdminHandler) ResetAllPasswords(c *gin.Context) {
	result, err := h.adminSvc.ResetAllPasswords(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// SetSubmission flips one employee's submission flag in either direction.
// PUT /api/v1/admin/employees/:id/submission
func (h *AdminHandler) SetSubmission(c *gin.Context) {
	var req dto.SetSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "is_submitted is required")
		return
	}

	if err := h.adminSvc.SetSubmission(c.Request.Context(), c.Param("id"), *req.IsSubmitted); err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, 13001, "employee not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
