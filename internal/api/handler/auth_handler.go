package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Devendra616/collectEmpData-sub000/internal/dto"
	"github.com/Devendra616/collectEmpData-sub000/internal/service"
	"github.com/Devendra616/collectEmpData-sub000/pkg/response"
)

// AuthHandler serves the account endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register creates an employee account.
// POST /api/v1/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			response.ValidationFailed(c, verr.Fields)
			return
		}
		response.InternalError(c)
		return
	}

	// duplicate SAP ID is a soft outcome: 409 with a structured body,
	// not a bare error
	if result.AlreadyRegistered {
		c.JSON(http.StatusConflict, response.Response{
			Code:    11003,
			Message: "SAP ID already registered",
			Data:    result,
		})
		return
	}
	response.Created(c, result)
}

// Login authenticates with SAP ID and password.
// POST /api/v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "invalid SAP ID or password")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ChangePassword rotates the caller's password.
// PUT /api/v1/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), employeeID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			response.Error(c, http.StatusUnauthorized, 11002, "current password does not match")
		case errors.Is(err, service.ErrEmployeeNotFound):
			response.NotFound(c, 13001, "employee not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// Logout revokes the presented access token.
// POST /api/v1/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, expiresAt, ok := GetTokenRevocation(c)
	if !ok {
		response.Unauthorized(c, 10002, "not authenticated")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
