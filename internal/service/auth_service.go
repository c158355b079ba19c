package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Devendra616/collectEmpData-sub000/config"
	"github.com/Devendra616/collectEmpData-sub000/internal/dto"
	"github.com/Devendra616/collectEmpData-sub000/internal/model"
	"github.com/Devendra616/collectEmpData-sub000/internal/repository"
	"github.com/Devendra616/collectEmpData-sub000/internal/validation"
	"github.com/Devendra616/collectEmpData-sub000/pkg/jwt"
	"github.com/Devendra616/collectEmpData-sub000/pkg/redis"
)

// AuthService handles account lifecycle and token issuance.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// AdminLogin is Login restricted to admin accounts.
	AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	ChangePassword(ctx context.Context, employeeID string, req *dto.ChangePasswordRequest) error
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates the AuthService.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	// 1. shared business rules on identity fields
	errs := validation.FieldErrors{}
	if !validation.ValidSapID(req.SapID) {
		errs.Add("sap_id", "SAP ID must be exactly 8 digits")
	}
	if !validation.ValidOrgEmail(req.Email) {
		errs.Add("email", "email must belong to the organizational domain")
	}
	if !errs.Empty() {
		return nil, &ValidationError{Fields: errs}
	}

	// 2. duplicate SAP ID is a soft outcome, not an error
	if _, err := s.repo.Employee.GetBySapID(ctx, req.SapID); err == nil {
		return &dto.RegisterResponse{AlreadyRegistered: true}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup by SAP ID failed", zap.Error(err))
		return nil, err
	}

	// 3. create the account
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, err
	}

	employee := &model.Employee{
		SapID:        req.SapID,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
	}
	if err := s.repo.Employee.Create(ctx, employee); err != nil {
		s.logger.Error("create employee failed", zap.Error(err))
		return nil, err
	}

	resp := toEmployeeResponse(employee)
	return &dto.RegisterResponse{Employee: &resp}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return s.login(ctx, req, false)
}

func (s *authService) AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return s.login(ctx, req, true)
}

func (s *authService) login(ctx context.Context, req *dto.LoginRequest, wantAdmin bool) (*dto.TokenResponse, error) {
	employee, err := s.repo.Employee.GetBySapID(ctx, req.SapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("lookup employee failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if wantAdmin && !employee.IsAdmin {
		return nil, ErrNotAdmin
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(employee.EmployeeID, employee.SapID, employee.IsAdmin)
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(employee.EmployeeID, employee.SapID, employee.IsAdmin)
	if err != nil {
		s.logger.Error("generate refresh token failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		Employee:     toEmployeeResponse(employee),
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, employeeID string, req *dto.ChangePasswordRequest) error {
	employee, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("lookup employee failed", zap.Error(err))
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return err
	}

	return s.repo.Employee.UpdatePassword(ctx, employeeID, string(hash))
}

// Logout revokes the presented access token until its natural expiry.
// Without Redis the token simply ages out.
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

// toEmployeeResponse redacts an employee row for API responses.
func toEmployeeResponse(e *model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:          e.EmployeeID,
		SapID:       e.SapID,
		Email:       e.Email,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		IsSubmitted: e.IsSubmitted,
		IsAdmin:     e.IsAdmin,
	}
}
