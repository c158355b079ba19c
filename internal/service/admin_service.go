package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Devendra616/collectEmpData-sub000/internal/dto"
	"github.com/Devendra616/collectEmpData-sub000/internal/repository"
)

// AdminService is the out-of-band administrative surface: roster queries,
// credential resets, and the only path that can reopen a submitted form.
type AdminService interface {
	ListEmployees(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error)
	GetEmployeeBundle(ctx context.Context, employeeID string) (*dto.EmployeeBundleResponse, error)
	ResetPassword(ctx context.Context, employeeID string) (*dto.ResetPasswordResponse, error)
	ResetAllPasswords(ctx context.Context) (*dto.ResetAllPasswordsResponse, error)
	SetSubmission(ctx context.Context, employeeID string, isSubmitted bool) error
}

type adminService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAdminService creates the AdminService.
func NewAdminService(repo *repository.Repository, logger *zap.Logger) AdminService {
	return &adminService{repo: repo, logger: logger}
}

func (s *adminService) ListEmployees(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error) {
	filters := &repository.EmployeeListFilters{
		Submitted: req.Submitted,
		Keyword:   req.Keyword,
	}

	employees, total, err := s.repo.Employee.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		result = append(result, toEmployeeResponse(&employees[i]))
	}
	return result, total, nil
}

func (s *adminService) GetEmployeeBundle(ctx context.Context, employeeID string) (*dto.EmployeeBundleResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("lookup employee failed", zap.Error(err))
		return nil, err
	}

	bundle := &dto.EmployeeBundleResponse{Employee: toEmployeeResponse(employee)}

	// unsaved sections stay nil; any other fetch error aborts
	if p, err := s.repo.Personal.GetByEmployee(ctx, employeeID); err == nil {
		bundle.Personal = p
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if e, err := s.repo.Education.GetByEmployee(ctx, employeeID); err == nil {
		bundle.Education = e
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if f, err := s.repo.Family.GetByEmployee(ctx, employeeID); err == nil {
		bundle.Family = f
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if a, err := s.repo.Address.GetByEmployee(ctx, employeeID); err == nil {
		bundle.Address = a
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if w, err := s.repo.Work.GetByEmployee(ctx, employeeID); err == nil {
		bundle.Work = w
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return bundle, nil
}

func (s *adminService) ResetPassword(ctx context.Context, employeeID string) (*dto.ResetPasswordResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("lookup employee failed", zap.Error(err))
		return nil, err
	}

	tempPwd, err := generateTempPassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPwd), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Employee.UpdatePassword(ctx, employeeID, string(hash)); err != nil {
		s.logger.Error("update password failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("password reset by admin", zap.String("sap_id", employee.SapID))
	return &dto.ResetPasswordResponse{SapID: employee.SapID, TempPassword: tempPwd}, nil
}

func (s *adminService) ResetAllPasswords(ctx context.Context) (*dto.ResetAllPasswordsResponse, error) {
	employees, err := s.repo.Employee.ListAll(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.ResetAllPasswordsResponse{}
	for i := range employees {
		one, err := s.ResetPassword(ctx, employees[i].EmployeeID)
		if err != nil {
			return nil, err
		}
		resp.Passwords = append(resp.Passwords, *one)
	}
	resp.Count = len(resp.Passwords)

	s.logger.Info("bulk password reset", zap.Int("count", resp.Count))
	return resp, nil
}

func (s *adminService) SetSubmission(ctx context.Context, employeeID string, isSubmitted bool) error {
	employee, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("lookup employee failed", zap.Error(err))
		return err
	}

	if employee.IsSubmitted == isSubmitted {
		return nil
	}

	if err := s.repo.Employee.SetSubmission(ctx, employeeID, isSubmitted, employee.Version); err != nil {
		s.logger.Error("flip submission failed", zap.Error(err))
		return err
	}

	s.logger.Info("submission flag changed by admin",
		zap.String("sap_id", employee.SapID),
		zap.Bool("is_submitted", isSubmitted),
	)
	return nil
}

const tempPwdCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

// generateTempPassword builds a 10-character random password from an
// unambiguous charset.
func generateTempPassword() (string, error) {
	buf := make([]byte, 10)
	max := big.NewInt(int64(len(tempPwdCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = tempPwdCharset[n.Int64()]
	}
	return string(buf), nil
}
