package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Devendra616/collectEmpData-sub000/internal/dto"
)

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.Auth.Register(ctx, &dto.RegisterRequest{
		SapID:     "50012345",
		Email:     "ramesh.kumar@bhfl.co.in",
		FirstName: "Ramesh",
		LastName:  "Kumar",
		Password:  "secret-pass-1",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.AlreadyRegistered {
		t.Fatal("fresh registration reported as already registered")
	}
	if resp.Employee == nil || resp.Employee.SapID != "50012345" {
		t.Fatalf("unexpected employee in response: %+v", resp.Employee)
	}

	tokens, err := svc.Auth.Login(ctx, &dto.LoginRequest{SapID: "50012345", Password: "secret-pass-1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
	if tokens.Employee.SapID != "50012345" {
		t.Errorf("expected employee sap_id 50012345, got %s", tokens.Employee.SapID)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Auth.Register(ctx, &dto.RegisterRequest{
		SapID:     "5001234", // 7 digits
		Email:     "ramesh@gmail.com",
		FirstName: "Ramesh",
		Password:  "secret-pass-1",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["sap_id"]; !ok {
		t.Error("expected error on sap_id")
	}
	if _, ok := verr.Fields["email"]; !ok {
		t.Error("expected error on email (non-organizational domain)")
	}
}

func TestRegisterDuplicateIsSoft(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedEmployee(t, repo, "50012345", "old-password-1", false)

	resp, err := svc.Auth.Register(ctx, &dto.RegisterRequest{
		SapID:     "50012345",
		Email:     "another@bhfl.co.in",
		FirstName: "Other",
		Password:  "secret-pass-1",
	})
	if err != nil {
		t.Fatalf("duplicate registration must not error: %v", err)
	}
	if !resp.AlreadyRegistered {
		t.Error("expected AlreadyRegistered=true")
	}
	if resp.Employee != nil {
		t.Error("duplicate registration must not leak an employee record")
	}

	// the original credentials still work
	if _, err := svc.Auth.Login(ctx, &dto.LoginRequest{SapID: "50012345", Password: "old-password-1"}); err != nil {
		t.Errorf("original account no longer logs in: %v", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedEmployee(t, repo, "50012345", "secret-pass-1", false)

	if _, err := svc.Auth.Login(ctx, &dto.LoginRequest{SapID: "50012345", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Auth.Login(ctx, &dto.LoginRequest{SapID: "99999999", Password: "secret-pass-1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown SAP ID: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	seedEmployee(t, repo, "50012345", "secret-pass-1", false)
	seedEmployee(t, repo, "50099999", "admin-pass-1", true)

	if _, err := svc.Auth.AdminLogin(ctx, &dto.LoginRequest{SapID: "50012345", Password: "secret-pass-1"}); !errors.Is(err, ErrNotAdmin) {
		t.Errorf("expected ErrNotAdmin, got %v", err)
	}
	if _, err := svc.Auth.AdminLogin(ctx, &dto.LoginRequest{SapID: "50099999", Password: "admin-pass-1"}); err != nil {
		t.Errorf("admin login failed: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	emp := seedEmployee(t, repo, "50012345", "old-password-1", false)

	err := svc.Auth.ChangePassword(ctx, emp.EmployeeID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-password-1",
	})
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}

	err = svc.Auth.ChangePassword(ctx, emp.EmployeeID, &dto.ChangePasswordRequest{
		CurrentPassword: "old-password-1",
		NewPassword:     "new-password-1",
	})
	if err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if _, err := svc.Auth.Login(ctx, &dto.LoginRequest{SapID: "50012345", Password: "old-password-1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("old password still accepted after change")
	}
	if _, err := svc.Auth.Login(ctx, &dto.LoginRequest{SapID: "50012345", Password: "new-password-1"}); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}
