package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Devendra616/collectEmpData-sub000/config"
	"github.com/Devendra616/collectEmpData-sub000/internal/model"
	"github.com/Devendra616/collectEmpData-sub000/internal/repository"
	"github.com/Devendra616/collectEmpData-sub000/pkg/jwt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "unit-test-secret-0123456789",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
}

// newTestService wires the full service layer over mock repositories.
// Redis is nil, so logout is a no-op.
func newTestService() (*Service, *repository.Repository) {
	cfg := testConfig()
	repo := newMockRepository()
	svc := NewService(cfg, repo, jwt.NewManager(&cfg.Auth), nil, zap.NewNop())
	return svc, repo
}

// seedEmployee creates an account with the given password and returns it.
func seedEmployee(t *testing.T, repo *repository.Repository, sapID, password string, isAdmin bool) *model.Employee {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	e := &model.Employee{
		SapID:        sapID,
		Email:        sapID + "@bhfl.co.in",
		FirstName:    "Test",
		LastName:     "Employee",
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	}
	if err := repo.Employee.Create(context.Background(), e); err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return e
}

func validPersonal() model.PersonalDetail {
	return model.PersonalDetail{
		Title:         "Shri",
		FirstName:     "Ramesh",
		LastName:      "Kumar",
		Gender:        "Male",
		DateOfBirth:   model.NewDate(1990, time.May, 20),
		MaritalStatus: "Married",
		Category:      "General",
		AadhaarNumber: "234567890123",
		PanNumber:     "ABCDE1234F",
		Mobile:        "9876543210",
	}
}

func validEducation() []model.EducationEntry {
	return []model.EducationEntry{
		{
			Qualification:     "Graduation",
			Institution:       "NIT Raipur",
			BoardOrUniversity: "NIT",
			YearOfPassing:     2011,
			Percentage:        72.5,
		},
	}
}

func validFamily() []model.FamilyMember {
	return []model.FamilyMember{
		{
			Relationship: "Father",
			Title:        "Shri",
			FirstName:    "Suresh",
			DateOfBirth:  model.NewDate(1962, time.January, 2),
		},
		{
			Relationship: "Spouse",
			Title:        "Smt",
			FirstName:    "Meena",
			DateOfBirth:  model.NewDate(1992, time.August, 14),
		},
		{
			Relationship: "Child",
			Title:        "Master",
			FirstName:    "Arjun",
			Gender:       "Male",
			DateOfBirth:  model.NewDate(2018, time.March, 3),
		},
	}
}

func validAddresses() []model.AddressEntry {
	return []model.AddressEntry{
		{
			Type:         model.AddressPresent,
			AddressLine1: "Qtr 12/B, Township",
			City:         "Bhilai",
			District:     "Durg",
			State:        "Chhattisgarh",
			Pincode:      "490001",
		},
		{
			Type:         model.AddressPermanent,
			AddressLine1: "Village Post Khapri",
			City:         "Raipur",
			District:     "Raipur",
			State:        "Chhattisgarh",
			Pincode:      "492001",
		},
	}
}

func validEmployers() []model.WorkEmployer {
	return []model.WorkEmployer{
		{
			CompanyName: "Tata Steel",
			Designation: "Junior Engineer",
			Industry:    "Manufacturing",
			StartDate:   model.NewDate(2012, time.June, 1),
			EndDate:     model.NewDate(2016, time.February, 29),
		},
		{
			CompanyName: "BHFL",
			Designation: "Engineer",
			Industry:    "Public Sector",
			StartDate:   model.NewDate(2016, time.March, 1),
			IsCurrent:   true,
		},
	}
}
