package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Devendra616/collectEmpData-sub000/internal/dto"
	"github.com/Devendra616/collectEmpData-sub000/internal/model"
)

func TestSavePersonalRoundTrip(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	emp := seedEmployee(t, repo, "50012345", "secret-pass-1", false)

	saved, err := svc.Section.SavePersonal(ctx, emp.EmployeeID, &dto.SavePersonalRequest{
		PersonalDetail: validPersonal(),
	})
	if err != nil {
		t.Fatalf("SavePersonal failed: %v", err)
	}
	if saved.EmployeeID != emp.EmployeeID {
		t.Errorf("expected owner %s, got %s", emp.EmployeeID, saved.EmployeeID)
	}

	resp, err := svc.Section.Get(ctx, emp.EmployeeID, model.SectionPersonal)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	got, ok := resp.Data.(*model.PersonalDetail)
	if !ok {
		t.Fatalf("unexpected payload type %T", resp.Data)
	}
	if got.FirstName != "Ramesh" || got.AadhaarNumber != "234567890123" {
		t.Errorf("round trip lost data: %+v", got)
	}
}

func TestGetUnsavedSection(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	emp := seedEmployee(t, repo, "50012345", "secret-pass-1", false)

	if _, err := svc.Section.Get(ctx, emp.EmployeeID, model.SectionEducation); !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("expected ErrSectionNotFound for unsaved section, got %v", err)
	}
}

func TestSavePersonalValidationFailureWritesNothing(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	emp := seedEmployee(t, repo, "50012345", "secret-pass-1", false)

	bad := validPersonal()
	bad.AadhaarNumber = "123456789012" // starts with 1
	_, err := svc.Section.SavePersonal(ctx, emp.EmployeeID, &dto.SavePersonalRequest{PersonalDetail: bad})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["aadhaar_number"]; !ok {
		t.Errorf("expected error keyed on aadhaar_number, got %v", verr.Fields)
	}

	if _, err := svc.Section.Get(ctx, emp.EmployeeID, model.SectionPersonal); !errors.Is(err, ErrSectionNotFound) {
		t.Error("rejected save must not persist anything")
	}
}

func TestSaveFamilyWholeListReplace(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	emp := seedEmployee(t, repo, "50012345", "secret-pass-1", false)

	if _, err := svc.Section.SaveFamily(ctx, emp.EmployeeID, &dto.SaveFamilyRequest{Members: validFamily()}); err != nil {
		t.Fatalf("first SaveFamily failed: %v", err)
	}

	// second save with one member replaces the whole list
	one := validFamily()[:1]
	saved, err := svc.Section.SaveFamily(ctx, emp.EmployeeID, &dto.SaveFamilyRequest{Members: one})
	if err != nil {
		t.Fatalf("second SaveFamily failed: %v", err)
	}
	if len(saved.Members) != 1 {
		t.Fatalf("expected 1 member after replace, got %d", len(saved.Members))
	}
	if saved.Members[0].Relationship != "Father" {
		t.Errorf("unexpected surviving member: %+v", saved.Members[0])
	}
}

func TestSaveFamilyIndexedErrors(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	emp := seedEmployee(t, repo, "50012345", "secret-pass-1", false)

	members := validFamily()
	members[1].Title = "Dr" // not permitted for Spouse
	members[2].Gender = "" // required for Child

	_, err := svc.Section.SaveFamily(ctx, emp.EmployeeID, &dto.SaveFamilyRequest{Members: members})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["family[1].title"]; !ok {
		t.Errorf("expected family[1].title key, got %v", verr.Fields)
	}
	if _, ok := verr.Fields["family[2].gender"]; !ok {
		t.Errorf("expected family[2].gender key, got %v", verr.Fields)
	}
}

func TestSaveWorkDerivesDurations(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	emp := seedEmployee(t, repo, "50012345", "secret-pass-1", false)

	employers := []model.WorkEmployer{
		{
			CompanyName: "Tata Steel",
			Designation: "Junior Engineer",
			Industry:    "Manufacturing",
			StartDate:   model.NewDate(2020, 1, 15),
			EndDate:     model.NewDate(2022, 3, 10),
			// a bogus client-side value the server must overwrite
			Duration: model.Duration{Years: 99, Months: 99, Days: 99},
		},
	}

	saved, err := svc.Section.SaveWork(ctx, emp.EmployeeID, &dto.SaveWorkRequest{
		IsWorking: true,
		Employers: employers,
	})
	if err != nil {
		t.Fatalf("SaveWork failed: %v", err)
	}

	d := saved.Employers[0].Duration
	if d.Years != 2 || d.Months != 1 || d.Days != 23 {
		t.Errorf("expected duration 2y 1m 23d, got %dy %dm %dd", d.Years, d.Months, d.Days)
	}
}

func TestSaveWorkNotWorkingNoEmployers(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	emp := seedEmployee(t, repo, "50012345", "secret-pass-1", false)

	saved, err := svc.Section.SaveWork(ctx, emp.EmployeeID, &dto.SaveWorkRequest{IsWorking: false})
	if err != nil {
		t.Fatalf("SaveWork failed: %v", err)
	}
	if saved.IsWorking || len(saved.Employers) != 0 {
		t.Errorf("expected empty non-working record, got %+v", saved)
	}
}

func TestSaveRejectedAfterSubmission(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	emp := seedEmployee(t, repo, "50012345", "secret-pass-1", false)

	original := validPersonal()
	if _, err := svc.Section.SavePersonal(ctx, emp.EmployeeID, &dto.SavePersonalRequest{PersonalDetail: original}); err != nil {
		t.Fatalf("SavePersonal failed: %v", err)
	}
	if _, err := svc.Submission.Submit(ctx, emp.EmployeeID); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	changed := validPersonal()
	changed.FirstName = "Changed"
	_, err := svc.Section.SavePersonal(ctx, emp.EmployeeID, &dto.SavePersonalRequest{PersonalDetail: changed})
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}

	// the stored document is untouched
	resp, err := svc.Section.Get(ctx, emp.EmployeeID, model.SectionPersonal)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got := resp.Data.(*model.PersonalDetail); got.FirstName != "Ramesh" {
		t.Errorf("submitted data was modified: %+v", got)
	}
}

func TestMissingSections(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	emp := seedEmployee(t, repo, "50012345", "secret-pass-1", false)

	missing, err := svc.Section.MissingSections(ctx, emp.EmployeeID)
	if err != nil {
		t.Fatalf("MissingSections failed: %v", err)
	}
	if len(missing) != len(model.SectionOrder) {
		t.Fatalf("expected all %d sections missing, got %d", len(model.SectionOrder), len(missing))
	}

	if _, err := svc.Section.SavePersonal(ctx, emp.EmployeeID, &dto.SavePersonalRequest{PersonalDetail: validPersonal()}); err != nil {
		t.Fatalf("SavePersonal failed: %v", err)
	}

	missing, err = svc.Section.MissingSections(ctx, emp.EmployeeID)
	if err != nil {
		t.Fatalf("MissingSections failed: %v", err)
	}
	if len(missing) != len(model.SectionOrder)-1 {
		t.Errorf("expected %d sections missing, got %v", len(model.SectionOrder)-1, missing)
	}
	for _, s := range missing {
		if s == model.SectionPersonal {
			t.Error("personal still reported missing after save")
		}
	}
}
