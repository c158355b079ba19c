package validation

import (
	"testing"
	"time"

	"github.com/Devendra616/collectEmpData-sub000/internal/model"
)

func validPersonal() *model.PersonalDetail {
	return &model.PersonalDetail{
		Title:         "Shri",
		FirstName:     "Ramesh",
		LastName:      "Kumar",
		Gender:        "Male",
		DateOfBirth:   model.NewDate(1990, time.May, 12),
		MaritalStatus: "Married",
		Category:      "General",
		AadhaarNumber: "234567890123",
		PanNumber:     "ABCDE1234F",
		Mobile:        "9876543210",
		PersonalEmail: "ramesh@example.com",
	}
}

func TestValidatePersonal_Valid(t *testing.T) {
	if errs := ValidatePersonal(validPersonal()); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidatePersonal_Underage(t *testing.T) {
	p := validPersonal()
	today := Today()
	p.DateOfBirth = model.Date{Time: today.AddDate(-18, 0, 1)} // one day short of 18

	errs := ValidatePersonal(p)
	if errs == nil {
		t.Fatal("expected an error for an underage employee")
	}
	if _, ok := errs["date_of_birth"]; !ok {
		t.Errorf("expected error keyed on date_of_birth, got %v", errs)
	}
}

func TestValidatePersonal_FutureDOB(t *testing.T) {
	p := validPersonal()
	p.DateOfBirth = model.Date{Time: Today().AddDate(1, 0, 0)}

	if errs := ValidatePersonal(p); errs == nil || errs["date_of_birth"] == "" {
		t.Errorf("expected future DOB to be rejected, got %v", errs)
	}
}

func TestValidatePersonal_BadAadhaar(t *testing.T) {
	p := validPersonal()
	p.AadhaarNumber = "134567890123"

	if errs := ValidatePersonal(p); errs == nil || errs["aadhaar_number"] == "" {
		t.Errorf("expected aadhaar starting with 1 to be rejected, got %v", errs)
	}
}

func TestValidateEducation_IndexedKeys(t *testing.T) {
	entries := []model.EducationEntry{
		{Qualification: "Graduation", Institution: "Govt College", BoardOrUniversity: "RTU", YearOfPassing: 2012, Percentage: 71.5},
		{Qualification: "Graduation", Institution: "", BoardOrUniversity: "RTU", YearOfPassing: 2015, Percentage: 68},
	}

	errs := ValidateEducation(entries)
	if errs == nil {
		t.Fatal("expected errors")
	}
	if _, ok := errs["education[1].institution"]; !ok {
		t.Errorf("expected index-qualified key education[1].institution, got %v", errs)
	}
	for key := range errs {
		if key == "education[0].institution" {
			t.Error("valid first entry should not carry errors")
		}
	}
}

func TestValidateEducation_PercentageBounds(t *testing.T) {
	entry := func(pct float64) []model.EducationEntry {
		return []model.EducationEntry{{
			Qualification: "Graduation", Institution: "Govt College",
			BoardOrUniversity: "RTU", YearOfPassing: 2012, Percentage: pct,
		}}
	}

	for _, pct := range []float64{0, -1, 100.5} {
		errs := ValidateEducation(entry(pct))
		if errs == nil {
			t.Errorf("percentage %v should be rejected", pct)
			continue
		}
		msg := errs["education[0].percentage"]
		if msg != "percentage must be greater than 0 and at most 100" {
			t.Errorf("percentage %v: unexpected message %q", pct, msg)
		}
	}

	if errs := ValidateEducation(entry(100)); errs != nil {
		t.Errorf("percentage 100 should be accepted, got %v", errs)
	}
}

func TestValidateEducation_Empty(t *testing.T) {
	if errs := ValidateEducation(nil); errs == nil {
		t.Error("an empty education list should be rejected")
	}
}

func TestValidateFamily_TitleByRelationship(t *testing.T) {
	members := []model.FamilyMember{
		{Relationship: "Mother", Title: "Smt", FirstName: "Sunita", DateOfBirth: model.NewDate(1962, time.March, 2)},
		{Relationship: "Mother", Title: "Shri", FirstName: "Sunita", DateOfBirth: model.NewDate(1962, time.March, 2)},
	}

	errs := ValidateFamily(members)
	if errs == nil {
		t.Fatal("expected errors")
	}
	if _, ok := errs["family[1].title"]; !ok {
		t.Errorf("relationship Mother must only permit title Smt, got %v", errs)
	}
	if _, ok := errs["family[0].title"]; ok {
		t.Error("Smt for Mother should be accepted")
	}
}

func TestValidateFamily_ChildGenderRequired(t *testing.T) {
	members := []model.FamilyMember{
		{Relationship: "Child", Title: "Master", FirstName: "Arjun", DateOfBirth: model.NewDate(2015, time.July, 1)},
	}

	errs := ValidateFamily(members)
	if errs == nil || errs["family[0].gender"] == "" {
		t.Errorf("gender should be required for relationship Child, got %v", errs)
	}

	members[0].Gender = "Male"
	if errs := ValidateFamily(members); errs != nil {
		t.Errorf("expected no errors once gender is set, got %v", errs)
	}
}

func TestValidateFamily_GenderOptionalForSpouse(t *testing.T) {
	members := []model.FamilyMember{
		{Relationship: "Spouse", Title: "Smt", FirstName: "Priya", DateOfBirth: model.NewDate(1992, time.October, 9)},
	}
	if errs := ValidateFamily(members); errs != nil {
		t.Errorf("gender should not be required for Spouse, got %v", errs)
	}
}

func validAddresses() []model.AddressEntry {
	return []model.AddressEntry{
		{Type: "present", AddressLine1: "Qtr 12/B", City: "Bhilai", District: "Durg", State: "Chhattisgarh", Pincode: "490001"},
		{Type: "permanent", AddressLine1: "Village Post", City: "Raipur", District: "Raipur", State: "Chhattisgarh", Pincode: "492001"},
	}
}

func TestValidateAddresses_Valid(t *testing.T) {
	if errs := ValidateAddresses(validAddresses()); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateAddresses_RequiresBothTypes(t *testing.T) {
	addrs := validAddresses()[:1]
	if errs := ValidateAddresses(addrs); errs == nil {
		t.Error("a single address should be rejected")
	}

	both := validAddresses()
	both[1].Type = "present"
	errs := ValidateAddresses(both)
	if errs == nil {
		t.Fatal("duplicate present addresses should be rejected")
	}
	if _, ok := errs["address[1].type"]; !ok {
		t.Errorf("expected address[1].type error, got %v", errs)
	}
}

func TestValidateWork_ConditionalEmployers(t *testing.T) {
	if errs := ValidateWork(true, nil); errs == nil || errs["employers"] == "" {
		t.Errorf("employers should be required when working, got %v", errs)
	}
	if errs := ValidateWork(false, nil); errs != nil {
		t.Errorf("no employers needed when not working, got %v", errs)
	}
}

func TestValidateWork_EndAfterStart(t *testing.T) {
	employers := []model.WorkEmployer{
		{
			CompanyName: "Tata Motors",
			Designation: "Engineer",
			Industry:    "Manufacturing",
			StartDate:   model.NewDate(2020, time.January, 15),
			EndDate:     model.NewDate(2020, time.January, 15), // not strictly after
		},
	}

	errs := ValidateWork(false, employers)
	if errs == nil || errs["work-experience[0].end_date"] == "" {
		t.Errorf("end date equal to start date should be rejected, got %v", errs)
	}

	employers[0].EndDate = model.NewDate(2022, time.March, 10)
	if errs := ValidateWork(false, employers); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateWork_CurrentEntryNeedsNoEndDate(t *testing.T) {
	employers := []model.WorkEmployer{
		{
			CompanyName: "Infosys",
			Designation: "Analyst",
			Industry:    "IT Services",
			StartDate:   model.NewDate(2021, time.June, 1),
			IsCurrent:   true,
		},
	}
	if errs := ValidateWork(true, employers); errs != nil {
		t.Errorf("current employment should not require an end date, got %v", errs)
	}
}
