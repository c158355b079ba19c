package validation

import (
	"fmt"
	"time"

	"github.com/Devendra616/collectEmpData-sub000/internal/model"
)

const minAge = 18

// ValidatePersonal checks the personal-details document.
func ValidatePersonal(p *model.PersonalDetail) FieldErrors {
	errs := FieldErrors{}

	if p.Title == "" {
		errs.Add("title", "title is required")
	} else if !oneOf(p.Title, PersonalTitles) {
		errs.Add("title", "title must be one of Shri, Smt, Ms, Dr")
	}

	if p.FirstName == "" {
		errs.Add("first_name", "first name is required")
	}

	if p.Gender == "" {
		errs.Add("gender", "gender is required")
	} else if !oneOf(p.Gender, Genders) {
		errs.Add("gender", "invalid gender")
	}

	if p.DateOfBirth.IsZero() {
		errs.Add("date_of_birth", "date of birth is required")
	} else {
		today := Today()
		if p.DateOfBirth.After(today.Time) {
			errs.Add("date_of_birth", "date of birth cannot be in the future")
		} else if AgeOn(p.DateOfBirth, today).Years < minAge {
			errs.Add("date_of_birth", fmt.Sprintf("employee must be at least %d years old", minAge))
		}
	}

	if p.MaritalStatus == "" {
		errs.Add("marital_status", "marital status is required")
	} else if !oneOf(p.MaritalStatus, MaritalStatuses) {
		errs.Add("marital_status", "invalid marital status")
	}

	if p.Category == "" {
		errs.Add("category", "category is required")
	} else if !oneOf(p.Category, Categories) {
		errs.Add("category", "invalid category")
	}

	if p.AadhaarNumber == "" {
		errs.Add("aadhaar_number", "aadhaar number is required")
	} else if !ValidAadhaar(p.AadhaarNumber) {
		errs.Add("aadhaar_number", "aadhaar must be 12 digits and cannot start with 0 or 1")
	}

	if p.PanNumber != "" && !ValidPan(p.PanNumber) {
		errs.Add("pan_number", "invalid PAN format")
	}

	if p.Mobile == "" {
		errs.Add("mobile", "mobile number is required")
	} else if !ValidMobile(p.Mobile) {
		errs.Add("mobile", "mobile must be 10 digits starting with 6-9")
	}

	if p.PersonalEmail != "" && !ValidEmail(p.PersonalEmail) {
		errs.Add("personal_email", "invalid email address")
	}

	return errs.Or()
}

// ValidateEducation checks the education entry list.
func ValidateEducation(entries []model.EducationEntry) FieldErrors {
	errs := FieldErrors{}
	section := string(model.SectionEducation)

	if len(entries) == 0 {
		errs.Add("entries", "at least one qualification is required")
		return errs
	}

	currentYear := time.Now().Year()
	for i, e := range entries {
		if e.Qualification == "" {
			errs.AddIndexed(section, i, "qualification", "qualification is required")
		} else if !oneOf(e.Qualification, Qualifications) {
			errs.AddIndexed(section, i, "qualification", "invalid qualification")
		}
		if e.Institution == "" {
			errs.AddIndexed(section, i, "institution", "institution is required")
		}
		if e.BoardOrUniversity == "" {
			errs.AddIndexed(section, i, "board_or_university", "board or university is required")
		}
		if e.YearOfPassing < 1950 || e.YearOfPassing > currentYear {
			errs.AddIndexed(section, i, "year_of_passing",
				fmt.Sprintf("year of passing must be between 1950 and %d", currentYear))
		}
		if e.Percentage <= 0 || e.Percentage > 100 {
			errs.AddIndexed(section, i, "percentage", "percentage must be greater than 0 and at most 100")
		}
	}

	return errs.Or()
}

// ValidateFamily checks the family member list. An empty list is valid;
// gender is required only for relationship Child, and the permitted title
// set depends on the relationship.
func ValidateFamily(members []model.FamilyMember) FieldErrors {
	errs := FieldErrors{}
	section := string(model.SectionFamily)

	for i, m := range members {
		if m.Relationship == "" {
			errs.AddIndexed(section, i, "relationship", "relationship is required")
			continue
		}
		if !oneOf(m.Relationship, Relationships) {
			errs.AddIndexed(section, i, "relationship", "invalid relationship")
			continue
		}

		allowed := TitlesForRelationship(m.Relationship)
		if m.Title == "" {
			errs.AddIndexed(section, i, "title", "title is required")
		} else if !oneOf(m.Title, allowed) {
			errs.AddIndexed(section, i, "title",
				fmt.Sprintf("title not permitted for relationship %s", m.Relationship))
		}

		if m.FirstName == "" {
			errs.AddIndexed(section, i, "first_name", "first name is required")
		}

		if m.DateOfBirth.IsZero() {
			errs.AddIndexed(section, i, "date_of_birth", "date of birth is required")
		} else if m.DateOfBirth.After(Today().Time) {
			errs.AddIndexed(section, i, "date_of_birth", "date of birth cannot be in the future")
		}

		if m.Relationship == "Child" {
			if m.Gender == "" {
				errs.AddIndexed(section, i, "gender", "gender is required for a child")
			} else if !oneOf(m.Gender, Genders) {
				errs.AddIndexed(section, i, "gender", "invalid gender")
			}
		} else if m.Gender != "" && !oneOf(m.Gender, Genders) {
			errs.AddIndexed(section, i, "gender", "invalid gender")
		}
	}

	return errs.Or()
}

// ValidateAddresses checks the address section: exactly one present and one
// permanent entry.
func ValidateAddresses(addresses []model.AddressEntry) FieldErrors {
	errs := FieldErrors{}
	section := string(model.SectionAddress)

	if len(addresses) != 2 {
		errs.Add("addresses", "both present and permanent addresses are required")
		return errs
	}

	seen := map[string]bool{}
	for i, a := range addresses {
		switch a.Type {
		case model.AddressPresent, model.AddressPermanent:
			if seen[a.Type] {
				errs.AddIndexed(section, i, "type", "duplicate address type")
			}
			seen[a.Type] = true
		default:
			errs.AddIndexed(section, i, "type", "type must be present or permanent")
		}

		if a.AddressLine1 == "" {
			errs.AddIndexed(section, i, "address_line1", "address line 1 is required")
		}
		if a.City == "" {
			errs.AddIndexed(section, i, "city", "city is required")
		}
		if a.District == "" {
			errs.AddIndexed(section, i, "district", "district is required")
		}
		if a.State == "" {
			errs.AddIndexed(section, i, "state", "state is required")
		}
		if a.Pincode == "" {
			errs.AddIndexed(section, i, "pincode", "pincode is required")
		} else if !ValidPincode(a.Pincode) {
			errs.AddIndexed(section, i, "pincode", "pincode must be 6 digits")
		}
	}

	return errs.Or()
}

// ValidateWork checks the work-experience section. Employer entries are
// required only when isWorking is true; an end date is required only for
// non-current entries and must be strictly after the start date.
func ValidateWork(isWorking bool, employers []model.WorkEmployer) FieldErrors {
	errs := FieldErrors{}
	section := string(model.SectionWork)

	if isWorking && len(employers) == 0 {
		errs.Add("employers", "employment details are required when currently working")
		return errs
	}

	today := Today()
	for i, w := range employers {
		if w.CompanyName == "" {
			errs.AddIndexed(section, i, "company_name", "company name is required")
		}
		if w.Designation == "" {
			errs.AddIndexed(section, i, "designation", "designation is required")
		}
		if w.Industry == "" {
			errs.AddIndexed(section, i, "industry", "industry is required")
		} else if !oneOf(w.Industry, Industries) {
			errs.AddIndexed(section, i, "industry", "invalid industry")
		}

		if w.StartDate.IsZero() {
			errs.AddIndexed(section, i, "start_date", "start date is required")
			continue
		}
		if w.StartDate.After(today.Time) {
			errs.AddIndexed(section, i, "start_date", "start date cannot be in the future")
		}

		if w.IsCurrent {
			continue
		}
		if w.EndDate.IsZero() {
			errs.AddIndexed(section, i, "end_date", "end date is required for past employment")
		} else if !w.EndDate.After(w.StartDate.Time) {
			errs.AddIndexed(section, i, "end_date", "end date must be after start date")
		}
	}

	return errs.Or()
}
