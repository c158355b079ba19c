package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Devendra616/collectEmpData-sub000/internal/dto"
	"github.com/Devendra616/collectEmpData-sub000/internal/formflow"
	"github.com/Devendra616/collectEmpData-sub000/internal/model"
)

// fieldSpec describes one text input on a section screen.
type fieldSpec struct {
	key         string
	label       string
	placeholder string
}

// sectionForm maps a wizard step to its input fields and the payload
// builder/filler pair that converts between field values and the
// section's save request.
type sectionForm struct {
	title  string
	fields []fieldSpec
	// build turns the current field values into a save payload.
	build func(values []string) (interface{}, error)
	// fill extracts field values from a loaded server document.
	fill func(raw json.RawMessage) []string
}

var forms = map[formflow.Step]sectionForm{
	formflow.Step(model.SectionPersonal): {
		title: "Personal Details",
		fields: []fieldSpec{
			{"title", "Title", "Shri / Smt / Ms / Dr"},
			{"first_name", "First name", ""},
			{"last_name", "Last name", ""},
			{"gender", "Gender", "Male / Female / Transgender"},
			{"date_of_birth", "Date of birth", "YYYY-MM-DD"},
			{"birth_place", "Birth place", ""},
			{"marital_status", "Marital status", "Single / Married / ..."},
			{"category", "Category", "General / OBC / SC / ST / EWS"},
			{"aadhaar_number", "Aadhaar number", "12 digits"},
			{"pan_number", "PAN", "optional"},
			{"mobile", "Mobile", "10 digits"},
			{"personal_email", "Personal email", "optional"},
			{"father_name", "Father's name", ""},
		},
		build: buildPersonal,
		fill:  fillPersonal,
	},
	formflow.Step(model.SectionEducation): {
		title: "Education (highest qualification)",
		fields: []fieldSpec{
			{"qualification", "Qualification", "Graduation / Diploma / ..."},
			{"institution", "Institution", ""},
			{"board_or_university", "Board / University", ""},
			{"year_of_passing", "Year of passing", "e.g. 2011"},
			{"percentage", "Percentage", "0-100"},
			{"specialization", "Specialization", "optional"},
		},
		build: buildEducation,
		fill:  fillEducation,
	},
	formflow.Step(model.SectionFamily): {
		title: "Family (primary member, leave relationship blank for none)",
		fields: []fieldSpec{
			{"relationship", "Relationship", "Father / Mother / Spouse / Child"},
			{"title", "Title", "per relationship"},
			{"first_name", "First name", ""},
			{"last_name", "Last name", ""},
			{"date_of_birth", "Date of birth", "YYYY-MM-DD"},
			{"gender", "Gender", "required for Child"},
			{"occupation", "Occupation", "optional"},
			{"is_dependent", "Dependent", "y/n"},
		},
		build: buildFamily,
		fill:  fillFamily,
	},
	formflow.Step(model.SectionAddress): {
		title: "Addresses (present + permanent)",
		fields: []fieldSpec{
			{"p_line1", "Present: line 1", ""},
			{"p_line2", "Present: line 2", "optional"},
			{"p_city", "Present: city", ""},
			{"p_district", "Present: district", ""},
			{"p_state", "Present: state", ""},
			{"p_pincode", "Present: pincode", "6 digits"},
			{"q_line1", "Permanent: line 1", ""},
			{"q_line2", "Permanent: line 2", "optional"},
			{"q_city", "Permanent: city", ""},
			{"q_district", "Permanent: district", ""},
			{"q_state", "Permanent: state", ""},
			{"q_pincode", "Permanent: pincode", "6 digits"},
		},
		build: buildAddress,
		fill:  fillAddress,
	},
	formflow.Step(model.SectionWork): {
		title: "Work Experience (latest employer)",
		fields: []fieldSpec{
			{"is_working", "Currently working", "y/n"},
			{"company_name", "Company", ""},
			{"designation", "Designation", ""},
			{"industry", "Industry", "Public Sector / IT Services / ..."},
			{"start_date", "Start date", "YYYY-MM-DD"},
			{"end_date", "End date", "blank if current"},
			{"is_current", "Current employer", "y/n"},
		},
		build: buildWork,
		fill:  fillWork,
	},
}

func parseBoolField(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}

func parseDateField(s string) (model.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.Date{}, nil
	}
	return model.ParseDate(s)
}

func formatBool(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

// ── personal ──

func buildPersonal(v []string) (interface{}, error) {
	dob, err := parseDateField(v[4])
	if err != nil {
		return nil, fmt.Errorf("date of birth: %w", err)
	}
	return &dto.SavePersonalRequest{PersonalDetail: model.PersonalDetail{
		Title:         strings.TrimSpace(v[0]),
		FirstName:     strings.TrimSpace(v[1]),
		LastName:      strings.TrimSpace(v[2]),
		Gender:        strings.TrimSpace(v[3]),
		DateOfBirth:   dob,
		BirthPlace:    strings.TrimSpace(v[5]),
		MaritalStatus: strings.TrimSpace(v[6]),
		Category:      strings.TrimSpace(v[7]),
		AadhaarNumber: strings.TrimSpace(v[8]),
		PanNumber:     strings.TrimSpace(v[9]),
		Mobile:        strings.TrimSpace(v[10]),
		PersonalEmail: strings.TrimSpace(v[11]),
		FatherName:    strings.TrimSpace(v[12]),
	}}, nil
}

func fillPersonal(raw json.RawMessage) []string {
	out := make([]string, 13)
	if raw == nil {
		return out
	}
	var d model.PersonalDetail
	if err := json.Unmarshal(raw, &d); err != nil {
		return out
	}
	return []string{
		d.Title, d.FirstName, d.LastName, d.Gender, d.DateOfBirth.String(),
		d.BirthPlace, d.MaritalStatus, d.Category, d.AadhaarNumber,
		d.PanNumber, d.Mobile, d.PersonalEmail, d.FatherName,
	}
}

// ── education ──

func buildEducation(v []string) (interface{}, error) {
	year := 0
	if s := strings.TrimSpace(v[3]); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("year of passing: %w", err)
		}
		year = y
	}
	pct := 0.0
	if s := strings.TrimSpace(v[4]); s != "" {
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("percentage: %w", err)
		}
		pct = p
	}
	return &dto.SaveEducationRequest{Entries: []model.EducationEntry{{
		Qualification:     strings.TrimSpace(v[0]),
		Institution:       strings.TrimSpace(v[1]),
		BoardOrUniversity: strings.TrimSpace(v[2]),
		YearOfPassing:     year,
		Percentage:        pct,
		Specialization:    strings.TrimSpace(v[5]),
	}}}, nil
}

func fillEducation(raw json.RawMessage) []string {
	out := make([]string, 6)
	if raw == nil {
		return out
	}
	var r model.EducationRecord
	if err := json.Unmarshal(raw, &r); err != nil || len(r.Entries) == 0 {
		return out
	}
	e := r.Entries[0]
	return []string{
		e.Qualification, e.Institution, e.BoardOrUniversity,
		strconv.Itoa(e.YearOfPassing), strconv.FormatFloat(e.Percentage, 'f', -1, 64),
		e.Specialization,
	}
}

// ── family ──

func buildFamily(v []string) (interface{}, error) {
	if strings.TrimSpace(v[0]) == "" {
		return &dto.SaveFamilyRequest{Members: []model.FamilyMember{}}, nil
	}
	dob, err := parseDateField(v[4])
	if err != nil {
		return nil, fmt.Errorf("date of birth: %w", err)
	}
	return &dto.SaveFamilyRequest{Members: []model.FamilyMember{{
		Relationship: strings.TrimSpace(v[0]),
		Title:        strings.TrimSpace(v[1]),
		FirstName:    strings.TrimSpace(v[2]),
		LastName:     strings.TrimSpace(v[3]),
		DateOfBirth:  dob,
		Gender:       strings.TrimSpace(v[5]),
		Occupation:   strings.TrimSpace(v[6]),
		IsDependent:  parseBoolField(v[7]),
	}}}, nil
}

func fillFamily(raw json.RawMessage) []string {
	out := make([]string, 8)
	if raw == nil {
		return out
	}
	var r model.FamilyRecord
	if err := json.Unmarshal(raw, &r); err != nil || len(r.Members) == 0 {
		return out
	}
	m := r.Members[0]
	return []string{
		m.Relationship, m.Title, m.FirstName, m.LastName,
		m.DateOfBirth.String(), m.Gender, m.Occupation, formatBool(m.IsDependent),
	}
}

// ── address ──

func buildAddress(v []string) (interface{}, error) {
	return &dto.SaveAddressRequest{Addresses: []model.AddressEntry{
		{
			Type:         model.AddressPresent,
			AddressLine1: strings.TrimSpace(v[0]),
			AddressLine2: strings.TrimSpace(v[1]),
			City:         strings.TrimSpace(v[2]),
			District:     strings.TrimSpace(v[3]),
			State:        strings.TrimSpace(v[4]),
			Pincode:      strings.TrimSpace(v[5]),
		},
		{
			Type:         model.AddressPermanent,
			AddressLine1: strings.TrimSpace(v[6]),
			AddressLine2: strings.TrimSpace(v[7]),
			City:         strings.TrimSpace(v[8]),
			District:     strings.TrimSpace(v[9]),
			State:        strings.TrimSpace(v[10]),
			Pincode:      strings.TrimSpace(v[11]),
		},
	}}, nil
}

func fillAddress(raw json.RawMessage) []string {
	out := make([]string, 12)
	if raw == nil {
		return out
	}
	var r model.AddressRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return out
	}
	for _, a := range r.Addresses {
		base := 0
		if a.Type == model.AddressPermanent {
			base = 6
		}
		out[base+0] = a.AddressLine1
		out[base+1] = a.AddressLine2
		out[base+2] = a.City
		out[base+3] = a.District
		out[base+4] = a.State
		out[base+5] = a.Pincode
	}
	return out
}

// ── work ──

func buildWork(v []string) (interface{}, error) {
	isWorking := parseBoolField(v[0])
	company := strings.TrimSpace(v[1])
	if company == "" {
		return &dto.SaveWorkRequest{IsWorking: isWorking}, nil
	}

	start, err := parseDateField(v[4])
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	end, err := parseDateField(v[5])
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}
	return &dto.SaveWorkRequest{
		IsWorking: isWorking,
		Employers: []model.WorkEmployer{{
			CompanyName: company,
			Designation: strings.TrimSpace(v[2]),
			Industry:    strings.TrimSpace(v[3]),
			StartDate:   start,
			EndDate:     end,
			IsCurrent:   parseBoolField(v[6]),
		}},
	}, nil
}

func fillWork(raw json.RawMessage) []string {
	out := make([]string, 7)
	if raw == nil {
		return out
	}
	var r model.WorkExperienceRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return out
	}
	out[0] = formatBool(r.IsWorking)
	if len(r.Employers) == 0 {
		return out
	}
	e := r.Employers[0]
	out[1] = e.CompanyName
	out[2] = e.Designation
	out[3] = e.Industry
	out[4] = e.StartDate.String()
	out[5] = e.EndDate.String()
	out[6] = formatBool(e.IsCurrent)
	return out
}
