package dto

import "github.com/Devendra616/collectEmpData-sub000/internal/model"

// ── admin requests ──

// EmployeeListRequest filters the employee roster.
type EmployeeListRequest struct {
	PaginationRequest
	Submitted *bool  `form:"submitted"`
	Keyword   string `form:"keyword"`
}

// SetSubmissionRequest flips one employee's submission flag.
// This is the only path that can reopen a submitted form.
type SetSubmissionRequest struct {
	IsSubmitted *bool `json:"is_submitted" binding:"required"`
}

// ── admin responses ──

// ResetPasswordResponse returns the generated temporary password.
type ResetPasswordResponse struct {
	SapID        string `json:"sap_id"`
	TempPassword string `json:"temp_password"`
}

// ResetAllPasswordsResponse summarizes a bulk reset.
type ResetAllPasswordsResponse struct {
	Count     int                     `json:"count"`
	Passwords []ResetPasswordResponse `json:"passwords"`
}

// EmployeeBundleResponse aggregates one employee's account and every saved
// section document. Unsaved sections are nil.
type EmployeeBundleResponse struct {
	Employee  EmployeeResponse            `json:"employee"`
	Personal  *model.PersonalDetail       `json:"personal,omitempty"`
	Education *model.EducationRecord      `json:"education,omitempty"`
	Family    *model.FamilyRecord         `json:"family,omitempty"`
	Address   *model.AddressRecord        `json:"address,omitempty"`
	Work      *model.WorkExperienceRecord `json:"work_experience,omitempty"`
}
