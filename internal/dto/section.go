package dto

import "github.com/Devendra616/collectEmpData-sub000/internal/model"

// Section save requests carry the complete payload for one section.
// Saving replaces the stored document wholesale; list sections replace the
// entire list, never merge. The owning employee comes from the bearer
// token, never from the body.

// SavePersonalRequest replaces the personal-details document.
type SavePersonalRequest struct {
	model.PersonalDetail
}

// SaveEducationRequest replaces the education entry list.
type SaveEducationRequest struct {
	Entries []model.EducationEntry `json:"entries"`
}

// SaveFamilyRequest replaces the family member list.
type SaveFamilyRequest struct {
	Members []model.FamilyMember `json:"members"`
}

// SaveAddressRequest replaces both addresses.
type SaveAddressRequest struct {
	Addresses []model.AddressEntry `json:"addresses"`
}

// SaveWorkRequest replaces the work-experience document. Entry durations
// are derived server-side; incoming values are ignored.
type SaveWorkRequest struct {
	IsWorking bool                 `json:"is_working"`
	Employers []model.WorkEmployer `json:"employers"`
}

// SectionDataResponse wraps one section's normalized data.
// Data is the flat document for personal, or the entry list for the
// array-shaped sections.
type SectionDataResponse struct {
	Section string      `json:"section"`
	Data    interface{} `json:"data"`
}

// SubmissionStatusResponse reports the submission gate state.
type SubmissionStatusResponse struct {
	IsSubmitted bool   `json:"is_submitted"`
	SubmittedAt string `json:"submitted_at,omitempty"`
}
