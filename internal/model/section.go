package model

import "fmt"

// Section names one subdivision of the employee form.
type Section string

const (
	SectionPersonal  Section = "personal"
	SectionEducation Section = "education"
	SectionFamily    Section = "family"
	SectionAddress   Section = "address"
	SectionWork      Section = "work-experience"
)

// SectionOrder is the fixed order the form walks through.
// The terminal review step is client-side only and owns no document.
var SectionOrder = []Section{
	SectionPersonal,
	SectionEducation,
	SectionFamily,
	SectionAddress,
	SectionWork,
}

// ParseSection maps a path segment to a Section.
func ParseSection(s string) (Section, error) {
	switch Section(s) {
	case SectionPersonal, SectionEducation, SectionFamily, SectionAddress, SectionWork:
		return Section(s), nil
	}
	return "", fmt.Errorf("unknown section %q", s)
}
