package validation

// Closed value sets for enumerated fields.

var (
	// PersonalTitles are accepted for the personal-details title field.
	PersonalTitles = []string{"Shri", "Smt", "Ms", "Dr"}

	// Genders are the accepted gender values.
	Genders = []string{"Male", "Female", "Transgender"}

	// MaritalStatuses are the accepted marital-status values.
	MaritalStatuses = []string{"Single", "Married", "Widowed", "Divorced", "Separated"}

	// Categories are the accepted reservation-category values.
	Categories = []string{"General", "OBC", "SC", "ST", "EWS"}

	// Relationships are the accepted family-member relationships.
	Relationships = []string{"Father", "Mother", "Spouse", "Child"}

	// Qualifications are the accepted education qualification levels.
	Qualifications = []string{
		"Matriculation", "Higher Secondary", "Diploma",
		"Graduation", "Post Graduation", "Doctorate",
	}

	// Industries are the accepted prior-employer industries.
	Industries = []string{
		"Public Sector", "Private Sector", "Government",
		"Education", "Manufacturing", "IT Services", "Other",
	}
)

// titlesByRelationship restricts the permitted title per relationship.
// This is the single exhaustive discriminator mapping; there is no
// fallback row, so an unknown relationship permits no title at all.
var titlesByRelationship = map[string][]string{
	"Father": {"Shri"},
	"Mother": {"Smt"},
	"Spouse": {"Shri", "Smt"},
	"Child":  {"Master", "Kum", "Ms"},
}

// TitlesForRelationship returns the permitted titles for a relationship.
func TitlesForRelationship(relationship string) []string {
	return titlesByRelationship[relationship]
}

// oneOf reports whether v is in the closed set.
func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
