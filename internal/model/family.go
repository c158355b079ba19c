package model

import "database/sql/driver"

// FamilyMember is one member in the family list.
// Gender is only meaningful for relationship "Child"; the permitted title
// set depends on the relationship (see validation.TitlesForRelationship).
type FamilyMember struct {
	Relationship string `json:"relationship"`
	Title        string `json:"title"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	DateOfBirth  Date   `json:"date_of_birth"`
	Gender       string `json:"gender,omitempty"`
	Occupation   string `json:"occupation,omitempty"`
	IsDependent  bool   `json:"is_dependent"`
}

// FamilyMembers is the JSONB document column.
type FamilyMembers []FamilyMember

// Scan implements sql.Scanner.
func (m *FamilyMembers) Scan(src interface{}) error { return scanJSON(src, m) }

// Value implements driver.Valuer.
func (m FamilyMembers) Value() (driver.Value, error) { return valueJSON(m) }

// FamilyRecord holds the whole family section for one employee.
type FamilyRecord struct {
	EmployeeID string        `gorm:"type:uuid;primaryKey"             json:"-"`
	Members    FamilyMembers `gorm:"type:jsonb;not null;default:'[]'" json:"members"`
	BaseModel
}

// TableName sets the table name.
func (FamilyRecord) TableName() string { return "family_records" }
