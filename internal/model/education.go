package model

import "database/sql/driver"

// EducationEntry is one qualification in the education list.
type EducationEntry struct {
	Qualification     string  `json:"qualification"`
	Institution       string  `json:"institution"`
	BoardOrUniversity string  `json:"board_or_university"`
	YearOfPassing     int     `json:"year_of_passing"`
	Percentage        float64 `json:"percentage"`
	Specialization    string  `json:"specialization,omitempty"`
}

// EducationEntries is the JSONB document column.
type EducationEntries []EducationEntry

// Scan implements sql.Scanner.
func (e *EducationEntries) Scan(src interface{}) error { return scanJSON(src, e) }

// Value implements driver.Valuer.
func (e EducationEntries) Value() (driver.Value, error) { return valueJSON(e) }

// EducationRecord holds the whole education section for one employee.
// Saves replace the entries list wholesale.
type EducationRecord struct {
	EmployeeID string           `gorm:"type:uuid;primaryKey"         json:"-"`
	Entries    EducationEntries `gorm:"type:jsonb;not null;default:'[]'" json:"entries"`
	BaseModel
}

// TableName sets the table name.
func (EducationRecord) TableName() string { return "education_records" }
