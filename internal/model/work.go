package model

import "database/sql/driver"

// Duration is a server-derived span in exact calendar units.
type Duration struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// WorkEmployer is one employer entry in the work-experience list.
// Duration is computed server-side from StartDate/EndDate and echoed back;
// any client-supplied value is overwritten on save.
type WorkEmployer struct {
	CompanyName string   `json:"company_name"`
	Designation string   `json:"designation"`
	Industry    string   `json:"industry"`
	StartDate   Date     `json:"start_date"`
	EndDate     Date     `json:"end_date,omitempty"`
	IsCurrent   bool     `json:"is_current"`
	Duration    Duration `json:"duration"`
}

// WorkEmployers is the JSONB document column.
type WorkEmployers []WorkEmployer

// Scan implements sql.Scanner.
func (w *WorkEmployers) Scan(src interface{}) error { return scanJSON(src, w) }

// Value implements driver.Valuer.
func (w WorkEmployers) Value() (driver.Value, error) { return valueJSON(w) }

// WorkExperienceRecord holds the whole work-experience section for one
// employee. Employers are required only when IsWorking is true.
type WorkExperienceRecord struct {
	EmployeeID string        `gorm:"type:uuid;primaryKey"             json:"-"`
	IsWorking  bool          `gorm:"not null;default:false"           json:"is_working"`
	Employers  WorkEmployers `gorm:"type:jsonb;not null;default:'[]'" json:"employers"`
	BaseModel
}

// TableName sets the table name.
func (WorkExperienceRecord) TableName() string { return "work_experience_records" }
