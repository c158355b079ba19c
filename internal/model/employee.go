package model

import "time"

// Employee is the account row, one per SAP ID.
//
// IsSubmitted is the submission gate: once true, section documents are
// read-only through the employee-facing path. Only the admin tooling can
// reset it. SubmittedAt records the flip, independent of row updates.
// Version guards the gate against racing admin/employee flips.
type Employee struct {
	EmployeeID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	SapID        string     `gorm:"type:varchar(8);not null;uniqueIndex"           json:"sap_id"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	FirstName    string     `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName     string     `gorm:"type:varchar(100);not null;default:''"          json:"last_name"`
	PasswordHash string     `gorm:"type:varchar(255);not null"                     json:"-"`
	IsSubmitted  bool       `gorm:"not null;default:false"                         json:"is_submitted"`
	SubmittedAt  *time.Time `gorm:"type:timestamptz"                               json:"submitted_at,omitempty"`
	IsAdmin      bool       `gorm:"not null;default:false"                         json:"is_admin"`
	Version      int        `gorm:"not null;default:1"                             json:"version"`
	BaseModel
}

// TableName sets the table name.
func (Employee) TableName() string { return "employees" }
