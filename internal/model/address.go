package model

import "database/sql/driver"

// Address types. The section holds exactly these two entries.
const (
	AddressPresent   = "present"
	AddressPermanent = "permanent"
)

// AddressEntry is one address, disambiguated by Type.
type AddressEntry struct {
	Type         string `json:"type"` // "present" | "permanent"
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	District     string `json:"district"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Phone        string `json:"phone,omitempty"`
}

// AddressEntries is the JSONB document column.
type AddressEntries []AddressEntry

// Scan implements sql.Scanner.
func (a *AddressEntries) Scan(src interface{}) error { return scanJSON(src, a) }

// Value implements driver.Valuer.
func (a AddressEntries) Value() (driver.Value, error) { return valueJSON(a) }

// AddressRecord holds the whole address section for one employee.
type AddressRecord struct {
	EmployeeID string         `gorm:"type:uuid;primaryKey"             json:"-"`
	Addresses  AddressEntries `gorm:"type:jsonb;not null;default:'[]'" json:"addresses"`
	BaseModel
}

// TableName sets the table name.
func (AddressRecord) TableName() string { return "address_records" }
