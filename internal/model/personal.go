package model

// PersonalDetail is the flat personal-details document, one row per employee.
type PersonalDetail struct {
	EmployeeID    string `gorm:"type:uuid;primaryKey"                  json:"-"`
	Title         string `gorm:"type:varchar(10);not null"             json:"title"`
	FirstName     string `gorm:"type:varchar(100);not null"            json:"first_name"`
	LastName      string `gorm:"type:varchar(100);not null;default:''" json:"last_name"`
	Gender        string `gorm:"type:varchar(20);not null"             json:"gender"`
	DateOfBirth   Date   `gorm:"type:date;not null"                    json:"date_of_birth"`
	BirthPlace    string `gorm:"type:varchar(100);not null;default:''" json:"birth_place"`
	MaritalStatus string `gorm:"type:varchar(20);not null"             json:"marital_status"`
	Category      string `gorm:"type:varchar(20);not null"             json:"category"`
	AadhaarNumber string `gorm:"type:varchar(12);not null"             json:"aadhaar_number"`
	PanNumber     string `gorm:"type:varchar(10);not null;default:''"  json:"pan_number"`
	Mobile        string `gorm:"type:varchar(10);not null"             json:"mobile"`
	PersonalEmail string `gorm:"type:varchar(255);not null;default:''" json:"personal_email"`
	FatherName    string `gorm:"type:varchar(200);not null;default:''" json:"father_name"`
	BaseModel
}

// TableName sets the table name.
func (PersonalDetail) TableName() string { return "personal_details" }
