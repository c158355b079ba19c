package dto

// ── auth requests ──

// RegisterRequest creates an employee account.
type RegisterRequest struct {
	SapID           string `json:"sap_id"           binding:"required"`
	Email           string `json:"email"            binding:"required"`
	FirstName       string `json:"first_name"       binding:"required"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"         binding:"required,min=8,max=64"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// LoginRequest authenticates by SAP ID and password.
type LoginRequest struct {
	SapID    string `json:"sap_id"   binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest rotates the caller's password.
// The current password must match before the new one is accepted.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password"     binding:"required,min=8,max=64"`
}

// ── auth responses ──

// TokenResponse is the login result: bearer tokens plus employee summary.
type TokenResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	ExpiresIn    int              `json:"expires_in"` // seconds
	Employee     EmployeeResponse `json:"employee"`
}

// EmployeeResponse is the redacted employee summary.
type EmployeeResponse struct {
	ID          string `json:"id"`
	SapID       string `json:"sap_id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	IsSubmitted bool   `json:"is_submitted"`
	IsAdmin     bool   `json:"is_admin"`
}

// RegisterResponse is returned on successful registration.
// AlreadyRegistered marks the soft duplicate-SAP-ID outcome.
type RegisterResponse struct {
	Employee          *EmployeeResponse `json:"employee,omitempty"`
	AlreadyRegistered bool              `json:"already_registered"`
}
