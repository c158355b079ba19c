package validation

import "regexp"

// Fixed-format patterns for identity-like fields. These are the
// authoritative business rules; the same definitions run client-side for
// immediate feedback and server-side before storage.
var (
	// SapIDPattern matches the 8-digit organizational employee identifier.
	SapIDPattern = regexp.MustCompile(`^[0-9]{8}$`)

	// AadhaarPattern matches a 12-digit national ID whose first digit is 2-9.
	AadhaarPattern = regexp.MustCompile(`^[2-9][0-9]{11}$`)

	// PanPattern matches the 10-character PAN format.
	PanPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

	// MobilePattern matches a 10-digit Indian mobile number.
	MobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

	// PincodePattern matches a 6-digit postal code.
	PincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

	// OrgEmailPattern restricts login email to the organizational domain.
	OrgEmailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@bhfl\.co\.in$`)

	// EmailPattern is the loose shape check for personal email addresses.
	EmailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// ValidSapID reports whether s is a well-formed SAP ID.
func ValidSapID(s string) bool { return SapIDPattern.MatchString(s) }

// ValidAadhaar reports whether s is a well-formed Aadhaar number.
func ValidAadhaar(s string) bool { return AadhaarPattern.MatchString(s) }

// ValidPan reports whether s is a well-formed PAN.
func ValidPan(s string) bool { return PanPattern.MatchString(s) }

// ValidMobile reports whether s is a well-formed mobile number.
func ValidMobile(s string) bool { return MobilePattern.MatchString(s) }

// ValidPincode reports whether s is a well-formed pincode.
func ValidPincode(s string) bool { return PincodePattern.MatchString(s) }

// ValidOrgEmail reports whether s is an organizational email address.
func ValidOrgEmail(s string) bool { return OrgEmailPattern.MatchString(s) }

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool { return EmailPattern.MatchString(s) }
