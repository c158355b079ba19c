package validation

import "testing"

func TestValidSapID(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"12345678", true},
		{"1234567", false},   // 7 digits
		{"123456789", false}, // 9 digits
		{"1234567a", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidSapID(c.in); got != c.want {
			t.Errorf("ValidSapID(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestValidAadhaar(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"234567890123", true},
		{"934567890123", true},
		{"134567890123", false}, // first digit must be 2-9
		{"034567890123", false},
		{"23456789012", false},   // 11 digits
		{"2345678901234", false}, // 13 digits
	}
	for _, c := range cases {
		if got := ValidAadhaar(c.in); got != c.want {
			t.Errorf("ValidAadhaar(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestValidOrgEmail(t *testing.T) {
	if !ValidOrgEmail("ramesh.kumar@bhfl.co.in") {
		t.Error("organizational address should be accepted")
	}
	if ValidOrgEmail("ramesh.kumar@gmail.com") {
		t.Error("outside domain should be rejected")
	}
	if ValidOrgEmail("ramesh.kumar@bhflXco.in") {
		t.Error("dot in domain must not match any character")
	}
}

func TestValidMobileAndPincode(t *testing.T) {
	if !ValidMobile("9876543210") {
		t.Error("valid mobile rejected")
	}
	if ValidMobile("1876543210") {
		t.Error("mobile starting with 1 accepted")
	}
	if !ValidPincode("490001") {
		t.Error("valid pincode rejected")
	}
	if ValidPincode("049001") {
		t.Error("pincode starting with 0 accepted")
	}
}

func TestValidPan(t *testing.T) {
	if !ValidPan("ABCDE1234F") {
		t.Error("valid PAN rejected")
	}
	if ValidPan("ABCDE12345") {
		t.Error("PAN without trailing letter accepted")
	}
}
