package validate

import (
	"regexp"
	"strings"
	"unicode"
)

// VIN: exactly 17 uppercase alphanumerics, excluding I, O and Q.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// License plate: 2-digit province code, one uppercase letter, dash,
// 4 or 5 digits, e.g. "29A-12345".
var platePattern = regexp.MustCompile(`^([0-9]{2})[A-Z]-[0-9]{4,5}$`)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Vietnamese mobile numbers: leading 0, 9 or 10 digits total.
var phonePattern = regexp.MustCompile(`^0[0-9]{8,9}$`)

// Codes never assigned to a province.
var forbiddenProvinces = map[string]bool{
	"42": true, "44": true, "45": true, "46": true,
	"87": true, "91": true, "96": true,
}

func VIN(s string) bool {
	return vinPattern.MatchString(s)
}

func LicensePlate(s string) bool {
	m := platePattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	return !forbiddenProvinces[m[1]]
}

func Email(s string) bool {
	return emailPattern.MatchString(s)
}

func Phone(s string) bool {
	return phonePattern.MatchString(s)
}

// Password requires at least 8 characters with one letter and one digit.
func Password(s string) bool {
	if len(s) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// FilterOTPCode mirrors the OTP input box: non-digit characters are
// stripped on entry and anything past 6 digits is truncated.
func FilterOTPCode(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 6 {
				break
			}
		}
	}
	return b.String()
}

// OTPCode reports whether a code is submittable: exactly 6 digits.
func OTPCode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
