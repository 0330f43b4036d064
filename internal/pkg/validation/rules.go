// Package validation holds the field format rules shared by account
// registration and student intake.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// Validation rule patterns
var (
	// Alphabetic-only names (usernames, student first/last names)
	AlphaPattern = `^[A-Za-z]+$`

	// 10-digit phone numbers
	PhonePattern = `^\d{10}$`

	// General email syntax
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Alpha *regexp.Regexp
	Phone *regexp.Regexp
	Email *regexp.Regexp
}{
	Alpha: regexp.MustCompile(AlphaPattern),
	Phone: regexp.MustCompile(PhonePattern),
	Email: regexp.MustCompile(EmailPattern),
}

// IsAlphabetic reports whether v is non-empty and contains only letters.
func IsAlphabetic(v string) bool {
	return CompiledPatterns.Alpha.MatchString(v)
}

// IsPhoneNumber reports whether v is exactly 10 digits.
func IsPhoneNumber(v string) bool {
	return CompiledPatterns.Phone.MatchString(v)
}

// IsEmail reports whether v is syntactically a valid email address.
func IsEmail(v string) bool {
	return CompiledPatterns.Email.MatchString(v)
}

// HasDomainSuffix reports whether the email belongs to the institutional
// domain (e.g. "@krmu.edu.in").
func HasDomainSuffix(email, suffix string) bool {
	return strings.HasSuffix(email, suffix)
}

// IsStrongPassword reports whether the password is at least
// PasswordMinLength characters with at least one letter and one digit.
func IsStrongPassword(password string) bool {
	if len(password) < PasswordMinLength {
		return false
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}
