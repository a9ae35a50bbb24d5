package utils

import (
	"html"
	"regexp"
	"strings"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	pincodeRegex  = regexp.MustCompile(`^\d{6}$`)
	hasLower      = regexp.MustCompile(`[a-z]`)
	hasUpper      = regexp.MustCompile(`[A-Z]`)
	hasNumber     = regexp.MustCompile(`[0-9]`)
	hasSpecial    = regexp.MustCompile(`[@$!%*?&#]`)
)

// SanitizeString escapes HTML and strips tags from user-supplied text
func SanitizeString(input string) string {
	sanitized := html.EscapeString(strings.TrimSpace(input))
	htmlTagRegex := regexp.MustCompile(`<[^>]*>`)
	return htmlTagRegex.ReplaceAllString(sanitized, "")
}

// ValidateUsername checks username format
func ValidateUsername(username string) (bool, string) {
	if !usernameRegex.MatchString(username) {
		return false, "Username must be 3-20 characters and contain only letters, numbers and underscores"
	}
	return true, ""
}

// ValidateEmail checks email format
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(email) {
		return false, ErrInvalidEmail
	}
	return true, ""
}

// ValidatePhone checks phone number format and returns it without spaces
func ValidatePhone(phone string) (bool, string) {
	formatted := strings.ReplaceAll(phone, " ", "")
	if !phoneRegex.MatchString(formatted) {
		return false, ErrInvalidPhone
	}
	return true, formatted
}

// ValidatePincode checks an Indian postal code
func ValidatePincode(pincode string) (bool, string) {
	if !pincodeRegex.MatchString(pincode) {
		return false, "Pincode must be a 6-digit number"
	}
	return true, ""
}

// ValidatePassword enforces the password policy
func ValidatePassword(password string) (bool, string) {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return false, ErrInvalidPassword
	}
	if !hasLower.MatchString(password) || !hasUpper.MatchString(password) ||
		!hasNumber.MatchString(password) || !hasSpecial.MatchString(password) {
		return false, ErrInvalidPassword
	}
	return true, ""
}

// ValidateName checks a display name
func ValidateName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 50 {
		return false, "Name must be between 2 and 50 characters"
	}
	return true, ""
}
