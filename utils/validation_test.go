package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	ok, _ := ValidateEmail("user@example.com")
	assert.True(t, ok)

	ok, _ = ValidateEmail("not-an-email")
	assert.False(t, ok)

	ok, _ = ValidateEmail("user@localhost")
	assert.False(t, ok)
}

func TestValidatePhone(t *testing.T) {
	ok, formatted := ValidatePhone("+91 98765 43210")
	assert.True(t, ok)
	assert.Equal(t, "+919876543210", formatted)

	ok, _ = ValidatePhone("abc")
	assert.False(t, ok)

	ok, _ = ValidatePhone("0123")
	assert.False(t, ok)
}

func TestValidatePincode(t *testing.T) {
	ok, _ := ValidatePincode("560001")
	assert.True(t, ok)

	ok, _ = ValidatePincode("5600")
	assert.False(t, ok)

	ok, _ = ValidatePincode("56000a")
	assert.False(t, ok)
}

func TestValidatePassword(t *testing.T) {
	ok, _ := ValidatePassword("Secret@123")
	assert.True(t, ok)

	// Missing the special character
	ok, _ = ValidatePassword("Secret123")
	assert.False(t, ok)

	// Too short
	ok, _ = ValidatePassword("S@1a")
	assert.False(t, ok)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.NotContains(t, SanitizeString("<script>alert(1)</script>bye"), "<script>")
}
