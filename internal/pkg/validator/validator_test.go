package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("user.name+tag@sub.example.pe"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidDNI(t *testing.T) {
	assert.True(t, IsValidDNI("12345678"))
	assert.False(t, IsValidDNI("1234567"))
	assert.False(t, IsValidDNI("123456789"))
	assert.False(t, IsValidDNI("1234567a"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-03-10")
	assert.True(t, ok)

	_, ok = IsValidDate("10/03/2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-40")
	assert.False(t, ok)
}

func TestIsValidTimestamp(t *testing.T) {
	_, ok := IsValidTimestamp("2025-03-10T08:00:00Z")
	assert.True(t, ok)

	_, ok = IsValidTimestamp("2025-03-10T08:00:00-05:00")
	assert.True(t, ok)

	_, ok = IsValidTimestamp("2025-03-10 08:00")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "dni", Message: "dni must be 8 digits"},
	}

	assert.Equal(t, "name: name is required; dni: dni must be 8 digits", errs.Error())
	assert.Equal(t, map[string]string{
		"name": "name is required",
		"dni":  "dni must be 8 digits",
	}, errs.ToMap())
}
