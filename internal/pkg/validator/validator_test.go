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
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-06-30")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())

	_, ok = IsValidDate("30-06-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestParseNonNegativeDecimal(t *testing.T) {
	v, ok := ParseNonNegativeDecimal("12.50")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	_, ok = ParseNonNegativeDecimal("-1")
	assert.False(t, ok)

	_, ok = ParseNonNegativeDecimal("abc")
	assert.False(t, ok)

	v, ok = ParseNonNegativeDecimal(" 0 ")
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestIsValidEmployeeNumber(t *testing.T) {
	assert.True(t, IsValidEmployeeNumber("EMP-001"))
	assert.True(t, IsValidEmployeeNumber("42"))
	assert.False(t, IsValidEmployeeNumber(""))
	assert.False(t, IsValidEmployeeNumber("EMP 001"))
	assert.False(t, IsValidEmployeeNumber("123456789012345678901"))
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "name is required", m["name"])
	assert.Contains(t, errs.Error(), "name: name is required")
}
