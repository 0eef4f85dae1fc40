package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("chef@chantier.fr"))
	assert.True(t, IsValidEmail("a.b+tag@sub.example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-03-14")
	assert.True(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("14/03/2025")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-03"))
	assert.True(t, IsValidMonth("2024-12"))
	assert.False(t, IsValidMonth("2025-13"))
	assert.False(t, IsValidMonth("2025"))
	assert.False(t, IsValidMonth("2025-03-01"))
}

func TestIsValidQuarter(t *testing.T) {
	assert.True(t, IsValidQuarter("2025-Q1"))
	assert.True(t, IsValidQuarter("2025-Q4"))
	assert.False(t, IsValidQuarter("2025-Q5"))
	assert.False(t, IsValidQuarter("2025-q1"))
	assert.False(t, IsValidQuarter("Q1-2025"))
}

func TestIsValidHHMM(t *testing.T) {
	assert.True(t, IsValidHHMM("08:00"))
	assert.True(t, IsValidHHMM("8:15"))
	assert.True(t, IsValidHHMM("23:59"))
	assert.False(t, IsValidHHMM("24:00"))
	assert.False(t, IsValidHHMM("08:60"))
	assert.False(t, IsValidHHMM("08h30"))
	assert.False(t, IsValidHHMM(""))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("0612345678"))
	assert.True(t, IsValidPhoneNumber("06 12 34 56 78"))
	assert.True(t, IsValidPhoneNumber("+33612345678"))
	assert.True(t, IsValidPhoneNumber("0033612345678"))
	assert.False(t, IsValidPhoneNumber("612345678"))
	assert.False(t, IsValidPhoneNumber("06123"))
}

func TestIsValidVATNumber(t *testing.T) {
	assert.True(t, IsValidVATNumber("FR12345678901"))
	assert.True(t, IsValidVATNumber("BE0123456789"))
	assert.True(t, IsValidVATNumber("fr 12345678901"))
	assert.False(t, IsValidVATNumber("12345678901"))
	assert.False(t, IsValidVATNumber("F"))
}

func TestIsValidLoginCode(t *testing.T) {
	assert.True(t, IsValidLoginCode("12345678"))
	assert.False(t, IsValidLoginCode("1234567"))
	assert.False(t, IsValidLoginCode("123456789"))
	assert.False(t, IsValidLoginCode("1234567a"))
}
