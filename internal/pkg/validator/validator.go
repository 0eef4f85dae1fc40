package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation ("YYYY-MM-DD")
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Month validation ("YYYY-MM")
func IsValidMonth(monthStr string) bool {
	_, err := time.Parse("2006-01", monthStr)
	return err == nil
}

var quarterRegex = regexp.MustCompile(`^\d{4}-Q[1-4]$`)

// Quarter validation ("YYYY-Qn", n in 1..4)
func IsValidQuarter(quarterStr string) bool {
	return quarterRegex.MatchString(quarterStr)
}

var hhmmRegex = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// HH:MM duration validation
func IsValidHHMM(s string) bool {
	return hhmmRegex.MatchString(s)
}

// Phone number validation: French formats, 10 digits starting with 0
// or international +33 / 0033 prefixes.
func IsValidPhoneNumber(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	phone = strings.ReplaceAll(phone, ".", "")

	switch {
	case strings.HasPrefix(phone, "+33"):
		rest := strings.TrimPrefix(phone, "+33")
		return len(rest) == 9 && IsNumeric(rest)
	case strings.HasPrefix(phone, "0033"):
		rest := strings.TrimPrefix(phone, "0033")
		return len(rest) == 9 && IsNumeric(rest)
	case strings.HasPrefix(phone, "0"):
		return len(phone) == 10 && IsNumeric(phone)
	default:
		return false
	}
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

var vatNumberRegex = regexp.MustCompile(`^[A-Z]{2}[0-9A-Z]{2,12}$`)

// VAT number validation: EU-style country prefix plus 2-12 alphanumerics.
func IsValidVATNumber(vat string) bool {
	return vatNumberRegex.MatchString(strings.ToUpper(strings.ReplaceAll(vat, " ", "")))
}

var loginCodeRegex = regexp.MustCompile(`^\d{8}$`)

func IsValidLoginCode(code string) bool {
	return loginCodeRegex.MatchString(code)
}
