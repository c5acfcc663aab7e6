// Package validation provides the pure field and profile validation rules for
// portfolio profiles. Rules never mutate their input and always return the
// same result for the same input.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

var (
	// gpaPattern is intentionally permissive about scale ("99.9/4.0" passes);
	// it mirrors the historical behavior and must not be tightened without
	// product guidance.
	gpaPattern      = regexp.MustCompile(`^(\d+(\.\d+)?/\d+(\.\d+)?|\d+(\.\d+)?%?)$`)
	languagePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z' \-]*$`)
	// phonePattern accepts "+" followed by 1-15 digits. The built-in e164 rule
	// enforces a minimum length that rejects short test numbers like "+123".
	phonePattern = regexp.MustCompile(`^\+\d{1,15}$`)
)

func init() {
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// dateLayout is the ISO date format used by all date fields.
const dateLayout = "2006-01-02"

// ValidateRequired returns an error message when value is empty or
// whitespace-only, or "" when the field is filled.
func ValidateRequired(value, label string) string {
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s is required", label)
	}
	return ""
}

// ValidateEmail checks value against the standard local@domain.tld shape.
func ValidateEmail(value string) string {
	if err := v.Var(value, "required,email"); err != nil {
		return "Please enter a valid email address"
	}
	return ""
}

// ValidatePhone accepts an empty value (phone is optional) or an E.164-shaped
// number: "+" followed by 1-15 digits.
func ValidatePhone(value string) string {
	if value == "" {
		return ""
	}
	if err := v.Var(value, "phone"); err != nil {
		return "Please enter a valid phone number"
	}
	return ""
}

// ValidateURL accepts an empty value or an absolute URL.
func ValidateURL(value string) string {
	if value == "" {
		return ""
	}
	if err := v.Var(value, "url"); err != nil {
		return "Please enter a valid URL"
	}
	return ""
}

// ValidateGPA accepts an empty value, a ratio ("3.8/4.0"), or a plain number
// with optional percent sign.
func ValidateGPA(value string) string {
	if value == "" {
		return ""
	}
	if !gpaPattern.MatchString(value) {
		return "Please enter a valid GPA"
	}
	return ""
}

// ValidateLanguageName accepts alphabetic names with spaces, hyphens and
// apostrophes.
func ValidateLanguageName(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Language name is required"
	}
	if !languagePattern.MatchString(value) {
		return "Language name may only contain letters, spaces, hyphens and apostrophes"
	}
	return ""
}

// ValidateDateOrder enforces strict start < end ordering for a date range.
// When isPresent is true the end date is logically absent and never checked.
// Dates are compared as ISO dates when both parse, otherwise lexicographically
// (equivalent for well-formed ISO strings).
func ValidateDateOrder(start, end string, isPresent bool) string {
	if isPresent || start == "" || end == "" {
		return ""
	}
	s, errS := time.Parse(dateLayout, start)
	e, errE := time.Parse(dateLayout, end)
	if errS == nil && errE == nil {
		if !s.Before(e) {
			return "End date must be after start date"
		}
		return ""
	}
	if start >= end {
		return "End date must be after start date"
	}
	return ""
}
