package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"filled", "Jane", false},
		{"empty", "", true},
		{"whitespace only", "   \t", true},
		{"leading whitespace ok", "  Jane", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateRequired(tt.value, "Name")
			if tt.wantErr {
				assert.Equal(t, "Name is required", msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"jane@x.com", false},
		{"jane.doe+tag@sub.example.co.uk", false},
		{"not-an-email", true},
		{"@example.com", true},
		{"jane@", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			msg := ValidateEmail(tt.value)
			assert.Equal(t, tt.wantErr, msg != "", "value %q", tt.value)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", false}, // optional
		{"+4915112345678", false},
		{"+12025550123", false},
		{"+123", false}, // short numbers are in shape: "+" then 1-15 digits
		{"+123456789012345", false},
		{"+1234567890123456", true}, // 16 digits
		{"015112345678", true},      // missing +
		{"+", true},
		{"+49 151 1234", true}, // spaces not allowed in E.164
		{"phone", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			msg := ValidatePhone(tt.value)
			assert.Equal(t, tt.wantErr, msg != "", "value %q", tt.value)
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", false}, // optional
		{"https://example.com", false},
		{"https://example.com/path?x=1", false},
		{"example.com", true}, // not absolute
		{"not a url", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			msg := ValidateURL(tt.value)
			assert.Equal(t, tt.wantErr, msg != "", "value %q", tt.value)
		})
	}
}

func TestValidateGPA(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", false}, // optional
		{"3.8/4.0", false},
		{"3.8", false},
		{"85%", false},
		{"4/4", false},
		// The pattern does not bound the scale; this passing is intentional.
		{"99.9/4.0", false},
		{"A+", true},
		{"3.8/", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			msg := ValidateGPA(tt.value)
			assert.Equal(t, tt.wantErr, msg != "", "value %q", tt.value)
		})
	}
}

func TestValidateLanguageName(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"German", false},
		{"Swiss German", false},
		{"Franco-Provençal", true}, // non-ASCII letter
		{"Haitian-Creole", false},
		{"K'iche", false},
		{"", true},
		{"C3PO", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			msg := ValidateLanguageName(tt.value)
			assert.Equal(t, tt.wantErr, msg != "", "value %q", tt.value)
		})
	}
}

func TestValidateDateOrder(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		isPresent bool
		wantErr   bool
	}{
		{"ongoing entry never checks end date", "2022-03-01", "", true, false},
		{"ongoing entry ignores stored end date", "2022-03-01", "2021-01-01", true, false},
		{"valid range", "2020-01-01", "2022-01-01", false, false},
		{"end before start", "2022-01-01", "2020-01-01", false, true},
		{"equal dates fail strict ordering", "2022-01-01", "2022-01-01", false, true},
		{"missing end date", "2022-01-01", "", false, false},
		{"missing start date", "", "2022-01-01", false, false},
		{"unparseable dates fall back to lexicographic", "2022-13-99", "2022-13-98", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateDateOrder(tt.start, tt.end, tt.isPresent)
			if tt.wantErr {
				assert.Equal(t, "End date must be after start date", msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}
