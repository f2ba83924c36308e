package timeutil

import (
	"strings"
	"testing"
	"time"
)

func TestParseDate_ValidFormats(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "ISO format",
			input:    "2024-01-15",
			expected: makeTime(2024, time.January, 15, 0, 0, 0),
		},
		{
			name:     "European format",
			input:    "15/01/2024",
			expected: makeTime(2024, time.January, 15, 0, 0, 0),
		},
		{
			name:     "leap year feb 29",
			input:    "2024-02-29",
			expected: makeTime(2024, time.February, 29, 0, 0, 0),
		},
		{
			name:     "last day of year",
			input:    "31/12/2024",
			expected: makeTime(2024, time.December, 31, 0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !result.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
			if result.Hour() != 0 || result.Minute() != 0 || result.Second() != 0 {
				t.Errorf("ParseDate(%q) not midnight: %v", tt.input, result)
			}
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string // substring of the error message
	}{
		{name: "empty", input: "", expected: "cannot be empty"},
		{name: "garbage", input: "notadate", expected: "invalid date format"},
		{name: "year only", input: "2024", expected: "missing month and day"},
		{name: "missing day", input: "2024-01", expected: "missing day"},
		{name: "impossible day", input: "2024-02-30", expected: "invalid date format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if err == nil {
				t.Fatalf("ParseDate(%q) expected error, got nil", tt.input)
			}
			if !strings.Contains(err.Error(), tt.expected) {
				t.Errorf("ParseDate(%q) error = %q, expected it to contain %q", tt.input, err.Error(), tt.expected)
			}
		})
	}
}
