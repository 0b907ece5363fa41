package shared_test

import (
	"lodge/shared"
	"testing"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{
			name:     "strips letters and punctuation and truncates",
			input:    "abc123-456-7890xyz99",
			limit:    10,
			expected: "1234567890",
		},
		{
			name:     "already clean",
			input:    "4111111111111111",
			limit:    16,
			expected: "4111111111111111",
		},
		{
			name:     "truncates extra digits",
			input:    "12345",
			limit:    3,
			expected: "123",
		},
		{
			name:     "no limit keeps everything",
			input:    "1a2b3c4d",
			limit:    0,
			expected: "1234",
		},
		{
			name:     "empty input",
			input:    "",
			limit:    10,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.Digits(tt.input, tt.limit); got != tt.expected {
				t.Errorf("Digits(%q, %d) = %q, expected %q", tt.input, tt.limit, got, tt.expected)
			}
		})
	}
}

func TestIsDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "digits only", input: "0123456789", expected: true},
		{name: "empty string counts as digits", input: "", expected: true},
		{name: "contains letter", input: "123a456", expected: false},
		{name: "contains dash", input: "123-456", expected: false},
		{name: "contains space", input: "123 456", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.IsDigits(tt.input); got != tt.expected {
				t.Errorf("IsDigits(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLettersAndSpaces(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips digits and punctuation",
			input:    "J0hn D03-O'Brien!",
			expected: "Jhn D OBrien",
		},
		{
			name:     "keeps plain name",
			input:    "Jane Doe",
			expected: "Jane Doe",
		},
		{
			name:     "keeps unicode letters",
			input:    "José Álvarez 3rd",
			expected: "José Álvarez rd",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.LettersAndSpaces(tt.input); got != tt.expected {
				t.Errorf("LettersAndSpaces(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
