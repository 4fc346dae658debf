package normalize

import (
	"testing"
)

func TestPhoneBasicFormats(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(555) 123-4567", "+15551234567"},
		{"555-123-4567", "+15551234567"},
		{"555.123.4567", "+15551234567"},
		{"5551234567", "+15551234567"},
		{"1-555-123-4567", "+15551234567"},
		{"15551234567", "+15551234567"},
	}

	for _, tt := range tests {
		if got := Phone(tt.input); got != tt.expected {
			t.Errorf("Phone(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestPhoneIdempotent(t *testing.T) {
	once := Phone("(555) 123-4567")
	twice := Phone(once)
	if once != twice {
		t.Errorf("Expected idempotent normalization, got %q then %q", once, twice)
	}
}

func TestPhoneExtensionStripped(t *testing.T) {
	tests := []string{
		"555-123-4567 ext 89",
		"555-123-4567 x12",
		"555-123-4567 extension: 4",
		"(555) 123-4567 ext. 100",
	}

	for _, input := range tests {
		if got := Phone(input); got != "+15551234567" {
			t.Errorf("Phone(%q) = %q, expected +15551234567", input, got)
		}
	}
}

func TestPhoneInternationalPrefixes(t *testing.T) {
	if got := Phone("0015551234567"); got != "+15551234567" {
		t.Errorf("Expected 001 prefix reduced, got %q", got)
	}
	if got := Phone("015551234567"); got != "+15551234567" {
		t.Errorf("Expected 01 prefix reduced, got %q", got)
	}
}

func TestPhoneLastTenFallback(t *testing.T) {
	// Too many digits without a recognized prefix: take the last ten.
	if got := Phone("999 555 123 4567"); got != "+15551234567" {
		t.Errorf("Expected last ten digits, got %q", got)
	}
}

func TestPhoneInvalid(t *testing.T) {
	tests := []string{
		"",
		"call me",
		"123",
		"555-1234",
	}

	for _, input := range tests {
		if got := Phone(input); got != "" {
			t.Errorf("Phone(%q) = %q, expected empty string", input, got)
		}
	}
}
