package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.domain.co", true},
		{"USER_99%x@my-host.org", true},
		{"bad-email", false},
		{"user@domain", false},
		{"user@domain.c", false},
		{"@example.com", false},
		{"user example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidEmail(tt.email), "email %q", tt.email)
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0123456789", true},       // 10 digits
		{"+27123456789", true},     // + and 11 digits
		{"123456789012", true},     // 12 digits
		{"123456789", false},       // 9 digits
		{"1234567890123", false},   // 13 digits
		{"012-345-6789", false},    // dashes
		{"(012) 345 6789", false},  // spaces and parens
		{"++27123456789", false},   // double plus
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPhone(tt.phone), "phone %q", tt.phone)
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2025-06-01", true},
		{"2024-02-29", true}, // leap day
		{"2023-02-30", false},
		{"2023-13-01", false},
		{"not-a-date", false},
		{"2025-6-1", false}, // must be zero-padded
		{"01-06-2025", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidDate(tt.date), "date %q", tt.date)
	}
}

func TestParseDateOrdering(t *testing.T) {
	pickup, err := ParseDate("2025-06-01")
	assert.NoError(t, err)
	ret, err := ParseDate("2025-06-05")
	assert.NoError(t, err)
	assert.True(t, pickup.Before(ret))

	same, err := ParseDate("2025-06-01")
	assert.NoError(t, err)
	assert.False(t, pickup.Before(same))
}
