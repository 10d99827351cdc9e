package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	valid := []string{"john.doe@example.com", "a+tag@shop.example.co.uk"}
	for _, email := range valid {
		assert.NoError(t, Email(email), email)
	}

	invalid := []struct {
		email string
		want  string
	}{
		{"", "not a valid email"},
		{"john.doe", "not a valid email"},
		{"John <john@example.com>", "not a valid email"},
		{"john@localhost", "domain must contain a dot"},
		{strings.Repeat("a", 321), "exceeds maximum length"},
	}
	for _, tt := range invalid {
		assert.ErrorContains(t, Email(tt.email), tt.want, tt.email)
	}
}

func TestCountryCode(t *testing.T) {
	code, err := CountryCode(" us ")
	require.NoError(t, err)
	assert.Equal(t, "US", code)

	for _, bad := range []string{"", "USA", "U1", "é"} {
		_, err := CountryCode(bad)
		assert.Error(t, err, bad)
	}
}
