package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	// Wednesday
	now := time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"today", time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)},
		{"Yesterday", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		{"wed", time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)},
		{"last wednesday", time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)},
		{"monday", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{"sat", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
		{"30m ago", time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC)},
		{"2h ago", time.Date(2024, 3, 13, 13, 30, 0, 0, time.UTC)},
		{"7d ago", time.Date(2024, 3, 6, 15, 30, 0, 0, time.UTC)},
		{"2w ago", time.Date(2024, 2, 28, 15, 30, 0, 0, time.UTC)},
		{"1mo ago", time.Date(2024, 2, 13, 15, 30, 0, 0, time.UTC)},
		{"2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-01-01T08:15:00", time.Date(2024, 1, 1, 8, 15, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in, now)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseDate_RFC3339KeepsZone(t *testing.T) {
	got, err := ParseDate("2024-01-01T10:00:00+02:00", time.Now())
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC).Equal(got))
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "  ", "0d ago", "3y ago", "next friday", "2024-13-01", "soon"} {
		_, err := ParseDate(in, time.Now())
		assert.Error(t, err, in)
	}
}
