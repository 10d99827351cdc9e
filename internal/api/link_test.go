package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLinkHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   map[string]string
	}{
		{
			name:   "next and last",
			header: `<https://x/?page=2>; rel="next", <https://x/?page=9>; rel="last"`,
			want:   map[string]string{"next": "https://x/?page=2", "last": "https://x/?page=9"},
		},
		{
			name:   "empty",
			header: "",
			want:   map[string]string{},
		},
		{
			name:   "whitespace only",
			header: "   ",
			want:   map[string]string{},
		},
		{
			name:   "all relations",
			header: `<https://s/p?page=1>; rel="first", <https://s/p?page=2>; rel="prev", <https://s/p?page=4>; rel="next", <https://s/p?page=5>; rel="last"`,
			want: map[string]string{
				"first": "https://s/p?page=1",
				"prev":  "https://s/p?page=2",
				"next":  "https://s/p?page=4",
				"last":  "https://s/p?page=5",
			},
		},
		{
			name:   "malformed segment skipped",
			header: `https://x/?page=1; rel="prev", <https://x/?page=3>; rel="next"`,
			want:   map[string]string{"next": "https://x/?page=3"},
		},
		{
			name:   "segment without rel skipped",
			header: `<https://x/?page=1>; title="first", <https://x/?page=3>; rel="next"`,
			want:   map[string]string{"next": "https://x/?page=3"},
		},
		{
			name:   "other params ignored",
			header: `<https://x/?page=2>; type="application/json"; rel="next"`,
			want:   map[string]string{"next": "https://x/?page=2"},
		},
		{
			name:   "comma inside url",
			header: `<https://x/?include=1,2&page=2>; rel="next"`,
			want:   map[string]string{"next": "https://x/?include=1,2&page=2"},
		},
		{
			name:   "case insensitive rel",
			header: `<https://x/?page=2>; REL="Next"`,
			want:   map[string]string{"next": "https://x/?page=2"},
		},
		{
			name:   "first occurrence wins",
			header: `<https://x/?page=2>; rel="next", <https://x/?page=3>; rel="next"`,
			want:   map[string]string{"next": "https://x/?page=2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLinkHeader(tt.header)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
