package cmd

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"products", "products", 0},
		{"prodcuts", "products", 2},
		{"order", "orders", 1},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []string{"products", "orders", "customers", "coupons"}

	tests := []struct {
		input string
		want  string
	}{
		{"prodcuts", "products"},
		{"order", "orders"},
		{"CUSTOMER", "customers"},
		{"zzzzzzzz", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := suggestCommand(tt.input, commands); got != tt.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flagNames := []string{"--per-page", "--page", "--status", "--search"}

	if got := suggestFlag("--stauts", flagNames); got != "--status" {
		t.Errorf("suggestFlag(--stauts) = %q, want --status", got)
	}
	if got := suggestFlag("--perpage", flagNames); got != "--per-page" {
		t.Errorf("suggestFlag(--perpage) = %q, want --per-page", got)
	}
	if got := suggestFlag("--", flagNames); got != "" {
		t.Errorf("suggestFlag(--) = %q, want empty", got)
	}
}
