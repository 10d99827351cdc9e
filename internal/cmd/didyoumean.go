package cmd

import "strings"

// maxSuggestDistance is the largest edit distance still offered as a suggestion.
const maxSuggestDistance = 3

// levenshtein computes the edit distance between two strings using a
// single rolling row.
func levenshtein(a, b string) int {
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := i - 1
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			next := min(row[j]+1, row[j-1]+1, prev+cost)
			prev = row[j]
			row[j] = next
		}
	}
	return row[len(b)]
}

// closest returns the candidate nearest to input, compared case-insensitively
// after trim has been applied to both sides. Ties keep the first candidate.
func closest(input string, candidates []string, trim func(string) string) string {
	input = strings.ToLower(trim(input))
	if input == "" {
		return ""
	}
	best := maxSuggestDistance + 1
	match := ""
	for _, c := range candidates {
		if d := levenshtein(input, strings.ToLower(trim(c))); d < best {
			best = d
			match = c
		}
	}
	return match
}

// suggestCommand finds the closest command name to the unknown input.
func suggestCommand(unknown string, commands []string) string {
	return closest(unknown, commands, strings.TrimSpace)
}

// suggestFlag finds the closest flag to the unknown input, ignoring dashes.
func suggestFlag(unknown string, flagNames []string) string {
	return closest(unknown, flagNames, func(s string) string { return strings.TrimLeft(s, "-") })
}
