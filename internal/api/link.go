package api

import (
	"regexp"
	"strings"
)

// Link relations used for pagination.
const (
	RelNext  = "next"
	RelPrev  = "prev"
	RelFirst = "first"
	RelLast  = "last"
)

var (
	// A link-value is "<uri>" followed by ;-separated params up to the next
	// link-value. Matching on the brackets keeps commas inside URLs intact.
	linkValueRegexp = regexp.MustCompile(`<([^>]*)>([^<]*)`)
	relParamRegexp  = regexp.MustCompile(`(?i);\s*rel\s*=\s*"([^"]*)"`)
)

// ParseLinkHeader parses an RFC 5988 Link header into relation -> URL.
// Segments without a quoted rel parameter are skipped. The result is never nil.
func ParseLinkHeader(header string) map[string]string {
	links := map[string]string{}
	if strings.TrimSpace(header) == "" {
		return links
	}

	for _, m := range linkValueRegexp.FindAllStringSubmatch(header, -1) {
		target := strings.TrimSpace(m[1])
		if target == "" {
			continue
		}
		rel := relParamRegexp.FindStringSubmatch(m[2])
		if rel == nil {
			continue
		}
		for _, name := range strings.Fields(strings.ToLower(rel[1])) {
			if _, seen := links[name]; !seen {
				links[name] = target
			}
		}
	}
	return links
}
