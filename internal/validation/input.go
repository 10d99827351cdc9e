package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// MaxEmailLength is the RFC 5321 limit: 64 local + 1 + 255 domain.
const MaxEmailLength = 320

// Email checks the length and form of a bare address. Display names
// ("John <john@example.com>") are refused since the store stores the
// address verbatim.
func Email(email string) error {
	if n := utf8.RuneCountInString(email); n > MaxEmailLength {
		return fmt.Errorf("exceeds maximum length of %d characters (got %d)", MaxEmailLength, n)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("not a valid email address")
	}
	if !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@"):], ".") {
		return fmt.Errorf("domain must contain a dot")
	}
	return nil
}

// CountryCode normalizes an ISO 3166-1 alpha-2 code to upper case.
func CountryCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 || code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return "", fmt.Errorf("must be a two-letter ISO country code")
	}
	return code, nil
}
