package api

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 is mandated by OAuth 1.0a
	"encoding/base64"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// SignatureMethod is the only OAuth signature method the API accepts.
	SignatureMethod = "HMAC-SHA1"

	DefaultNonceLength = 32
	MinNonceLength     = 8

	nonceAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Signer produces one-legged OAuth 1.0a signatures from consumer credentials.
// There is no token exchange, so the token secret half of the signing key is
// always empty.
type Signer struct {
	consumerKey    string
	consumerSecret string
	nonceLength    int
	random         io.Reader
	now            func() time.Time
}

// SignerOption configures a Signer.
type SignerOption func(*Signer)

// WithNonceLength sets the nonce length. Values <= 0 select DefaultNonceLength;
// positive values below MinNonceLength are raised to MinNonceLength.
func WithNonceLength(n int) SignerOption {
	return func(s *Signer) {
		s.nonceLength = n
	}
}

// WithRandom replaces the random source used for nonces (crypto/rand by default).
func WithRandom(r io.Reader) SignerOption {
	return func(s *Signer) {
		s.random = r
	}
}

// WithClock replaces the clock used for oauth_timestamp.
func WithClock(now func() time.Time) SignerOption {
	return func(s *Signer) {
		s.now = now
	}
}

// NewSigner creates a Signer for the given consumer credentials.
func NewSigner(consumerKey, consumerSecret string, opts ...SignerOption) *Signer {
	s := &Signer{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		nonceLength:    DefaultNonceLength,
		random:         rand.Reader,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	switch {
	case s.nonceLength <= 0:
		s.nonceLength = DefaultNonceLength
	case s.nonceLength < MinNonceLength:
		s.nonceLength = MinNonceLength
	}
	return s
}

// Sign returns the OAuth protocol parameters merged with params, including
// oauth_signature. rawURL must not carry a query string; query parameters
// belong in params. Every call draws a fresh timestamp and nonce.
func (s *Signer) Sign(method, rawURL string, params map[string]string) (map[string]string, error) {
	nonce, err := s.nonce()
	if err != nil {
		return nil, fmt.Errorf("failed to generate oauth nonce: %w", err)
	}

	signed := map[string]string{
		"oauth_consumer_key":     s.consumerKey,
		"oauth_signature_method": SignatureMethod,
		"oauth_timestamp":        strconv.FormatInt(s.now().Unix(), 10),
		"oauth_nonce":            nonce,
	}
	for k, v := range params {
		signed[k] = v
	}

	signed["oauth_signature"] = s.signature(method, rawURL, signed)
	return signed, nil
}

// signature computes the base64 HMAC-SHA1 of the signature base string.
func (s *Signer) signature(method, rawURL string, params map[string]string) string {
	key := percentEncode(s.consumerSecret) + "&"
	mac := hmac.New(sha1.New, []byte(key))
	_, _ = mac.Write([]byte(signatureBaseString(method, rawURL, params)))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// signatureBaseString joins the upper-cased method, the encoded URL and the
// encoded parameter string with '&'.
//
// Keys and values are percent-encoded, sorted by encoded key, then
// form-encoded once more into the parameter string. The second pass turns
// every '%' into "%25"; the reference server verifies against exactly this.
func signatureBaseString(method, rawURL string, params map[string]string) string {
	encoded := make(map[string]string, len(params))
	keys := make([]string, 0, len(params))
	for k, v := range params {
		ek := percentEncode(k)
		encoded[ek] = percentEncode(v)
		keys = append(keys, ek)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, formEncode(k)+"="+formEncode(encoded[k]))
	}
	paramString := strings.Join(pairs, "&")

	return strings.Join([]string{
		strings.ToUpper(method),
		percentEncode(rawURL),
		percentEncode(paramString),
	}, "&")
}

func (s *Signer) nonce() (string, error) {
	const limit = 256 - 256%len(nonceAlphabet)

	out := make([]byte, 0, s.nonceLength)
	buf := make([]byte, s.nonceLength)
	for len(out) < s.nonceLength {
		if _, err := io.ReadFull(s.random, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, nonceAlphabet[int(b)%len(nonceAlphabet)])
			if len(out) == s.nonceLength {
				break
			}
		}
	}
	return string(out), nil
}

// percentEncode escapes everything except RFC 3986 unreserved characters
// and '/'.
func percentEncode(s string) string {
	return escape(s, false)
}

// formEncode is percentEncode with spaces written as '+'.
func formEncode(s string) string {
	return escape(s, true)
}

func escape(s string, spaceAsPlus bool) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c) || c == '/':
			b.WriteByte(c)
		case c == ' ' && spaceAsPlus:
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0F])
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
