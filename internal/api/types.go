package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Ptr returns a pointer to v. Request fields are pointers so that only
// explicitly set fields are sent.
func Ptr[T any](v T) *T {
	return &v
}

// FlexInt handles JSON numbers that may come as strings or integers
type FlexInt int

func (fi *FlexInt) UnmarshalJSON(data []byte) error {
	// Try as int first
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*fi = FlexInt(i)
		return nil
	}
	// Try as string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*fi = 0
			return nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*fi = FlexInt(i)
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into FlexInt", data)
}

// FlexFloat handles JSON numbers that may come as strings or numbers
type FlexFloat float64

func (ff *FlexFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*ff = FlexFloat(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*ff = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*ff = FlexFloat(f)
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into FlexFloat", data)
}

// FlexString handles JSON values that may come as strings or numbers
// and stores them as strings
type FlexString string

func (fs *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*fs = FlexString(s)
		return nil
	}
	// Try as float64 (JSON numbers are float64)
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		if f == float64(int64(f)) {
			*fs = FlexString(strconv.FormatInt(int64(f), 10))
		} else {
			*fs = FlexString(strconv.FormatFloat(f, 'f', -1, 64))
		}
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into FlexString", data)
}

// String returns the string value
func (fs FlexString) String() string {
	return string(fs)
}

// Money is a decimal amount. The API carries amounts as JSON strings and
// uses "" for amounts that are not set; numbers are accepted too.
type Money struct {
	Amount decimal.Decimal
	Valid  bool
}

// NewMoney parses s into a valid Money.
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{Amount: d, Valid: true}, nil
}

// MustMoney is NewMoney for constants; it panics on invalid input.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) String() string {
	if !m.Valid {
		return ""
	}
	return m.Amount.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*m = Money{}
		return nil
	}
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	if strings.TrimSpace(s) == "" {
		*m = Money{}
		return nil
	}
	parsed, err := NewMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

const wooTimeLayout = "2006-01-02T15:04:05"

// Time is a timestamp in the API's format. Site-local dates carry no zone
// ("2017-03-23T17:01:14") and are read as UTC; RFC 3339 is accepted too.
type Time struct {
	time.Time
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(wooTimeLayout))
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal %s into Time", data)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, wooTimeLayout} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as a timestamp", s)
}

// MetaData is a custom key/value pair attached to most resources.
type MetaData struct {
	ID    int    `json:"id,omitempty"`
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Address is a shipping address.
type Address struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address_1,omitempty"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Postcode  string `json:"postcode,omitempty"`
	Country   string `json:"country,omitempty"`
}

// BillingAddress is an Address with contact details.
type BillingAddress struct {
	Address
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Dimensions of a shippable product.
type Dimensions struct {
	Length string `json:"length,omitempty"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

// Download is a downloadable file of a product or variation.
type Download struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	File string `json:"file,omitempty"`
}

// Image is a product or category image.
type Image struct {
	ID              int    `json:"id,omitempty"`
	DateCreated     *Time  `json:"date_created,omitempty"`
	DateCreatedGMT  *Time  `json:"date_created_gmt,omitempty"`
	DateModified    *Time  `json:"date_modified,omitempty"`
	DateModifiedGMT *Time  `json:"date_modified_gmt,omitempty"`
	Src             string `json:"src,omitempty"`
	Name            string `json:"name,omitempty"`
	Alt             string `json:"alt,omitempty"`
}

// Timestamps are the creation and modification dates most resources carry.
type Timestamps struct {
	DateCreated     *Time `json:"date_created,omitempty"`
	DateCreatedGMT  *Time `json:"date_created_gmt,omitempty"`
	DateModified    *Time `json:"date_modified,omitempty"`
	DateModifiedGMT *Time `json:"date_modified_gmt,omitempty"`
}

// Deleted is the response shape of endpoints that report deletion without
// returning the object.
type Deleted struct {
	Deleted  bool            `json:"deleted"`
	Previous json.RawMessage `json:"previous,omitempty"`
}
