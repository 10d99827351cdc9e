package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type status string

func (s status) String() string { return "status:" + string(s) }

func TestParamsNormalize(t *testing.T) {
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var nilInt *int
	seven := 7

	params := Params{
		"search":   "blue shirt",
		"include":  []int{1, 2, 3},
		"slugs":    []string{"a", "b"},
		"empty":    []int{},
		"none":     nil,
		"nilptr":   nilInt,
		"ptr":      &seven,
		"featured": true,
		"per_page": 50,
		"big":      int64(1) << 40,
		"ratio":    0.25,
		"after":    when,
		"zero":     time.Time{},
		"custom":   status("x"),
		"int64s":   []int64{4, 5},
	}

	assert.Equal(t, map[string]string{
		"search":   "blue shirt",
		"include":  "1,2,3",
		"slugs":    "a,b",
		"ptr":      "7",
		"featured": "true",
		"per_page": "50",
		"big":      "1099511627776",
		"ratio":    "0.25",
		"after":    "2024-05-01T12:00:00Z",
		"custom":   "status:x",
		"int64s":   "4,5",
	}, params.Normalize())
}

func TestParamsNormalize_Nil(t *testing.T) {
	var params Params
	assert.Empty(t, params.Normalize())
	assert.Empty(t, params.Values().Encode())
}

func TestParamsValues(t *testing.T) {
	params := Params{}.Set("exclude", []int{9, 10}).Set("order", "desc")
	assert.Equal(t, "exclude=9%2C10&order=desc", params.Values().Encode())
}

func TestListParams(t *testing.T) {
	after := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := ListParams{
		ListOptions: ListOptions{Page: 3, PerPage: 20},
		Context:     "view",
		Search:      "mug",
		After:       &after,
		Include:     []int{4},
		Order:       "asc",
		OrderBy:     "title",
	}

	got := p.params().Normalize()

	assert.Equal(t, map[string]string{
		"context": "view",
		"search":  "mug",
		"after":   "2024-01-02T03:04:05Z",
		"include": "4",
		"order":   "asc",
		"orderby": "title",
	}, got)
}

func TestProductListParams(t *testing.T) {
	p := ProductListParams{
		SKU:      "MUG-1",
		Featured: Ptr(false),
		Category: "12",
		Parent:   []int{5, 6},
	}

	assert.Equal(t, map[string]string{
		"sku":      "MUG-1",
		"featured": "false",
		"category": "12",
		"parent":   "5,6",
	}, p.params().Normalize())
}
