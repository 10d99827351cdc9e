package outfmt

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	SKU   string `json:"sku,omitempty"`
	Price string `json:"price"`
}

var products = []product{
	{ID: 794, Name: "Premium Quality", SKU: "PQ-1", Price: "21.99"},
	{ID: 795, Name: "Ship Your Idea", Price: "9.5"},
}

func TestParse(t *testing.T) {
	tests := map[string]Mode{"": Text, "text": Text, "json": JSON, "jsonl": JSONL, "ndjson": JSONL}
	for in, want := range tests {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("yaml")
	assert.ErrorContains(t, err, `invalid output format: "yaml"`)
}

func TestModeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Text, ModeFromContext(ctx))
	assert.False(t, IsJSON(ctx))

	ctx = WithMode(ctx, JSONL)
	assert.True(t, IsJSON(ctx))
	assert.True(t, IsJSONL(ctx))
	assert.Equal(t, "jsonl", ModeFromContext(ctx).String())

	assert.False(t, IsCompact(ctx))
	assert.True(t, IsCompact(WithCompact(ctx, true)))
}

func TestWriteJSONMaybeCompact(t *testing.T) {
	var pretty, compact bytes.Buffer
	require.NoError(t, WriteJSON(&pretty, products[1]))
	require.NoError(t, WriteJSONMaybeCompact(&compact, products[1], true))

	assert.Equal(t, "{\n  \"id\": 795,\n  \"name\": \"Ship Your Idea\",\n  \"price\": \"9.5\"\n}\n", pretty.String())
	assert.Equal(t, `{"id":795,"name":"Ship Your Idea","price":"9.5"}`+"\n", compact.String())
}
