package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	tests := []struct {
		input   string
		want    FlexInt
		wantErr bool
	}{
		{`42`, 42, false},
		{`"42"`, 42, false},
		{`""`, 0, false},
		{`"abc"`, 0, true},
		{`true`, 0, true},
	}
	for _, tt := range tests {
		var got FlexInt
		err := json.Unmarshal([]byte(tt.input), &got)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestFlexFloatAndString(t *testing.T) {
	var f FlexFloat
	require.NoError(t, json.Unmarshal([]byte(`"12.5"`), &f))
	assert.Equal(t, FlexFloat(12.5), f)

	var s FlexString
	require.NoError(t, json.Unmarshal([]byte(`17`), &s))
	assert.Equal(t, "17", s.String())
	require.NoError(t, json.Unmarshal([]byte(`1.5`), &s))
	assert.Equal(t, "1.5", s.String())
}

func TestMoney(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"19.990"`), &m))
	assert.True(t, m.Valid)
	assert.Equal(t, "19.99", m.String())

	require.NoError(t, json.Unmarshal([]byte(`7.25`), &m))
	assert.Equal(t, "7.25", m.String())

	require.NoError(t, json.Unmarshal([]byte(`""`), &m))
	assert.False(t, m.Valid)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`"ten"`), &m))

	data, err = json.Marshal(MustMoney("5.00"))
	require.NoError(t, err)
	assert.Equal(t, `"5"`, string(data))
}

func TestTime(t *testing.T) {
	var ts Time
	require.NoError(t, json.Unmarshal([]byte(`"2017-03-23T17:01:14"`), &ts))
	assert.Equal(t, time.Date(2017, 3, 23, 17, 1, 14, 0, time.UTC), ts.Time)

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2017-03-23T17:01:14"`, string(data))

	require.NoError(t, json.Unmarshal([]byte(`"2017-03-23T17:01:14Z"`), &ts))
	assert.Equal(t, 2017, ts.Year())

	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestProductDecode(t *testing.T) {
	body := `{
		"id": 794,
		"name": "Premium Quality",
		"type": "simple",
		"date_created": "2017-03-23T17:01:14",
		"regular_price": "21.99",
		"sale_price": "",
		"total_sales": "3",
		"categories": [{"id": 9, "name": "Clothing", "slug": "clothing"}],
		"meta_data": [{"id": 1, "key": "_color", "value": {"hex": "#fff"}}]
	}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	assert.Equal(t, 794, p.ID)
	assert.Equal(t, "Premium Quality", *p.Name)
	assert.Equal(t, "21.99", p.RegularPrice.String())
	require.NotNil(t, p.SalePrice)
	assert.False(t, p.SalePrice.Valid)
	assert.Equal(t, FlexInt(3), p.TotalSales)
	assert.Equal(t, 2017, p.DateCreated.Year())
	assert.Equal(t, "clothing", p.Categories[0].Slug)
	assert.Equal(t, map[string]any{"hex": "#fff"}, p.MetaData[0].Value)
}

func TestPtr(t *testing.T) {
	p := Ptr("x")
	require.NotNil(t, p)
	assert.Equal(t, "x", *p)
}
