package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() Records {
	return Records{
		{"name": "Keyboard", "brand": "Acme", "price": 49.0, "customer": Record{"name": "Initech"}},
		{"name": "Mouse", "brand": "Acme", "price": 19.0, "customer": map[string]any{"name": "Hooli"}},
		{"name": "Monitor", "brand": "Globex", "price": 199.0},
		{"name": "Cable", "brand": "Globex"},
	}
}

func TestRecordGet(t *testing.T) {
	r := Record{"brand": "Acme", "customer": Record{"name": "Initech", "address": Record{"city": "Austin"}}}

	v, ok := r.Get("brand")
	require.True(t, ok)
	assert.Equal(t, "Acme", v)

	v, ok = r.Get("customer.name")
	require.True(t, ok)
	assert.Equal(t, "Initech", v)

	v, ok = r.Get("customer.address.city")
	require.True(t, ok)
	assert.Equal(t, "Austin", v)

	_, ok = r.Get("customer.missing")
	assert.False(t, ok)
	_, ok = r.Get("brand.nested")
	assert.False(t, ok, "dotting into a scalar yields no value")
}

func TestRecordsValues(t *testing.T) {
	vs, err := catalog().Values("price")
	require.NoError(t, err)
	assert.Len(t, vs, 3, "records without the property are excluded")

	vs, err = catalog().Values("customer.name")
	require.NoError(t, err)
	assert.ElementsMatch(t, []any{"Initech", "Hooli"}, vs)
}

func TestRecordsFilter(t *testing.T) {
	brand := StringField("brand")
	out := catalog().Filter(brand.EQ("Acme"))
	require.Len(t, out, 2)

	t.Run("nil predicate keeps everything", func(t *testing.T) {
		assert.Len(t, catalog().Filter(nil), 4)
	})

	t.Run("navigation path predicate", func(t *testing.T) {
		customer := StringField("customer.name")
		out := catalog().Filter(customer.In("Initech"))
		require.Len(t, out, 1)
		assert.Equal(t, "Keyboard", out[0]["name"])
	})
}

func TestRecordsApply(t *testing.T) {
	brand := StringField("brand")

	t.Run("filter then sort ascending", func(t *testing.T) {
		q := New().Where(brand.EQ("Acme")).OrderBy("price", false)
		out := catalog().Apply(q)
		require.Len(t, out, 2)
		assert.Equal(t, "Mouse", out[0]["name"])
		assert.Equal(t, "Keyboard", out[1]["name"])
	})

	t.Run("descending", func(t *testing.T) {
		q := New().OrderBy("price", true)
		out := catalog().Apply(q)
		assert.Equal(t, "Monitor", out[0]["name"])
	})

	t.Run("nulls order last regardless of direction", func(t *testing.T) {
		for _, desc := range []bool{false, true} {
			out := catalog().Apply(New().OrderBy("price", desc))
			assert.Equal(t, "Cable", out[len(out)-1]["name"])
		}
	})

	t.Run("unknown order field leaves input order", func(t *testing.T) {
		out := catalog().Apply(New().OrderBy("weight", false))
		names := make([]any, 0, len(out))
		for _, r := range out {
			names = append(names, r["name"])
		}
		assert.Equal(t, []any{"Keyboard", "Mouse", "Monitor", "Cable"}, names)
	})
}
