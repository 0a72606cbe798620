package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetkit/facetc/schema"
)

func TestCategorical(t *testing.T) {
	fd := Categorical("brand").DisplayName("Brand").Limit(20).OrderBy(OrderByValue).Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "brand", fd.Name)
	assert.Equal(t, KindCategorical, fd.Kind)
	assert.Equal(t, schema.TypeString, fd.Type)
	assert.Equal(t, "Brand", fd.DisplayName)
	assert.Equal(t, 20, fd.Limit)
	assert.Equal(t, OrderByValue, fd.OrderBy)
	assert.False(t, fd.Hierarchical)

	t.Run("negative limit defers an error", func(t *testing.T) {
		fd := Categorical("brand").Limit(-1).Descriptor()
		assert.Error(t, fd.Err)
	})

	t.Run("navigation path", func(t *testing.T) {
		fd := Categorical("customer.name").Navigation("customer").AutoInclude().Descriptor()
		require.NoError(t, fd.Err)
		assert.Equal(t, "customer", fd.NavigationPath)
		assert.True(t, fd.AutoInclude)
	})
}

func TestHierarchical(t *testing.T) {
	fd := Hierarchical("category").DependsOn("department").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, KindHierarchical, fd.Kind)
	assert.True(t, fd.Hierarchical)
	assert.Equal(t, "department", fd.DependsOn)
}

func TestRange(t *testing.T) {
	fd := Range("price").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, KindRange, fd.Kind)
	assert.Equal(t, schema.TypeDecimal, fd.Type, "range type defaults to decimal")

	t.Run("integer override", func(t *testing.T) {
		fd := Range("stock").Type(schema.TypeInteger).Descriptor()
		require.NoError(t, fd.Err)
		assert.Equal(t, schema.TypeInteger, fd.Type)
	})

	t.Run("non-numeric type defers an error", func(t *testing.T) {
		fd := Range("price").Type(schema.TypeString).Descriptor()
		assert.Error(t, fd.Err)
	})

	t.Run("interval policy", func(t *testing.T) {
		fd := Range("price").Policy(RangeFixed).Intervals("0-10,10-50,50+").Descriptor()
		require.NoError(t, fd.Err)
		assert.Equal(t, RangeFixed, fd.RangePolicy)
		assert.Equal(t, "0-10,10-50,50+", fd.RangeIntervals)
	})
}

func TestBoolean(t *testing.T) {
	fd := Boolean("in_stock").DisplayName("In stock").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, KindBoolean, fd.Kind)
	assert.Equal(t, schema.TypeBool, fd.Type)
}

func TestDateRange(t *testing.T) {
	fd := DateRange("created_at").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, KindDateRange, fd.Kind)
	assert.Equal(t, schema.TypeDate, fd.Type)
}

func TestGeo(t *testing.T) {
	fd := Geo("location").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, KindGeo, fd.Kind)
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindCategorical, KindRange, KindBoolean, KindDateRange, KindHierarchical, KindGeo} {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseKind("Invalid")
	assert.Error(t, err)
	_, err = ParseKind("Unknown")
	assert.Error(t, err)
}

func TestParseOrderBy(t *testing.T) {
	o, err := ParseOrderBy("")
	require.NoError(t, err)
	assert.Equal(t, OrderByCount, o)

	o, err = ParseOrderBy("Value")
	require.NoError(t, err)
	assert.Equal(t, OrderByValue, o)

	_, err = ParseOrderBy("Alphabetical")
	assert.Error(t, err)
}

func TestParseRangePolicy(t *testing.T) {
	p, err := ParseRangePolicy("")
	require.NoError(t, err)
	assert.Equal(t, RangeAuto, p)

	p, err = ParseRangePolicy("None")
	require.NoError(t, err)
	assert.Equal(t, RangeNone, p)

	_, err = ParseRangePolicy("Quantile")
	assert.Error(t, err)
}
