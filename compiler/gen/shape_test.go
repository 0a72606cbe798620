package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetkit/facetc/schema"
	"github.com/facetkit/facetc/schema/facet"
)

func TestFacetShape(t *testing.T) {
	tests := []struct {
		name   string
		facet  *FacetSpec
		fields []ShapeField
	}{
		{
			name:  "categorical",
			facet: &FacetSpec{Property: "brand", Type: schema.TypeString, Kind: facet.KindCategorical},
			fields: []ShapeField{
				{Name: "Brand", Value: ValueStrings},
			},
		},
		{
			name:  "hierarchical shapes like categorical",
			facet: &FacetSpec{Property: "category", Type: schema.TypeString, Kind: facet.KindHierarchical},
			fields: []ShapeField{
				{Name: "Category", Value: ValueStrings},
			},
		},
		{
			name:  "range",
			facet: &FacetSpec{Property: "price", Type: schema.TypeDecimal, Kind: facet.KindRange},
			fields: []ShapeField{
				{Name: "MinPrice", Value: ValueSourceNumeric},
				{Name: "MaxPrice", Value: ValueSourceNumeric},
			},
		},
		{
			name:  "boolean",
			facet: &FacetSpec{Property: "in_stock", Type: schema.TypeBool, Kind: facet.KindBoolean},
			fields: []ShapeField{
				{Name: "InStock", Value: ValueBool},
			},
		},
		{
			name:  "date range",
			facet: &FacetSpec{Property: "created_at", Type: schema.TypeDate, Kind: facet.KindDateRange},
			fields: []ShapeField{
				{Name: "CreatedAtFrom", Value: ValueTime},
				{Name: "CreatedAtTo", Value: ValueTime},
			},
		},
		{
			name:  "geo",
			facet: &FacetSpec{Property: "location", Type: schema.TypeReference, Kind: facet.KindGeo},
			fields: []ShapeField{
				{Name: "LocationLatitude", Value: ValueFloat},
				{Name: "LocationLongitude", Value: ValueFloat},
				{Name: "LocationRadiusKm", Value: ValueFloat},
			},
		},
		{
			name:  "navigation path flattens into the field name",
			facet: &FacetSpec{Property: "customer.name", Type: schema.TypeString, Kind: facet.KindCategorical},
			fields: []ShapeField{
				{Name: "CustomerName", Value: ValueStrings},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := FacetShape(tt.facet)
			require.NoError(t, err)
			assert.Equal(t, tt.fields, shape.Fields)
		})
	}

	t.Run("invalid kind", func(t *testing.T) {
		_, err := FacetShape(&FacetSpec{Property: "x", Kind: facet.KindInvalid})
		require.ErrorIs(t, err, ErrInvalidSpec)
	})
}

func TestNumericGoType(t *testing.T) {
	assert.Equal(t, "int64", NumericGoType(schema.TypeInteger))
	assert.Equal(t, "float64", NumericGoType(schema.TypeDecimal))
	assert.Equal(t, "float64", NumericGoType(schema.TypeFloat))
}
