package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetkit/facetc/compiler/load"
	"github.com/facetkit/facetc/runtime/fulltext"
	"github.com/facetkit/facetc/schema"
	"github.com/facetkit/facetc/schema/facet"
)

func productEntity() *load.Entity {
	return &load.Entity{
		Name: "Product",
		Facets: []*load.Facet{
			{Name: "brand", Type: "string", Kind: "Categorical", Limit: 20},
			{Name: "price", Type: "decimal", Kind: "Range"},
			{Name: "in_stock", Type: "boolean", Kind: "Boolean"},
			{Name: "category", Type: "string", Kind: "Hierarchical", Hierarchical: true},
		},
		FullText: []*load.FullText{
			{Name: "name", Type: "string", Weight: 2, Behavior: "Contains"},
		},
		Sortable: []*load.Sortable{
			{Name: "price", Sortable: true},
		},
	}
}

func TestNewSpec(t *testing.T) {
	spec, err := NewSpec(productEntity())
	require.NoError(t, err)

	assert.Equal(t, "Product", spec.EntityName)
	assert.Equal(t, "ProductSearchFilter", spec.FilterName, "filter name defaults from the entity name")
	assert.Equal(t, fulltext.StrategyPattern, spec.Strategy)
	assert.True(t, spec.Aggregations, "aggregations default to enabled")
	assert.True(t, spec.Metadata, "metadata defaults to enabled")
	assert.True(t, spec.HasFullText())
	assert.True(t, spec.HasSortable())

	require.Len(t, spec.Facets, 4)
	brand := spec.Facets[0]
	assert.Equal(t, facet.KindCategorical, brand.Kind)
	assert.Equal(t, schema.TypeString, brand.Type)
	assert.Equal(t, "brand", brand.DisplayName, "display name defaults to the property")
	assert.Equal(t, facet.OrderByCount, brand.OrderBy)

	category := spec.Facets[3]
	assert.True(t, category.Hierarchical)
}

func TestNewSpecAnnotation(t *testing.T) {
	e := productEntity()
	off := false
	e.Annotations = map[string]any{
		"Searchable": schema.Searchable{
			FilterName:   "ProductFilter",
			Strategy:     "natural",
			Aggregations: &off,
		},
	}
	spec, err := NewSpec(e)
	require.NoError(t, err)
	assert.Equal(t, "ProductFilter", spec.FilterName)
	assert.Equal(t, fulltext.StrategyNatural, spec.Strategy)
	assert.False(t, spec.Aggregations)
	assert.True(t, spec.Metadata)

	t.Run("generic annotation bag from a marshaled entity", func(t *testing.T) {
		e := productEntity()
		e.Annotations = map[string]any{
			"Searchable": map[string]any{"strategy": "boolean"},
		}
		spec, err := NewSpec(e)
		require.NoError(t, err)
		assert.Equal(t, fulltext.StrategyBoolean, spec.Strategy)
	})

	t.Run("unknown strategy fails the spec", func(t *testing.T) {
		e := productEntity()
		e.Annotations = map[string]any{
			"Searchable": schema.Searchable{Strategy: "fuzzy"},
		}
		_, err := NewSpec(e)
		require.ErrorIs(t, err, ErrInvalidSpec)
	})
}

func TestNewSpecValidation(t *testing.T) {
	specErr := func(t *testing.T, e *load.Entity, contains string) {
		t.Helper()
		_, err := NewSpec(e)
		require.ErrorIs(t, err, ErrInvalidSpec)
		assert.Contains(t, err.Error(), contains)
	}

	t.Run("duplicate facet property", func(t *testing.T) {
		e := productEntity()
		e.Facets = append(e.Facets, &load.Facet{Name: "brand", Type: "string", Kind: "Categorical"})
		specErr(t, e, "facet redeclared")
	})

	t.Run("range facet over non-numeric type", func(t *testing.T) {
		e := &load.Entity{Name: "P", Facets: []*load.Facet{
			{Name: "price", Type: "string", Kind: "Range"},
		}}
		specErr(t, e, "numeric")
	})

	t.Run("date-range facet over non-date type", func(t *testing.T) {
		e := &load.Entity{Name: "P", Facets: []*load.Facet{
			{Name: "created", Type: "string", Kind: "DateRange"},
		}}
		specErr(t, e, "date")
	})

	t.Run("boolean facet over non-boolean type", func(t *testing.T) {
		e := &load.Entity{Name: "P", Facets: []*load.Facet{
			{Name: "flag", Type: "integer", Kind: "Boolean"},
		}}
		specErr(t, e, "boolean")
	})

	t.Run("negative limit", func(t *testing.T) {
		e := &load.Entity{Name: "P", Facets: []*load.Facet{
			{Name: "brand", Type: "string", Kind: "Categorical", Limit: -1},
		}}
		specErr(t, e, "negative limit")
	})

	t.Run("negative weight", func(t *testing.T) {
		e := &load.Entity{Name: "P", FullText: []*load.FullText{
			{Name: "name", Type: "string", Weight: -2},
		}}
		specErr(t, e, "negative weight")
	})

	t.Run("navigation root must prefix the property path", func(t *testing.T) {
		e := &load.Entity{Name: "P", Facets: []*load.Facet{
			{Name: "customer.name", Type: "string", Kind: "Categorical", NavigationPath: "vendor"},
		}}
		specErr(t, e, "navigation root")
	})

	t.Run("auto-include requires a navigation path", func(t *testing.T) {
		e := &load.Entity{Name: "P", Facets: []*load.Facet{
			{Name: "brand", Type: "string", Kind: "Categorical", AutoInclude: true},
		}}
		specErr(t, e, "auto-include")
	})

	t.Run("unknown kind", func(t *testing.T) {
		e := &load.Entity{Name: "P", Facets: []*load.Facet{
			{Name: "brand", Type: "string", Kind: "Tag"},
		}}
		specErr(t, e, "kind")
	})
}

func TestValidateDependencies(t *testing.T) {
	base := func(names ...*load.Facet) *load.Entity {
		return &load.Entity{Name: "P", Facets: names}
	}
	cat := func(name, dependsOn string) *load.Facet {
		return &load.Facet{Name: name, Type: "string", Kind: "Categorical", DependsOn: dependsOn}
	}

	t.Run("valid chain", func(t *testing.T) {
		_, err := NewSpec(base(cat("department", ""), cat("category", "department"), cat("subcategory", "category")))
		require.NoError(t, err)
	})

	t.Run("dangling reference", func(t *testing.T) {
		_, err := NewSpec(base(cat("category", "department")))
		require.ErrorIs(t, err, ErrInvalidSpec)
		assert.Contains(t, err.Error(), "unknown facet")
	})

	t.Run("self reference", func(t *testing.T) {
		_, err := NewSpec(base(cat("category", "category")))
		require.ErrorIs(t, err, ErrInvalidSpec)
		assert.Contains(t, err.Error(), "cycle")
	})

	t.Run("cycle", func(t *testing.T) {
		_, err := NewSpec(base(cat("a", "b"), cat("b", "a")))
		require.ErrorIs(t, err, ErrInvalidSpec)
		assert.Contains(t, err.Error(), "cycle")
	})
}

func TestSpecHash(t *testing.T) {
	t.Run("structurally identical specs hash identically", func(t *testing.T) {
		a, err := NewSpec(productEntity())
		require.NoError(t, err)
		b, err := NewSpec(productEntity())
		require.NoError(t, err)

		ha, err := a.Hash()
		require.NoError(t, err)
		hb, err := b.Hash()
		require.NoError(t, err)
		assert.Equal(t, ha, hb)
		assert.Len(t, ha, 64)
	})

	t.Run("any change changes the hash", func(t *testing.T) {
		a, err := NewSpec(productEntity())
		require.NoError(t, err)
		e := productEntity()
		e.Facets[0].Limit = 10
		b, err := NewSpec(e)
		require.NoError(t, err)

		ha, err := a.Hash()
		require.NoError(t, err)
		hb, err := b.Hash()
		require.NoError(t, err)
		assert.NotEqual(t, ha, hb)
	})
}
