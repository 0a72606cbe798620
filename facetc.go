// Package facetc compiles declarative facet definitions into generated
// search artifacts: a filter schema, query-predicate logic, aggregation
// logic, and a UI-facing facet catalog.
//
// An entity declares its searchable surface by embedding [Definition] and
// implementing any of the declaration methods:
//
//	type Product struct{ facetc.Definition }
//
//	func (Product) Facets() []facetc.Facet {
//	    return []facetc.Facet{
//	        facet.Categorical("brand").Limit(20),
//	        facet.Range("price"),
//	        facet.Boolean("in_stock"),
//	    }
//	}
//
//	func (Product) FullText() []facetc.FullTextField {
//	    return []facetc.FullTextField{
//	        fulltext.Field("name").Weight(2),
//	        fulltext.Field("description"),
//	    }
//	}
//
// The compiler/load package scans such declarations, compiler/gen builds the
// canonical search spec and emits the artifacts, and the runtime packages
// back the generated code at query time.
package facetc

import (
	"github.com/facetkit/facetc/schema"
	"github.com/facetkit/facetc/schema/facet"
	"github.com/facetkit/facetc/schema/fulltext"
	"github.com/facetkit/facetc/schema/sortable"
)

type (
	// Facet is the interface for all facet declarations created by the
	// schema/facet package.
	Facet interface {
		Descriptor() *facet.Descriptor
	}

	// FullTextField is the interface for full-text field declarations
	// created by the schema/fulltext package.
	FullTextField interface {
		Descriptor() *fulltext.Descriptor
	}

	// SortableField is the interface for sortable field declarations
	// created by the schema/sortable package.
	SortableField interface {
		Descriptor() *sortable.Descriptor
	}
)

// Entity is the declaration contract consumed by the compiler. Embedding
// Definition provides empty defaults for all methods, so an entity only
// implements the declarations it actually has.
type Entity interface {
	// Facets returns the facet declarations of the entity.
	Facets() []Facet

	// FullText returns the full-text field declarations of the entity.
	FullText() []FullTextField

	// Sortable returns the sortable field declarations of the entity.
	Sortable() []SortableField

	// Annotations returns the type-level annotations of the entity,
	// such as schema.Searchable generation options.
	Annotations() []schema.Annotation
}

// Definition is the default implementation of the Entity interface.
// All entity declarations should embed it.
type Definition struct{}

// Facets of the entity. Empty by default.
func (Definition) Facets() []Facet { return nil }

// FullText fields of the entity. Empty by default.
func (Definition) FullText() []FullTextField { return nil }

// Sortable fields of the entity. Empty by default.
func (Definition) Sortable() []SortableField { return nil }

// Annotations of the entity. Empty by default.
func (Definition) Annotations() []schema.Annotation { return nil }

var _ Entity = (*Definition)(nil)
