// Package emit renders the generated search artifacts with Jennifer.
//
// This package implements the gen.Emitter interface. Each entity in the
// spec graph produces up to four files:
//
//	{output}/
//	├── {entity}_filter.go       # Filter struct (the search request schema)
//	├── {entity}_query.go        # Apply{Entity}Filter, Apply{Entity}Sort
//	├── {entity}_aggregations.go # Aggregate{Entity} over a candidate set
//	└── {entity}_metadata.go     # {Entity}Facets catalog
//
// Usage:
//
//	generator := gen.NewGenerator(graph, outDir)
//	generator.WithEmitter(emit.New(generator))
//	generator.Generate(ctx)
package emit

import (
	"github.com/dave/jennifer/jen"

	"github.com/facetkit/facetc/compiler/gen"
)

// Emitter renders the standard search artifacts.
type Emitter struct {
	h gen.Helper
}

// New creates an emitter rendering through the given helper. The helper
// parameter is usually the *gen.Generator itself.
func New(h gen.Helper) *Emitter {
	return &Emitter{h: h}
}

// Filter emits the filter-schema artifact ({entity}_filter.go).
func (e *Emitter) Filter(s *gen.EntitySearchSpec) (*jen.File, error) {
	return genFilter(e.h, s)
}

// Predicate emits the query-transform artifact ({entity}_query.go).
func (e *Emitter) Predicate(s *gen.EntitySearchSpec) (*jen.File, error) {
	return genPredicate(e.h, s)
}

// Aggregations emits the aggregation artifact ({entity}_aggregations.go).
func (e *Emitter) Aggregations(s *gen.EntitySearchSpec) (*jen.File, error) {
	return genAggregations(e.h, s)
}

// Metadata emits the facet-catalog artifact ({entity}_metadata.go).
func (e *Emitter) Metadata(s *gen.EntitySearchSpec) (*jen.File, error) {
	return genMetadata(e.h, s)
}

var _ gen.Emitter = (*Emitter)(nil)
