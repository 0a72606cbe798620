// Package gen compiles entity search declarations into generated Go
// artifacts.
//
// This package is the middle of the facetc pipeline. It turns scanned
// entity declarations into canonical search specs and renders one set of
// artifacts per entity: the filter schema, the query transform, the
// aggregation logic and the facet catalog.
//
// # Architecture
//
// The compilation pipeline follows this flow:
//
//	Entity declaration (schema builders)
//	        ↓
//	   load.Entity (scanned declaration)
//	        ↓
//	   EntitySearchSpec (canonical spec, the generation key)
//	        ↓
//	   Emitter (artifact rendering, the emit package)
//	        ↓
//	   Generated code ({entity}_filter.go, {entity}_query.go, ...)
//
// # Key Types
//
//   - Graph: Holds the specs of all entities of one generation pass
//   - EntitySearchSpec: Canonical, immutable spec of one entity
//   - FacetSpec: Canonical form of one facet declaration
//   - Config: Global configuration for a generation pass
//   - Generator: Renders the graph's artifacts to disk
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SpecError: Declaration errors, matched by ErrInvalidSpec
//   - ConfigError: Configuration errors, matched by ErrMissingConfig
//   - GenerationError: Rendering errors, matched by ErrGenerationFailed
//
// A failing entity never fails the pass: it is skipped and reported,
// and the remaining entities generate normally. Strict mode turns any
// skip into a pass failure after all entities were attempted.
//
// # Usage
//
//	graph, err := gen.NewGraph(cfg, entities...)
//	if err != nil {
//	    return err
//	}
//	generator := gen.NewGenerator(graph, "./search")
//	generator.WithEmitter(emit.New(generator))
//	report, err := generator.Generate(ctx)
//
// # Incremental Generation
//
// Every spec hashes deterministically over its canonical encoding. With
// a cache file configured, entities whose hash is unchanged since the
// last pass are skipped and reported as cached.
package gen
