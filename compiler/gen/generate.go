package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// basePkg is the import path of this module. Generated code imports the
// runtime packages below it.
const basePkg = "github.com/facetkit/facetc"

// Emitter produces the generated artifacts of one entity. The emit
// package provides the standard implementation; the indirection keeps
// the artifact emission replaceable without touching the orchestration.
type Emitter interface {
	// Filter emits the filter-schema artifact.
	Filter(s *EntitySearchSpec) (*jen.File, error)
	// Predicate emits the query-transform artifact.
	Predicate(s *EntitySearchSpec) (*jen.File, error)
	// Aggregations emits the aggregation artifact.
	Aggregations(s *EntitySearchSpec) (*jen.File, error)
	// Metadata emits the facet-catalog artifact.
	Metadata(s *EntitySearchSpec) (*jen.File, error)
}

// Helper exposes generator state to the emitters.
type Helper interface {
	// NewFile creates a generated file with the standard header.
	NewFile() *jen.File
	// Pkg returns the output package name.
	Pkg() string
	// QueryPkg returns the import path of the runtime query package.
	QueryPkg() string
	// FulltextPkg returns the import path of the runtime fulltext package.
	FulltextPkg() string
	// CatalogPkg returns the import path of the runtime catalog package.
	CatalogPkg() string
}

// Generator renders the generated artifacts of a spec graph to disk.
// Entities are generated in parallel; within one entity, artifacts are
// rendered in dependency order and written all-or-nothing.
type Generator struct {
	graph   *Graph
	workers int
	outDir  string
	pkg     string
	emitter Emitter

	mu     sync.Mutex
	report Report
}

// Report summarizes one generation pass.
type Report struct {
	// Generated lists the entities whose artifacts were (re)written.
	Generated []string
	// Cached lists the entities skipped because their spec was unchanged.
	Cached []string
	// Skipped lists the per-entity failures, including spec-build
	// failures inherited from the graph.
	Skipped []Skip
}

// NewGenerator creates a generator writing to outDir. The output package
// name defaults to the directory base name. An emitter must be set with
// WithEmitter before calling Generate.
func NewGenerator(g *Graph, outDir string) *Generator {
	return &Generator{
		graph:   g,
		workers: runtime.GOMAXPROCS(0),
		outDir:  outDir,
		pkg:     filepath.Base(outDir),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package name.
func (g *Generator) WithPackage(pkg string) *Generator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// WithEmitter sets the artifact emitter.
func (g *Generator) WithEmitter(e Emitter) *Generator {
	if e != nil {
		g.emitter = e
	}
	return g
}

// Generate renders all artifacts of the graph. A failing entity is
// skipped and reported, leaving other entities unaffected; in strict
// mode any skip fails the pass after all entities were attempted.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	if g.emitter == nil {
		return nil, NewConfigError("Emitter", nil, "no emitter set: call WithEmitter() before Generate()")
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return nil, err
	}
	cache, err := loadSpecCache(g.graph.CacheFile)
	if err != nil {
		return nil, err
	}
	g.report = Report{Skipped: append([]Skip(nil), g.graph.Skipped...)}

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, spec := range g.graph.Nodes {
		spec := spec
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := g.generateEntity(spec, cache); err != nil {
				g.skip(spec.EntityName, err)
			}
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	if err := cache.Flush(); err != nil {
		return nil, err
	}
	if g.graph.Strict && len(g.report.Skipped) > 0 {
		return &g.report, NewGenerationError(g.report.Skipped[0].Entity, "", g.report.Skipped[0].Err)
	}
	return &g.report, nil
}

// generateEntity renders and writes all artifacts of one entity. Nothing
// is written unless every artifact rendered successfully, so a failure
// never leaves a partial or corrupt artifact set behind.
func (g *Generator) generateEntity(spec *EntitySearchSpec, cache *specCache) error {
	hash, err := spec.Hash()
	if err != nil {
		return err
	}
	if cache.UpToDate(spec.EntityName, hash) {
		g.cached(spec.EntityName)
		return nil
	}
	type artifact struct {
		name string
		emit func(*EntitySearchSpec) (*jen.File, error)
		cond bool
	}
	artifacts := []artifact{
		{name: "filter", emit: g.emitter.Filter, cond: true},
		{name: "query", emit: g.emitter.Predicate, cond: true},
		{name: "aggregations", emit: g.emitter.Aggregations, cond: spec.Aggregations},
		{name: "metadata", emit: g.emitter.Metadata, cond: spec.Metadata},
	}
	prefix := strings.ToLower(spec.EntityName)
	rendered := make(map[string][]byte, len(artifacts))
	for _, a := range artifacts {
		if !a.cond {
			continue
		}
		f, err := a.emit(spec)
		if err != nil {
			return NewGenerationError(spec.EntityName, a.name, err)
		}
		name := prefix + "_" + a.name + ".go"
		buf, err := g.render(f, name)
		if err != nil {
			return NewGenerationError(spec.EntityName, a.name, err)
		}
		rendered[name] = buf
	}
	for name, buf := range rendered {
		if err := os.WriteFile(filepath.Join(g.outDir, name), buf, 0o644); err != nil {
			return NewGenerationError(spec.EntityName, name, err)
		}
	}
	cache.Record(spec.EntityName, hash)
	g.generated(spec.EntityName)
	g.graph.Logger.Debug("entity generated",
		zap.String("entity", spec.EntityName),
		zap.String("hash", hash),
	)
	return nil
}

// render writes the jennifer file to a buffer and runs the imports
// formatter over it as a final guard, so emitted artifacts are always
// valid, formatted Go.
func (g *Generator) render(f *jen.File, filename string) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}
	out, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}
	return out, nil
}

func (g *Generator) skip(entity string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.report.Skipped = append(g.report.Skipped, Skip{Entity: entity, Err: err})
	g.graph.Logger.Warn("entity skipped", zap.String("entity", entity), zap.Error(err))
}

func (g *Generator) generated(entity string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.report.Generated = append(g.report.Generated, entity)
}

func (g *Generator) cached(entity string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.report.Cached = append(g.report.Cached, entity)
}

// NewFile implements the Helper interface.
func (g *Generator) NewFile() *jen.File {
	f := jen.NewFile(g.pkg)
	if g.graph.Package != "" {
		f = jen.NewFilePathName(g.graph.Package, g.pkg)
	}
	f.HeaderComment("Code generated by facetc. DO NOT EDIT.")
	if g.graph.Header != "" {
		f.HeaderComment(g.graph.Header)
	}
	return f
}

// Pkg implements the Helper interface.
func (g *Generator) Pkg() string { return g.pkg }

// QueryPkg implements the Helper interface.
func (g *Generator) QueryPkg() string { return basePkg + "/runtime/query" }

// FulltextPkg implements the Helper interface.
func (g *Generator) FulltextPkg() string { return basePkg + "/runtime/fulltext" }

// CatalogPkg implements the Helper interface.
func (g *Generator) CatalogPkg() string { return basePkg + "/runtime/catalog" }

// Verify Generator implements Helper at compile time.
var _ Helper = (*Generator)(nil)
