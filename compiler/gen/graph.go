package gen

import (
	"go.uber.org/zap"

	"github.com/facetkit/facetc/compiler/load"
)

// Graph holds the search specs of one generation pass. Entities whose
// declaration failed spec building are not part of the graph; they are
// recorded as skipped so the failure stays isolated to that unit.
type Graph struct {
	*Config

	// Nodes holds the entity search specs, one per successfully built
	// declaration, in input order.
	Nodes []*EntitySearchSpec

	// Skipped holds the per-entity failures of this pass.
	Skipped []Skip
}

// Skip records one entity that was excluded from generation and why.
type Skip struct {
	Entity string
	Err    error
}

// NewGraph builds the spec graph from scanned entities. A malformed
// declaration never fails the graph: the entity is skipped, logged, and
// reported; all other entities are unaffected. Config errors do fail the
// graph.
func NewGraph(c *Config, entities ...*load.Entity) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "graph requires a configuration")
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	g := &Graph{Config: c}
	for _, e := range entities {
		for _, d := range e.Diagnostics {
			c.Logger.Warn("declaration dropped",
				zap.String("entity", e.Name),
				zap.String("member", d.Member),
				zap.String("kept", d.Kept),
				zap.String("dropped", d.Dropped),
			)
		}
		spec, err := NewSpec(e)
		if err != nil {
			g.Skipped = append(g.Skipped, Skip{Entity: e.Name, Err: err})
			c.Logger.Warn("entity skipped",
				zap.String("entity", e.Name),
				zap.Error(err),
			)
			continue
		}
		g.Nodes = append(g.Nodes, spec)
	}
	return g, nil
}
