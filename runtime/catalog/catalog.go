// Package catalog holds the facet descriptor types exposed by the
// generated metadata artifact for external (e.g. UI) consumption.
package catalog

// Descriptor describes one facet of an entity. The generated catalog
// preserves declaration order and is a pure projection of the entity's
// search spec.
type Descriptor struct {
	// Property is the facet's property name.
	Property string `json:"property"`
	// DisplayName is the UI display name.
	DisplayName string `json:"display_name"`
	// Kind is the symbolic facet kind: Categorical, Range, Boolean,
	// DateRange, Hierarchical or Geo.
	Kind string `json:"kind"`
	// Hierarchical reports hierarchy semantics for the facet.
	Hierarchical bool `json:"hierarchical,omitempty"`
	// DependsOn names the facet this one depends on, if any.
	DependsOn string `json:"depends_on,omitempty"`
}
