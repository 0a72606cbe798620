package gen

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/facetkit/facetc/compiler/load"
	"github.com/facetkit/facetc/runtime/fulltext"
	"github.com/facetkit/facetc/schema"
	"github.com/facetkit/facetc/schema/facet"
	ftdecl "github.com/facetkit/facetc/schema/fulltext"
)

type (
	// EntitySearchSpec is the canonical, immutable specification of one
	// entity's searchable surface. It is built once per entity per
	// generation pass and used as the generation key for incremental
	// caching: an unchanged spec skips re-emission.
	EntitySearchSpec struct {
		// EntityName is the name of the annotated domain type.
		EntityName string `msgpack:"entity"`
		// Namespace is the output package hint for the artifacts.
		Namespace string `msgpack:"namespace,omitempty"`
		// FilterName is the generated filter struct name.
		FilterName string `msgpack:"filter_name"`
		// Strategy is the declared full-text strategy.
		Strategy fulltext.Strategy `msgpack:"strategy"`
		// Aggregations controls emission of the aggregation artifact.
		Aggregations bool `msgpack:"aggregations"`
		// Metadata controls emission of the facet-catalog artifact.
		Metadata bool `msgpack:"metadata"`
		// Facets holds the facet specs in declaration order. Order
		// affects emitted predicate composition order, not semantics.
		Facets []*FacetSpec `msgpack:"facets"`
		// FullText holds the full-text field specs in declaration order.
		FullText []*FullTextFieldSpec `msgpack:"full_text"`
		// Sortable holds the sortable field specs in declaration order.
		Sortable []*SortableFieldSpec `msgpack:"sortable"`
	}

	// FacetSpec is the canonical form of one facet declaration.
	FacetSpec struct {
		Property       string            `msgpack:"property"`
		Type           schema.Type       `msgpack:"type"`
		Kind           facet.Kind        `msgpack:"kind"`
		DisplayName    string            `msgpack:"display_name"`
		OrderBy        facet.OrderBy     `msgpack:"order_by"`
		Limit          int               `msgpack:"limit"`
		DependsOn      string            `msgpack:"depends_on,omitempty"`
		Hierarchical   bool              `msgpack:"hierarchical,omitempty"`
		RangePolicy    facet.RangePolicy `msgpack:"range_policy"`
		RangeIntervals string            `msgpack:"range_intervals,omitempty"`
		NavigationPath string            `msgpack:"navigation_path,omitempty"`
		AutoInclude    bool              `msgpack:"auto_include,omitempty"`
	}

	// FullTextFieldSpec is the canonical form of one full-text field
	// declaration.
	FullTextFieldSpec struct {
		Property      string         `msgpack:"property"`
		Type          schema.Type    `msgpack:"type"`
		Weight        float64        `msgpack:"weight"`
		CaseSensitive bool           `msgpack:"case_sensitive,omitempty"`
		Behavior      ftdecl.Behavior `msgpack:"behavior"`
	}

	// SortableFieldSpec is the canonical form of one sortable field
	// declaration.
	SortableFieldSpec struct {
		Property string `msgpack:"property"`
		Sortable bool   `msgpack:"sortable"`
	}
)

// NewSpec builds the canonical search spec from a scanned entity. It
// applies the documented defaults, resolves symbolic enum names into
// typed values, and validates the declaration: duplicate property names,
// non-numeric range facets, negative limits or weights, and dangling or
// cyclic dependsOn references are all spec errors.
func NewSpec(e *load.Entity) (*EntitySearchSpec, error) {
	ant := searchableAnnotation(e.Annotations)
	strategy, err := fulltext.ParseStrategy(ant.Strategy)
	if err != nil {
		return nil, NewSpecError(e.Name, "", "resolving full-text strategy", err)
	}
	spec := &EntitySearchSpec{
		EntityName:   e.Name,
		Namespace:    ant.Namespace,
		FilterName:   ant.FilterName,
		Strategy:     strategy,
		Aggregations: ant.Aggregations == nil || *ant.Aggregations,
		Metadata:     ant.Metadata == nil || *ant.Metadata,
	}
	if spec.FilterName == "" {
		spec.FilterName = e.Name + "SearchFilter"
	}
	names := make(map[string]bool, len(e.Facets))
	for _, f := range e.Facets {
		fs, err := newFacetSpec(e.Name, f)
		if err != nil {
			return nil, err
		}
		if names[fs.Property] {
			return nil, NewSpecError(e.Name, fs.Property, "facet redeclared", nil)
		}
		names[fs.Property] = true
		spec.Facets = append(spec.Facets, fs)
	}
	if err := validateDependencies(e.Name, spec.Facets); err != nil {
		return nil, err
	}
	for _, f := range e.FullText {
		fs, err := newFullTextSpec(e.Name, f)
		if err != nil {
			return nil, err
		}
		spec.FullText = append(spec.FullText, fs)
	}
	for _, s := range e.Sortable {
		spec.Sortable = append(spec.Sortable, &SortableFieldSpec{Property: s.Name, Sortable: s.Sortable})
	}
	return spec, nil
}

func newFacetSpec(entity string, f *load.Facet) (*FacetSpec, error) {
	kind, err := facet.ParseKind(f.Kind)
	if err != nil {
		return nil, NewSpecError(entity, f.Name, "resolving facet kind", err)
	}
	typ, err := schema.ParseType(f.Type)
	if err != nil {
		return nil, NewSpecError(entity, f.Name, "resolving property type", err)
	}
	orderBy, err := facet.ParseOrderBy(f.OrderBy)
	if err != nil {
		return nil, NewSpecError(entity, f.Name, "resolving aggregation ordering", err)
	}
	policy, err := facet.ParseRangePolicy(f.RangePolicy)
	if err != nil {
		return nil, NewSpecError(entity, f.Name, "resolving range policy", err)
	}
	switch {
	case f.Limit < 0:
		return nil, NewSpecError(entity, f.Name, fmt.Sprintf("negative limit %d", f.Limit), nil)
	case kind == facet.KindRange && !typ.Numeric():
		return nil, NewSpecError(entity, f.Name, fmt.Sprintf("range facet requires a numeric type, got %s", typ), nil)
	case kind == facet.KindDateRange && typ != schema.TypeDate:
		return nil, NewSpecError(entity, f.Name, fmt.Sprintf("date-range facet requires a date type, got %s", typ), nil)
	case kind == facet.KindBoolean && typ != schema.TypeBool:
		return nil, NewSpecError(entity, f.Name, fmt.Sprintf("boolean facet requires a boolean type, got %s", typ), nil)
	case f.NavigationPath != "" && !strings.HasPrefix(f.Name, f.NavigationPath+"."):
		return nil, NewSpecError(entity, f.Name, fmt.Sprintf("navigation root %q is not a prefix of the property path", f.NavigationPath), nil)
	case f.AutoInclude && f.NavigationPath == "":
		return nil, NewSpecError(entity, f.Name, "auto-include requires a navigation path", nil)
	}
	fs := &FacetSpec{
		Property:       f.Name,
		Type:           typ,
		Kind:           kind,
		DisplayName:    f.DisplayName,
		OrderBy:        orderBy,
		Limit:          f.Limit,
		DependsOn:      f.DependsOn,
		Hierarchical:   f.Hierarchical || kind == facet.KindHierarchical,
		RangePolicy:    policy,
		RangeIntervals: f.RangeIntervals,
		NavigationPath: f.NavigationPath,
		AutoInclude:    f.AutoInclude,
	}
	if fs.DisplayName == "" {
		fs.DisplayName = fs.Property
	}
	return fs, nil
}

func newFullTextSpec(entity string, f *load.FullText) (*FullTextFieldSpec, error) {
	typ, err := schema.ParseType(f.Type)
	if err != nil {
		return nil, NewSpecError(entity, f.Name, "resolving property type", err)
	}
	behavior, err := ftdecl.ParseBehavior(f.Behavior)
	if err != nil {
		return nil, NewSpecError(entity, f.Name, "resolving match behavior", err)
	}
	if f.Weight < 0 {
		return nil, NewSpecError(entity, f.Name, fmt.Sprintf("negative weight %v", f.Weight), nil)
	}
	return &FullTextFieldSpec{
		Property:      f.Name,
		Type:          typ,
		Weight:        f.Weight,
		CaseSensitive: f.CaseSensitive,
		Behavior:      behavior,
	}, nil
}

// validateDependencies rejects dangling, self-referential and cyclic
// dependsOn references between facets of the same entity.
func validateDependencies(entity string, facets []*FacetSpec) error {
	byName := make(map[string]*FacetSpec, len(facets))
	for _, f := range facets {
		byName[f.Property] = f
	}
	for _, f := range facets {
		if f.DependsOn == "" {
			continue
		}
		if _, ok := byName[f.DependsOn]; !ok {
			return NewSpecError(entity, f.Property, fmt.Sprintf("depends on unknown facet %q", f.DependsOn), nil)
		}
		seen := map[string]bool{f.Property: true}
		for cur := byName[f.DependsOn]; cur != nil; cur = byName[cur.DependsOn] {
			if seen[cur.Property] {
				return NewSpecError(entity, f.Property, fmt.Sprintf("dependency cycle through %q", cur.Property), nil)
			}
			seen[cur.Property] = true
		}
	}
	return nil
}

// Hash returns a deterministic content hash of the spec, computed over
// its canonical msgpack encoding. Structurally identical specs hash
// identically, which makes the hash usable as an incremental-generation
// key.
func (s *EntitySearchSpec) Hash() (string, error) {
	buf, err := msgpack.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("facetc: encoding spec for %q: %w", s.EntityName, err)
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:]), nil
}

// HasFullText reports whether the entity declares any full-text field.
func (s *EntitySearchSpec) HasFullText() bool { return len(s.FullText) > 0 }

// HasSortable reports whether the entity declares any sortable field.
func (s *EntitySearchSpec) HasSortable() bool {
	for _, f := range s.Sortable {
		if f.Sortable {
			return true
		}
	}
	return false
}

// FieldName returns the query field name of the facet: the dotted
// navigation path for association-sourced facets, the property name
// otherwise.
func (f *FacetSpec) FieldName() string {
	return f.Property
}

// searchableAnnotation extracts the Searchable annotation from a scanned
// annotation bag. The bag value is either the typed annotation (scanned
// in-process) or a generic map (decoded from JSON); both decode through a
// JSON round-trip.
func searchableAnnotation(annotations map[string]any) schema.Searchable {
	ant := schema.Searchable{}
	if annotations == nil || annotations[ant.Name()] == nil {
		return ant
	}
	if buf, err := json.Marshal(annotations[ant.Name()]); err == nil {
		_ = json.Unmarshal(buf, &ant)
	}
	return ant
}
