// Package load scans annotated entity declarations into their raw,
// serializable form. It is a pure read of the declaration surface: no
// defaulting or generation logic happens here.
package load

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/facetkit/facetc"
	"github.com/facetkit/facetc/schema"
	"github.com/facetkit/facetc/schema/facet"
	"github.com/facetkit/facetc/schema/fulltext"
	"github.com/facetkit/facetc/schema/sortable"
)

// Entity represents a facetc.Entity that was scanned from a user
// declaration. Enum-valued options are carried by their symbolic names,
// never by ordinals.
type Entity struct {
	Name        string         `json:"name,omitempty"`
	Facets      []*Facet       `json:"facets,omitempty"`
	FullText    []*FullText    `json:"full_text,omitempty"`
	Sortable    []*Sortable    `json:"sortable,omitempty"`
	Annotations map[string]any `json:"annotations,omitempty"`
	Diagnostics []Diagnostic   `json:"diagnostics,omitempty"`
}

// Facet represents a facet declaration that was scanned from an entity.
type Facet struct {
	Name           string  `json:"name,omitempty"`
	Type           string  `json:"type,omitempty"`
	Kind           string  `json:"kind,omitempty"`
	DisplayName    string  `json:"display_name,omitempty"`
	OrderBy        string  `json:"order_by,omitempty"`
	Limit          int     `json:"limit,omitempty"`
	DependsOn      string  `json:"depends_on,omitempty"`
	Hierarchical   bool    `json:"hierarchical,omitempty"`
	RangePolicy    string  `json:"range_policy,omitempty"`
	RangeIntervals string  `json:"range_intervals,omitempty"`
	NavigationPath string  `json:"navigation_path,omitempty"`
	AutoInclude    bool    `json:"auto_include,omitempty"`
	Position       int     `json:"position"`
}

// FullText represents a full-text field declaration that was scanned from
// an entity.
type FullText struct {
	Name          string  `json:"name,omitempty"`
	Type          string  `json:"type,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	CaseSensitive bool    `json:"case_sensitive,omitempty"`
	Behavior      string  `json:"behavior,omitempty"`
	Position      int     `json:"position"`
}

// Sortable represents a sortable field declaration that was scanned from
// an entity.
type Sortable struct {
	Name     string `json:"name,omitempty"`
	Sortable bool   `json:"sortable"`
	Position int    `json:"position"`
}

// Diagnostic records a declaration that was silently dropped because its
// member already carried a declaration of higher precedence. The checking
// order is fixed: facet, then full-text, then sortable.
type Diagnostic struct {
	Member  string `json:"member,omitempty"`
	Kept    string `json:"kept,omitempty"`
	Dropped string `json:"dropped,omitempty"`
}

// String returns a human-readable form of the diagnostic.
func (d Diagnostic) String() string {
	return fmt.Sprintf("member %q: %s declaration dropped in favor of %s", d.Member, d.Dropped, d.Kept)
}

// NewFacet creates a scanned facet from a facet descriptor.
// It returns an error if the descriptor contains an error.
func NewFacet(fd *facet.Descriptor) (*Facet, error) {
	if fd.Err != nil {
		return nil, fd.Err
	}
	if fd.Name == "" {
		return nil, fmt.Errorf("facet declaration without a property name")
	}
	return &Facet{
		Name:           fd.Name,
		Type:           fd.Type.String(),
		Kind:           fd.Kind.String(),
		DisplayName:    fd.DisplayName,
		OrderBy:        fd.OrderBy.String(),
		Limit:          fd.Limit,
		DependsOn:      fd.DependsOn,
		Hierarchical:   fd.Hierarchical,
		RangePolicy:    fd.RangePolicy.String(),
		RangeIntervals: fd.RangeIntervals,
		NavigationPath: fd.NavigationPath,
		AutoInclude:    fd.AutoInclude,
	}, nil
}

// NewFullText creates a scanned full-text field from its descriptor.
// It returns an error if the descriptor contains an error.
func NewFullText(fd *fulltext.Descriptor) (*FullText, error) {
	if fd.Err != nil {
		return nil, fd.Err
	}
	if fd.Name == "" {
		return nil, fmt.Errorf("full-text declaration without a property name")
	}
	return &FullText{
		Name:          fd.Name,
		Type:          fd.Type.String(),
		Weight:        fd.Weight,
		CaseSensitive: fd.CaseSensitive,
		Behavior:      fd.Behavior.String(),
	}, nil
}

// NewSortable creates a scanned sortable field from its descriptor.
func NewSortable(sd *sortable.Descriptor) (*Sortable, error) {
	if sd.Name == "" {
		return nil, fmt.Errorf("sortable declaration without a property name")
	}
	return &Sortable{Name: sd.Name, Sortable: sd.Sortable}, nil
}

// ScanEntity enumerates the members of an entity declaration and their
// facet-related declarations. A member may carry at most one of
// facet/full-text/sortable; conflicts resolve "first recognized wins" in
// that fixed order, and each dropped declaration is recorded as a
// Diagnostic on the returned entity.
func ScanEntity(entity facetc.Entity) (*Entity, error) {
	e := &Entity{
		Name:        indirect(reflect.TypeOf(entity)).Name(),
		Annotations: make(map[string]any),
	}
	seen := make(map[string]string)
	facets, err := safeFacets(entity)
	if err != nil {
		return nil, fmt.Errorf("entity %q: %w", e.Name, err)
	}
	for i, f := range facets {
		nf, err := NewFacet(f.Descriptor())
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", e.Name, err)
		}
		nf.Position = i
		e.Facets = append(e.Facets, nf)
		if _, ok := seen[nf.Name]; !ok {
			seen[nf.Name] = "facet"
		}
	}
	fields, err := safeFullText(entity)
	if err != nil {
		return nil, fmt.Errorf("entity %q: %w", e.Name, err)
	}
	for i, f := range fields {
		nf, err := NewFullText(f.Descriptor())
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", e.Name, err)
		}
		if kept, ok := seen[nf.Name]; ok {
			e.Diagnostics = append(e.Diagnostics, Diagnostic{Member: nf.Name, Kept: kept, Dropped: "full-text"})
			continue
		}
		nf.Position = i
		e.FullText = append(e.FullText, nf)
		seen[nf.Name] = "full-text"
	}
	sortables, err := safeSortable(entity)
	if err != nil {
		return nil, fmt.Errorf("entity %q: %w", e.Name, err)
	}
	for i, s := range sortables {
		ns, err := NewSortable(s.Descriptor())
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", e.Name, err)
		}
		if kept, ok := seen[ns.Name]; ok {
			e.Diagnostics = append(e.Diagnostics, Diagnostic{Member: ns.Name, Kept: kept, Dropped: "sortable"})
			continue
		}
		ns.Position = i
		e.Sortable = append(e.Sortable, ns)
		seen[ns.Name] = "sortable"
	}
	annotations, err := safeAnnotations(entity)
	if err != nil {
		return nil, fmt.Errorf("entity %q: %w", e.Name, err)
	}
	for _, at := range annotations {
		if a, ok := at.(interface{ Err() error }); ok && a.Err() != nil {
			return nil, fmt.Errorf("entity %q: %w", e.Name, a.Err())
		}
		e.addAnnotation(at)
	}
	return e, nil
}

// MarshalEntity encodes a scanned entity into JSON that can be decoded
// back with UnmarshalEntity. The hosting build integration uses this to
// move scanned declarations across process boundaries.
func MarshalEntity(entity facetc.Entity) ([]byte, error) {
	e, err := ScanEntity(entity)
	if err != nil {
		return nil, err
	}
	return json.Marshal(e)
}

// UnmarshalEntity decodes the given buffer into a scanned entity.
func UnmarshalEntity(buf []byte) (*Entity, error) {
	e := &Entity{}
	if err := json.Unmarshal(buf, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Entity) addAnnotation(an schema.Annotation) {
	curr, ok := e.Annotations[an.Name()]
	if !ok {
		e.Annotations[an.Name()] = an
		return
	}
	if m, ok := curr.(schema.Merger); ok {
		e.Annotations[an.Name()] = m.Merge(an)
	}
}

// safeFacets wraps the entity.Facets method with recover to ensure no
// panics in scanning.
func safeFacets(entity interface{ Facets() []facetc.Facet }) (facets []facetc.Facet, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Facets panics: %v", entity, v)
			facets = nil
		}
	}()
	return entity.Facets(), nil
}

// safeFullText wraps the entity.FullText method with recover to ensure no
// panics in scanning.
func safeFullText(entity interface{ FullText() []facetc.FullTextField }) (fields []facetc.FullTextField, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.FullText panics: %v", entity, v)
			fields = nil
		}
	}()
	return entity.FullText(), nil
}

// safeSortable wraps the entity.Sortable method with recover to ensure no
// panics in scanning.
func safeSortable(entity interface{ Sortable() []facetc.SortableField }) (fields []facetc.SortableField, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Sortable panics: %v", entity, v)
			fields = nil
		}
	}()
	return entity.Sortable(), nil
}

// safeAnnotations wraps the entity.Annotations method with recover to
// ensure no panics in scanning.
func safeAnnotations(entity interface{ Annotations() []schema.Annotation }) (annotations []schema.Annotation, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Annotations panics: %v", entity, v)
			annotations = nil
		}
	}()
	return entity.Annotations(), nil
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
