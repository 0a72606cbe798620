// Package fulltext provides builders for declaring full-text search fields.
//
// Full-text fields are combined disjunctively into one search fragment by
// the generated predicate logic:
//
//	fulltext.Field("name").Weight(2)
//	fulltext.Field("sku").Exact().CaseSensitive()
//	fulltext.Field("slug").StartsWith()
package fulltext

import (
	"fmt"

	"github.com/facetkit/facetc/schema"
)

// Behavior determines how a full-text field matches the search term.
type Behavior int

// Matching behaviors.
const (
	// Contains matches the term as a substring. The default.
	Contains Behavior = iota
	// StartsWith matches the term as a prefix.
	StartsWith
	// EndsWith matches the term as a suffix.
	EndsWith
	// Exact matches the term by full equality.
	Exact
)

var behaviorNames = [...]string{
	Contains:   "Contains",
	StartsWith: "StartsWith",
	EndsWith:   "EndsWith",
	Exact:      "Exact",
}

// String returns the symbolic name of the behavior.
func (b Behavior) String() string {
	if int(b) < len(behaviorNames) {
		return behaviorNames[b]
	}
	return fmt.Sprintf("Behavior(%d)", b)
}

// ParseBehavior resolves a symbolic behavior name. An empty name resolves
// to the default substring behavior.
func ParseBehavior(name string) (Behavior, error) {
	if name == "" {
		return Contains, nil
	}
	for b, n := range behaviorNames {
		if n == name {
			return Behavior(b), nil
		}
	}
	return Contains, fmt.Errorf("fulltext: unknown behavior %q", name)
}

// A Descriptor for full-text field configuration.
type Descriptor struct {
	Name          string      // property name.
	Type          schema.Type // semantic property type.
	Weight        float64     // relevance boost, reserved for relevance strategies.
	CaseSensitive bool        // disable case folding for this field.
	Behavior      Behavior    // matching behavior.
	Err           error       // deferred builder error, checked at spec build.
}

// Builder builds full-text field declarations.
type Builder struct {
	desc *Descriptor
}

// Field returns a new full-text field declaration with substring matching
// and a weight of 1.
func Field(name string) *Builder {
	return &Builder{desc: &Descriptor{
		Name:   name,
		Type:   schema.TypeString,
		Weight: 1,
	}}
}

// Weight sets the relevance boost of the field. It is reserved for
// relevance-ordered strategies and not used by the default predicate logic.
func (b *Builder) Weight(w float64) *Builder {
	if w < 0 {
		b.desc.Err = fmt.Errorf("fulltext %q: negative weight %v", b.desc.Name, w)
		return b
	}
	b.desc.Weight = w
	return b
}

// CaseSensitive disables case folding when matching this field.
func (b *Builder) CaseSensitive() *Builder {
	b.desc.CaseSensitive = true
	return b
}

// StartsWith matches the search term as a prefix.
func (b *Builder) StartsWith() *Builder {
	b.desc.Behavior = StartsWith
	return b
}

// EndsWith matches the search term as a suffix.
func (b *Builder) EndsWith() *Builder {
	b.desc.Behavior = EndsWith
	return b
}

// Exact matches the search term by full equality.
func (b *Builder) Exact() *Builder {
	b.desc.Behavior = Exact
	return b
}

// Descriptor implements the facetc.FullTextField interface.
func (b *Builder) Descriptor() *Descriptor { return b.desc }
