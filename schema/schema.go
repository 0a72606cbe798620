// Package schema provides the shared building blocks for declaring the
// searchable surface of an entity: the semantic property types carried by
// facet and full-text declarations, and the type-level annotations that
// configure artifact generation.
//
// The concrete declaration builders live in the subpackages:
//
//   - [facet]: facet declarations (categorical, range, boolean, ...)
//   - [fulltext]: full-text search field declarations
//   - [sortable]: sortable field declarations
package schema

import "fmt"

// Type is the semantic type tag of a declared property. It drives the
// generated filter-field value types and the spec-build validation of
// facet kinds.
type Type int

// Semantic property types.
const (
	TypeInvalid Type = iota
	TypeString
	TypeInteger
	TypeDecimal
	TypeFloat
	TypeBool
	TypeDate
	TypeReference
	endTypes
)

var typeNames = [...]string{
	TypeInvalid:   "invalid",
	TypeString:    "string",
	TypeInteger:   "integer",
	TypeDecimal:   "decimal",
	TypeFloat:     "float",
	TypeBool:      "boolean",
	TypeDate:      "date",
	TypeReference: "reference",
}

// String returns the symbolic name of the type. Symbolic names, never
// ordinals, cross package boundaries.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the type is a recognized semantic type.
func (t Type) Valid() bool { return t > TypeInvalid && t < endTypes }

// ParseType resolves a symbolic type name back to its type.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name && Type(t).Valid() {
			return Type(t), nil
		}
	}
	return TypeInvalid, fmt.Errorf("schema: unknown property type %q", name)
}

// Numeric reports if the type can carry range bounds.
func (t Type) Numeric() bool {
	return t == TypeInteger || t == TypeDecimal || t == TypeFloat
}

// Annotation is used to attach arbitrary metadata to entity declarations.
// The compiler stores annotations in a bag keyed by Name and decodes the
// ones it recognizes.
type Annotation interface {
	// Name defines the name of the annotation to be retrieved by the
	// compiler.
	Name() string
}

// Merger wraps the Merge method for merging two annotations of the
// same kind.
type Merger interface {
	Merge(Annotation) Annotation
}

// Searchable is the builtin type-level annotation that configures artifact
// generation for an entity.
type Searchable struct {
	// FilterName overrides the generated filter struct name.
	// Defaults to "{EntityName}SearchFilter".
	FilterName string `json:"filter_name,omitempty"`

	// Namespace is a hint for the output package of the generated
	// artifacts. Empty means the generator's configured package.
	Namespace string `json:"namespace,omitempty"`

	// Strategy is the symbolic name of the full-text strategy to target:
	// "pattern" (default), "patternfold", "natural", "boolean" or
	// "clientside".
	Strategy string `json:"strategy,omitempty"`

	// Aggregations controls emission of the aggregation artifact.
	// Unset means enabled.
	Aggregations *bool `json:"aggregations,omitempty"`

	// Metadata controls emission of the facet-catalog artifact.
	// Unset means enabled.
	Metadata *bool `json:"metadata,omitempty"`
}

// Name implements the Annotation interface.
func (Searchable) Name() string { return "Searchable" }

// Merge implements the Merger interface.
func (s Searchable) Merge(other Annotation) Annotation {
	var ant Searchable
	switch other := other.(type) {
	case Searchable:
		ant = other
	case *Searchable:
		if other != nil {
			ant = *other
		}
	default:
		return s
	}
	if ant.FilterName != "" {
		s.FilterName = ant.FilterName
	}
	if ant.Namespace != "" {
		s.Namespace = ant.Namespace
	}
	if ant.Strategy != "" {
		s.Strategy = ant.Strategy
	}
	if ant.Aggregations != nil {
		s.Aggregations = ant.Aggregations
	}
	if ant.Metadata != nil {
		s.Metadata = ant.Metadata
	}
	return s
}

var (
	_ Annotation = (*Searchable)(nil)
	_ Merger     = (*Searchable)(nil)
)
