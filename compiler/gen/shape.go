package gen

import (
	"fmt"

	"github.com/facetkit/facetc/schema"
	"github.com/facetkit/facetc/schema/facet"
)

// ValueKind is the value type of one generated filter field.
type ValueKind int

// Filter-field value kinds. All generated filter fields are optional:
// absence means "no constraint".
const (
	// ValueStrings is an array of string, the accepted-values set of
	// categorical and hierarchical facets.
	ValueStrings ValueKind = iota
	// ValueSourceNumeric is a nullable numeric of the same type as the
	// source property.
	ValueSourceNumeric
	// ValueBool is a nullable boolean.
	ValueBool
	// ValueTime is a nullable date-time.
	ValueTime
	// ValueFloat is a nullable float.
	ValueFloat
)

// ShapeField is one generated filter field: its name and value kind.
type ShapeField struct {
	Name  string
	Value ValueKind
}

// Shape is the generated filter-field shape of one facet.
type Shape struct {
	Fields []ShapeField
}

// FacetShape maps a facet's declared kind to its generated filter-field
// shape. This table is the single source of truth for shape correctness;
// new kinds extend it without altering existing mappings.
func FacetShape(f *FacetSpec) (Shape, error) {
	name := PathIdent(f.Property)
	switch f.Kind {
	case facet.KindCategorical, facet.KindHierarchical:
		return Shape{Fields: []ShapeField{
			{Name: name, Value: ValueStrings},
		}}, nil
	case facet.KindRange:
		return Shape{Fields: []ShapeField{
			{Name: "Min" + name, Value: ValueSourceNumeric},
			{Name: "Max" + name, Value: ValueSourceNumeric},
		}}, nil
	case facet.KindBoolean:
		return Shape{Fields: []ShapeField{
			{Name: name, Value: ValueBool},
		}}, nil
	case facet.KindDateRange:
		return Shape{Fields: []ShapeField{
			{Name: name + "From", Value: ValueTime},
			{Name: name + "To", Value: ValueTime},
		}}, nil
	case facet.KindGeo:
		return Shape{Fields: []ShapeField{
			{Name: name + "Latitude", Value: ValueFloat},
			{Name: name + "Longitude", Value: ValueFloat},
			{Name: name + "RadiusKm", Value: ValueFloat},
		}}, nil
	default:
		return Shape{}, NewSpecError("", f.Property, fmt.Sprintf("no filter shape for kind %s", f.Kind), nil)
	}
}

// NumericGoType returns the Go type name used for the range bounds of a
// numeric source property.
func NumericGoType(t schema.Type) string {
	if t == schema.TypeInteger {
		return "int64"
	}
	return "float64"
}
