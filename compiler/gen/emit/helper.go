package emit

import (
	"github.com/dave/jennifer/jen"

	"github.com/facetkit/facetc/compiler/gen"
	"github.com/facetkit/facetc/runtime/fulltext"
	"github.com/facetkit/facetc/schema/facet"
)

// strategyIdents maps a resolved strategy to the constant identifier
// referenced from generated code.
var strategyIdents = map[fulltext.Strategy]string{
	fulltext.StrategyPattern:     "StrategyPattern",
	fulltext.StrategyPatternFold: "StrategyPatternFold",
	fulltext.StrategyNatural:     "StrategyNatural",
	fulltext.StrategyBoolean:     "StrategyBoolean",
	fulltext.StrategyClientSide:  "StrategyClientSide",
}

func strategyIdent(s fulltext.Strategy) string {
	if id, ok := strategyIdents[s]; ok {
		return id
	}
	return "StrategyPattern"
}

// fieldVarName returns the package-level query-field variable name of a
// property, e.g. entity "Product" and property "customer.name" yield
// "productCustomerName".
func fieldVarName(s *gen.EntitySearchSpec, property string) string {
	return gen.Camel(s.EntityName) + gen.PathIdent(property)
}

// fieldTypeName returns the runtime query field type backing a facet.
func fieldTypeName(f *gen.FacetSpec) string {
	switch f.Kind {
	case facet.KindRange:
		if gen.NumericGoType(f.Type) == "int64" {
			return "Int64Field"
		}
		return "Float64Field"
	case facet.KindBoolean:
		return "BoolField"
	case facet.KindDateRange:
		return "TimeField"
	case facet.KindGeo:
		return "GeoField"
	default:
		return "StringField"
	}
}

// shapeGoType returns the Go type of one generated filter field.
func shapeGoType(v gen.ValueKind, f *gen.FacetSpec) jen.Code {
	switch v {
	case gen.ValueStrings:
		return jen.Index().String()
	case gen.ValueSourceNumeric:
		return jen.Op("*").Id(gen.NumericGoType(f.Type))
	case gen.ValueBool:
		return jen.Op("*").Bool()
	case gen.ValueTime:
		return jen.Op("*").Qual("time", "Time")
	default:
		return jen.Op("*").Float64()
	}
}

func jsonTag(field string) map[string]string {
	return map[string]string{"json": gen.Snake(field) + ",omitempty"}
}
