package emit

import (
	"github.com/dave/jennifer/jen"

	"github.com/facetkit/facetc/compiler/gen"
	"github.com/facetkit/facetc/schema/facet"
)

// genAggregations generates the aggregation file
// ({entity}_aggregations.go): the result struct and Aggregate{Entity},
// which computes every facet's value distribution over a candidate set.
// Date-range and geo facets carry no aggregation.
func genAggregations(h gen.Helper, s *gen.EntitySearchSpec) (*jen.File, error) {
	f := h.NewFile()
	resultName := s.EntityName + "AggregationResult"

	fields := make([]jen.Code, 0, 2*len(s.Facets))
	stmts := make([]jen.Code, 0, 2*len(s.Facets))
	check := jen.If(jen.Id("err").Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Id("err")))
	for _, fc := range s.Facets {
		name := gen.PathIdent(fc.Property)
		switch fc.Kind {
		case facet.KindCategorical, facet.KindHierarchical:
			fields = append(fields, jen.Id(name).Index().Qual(h.QueryPkg(), "Bucket").Tag(jsonTag(name)))
			stmts = append(stmts,
				jen.List(jen.Id("r").Dot(name), jen.Id("err")).Op("=").Qual(h.QueryPkg(), "Terms").Call(
					jen.Id("src"), jen.Lit(fc.FieldName()), jen.Qual(h.QueryPkg(), termOrderIdent(fc)), jen.Lit(fc.Limit),
				),
				check,
			)
		case facet.KindRange:
			fields = append(fields,
				jen.Id(name+"Min").Op("*").Float64().Tag(jsonTag(name+"Min")),
				jen.Id(name+"Max").Op("*").Float64().Tag(jsonTag(name+"Max")),
			)
			stmts = append(stmts,
				jen.List(jen.Id("r").Dot(name+"Min"), jen.Id("r").Dot(name+"Max"), jen.Id("err")).Op("=").Qual(h.QueryPkg(), "Bounds").Call(
					jen.Id("src"), jen.Lit(fc.FieldName()),
				),
				check,
			)
		case facet.KindBoolean:
			fields = append(fields,
				jen.Id(name+"True").Int().Tag(jsonTag(name+"True")),
				jen.Id(name+"False").Int().Tag(jsonTag(name+"False")),
			)
			stmts = append(stmts,
				jen.List(jen.Id("r").Dot(name+"True"), jen.Id("r").Dot(name+"False"), jen.Id("err")).Op("=").Qual(h.QueryPkg(), "BoolTally").Call(
					jen.Id("src"), jen.Lit(fc.FieldName()),
				),
				check,
			)
		}
	}

	f.Commentf("%s holds the facet value distributions of one %s", resultName, s.EntityName)
	f.Comment("candidate set.")
	f.Type().Id(resultName).Struct(fields...)

	body := []jen.Code{
		jen.Id("r").Op(":=").Op("&").Id(resultName).Values(),
	}
	if len(stmts) > 0 {
		body = append(body, jen.Var().Id("err").Error())
		body = append(body, stmts...)
	}
	body = append(body, jen.Return(jen.Id("r"), jen.Nil()))

	f.Commentf("Aggregate%s computes the facet aggregations of %s over the", s.EntityName, s.EntityName)
	f.Comment("given candidate set. Bucket order is deterministic for equal inputs.")
	f.Func().Id("Aggregate"+s.EntityName).Params(
		jen.Id("src").Qual(h.QueryPkg(), "Source"),
	).Params(jen.Op("*").Id(resultName), jen.Error()).Block(body...)
	return f, nil
}

// termOrderIdent maps the declared aggregation ordering to the runtime
// term-order constant. Orderings without a distribution equivalent keep
// the default count ordering.
func termOrderIdent(fc *gen.FacetSpec) string {
	if fc.OrderBy == facet.OrderByValue {
		return "ByValue"
	}
	return "ByCount"
}
