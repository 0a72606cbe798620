package emit

import (
	"github.com/dave/jennifer/jen"

	"github.com/facetkit/facetc/compiler/gen"
)

// genFilter generates the filter-schema file ({entity}_filter.go): one
// struct whose fields mirror the entity's facet declarations, plus the
// search-term and sort fields when the entity declares them.
func genFilter(h gen.Helper, s *gen.EntitySearchSpec) (*jen.File, error) {
	f := h.NewFile()

	fields := make([]jen.Code, 0, 2*len(s.Facets)+3)
	for _, fc := range s.Facets {
		shape, err := gen.FacetShape(fc)
		if err != nil {
			return nil, err
		}
		for _, sf := range shape.Fields {
			fields = append(fields, jen.Id(sf.Name).Add(shapeGoType(sf.Value, fc)).Tag(jsonTag(sf.Name)))
		}
	}
	if s.HasFullText() {
		fields = append(fields, jen.Id("SearchTerm").String().Tag(jsonTag("SearchTerm")))
	}
	if s.HasSortable() {
		fields = append(fields,
			jen.Id("SortBy").String().Tag(jsonTag("SortBy")),
			jen.Id("SortDescending").Bool().Tag(jsonTag("SortDescending")),
		)
	}

	f.Commentf("%s narrows a %s search. Every field is optional: a zero", s.FilterName, s.EntityName)
	f.Comment("value places no constraint on the result set.")
	f.Type().Id(s.FilterName).Struct(fields...)
	return f, nil
}
