package emit

import (
	"github.com/dave/jennifer/jen"

	"github.com/facetkit/facetc/compiler/gen"
)

// genMetadata generates the facet-catalog file ({entity}_metadata.go).
func genMetadata(h gen.Helper, s *gen.EntitySearchSpec) (*jen.File, error) {
	f := h.NewFile()

	elems := make([]jen.Code, 0, len(s.Facets))
	for _, fc := range s.Facets {
		dict := jen.Dict{
			jen.Id("Property"):    jen.Lit(fc.Property),
			jen.Id("DisplayName"): jen.Lit(fc.DisplayName),
			jen.Id("Kind"):        jen.Lit(fc.Kind.String()),
		}
		if fc.Hierarchical {
			dict[jen.Id("Hierarchical")] = jen.True()
		}
		if fc.DependsOn != "" {
			dict[jen.Id("DependsOn")] = jen.Lit(fc.DependsOn)
		}
		elems = append(elems, jen.Values(dict))
	}

	f.Commentf("%sFacets returns the facet catalog of %s in declaration order.", s.EntityName, s.EntityName)
	f.Func().Id(s.EntityName+"Facets").Params().Index().Qual(h.CatalogPkg(), "Descriptor").Block(
		jen.Return(jen.Index().Qual(h.CatalogPkg(), "Descriptor").Values(elems...)),
	)
	return f, nil
}
