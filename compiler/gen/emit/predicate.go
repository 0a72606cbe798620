package emit

import (
	"github.com/dave/jennifer/jen"

	"github.com/facetkit/facetc/compiler/gen"
	"github.com/facetkit/facetc/schema/facet"
	ftdecl "github.com/facetkit/facetc/schema/fulltext"
)

// genPredicate generates the query-transform file ({entity}_query.go):
// the package-level query field handles, Apply{Entity}Filter, the
// full-text predicate helper and Apply{Entity}Sort.
func genPredicate(h gen.Helper, s *gen.EntitySearchSpec) (*jen.File, error) {
	f := h.NewFile()
	if err := genFieldVars(h, f, s); err != nil {
		return nil, err
	}
	if err := genApplyFilter(h, f, s); err != nil {
		return nil, err
	}
	if s.HasFullText() {
		genSearchPredicate(h, f, s)
	}
	if s.HasSortable() {
		genApplySort(h, f, s)
	}
	return f, nil
}

// genFieldVars generates one package-level field handle per distinct
// property, in declaration order: facets first, then full-text fields.
func genFieldVars(h gen.Helper, f *jen.File, s *gen.EntitySearchSpec) error {
	seen := make(map[string]bool, len(s.Facets)+len(s.FullText))
	defs := make([]jen.Code, 0, len(s.Facets)+len(s.FullText))
	add := func(name, typeName, property string) {
		if seen[name] {
			return
		}
		seen[name] = true
		defs = append(defs, jen.Id(name).Op("=").Qual(h.QueryPkg(), typeName).Call(jen.Lit(property)))
	}
	for _, fc := range s.Facets {
		add(fieldVarName(s, fc.Property), fieldTypeName(fc), fc.FieldName())
	}
	for _, ft := range s.FullText {
		add(fieldVarName(s, ft.Property), "StringField", ft.Property)
	}
	if len(defs) == 0 {
		return nil
	}
	f.Commentf("Query field handles of %s.", s.EntityName)
	f.Var().Defs(defs...)
	return nil
}

// genApplyFilter generates Apply{Entity}Filter. Constrained facets are
// combined conjunctively in declaration order; the full-text fragment,
// when a term is present, joins the same conjunction.
func genApplyFilter(h gen.Helper, f *jen.File, s *gen.EntitySearchSpec) error {
	stmts := []jen.Code{
		jen.If(jen.Id("q").Op("==").Nil().Op("||").Id("f").Op("==").Nil()).Block(
			jen.Return(jen.Id("q")),
		),
	}
	for _, fc := range s.Facets {
		shape, err := gen.FacetShape(fc)
		if err != nil {
			return err
		}
		stmts = append(stmts, facetFragment(fc, shape, fieldVarName(s, fc.Property))...)
	}
	if s.HasFullText() {
		stmts = append(stmts, jen.If(
			jen.List(jen.Id("term"), jen.Id("ok")).Op(":=").Qual(h.FulltextPkg(), "NormalizeTerm").Call(jen.Id("f").Dot("SearchTerm")),
			jen.Id("ok"),
		).Block(
			jen.Id("q").Op("=").Id("q").Dot("Where").Call(
				jen.Id(searchPredicateName(s)).Call(jen.Id("term"), jen.Id("ft")),
			),
		))
	}
	if s.HasSortable() {
		stmts = append(stmts, jen.Return(jen.Id("Apply"+s.EntityName+"Sort").Call(jen.Id("q"), jen.Id("f"))))
	} else {
		stmts = append(stmts, jen.Return(jen.Id("q")))
	}

	params := []jen.Code{
		jen.Id("q").Op("*").Qual(h.QueryPkg(), "Query"),
		jen.Id("f").Op("*").Id(s.FilterName),
	}
	if s.HasFullText() {
		params = append(params, jen.Id("ft").Op("*").Qual(h.FulltextPkg(), "Dispatcher"))
	}
	f.Commentf("Apply%sFilter narrows q with every constrained field of f. Unset", s.EntityName)
	f.Comment("fields are ignored; an entirely empty filter returns q unchanged.")
	f.Func().Id("Apply"+s.EntityName+"Filter").Params(params...).Op("*").Qual(h.QueryPkg(), "Query").Block(stmts...)
	return nil
}

// facetFragment returns the guarded predicate statements of one facet.
func facetFragment(fc *gen.FacetSpec, shape gen.Shape, varName string) []jen.Code {
	where := func(method string, args ...jen.Code) jen.Code {
		return jen.Id("q").Op("=").Id("q").Dot("Where").Call(jen.Id(varName).Dot(method).Call(args...))
	}
	include := func(body []jen.Code) []jen.Code {
		if fc.AutoInclude && fc.NavigationPath != "" {
			body = append(body, jen.Id("q").Op("=").Id("q").Dot("Include").Call(jen.Lit(fc.NavigationPath)))
		}
		return body
	}
	guardNil := func(field string, body ...jen.Code) jen.Code {
		return jen.If(jen.Id("f").Dot(field).Op("!=").Nil()).Block(include(body)...)
	}
	deref := func(field string) jen.Code {
		return jen.Op("*").Id("f").Dot(field)
	}

	switch fc.Kind {
	case facet.KindCategorical, facet.KindHierarchical:
		name := shape.Fields[0].Name
		return []jen.Code{
			jen.If(jen.Len(jen.Id("f").Dot(name)).Op(">").Lit(0)).Block(
				include([]jen.Code{where("In", jen.Id("f").Dot(name).Op("..."))})...,
			),
		}
	case facet.KindRange:
		min, max := shape.Fields[0].Name, shape.Fields[1].Name
		return []jen.Code{
			guardNil(min, where("GTE", deref(min))),
			guardNil(max, where("LTE", deref(max))),
		}
	case facet.KindBoolean:
		name := shape.Fields[0].Name
		return []jen.Code{
			guardNil(name, where("EQ", deref(name))),
		}
	case facet.KindDateRange:
		from, to := shape.Fields[0].Name, shape.Fields[1].Name
		return []jen.Code{
			guardNil(from, where("GTE", deref(from))),
			guardNil(to, where("LTE", deref(to))),
		}
	case facet.KindGeo:
		lat, lon, radius := shape.Fields[0].Name, shape.Fields[1].Name, shape.Fields[2].Name
		return []jen.Code{
			jen.If(
				jen.Id("f").Dot(lat).Op("!=").Nil().
					Op("&&").Id("f").Dot(lon).Op("!=").Nil().
					Op("&&").Id("f").Dot(radius).Op("!=").Nil(),
			).Block(
				include([]jen.Code{where("Within", deref(lat), deref(lon), deref(radius))})...,
			),
		}
	}
	return nil
}

func searchPredicateName(s *gen.EntitySearchSpec) string {
	return gen.Camel(s.EntityName) + "SearchPredicate"
}

// genSearchPredicate generates the full-text predicate helper. The emitted
// switch covers every resolvable strategy; which branch runs is decided at
// runtime by the dispatcher against the provider's capabilities.
func genSearchPredicate(h gen.Helper, f *jen.File, s *gen.EntitySearchSpec) {
	or := func(conds []jen.Code) jen.Code {
		return jen.Return(jen.Qual(h.QueryPkg(), "Or").Call(conds...))
	}
	natural := make([]jen.Code, 0, len(s.FullText))
	boolean := make([]jen.Code, 0, len(s.FullText))
	pattern := make([]jen.Code, 0, len(s.FullText))
	for _, ft := range s.FullText {
		name := fieldVarName(s, ft.Property)
		natural = append(natural, jen.Id(name).Dot("Match").Call(jen.Id("term")))
		boolean = append(boolean, jen.Id(name).Dot("MatchBool").Call(jen.Id("wrapped")))
		pattern = append(pattern, jen.Id(name).Dot(patternMethod(ft)).Call(jen.Id("term")))
	}

	f.Commentf("%s builds the full-text fragment of a search term over the", searchPredicateName(s))
	f.Commentf("declared fields of %s, using the strategy resolved by ft.", s.EntityName)
	f.Func().Id(searchPredicateName(s)).Params(
		jen.Id("term").String(),
		jen.Id("ft").Op("*").Qual(h.FulltextPkg(), "Dispatcher"),
	).Qual(h.QueryPkg(), "Predicate").Block(
		jen.If(jen.Id("ft").Op("==").Nil()).Block(
			jen.Id("ft").Op("=").Qual(h.FulltextPkg(), "NewDispatcher").Call(jen.Nil()),
		),
		jen.Switch(jen.Id("ft").Dot("Resolve").Call(jen.Qual(h.FulltextPkg(), strategyIdent(s.Strategy)))).Block(
			jen.Case(jen.Qual(h.FulltextPkg(), "StrategyNatural")).Block(
				or(natural),
			),
			jen.Case(jen.Qual(h.FulltextPkg(), "StrategyBoolean")).Block(
				jen.Id("wrapped").Op(":=").Qual(h.FulltextPkg(), "WrapTerm").Call(
					jen.Id("term"), jen.Qual(h.FulltextPkg(), "StrategyBoolean"),
				),
				or(boolean),
			),
			jen.Case(jen.Qual(h.FulltextPkg(), "StrategyClientSide")).Block(
				jen.Return(jen.Qual(h.QueryPkg(), "ClientSide").Call(clientSideFunc(h, s))),
			),
			jen.Default().Block(
				or(pattern),
			),
		),
	)
}

// patternMethod maps a field's match behavior to the pattern-strategy
// predicate method.
func patternMethod(ft *gen.FullTextFieldSpec) string {
	var method string
	switch ft.Behavior {
	case ftdecl.StartsWith:
		method = "HasPrefix"
	case ftdecl.EndsWith:
		method = "HasSuffix"
	case ftdecl.Exact:
		if ft.CaseSensitive {
			return "EQ"
		}
		return "EqualFold"
	default:
		method = "Contains"
	}
	if !ft.CaseSensitive {
		method += "Fold"
	}
	return method
}

// clientSideFunc builds the in-process matcher closure used when the
// declared strategy resolves to client-side evaluation.
func clientSideFunc(h gen.Helper, s *gen.EntitySearchSpec) jen.Code {
	body := make([]jen.Code, 0, len(s.FullText)+1)
	for _, ft := range s.FullText {
		body = append(body, jen.If(
			jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id("get").Call(jen.Lit(ft.Property)),
			jen.Id("ok"),
		).Block(
			jen.If(
				jen.List(jen.Id("s"), jen.Id("ok")).Op(":=").Id("v").Assert(jen.String()),
				jen.Id("ok").Op("&&").Add(clientSideMatch(ft)),
			).Block(
				jen.Return(jen.True()),
			),
		))
	}
	body = append(body, jen.Return(jen.False()))
	return jen.Func().Params(jen.Id("get").Qual(h.QueryPkg(), "Getter")).Bool().Block(body...)
}

// clientSideMatch builds the string comparison of one client-side field.
func clientSideMatch(ft *gen.FullTextFieldSpec) jen.Code {
	fn := "Contains"
	switch ft.Behavior {
	case ftdecl.StartsWith:
		fn = "HasPrefix"
	case ftdecl.EndsWith:
		fn = "HasSuffix"
	case ftdecl.Exact:
		if ft.CaseSensitive {
			return jen.Id("s").Op("==").Id("term")
		}
		return jen.Qual("strings", "EqualFold").Call(jen.Id("s"), jen.Id("term"))
	}
	if ft.CaseSensitive {
		return jen.Qual("strings", fn).Call(jen.Id("s"), jen.Id("term"))
	}
	return jen.Qual("strings", fn).Call(
		jen.Qual("strings", "ToLower").Call(jen.Id("s")),
		jen.Qual("strings", "ToLower").Call(jen.Id("term")),
	)
}

// genApplySort generates Apply{Entity}Sort. Sort fields outside the
// declared sortable set leave the query order untouched.
func genApplySort(h gen.Helper, f *jen.File, s *gen.EntitySearchSpec) {
	lits := make([]jen.Code, 0, len(s.Sortable))
	for _, sf := range s.Sortable {
		if sf.Sortable {
			lits = append(lits, jen.Lit(sf.Property))
		}
	}
	f.Commentf("Apply%sSort orders q by the filter's sort field. Unknown sort", s.EntityName)
	f.Comment("fields are ignored.")
	f.Func().Id("Apply"+s.EntityName+"Sort").Params(
		jen.Id("q").Op("*").Qual(h.QueryPkg(), "Query"),
		jen.Id("f").Op("*").Id(s.FilterName),
	).Op("*").Qual(h.QueryPkg(), "Query").Block(
		jen.If(jen.Id("q").Op("==").Nil().Op("||").Id("f").Op("==").Nil().Op("||").Id("f").Dot("SortBy").Op("==").Lit("")).Block(
			jen.Return(jen.Id("q")),
		),
		jen.Switch(jen.Id("f").Dot("SortBy")).Block(
			jen.Case(lits...).Block(
				jen.Id("q").Op("=").Id("q").Dot("OrderBy").Call(jen.Id("f").Dot("SortBy"), jen.Id("f").Dot("SortDescending")),
			),
		),
		jen.Return(jen.Id("q")),
	)
}
