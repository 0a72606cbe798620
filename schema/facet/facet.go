// Package facet provides fluent builders for declaring entity facets.
//
// A facet is one filterable/aggregable dimension derived from a domain
// property. Each builder constructs an immutable descriptor consumed by the
// compiler:
//
//	facet.Categorical("brand").Limit(20)
//	facet.Range("price")
//	facet.Boolean("in_stock")
//	facet.DateRange("created_at")
//	facet.Hierarchical("category").DependsOn("department")
//	facet.Geo("location")
//
// Facets sourced through an association use a dotted navigation path:
//
//	facet.Categorical("customer.name").Navigation("customer").AutoInclude()
package facet

import (
	"fmt"

	"github.com/facetkit/facetc/schema"
)

// Kind is the facet kind. It determines the generated filter-field shape
// and the predicate/aggregation fragments.
type Kind int

// Facet kinds.
const (
	KindInvalid Kind = iota
	KindCategorical
	KindRange
	KindBoolean
	KindDateRange
	KindHierarchical
	KindGeo
	endKinds
)

var kindNames = [...]string{
	KindInvalid:      "Invalid",
	KindCategorical:  "Categorical",
	KindRange:        "Range",
	KindBoolean:      "Boolean",
	KindDateRange:    "DateRange",
	KindHierarchical: "Hierarchical",
	KindGeo:          "Geo",
}

// String returns the symbolic name of the kind.
func (k Kind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// Valid reports if the kind is a recognized facet kind.
func (k Kind) Valid() bool { return k > KindInvalid && k < endKinds }

// ParseKind resolves a symbolic kind name back to its kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name && Kind(k).Valid() {
			return Kind(k), nil
		}
	}
	return KindInvalid, fmt.Errorf("facet: unknown kind %q", name)
}

// OrderBy determines the ordering of categorical aggregation buckets.
type OrderBy int

// Aggregation bucket orderings.
const (
	// OrderByCount orders buckets by descending count. The default.
	OrderByCount OrderBy = iota
	// OrderByValue orders buckets by ascending value.
	OrderByValue
	// OrderByRelevance is reserved for relevance-ordered strategies.
	OrderByRelevance
	// OrderByCustom leaves ordering to the consumer.
	OrderByCustom
)

var orderNames = [...]string{
	OrderByCount:     "Count",
	OrderByValue:     "Value",
	OrderByRelevance: "Relevance",
	OrderByCustom:    "Custom",
}

// String returns the symbolic name of the ordering.
func (o OrderBy) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("OrderBy(%d)", o)
}

// ParseOrderBy resolves a symbolic ordering name. An empty name resolves
// to the default count ordering.
func ParseOrderBy(name string) (OrderBy, error) {
	if name == "" {
		return OrderByCount, nil
	}
	for o, n := range orderNames {
		if n == name {
			return OrderBy(o), nil
		}
	}
	return OrderByCount, fmt.Errorf("facet: unknown ordering %q", name)
}

// RangePolicy determines how range aggregation intervals are derived.
// Meaningful only for KindRange facets.
type RangePolicy int

// Range aggregation policies.
const (
	// RangeAuto derives intervals from the data bounds. The default.
	RangeAuto RangePolicy = iota
	// RangeCustom uses consumer-supplied intervals.
	RangeCustom
	// RangeFixed uses the intervals declared on the facet.
	RangeFixed
	// RangeNone disables interval aggregation for the facet.
	RangeNone
)

var policyNames = [...]string{
	RangeAuto:   "Auto",
	RangeCustom: "Custom",
	RangeFixed:  "Fixed",
	RangeNone:   "None",
}

// String returns the symbolic name of the policy.
func (p RangePolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("RangePolicy(%d)", p)
}

// ParseRangePolicy resolves a symbolic policy name. An empty name
// resolves to the default auto policy.
func ParseRangePolicy(name string) (RangePolicy, error) {
	if name == "" {
		return RangeAuto, nil
	}
	for p, n := range policyNames {
		if n == name {
			return RangePolicy(p), nil
		}
	}
	return RangeAuto, fmt.Errorf("facet: unknown range policy %q", name)
}

// A Descriptor for facet configuration. Builders in this package construct
// descriptors; the compiler consumes them. The descriptor is not meant to
// be mutated after the declaration was scanned.
type Descriptor struct {
	Name           string      // property name.
	Type           schema.Type // semantic property type.
	Kind           Kind        // facet kind.
	DisplayName    string      // UI display name. Defaults to Name.
	OrderBy        OrderBy     // aggregation bucket ordering.
	Limit          int         // max aggregation buckets. 0 = unlimited.
	DependsOn      string      // property name of a facet this one depends on.
	Hierarchical   bool        // hierarchy semantics are consumer-defined.
	RangePolicy    RangePolicy // interval policy for range facets.
	RangeIntervals string      // opaque interval metadata for RangeFixed.
	NavigationPath string      // dotted path for association-sourced facets.
	AutoInclude    bool        // force eager loading of the path root.
	Err            error       // deferred builder error, checked at spec build.
}

// Categorical returns a new categorical facet declaration: the property
// value is matched against a supplied set of accepted values, and
// aggregation yields grouped counts.
func Categorical(name string) *CategoricalBuilder {
	return &CategoricalBuilder{desc: &Descriptor{
		Name: name,
		Type: schema.TypeString,
		Kind: KindCategorical,
	}}
}

// Hierarchical returns a new hierarchical facet declaration. At filter
// level it behaves like a categorical facet; hierarchy semantics are
// consumer-defined.
func Hierarchical(name string) *CategoricalBuilder {
	return &CategoricalBuilder{desc: &Descriptor{
		Name:         name,
		Type:         schema.TypeString,
		Kind:         KindHierarchical,
		Hierarchical: true,
	}}
}

// Range returns a new range facet declaration over a numeric property.
// The property type defaults to decimal and can be changed with Type.
func Range(name string) *RangeBuilder {
	return &RangeBuilder{desc: &Descriptor{
		Name: name,
		Type: schema.TypeDecimal,
		Kind: KindRange,
	}}
}

// Boolean returns a new boolean facet declaration.
func Boolean(name string) *BooleanBuilder {
	return &BooleanBuilder{desc: &Descriptor{
		Name: name,
		Type: schema.TypeBool,
		Kind: KindBoolean,
	}}
}

// DateRange returns a new date-range facet declaration.
func DateRange(name string) *DateRangeBuilder {
	return &DateRangeBuilder{desc: &Descriptor{
		Name: name,
		Type: schema.TypeDate,
		Kind: KindDateRange,
	}}
}

// Geo returns a new geo facet declaration. The generated filter carries
// latitude, longitude and radius fields for within-radius filtering.
func Geo(name string) *GeoBuilder {
	return &GeoBuilder{desc: &Descriptor{
		Name: name,
		Type: schema.TypeReference,
		Kind: KindGeo,
	}}
}

// CategoricalBuilder builds categorical and hierarchical facet
// declarations.
type CategoricalBuilder struct {
	desc *Descriptor
}

// Type overrides the semantic property type of the facet.
func (b *CategoricalBuilder) Type(t schema.Type) *CategoricalBuilder {
	b.desc.Type = t
	return b
}

// DisplayName sets the UI display name of the facet.
func (b *CategoricalBuilder) DisplayName(name string) *CategoricalBuilder {
	b.desc.DisplayName = name
	return b
}

// OrderBy sets the aggregation bucket ordering.
func (b *CategoricalBuilder) OrderBy(o OrderBy) *CategoricalBuilder {
	b.desc.OrderBy = o
	return b
}

// Limit truncates the aggregation to the top n buckets after ordering.
// Zero means unlimited.
func (b *CategoricalBuilder) Limit(n int) *CategoricalBuilder {
	if n < 0 {
		b.desc.Err = fmt.Errorf("facet %q: negative limit %d", b.desc.Name, n)
		return b
	}
	b.desc.Limit = n
	return b
}

// DependsOn declares that this facet depends on another facet of the same
// entity, referenced by its property name.
func (b *CategoricalBuilder) DependsOn(name string) *CategoricalBuilder {
	b.desc.DependsOn = name
	return b
}

// Navigation declares the facet as sourced through an association. The
// facet name must be a dotted path rooted at the given segment.
func (b *CategoricalBuilder) Navigation(root string) *CategoricalBuilder {
	b.desc.NavigationPath = root
	return b
}

// AutoInclude forces eager loading of the navigation-path root before the
// predicate is evaluated.
func (b *CategoricalBuilder) AutoInclude() *CategoricalBuilder {
	b.desc.AutoInclude = true
	return b
}

// Descriptor implements the facetc.Facet interface.
func (b *CategoricalBuilder) Descriptor() *Descriptor { return b.desc }

// RangeBuilder builds range facet declarations.
type RangeBuilder struct {
	desc *Descriptor
}

// Type overrides the numeric property type of the facet.
func (b *RangeBuilder) Type(t schema.Type) *RangeBuilder {
	if !t.Numeric() {
		b.desc.Err = fmt.Errorf("facet %q: range requires a numeric type, got %s", b.desc.Name, t)
		return b
	}
	b.desc.Type = t
	return b
}

// DisplayName sets the UI display name of the facet.
func (b *RangeBuilder) DisplayName(name string) *RangeBuilder {
	b.desc.DisplayName = name
	return b
}

// Policy sets the range aggregation interval policy.
func (b *RangeBuilder) Policy(p RangePolicy) *RangeBuilder {
	b.desc.RangePolicy = p
	return b
}

// Intervals declares a string-encoded interval list, consumed only as
// opaque metadata by RangeFixed consumers.
func (b *RangeBuilder) Intervals(spec string) *RangeBuilder {
	b.desc.RangeIntervals = spec
	return b
}

// DependsOn declares a dependency on another facet by property name.
func (b *RangeBuilder) DependsOn(name string) *RangeBuilder {
	b.desc.DependsOn = name
	return b
}

// Navigation declares the facet as sourced through an association.
func (b *RangeBuilder) Navigation(root string) *RangeBuilder {
	b.desc.NavigationPath = root
	return b
}

// AutoInclude forces eager loading of the navigation-path root.
func (b *RangeBuilder) AutoInclude() *RangeBuilder {
	b.desc.AutoInclude = true
	return b
}

// Descriptor implements the facetc.Facet interface.
func (b *RangeBuilder) Descriptor() *Descriptor { return b.desc }

// BooleanBuilder builds boolean facet declarations.
type BooleanBuilder struct {
	desc *Descriptor
}

// DisplayName sets the UI display name of the facet.
func (b *BooleanBuilder) DisplayName(name string) *BooleanBuilder {
	b.desc.DisplayName = name
	return b
}

// DependsOn declares a dependency on another facet by property name.
func (b *BooleanBuilder) DependsOn(name string) *BooleanBuilder {
	b.desc.DependsOn = name
	return b
}

// Navigation declares the facet as sourced through an association.
func (b *BooleanBuilder) Navigation(root string) *BooleanBuilder {
	b.desc.NavigationPath = root
	return b
}

// AutoInclude forces eager loading of the navigation-path root.
func (b *BooleanBuilder) AutoInclude() *BooleanBuilder {
	b.desc.AutoInclude = true
	return b
}

// Descriptor implements the facetc.Facet interface.
func (b *BooleanBuilder) Descriptor() *Descriptor { return b.desc }

// DateRangeBuilder builds date-range facet declarations.
type DateRangeBuilder struct {
	desc *Descriptor
}

// DisplayName sets the UI display name of the facet.
func (b *DateRangeBuilder) DisplayName(name string) *DateRangeBuilder {
	b.desc.DisplayName = name
	return b
}

// DependsOn declares a dependency on another facet by property name.
func (b *DateRangeBuilder) DependsOn(name string) *DateRangeBuilder {
	b.desc.DependsOn = name
	return b
}

// Navigation declares the facet as sourced through an association.
func (b *DateRangeBuilder) Navigation(root string) *DateRangeBuilder {
	b.desc.NavigationPath = root
	return b
}

// AutoInclude forces eager loading of the navigation-path root.
func (b *DateRangeBuilder) AutoInclude() *DateRangeBuilder {
	b.desc.AutoInclude = true
	return b
}

// Descriptor implements the facetc.Facet interface.
func (b *DateRangeBuilder) Descriptor() *Descriptor { return b.desc }

// GeoBuilder builds geo facet declarations.
type GeoBuilder struct {
	desc *Descriptor
}

// DisplayName sets the UI display name of the facet.
func (b *GeoBuilder) DisplayName(name string) *GeoBuilder {
	b.desc.DisplayName = name
	return b
}

// DependsOn declares a dependency on another facet by property name.
func (b *GeoBuilder) DependsOn(name string) *GeoBuilder {
	b.desc.DependsOn = name
	return b
}

// Descriptor implements the facetc.Facet interface.
func (b *GeoBuilder) Descriptor() *Descriptor { return b.desc }
