// Package sortable provides builders for declaring sortable entity fields.
package sortable

// A Descriptor for sortable field configuration.
type Descriptor struct {
	Name     string // property name.
	Sortable bool   // false disables sorting while keeping the declaration.
}

// Builder builds sortable field declarations.
type Builder struct {
	desc *Descriptor
}

// Field returns a new sortable field declaration.
func Field(name string) *Builder {
	return &Builder{desc: &Descriptor{Name: name, Sortable: true}}
}

// Disabled keeps the declaration but excludes the field from generated
// sort application.
func (b *Builder) Disabled() *Builder {
	b.desc.Sortable = false
	return b
}

// Descriptor implements the facetc.SortableField interface.
func (b *Builder) Descriptor() *Descriptor { return b.desc }
