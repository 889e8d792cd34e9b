// Package design implements the site's three interchangeable visual
// designs: the closed set of variants, the per-browser state holding the
// active one, the mapping from themed home routes to variants, and the
// table that resolves every building block's classes for a variant.
package design

// Variant identifies one of the visual designs.
type Variant string

const (
	Corporate  Variant = "corporate"
	Industrial Variant = "industrial"
	Minimal    Variant = "minimal"
)

// Default is the first-defined variant, active when nothing else applies.
const Default = Corporate

// Meta describes how a variant is presented in the switcher.
type Meta struct {
	Variant Variant
	Label   string
	// HomeRoute is the path segment of the variant's themed home page.
	HomeRoute string
	// Swatch is the utility class of the colored dot in the switcher.
	Swatch string
}

var variants = []Meta{
	{Variant: Corporate, Label: "Corporate", HomeRoute: "home-a", Swatch: "bg-orange-600"},
	{Variant: Industrial, Label: "Industrial", HomeRoute: "home-b", Swatch: "bg-amber-500"},
	{Variant: Minimal, Label: "Minimal", HomeRoute: "home-c", Swatch: "bg-slate-200"},
}

// All returns every variant's metadata in definition order.
func All() []Meta {
	out := make([]Meta, len(variants))
	copy(out, variants)
	return out
}

// ParseVariant returns the variant named s, or false if s is not one of
// the closed set.
func ParseVariant(s string) (Variant, bool) {
	for _, m := range variants {
		if string(m.Variant) == s {
			return m.Variant, true
		}
	}
	return "", false
}

// Meta returns the metadata of v. Unknown values yield the default's.
func (v Variant) Meta() Meta {
	for _, m := range variants {
		if m.Variant == v {
			return m
		}
	}
	return variants[0]
}

// HomeRoute returns the themed home path segment of v.
func (v Variant) HomeRoute() string { return v.Meta().HomeRoute }

// String implements fmt.Stringer.
func (v Variant) String() string { return string(v) }
