package design

import "strings"

// Kind names a presentation building block.
type Kind string

const (
	KindShell   Kind = "shell"
	KindHeader  Kind = "header"
	KindNav     Kind = "nav"
	KindFooter  Kind = "footer"
	KindHero    Kind = "hero"
	KindSection Kind = "section"
	KindCard    Kind = "card"
	KindHeading Kind = "heading"
	KindText    Kind = "text"
	KindButton  Kind = "button"
	KindBadge   Kind = "badge"
)

// Role is the semantic slot a block is rendered in, e.g. an accent section
// or a secondary button.
type Role string

const (
	RoleDefault   Role = "default"
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleAccent    Role = "accent"
	RoleMuted     Role = "muted"
	RoleActive    Role = "active"
	RoleFeatured  Role = "featured"
	RoleBody      Role = "body"
	RoleH1        Role = "h1"
	RoleH2        Role = "h2"
	RoleH3        Role = "h3"
)

// Style is the resolved presentation of one block: utility classes grouped
// by concern.
type Style struct {
	Surface  string
	Text     string
	Border   string
	Radius   string
	Emphasis string
}

// Class joins the non-empty parts of s into a class attribute value.
func (s Style) Class() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{s.Surface, s.Text, s.Border, s.Radius, s.Emphasis} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// IsZero reports whether no class is set.
func (s Style) IsZero() bool { return s == Style{} }

// kinds lists every kind in declaration order.
var kinds = []Kind{
	KindShell, KindHeader, KindNav, KindFooter, KindHero, KindSection,
	KindCard, KindHeading, KindText, KindButton, KindBadge,
}

// Kinds returns every building block kind.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Roles returns the roles kind is rendered with. Resolve is total over
// Kinds() x variants x Roles(kind).
func Roles(kind Kind) []Role {
	roles := make([]Role, 0, len(table[kind]))
	for _, r := range roleOrder {
		if _, ok := table[kind][r]; ok {
			roles = append(roles, r)
		}
	}
	return roles
}

var roleOrder = []Role{
	RoleDefault, RolePrimary, RoleSecondary, RoleAccent, RoleMuted,
	RoleActive, RoleFeatured, RoleBody, RoleH1, RoleH2, RoleH3,
}

// Resolve returns the style of kind in role for variant v. A role the kind
// does not declare resolves to the kind's first declared role, and an
// unknown variant to Default, so callers always get a usable style.
func Resolve(kind Kind, v Variant, role Role) Style {
	roles, ok := table[kind]
	if !ok {
		return Style{}
	}
	byVariant, ok := roles[role]
	if !ok {
		if first := Roles(kind); len(first) > 0 {
			byVariant = roles[first[0]]
		}
	}
	if s, ok := byVariant[v]; ok {
		return s
	}
	return byVariant[Default]
}

type variantStyles map[Variant]Style

// table is the single source of variant styling. Corporate follows the
// rounded orange gradient look, industrial a dark high-contrast look with
// square corners, minimal a light monochrome look with hairline borders.
var table = map[Kind]map[Role]variantStyles{
	KindShell: {
		RoleDefault: {
			Corporate:  {Surface: "bg-white", Text: "text-slate-900", Emphasis: "antialiased"},
			Industrial: {Surface: "bg-zinc-950", Text: "text-zinc-100", Emphasis: "antialiased"},
			Minimal:    {Surface: "bg-white", Text: "text-neutral-900", Emphasis: "antialiased font-light"},
		},
	},
	KindHeader: {
		RoleDefault: {
			Corporate:  {Surface: "bg-white/95 backdrop-blur-xl", Border: "border-b border-slate-100", Emphasis: "shadow-sm shadow-slate-100/50"},
			Industrial: {Surface: "bg-zinc-900", Text: "text-zinc-100", Border: "border-b-4 border-amber-500"},
			Minimal:    {Surface: "bg-white", Text: "text-neutral-900", Border: "border-b border-neutral-200"},
		},
	},
	KindNav: {
		RoleDefault: {
			Corporate:  {Text: "text-sm text-slate-600 hover:text-slate-900 hover:bg-white", Radius: "rounded-full"},
			Industrial: {Text: "text-sm uppercase tracking-wider text-zinc-300 hover:text-amber-400", Emphasis: "font-semibold"},
			Minimal:    {Text: "text-sm text-neutral-500 hover:text-neutral-900"},
		},
		RoleActive: {
			Corporate:  {Surface: "bg-white", Text: "text-sm text-orange-600", Radius: "rounded-full", Emphasis: "font-medium shadow-sm"},
			Industrial: {Text: "text-sm uppercase tracking-wider text-amber-400", Border: "border-b-2 border-amber-400", Emphasis: "font-semibold"},
			Minimal:    {Text: "text-sm text-neutral-900", Border: "border-b border-neutral-900"},
		},
	},
	KindFooter: {
		RoleDefault: {
			Corporate:  {Surface: "bg-slate-900", Text: "text-slate-300"},
			Industrial: {Surface: "bg-black", Text: "text-zinc-400", Border: "border-t-4 border-amber-500"},
			Minimal:    {Surface: "bg-neutral-50", Text: "text-neutral-500", Border: "border-t border-neutral-200"},
		},
		RoleMuted: {
			Corporate:  {Text: "text-xs text-slate-500", Border: "border-t border-slate-800"},
			Industrial: {Text: "text-xs uppercase tracking-wider text-zinc-600", Border: "border-t border-zinc-800"},
			Minimal:    {Text: "text-xs text-neutral-400", Border: "border-t border-neutral-200"},
		},
	},
	KindHero: {
		RoleDefault: {
			Corporate:  {Surface: "bg-gradient-to-br from-orange-50 via-white to-amber-50", Text: "text-slate-900"},
			Industrial: {Surface: "bg-zinc-900 bg-[linear-gradient(135deg,#18181b_0%,#27272a_100%)]", Text: "text-white", Border: "border-b border-zinc-800"},
			Minimal:    {Surface: "bg-white", Text: "text-neutral-900"},
		},
		RoleAccent: {
			Corporate:  {Surface: "bg-orange-100", Text: "text-sm text-orange-700", Radius: "rounded-full", Emphasis: "font-medium"},
			Industrial: {Surface: "bg-amber-500", Text: "text-xs uppercase tracking-widest text-black", Emphasis: "font-bold"},
			Minimal:    {Text: "text-xs uppercase tracking-[0.3em] text-neutral-500"},
		},
	},
	KindSection: {
		RolePrimary: {
			Corporate:  {Surface: "bg-gradient-to-br from-white via-orange-50/20 to-white", Text: "text-slate-900"},
			Industrial: {Surface: "bg-zinc-950", Text: "text-zinc-100"},
			Minimal:    {Surface: "bg-white", Text: "text-neutral-900"},
		},
		RoleSecondary: {
			Corporate:  {Surface: "bg-gradient-to-b from-slate-50 to-white", Text: "text-slate-900"},
			Industrial: {Surface: "bg-zinc-900", Text: "text-zinc-100", Border: "border-y border-zinc-800"},
			Minimal:    {Surface: "bg-neutral-50", Text: "text-neutral-900", Border: "border-y border-neutral-100"},
		},
		RoleAccent: {
			Corporate:  {Surface: "bg-gradient-to-br from-orange-500 via-orange-600 to-amber-600", Text: "text-white"},
			Industrial: {Surface: "bg-amber-500", Text: "text-black"},
			Minimal:    {Surface: "bg-neutral-900", Text: "text-white"},
		},
	},
	KindCard: {
		RoleDefault: {
			Corporate:  {Surface: "bg-white", Border: "border border-slate-100", Radius: "rounded-3xl", Emphasis: "shadow-xl shadow-slate-200/50 hover:shadow-2xl hover:-translate-y-1 transition-all duration-300"},
			Industrial: {Surface: "bg-zinc-900", Text: "text-zinc-100", Border: "border border-zinc-700 hover:border-amber-500", Emphasis: "transition-colors"},
			Minimal:    {Surface: "bg-white", Border: "border border-neutral-200 hover:border-neutral-900", Emphasis: "transition-colors"},
		},
		RoleFeatured: {
			Corporate:  {Surface: "bg-gradient-to-br from-orange-50 to-white", Border: "border border-orange-200", Radius: "rounded-3xl", Emphasis: "shadow-2xl shadow-orange-200/40"},
			Industrial: {Surface: "bg-zinc-800", Text: "text-white", Border: "border-l-4 border-amber-500"},
			Minimal:    {Surface: "bg-neutral-50", Border: "border border-neutral-900"},
		},
	},
	KindHeading: {
		RoleH1: {
			Corporate:  {Text: "text-4xl md:text-5xl lg:text-6xl text-slate-900", Emphasis: "font-bold"},
			Industrial: {Text: "text-4xl md:text-6xl uppercase tracking-tight text-white", Emphasis: "font-black"},
			Minimal:    {Text: "text-4xl md:text-5xl tracking-tight text-neutral-900", Emphasis: "font-light"},
		},
		RoleH2: {
			Corporate:  {Text: "text-3xl md:text-4xl text-slate-900", Emphasis: "font-bold"},
			Industrial: {Text: "text-3xl md:text-4xl uppercase text-white", Emphasis: "font-extrabold"},
			Minimal:    {Text: "text-3xl tracking-tight text-neutral-900", Emphasis: "font-light"},
		},
		RoleH3: {
			Corporate:  {Text: "text-xl md:text-2xl text-slate-900", Emphasis: "font-bold"},
			Industrial: {Text: "text-xl uppercase text-amber-400", Emphasis: "font-bold"},
			Minimal:    {Text: "text-xl text-neutral-900", Emphasis: "font-normal"},
		},
	},
	KindText: {
		RoleBody: {
			Corporate:  {Text: "text-slate-600"},
			Industrial: {Text: "text-zinc-300"},
			Minimal:    {Text: "text-neutral-600"},
		},
		RoleMuted: {
			Corporate:  {Text: "text-slate-400"},
			Industrial: {Text: "text-zinc-500"},
			Minimal:    {Text: "text-neutral-400"},
		},
		RoleAccent: {
			Corporate:  {Text: "text-orange-600"},
			Industrial: {Text: "text-amber-400", Emphasis: "font-semibold"},
			Minimal:    {Text: "text-neutral-900", Emphasis: "underline underline-offset-4"},
		},
	},
	KindButton: {
		RolePrimary: {
			Corporate:  {Surface: "bg-gradient-to-r from-orange-500 to-amber-500", Text: "text-white", Radius: "rounded-full", Emphasis: "font-semibold shadow-lg shadow-orange-500/25 hover:shadow-orange-500/40 hover:scale-105 transition-all"},
			Industrial: {Surface: "bg-amber-500 hover:bg-amber-400", Text: "text-black uppercase tracking-wider", Emphasis: "font-bold transition-colors"},
			Minimal:    {Surface: "bg-neutral-900 hover:bg-neutral-700", Text: "text-white", Emphasis: "font-normal transition-colors"},
		},
		RoleSecondary: {
			Corporate:  {Surface: "bg-white", Text: "text-slate-700 hover:text-orange-600", Border: "border border-slate-200 hover:border-orange-300", Radius: "rounded-full", Emphasis: "font-semibold shadow-lg shadow-slate-200/50 transition-all"},
			Industrial: {Text: "text-amber-400 uppercase tracking-wider hover:text-black hover:bg-amber-400", Border: "border-2 border-amber-400", Emphasis: "font-bold transition-colors"},
			Minimal:    {Text: "text-neutral-900", Border: "border border-neutral-900 hover:bg-neutral-900 hover:text-white", Emphasis: "transition-colors"},
		},
	},
	KindBadge: {
		RoleDefault: {
			Corporate:  {Surface: "bg-slate-100", Text: "text-xs text-slate-600", Radius: "rounded-full"},
			Industrial: {Surface: "bg-zinc-800", Text: "text-xs uppercase text-zinc-300", Border: "border border-zinc-700"},
			Minimal:    {Text: "text-xs text-neutral-500", Border: "border border-neutral-200"},
		},
		RoleAccent: {
			Corporate:  {Surface: "bg-orange-100", Text: "text-xs text-orange-700", Radius: "rounded-full", Emphasis: "font-medium"},
			Industrial: {Surface: "bg-amber-500", Text: "text-xs uppercase text-black", Emphasis: "font-bold"},
			Minimal:    {Surface: "bg-neutral-900", Text: "text-xs text-white"},
		},
	},
}
