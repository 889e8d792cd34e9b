// Package ui provides the presentation building blocks used by the page
// templates. Blocks hold no variant logic of their own: every class comes
// from design.Resolve for the RenderContext they were built with.
package ui

import (
	"fmt"
	"html/template"
	"strings"

	"technogroop/internal/design"
	"technogroop/internal/i18n"
)

// RenderContext is passed explicitly down the render tree.
type RenderContext struct {
	Locale  i18n.Locale
	Variant design.Variant
}

// Blocks renders building blocks for one RenderContext.
type Blocks struct {
	rc RenderContext
}

// New returns the blocks for rc.
func New(rc RenderContext) Blocks {
	return Blocks{rc: rc}
}

// Context returns the RenderContext the blocks render for.
func (b Blocks) Context() RenderContext { return b.rc }

// Class resolves kind in role for the current variant.
func (b Blocks) Class(kind design.Kind, role design.Role) string {
	return design.Resolve(kind, b.rc.Variant, role).Class()
}

// Wrapper blocks return class attribute values for the page templates.

func (b Blocks) Shell() string  { return b.Class(design.KindShell, design.RoleDefault) }
func (b Blocks) Header() string { return b.Class(design.KindHeader, design.RoleDefault) }
func (b Blocks) Footer() string { return b.Class(design.KindFooter, design.RoleDefault) }
func (b Blocks) Hero() string   { return b.Class(design.KindHero, design.RoleDefault) }

// FooterBar is the bottom strip of the footer with legal data.
func (b Blocks) FooterBar() string { return b.Class(design.KindFooter, design.RoleMuted) }

// Nav returns the class of a navigation link.
func (b Blocks) Nav(active bool) string {
	if active {
		return b.Class(design.KindNav, design.RoleActive)
	}
	return b.Class(design.KindNav, design.RoleDefault)
}

// Section returns the class of a page section in role (primary,
// secondary or accent).
func (b Blocks) Section(role string) string {
	return "py-20 " + b.Class(design.KindSection, design.Role(role))
}

// Card returns the class of a content card.
func (b Blocks) Card(featured bool) string {
	role := design.RoleDefault
	if featured {
		role = design.RoleFeatured
	}
	return "p-8 " + b.Class(design.KindCard, role)
}

// Element blocks return escaped markup.

// Heading renders an h1-h3. Levels outside 1..3 are clamped.
func (b Blocks) Heading(level int, text string) template.HTML {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	role := design.Role(fmt.Sprintf("h%d", level))
	return template.HTML(fmt.Sprintf(`<h%d class="%s">%s</h%d>`,
		level, b.Class(design.KindHeading, role), template.HTMLEscapeString(text), level))
}

// Text renders a paragraph in role (body, muted or accent).
func (b Blocks) Text(role, text string) template.HTML {
	return template.HTML(fmt.Sprintf(`<p class="%s">%s</p>`,
		b.Class(design.KindText, design.Role(role)), template.HTMLEscapeString(text)))
}

// Button renders a link styled as a button in role (primary or secondary).
// Unsafe hrefs are replaced with "#".
func (b Blocks) Button(role, href, label string) template.HTML {
	return template.HTML(fmt.Sprintf(`<a href="%s" class="inline-flex items-center justify-center px-8 py-4 %s">%s</a>`,
		template.HTMLEscapeString(safeHref(href)),
		b.Class(design.KindButton, design.Role(role)),
		template.HTMLEscapeString(label)))
}

// Badge renders a small label in role (default or accent).
func (b Blocks) Badge(role, text string) template.HTML {
	return template.HTML(fmt.Sprintf(`<span class="inline-block px-3 py-1 %s">%s</span>`,
		b.Class(design.KindBadge, design.Role(role)), template.HTMLEscapeString(text)))
}

// Tagline renders the small label above the hero heading.
func (b Blocks) Tagline(text string) template.HTML {
	return template.HTML(fmt.Sprintf(`<span class="inline-block px-4 py-1.5 %s">%s</span>`,
		b.Class(design.KindHero, design.RoleAccent), template.HTMLEscapeString(text)))
}

// safeHref allows site-relative paths, fragments and http(s), mailto and
// tel links.
func safeHref(href string) string {
	h := strings.TrimSpace(href)
	lower := strings.ToLower(h)
	switch {
	case strings.HasPrefix(h, "/") && !strings.HasPrefix(h, "//"),
		strings.HasPrefix(h, "#"),
		strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "http://"),
		strings.HasPrefix(lower, "mailto:"),
		strings.HasPrefix(lower, "tel:"):
		return h
	}
	return "#"
}
