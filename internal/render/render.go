// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Every page is parsed together with the base layout and shared partials,
// and renders against a PageData carrying the request's RenderContext.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"technogroop/internal/design"
	"technogroop/internal/i18n"
	"technogroop/internal/markdown"
	"technogroop/internal/models"
	"technogroop/internal/ui"
)

//go:embed templates/site/*.html
var siteFS embed.FS

// layoutFiles are parsed into every page template.
var layoutFiles = []string{"templates/site/base.html", "templates/site/partials.html"}

// NavItem is one entry of the main navigation.
type NavItem struct {
	Key    string
	Label  string
	Href   string
	Active bool
}

// LocaleLink points at the current page in another locale.
type LocaleLink struct {
	Locale i18n.Locale
	Href   string
	Active bool
}

// VariantOption is one button of the design switcher.
type VariantOption struct {
	design.Meta
	Label  string
	Active bool
}

// navKeys lists the main navigation in display order, by path segment.
var navKeys = []string{"about", "services", "portfolio", "reviews", "careers", "contact"}

// PageData holds all data passed to site templates.
type PageData struct {
	RC       ui.RenderContext
	UI       ui.Blocks
	Settings models.Settings

	Title       string // page title; the site title is appended
	Description string // meta description; defaults to the site description
	Section     string // active navigation key
	Path        string // path below the locale prefix, "" or "/services"
	Status      int    // response status; 0 means 200

	SiteURL          string
	TurnstileSiteKey string

	Data map[string]any // page-specific data

	tr *i18n.Translator
}

// T translates key for the page's locale.
func (p *PageData) T(key string) string {
	return p.tr.T(p.RC.Locale, key)
}

// Href prefixes path with the page's locale.
func (p *PageData) Href(path string) string {
	return "/" + string(p.RC.Locale) + path
}

// HomeHref is the themed home of the active variant.
func (p *PageData) HomeHref() string {
	return p.Href("/" + p.RC.Variant.HomeRoute())
}

// FullTitle is the content of the <title> element.
func (p *PageData) FullTitle() string {
	if p.Title == "" {
		return p.Settings.Title
	}
	return p.Title + " | " + p.Settings.Title
}

// MetaDescription is the page description or the site-wide one.
func (p *PageData) MetaDescription() string {
	if p.Description != "" {
		return p.Description
	}
	return p.Settings.Description
}

// Canonical is the absolute URL of the page.
func (p *PageData) Canonical() string {
	return p.SiteURL + p.Href(p.Path)
}

// Nav returns the main navigation with the active section marked.
func (p *PageData) Nav() []NavItem {
	items := make([]NavItem, 0, len(navKeys))
	for _, k := range navKeys {
		items = append(items, NavItem{
			Key:    k,
			Label:  p.T("Nav." + k),
			Href:   p.Href("/" + k),
			Active: p.Section == k,
		})
	}
	return items
}

// Locales links the current page in every locale.
func (p *PageData) Locales() []LocaleLink {
	out := make([]LocaleLink, 0, len(i18n.Locales()))
	for _, l := range i18n.Locales() {
		out = append(out, LocaleLink{
			Locale: l,
			Href:   "/" + string(l) + p.Path,
			Active: l == p.RC.Locale,
		})
	}
	return out
}

// Variants lists the design switcher options.
func (p *PageData) Variants() []VariantOption {
	all := design.All()
	out := make([]VariantOption, 0, len(all))
	for _, m := range all {
		out = append(out, VariantOption{
			Meta:   m,
			Label:  p.T("Design." + string(m.Variant)),
			Active: m.Variant == p.RC.Variant,
		})
	}
	return out
}

// Year is the current year for the footer.
func (p *PageData) Year() int {
	return time.Now().Year()
}

// Renderer handles template parsing and execution for site pages.
type Renderer struct {
	templates        map[string]*template.Template
	tr               *i18n.Translator
	siteURL          string
	turnstileSiteKey string
}

var funcMap = template.FuncMap{
	"markdown": markdown.Render,
	// dict builds the argument map of a partial template.
	"dict": func(pairs ...any) (map[string]any, error) {
		if len(pairs)%2 != 0 {
			return nil, fmt.Errorf("dict: odd number of arguments")
		}
		m := make(map[string]any, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			k, ok := pairs[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
			}
			m[k] = pairs[i+1]
		}
		return m, nil
	},
	"list": func(items ...string) []string { return items },
	"join": strings.Join,
}

// New parses every page template from the embedded filesystem, each paired
// with the base layout and partials.
func New(tr *i18n.Translator, siteURL, turnstileSiteKey string) (*Renderer, error) {
	r := &Renderer{
		templates:        make(map[string]*template.Template),
		tr:               tr,
		siteURL:          strings.TrimRight(siteURL, "/"),
		turnstileSiteKey: turnstileSiteKey,
	}

	pages, err := fs.Glob(siteFS, "templates/site/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	for _, page := range pages {
		name := strings.TrimSuffix(strings.TrimPrefix(page, "templates/site/"), ".html")
		if name == "base" || name == "partials" {
			continue
		}
		files := append(append([]string{}, layoutFiles...), page)
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(siteFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// NewPage returns PageData for one request.
func (rn *Renderer) NewPage(rc ui.RenderContext, settings models.Settings, path string) *PageData {
	return &PageData{
		RC:               rc,
		UI:               ui.New(rc),
		Settings:         settings,
		Path:             path,
		SiteURL:          rn.siteURL,
		TurnstileSiteKey: rn.turnstileSiteKey,
		Data:             map[string]any{},
		tr:               rn.tr,
	}
}

// Has reports whether a page template named name exists.
func (rn *Renderer) Has(name string) bool {
	_, ok := rn.templates[name]
	return ok
}

// Page renders a full page. The template is executed into a buffer first so
// a failing template yields a clean 500 instead of a truncated page.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		slog.Error("template not found", "template", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		slog.Error("template render failed", "template", name, "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	status := data.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
