// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"technogroop/internal/cms"
	"technogroop/internal/design"
	"technogroop/internal/i18n"
	"technogroop/internal/models"
	"technogroop/internal/render"
	"technogroop/internal/ui"
)

// featuredOnHome caps the featured projects shown on a themed home page.
const featuredOnHome = 6

// Site groups the handlers for the public, localized pages. Every page is
// assembled from CMS content read through cms.Client, which never fails, so
// the handlers only distinguish found from not found.
type Site struct {
	cms      *cms.Client
	renderer *render.Renderer
}

// NewSite creates the page handlers.
func NewSite(client *cms.Client, renderer *render.Renderer) *Site {
	return &Site{cms: client, renderer: renderer}
}

// Routes registers the localized pages on r, which is mounted at
// /{locale}.
func (s *Site) Routes(r chi.Router) {
	r.Use(s.Locale)
	r.Get("/", s.LocaleRoot)
	for _, m := range design.All() {
		r.Get("/"+m.HomeRoute, s.Home)
	}
	r.Get("/services", s.Services)
	r.Get("/portfolio", s.Portfolio)
	r.Get("/portfolio/{id}", s.Project)
	r.Get("/about", s.About)
	r.Get("/contact", s.Contact)
	r.Get("/reviews", s.Reviews)
	r.Get("/careers", s.Careers)
	r.Post("/design", s.SetDesign)
}

type localeKey struct{}

// localeFromCtx returns the locale stored by Site.Locale, or the default.
func localeFromCtx(ctx context.Context) i18n.Locale {
	if l, ok := ctx.Value(localeKey{}).(i18n.Locale); ok {
		return l
	}
	return i18n.Default
}

// Locale validates the {locale} URL segment. Unknown locales get the 404
// page in the default language.
func (s *Site) Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale, ok := i18n.ParseLocale(chi.URLParam(r, "locale"))
		if !ok {
			s.notFound(w, r, i18n.Default)
			return
		}
		ctx := context.WithValue(r.Context(), localeKey{}, locale)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Root sends visitors to the locale their browser prefers.
func (s *Site) Root(w http.ResponseWriter, r *http.Request) {
	locale := i18n.Negotiate(r.Header.Get("Accept-Language"))
	http.Redirect(w, r, "/"+string(locale), http.StatusFound)
}

// LocaleRoot sends visitors to the home page of their current design.
func (s *Site) LocaleRoot(w http.ResponseWriter, r *http.Request) {
	locale := localeFromCtx(r.Context())
	v := design.FromCtx(r.Context())
	http.Redirect(w, r, "/"+string(locale)+"/"+v.HomeRoute(), http.StatusFound)
}

// page starts the PageData for a request. path is the route below the
// locale prefix.
func (s *Site) page(r *http.Request, settings models.Settings, path string) *render.PageData {
	rc := ui.RenderContext{
		Locale:  localeFromCtx(r.Context()),
		Variant: design.FromCtx(r.Context()),
	}
	return s.renderer.NewPage(rc, settings, path)
}

// Home renders the themed home page. The design middleware has already
// switched the session to the variant the route names.
func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	content := s.cms.Load(ctx, localeFromCtx(ctx), cms.Needs{
		Services:        true,
		Projects:        &cms.ProjectFilter{FeaturedOnly: true, Limit: featuredOnHome},
		FeaturedReviews: true,
	})

	page := s.page(r, content.Settings, "/"+design.FromCtx(ctx).HomeRoute())
	page.Data["Services"] = content.Services
	page.Data["Projects"] = content.Projects
	page.Data["Reviews"] = content.Reviews
	s.renderer.Page(w, r, "home", page)
}

// Services lists the active services.
func (s *Site) Services(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	content := s.cms.Load(ctx, localeFromCtx(ctx), cms.Needs{Services: true})

	page := s.section(r, content.Settings, "services")
	page.Data["Services"] = content.Services
	s.renderer.Page(w, r, "services", page)
}

// Portfolio lists projects, optionally narrowed by ?category=. Unknown
// categories show everything.
func (s *Site) Portfolio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, _ := models.ParseProjectCategory(r.URL.Query().Get("category"))
	content := s.cms.Load(ctx, localeFromCtx(ctx), cms.Needs{
		Projects: &cms.ProjectFilter{Category: category},
	})

	page := s.section(r, content.Settings, "portfolio")
	page.Data["Projects"] = content.Projects
	page.Data["Categories"] = models.ProjectCategories
	page.Data["Category"] = string(category)
	s.renderer.Page(w, r, "portfolio", page)
}

// Project renders one portfolio entry. Non-numeric and unknown ids get the
// 404 page.
func (s *Site) Project(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale := localeFromCtx(ctx)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		s.notFound(w, r, locale)
		return
	}
	project := s.cms.Project(ctx, id, locale)
	if project == nil {
		s.notFound(w, r, locale)
		return
	}

	page := s.page(r, s.cms.Settings(ctx, locale), "/portfolio/"+strconv.FormatInt(id, 10))
	page.Section = "portfolio"
	page.Title = project.Title
	page.Description = project.Description
	page.Data["Project"] = project
	s.renderer.Page(w, r, "project", page)
}

// About renders the company page.
func (s *Site) About(w http.ResponseWriter, r *http.Request) {
	s.static(w, r, "about")
}

// Contact renders the contact form.
func (s *Site) Contact(w http.ResponseWriter, r *http.Request) {
	s.static(w, r, "contact")
}

// Reviews lists every client review.
func (s *Site) Reviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	content := s.cms.Load(ctx, localeFromCtx(ctx), cms.Needs{Reviews: true})

	page := s.section(r, content.Settings, "reviews")
	page.Data["Reviews"] = content.Reviews
	s.renderer.Page(w, r, "reviews", page)
}

// Careers lists active vacancies.
func (s *Site) Careers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	content := s.cms.Load(ctx, localeFromCtx(ctx), cms.Needs{Vacancies: true})

	page := s.section(r, content.Settings, "careers")
	page.Data["Vacancies"] = content.Vacancies
	s.renderer.Page(w, r, "careers", page)
}

// NotFound renders the 404 page in the locale named by the first path
// segment, or the default locale.
func (s *Site) NotFound(w http.ResponseWriter, r *http.Request) {
	first, _, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	locale, ok := i18n.ParseLocale(first)
	if !ok {
		locale = i18n.Default
	}
	s.notFound(w, r, locale)
}

func (s *Site) notFound(w http.ResponseWriter, r *http.Request, locale i18n.Locale) {
	ctx := context.WithValue(r.Context(), localeKey{}, locale)
	r = r.WithContext(ctx)

	page := s.page(r, s.cms.Settings(ctx, locale), "")
	page.Title = page.T("NotFound.title")
	page.Status = http.StatusNotFound
	s.renderer.Page(w, r, "notfound", page)
}

// section prepares a top-level page whose title comes from <Name>.title and
// whose description comes from <Name>.subtitle or <Name>.description.
func (s *Site) section(r *http.Request, settings models.Settings, name string) *render.PageData {
	page := s.page(r, settings, "/"+name)
	page.Section = name
	key := strings.ToUpper(name[:1]) + name[1:]
	page.Title = page.T(key + ".title")
	for _, k := range []string{key + ".subtitle", key + ".description"} {
		if v := page.T(k); v != k {
			page.Description = v
			break
		}
	}
	return page
}

// static renders a page that needs nothing from the CMS but settings.
func (s *Site) static(w http.ResponseWriter, r *http.Request, name string) {
	ctx := r.Context()
	settings := s.cms.Settings(ctx, localeFromCtx(ctx))
	s.renderer.Page(w, r, name, s.section(r, settings, name))
}
