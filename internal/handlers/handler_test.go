// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared fixtures for handler tests. The CMS is
// backed by in-memory readers so pages render without PostgreSQL.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"technogroop/internal/cms"
	"technogroop/internal/design"
	"technogroop/internal/i18n"
	"technogroop/internal/models"
	"technogroop/internal/render"
	"technogroop/internal/store"
)

var errDown = errors.New("connection refused")

type fakeServices struct{ items []models.Service }

func (f *fakeServices) List(context.Context, i18n.Locale) ([]models.Service, error) {
	return f.items, nil
}

type fakeProjects struct {
	items      []models.Project
	err        error
	lastFilter store.ProjectFilter
}

func (f *fakeProjects) List(_ context.Context, _ i18n.Locale, filter store.ProjectFilter) ([]models.Project, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Project
	for _, p := range f.items {
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjects) FindByID(_ context.Context, id int64, _ i18n.Locale) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.items {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProjects) ListRefs(context.Context) ([]models.ProjectRef, error) {
	if f.err != nil {
		return nil, f.err
	}
	refs := make([]models.ProjectRef, 0, len(f.items))
	for _, p := range f.items {
		refs = append(refs, models.ProjectRef{ID: p.ID, UpdatedAt: p.UpdatedAt})
	}
	return refs, nil
}

type fakeSettings struct{}

func (fakeSettings) All(context.Context) (models.SiteSettings, error) {
	return models.SiteSettings{"title.en": "Techno Groop", "title.pl": "Techno Groop PL"}, nil
}

type fakeReviews struct{ items []models.Review }

func (f *fakeReviews) List(_ context.Context, _ i18n.Locale, featuredOnly bool) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.items {
		if featuredOnly && !r.Featured {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeVacancies struct{ items []models.Vacancy }

func (f *fakeVacancies) ListActive(context.Context, i18n.Locale) ([]models.Vacancy, error) {
	return f.items, nil
}

// fixtures is the content every test site starts with.
type fixtures struct {
	projects *fakeProjects
}

func newTestCMS() (*cms.Client, fixtures) {
	projects := &fakeProjects{items: []models.Project{
		{ID: 1, Title: "Logistics Center", Description: "Industrial hall", Category: models.CategoryIndustrial, Featured: true, Year: 2024, UpdatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Residential Complex", Description: "Apartments", Category: models.CategoryResidential, Year: 2023},
	}}
	services := &fakeServices{items: []models.Service{{ID: 1, Title: "Photovoltaics", Description: "Solar", Icon: models.IconSun, Active: true}}}
	reviews := &fakeReviews{items: []models.Review{
		{ID: 1, Author: "Anna Nowak", Content: "Great work", Rating: 5, Featured: true},
		{ID: 2, Author: "Piet Janssens", Content: "On schedule", Rating: 4},
	}}
	vacancies := &fakeVacancies{items: []models.Vacancy{{ID: 1, Title: "Electrician", Description: "**VCA** required", Active: true}}}
	return cms.New(services, projects, fakeSettings{}, reviews, vacancies), fixtures{projects: projects}
}

func newTestSite(t *testing.T) (*Site, fixtures) {
	t.Helper()
	tr, err := i18n.New()
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}
	rn, err := render.New(tr, "https://technogroop.com", "")
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	client, fx := newTestCMS()
	return NewSite(client, rn), fx
}

// siteRouter mounts the site the way the server does.
func siteRouter(s *Site) http.Handler {
	r := chi.NewRouter()
	r.Use(design.NewStore(false).Middleware)
	r.NotFound(s.NotFound)
	r.Get("/", s.Root)
	r.Route("/{locale}", s.Routes)
	return r
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func withDesign(req *http.Request, v design.Variant) *http.Request {
	req.AddCookie(&http.Cookie{Name: design.CookieName, Value: string(v)})
	return req
}
