// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cms is the read-side client the page handlers use to fetch CMS
// content. Failures never reach the caller: every method logs the error
// and returns an empty collection, nil, or default settings, so a page
// always renders with whatever content is available.
package cms

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"technogroop/internal/i18n"
	"technogroop/internal/models"
	"technogroop/internal/store"
)

// ProjectFilter narrows project listings.
type ProjectFilter = store.ProjectFilter

// ServiceReader lists services.
type ServiceReader interface {
	List(ctx context.Context, locale i18n.Locale) ([]models.Service, error)
}

// ProjectReader lists and finds projects.
type ProjectReader interface {
	List(ctx context.Context, locale i18n.Locale, filter store.ProjectFilter) ([]models.Project, error)
	FindByID(ctx context.Context, id int64, locale i18n.Locale) (*models.Project, error)
	ListRefs(ctx context.Context) ([]models.ProjectRef, error)
}

// SettingsReader returns stored site settings.
type SettingsReader interface {
	All(ctx context.Context) (models.SiteSettings, error)
}

// ReviewReader lists reviews.
type ReviewReader interface {
	List(ctx context.Context, locale i18n.Locale, featuredOnly bool) ([]models.Review, error)
}

// VacancyReader lists open positions.
type VacancyReader interface {
	ListActive(ctx context.Context, locale i18n.Locale) ([]models.Vacancy, error)
}

// Client reads CMS content for page assemblies.
type Client struct {
	services  ServiceReader
	projects  ProjectReader
	settings  SettingsReader
	reviews   ReviewReader
	vacancies VacancyReader
}

// New creates a Client over the given readers.
func New(services ServiceReader, projects ProjectReader, settings SettingsReader, reviews ReviewReader, vacancies VacancyReader) *Client {
	return &Client{
		services:  services,
		projects:  projects,
		settings:  settings,
		reviews:   reviews,
		vacancies: vacancies,
	}
}

// Services returns active services for locale, or an empty slice.
func (c *Client) Services(ctx context.Context, locale i18n.Locale) []models.Service {
	items, err := c.services.List(ctx, locale)
	if err != nil {
		slog.Error("cms fetch services failed", "error", err, "locale", locale)
		return []models.Service{}
	}
	if items == nil {
		return []models.Service{}
	}
	return items
}

// Projects returns projects matching filter for locale, or an empty slice.
func (c *Client) Projects(ctx context.Context, locale i18n.Locale, filter ProjectFilter) []models.Project {
	items, err := c.projects.List(ctx, locale, filter)
	if err != nil {
		slog.Error("cms fetch projects failed", "error", err, "locale", locale)
		return []models.Project{}
	}
	if items == nil {
		return []models.Project{}
	}
	return items
}

// Project returns the project with id, or nil when it does not exist or
// cannot be read.
func (c *Client) Project(ctx context.Context, id int64, locale i18n.Locale) *models.Project {
	p, err := c.projects.FindByID(ctx, id, locale)
	if err != nil {
		slog.Error("cms fetch project failed", "error", err, "id", id, "locale", locale)
		return nil
	}
	return p
}

// ProjectRefs returns every project's ID and modification time, or nil.
func (c *Client) ProjectRefs(ctx context.Context) []models.ProjectRef {
	refs, err := c.projects.ListRefs(ctx)
	if err != nil {
		slog.Error("cms fetch project refs failed", "error", err)
		return nil
	}
	return refs
}

// Settings returns site settings for locale. Missing values and read
// failures yield the defaults.
func (c *Client) Settings(ctx context.Context, locale i18n.Locale) models.Settings {
	raw, err := c.settings.All(ctx)
	if err != nil {
		slog.Error("cms fetch settings failed", "error", err)
		raw = models.SiteSettings{}
	}
	return models.ResolveSettings(raw, string(locale), string(i18n.Default))
}

// Reviews returns reviews for locale, or an empty slice.
func (c *Client) Reviews(ctx context.Context, locale i18n.Locale, featuredOnly bool) []models.Review {
	items, err := c.reviews.List(ctx, locale, featuredOnly)
	if err != nil {
		slog.Error("cms fetch reviews failed", "error", err, "locale", locale)
		return []models.Review{}
	}
	if items == nil {
		return []models.Review{}
	}
	return items
}

// Vacancies returns active vacancies for locale, or an empty slice.
func (c *Client) Vacancies(ctx context.Context, locale i18n.Locale) []models.Vacancy {
	items, err := c.vacancies.ListActive(ctx, locale)
	if err != nil {
		slog.Error("cms fetch vacancies failed", "error", err, "locale", locale)
		return []models.Vacancy{}
	}
	if items == nil {
		return []models.Vacancy{}
	}
	return items
}

// Needs selects the collections a page loads alongside settings.
type Needs struct {
	Services        bool
	Projects        *ProjectFilter
	Reviews         bool
	FeaturedReviews bool
	Vacancies       bool
}

// Content is everything a page assembly renders from the CMS.
type Content struct {
	Settings  models.Settings
	Services  []models.Service
	Projects  []models.Project
	Reviews   []models.Review
	Vacancies []models.Vacancy
}

// Load fetches settings and the collections in needs concurrently. It
// returns once every read has completed or fallen back.
func (c *Client) Load(ctx context.Context, locale i18n.Locale, needs Needs) Content {
	var out Content
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out.Settings = c.Settings(ctx, locale)
		return nil
	})
	if needs.Services {
		g.Go(func() error {
			out.Services = c.Services(ctx, locale)
			return nil
		})
	}
	if needs.Projects != nil {
		filter := *needs.Projects
		g.Go(func() error {
			out.Projects = c.Projects(ctx, locale, filter)
			return nil
		})
	}
	if needs.Reviews || needs.FeaturedReviews {
		g.Go(func() error {
			out.Reviews = c.Reviews(ctx, locale, needs.FeaturedReviews)
			return nil
		})
	}
	if needs.Vacancies {
		g.Go(func() error {
			out.Vacancies = c.Vacancies(ctx, locale)
			return nil
		})
	}

	// Every goroutine degrades instead of failing, so Wait never errors.
	_ = g.Wait()
	return out
}
