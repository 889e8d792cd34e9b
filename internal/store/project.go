// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"technogroop/internal/i18n"
	"technogroop/internal/models"
)

// ProjectStore manages portfolio projects and their galleries.
type ProjectStore struct {
	db DBTX
}

// NewProjectStore returns a new ProjectStore backed by db.
func NewProjectStore(db DBTX) *ProjectStore {
	return &ProjectStore{db: db}
}

// ProjectFilter narrows List. The zero value lists everything.
type ProjectFilter struct {
	FeaturedOnly bool
	Category     models.ProjectCategory
	Limit        int
}

const projectSelect = `
	SELECT p.id, p.slug, COALESCE(l.location, d.location, ''), p.country, p.category, p.year,
		p.featured, p.sort_order, p.created_at, p.updated_at,
		COALESCE(l.title, d.title, ''), COALESCE(l.description, d.description, ''),
		` + joinedMediaColumns + `
	FROM projects p
	LEFT JOIN project_locales l ON l.project_id = p.id AND l.locale = $1
	LEFT JOIN project_locales d ON d.project_id = p.id AND d.locale = $2
	LEFT JOIN media m ON m.id = p.image_id`

func scanProject(scanner interface{ Scan(...any) error }) (*models.Project, error) {
	var (
		p                 models.Project
		country, category string
		img               nullMedia
	)
	dest := append([]any{
		&p.ID, &p.Slug, &p.Location, &country, &category, &p.Year,
		&p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
		&p.Title, &p.Description,
	}, img.dest()...)
	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}
	p.Country = models.Country(country)
	p.Category = models.ProjectCategory(category)
	p.Image = img.media()
	return &p, nil
}

// Create inserts the locale-independent part of a project and returns its ID.
func (s *ProjectStore) Create(ctx context.Context, p *models.Project) (int64, error) {
	if p.Year < models.MinProjectYear || p.Year > models.MaxProjectYear {
		return 0, fmt.Errorf("create project %s: year %d out of range", p.Slug, p.Year)
	}
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO projects (slug, country, category, year, image_id, featured, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		p.Slug, string(p.Country), string(p.Category), p.Year,
		nullableID(p.Image), p.Featured, p.SortOrder,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create project %s: %w", p.Slug, err)
	}
	return id, nil
}

// ProjectText holds the translated fields of a project.
type ProjectText struct {
	Title       string
	Description string
	Location    string
}

// SetLocale upserts the translated fields of a project.
func (s *ProjectStore) SetLocale(ctx context.Context, id int64, locale i18n.Locale, text ProjectText) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO project_locales (project_id, locale, title, description, location)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (project_id, locale)
		DO UPDATE SET title = EXCLUDED.title, description = EXCLUDED.description,
			location = EXCLUDED.location`,
		id, string(locale), text.Title, text.Description, text.Location,
	)
	if err != nil {
		return fmt.Errorf("set project locale: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `UPDATE projects SET updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch project: %w", err)
	}
	return nil
}

// SetGallery replaces the gallery of a project with images, in order.
func (s *ProjectStore) SetGallery(ctx context.Context, id int64, images []models.Media) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM project_gallery WHERE project_id = $1`, id); err != nil {
		return fmt.Errorf("clear gallery: %w", err)
	}
	for i, img := range images {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO project_gallery (project_id, position, media_id)
			VALUES ($1, $2, $3)`,
			id, i, img.ID,
		)
		if err != nil {
			return fmt.Errorf("insert gallery item %d: %w", i, err)
		}
	}
	return nil
}

// List returns projects matching filter, resolved for locale, ordered by
// sort order then newest year first. Galleries are loaded in one query.
func (s *ProjectStore) List(ctx context.Context, locale i18n.Locale, filter ProjectFilter) ([]models.Project, error) {
	limit := filter.Limit
	if limit <= 0 || limit > listLimit {
		limit = listLimit
	}
	rows, err := s.db.QueryContext(ctx, projectSelect+`
		WHERE (NOT $3::boolean OR p.featured)
			AND ($4::text = '' OR p.category = $4::text)
		ORDER BY p.sort_order, p.year DESC, p.id
		LIMIT $5`,
		string(locale), string(i18n.Default), filter.FeaturedOnly, string(filter.Category), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var (
		items []models.Project
		ids   []int64
	)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, *p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	galleries, err := s.galleries(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Gallery = galleries[items[i].ID]
	}
	return items, nil
}

// FindByID retrieves a single project with its gallery. Returns (nil, nil)
// when no project has that ID.
func (s *ProjectStore) FindByID(ctx context.Context, id int64, locale i18n.Locale) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx, projectSelect+` WHERE p.id = $3`,
		string(locale), string(i18n.Default), id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}

	galleries, err := s.galleries(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	p.Gallery = galleries[id]
	return p, nil
}

// ListRefs returns the ID and last modification time of every project.
func (s *ProjectStore) ListRefs(ctx context.Context) ([]models.ProjectRef, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, updated_at FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list project refs: %w", err)
	}
	defer rows.Close()

	var refs []models.ProjectRef
	for rows.Next() {
		var r models.ProjectRef
		if err := rows.Scan(&r.ID, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project ref: %w", err)
		}
		refs = append(refs, r)
	}
	return refs, rows.Err()
}

// DeleteAll removes every project, cascading to locales and galleries.
func (s *ProjectStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects`)
	if err != nil {
		return 0, fmt.Errorf("delete projects: %w", err)
	}
	return res.RowsAffected()
}

func (s *ProjectStore) galleries(ctx context.Context, ids []int64) (map[int64][]models.Media, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.project_id, `+joinedMediaColumns+`
		FROM project_gallery g
		JOIN media m ON m.id = g.media_id
		WHERE g.project_id = ANY($1)
		ORDER BY g.project_id, g.position`, ids)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]models.Media)
	for rows.Next() {
		var (
			projectID int64
			img       nullMedia
		)
		if err := rows.Scan(append([]any{&projectID}, img.dest()...)...); err != nil {
			return nil, fmt.Errorf("scan gallery: %w", err)
		}
		if m := img.media(); m != nil {
			out[projectID] = append(out[projectID], *m)
		}
	}
	return out, rows.Err()
}
