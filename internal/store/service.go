package store

import (
	"context"
	"fmt"

	"technogroop/internal/i18n"
	"technogroop/internal/models"
)

// ServiceStore manages the services collection.
type ServiceStore struct {
	db DBTX
}

// NewServiceStore returns a new ServiceStore backed by db.
func NewServiceStore(db DBTX) *ServiceStore {
	return &ServiceStore{db: db}
}

// Create inserts the locale-independent part of a service and returns its ID.
func (s *ServiceStore) Create(ctx context.Context, svc *models.Service) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO services (icon, image_id, sort_order, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		string(svc.Icon), nullableID(svc.Image), svc.SortOrder, svc.Active,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create service: %w", err)
	}
	return id, nil
}

// SetLocale upserts the translated fields of a service.
func (s *ServiceStore) SetLocale(ctx context.Context, id int64, locale i18n.Locale, title, description string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO service_locales (service_id, locale, title, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (service_id, locale)
		DO UPDATE SET title = EXCLUDED.title, description = EXCLUDED.description`,
		id, string(locale), title, description,
	)
	if err != nil {
		return fmt.Errorf("set service locale: %w", err)
	}
	return nil
}

// listLimit caps collection reads; the site never shows more than this.
const listLimit = 100

// List returns active services ordered by sort order, resolved for locale.
func (s *ServiceStore) List(ctx context.Context, locale i18n.Locale) ([]models.Service, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.icon, s.sort_order,
			COALESCE(l.title, d.title, ''), COALESCE(l.description, d.description, ''),
			`+joinedMediaColumns+`
		FROM services s
		LEFT JOIN service_locales l ON l.service_id = s.id AND l.locale = $1
		LEFT JOIN service_locales d ON d.service_id = s.id AND d.locale = $2
		LEFT JOIN media m ON m.id = s.image_id
		WHERE s.is_active
		ORDER BY s.sort_order, s.id
		LIMIT $3`,
		string(locale), string(i18n.Default), listLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var items []models.Service
	for rows.Next() {
		var (
			svc  models.Service
			icon string
			img  nullMedia
		)
		dest := append([]any{&svc.ID, &icon, &svc.SortOrder, &svc.Title, &svc.Description}, img.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		svc.Icon = models.ServiceIcon(icon)
		svc.Active = true
		svc.Image = img.media()
		items = append(items, svc)
	}
	return items, rows.Err()
}

// DeleteAll removes every service and returns how many were deleted.
func (s *ServiceStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM services`)
	if err != nil {
		return 0, fmt.Errorf("delete services: %w", err)
	}
	return res.RowsAffected()
}
