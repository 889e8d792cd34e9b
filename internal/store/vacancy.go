package store

import (
	"context"
	"fmt"

	"technogroop/internal/i18n"
	"technogroop/internal/models"
)

// VacancyStore manages open positions.
type VacancyStore struct {
	db DBTX
}

// NewVacancyStore returns a new VacancyStore backed by db.
func NewVacancyStore(db DBTX) *VacancyStore {
	return &VacancyStore{db: db}
}

// Create inserts a vacancy and returns its ID.
func (s *VacancyStore) Create(ctx context.Context, v *models.Vacancy) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO vacancies (location, type, department, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		v.Location, string(v.Type), string(v.Department), v.Active,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create vacancy: %w", err)
	}
	return id, nil
}

// SetLocale upserts the translated title and Markdown description.
func (s *VacancyStore) SetLocale(ctx context.Context, id int64, locale i18n.Locale, title, description string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vacancy_locales (vacancy_id, locale, title, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (vacancy_id, locale)
		DO UPDATE SET title = EXCLUDED.title, description = EXCLUDED.description`,
		id, string(locale), title, description,
	)
	if err != nil {
		return fmt.Errorf("set vacancy locale: %w", err)
	}
	return nil
}

// ListActive returns active vacancies resolved for locale, newest first.
func (s *VacancyStore) ListActive(ctx context.Context, locale i18n.Locale) ([]models.Vacancy, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.location, v.type, v.department, v.active, v.created_at,
			COALESCE(l.title, d.title, ''), COALESCE(l.description, d.description, '')
		FROM vacancies v
		LEFT JOIN vacancy_locales l ON l.vacancy_id = v.id AND l.locale = $1
		LEFT JOIN vacancy_locales d ON d.vacancy_id = v.id AND d.locale = $2
		WHERE v.active
		ORDER BY v.created_at DESC, v.id
		LIMIT $3`,
		string(locale), string(i18n.Default), listLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}
	defer rows.Close()

	var items []models.Vacancy
	for rows.Next() {
		var (
			v         models.Vacancy
			typ, dept string
		)
		if err := rows.Scan(&v.ID, &v.Location, &typ, &dept, &v.Active, &v.CreatedAt, &v.Title, &v.Description); err != nil {
			return nil, fmt.Errorf("scan vacancy: %w", err)
		}
		v.Type = models.EmploymentType(typ)
		v.Department = models.Department(dept)
		items = append(items, v)
	}
	return items, rows.Err()
}

// DeleteAll removes every vacancy.
func (s *VacancyStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM vacancies`)
	if err != nil {
		return 0, fmt.Errorf("delete vacancies: %w", err)
	}
	return res.RowsAffected()
}
