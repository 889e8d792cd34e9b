package store

import (
	"context"
	"fmt"

	"technogroop/internal/i18n"
	"technogroop/internal/models"
)

// ReviewStore manages client testimonials.
type ReviewStore struct {
	db DBTX
}

// NewReviewStore returns a new ReviewStore backed by db.
func NewReviewStore(db DBTX) *ReviewStore {
	return &ReviewStore{db: db}
}

// Create inserts a review and returns its ID. Content is set per locale
// with SetLocale.
func (s *ReviewStore) Create(ctx context.Context, r *models.Review) (int64, error) {
	if r.Rating < 1 || r.Rating > 5 {
		return 0, fmt.Errorf("create review: rating %d out of range", r.Rating)
	}
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO reviews (author, company, role, rating, featured)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		r.Author, r.Company, r.Role, r.Rating, r.Featured,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create review: %w", err)
	}
	return id, nil
}

// SetLocale upserts the translated review text.
func (s *ReviewStore) SetLocale(ctx context.Context, id int64, locale i18n.Locale, content string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO review_locales (review_id, locale, content)
		VALUES ($1, $2, $3)
		ON CONFLICT (review_id, locale) DO UPDATE SET content = EXCLUDED.content`,
		id, string(locale), content,
	)
	if err != nil {
		return fmt.Errorf("set review locale: %w", err)
	}
	return nil
}

// List returns reviews resolved for locale, featured first.
func (s *ReviewStore) List(ctx context.Context, locale i18n.Locale, featuredOnly bool) ([]models.Review, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.author, r.company, r.role, r.rating, r.featured, r.created_at,
			COALESCE(l.content, d.content, '')
		FROM reviews r
		LEFT JOIN review_locales l ON l.review_id = r.id AND l.locale = $1
		LEFT JOIN review_locales d ON d.review_id = r.id AND d.locale = $2
		WHERE (NOT $3::boolean OR r.featured)
		ORDER BY r.featured DESC, r.created_at DESC, r.id
		LIMIT $4`,
		string(locale), string(i18n.Default), featuredOnly, listLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var items []models.Review
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.Author, &r.Company, &r.Role, &r.Rating, &r.Featured, &r.CreatedAt, &r.Content); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

// DeleteAll removes every review.
func (s *ReviewStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reviews`)
	if err != nil {
		return 0, fmt.Errorf("delete reviews: %w", err)
	}
	return res.RowsAffected()
}
