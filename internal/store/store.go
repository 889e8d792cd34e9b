// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the PostgreSQL-backed CMS collections. Localized
// fields live in <entity>_locales tables; reads join the requested locale
// and the default one and prefer the former.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"technogroop/internal/models"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so every store can run
// inside a caller-owned transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// joinedMediaColumns selects a media row joined under alias m.
const joinedMediaColumns = `m.id, m.filename, m.content_type, m.size_bytes,
	m.bucket, m.s3_key, m.url, m.alt_text, m.created_at`

// nullMedia receives a LEFT JOINed media row, which may be all NULL.
type nullMedia struct {
	ID          uuid.NullUUID
	Filename    sql.NullString
	ContentType sql.NullString
	SizeBytes   sql.NullInt64
	Bucket      sql.NullString
	S3Key       sql.NullString
	URL         sql.NullString
	AltText     sql.NullString
	CreatedAt   sql.NullTime
}

func (n *nullMedia) dest() []any {
	return []any{
		&n.ID, &n.Filename, &n.ContentType, &n.SizeBytes,
		&n.Bucket, &n.S3Key, &n.URL, &n.AltText, &n.CreatedAt,
	}
}

func (n *nullMedia) media() *models.Media {
	if !n.ID.Valid {
		return nil
	}
	return &models.Media{
		ID:          n.ID.UUID,
		Filename:    n.Filename.String,
		ContentType: n.ContentType.String,
		SizeBytes:   n.SizeBytes.Int64,
		Bucket:      n.Bucket.String,
		S3Key:       n.S3Key.String,
		URL:         n.URL.String,
		AltText:     n.AltText.String,
		CreatedAt:   n.CreatedAt.Time,
	}
}

// nullableID converts an optional media reference into a query argument.
func nullableID(m *models.Media) uuid.NullUUID {
	if m == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: m.ID, Valid: true}
}
