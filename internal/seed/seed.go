// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seed replaces the CMS content with the baseline data set. All
// database changes happen in one transaction; images are imported before
// it starts so a slow download cannot hold the transaction open.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"technogroop/internal/cache"
	"technogroop/internal/i18n"
	"technogroop/internal/models"
	"technogroop/internal/store"
)

const (
	lockKey = "technogroop:seed:lock"
	lockTTL = 5 * time.Minute
)

// ErrInProgress is returned when another seed run holds the lock.
var ErrInProgress = errors.New("seed already in progress")

// Runner executes the seed operation.
type Runner struct {
	db       *sql.DB
	importer *Importer
	valkey   *redis.Client
	data     Data
}

// NewRunner creates a Runner for data. valkey may be nil, in which case
// concurrent runs are not excluded.
func NewRunner(db *sql.DB, importer *Importer, valkey *redis.Client, data Data) *Runner {
	return &Runner{db: db, importer: importer, valkey: valkey, data: data}
}

type importedProject struct {
	seed    ProjectSeed
	cover   *models.Media
	gallery []models.Media
}

// Run replaces all CMS content and returns a human-readable log of what
// was done. On error nothing in the database has changed.
func (r *Runner) Run(ctx context.Context) ([]string, error) {
	if r.valkey != nil {
		lock, err := cache.Acquire(ctx, r.valkey, lockKey, lockTTL)
		if errors.Is(err, cache.ErrLocked) {
			return nil, ErrInProgress
		}
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
				slog.Warn("seed lock release failed", "error", err)
			}
		}()
	}

	var uploaded []models.Media
	serviceImages := make([]*models.Media, len(r.data.Services))
	for i, s := range r.data.Services {
		m, up, err := r.importer.Import(ctx, s.Image, path.Base(strings.SplitN(s.Image, "?", 2)[0])+".jpg", s.Title.EN)
		if err != nil {
			slog.Warn("service image import failed", "service", s.Title.EN, "error", err)
			continue
		}
		if up {
			uploaded = append(uploaded, m)
		}
		serviceImages[i] = &m
	}

	projects := make([]importedProject, len(r.data.Projects))
	for i, p := range r.data.Projects {
		projects[i].seed = p
		cover, up, err := r.importer.Import(ctx, p.Image, p.ImageName, p.Title.EN)
		if err != nil {
			slog.Warn("project cover import failed", "project", p.Title.EN, "error", err)
			continue
		}
		if up {
			uploaded = append(uploaded, cover)
		}
		projects[i].cover = &cover

		base := strings.TrimSuffix(p.ImageName, path.Ext(p.ImageName))
		for j, src := range p.Gallery {
			name := fmt.Sprintf("gallery-%s-%d%s", base, j+1, path.Ext(src))
			alt := fmt.Sprintf("%s - Gallery %d", p.Title.EN, j+1)
			m, up, err := r.importer.Import(ctx, src, name, alt)
			if err != nil {
				slog.Warn("gallery image import failed", "project", p.Title.EN, "src", src, "error", err)
				continue
			}
			if up {
				uploaded = append(uploaded, m)
			}
			projects[i].gallery = append(projects[i].gallery, m)
		}
	}

	var results []string
	var removed []models.Media
	err := store.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		results, removed, err = r.replace(ctx, tx, serviceImages, projects)
		return err
	})
	if err != nil {
		if derr := r.importer.Discard(context.WithoutCancel(ctx), uploaded); derr != nil {
			slog.Warn("discard uploaded seed media failed", "error", derr)
		}
		return nil, fmt.Errorf("seed: %w", err)
	}

	if err := r.importer.Discard(ctx, removed); err != nil {
		slog.Warn("remove replaced media objects failed", "error", err)
	}

	slog.Info("seed completed", "steps", len(results))
	return results, nil
}

// replace runs inside the seed transaction. It returns the result log and
// the media rows that were deleted.
func (r *Runner) replace(ctx context.Context, tx *sql.Tx, serviceImages []*models.Media, projects []importedProject) ([]string, []models.Media, error) {
	mediaStore := store.NewMediaStore(tx)
	serviceStore := store.NewServiceStore(tx)
	projectStore := store.NewProjectStore(tx)
	reviewStore := store.NewReviewStore(tx)
	vacancyStore := store.NewVacancyStore(tx)
	settingStore := store.NewSiteSettingStore(tx)

	var results []string
	logf := func(format string, args ...any) {
		results = append(results, fmt.Sprintf(format, args...))
	}

	// Projects reference media, so they go first and media goes last.
	n, err := projectStore.DeleteAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	logf("Deleted %d existing projects", n)

	if n, err = serviceStore.DeleteAll(ctx); err != nil {
		return nil, nil, err
	}
	logf("Deleted %d existing services", n)

	if n, err = reviewStore.DeleteAll(ctx); err != nil {
		return nil, nil, err
	}
	logf("Deleted %d existing reviews", n)

	if n, err = vacancyStore.DeleteAll(ctx); err != nil {
		return nil, nil, err
	}
	logf("Deleted %d existing vacancies", n)

	removed, err := mediaStore.DeleteAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	logf("Deleted %d existing media", len(removed))

	for i, s := range r.data.Services {
		svc := &models.Service{Icon: s.Icon, SortOrder: s.Order, Active: true}
		if img := serviceImages[i]; img != nil {
			if svc.Image, err = mediaStore.Create(ctx, img); err != nil {
				return nil, nil, err
			}
		}
		id, err := serviceStore.Create(ctx, svc)
		if err != nil {
			return nil, nil, err
		}
		if err := serviceStore.SetLocale(ctx, id, i18n.EN, s.Title.EN, s.Description.EN); err != nil {
			return nil, nil, err
		}
		if err := serviceStore.SetLocale(ctx, id, i18n.PL, s.Title.PL, s.Description.PL); err != nil {
			return nil, nil, err
		}
		logf("Created service: %s", s.Title.EN)
	}

	for _, ip := range projects {
		p := ip.seed
		if ip.cover == nil {
			logf("⚠️ Skipped project (no image): %s", p.Title.EN)
			continue
		}
		cover, err := mediaStore.Create(ctx, ip.cover)
		if err != nil {
			return nil, nil, err
		}
		gallery := make([]models.Media, 0, len(ip.gallery))
		for j := range ip.gallery {
			m, err := mediaStore.Create(ctx, &ip.gallery[j])
			if err != nil {
				return nil, nil, err
			}
			gallery = append(gallery, *m)
		}

		id, err := projectStore.Create(ctx, &models.Project{
			Slug:      p.Slug,
			Country:   p.Country,
			Category:  p.Category,
			Year:      p.Year,
			Featured:  p.Featured,
			SortOrder: p.Order,
			Image:     cover,
		})
		if err != nil {
			return nil, nil, err
		}
		en := store.ProjectText{Title: p.Title.EN, Description: p.Description.EN, Location: p.Location.EN}
		if err := projectStore.SetLocale(ctx, id, i18n.EN, en); err != nil {
			return nil, nil, err
		}
		pl := store.ProjectText{Title: p.Title.PL, Description: p.Description.PL, Location: p.Location.PL}
		if err := projectStore.SetLocale(ctx, id, i18n.PL, pl); err != nil {
			return nil, nil, err
		}
		if err := projectStore.SetGallery(ctx, id, gallery); err != nil {
			return nil, nil, err
		}
		logf("Created project: %s (with image)", p.Title.EN)
	}

	for _, rv := range r.data.Reviews {
		id, err := reviewStore.Create(ctx, &models.Review{
			Author:   rv.Author,
			Company:  rv.Company,
			Role:     rv.Role,
			Rating:   rv.Rating,
			Featured: rv.Featured,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := reviewStore.SetLocale(ctx, id, i18n.EN, rv.Content.EN); err != nil {
			return nil, nil, err
		}
		if err := reviewStore.SetLocale(ctx, id, i18n.PL, rv.Content.PL); err != nil {
			return nil, nil, err
		}
		logf("Created review: %s", rv.Author)
	}

	for _, v := range r.data.Vacancies {
		id, err := vacancyStore.Create(ctx, &models.Vacancy{
			Location:   v.Location,
			Type:       v.Type,
			Department: v.Department,
			Active:     true,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := vacancyStore.SetLocale(ctx, id, i18n.EN, v.Title.EN, v.Description.EN); err != nil {
			return nil, nil, err
		}
		if err := vacancyStore.SetLocale(ctx, id, i18n.PL, v.Title.PL, v.Description.PL); err != nil {
			return nil, nil, err
		}
		logf("Created vacancy: %s", v.Title.EN)
	}

	if err := settingStore.SetMany(ctx, r.data.Settings); err != nil {
		return nil, nil, err
	}
	logf("Updated global settings (EN + PL)")

	return results, removed, nil
}
