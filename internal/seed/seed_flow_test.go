package seed

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"slices"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"technogroop/internal/database"
	"technogroop/internal/i18n"
	"technogroop/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens the test database and runs migrations, skipping the test
// when PostgreSQL is unavailable. Seed commits, so it must not point at
// real content.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "technogroop")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "technogroop")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

func writeFile(t *testing.T, dir, rel string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRun_PopulatesAllCollections(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	dir := t.TempDir()
	writeFile(t, dir, "projects/antwerp-prison/switchboard.png")
	writeFile(t, dir, "projects/antwerp-prison/control-panel.png")

	results, err := NewRunner(db, NewImporter(nil, dir), nil, Baseline()).Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, want := range []string{
		"Created service: Residential Electrical",
		"Created project: Antwerp Prison - Government Project (with image)",
		"Updated global settings (EN + PL)",
	} {
		if !slices.Contains(results, want) {
			t.Errorf("results missing %q:\n%v", want, results)
		}
	}

	services, err := store.NewServiceStore(db).List(ctx, i18n.PL)
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if len(services) != 5 || services[0].Title != "Elektroinstalacje mieszkaniowe" {
		t.Errorf("services = %d, first = %+v", len(services), services)
	}

	projects, err := store.NewProjectStore(db).List(ctx, i18n.PL, store.ProjectFilter{})
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 7 {
		t.Fatalf("projects = %d, want 7", len(projects))
	}
	prison := projects[6]
	if prison.Location != "Antwerpia, Belgia" {
		t.Errorf("pl location = %q", prison.Location)
	}
	if len(prison.Gallery) != 2 {
		t.Errorf("gallery = %d images, want the 2 present on disk", len(prison.Gallery))
	}
	if prison.Image == nil || prison.Image.URL != "/media/projects/antwerp-prison/switchboard.png" {
		t.Errorf("cover = %+v", prison.Image)
	}

	settings, err := store.NewSiteSettingStore(db).All(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if got := settings.Get("title.pl", ""); got != "Techno Groop – Profesjonalne usługi elektryczne" {
		t.Errorf("title.pl = %q", got)
	}
}

func TestRun_ReplacesAndSkipsMissingCover(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	first, err := NewRunner(db, NewImporter(nil, ""), nil, Baseline()).Run(ctx)
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if !slices.Contains(first, "⚠️ Skipped project (no image): Antwerp Prison - Government Project") {
		t.Errorf("expected skipped prison project, got %v", first)
	}

	second, err := NewRunner(db, NewImporter(nil, ""), nil, Baseline()).Run(ctx)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if second[0] != "Deleted 6 existing projects" || second[1] != "Deleted 5 existing services" {
		t.Errorf("second run log starts %v", second[:2])
	}

	refs, err := store.NewProjectStore(db).ListRefs(ctx)
	if err != nil {
		t.Fatalf("refs: %v", err)
	}
	if len(refs) != 6 {
		t.Errorf("projects after reseed = %d, want 6", len(refs))
	}
}

func TestRun_FailureLeavesDataUnchanged(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if _, err := NewRunner(db, NewImporter(nil, ""), nil, Baseline()).Run(ctx); err != nil {
		t.Fatalf("baseline Run: %v", err)
	}

	bad := Baseline()
	bad.Projects[0].Year = 1999
	if _, err := NewRunner(db, NewImporter(nil, ""), nil, bad).Run(ctx); err == nil {
		t.Fatal("expected error for out-of-range year")
	}

	refs, err := store.NewProjectStore(db).ListRefs(ctx)
	if err != nil {
		t.Fatalf("refs: %v", err)
	}
	if len(refs) != 6 {
		t.Errorf("projects after failed seed = %d, want 6", len(refs))
	}
}
