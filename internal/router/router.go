// Package router sets up all HTTP routes and middleware chains for the
// site. Pages live under /{locale}; JSON endpoints under /api are rate
// limited per client.
package router

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"technogroop/internal/design"
	"technogroop/internal/handlers"
	"technogroop/internal/middleware"
	"technogroop/internal/seed"
	"technogroop/web"
)

// Deps holds everything the router wires together.
type Deps struct {
	Site    *handlers.Site
	API     *handlers.API
	Sitemap *handlers.Sitemap
	Design  *design.Store
	Limiter *middleware.RateLimiter

	// MediaDir serves locally stored media at /media when non-empty.
	MediaDir string
	// HSTS enables Strict-Transport-Security.
	HSTS bool
}

// New creates the chi router with all middleware and routes.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders(d.HSTS))
	r.Use(d.Design.Middleware)

	r.NotFound(d.Site.NotFound)

	r.Get("/health", healthHandler)
	r.Get("/sitemap.xml", d.Sitemap.XML)
	r.Get("/robots.txt", d.Sitemap.Robots)

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("router: embedded static assets missing: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", cacheControl(noListing(http.FileServerFS(static)))))

	if d.MediaDir != "" {
		r.Handle(seed.LocalMediaPrefix+"/*", http.StripPrefix(seed.LocalMediaPrefix, cacheControl(noListing(http.FileServer(http.Dir(d.MediaDir))))))
	}

	r.Route("/api", func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(d.Limiter.Middleware)
		}
		r.Post("/contact", d.API.Contact)
		r.Get("/seed", d.API.SeedUsage)
		r.Post("/seed", d.API.Seed)
	})

	r.Get("/", d.Site.Root)
	r.Route("/{locale}", d.Site.Routes)

	return r
}

// noListing hides directory indexes behind a 404.
func noListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		next.ServeHTTP(w, r)
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
