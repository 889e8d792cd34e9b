package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"technogroop/internal/design"
	"technogroop/internal/models"
)

func TestRoot_NegotiatesLocale(t *testing.T) {
	s, _ := newTestSite(t)
	h := siteRouter(s)

	tests := []struct {
		header string
		want   string
	}{
		{"", "/en"},
		{"pl-PL,pl;q=0.9", "/pl"},
		{"de-DE,de;q=0.9", "/en"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept-Language", tt.header)
			rr := do(t, h, req)
			if rr.Code != http.StatusFound {
				t.Fatalf("status: got %d, want 302", rr.Code)
			}
			if got := rr.Header().Get("Location"); got != tt.want {
				t.Errorf("Location: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocaleRoot_RedirectsToCurrentDesignHome(t *testing.T) {
	s, _ := newTestSite(t)
	h := siteRouter(s)

	rr := do(t, h, httptest.NewRequest(http.MethodGet, "/pl", nil))
	if got := rr.Header().Get("Location"); got != "/pl/home-a" {
		t.Errorf("default design: Location %q, want /pl/home-a", got)
	}

	rr = do(t, h, withDesign(httptest.NewRequest(http.MethodGet, "/en", nil), design.Industrial))
	if got := rr.Header().Get("Location"); got != "/en/home-b" {
		t.Errorf("stored design: Location %q, want /en/home-b", got)
	}
}

func TestHome_RouteWinsOverStoredDesign(t *testing.T) {
	s, fx := newTestSite(t)
	h := siteRouter(s)

	req := withDesign(httptest.NewRequest(http.MethodGet, "/en/home-c", nil), design.Corporate)
	rr := do(t, h, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}

	var stored string
	for _, c := range rr.Result().Cookies() {
		if c.Name == design.CookieName {
			stored = c.Value
		}
	}
	if stored != string(design.Minimal) {
		t.Errorf("design cookie: got %q, want %q", stored, design.Minimal)
	}

	body := rr.Body.String()
	if !strings.Contains(body, "Logistics Center") {
		t.Error("featured project missing from home page")
	}
	if strings.Contains(body, "Residential Complex") {
		t.Error("non-featured project shown on home page")
	}
	if !strings.Contains(body, "Anna Nowak") || strings.Contains(body, "Piet Janssens") {
		t.Error("home page should list featured reviews only")
	}
	if f := fx.projects.lastFilter; !f.FeaturedOnly || f.Limit != featuredOnHome {
		t.Errorf("project filter: got %+v", f)
	}
}

func TestPages_Render(t *testing.T) {
	s, _ := newTestSite(t)
	h := siteRouter(s)

	tests := []struct {
		path string
		want []string
	}{
		{"/en/services", []string{"Photovoltaics", "<title>Our services | Techno Groop</title>"}},
		{"/pl/services", []string{`lang="pl"`, "Techno Groop PL"}},
		{"/en/portfolio", []string{"Logistics Center", "Residential Complex"}},
		{"/en/about", []string{"About Techno Groop"}},
		{"/en/contact", []string{`id="contact-form"`}},
		{"/en/reviews", []string{"Anna Nowak", "Piet Janssens"}},
		{"/en/careers", []string{"Electrician", "<strong>VCA</strong>"}},
		{"/en/portfolio/1", []string{"Logistics Center", "Industrial hall"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := do(t, h, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rr.Code != http.StatusOK {
				t.Fatalf("status: got %d, want 200", rr.Code)
			}
			body := rr.Body.String()
			for _, want := range tt.want {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

func TestPortfolio_CategoryFilter(t *testing.T) {
	s, fx := newTestSite(t)
	h := siteRouter(s)

	rr := do(t, h, httptest.NewRequest(http.MethodGet, "/en/portfolio?category=residential", nil))
	body := rr.Body.String()
	if !strings.Contains(body, "Residential Complex") || strings.Contains(body, "Logistics Center") {
		t.Error("category filter not applied")
	}
	if fx.projects.lastFilter.Category != models.CategoryResidential {
		t.Errorf("filter category: got %q", fx.projects.lastFilter.Category)
	}

	do(t, h, httptest.NewRequest(http.MethodGet, "/en/portfolio?category=spaceports", nil))
	if fx.projects.lastFilter.Category != "" {
		t.Errorf("unknown category should list everything, got %q", fx.projects.lastFilter.Category)
	}
}

func TestNotFound(t *testing.T) {
	s, fx := newTestSite(t)
	h := siteRouter(s)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"unknown project", "/en/portfolio/999", "Page not found"},
		{"non-numeric project id", "/pl/portfolio/abc", "Nie znaleziono strony"},
		{"unknown page", "/pl/pricing", "Nie znaleziono strony"},
		{"unknown locale", "/de/services", "Page not found"},
		{"unknown top-level path", "/favicon.ico", "Page not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rr.Code != http.StatusNotFound {
				t.Fatalf("status: got %d, want 404", rr.Code)
			}
			if !strings.Contains(rr.Body.String(), tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
		})
	}

	t.Run("cms down is a 404 not a 500", func(t *testing.T) {
		fx.projects.err = errDown
		defer func() { fx.projects.err = nil }()
		rr := do(t, h, httptest.NewRequest(http.MethodGet, "/en/portfolio/1", nil))
		if rr.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rr.Code)
		}
	})
}

func TestPages_CMSDownStillRender(t *testing.T) {
	s, fx := newTestSite(t)
	fx.projects.err = errDown
	h := siteRouter(s)

	for _, path := range []string{"/en/home-a", "/en/portfolio"} {
		rr := do(t, h, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Errorf("%s: status %d, want 200", path, rr.Code)
		}
	}
}

func postDesign(t *testing.T, h http.Handler, path string, form url.Values, stored design.Variant) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if stored != "" {
		withDesign(req, stored)
	}
	return do(t, h, req)
}

func TestSetDesign(t *testing.T) {
	s, _ := newTestSite(t)
	h := siteRouter(s)

	tests := []struct {
		name       string
		stored     design.Variant
		variant    string
		from       string
		wantTarget string
		wantCookie string
	}{
		{"home page follows the design", design.Corporate, "minimal", "/pl/home-a", "/pl/home-c", "minimal"},
		{"other pages stay put", "", "industrial", "/pl/services", "/pl/services", "industrial"},
		{"unknown variant is ignored", design.Industrial, "neon", "/pl/home-b", "/pl/home-b", ""},
		{"foreign redirect is refused", "", "minimal", "//evil.example/x", "/pl/home-c", "minimal"},
		{"missing from goes home", design.Minimal, "", "", "/pl/home-c", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{"variant": {tt.variant}, "from": {tt.from}}
			rr := postDesign(t, h, "/pl/design", form, tt.stored)

			if rr.Code != http.StatusSeeOther {
				t.Fatalf("status: got %d, want 303", rr.Code)
			}
			if got := rr.Header().Get("Location"); got != tt.wantTarget {
				t.Errorf("Location: got %q, want %q", got, tt.wantTarget)
			}
			var cookie string
			for _, c := range rr.Result().Cookies() {
				if c.Name == design.CookieName {
					cookie = c.Value
				}
			}
			if cookie != tt.wantCookie {
				t.Errorf("cookie: got %q, want %q", cookie, tt.wantCookie)
			}
		})
	}
}

func TestIsLocalPath(t *testing.T) {
	tests := map[string]bool{
		"/en/services":      true,
		"/":                 true,
		"":                  false,
		"//evil.example":    false,
		"/\\evil.example":   false,
		"https://evil.test": false,
		"en/services":       false,
	}
	for in, want := range tests {
		if got := isLocalPath(in); got != want {
			t.Errorf("isLocalPath(%q) = %v, want %v", in, got, want)
		}
	}
}
