package handlers

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"technogroop/internal/cms"
	"technogroop/internal/design"
	"technogroop/internal/i18n"
)

// staticPage is a route listed in the sitemap for every locale.
type staticPage struct {
	path       string
	priority   float64
	changeFreq string
}

// staticPages returns the fixed routes, themed homes included.
func staticPages() []staticPage {
	pages := []staticPage{{"", 1.0, "weekly"}}
	for _, m := range design.All() {
		pages = append(pages, staticPage{"/" + m.HomeRoute, 1.0, "weekly"})
	}
	return append(pages,
		staticPage{"/services", 0.9, "weekly"},
		staticPage{"/portfolio", 0.9, "weekly"},
		staticPage{"/about", 0.8, "monthly"},
		staticPage{"/contact", 0.8, "monthly"},
		staticPage{"/reviews", 0.7, "monthly"},
		staticPage{"/careers", 0.7, "monthly"},
	)
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod"`
	ChangeFreq string      `xml:"changefreq"`
	Priority   string      `xml:"priority"`
	Alternates []alternate `xml:"xhtml:link"`
}

type alternate struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Sitemap serves sitemap.xml and robots.txt.
type Sitemap struct {
	cms     *cms.Client
	siteURL string
	now     func() time.Time
}

// NewSitemap creates the sitemap handlers. siteURL is the public origin
// without a trailing slash.
func NewSitemap(client *cms.Client, siteURL string) *Sitemap {
	return &Sitemap{cms: client, siteURL: siteURL, now: time.Now}
}

// entries builds one URL per locale for path, each carrying alternates for
// every locale.
func (s *Sitemap) entries(path string, lastMod time.Time, changeFreq string, priority float64) []sitemapURL {
	locales := i18n.Locales()
	alts := make([]alternate, 0, len(locales))
	for _, l := range locales {
		alts = append(alts, alternate{Rel: "alternate", Hreflang: string(l), Href: s.siteURL + "/" + string(l) + path})
	}

	out := make([]sitemapURL, 0, len(locales))
	for _, l := range locales {
		out = append(out, sitemapURL{
			Loc:        s.siteURL + "/" + string(l) + path,
			LastMod:    lastMod.UTC().Format(time.RFC3339),
			ChangeFreq: changeFreq,
			Priority:   strconv.FormatFloat(priority, 'f', 1, 64),
			Alternates: alts,
		})
	}
	return out
}

// XML lists the static routes and every project in every locale. When the
// CMS is unreachable only the static routes are listed.
func (s *Sitemap) XML(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}
	for _, p := range staticPages() {
		set.URLs = append(set.URLs, s.entries(p.path, now, p.changeFreq, p.priority)...)
	}
	for _, ref := range s.cms.ProjectRefs(r.Context()) {
		lastMod := ref.UpdatedAt
		if lastMod.IsZero() {
			lastMod = now
		}
		set.URLs = append(set.URLs, s.entries("/portfolio/"+strconv.FormatInt(ref.ID, 10), lastMod, "monthly", 0.6)...)
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		slog.Error("sitemap encode failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	w.Write(out)
}

// Robots allows all crawlers and points them at the sitemap.
func (s *Sitemap) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("User-agent: *\nAllow: /\n\nSitemap: " + s.siteURL + "/sitemap.xml\n"))
}
