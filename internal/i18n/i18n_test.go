package i18n

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_LoadsEmbeddedCatalogs(t *testing.T) {
	tr, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if got := tr.T(EN, "Nav.about"); got != "About" {
		t.Errorf("T(en, Nav.about) = %q, want %q", got, "About")
	}
	if got := tr.T(PL, "Nav.about"); got != "O nas" {
		t.Errorf("T(pl, Nav.about) = %q, want %q", got, "O nas")
	}
	if got := tr.T(PL, "Portfolio.countries.BE"); got != "Belgia" {
		t.Errorf("nested table key: got %q, want %q", got, "Belgia")
	}
}

// Every key in the default catalog should have a Polish translation so the
// fallback path is only exercised for genuinely new strings.
func TestCatalogs_SameKeys(t *testing.T) {
	tr, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if diff := cmp.Diff(tr.Keys(EN), tr.Keys(PL)); diff != "" {
		t.Errorf("catalog keys differ (-en +pl):\n%s", diff)
	}
}

func TestT_Fallback(t *testing.T) {
	tr := NewFromMaps(map[Locale]map[string]string{
		EN: {"Hero.title": "Power", "Only.en": "English only"},
		PL: {"Hero.title": "Energia"},
	})

	tests := []struct {
		name   string
		locale Locale
		key    string
		want   string
	}{
		{"own locale", PL, "Hero.title", "Energia"},
		{"default locale", EN, "Hero.title", "Power"},
		{"falls back to en", PL, "Only.en", "English only"},
		{"unknown locale falls back to en", Locale("de"), "Hero.title", "Power"},
		{"missing everywhere returns key", PL, "Missing.key", "Missing.key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.T(tt.locale, tt.key); got != tt.want {
				t.Errorf("T(%s, %s) = %q, want %q", tt.locale, tt.key, got, tt.want)
			}
		})
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in     string
		want   Locale
		wantOK bool
	}{
		{"en", EN, true},
		{"pl", PL, true},
		{"de", "", false},
		{"EN", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLocale(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLocale(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   Locale
	}{
		{"", EN},
		{"pl-PL,pl;q=0.9,en;q=0.8", PL},
		{"en-US,en;q=0.9", EN},
		{"pl", PL},
		{"de-DE", EN},
		{";;;garbage", EN},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := Negotiate(tt.header); got != tt.want {
				t.Errorf("Negotiate(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestLocales_ReturnsCopy(t *testing.T) {
	ls := Locales()
	ls[0] = "xx"
	if Locales()[0] != EN {
		t.Error("Locales() exposed internal slice")
	}
}

func TestOpenGraph(t *testing.T) {
	if got := PL.OpenGraph(); got != "pl_PL" {
		t.Errorf("PL.OpenGraph() = %q", got)
	}
	if got := EN.OpenGraph(); got != "en_US" {
		t.Errorf("EN.OpenGraph() = %q", got)
	}
}
