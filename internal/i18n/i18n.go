// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package i18n provides locale handling and translation lookup for the
// public site. Message catalogs are TOML files embedded in the binary and
// flattened to dotted keys ("Nav.about") at load time.
package i18n

import (
	"embed"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var catalogFS embed.FS

// Locale is one of the supported site languages.
type Locale string

const (
	EN Locale = "en"
	PL Locale = "pl"

	// Default is used when a request carries no usable locale and as the
	// fallback for missing translations and CMS fields.
	Default = EN
)

// supported lists locales in the order they appear in the language switcher.
var supported = []Locale{EN, PL}

// Locales returns all supported locales.
func Locales() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// ParseLocale returns the locale for s, or false if s is not supported.
func ParseLocale(s string) (Locale, bool) {
	for _, l := range supported {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// String implements fmt.Stringer.
func (l Locale) String() string { return string(l) }

// OpenGraph returns the og:locale value (e.g. "pl_PL").
func (l Locale) OpenGraph() string {
	switch l {
	case PL:
		return "pl_PL"
	default:
		return "en_US"
	}
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Polish})

// Negotiate picks the best supported locale for an Accept-Language header.
// Falls back to Default when the header is empty or unparseable.
func Negotiate(acceptLanguage string) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return supported[idx]
}

// Translator resolves message keys against the embedded catalogs.
type Translator struct {
	messages map[Locale]map[string]string
}

// New loads every supported locale's catalog from the embedded filesystem.
func New() (*Translator, error) {
	tr := &Translator{messages: make(map[Locale]map[string]string)}
	for _, l := range supported {
		data, err := catalogFS.ReadFile("locales/" + string(l) + ".toml")
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", l, err)
		}
		msgs, err := parseCatalog(string(data))
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", l, err)
		}
		tr.messages[l] = msgs
		slog.Debug("translation catalog loaded", "locale", l, "keys", len(msgs))
	}
	return tr, nil
}

// NewFromMaps builds a Translator from in-memory catalogs. Keys are
// already flattened.
func NewFromMaps(catalogs map[Locale]map[string]string) *Translator {
	return &Translator{messages: catalogs}
}

// T returns the message for key in locale. Missing keys fall back to the
// default locale, then to the key itself. T never fails.
func (tr *Translator) T(locale Locale, key string) string {
	if msg, ok := tr.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := tr.messages[Default][key]; ok {
		return msg
	}
	return key
}

// Has reports whether locale's own catalog defines key.
func (tr *Translator) Has(locale Locale, key string) bool {
	_, ok := tr.messages[locale][key]
	return ok
}

// Keys returns the sorted keys defined for locale.
func (tr *Translator) Keys(locale Locale) []string {
	keys := make([]string, 0, len(tr.messages[locale]))
	for k := range tr.messages[locale] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parseCatalog decodes a TOML document and flattens nested tables into
// dotted keys. Only string leaves are kept.
func parseCatalog(doc string) (map[string]string, error) {
	var raw map[string]any
	if _, err := toml.Decode(doc, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	flatten("", raw, out)
	return out, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		}
	}
}
