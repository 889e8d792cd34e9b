// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns titles and file names, Polish ones included, into
// ASCII strings safe for URLs and object keys.
package slug

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	separators      = regexp.MustCompile(`[\s_-]+`)
)

// Letters that do not decompose into base letter plus combining mark.
var undecomposable = strings.NewReplacer(
	"ł", "l", "Ł", "L",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
)

// fold strips diacritics: "Łódź" becomes "Lodz".
func fold(s string) string {
	s = undecomposable.Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Generate creates a URL-friendly slug.
// Example: "Instalacje elektryczne – Łódź 2026" → "instalacje-elektryczne-lodz-2026"
func Generate(s string) string {
	result := strings.ToLower(fold(strings.TrimSpace(s)))
	result = nonAlphanumeric.ReplaceAllString(result, " ")
	result = separators.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Filename slugs the base name of a path and keeps its extension in lower
// case. It returns "" when nothing usable remains.
func Filename(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" {
		return ""
	}
	ext := strings.ToLower(path.Ext(name))
	base := Generate(strings.TrimSuffix(name, path.Ext(name)))
	if Generate(strings.TrimPrefix(ext, ".")) == "" {
		ext = ""
	}
	if base == "" {
		return ""
	}
	return base + ext
}
