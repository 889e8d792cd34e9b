// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"
)

// SiteSetting represents a single configuration key-value pair.
type SiteSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteSettings is a convenience map for accessing settings by key.
type SiteSettings map[string]string

// Get returns the value for a key, or the fallback if the key doesn't exist.
func (s SiteSettings) Get(key, fallback string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Localized returns "<key>.<locale>", then "<key>.<fallback locale>", then
// fallback.
func (s SiteSettings) Localized(key, locale, fallbackLocale, fallback string) string {
	if v := s.Get(key+"."+locale, ""); v != "" {
		return v
	}
	return s.Get(key+"."+fallbackLocale, fallback)
}

// Setting keys stored in site_settings.
const (
	SettingTitle       = "title"
	SettingDescription = "description"
	SettingPhone       = "phone"
	SettingEmail       = "email"
	SettingAddress     = "address"
	SettingCompanyName = "company_name"
	SettingNIP         = "nip"
	SettingREGON       = "regon"
	SettingKRS         = "krs"
	SettingDirector    = "director"
	SettingFacebook    = "facebook"
	SettingLinkedIn    = "linkedin"
	SettingInstagram   = "instagram"
	SettingCitiesPL    = "cities.PL"
	SettingCitiesBE    = "cities.BE"
)

// Settings is the resolved site-wide configuration for one locale.
type Settings struct {
	Title       string
	Description string
	Phone       string
	Email       string
	Address     string
	CompanyName string
	NIP         string
	REGON       string
	KRS         string
	Director    string
	Facebook    string
	LinkedIn    string
	Instagram   string
	Countries   []CountryCities
}

// CountryCities lists the cities served within one country.
type CountryCities struct {
	Code   Country
	Cities []string
}

// DefaultSettings returns the values used when nothing is stored.
func DefaultSettings() Settings {
	return Settings{
		Title:       "Techno Groop",
		Description: "Electrical installations, low-current systems and building automation in Poland and Belgium.",
		Phone:       "+48 578 992 316",
		Email:       "info@technogroop.com",
		Address:     "Ul. Biala 4/87\n00-895 Warszawa, Poland",
		CompanyName: "Techno Groop Sp. z o.o.",
		NIP:         "1231527015",
		REGON:       "524314939",
		KRS:         "0001016431",
		Director:    "Vadym Lapin",
		Countries: []CountryCities{
			{Code: CountryPL, Cities: []string{"Warsaw"}},
			{Code: CountryBE, Cities: []string{"Antwerp", "Brussels", "Bruges"}},
		},
	}
}

// ResolveSettings overlays stored values for locale on DefaultSettings.
// Title and description are localized with fallbackLocale behind them;
// city lists are stored comma-separated.
func ResolveSettings(s SiteSettings, locale, fallbackLocale string) Settings {
	d := DefaultSettings()
	out := Settings{
		Title:       s.Localized(SettingTitle, locale, fallbackLocale, d.Title),
		Description: s.Localized(SettingDescription, locale, fallbackLocale, d.Description),
		Phone:       s.Get(SettingPhone, d.Phone),
		Email:       s.Get(SettingEmail, d.Email),
		Address:     s.Get(SettingAddress, d.Address),
		CompanyName: s.Get(SettingCompanyName, d.CompanyName),
		NIP:         s.Get(SettingNIP, d.NIP),
		REGON:       s.Get(SettingREGON, d.REGON),
		KRS:         s.Get(SettingKRS, d.KRS),
		Director:    s.Get(SettingDirector, d.Director),
		Facebook:    s.Get(SettingFacebook, ""),
		LinkedIn:    s.Get(SettingLinkedIn, ""),
		Instagram:   s.Get(SettingInstagram, ""),
		Countries:   d.Countries,
	}
	var countries []CountryCities
	for _, c := range []struct {
		code Country
		key  string
	}{{CountryPL, SettingCitiesPL}, {CountryBE, SettingCitiesBE}} {
		if raw := s.Get(c.key, ""); raw != "" {
			countries = append(countries, CountryCities{Code: c.code, Cities: splitList(raw)})
		}
	}
	if len(countries) > 0 {
		out.Countries = countries
	}
	return out
}

// AddressLines splits the address on newlines for display.
func (s Settings) AddressLines() []string {
	return strings.Split(s.Address, "\n")
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
