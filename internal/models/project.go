// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ProjectCategory classifies a portfolio project.
type ProjectCategory string

const (
	CategoryIndustrial  ProjectCategory = "industrial"
	CategoryCommercial  ProjectCategory = "commercial"
	CategoryResidential ProjectCategory = "residential"
)

// ProjectCategories lists categories in filter order.
var ProjectCategories = []ProjectCategory{CategoryIndustrial, CategoryCommercial, CategoryResidential}

// ParseProjectCategory returns the category for s, or false if unknown.
func ParseProjectCategory(s string) (ProjectCategory, bool) {
	for _, c := range ProjectCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Country is the ISO code of a country the company operates in.
type Country string

const (
	CountryPL Country = "PL"
	CountryBE Country = "BE"
)

// Valid reports whether c is an operating country.
func (c Country) Valid() bool {
	return c == CountryPL || c == CountryBE
}

// Bounds on the completion year accepted for a project.
const (
	MinProjectYear = 2020
	MaxProjectYear = 2030
)

// Project is a portfolio entry resolved for one locale. Image is the cover
// and Gallery the ordered remaining pictures.
type Project struct {
	ID          int64           `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Country     Country         `json:"country"`
	Category    ProjectCategory `json:"category"`
	Year        int             `json:"year"`
	Featured    bool            `json:"featured"`
	SortOrder   int             `json:"sort_order"`
	Image       *Media          `json:"image,omitempty"`
	Gallery     []Media         `json:"gallery,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Cover returns the image to use on cards: the cover when set, else the
// first gallery picture, else nil.
func (p Project) Cover() *Media {
	if p.Image != nil {
		return p.Image
	}
	if len(p.Gallery) > 0 {
		return &p.Gallery[0]
	}
	return nil
}

// ProjectRef is the minimal projection used when listing URLs.
type ProjectRef struct {
	ID        int64
	UpdatedAt time.Time
}
