package models

// ServiceIcon names the pictogram shown next to a service.
type ServiceIcon string

const (
	IconHome     ServiceIcon = "home"
	IconFactory  ServiceIcon = "factory"
	IconServer   ServiceIcon = "server"
	IconSettings ServiceIcon = "settings"
	IconSun      ServiceIcon = "sun"
)

// Valid reports whether the icon is one the templates can draw.
func (i ServiceIcon) Valid() bool {
	switch i {
	case IconHome, IconFactory, IconServer, IconSettings, IconSun:
		return true
	}
	return false
}

// Service is a company offering, resolved for one locale.
type Service struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        ServiceIcon `json:"icon"`
	Image       *Media      `json:"image,omitempty"`
	SortOrder   int         `json:"order"`
	Active      bool        `json:"is_active"`
}
