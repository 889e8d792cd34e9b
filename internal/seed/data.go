package seed

import (
	"strings"

	"technogroop/internal/models"
)

// Text holds one string per locale.
type Text struct {
	EN string
	PL string
}

// ServiceSeed is a baseline service.
type ServiceSeed struct {
	Title       Text
	Description Text
	Icon        models.ServiceIcon
	Image       string
	Order       int
}

// ProjectSeed is a baseline project. Image and Gallery entries are either
// absolute URLs or paths below the local media directory.
type ProjectSeed struct {
	Slug        string
	Title       Text
	Description Text
	Location    Text
	Category    models.ProjectCategory
	Country     models.Country
	Year        int
	Image       string
	ImageName   string
	Featured    bool
	Order       int
	Gallery     []string
}

// ReviewSeed is a baseline client review.
type ReviewSeed struct {
	Author   string
	Company  string
	Role     string
	Content  Text
	Rating   int
	Featured bool
}

// VacancySeed is a baseline job opening. Descriptions are Markdown.
type VacancySeed struct {
	Title       Text
	Description Text
	Location    string
	Type        models.EmploymentType
	Department  models.Department
}

// Data is the full baseline content set.
type Data struct {
	Services  []ServiceSeed
	Projects  []ProjectSeed
	Reviews   []ReviewSeed
	Vacancies []VacancySeed
	Settings  map[string]string
}

func unsplash(id string) string {
	return "https://images.unsplash.com/" + id + "?w=800&q=80"
}

// Baseline returns the content the seed operation installs.
func Baseline() Data {
	return Data{
		Services:  baselineServices(),
		Projects:  baselineProjects(),
		Reviews:   baselineReviews(),
		Vacancies: baselineVacancies(),
		Settings: map[string]string{
			models.SettingTitle + ".en":       "Techno Groop – Professional Electrical Services",
			models.SettingTitle + ".pl":       "Techno Groop – Profesjonalne usługi elektryczne",
			models.SettingDescription + ".en": "Comprehensive electrical solutions, low-current installations, automation, and photovoltaics for businesses and general contractors in Poland and Belgium.",
			models.SettingDescription + ".pl": "Kompleksowe rozwiązania elektryczne, instalacje niskoprądowe, automatyka i fotowoltaika dla firm i generalnych wykonawców w Polsce i Belgii.",
		},
	}
}

func baselineServices() []ServiceSeed {
	return []ServiceSeed{
		{
			Title: Text{"Residential Electrical", "Elektroinstalacje mieszkaniowe"},
			Description: Text{
				"Full range of electrical work in residential buildings: installations, panels, lighting, outlets.",
				"Pełen zakres prac elektrycznych w budynkach mieszkalnych: instalacje, rozdzielnie, oświetlenie, gniazda.",
			},
			Icon:  models.IconHome,
			Image: unsplash("photo-1558618666-fcd25c85cd64"),
			Order: 1,
		},
		{
			Title: Text{"Industrial Electrical", "Elektroinstalacje przemysłowe"},
			Description: Text{
				"Electrical installations for production halls, warehouses, and commercial facilities.",
				"Instalacje elektryczne dla hal produkcyjnych, magazynów i obiektów komercyjnych.",
			},
			Icon:  models.IconFactory,
			Image: unsplash("photo-1504307651254-35680f356dfd"),
			Order: 2,
		},
		{
			Title: Text{"Low-Current Systems", "Systemy niskoprądowe"},
			Description: Text{
				"LAN networks, CCTV, access control, alarm systems, and intercom.",
				"Sieci LAN, CCTV, kontrola dostępu, systemy alarmowe i interkom.",
			},
			Icon:  models.IconServer,
			Image: unsplash("photo-1558494949-ef010cbdcc31"),
			Order: 3,
		},
		{
			Title: Text{"Building Automation", "Automatyka budynkowa"},
			Description: Text{
				"BMS systems, KNX, smart lighting and HVAC control.",
				"Systemy BMS, KNX, inteligentne sterowanie oświetleniem i klimatyzacją.",
			},
			Icon:  models.IconSettings,
			Image: unsplash("photo-1581092918056-0c4c3acd3789"),
			Order: 4,
		},
		{
			Title: Text{"Photovoltaics", "Fotowoltaika"},
			Description: Text{
				"Installation and connection of solar panel systems for business.",
				"Montaż i podłączenie instalacji fotowoltaicznych dla biznesu.",
			},
			Icon:  models.IconSun,
			Image: unsplash("photo-1509391366360-2e959784a276"),
			Order: 5,
		},
	}
}

func baselineProjects() []ProjectSeed {
	prison := "/projects/antwerp-prison/"
	return []ProjectSeed{
		{
			Slug:  "logistics-center",
			Title: Text{"Logistics Center", "Centrum logistyczne"},
			Description: Text{
				"Complete electrical and lighting installation for a 15,000 m² warehouse facility.",
				"Kompletna instalacja elektryczna i oświetleniowa hali magazynowej 15 000 m².",
			},
			Location:  Text{"Antwerp, Belgium", "Antwerpia, Belgia"},
			Category:  models.CategoryIndustrial,
			Country:   models.CountryBE,
			Year:      2024,
			Image:     unsplash("photo-1586528116311-ad8dd3c8310d"),
			ImageName: "logistics-center.jpg",
			Featured:  true,
			Order:     1,
		},
		{
			Slug:  "class-a-office-building",
			Title: Text{"Class A Office Building", "Biurowiec klasy A"},
			Description: Text{
				"Low-current installations, access control, and BMS system.",
				"Instalacje niskoprądowe, kontrola dostępu i system BMS.",
			},
			Location:  Text{"Warsaw, Poland", "Warszawa, Polska"},
			Category:  models.CategoryCommercial,
			Country:   models.CountryPL,
			Year:      2024,
			Image:     unsplash("photo-1497366216548-37526070297c"),
			ImageName: "office-building.jpg",
			Featured:  true,
			Order:     2,
		},
		{
			Slug:  "residential-complex",
			Title: Text{"Residential Complex", "Osiedle mieszkaniowe"},
			Description: Text{
				"Electrical installations and smart home systems in 48 apartments.",
				"Elektroinstalacje i systemy smart home w 48 apartamentach.",
			},
			Location:  Text{"Bruges, Belgium", "Brugia, Belgia"},
			Category:  models.CategoryResidential,
			Country:   models.CountryBE,
			Year:      2023,
			Image:     unsplash("photo-1545324418-cc1a3fa10c00"),
			ImageName: "residential-complex.jpg",
			Featured:  true,
			Order:     3,
		},
		{
			Slug:  "shopping-mall",
			Title: Text{"Shopping Mall Electrical", "Centrum handlowe"},
			Description: Text{
				"Complete electrical infrastructure for a 25,000 m² shopping center.",
				"Kompletna infrastruktura elektryczna centrum handlowego 25 000 m².",
			},
			Location:  Text{"Brussels, Belgium", "Bruksela, Belgia"},
			Category:  models.CategoryCommercial,
			Country:   models.CountryBE,
			Year:      2024,
			Image:     unsplash("photo-1567449303078-57ad995bd17f"),
			ImageName: "shopping-mall.jpg",
			Order:     4,
		},
		{
			Slug:  "solar-farm",
			Title: Text{"Solar Farm Installation", "Farma fotowoltaiczna"},
			Description: Text{
				"Photovoltaic system installation for agricultural complex.",
				"Montaż instalacji fotowoltaicznej dla kompleksu rolniczego.",
			},
			Location:  Text{"Warsaw Region, Poland", "Okolice Warszawy, Polska"},
			Category:  models.CategoryIndustrial,
			Country:   models.CountryPL,
			Year:      2023,
			Image:     unsplash("photo-1509391366360-2e959784a276"),
			ImageName: "solar-farm.jpg",
			Order:     5,
		},
		{
			Slug:  "smart-building-automation",
			Title: Text{"Smart Building Automation", "Automatyka inteligentnego budynku"},
			Description: Text{
				"KNX and BMS integration for modern office complex.",
				"Integracja KNX i BMS dla nowoczesnego kompleksu biurowego.",
			},
			Location:  Text{"Antwerp, Belgium", "Antwerpia, Belgia"},
			Category:  models.CategoryCommercial,
			Country:   models.CountryBE,
			Year:      2024,
			Image:     unsplash("photo-1486406146926-c627a92ad1ab"),
			ImageName: "smart-building.jpg",
			Order:     6,
		},
		{
			Slug:  "antwerp-prison",
			Title: Text{"Antwerp Prison - Government Project", "Więzienie w Antwerpii - Projekt Rządowy"},
			Description: Text{
				"Complete electrical and low-current installation for a new government correctional facility. " +
					"High-security infrastructure including power distribution, structured cabling (Cat6a), " +
					"control panels, cable tray systems, and building automation.",
				"Kompleksowa instalacja elektryczna i niskoprądowa dla nowego rządowego zakładu karnego. " +
					"Infrastruktura wysokiego bezpieczeństwa obejmująca dystrybucję mocy, okablowanie strukturalne (Cat6a), " +
					"rozdzielnie, systemy korytek kablowych i automatykę budynkową.",
			},
			Location:  Text{"Antwerp, Belgium", "Antwerpia, Belgia"},
			Category:  models.CategoryIndustrial,
			Country:   models.CountryBE,
			Year:      2024,
			Image:     prison + "switchboard.png",
			ImageName: "antwerp-prison.png",
			Featured:  true,
			Order:     7,
			Gallery: []string{
				prison + "cable-routing-1.png",
				prison + "conduit-installation.png",
				prison + "switchboard.png",
				prison + "control-panel.png",
				prison + "data-cabling.png",
				prison + "cable-routing-2.png",
				prison + "team-planning.png",
				prison + "team-work.png",
			},
		},
	}
}

func baselineReviews() []ReviewSeed {
	return []ReviewSeed{
		{
			Author:  "Pieter Janssens",
			Company: "Vandewalle Bouw NV",
			Role:    "Project Manager",
			Content: Text{
				"Techno Groop delivered the full electrical scope of our logistics hall on schedule. Clean work and clear reporting throughout.",
				"Techno Groop zrealizowało pełen zakres elektryczny naszej hali logistycznej zgodnie z harmonogramem. Czysta praca i jasna komunikacja.",
			},
			Rating:   5,
			Featured: true,
		},
		{
			Author:  "Anna Nowak",
			Company: "Nowak Development",
			Role:    "Site Director",
			Content: Text{
				"A reliable subcontractor for low-current systems. The access control and CCTV handover was flawless.",
				"Solidny podwykonawca systemów niskoprądowych. Odbiór kontroli dostępu i CCTV przebiegł bez zastrzeżeń.",
			},
			Rating:   5,
			Featured: true,
		},
		{
			Author:  "Marc Dubois",
			Company: "Brussels Retail Partners",
			Role:    "Facility Manager",
			Content: Text{
				"Good coordination with the general contractor and fast response to design changes.",
				"Dobra koordynacja z generalnym wykonawcą i szybka reakcja na zmiany projektowe.",
			},
			Rating: 4,
		},
	}
}

func baselineVacancies() []VacancySeed {
	return []VacancySeed{
		{
			Title: Text{"Industrial Electrician", "Elektryk przemysłowy"},
			Description: Text{
				strings.Join([]string{
					"Join our crews on industrial and commercial sites in Belgium.",
					"",
					"**Requirements**",
					"",
					"- SEP E1 certificate or equivalent",
					"- 2+ years of site experience",
					"- Readiness to work abroad",
				}, "\n"),
				strings.Join([]string{
					"Dołącz do naszych ekip na budowach przemysłowych i komercyjnych w Belgii.",
					"",
					"**Wymagania**",
					"",
					"- Uprawnienia SEP E1 lub równoważne",
					"- Minimum 2 lata doświadczenia na budowie",
					"- Gotowość do pracy za granicą",
				}, "\n"),
			},
			Location:   "Antwerp, Belgium",
			Type:       models.EmploymentFullTime,
			Department: models.DepartmentElectrical,
		},
		{
			Title: Text{"BMS / KNX Technician", "Technik BMS / KNX"},
			Description: Text{
				strings.Join([]string{
					"Commission and program building automation systems for office and residential projects.",
					"",
					"**Requirements**",
					"",
					"- Hands-on KNX or BMS experience",
					"- Basic English",
				}, "\n"),
				strings.Join([]string{
					"Uruchamianie i programowanie systemów automatyki budynkowej w biurowcach i budynkach mieszkalnych.",
					"",
					"**Wymagania**",
					"",
					"- Praktyczne doświadczenie z KNX lub BMS",
					"- Podstawowa znajomość języka angielskiego",
				}, "\n"),
			},
			Location:   "Warsaw, Poland",
			Type:       models.EmploymentFullTime,
			Department: models.DepartmentAutomation,
		},
	}
}
