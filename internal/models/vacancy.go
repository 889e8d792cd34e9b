package models

import "time"

// EmploymentType is the contract form of a vacancy.
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentPartTime EmploymentType = "part-time"
	EmploymentContract EmploymentType = "contract"
)

// Department groups vacancies on the careers page.
type Department string

const (
	DepartmentElectrical Department = "electrical"
	DepartmentPlumbing   Department = "plumbing"
	DepartmentAutomation Department = "automation"
	DepartmentManagement Department = "management"
)

// Vacancy is an open position resolved for one locale. Description holds
// Markdown source.
type Vacancy struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	Type        EmploymentType `json:"type"`
	Department  Department     `json:"department"`
	Active      bool           `json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
}
