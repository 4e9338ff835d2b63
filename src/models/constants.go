package models

// Project categories
const (
	CategoryFullstack = "fullstack"
	CategoryFrontend  = "frontend"
	CategoryBackend   = "backend"
	CategorySecurity  = "security"
	CategoryMobile    = "mobile"
	CategoryOther     = "other"
)

// Project / education statuses
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
	StatusArchived   = "archived"
	StatusPlanned    = "planned"
)

// Experience types
const (
	TypeFullTime   = "full-time"
	TypePartTime   = "part-time"
	TypeFreelance  = "freelance"
	TypeContract   = "contract"
	TypeInternship = "internship"
)

// Free-text defaults carried over from the public site copy
const (
	EndDatePresent     = "Present"
	ExpiryNoExpiration = "No expiration"
)

// ProjectCategories lists the accepted project category values.
var ProjectCategories = []string{
	CategoryFullstack, CategoryFrontend, CategoryBackend,
	CategorySecurity, CategoryMobile, CategoryOther,
}

// ProjectStatuses lists the accepted project status values.
var ProjectStatuses = []string{StatusCompleted, StatusInProgress, StatusArchived}

// ExperienceTypes lists the accepted employment type values.
var ExperienceTypes = []string{
	TypeFullTime, TypePartTime, TypeFreelance, TypeContract, TypeInternship,
}

// EducationStatuses lists the accepted education status values.
var EducationStatuses = []string{StatusCompleted, StatusInProgress, StatusPlanned}

// OneOf reports whether v is a member of allowed.
func OneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
