package models

import (
	"time"

	"github.com/google/uuid"
)

// SocialLinks groups the profile's external contact URLs.
type SocialLinks struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Twitter  string `json:"twitter"`
}

// SkillGroups holds skills bucketed by category for the skills section.
type SkillGroups struct {
	Languages []string `json:"languages"`
	Frontend  []string `json:"frontend"`
	Backend   []string `json:"backend"`
	Databases []string `json:"databases"`
	Security  []string `json:"security"`
	Tools     []string `json:"tools"`
	Other     []string `json:"other"`
}

// ProfileStats feeds the hero counters on the landing page.
type ProfileStats struct {
	YearsExperience   int `json:"yearsExperience"`
	ProjectsCompleted int `json:"projectsCompleted"`
	Certifications    int `json:"certifications"`
}

// Profile is the singleton document describing the site owner. At most one
// row ever exists; reads lazily create it with these defaults.
type Profile struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Title        string       `json:"title"`
	Subtitle     string       `json:"subtitle"`
	Bio          string       `json:"bio"`
	Description  string       `json:"description"`
	ProfileImage string       `json:"profileImage"`
	CVUrl        string       `json:"cvUrl"`
	Location     string       `json:"location"`
	SocialLinks  SocialLinks  `json:"socialLinks"`
	Skills       SkillGroups  `json:"skills"`
	Stats        ProfileStats `json:"stats"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// DefaultProfile returns the profile created on first read of an empty store.
// Defaults mirror the public site copy.
func DefaultProfile() *Profile {
	return &Profile{
		ID:           uuid.New(),
		Name:         "Vicente Woinilowicz",
		Title:        "Full-Stack Developer & Cybersecurity Specialist",
		Subtitle:     "Desarrollador Web & Especialista en Seguridad",
		Bio:          "Desarrollador Full-Stack con experiencia en MERN stack, .NET Core y PHP, especializándome en Ciberseguridad.",
		Description:  "Passionate about building secure applications from the ground up.",
		ProfileImage: "/assets/profile.jpg",
		Location:     "Buenos Aires, Argentina",
		Stats: ProfileStats{
			YearsExperience: 2,
		},
	}
}
