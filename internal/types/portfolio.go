package types

import "strings"

// PersonalInfo is the flattened identity block of the display projection.
type PersonalInfo struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Location   string `json:"location"`
	About      string `json:"about"`
	Avatar     string `json:"avatar,omitempty"`
	CoverImage string `json:"coverImage,omitempty"`
}

// Portfolio is the read-only display projection consumed by template
// renderers. It is always a value copy of the profile; renderers get no
// write path back into the store.
type Portfolio struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Skills         []string        `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Achievements   []Achievement   `json:"achievements"`
	Languages      []Language      `json:"languages"`
	CV             *CVFile         `json:"cv,omitempty"`
	Template       string          `json:"template,omitempty"`
}

// TemplateIDs lists the selectable portfolio layouts.
var TemplateIDs = []string{"modern", "minimal", "creative", "professional", "elegant"}

// DefaultTemplate is used when a profile has no stored template selection.
const DefaultTemplate = "modern"

// ValidTemplateID reports whether id names one of the selectable layouts.
func ValidTemplateID(id string) bool {
	for _, t := range TemplateIDs {
		if t == id {
			return true
		}
	}
	return false
}

// NewPortfolio builds the display projection from a profile. The result
// shares no mutable state with the input.
func NewPortfolio(p *Profile) *Portfolio {
	c := p.Clone()
	tmpl := c.Template
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	return &Portfolio{
		PersonalInfo: PersonalInfo{
			Name:       c.Name,
			Title:      c.Title,
			Email:      c.Email,
			Phone:      c.Phone,
			Location:   c.Location,
			About:      c.About,
			Avatar:     c.Avatar,
			CoverImage: c.CoverImage,
		},
		Skills:         c.Skills,
		Experience:     c.Experience,
		Education:      c.Education,
		Projects:       c.Projects,
		Certifications: c.Certifications,
		Achievements:   c.Achievements,
		Languages:      c.Languages,
		CV:             c.CV,
		Template:       tmpl,
	}
}

// DefaultPortfolio returns the empty projection used as the safe fallback
// when an import cannot be parsed.
func DefaultPortfolio() *Portfolio {
	return &Portfolio{
		Skills:         []string{},
		Experience:     []Experience{},
		Education:      []Education{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Achievements:   []Achievement{},
		Languages:      []Language{},
		Template:       DefaultTemplate,
	}
}

// Complete reports whether the profile satisfies the derived completeness
// rule: all core identity fields filled and skills, experience and education
// each non-empty. Whitespace-only fields count as empty, matching the
// required-field validation rule. The value is computed on demand, never
// stored.
func (p *Profile) Complete() bool {
	for _, field := range []string{p.Name, p.Title, p.Email, p.Location, p.About} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return len(p.Skills) > 0 && len(p.Experience) > 0 && len(p.Education) > 0
}
