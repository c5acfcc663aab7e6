// Package types provides type definitions for structured data used throughout the portfolio-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JSON field names are camelCase to stay round-trip compatible with documents
// persisted by earlier releases; do not rename tags.

// Profile is the root editable record owned by one user session.
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Location   string `json:"location"`
	About      string `json:"about"`
	Avatar     string `json:"avatar,omitempty"`
	CoverImage string `json:"coverImage,omitempty"`

	Skills         []string        `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Achievements   []Achievement   `json:"achievements"`
	Languages      []Language      `json:"languages"`

	CV       *CVFile `json:"cv,omitempty"`
	Template string  `json:"template,omitempty"`
}

// Experience represents one work experience entry.
type Experience struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	IsPresent   bool     `json:"isPresent"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// Education represents one education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	IsPresent   bool   `json:"isPresent"`
	GPA         string `json:"gpa,omitempty"`
	Field       string `json:"field,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectStatus enumerates the allowed project states. Values must match the
// stored enum strings exactly.
type ProjectStatus string

// Allowed ProjectStatus values.
const (
	StatusCompleted  ProjectStatus = "Completed"
	StatusInProgress ProjectStatus = "In Progress"
	StatusPlanned    ProjectStatus = "Planned"
)

// ValidProjectStatus reports whether s is one of the allowed status strings.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusPlanned:
		return true
	}
	return false
}

// Project represents one portfolio project entry.
type Project struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Tags        []string      `json:"tags"`
	Status      ProjectStatus `json:"status"`
	Link        string        `json:"link,omitempty"`
	GithubLink  string        `json:"githubLink,omitempty"`
	Image       string        `json:"image,omitempty"`
	Role        string        `json:"role,omitempty"`
}

// Certification represents one certification entry.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
	IsPresent    bool   `json:"isPresent"`
	CredentialID string `json:"credentialId,omitempty"`
}

// Achievement represents one achievement entry. Achievements carry a single
// date rather than a range.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
}

// LanguageLevel enumerates the allowed proficiency levels. Values must match
// the stored enum strings exactly.
type LanguageLevel string

// Allowed LanguageLevel values.
const (
	LevelBeginner     LanguageLevel = "Beginner"
	LevelIntermediate LanguageLevel = "Intermediate"
	LevelAdvanced     LanguageLevel = "Advanced"
	LevelFluent       LanguageLevel = "Fluent"
	LevelNative       LanguageLevel = "Native"
	LevelExpert       LanguageLevel = "Expert"
)

// ValidLanguageLevel reports whether l is one of the allowed level strings.
func ValidLanguageLevel(l LanguageLevel) bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelFluent, LevelNative, LevelExpert:
		return true
	}
	return false
}

// Language represents one spoken-language entry.
type Language struct {
	Name  string        `json:"name"`
	Level LanguageLevel `json:"level"`
}

// CVFile records the metadata of an uploaded CV document. The file content
// itself lives behind the opaque StorageKey.
type CVFile struct {
	FileName   string `json:"fileName"`
	StorageKey string `json:"storageKey"`
	UploadedAt string `json:"uploadedAt"`
	Size       int64  `json:"size"`
	MimeType   string `json:"mimeType"`
}

// DateRange returns the entry's date fields in the shape the date-order
// validation rule expects.
func (e Experience) DateRange() (start, end string, isPresent bool) {
	return e.StartDate, e.EndDate, e.IsPresent
}

// DateRange returns the entry's date fields in the shape the date-order
// validation rule expects.
func (e Education) DateRange() (start, end string, isPresent bool) {
	return e.StartDate, e.EndDate, e.IsPresent
}

// DateRange returns the entry's date fields in the shape the date-order
// validation rule expects.
func (c Certification) DateRange() (start, end string, isPresent bool) {
	return c.StartDate, c.EndDate, c.IsPresent
}

// Clone returns a deep copy of the profile. Collection slices and the CV
// record are copied so mutations of the clone never alias the receiver.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	out := *p
	out.Skills = cloneStrings(p.Skills)
	out.Experience = cloneExperience(p.Experience)
	out.Education = append([]Education(nil), p.Education...)
	out.Projects = cloneProjects(p.Projects)
	out.Certifications = append([]Certification(nil), p.Certifications...)
	out.Achievements = append([]Achievement(nil), p.Achievements...)
	out.Languages = append([]Language(nil), p.Languages...)
	if p.CV != nil {
		cv := *p.CV
		out.CV = &cv
	}
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneExperience(in []Experience) []Experience {
	if in == nil {
		return nil
	}
	out := make([]Experience, len(in))
	for i, e := range in {
		e.Skills = cloneStrings(e.Skills)
		out[i] = e
	}
	return out
}

func cloneProjects(in []Project) []Project {
	if in == nil {
		return nil
	}
	out := make([]Project, len(in))
	for i, p := range in {
		p.Tags = cloneStrings(p.Tags)
		out[i] = p
	}
	return out
}
