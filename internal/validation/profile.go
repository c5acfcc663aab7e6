package validation

import (
	"github.com/jonathan/portfolio-builder/internal/types"
)

// Result is the outcome of a full profile validation pass.
type Result struct {
	Valid  bool   `json:"valid"`
	Errors Errors `json:"errors"`
}

// experienceRules validates the experience collection, which is required for
// a complete profile.
var experienceRules = Collection[types.Experience]{
	Name:        "experience",
	Required:    true,
	RequiredMsg: "At least one experience entry is required",
	Fields: []Field[types.Experience]{
		{Name: "position", Label: "Position", Get: func(e types.Experience) string { return e.Position }},
		{Name: "company", Label: "Company", Get: func(e types.Experience) string { return e.Company }},
		{Name: "startDate", Label: "Start date", Get: func(e types.Experience) string { return e.StartDate }},
	},
	Item: func(e types.Experience, key func(string) string, errs Errors) {
		errs.Add(key("endDate"), ValidateDateOrder(e.DateRange()))
	},
}

var educationRules = Collection[types.Education]{
	Name:        "education",
	Required:    true,
	RequiredMsg: "At least one education entry is required",
	Fields: []Field[types.Education]{
		{Name: "degree", Label: "Degree", Get: func(e types.Education) string { return e.Degree }},
		{Name: "institution", Label: "Institution", Get: func(e types.Education) string { return e.Institution }},
		{Name: "startDate", Label: "Start date", Get: func(e types.Education) string { return e.StartDate }},
	},
	Item: func(e types.Education, key func(string) string, errs Errors) {
		errs.Add(key("endDate"), ValidateDateOrder(e.DateRange()))
		errs.Add(key("gpa"), ValidateGPA(e.GPA))
	},
}

var projectRules = Collection[types.Project]{
	Name: "projects",
	Fields: []Field[types.Project]{
		{Name: "name", Label: "Project name", Get: func(p types.Project) string { return p.Name }},
		{Name: "description", Label: "Description", Get: func(p types.Project) string { return p.Description }},
	},
	Item: func(p types.Project, key func(string) string, errs Errors) {
		if len(p.Tags) == 0 {
			errs.Add(key("tags"), "At least one tag is required")
		}
		if p.Status != "" && !types.ValidProjectStatus(p.Status) {
			errs.Add(key("status"), "Please select a valid project status")
		}
		errs.Add(key("link"), ValidateURL(p.Link))
		errs.Add(key("githubLink"), ValidateURL(p.GithubLink))
	},
}

var certificationRules = Collection[types.Certification]{
	Name: "certifications",
	Fields: []Field[types.Certification]{
		{Name: "name", Label: "Certification name", Get: func(c types.Certification) string { return c.Name }},
		{Name: "issuer", Label: "Issuer", Get: func(c types.Certification) string { return c.Issuer }},
		{Name: "startDate", Label: "Start date", Get: func(c types.Certification) string { return c.StartDate }},
	},
	Item: func(c types.Certification, key func(string) string, errs Errors) {
		errs.Add(key("endDate"), ValidateDateOrder(c.DateRange()))
	},
}

var achievementRules = Collection[types.Achievement]{
	Name: "achievements",
	Fields: []Field[types.Achievement]{
		{Name: "title", Label: "Title", Get: func(a types.Achievement) string { return a.Title }},
		{Name: "description", Label: "Description", Get: func(a types.Achievement) string { return a.Description }},
		{Name: "startDate", Label: "Date", Get: func(a types.Achievement) string { return a.StartDate }},
	},
}

var languageRules = Collection[types.Language]{
	Name:   "languages",
	Fields: nil, // name has its own rule below
	Item: func(l types.Language, key func(string) string, errs Errors) {
		errs.Add(key("name"), ValidateLanguageName(l.Name))
		if l.Level != "" && !types.ValidLanguageLevel(l.Level) {
			errs.Add(key("level"), "Please select a valid proficiency level")
		}
	},
}

// ValidateProfile runs every rule against the profile and aggregates the
// results into a single error map. The profile is never mutated.
func ValidateProfile(p *types.Profile) Result {
	errs := Errors{}

	errs.Add("name", ValidateRequired(p.Name, "Name"))
	errs.Add("title", ValidateRequired(p.Title, "Title"))
	errs.Add("location", ValidateRequired(p.Location, "Location"))
	errs.Add("about", ValidateRequired(p.About, "About"))

	if msg := ValidateRequired(p.Email, "Email"); msg != "" {
		errs.Add("email", msg)
	} else {
		errs.Add("email", ValidateEmail(p.Email))
	}
	errs.Add("phone", ValidatePhone(p.Phone))

	if len(p.Skills) == 0 {
		errs.Add("skills", "At least one skill is required")
	}

	experienceRules.Validate(p.Experience, errs)
	educationRules.Validate(p.Education, errs)
	projectRules.Validate(p.Projects, errs)
	certificationRules.Validate(p.Certifications, errs)
	achievementRules.Validate(p.Achievements, errs)
	languageRules.Validate(p.Languages, errs)

	if p.Template != "" && !types.ValidTemplateID(p.Template) {
		errs.Add("template", "Please select a valid template")
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
