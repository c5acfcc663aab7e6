package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-builder/internal/types"
)

func baseProfile() *types.Profile {
	return &types.Profile{
		ID:       "prof_001",
		Name:     "Jane Doe",
		Title:    "Engineer",
		Email:    "jane@example.com",
		Location: "Berlin",
		About:    "Builds things",
		Skills:   []string{"Go", "Kubernetes"},
		Experience: []types.Experience{
			{Position: "Engineer", Company: "Acme", StartDate: "2020-01-01"},
		},
		Education: []types.Education{
			{Degree: "BSc", Institution: "TU", StartDate: "2015-10-01"},
		},
	}
}

func TestChangedSections_IdenticalSnapshots(t *testing.T) {
	original := baseProfile()
	working := original.Clone()
	assert.Empty(t, ChangedSections(working, original))
}

func TestChangedSections_SingleScalarChange(t *testing.T) {
	original := baseProfile()
	working := original.Clone()
	working.Phone = "+4915112345678"

	assert.Equal(t, []string{SectionPersonalInfo}, ChangedSections(working, original))
}

func TestChangedSections_EveryPersonalField(t *testing.T) {
	mutations := map[string]func(p *types.Profile){
		"name":       func(p *types.Profile) { p.Name = "x" },
		"title":      func(p *types.Profile) { p.Title = "x" },
		"email":      func(p *types.Profile) { p.Email = "x@x.com" },
		"phone":      func(p *types.Profile) { p.Phone = "+123" },
		"location":   func(p *types.Profile) { p.Location = "x" },
		"about":      func(p *types.Profile) { p.About = "x" },
		"avatar":     func(p *types.Profile) { p.Avatar = "x" },
		"coverImage": func(p *types.Profile) { p.CoverImage = "x" },
		"template":   func(p *types.Profile) { p.Template = "minimal" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			original := baseProfile()
			working := original.Clone()
			mutate(working)
			assert.Equal(t, []string{SectionPersonalInfo}, ChangedSections(working, original))
		})
	}
}

func TestChangedSections_CollectionEdit(t *testing.T) {
	original := baseProfile()
	working := original.Clone()
	working.Experience[0].Company = "Other"

	assert.Equal(t, []string{SectionExperience}, ChangedSections(working, original))
}

func TestChangedSections_ReorderCountsAsChange(t *testing.T) {
	original := baseProfile()
	working := original.Clone()
	working.Skills[0], working.Skills[1] = working.Skills[1], working.Skills[0]

	assert.Equal(t, []string{SectionSkills}, ChangedSections(working, original))
}

func TestChangedSections_NilAndEmptyCollectionsAreEqual(t *testing.T) {
	original := baseProfile()
	working := original.Clone()
	original.Projects = nil
	working.Projects = []types.Project{}

	assert.Empty(t, ChangedSections(working, original))
}

func TestChangedSections_CVAttachAndDetach(t *testing.T) {
	original := baseProfile()
	working := original.Clone()
	working.CV = &types.CVFile{FileName: "cv.pdf", StorageKey: "cv/cv.pdf"}

	assert.Equal(t, []string{SectionCV}, ChangedSections(working, original))

	// Symmetric: original has a CV, working cleared it.
	assert.Equal(t, []string{SectionCV}, ChangedSections(original, working))
}

func TestChangedSections_ReportsInFixedOrder(t *testing.T) {
	original := baseProfile()
	working := original.Clone()
	// Mutate in an order unlike the report order.
	working.Languages = []types.Language{{Name: "German", Level: types.LevelFluent}}
	working.Name = "Other"
	working.Education = append(working.Education, types.Education{Degree: "MSc", Institution: "TU", StartDate: "2019-10-01"})

	changed := ChangedSections(working, original)
	require.Equal(t, []string{SectionPersonalInfo, SectionEducation, SectionLanguages}, changed)
}

func TestChangedSections_Deterministic(t *testing.T) {
	original := baseProfile()
	working := original.Clone()
	working.Projects = []types.Project{{Name: "P", Description: "d", Tags: []string{"web"}, Status: types.StatusPlanned}}

	first := ChangedSections(working, original)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ChangedSections(working, original))
	}
}

func TestSections_CompleteAndOrdered(t *testing.T) {
	assert.Equal(t, []string{
		"Personal Information",
		"Skills",
		"Projects",
		"Experience",
		"Education",
		"Certifications",
		"Achievements",
		"Languages",
		"CV/Resume",
	}, Sections)
}
