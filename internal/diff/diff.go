// Package diff reports which named profile sections differ between the
// working and original snapshots. Detection is stateless: every call
// recomputes from the two snapshots alone, so results can never go stale.
package diff

import (
	"bytes"
	"encoding/json"

	"github.com/jonathan/portfolio-builder/internal/types"
)

// Section names, in the fixed order they are reported.
const (
	SectionPersonalInfo   = "Personal Information"
	SectionSkills         = "Skills"
	SectionProjects       = "Projects"
	SectionExperience     = "Experience"
	SectionEducation      = "Education"
	SectionCertifications = "Certifications"
	SectionAchievements   = "Achievements"
	SectionLanguages      = "Languages"
	SectionCV             = "CV/Resume"
)

// Sections is the fixed report order.
var Sections = []string{
	SectionPersonalInfo,
	SectionSkills,
	SectionProjects,
	SectionExperience,
	SectionEducation,
	SectionCertifications,
	SectionAchievements,
	SectionLanguages,
	SectionCV,
}

// ChangedSections compares working against original section by section and
// returns the names of the sections that differ, in Sections order. An empty
// result means there are no unsaved changes.
//
// Collection sections compare their encoding/json serializations; struct
// field order in Go is deterministic, so the comparison is stable and
// order-sensitive (reordering a list counts as a change).
func ChangedSections(working, original *types.Profile) []string {
	var changed []string
	for _, section := range Sections {
		if sectionChanged(section, working, original) {
			changed = append(changed, section)
		}
	}
	return changed
}

func sectionChanged(section string, w, o *types.Profile) bool {
	switch section {
	case SectionPersonalInfo:
		return w.Name != o.Name ||
			w.Title != o.Title ||
			w.Email != o.Email ||
			w.Phone != o.Phone ||
			w.Location != o.Location ||
			w.About != o.About ||
			w.Avatar != o.Avatar ||
			w.CoverImage != o.CoverImage ||
			w.Template != o.Template
	case SectionSkills:
		return !jsonEqual(w.Skills, o.Skills)
	case SectionProjects:
		return !jsonEqual(w.Projects, o.Projects)
	case SectionExperience:
		return !jsonEqual(w.Experience, o.Experience)
	case SectionEducation:
		return !jsonEqual(w.Education, o.Education)
	case SectionCertifications:
		return !jsonEqual(w.Certifications, o.Certifications)
	case SectionAchievements:
		return !jsonEqual(w.Achievements, o.Achievements)
	case SectionLanguages:
		return !jsonEqual(w.Languages, o.Languages)
	case SectionCV:
		return !jsonEqual(w.CV, o.CV)
	}
	return false
}

// jsonEqual compares the serialized forms of two values. A nil slice and an
// empty slice serialize differently ("null" vs "[]") but both represent an
// empty collection, so emptiness is normalized first.
func jsonEqual(a, b any) bool {
	ab, errA := json.Marshal(normalizeEmpty(a))
	bb, errB := json.Marshal(normalizeEmpty(b))
	if errA != nil || errB != nil {
		return errA == nil && errB == nil
	}
	return bytes.Equal(ab, bb)
}

func normalizeEmpty(v any) any {
	switch s := v.(type) {
	case []string:
		if len(s) == 0 {
			return nil
		}
	case []types.Experience:
		if len(s) == 0 {
			return nil
		}
	case []types.Education:
		if len(s) == 0 {
			return nil
		}
	case []types.Project:
		if len(s) == 0 {
			return nil
		}
	case []types.Certification:
		if len(s) == 0 {
			return nil
		}
	case []types.Achievement:
		if len(s) == 0 {
			return nil
		}
	case []types.Language:
		if len(s) == 0 {
			return nil
		}
	}
	return v
}
