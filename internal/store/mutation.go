package store

import (
	"github.com/jonathan/portfolio-builder/internal/types"
)

// ScalarField names a settable scalar field of the profile.
type ScalarField string

// Settable scalar fields.
const (
	FieldName       ScalarField = "name"
	FieldTitle      ScalarField = "title"
	FieldEmail      ScalarField = "email"
	FieldPhone      ScalarField = "phone"
	FieldLocation   ScalarField = "location"
	FieldAbout      ScalarField = "about"
	FieldAvatar     ScalarField = "avatar"
	FieldCoverImage ScalarField = "coverImage"
	FieldTemplate   ScalarField = "template"
)

// Collection names an editable profile collection.
type Collection string

// Editable collections.
const (
	CollectionSkills         Collection = "skills"
	CollectionExperience     Collection = "experience"
	CollectionEducation      Collection = "education"
	CollectionProjects       Collection = "projects"
	CollectionCertifications Collection = "certifications"
	CollectionAchievements   Collection = "achievements"
	CollectionLanguages      Collection = "languages"
)

// Mutation is a tagged edit applied to the working snapshot. Using a closed
// set of mutation types instead of a stringly-typed update(field, value) keeps
// edits checkable before they touch the snapshot.
type Mutation interface {
	apply(p *types.Profile) error
}

// SetScalar sets one scalar field.
type SetScalar struct {
	Field ScalarField
	Value string
}

func (m SetScalar) apply(p *types.Profile) error {
	switch m.Field {
	case FieldName:
		p.Name = m.Value
	case FieldTitle:
		p.Title = m.Value
	case FieldEmail:
		p.Email = m.Value
	case FieldPhone:
		p.Phone = m.Value
	case FieldLocation:
		p.Location = m.Value
	case FieldAbout:
		p.About = m.Value
	case FieldAvatar:
		p.Avatar = m.Value
	case FieldCoverImage:
		p.CoverImage = m.Value
	case FieldTemplate:
		p.Template = m.Value
	default:
		return mutationErrorf("unknown field %q", m.Field)
	}
	return nil
}

// AddItem appends a whole record to a collection. The item's concrete type
// must match the collection (string for skills, types.Experience for
// experience, and so on).
type AddItem struct {
	Collection Collection
	Item       any
}

func (m AddItem) apply(p *types.Profile) error {
	return withCollection(p, m.Collection, func(c collectionOps) error {
		return c.add(m.Item)
	})
}

// RemoveItem removes the record at Index from a collection.
type RemoveItem struct {
	Collection Collection
	Index      int
}

func (m RemoveItem) apply(p *types.Profile) error {
	return withCollection(p, m.Collection, func(c collectionOps) error {
		return c.remove(m.Index)
	})
}

// ReplaceItem swaps the record at Index for Item.
type ReplaceItem struct {
	Collection Collection
	Index      int
	Item       any
}

func (m ReplaceItem) apply(p *types.Profile) error {
	return withCollection(p, m.Collection, func(c collectionOps) error {
		return c.replace(m.Index, m.Item)
	})
}

// SetCV attaches or replaces the CV metadata record.
type SetCV struct {
	CV types.CVFile
}

func (m SetCV) apply(p *types.Profile) error {
	cv := m.CV
	p.CV = &cv
	return nil
}

// ClearCV removes the CV metadata record.
type ClearCV struct{}

func (m ClearCV) apply(p *types.Profile) error {
	p.CV = nil
	return nil
}

// collectionOps adapts one typed slice to the generic add/remove/replace
// operations. typedSlice provides the single implementation.
type collectionOps interface {
	add(item any) error
	remove(index int) error
	replace(index int, item any) error
}

type typedSlice[T any] struct {
	name  Collection
	slice *[]T
}

func (s typedSlice[T]) add(item any) error {
	v, ok := item.(T)
	if !ok {
		return mutationErrorf("collection %q cannot hold %T", s.name, item)
	}
	*s.slice = append(*s.slice, v)
	return nil
}

func (s typedSlice[T]) remove(index int) error {
	if index < 0 || index >= len(*s.slice) {
		return mutationErrorf("index %d out of range for collection %q (len %d)", index, s.name, len(*s.slice))
	}
	*s.slice = append((*s.slice)[:index], (*s.slice)[index+1:]...)
	return nil
}

func (s typedSlice[T]) replace(index int, item any) error {
	if index < 0 || index >= len(*s.slice) {
		return mutationErrorf("index %d out of range for collection %q (len %d)", index, s.name, len(*s.slice))
	}
	v, ok := item.(T)
	if !ok {
		return mutationErrorf("collection %q cannot hold %T", s.name, item)
	}
	(*s.slice)[index] = v
	return nil
}

func withCollection(p *types.Profile, name Collection, fn func(collectionOps) error) error {
	switch name {
	case CollectionSkills:
		return fn(typedSlice[string]{name, &p.Skills})
	case CollectionExperience:
		return fn(typedSlice[types.Experience]{name, &p.Experience})
	case CollectionEducation:
		return fn(typedSlice[types.Education]{name, &p.Education})
	case CollectionProjects:
		return fn(typedSlice[types.Project]{name, &p.Projects})
	case CollectionCertifications:
		return fn(typedSlice[types.Certification]{name, &p.Certifications})
	case CollectionAchievements:
		return fn(typedSlice[types.Achievement]{name, &p.Achievements})
	case CollectionLanguages:
		return fn(typedSlice[types.Language]{name, &p.Languages})
	default:
		return mutationErrorf("unknown collection %q", name)
	}
}
