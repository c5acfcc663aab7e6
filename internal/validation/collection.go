package validation

import "fmt"

// Errors maps a field path (for example "experience_0_startDate") to a
// user-facing message.
type Errors map[string]string

// Add records a message under key, ignoring empty messages so rule functions
// can be chained without nil checks.
func (e Errors) Add(key, msg string) {
	if msg != "" {
		e[key] = msg
	}
}

// Field describes one validated field of a collection entity: its path
// segment, its display label and how to read it off an item.
type Field[T any] struct {
	Name  string
	Label string
	Get   func(T) string
}

// Collection is a generic entity validator parameterized by field schema.
// One schema per entity type replaces the per-entity copies of the same
// required-field loop.
type Collection[T any] struct {
	// Name is the collection's field-path prefix ("experience", "projects").
	Name string
	// Required marks collections that must be non-empty for the profile to
	// validate (experience, education). Optional collections validate their
	// items only when present.
	Required bool
	// RequiredMsg is the collection-level message used when Required is set
	// and the collection is empty.
	RequiredMsg string
	// Fields lists the per-item required fields.
	Fields []Field[T]
	// Item, when set, runs additional per-item rules (date ordering, enum
	// membership). key builds the field path for the current item.
	Item func(item T, key func(field string) string, errs Errors)
}

// Validate applies the schema to items, recording errors into errs. Item
// errors are keyed "{collection}_{index}_{field}".
func (c Collection[T]) Validate(items []T, errs Errors) {
	if len(items) == 0 {
		if c.Required {
			msg := c.RequiredMsg
			if msg == "" {
				msg = fmt.Sprintf("At least one %s entry is required", c.Name)
			}
			errs.Add(c.Name, msg)
		}
		return
	}
	for i, item := range items {
		key := func(field string) string {
			return fmt.Sprintf("%s_%d_%s", c.Name, i, field)
		}
		for _, f := range c.Fields {
			errs.Add(key(f.Name), ValidateRequired(f.Get(item), f.Label))
		}
		if c.Item != nil {
			c.Item(item, key, errs)
		}
	}
}
