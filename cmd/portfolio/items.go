package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/portfolio-builder/internal/store"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// decodeItem unmarshals a JSON document into the concrete item type of the
// named collection. Skills are plain strings and may be passed bare.
func decodeItem(collection store.Collection, data []byte) (any, error) {
	unmarshal := func(v any) (any, error) {
		if err := json.Unmarshal(data, v); err != nil {
			return nil, fmt.Errorf("failed to parse %s item JSON: %w", collection, err)
		}
		return v, nil
	}

	switch collection {
	case store.CollectionSkills:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			// Bare (unquoted) skill names are accepted as-is.
			return string(data), nil
		}
		return s, nil
	case store.CollectionExperience:
		v, err := unmarshal(&types.Experience{})
		if err != nil {
			return nil, err
		}
		return *(v.(*types.Experience)), nil
	case store.CollectionEducation:
		v, err := unmarshal(&types.Education{})
		if err != nil {
			return nil, err
		}
		return *(v.(*types.Education)), nil
	case store.CollectionProjects:
		v, err := unmarshal(&types.Project{})
		if err != nil {
			return nil, err
		}
		return *(v.(*types.Project)), nil
	case store.CollectionCertifications:
		v, err := unmarshal(&types.Certification{})
		if err != nil {
			return nil, err
		}
		return *(v.(*types.Certification)), nil
	case store.CollectionAchievements:
		v, err := unmarshal(&types.Achievement{})
		if err != nil {
			return nil, err
		}
		return *(v.(*types.Achievement)), nil
	case store.CollectionLanguages:
		v, err := unmarshal(&types.Language{})
		if err != nil {
			return nil, err
		}
		return *(v.(*types.Language)), nil
	default:
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
}

// readItemInput returns the item JSON from --json or --file, exactly one of
// which must be set.
func readItemInput(jsonFlag, fileFlag string) ([]byte, error) {
	if jsonFlag != "" && fileFlag != "" {
		return nil, fmt.Errorf("--json and --file are mutually exclusive")
	}
	if jsonFlag != "" {
		return []byte(jsonFlag), nil
	}
	if fileFlag != "" {
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to read item file: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("one of --json or --file is required")
}
