// Package export implements the JSON export/import boundary for portfolio
// display projections.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/portfolio-builder/internal/types"
)

// ImportError represents a rejected import: malformed JSON or a document
// missing the personalInfo.name field. Callers receive the safe default
// projection alongside it; an import failure never propagates as a fault.
type ImportError struct {
	Message string
	Cause   error
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("import error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("import error: %s", e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}

// Portfolio produces the pretty-printed JSON form of a display projection.
func Portfolio(p *types.Portfolio) (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal portfolio to JSON: %w", err)
	}
	return string(data), nil
}

// Import parses an exported portfolio document. The only structural check is
// that personalInfo.name is present and non-empty; anything else that parses
// is accepted as-is. On malformed input the empty default projection is
// returned together with an *ImportError, so the caller always has a usable
// projection.
func Import(data []byte) (*types.Portfolio, error) {
	var p types.Portfolio
	if err := json.Unmarshal(data, &p); err != nil {
		return types.DefaultPortfolio(), &ImportError{Message: "malformed JSON", Cause: err}
	}
	if p.PersonalInfo.Name == "" {
		return types.DefaultPortfolio(), &ImportError{Message: "missing personalInfo.name"}
	}
	if p.Template == "" {
		p.Template = types.DefaultTemplate
	}
	return &p, nil
}
