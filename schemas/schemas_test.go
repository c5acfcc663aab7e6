package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/portfolio-builder/internal/schemas"
)

var schemaFiles = []string{
	"profile.schema.json",
	"portfolio.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			loader := gojsonschema.NewBytesLoader(data)
			_, err = gojsonschema.NewSchema(loader)
			assert.NoError(t, err, "schema should compile: %s", schemaFile)
		})
	}
}

func TestProfileSchema_AcceptsStoredDocument(t *testing.T) {
	doc := `{
		"id": "prof_001",
		"name": "Jane Doe",
		"email": "jane@example.com",
		"skills": ["Go"],
		"experience": [
			{"position": "Engineer", "company": "Acme", "startDate": "2020-01-01", "isPresent": true}
		],
		"template": "modern"
	}`

	schemaData, err := os.ReadFile("profile.schema.json")
	require.NoError(t, err)
	assert.NoError(t, schemas.ValidateJSONString(string(schemaData), doc))
}

func TestProfileSchema_RejectsUnknownEnumValues(t *testing.T) {
	doc := `{
		"id": "prof_001",
		"projects": [
			{"name": "P", "description": "d", "status": "Done"}
		]
	}`

	schemaData, err := os.ReadFile("profile.schema.json")
	require.NoError(t, err)
	err = schemas.ValidateJSONString(string(schemaData), doc)

	var verr *schemas.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestPortfolioSchema_RequiresPersonalInfo(t *testing.T) {
	schemaData, err := os.ReadFile("portfolio.schema.json")
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(string(schemaData), `{"personalInfo":{"name":"Jane"}}`))

	var verr *schemas.ValidationError
	assert.ErrorAs(t, schemas.ValidateJSONString(string(schemaData), `{"skills":[]}`), &verr)
}
