package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalogYAML = `items:
  - id: 1
    text: "¿Te sientes nervioso?"
    category: estres
  - id: 2
    text: "¿Te cuesta relajarte?"
    category: estres
  - id: 3
    text: "¿Te sientes triste?"
    category: animo
  - id: 4
    text: "¿Disfrutas tus actividades?"
    category: confianza
    reversed: true
safety:
  id: 100
  text: "¿Has pensado en hacerte daño?"
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bateria.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateAcceptsCatalog(t *testing.T) {
	path := writeCatalog(t, validCatalogYAML)

	out, err := execute(t, "", "validate", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Catalog OK: 4 items in 3 categories, safety item 100")
	assert.Contains(t, out, "Estrés y nerviosismo")
	assert.Contains(t, out, "1 reversed item(s)")
	assert.Contains(t, out, "Profile baseline-3 OK: scores 0-12 across 3 tiers")
	assert.Contains(t, out, "warning:")
}

func TestValidateExtendedProfile(t *testing.T) {
	path := writeCatalog(t, validCatalogYAML)

	out, err := execute(t, "", "validate", path, "--profile", "extended-4")
	require.NoError(t, err)

	assert.Contains(t, out, "Profile extended-4 OK: scores 0-12 across 4 tiers")
}

func TestValidateRejectsBrokenCatalog(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing safety item",
			content: `items:
  - id: 1
    text: "uno"
    category: estres
  - id: 2
    text: "dos"
    category: animo
  - id: 3
    text: "tres"
    category: confianza
`,
		},
		{
			name: "duplicate id",
			content: `items:
  - id: 1
    text: "uno"
    category: estres
  - id: 1
    text: "dos"
    category: animo
  - id: 3
    text: "tres"
    category: confianza
safety:
  id: 100
  text: "seguridad"
`,
		},
		{
			name:    "not yaml",
			content: "{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalog(t, tt.content)
			_, err := execute(t, "", "validate", path)
			assert.Error(t, err)
		})
	}
}

func TestValidateMissingFile(t *testing.T) {
	_, err := execute(t, "", "validate", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateUnknownProfile(t *testing.T) {
	path := writeCatalog(t, validCatalogYAML)
	_, err := execute(t, "", "validate", path, "--profile", "five-tier")
	assert.Error(t, err)
}
