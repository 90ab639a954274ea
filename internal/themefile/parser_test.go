package themefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

const oceanTheme = `version: "1.0.0"
name: ocean
base: dark
features:
  - name: ribbon.group.collapsed.text
    states:
      tracking:
        text_color: "#ff0000"
      common:
        text_color: "#0ea5e9"
  - name: ribbon.group.normal.text
    redirect: ribbon.group.collapsed.text
  - name: button.standalone
    states:
      normal:
        padding: "2"
        border: double
        font: "mono:12:bold"
`

func TestLoad(t *testing.T) {
	t.Parallel()

	invalidYAML := `version: [1, 0]
name: broken
`

	unknownKey := `version: "1.0.0"
name: typo
bsae: dark
`

	missingName := `version: "1.0.0"
`

	badVersion := `version: "beta"
name: bad
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid theme is parsed",
			contents: oceanTheme,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.NotNil(t, doc)
				assert.Equal(t, "ocean", doc.Name)
				assert.Equal(t, "dark", doc.BaseName())
				require.Len(t, doc.Features, 3)
				assert.Equal(t, "#ff0000", doc.Features[0].States["tracking"]["text_color"])
				assert.Equal(t, "ribbon.group.collapsed.text", doc.Features[1].Redirect)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: invalidYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *pkgerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Message, "cannot unmarshal")
				assert.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: unknownKey,
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *pkgerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Message, "bsae")
				assert.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:     "missing name returns validation error",
			contents: missingName,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *pkgerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, "name")
			},
		},
		{
			name:     "version must be semantic",
			contents: badVersion,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *pkgerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, "version")
			},
		},
		{
			name:     "empty file",
			contents: "",
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *pkgerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Message, "empty")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempTheme(t, tc.contents)
			doc, err := Load(path, nil)
			tc.assert(t, doc, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	var parseErr *pkgerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Zero(t, parseErr.Line)
}

func TestExtractLine(t *testing.T) {
	assert.Equal(t, 0, extractLine(nil))
	assert.Equal(t, 0, extractLine(assert.AnError))
	assert.Equal(t, 12, extractLine(errors.New("yaml: line 12: did not find expected key")))
}

func writeTempTheme(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadShippedExample(t *testing.T) {
	t.Parallel()

	doc, err := Load(filepath.Join("..", "..", "examples", "themes", "ocean.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, "ocean", doc.Name)
	assert.Equal(t, "dark", doc.BaseName())
	assert.Len(t, doc.Features, 3)
}
