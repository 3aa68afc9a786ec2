package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "toolshelf/backend/pkg/errors"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `tools:
  - id: word-counter
    name: Word Counter
    description: Count words
    path: /tools/word-counter
    category: Text
    icon: FileText
    tags: [Word, count]
    featured: true
  - id: color-picker
    name: Color Picker
    description: Pick colours
    path: /tools/color-picker
    category: Design
    icon: Pipette
    isNew: true
`

func TestDecode_YAML(t *testing.T) {
	reg, err := Decode(strings.NewReader(sampleYAML), FormatYAML)
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())

	d, err := reg.Get("word-counter")
	require.NoError(t, err)
	assert.Equal(t, CategoryText, d.Category)
	assert.Equal(t, []string{"word", "count"}, d.Tags)
	assert.True(t, d.Featured)

	assert.Equal(t, []string{"color-picker"}, ids(reg.NewTools()))
}

func TestDecode_UnknownFieldRejected(t *testing.T) {
	_, err := Decode(strings.NewReader("tools:\n  - id: a\n    colour: red\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`{"tools":[{"id":"a","colour":"red"}]}`), FormatJSON)
	assert.Error(t, err)
}

func TestDecode_EmptyDocument(t *testing.T) {
	reg, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
}

func TestEncodeDecode_PreservesRegistry(t *testing.T) {
	reg := Builtin()
	for _, format := range []Format{FormatYAML, FormatJSON} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, reg.All(), format))

		back, err := Decode(&buf, format)
		require.NoError(t, err, format)
		if diff := cmp.Diff(reg.All(), back.All()); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", format, diff)
		}
	}
}

func TestEncode_JSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	tools := []Descriptor{{ID: "a", Name: "A", Path: "/a", Category: CategoryText, IsNew: true, IsFeatured: true}}
	require.NoError(t, Encode(&buf, tools, FormatJSON))
	out := buf.String()
	for _, key := range []string{`"id"`, `"name"`, `"description"`, `"path"`, `"category"`, `"icon"`, `"tags"`, `"featured"`, `"isNew"`, `"isFeatured"`} {
		assert.Contains(t, out, key)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	reg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.IsType(t, &apperrors.ErrCatalogLoadFailed{}, err)
}

func TestLoadFile_InvalidRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.json")
	body := `{"tools":[{"id":"a","name":"A","path":"/a","category":"Text"},{"id":"a","name":"B","path":"/b","category":"Text"}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeCatalog))
}

func TestOpen_DefaultsToBuiltin(t *testing.T) {
	reg, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, Builtin().Len(), reg.Len())
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("x/tools.JSON"))
	assert.Equal(t, FormatYAML, FormatFromPath("tools.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("tools"))
}
