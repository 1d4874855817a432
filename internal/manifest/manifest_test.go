package manifest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templateManifest = `{
  "name": "vue-ts-starter",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "vue-tsc -b && vite build"
  },
  "dependencies": {"vue": "^3.5.13"},
  "devDependencies": {},
  "keywords": []
}`

func TestParsePreservesKeyOrder(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(templateManifest))
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"name", "private", "version", "type", "scripts", "dependencies", "devDependencies", "keywords"},
		doc.Keys())
	assert.Equal(t, "vue-ts-starter", doc.Name())
}

func TestSetNameRoundTrip(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(templateManifest))
	require.NoError(t, err)
	require.NoError(t, doc.SetName("demo"))

	out, err := doc.Marshal()
	require.NoError(t, err)

	var got, want map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	require.NoError(t, json.Unmarshal([]byte(templateManifest), &want))

	assert.Equal(t, "demo", got["name"])
	delete(got, "name")
	delete(want, "name")
	assert.Equal(t, want, got)

	reparsed, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, doc.Keys(), reparsed.Keys())
}

func TestMarshalIndentsTwoSpaces(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"name":"a","scripts":{"dev":"vite"},"files":[],"n":1}`))
	require.NoError(t, err)

	out, err := doc.Marshal()
	require.NoError(t, err)

	want := `{
  "name": "a",
  "scripts": {
    "dev": "vite"
  },
  "files": [],
  "n": 1
}
`
	assert.Equal(t, want, string(out))
}

func TestSetNameAppendsWhenMissing(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"version":"1.0.0"}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Name())

	require.NoError(t, doc.SetName("@scope/pkg"))
	assert.Equal(t, []string{"version", "name"}, doc.Keys())
	assert.Equal(t, "@scope/pkg", doc.Name())
}

func TestParseDuplicateKeys(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"name":"first","version":"1","name":"second"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "version"}, doc.Keys())
	assert.Equal(t, "second", doc.Name())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"array":          `["name"]`,
		"string":         `"name"`,
		"truncated":      `{"name": "a"`,
		"trailing data":  `{"name": "a"} {}`,
		"empty input":    ``,
		"invalid syntax": `{name: "a"}`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsNonObjectWithSentinel(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`[]`))
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestMarshalEmptyDocument(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	out, err := doc.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(out))
}
