package templates

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"iucli/internal/frameworks"
	"iucli/internal/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCoversRegistry(t *testing.T) {
	t.Parallel()

	problems := Verify(context.Background(), Embedded(), frameworks.Templates())
	assert.Empty(t, problems)
}

func TestEmbeddedManifestsHaveName(t *testing.T) {
	t.Parallel()

	root := Embedded()
	for _, id := range frameworks.Templates() {
		data, err := fs.ReadFile(root, id+"/"+manifest.FileName)
		require.NoError(t, err, id)

		doc, err := manifest.Parse(data)
		require.NoError(t, err, id)
		assert.NotEmpty(t, doc.Name(), id)
	}
}

func TestEmbeddedKeepsUnderscoreAndDotEntries(t *testing.T) {
	t.Parallel()

	root := Embedded()
	_, err := fs.Stat(root, "vue-ts/_gitignore")
	assert.NoError(t, err)
	_, err = fs.Stat(root, "vitepress-starter/docs/.vitepress/config.ts")
	assert.NoError(t, err)
}

func TestVerifyReportsProblems(t *testing.T) {
	t.Parallel()

	root := fstest.MapFS{
		"good/package.json":      {Data: []byte(`{"name":"good","scripts":{"dev":"vite"}}`)},
		"no-manifest/index.html": {Data: []byte(`<html></html>`)},
		"bad/package.json":       {Data: []byte(`{"scripts":{"dev":"vite"}}`)},
		"file-not-dir":           {Data: []byte(`x`)},
	}

	problems := Verify(context.Background(), root, []string{"good", "missing", "no-manifest", "bad", "file-not-dir"})
	require.Len(t, problems, 4)

	got := make([]string, len(problems))
	for i, p := range problems {
		got[i] = p.Template
		assert.Error(t, p)
	}
	assert.Equal(t, []string{"missing", "no-manifest", "bad", "file-not-dir"}, got)
}

func TestVerifyCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	problems := Verify(ctx, fstest.MapFS{}, []string{"a"})
	assert.Len(t, problems, 1)
}

func TestExists(t *testing.T) {
	t.Parallel()

	root := fstest.MapFS{"vue-ts/package.json": {Data: []byte(`{}`)}}

	tests := map[string]struct {
		id   string
		want bool
	}{
		"directory":     {id: "vue-ts", want: true},
		"file":          {id: "vue-ts/package.json", want: false},
		"missing":       {id: "react", want: false},
		"dot":           {id: ".", want: false},
		"parent escape": {id: "../vue-ts", want: false},
		"empty":         {id: "", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Exists(root, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoot(t *testing.T) {
	t.Parallel()

	root, err := Root("")
	require.NoError(t, err)
	ok, err := Exists(root, "vue-ts")
	require.NoError(t, err)
	assert.True(t, ok)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "custom"), 0o755))
	root, err = Root(dir)
	require.NoError(t, err)
	ok, err = Exists(root, "custom")
	require.NoError(t, err)
	assert.True(t, ok)

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = Root(file)
	assert.Error(t, err)

	_, err = Root(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}
