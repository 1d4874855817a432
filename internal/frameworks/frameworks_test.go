package frameworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesFlattensVariants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"vue-ts", "vitepress-starter"}, Templates())
}

func TestTemplatesAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, id := range Templates() {
		assert.False(t, seen[id], "duplicate template id %q", id)
		seen[id] = true
	}
}

func TestIsTemplate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		id   string
		want bool
	}{
		"variant id":                 {id: "vue-ts", want: true},
		"framework without variants": {id: "vitepress-starter", want: true},
		"framework with variants":    {id: "vue", want: false},
		"empty":                      {id: "", want: false},
		"unknown":                    {id: "react-ts", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsTemplate(tt.id))
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	f, v, ok := Lookup("vue-ts")
	require.True(t, ok)
	assert.Equal(t, "vue", f.ID)
	assert.Equal(t, "TypeScript", v.Label())

	f, v, ok = Lookup("vitepress-starter")
	require.True(t, ok)
	assert.Equal(t, "VitePress", f.Label())
	assert.Empty(t, v.ID)

	_, _, ok = Lookup("vue")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()

	all := All()
	all[0].Variants[0].ID = "mutated"

	assert.Equal(t, "vue-ts", All()[0].Variants[0].ID)
}
