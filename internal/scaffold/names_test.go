package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTargetDir(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want string
	}{
		"empty":              {in: "", want: ""},
		"whitespace":         {in: "   ", want: ""},
		"plain":              {in: "demo", want: "demo"},
		"trailing slashes":   {in: "demo///", want: "demo"},
		"surrounding spaces": {in: "  demo/ ", want: "demo"},
		"nested":             {in: "apps/demo/", want: "apps/demo"},
		"only slashes":       {in: "/", want: "."},
		"current dir":        {in: ".", want: "."},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatTargetDir(tt.in))
		})
	}
}

func TestIsValidPackageName(t *testing.T) {
	t.Parallel()

	valid := []string{"demo", "my-iu-app", "@scope/demo", "a.b_c~d", "123"}
	for _, name := range valid {
		assert.True(t, IsValidPackageName(name), name)
		assert.NoError(t, ValidatePackageName(name), name)
	}

	invalid := []string{"", "Demo", "my app", ".hidden", "_private", "a/b", "@scope/", "café"}
	for _, name := range invalid {
		assert.False(t, IsValidPackageName(name), name)
		assert.ErrorIs(t, ValidatePackageName(name), ErrInvalidPackageName, name)
	}
}

func TestToValidPackageName(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want string
	}{
		"lowercases":          {in: "MyApp", want: "myapp"},
		"spaces become dash":  {in: "Hello  World", want: "hello-world"},
		"leading dot dropped": {in: ".hidden", want: "hidden"},
		"underscore replaced": {in: "my_app!", want: "my-app-"},
		"accents stripped":    {in: "Café Crème", want: "cafe-creme"},
		"trims":               {in: "  demo  ", want: "demo"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := ToValidPackageName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsValidPackageName(got))
		})
	}
}

func TestPackageManagerFromUserAgent(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		ua    string
		want  PackageManager
		found bool
	}{
		"pnpm":     {ua: "pnpm/9.1.0 npm/? node/v20.11.0 linux x64", want: PackageManager{Name: "pnpm", Version: "9.1.0"}, found: true},
		"yarn":     {ua: "yarn/1.22.19 npm/? node/v18.0.0 darwin arm64", want: PackageManager{Name: "yarn", Version: "1.22.19"}, found: true},
		"no slash": {ua: "bun", want: PackageManager{Name: "bun"}, found: true},
		"empty":    {ua: ""},
		"blank":    {ua: "   "},
		"no name":  {ua: "/1.0.0"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := PackageManagerFromUserAgent(tt.ua)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextSteps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"yarn", "yarn dev"}, PackageManager{Name: "yarn"}.NextSteps())
	assert.Equal(t, []string{"pnpm install", "pnpm run dev"}, PackageManager{Name: "pnpm"}.NextSteps())
	assert.Equal(t, []string{"npm install", "npm run dev"}, PackageManager{Name: "npm"}.NextSteps())
}
