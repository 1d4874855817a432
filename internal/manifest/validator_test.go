package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input     string
		wantValid bool
		wantPath  string
	}{
		"valid template manifest": {
			input:     templateManifest,
			wantValid: true,
		},
		"missing name": {
			input:    `{"scripts": {"dev": "vite"}}`,
			wantPath: "",
		},
		"name not a string": {
			input:    `{"name": 3, "scripts": {"dev": "vite"}}`,
			wantPath: "/name",
		},
		"missing dev script": {
			input:    `{"name": "a", "scripts": {"build": "vite build"}}`,
			wantPath: "/scripts",
		},
		"dependency version not a string": {
			input:    `{"name": "a", "scripts": {"dev": "vite"}, "dependencies": {"vue": 3}}`,
			wantPath: "/dependencies/vue",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result, err := Validate([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)
			if tt.wantValid {
				assert.Empty(t, result.Issues)
				return
			}
			require.NotEmpty(t, result.Issues)
			assert.Equal(t, tt.wantPath, result.Issues[0].Path)
			assert.NotEmpty(t, result.Issues[0].Message)
		})
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := Validate([]byte(`{"name":`))
	assert.Error(t, err)
}
