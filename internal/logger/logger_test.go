package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		"empty defaults to info": {input: "", want: slog.LevelInfo},
		"debug":                  {input: "debug", want: slog.LevelDebug},
		"upper case warn":        {input: "WARN", want: slog.LevelWarn},
		"warning alias":          {input: "warning", want: slog.LevelWarn},
		"error":                  {input: " error ", want: slog.LevelError},
		"unknown":                {input: "trace", want: slog.LevelInfo, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetLoggerCapturesRecords(t *testing.T) {
	prev := defaultLogger
	defer func() { defaultLogger = prev }()

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Debugf("copying %s", "vue-ts")
	Warn("template not found", "template", "react")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "react", rec["template"])
}

func TestSetLoggerIgnoresNil(t *testing.T) {
	prev := defaultLogger
	defer func() { defaultLogger = prev }()

	SetLogger(nil)
	assert.Same(t, prev, defaultLogger)
}

func TestInitLoggerWritesFileUnderStateHome(t *testing.T) {
	prev := defaultLogger
	defer func() { defaultLogger = prev }()

	stateDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateDir)

	InitLogger(Options{Level: "debug", File: true})
	Info("scaffold finished", "template", "vue-ts")

	data, err := os.ReadFile(filepath.Join(stateDir, "iucli", "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"template":"vue-ts"`)
}
