package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDebug(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetDebug(false) })

	SetDebug(false)
	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetDebug(true)
	Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "[debug]")
}

func TestInitFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitFile(dir))
	t.Cleanup(Close)

	Warn("disk almost full")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^oklink_.*\.log$`, entries[0].Name())

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"level":"warn"`)
	assert.Contains(t, string(content), `"message":"disk almost full"`)
}

func TestInitFile_KeepsDebugLevel(t *testing.T) {
	t.Cleanup(func() { SetDebug(false) })
	t.Cleanup(Close)

	SetDebug(true)
	require.NoError(t, InitFile(t.TempDir()))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	SetDebug(false)
	require.NoError(t, InitFile(t.TempDir()))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestDebugFromEnvironment(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"", false},
		{"yes please", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(DebugEnv, tt.value)
			assert.Equal(t, tt.want, DebugFromEnvironment())
		})
	}
}

func TestInit_FollowsDebugEnv(t *testing.T) {
	t.Cleanup(func() { SetDebug(false) })

	t.Setenv(DebugEnv, "false")
	Init()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	t.Setenv(DebugEnv, "true")
	Init()
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
