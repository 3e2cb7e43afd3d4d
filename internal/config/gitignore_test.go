package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/elvencalc/internal/config"
)

func TestGitignoreContent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".elvencalc")

	tests := []struct {
		name    string
		logFile string
		extra   string
	}{
		{"no log file", "", ""},
		{"log file outside the project", filepath.Join(t.TempDir(), "run.txt"), ""},
		{"log file caught by *.log", filepath.Join(dir, "logs", "calc.log"), ""},
		{"other extension inside the project", filepath.Join(dir, "logs", "calc.txt"), "/logs/calc.txt\n"},
		{"no extension inside the project", filepath.Join(dir, "trace"), "/trace\n"},
		{"the directory itself is not a file", dir, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := config.GitignoreContent(dir, tt.logFile)
			assert.Contains(t, content, "*.log\n")
			assert.NotContains(t, content, "config.yaml", "project config stays tracked")
			if tt.extra == "" {
				assert.Equal(t, config.GitignoreContent(dir, ""), content)
				return
			}
			assert.True(t, strings.HasSuffix(content, tt.extra), "content %q should end with %q", content, tt.extra)
		})
	}
}

func TestEnsureGitignore_WritesTailoredContent(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "sub", ".elvencalc")
	logFile := filepath.Join(dir, "elvencalc.out")

	created, err := config.EnsureGitignore(dir, logFile)
	require.NoError(t, err)
	assert.True(t, created)

	data, readErr := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, readErr)
	assert.Equal(t, config.GitignoreContent(dir, logFile), string(data))
	assert.Contains(t, string(data), "/elvencalc.out\n")
}

func TestEnsureGitignore_NeverOverwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	gitignorePath := filepath.Join(dir, ".gitignore")
	customContent := "# hand-written\n*.secret\n"
	require.NoError(t, os.WriteFile(gitignorePath, []byte(customContent), 0o644))

	created, err := config.EnsureGitignore(dir, filepath.Join(dir, "calc.txt"))
	require.NoError(t, err)
	assert.False(t, created)

	data, readErr := os.ReadFile(gitignorePath)
	require.NoError(t, readErr)
	assert.Equal(t, customContent, string(data))

	created, err = config.EnsureGitignore(dir, "")
	require.NoError(t, err)
	assert.False(t, created, "second call is a no-op")
}

func TestEnsureGitignore_UnwritableDir(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("file permission tests not reliable on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := filepath.Join(t.TempDir(), "readonly")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	created, err := config.EnsureGitignore(dir, "")
	require.Error(t, err)
	assert.False(t, created)
}
