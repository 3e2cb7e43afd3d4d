package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// gitignoreHeader starts every generated project .gitignore. Project config
// is tracked; anything elvencalc logs into the directory is not.
const gitignoreHeader = `# elvencalc project-local data (auto-generated)
# Config is tracked; logs are not.
*.log
`

// GitignoreContent returns the .gitignore written into the project
// directory dir. A configured log file inside dir that *.log would miss is
// listed by its path relative to dir.
func GitignoreContent(dir, logFile string) string {
	rel, ok := logFileInDir(dir, logFile)
	if !ok || filepath.Ext(rel) == ".log" {
		return gitignoreHeader
	}
	return gitignoreHeader + "/" + filepath.ToSlash(rel) + "\n"
}

// logFileInDir reports the path of logFile relative to dir when it lies
// inside dir.
func logFileInDir(dir, logFile string) (string, bool) {
	if logFile == "" {
		return "", false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	absLog, err := filepath.Abs(logFile)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absDir, absLog)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

// EnsureGitignore creates dir/.gitignore with GitignoreContent(dir, logFile)
// if none exists. Returns true if a new file was created. An existing
// .gitignore is never overwritten.
func EnsureGitignore(dir, logFile string) (bool, error) {
	gitignorePath := filepath.Join(dir, ".gitignore")

	_, err := os.Stat(gitignorePath)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking .gitignore at %s: %w", gitignorePath, err)
	}

	if err = os.MkdirAll(dir, 0o750); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	//nolint:gosec // .gitignore must be world-readable (0644).
	if err = os.WriteFile(gitignorePath, []byte(GitignoreContent(dir, logFile)), 0o644); err != nil {
		return false, fmt.Errorf("writing .gitignore at %s: %w", gitignorePath, err)
	}
	return true, nil
}
