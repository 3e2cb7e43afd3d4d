// Package version exposes build information injected at link time.
package version

// Set via -ldflags "-X github.com/rshade/elvencalc/pkg/version.version=...".
var (
	version = "0.0.0-dev" //nolint:gochecknoglobals // ldflags target
	commit  = "none"      //nolint:gochecknoglobals // ldflags target
)

// GetVersion returns the semantic version of this build.
func GetVersion() string {
	return version
}

// GetCommit returns the git commit this build was made from.
func GetCommit() string {
	return commit
}
