// Package version exposes build metadata, set at link time through -ldflags.
package version

//nolint:gochecknoglobals // overridden by the linker
var (
	name    = "hanscan"
	version = "dev"
	commit  = "unknown"
)

// Name returns the binary name.
func Name() string {
	return name
}

// Version returns the release version.
func Version() string {
	return version
}

// Commit returns the VCS revision the binary was built from.
func Commit() string {
	return commit
}
