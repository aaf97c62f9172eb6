// Package version reports build metadata stamped in with -ldflags
package version

import "runtime"

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Set via -ldflags "-X 'tweetscore/internal/core/version.version=v0.1.0'
// -X 'tweetscore/internal/core/version.commit=abcd' -X 'tweetscore/internal/core/version.date=2026-01-01'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information for the named service binary
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
}

// String is the short form used in startup logs
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ")"
}
