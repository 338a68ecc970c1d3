// Package version provides version information for the buildben CLI.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// CUESDKVersion is the CUE SDK version `config vet` validates with.
const CUESDKVersion = "v0.15.4"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string

	// GitCommit is the git commit hash.
	GitCommit string

	// BuildDate is the build timestamp.
	BuildDate string

	// GoVersion is the Go version used to build.
	GoVersion string

	// CUESDKVersion is the CUE SDK version (embedded at build time).
	CUESDKVersion string
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		CUESDKVersion: CUESDKVersion,
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("buildben %s\n  Commit:    %s\n  Built:     %s\n  Go:        %s\n  CUE SDK:   %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.CUESDKVersion)
}
