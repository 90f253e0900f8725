// SPDX-License-Identifier: Apache-2.0

package models

// BuildInfo carries immutable build-time metadata embedded into the binary.
//
// Values are injected by linker flags and shown in the TUI's about
// overlay and the startup log.
type BuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewBuildInfo constructs [BuildInfo] from the provided build metadata.
func NewBuildInfo(buildVersion, buildDate, buildCommit string) BuildInfo {
	return BuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the semantic version string of the build.
func (b BuildInfo) BuildVersion() string {
	return b.buildVersion
}

// BuildDate returns the build timestamp string.
func (b BuildInfo) BuildDate() string {
	return b.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (b BuildInfo) BuildCommit() string {
	return b.buildCommit
}
