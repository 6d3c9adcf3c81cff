package app

import "fmt"

const notAvailable = "N/A"

// BuildInfo carries build-time metadata injected with -ldflags.
type BuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewBuildInfo replaces empty values with "N/A".
func NewBuildInfo(buildVersion, buildDate, buildCommit string) BuildInfo {
	return BuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (b BuildInfo) BuildVersion() string {
	return b.buildVersion
}

func (b BuildInfo) BuildDate() string {
	return b.buildDate
}

func (b BuildInfo) BuildCommit() string {
	return b.buildCommit
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.buildVersion, b.buildDate, b.buildCommit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
