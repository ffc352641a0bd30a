// Package build holds build metadata injected at link time.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// String renders Info on one line.
func (i Info) String() string {
	return fmt.Sprintf("darkwatch %s (%s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/darkwatch"
}
