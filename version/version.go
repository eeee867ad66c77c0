// Package version provides build version information and the version
// command for duckurl.
package version

import "fmt"

// Set via ldflags, e.g.
//
//	go build -ldflags "-X github.com/jongio/duckurl/version.Version=1.0.0"
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info holds version information for a binary.
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

// New creates an Info from the ldflags-provided variables.
func New(name string) *Info {
	return &Info{
		Name:      name,
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}

// UserAgent returns the User-Agent sent to the duck API.
func (i *Info) UserAgent() string {
	return fmt.Sprintf("%s/%s", i.Name, i.Version)
}
