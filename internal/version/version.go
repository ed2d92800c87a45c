// Package version carries build metadata. Release builds fill in the commit
// and build time through the linker:
//
//	go build -ldflags "-X github.com/alexiusacademia/stringlift/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "fmt"

var (
	Version   = "0.3.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2026"
)

// Short is the one-line version shown by `stringlift version`. Development
// builds leave out the commit and build time.
func Short() string {
	if GitCommit == "unknown" && BuildTime == "unknown" {
		return "stringlift v" + Version
	}
	return fmt.Sprintf("stringlift v%s (%s, built %s)", Version, GitCommit, BuildTime)
}
