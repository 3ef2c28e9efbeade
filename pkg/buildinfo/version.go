// Package buildinfo holds the version stamped into the miniworld binary.
//
// The variables are set with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/miniworld/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/miniworld/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/miniworld/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/miniworld
package buildinfo

import "fmt"

var (
	// Version is the semantic version, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// Dev reports whether the binary was built without version ldflags.
func Dev() bool { return Version == "dev" }

// Template returns the cobra version template.
func Template() string {
	if Dev() {
		return "{{.Name}} development build\n"
	}
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
