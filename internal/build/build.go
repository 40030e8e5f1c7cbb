// Package build holds version metadata set at link time, e.g.
//
//	go build -ldflags "-X go.trai.ch/hdrview/internal/build.Version=v1.2.0 -X go.trai.ch/hdrview/internal/build.Commit=$(git rev-parse --short HEAD)"
package build

var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// Commit is the source revision the binary was built from.
	Commit = "unknown"
)

// String returns the version and commit in one line.
func String() string {
	return Version + " (" + Commit + ")"
}
