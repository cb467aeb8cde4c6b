// Package build holds build-time information.
package build

// Version and Commit are set with -ldflags "-X go.trai.ch/sanity/internal/build.Version=...".
var (
	Version = "dev"
	Commit  = ""
)

// String returns the version, followed by the commit when one was recorded.
func String() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
