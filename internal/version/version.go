// Package version holds the build version, set at link time with
// -ldflags "-X github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/version.Version=1.2.3".
package version

// Version is the application version.
var Version = "dev"
