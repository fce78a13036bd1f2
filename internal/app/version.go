package app

import "fmt"

// Version, Commit and BuildTime are injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/heartmarshall/notes-backend/internal/app.Version=1.0.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported at startup and by /health.
func BuildVersion() string {
	if Commit == "unknown" && BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
