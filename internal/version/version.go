// Package version holds the tegen build metadata stamped in by the linker:
//
//	go build -ldflags "-X github.com/rickgao/temarket-data/internal/version.Version=0.3.0 \
//	                   -X github.com/rickgao/temarket-data/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/temarket-data/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/tegen
//
// Unstamped builds report "dev".
package version

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String is the line printed by "tegen version", e.g.
// "tegen 0.3.0 (a1b2c3d) built 2026-10-19T08:00:00Z".
func String() string {
	return "tegen " + Version + " (" + Commit + ") built " + BuildTime
}
