package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origBuildTime := Version, Commit, BuildTime
	defer func() {
		Version, Commit, BuildTime = origVersion, origCommit, origBuildTime
	}()

	Version = "1.2.0"
	Commit = "abc1234"
	BuildTime = "2026-01-02T03:04:05Z"

	want := "tegen 1.2.0 (abc1234) built 2026-01-02T03:04:05Z"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !strings.HasPrefix(String(), "tegen ") {
		t.Errorf("String() = %q, should start with the binary name", String())
	}
}
