package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	if Version == "" || BuildTime == "" || GitCommit == "" {
		t.Fatal("build metadata must never be empty")
	}
	s := String()
	if !strings.HasPrefix(s, "mpbuild "+Version) {
		t.Errorf("String() = %q, want prefix %q", s, "mpbuild "+Version)
	}
	if !strings.Contains(s, GitCommit) {
		t.Errorf("String() = %q, missing commit", s)
	}
}
