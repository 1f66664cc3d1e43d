package version

import (
	"strings"
	"testing"
)

func TestCurrentReflectsOverrides(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	got := Current()
	if got.Version != "1.2.3" || got.Commit != "abc123def456" || got.Date != "2024-01-15T10:30:00Z" {
		t.Errorf("Current() = %+v", got)
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		enabled bool
		want    string
	}{
		{name: "plain", in: "0.3.0-dev", want: "0.3.0-dev"},
		{name: "no suffix", in: "1.2.3", want: "1.2.3"},
		{name: "short", in: "2", want: "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Colored(tt.in, tt.enabled); got != tt.want {
				t.Errorf("Colored(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	colored := Colored("1.2.3-rc1", true)
	if !strings.Contains(colored, "\x1b[") || !strings.HasSuffix(colored, "-rc1") {
		t.Errorf("expected ANSI escapes and suffix, got %q", colored)
	}
}
