// Package version carries build metadata for the place CLI.
// The variables can be overridden at build time via -ldflags.
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.3.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Info is the JSON shape of `place version --format json`.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Message string `json:"message,omitempty"`
	Date    string `json:"date,omitempty"`
}

// Current returns the linked-in build metadata.
func Current() Info {
	return Info{Version: Version, Commit: GitCommit, Message: GitMessage, Date: BuildDate}
}

// Colored renders v with major, minor and patch in distinct colors.
// Pre-release suffixes stay uncolored.
func Colored(v string, enabled bool) string {
	core, suffix, _ := strings.Cut(v, "-")
	parts := strings.SplitN(core, ".", 3)
	palette := []*color.Color{
		color.New(color.FgYellow, color.Bold),
		color.New(color.FgGreen, color.Bold),
		color.New(color.FgBlue, color.Bold),
	}
	for i, p := range parts {
		c := palette[i]
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		parts[i] = c.Sprint(p)
	}
	out := strings.Join(parts, ".")
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}
