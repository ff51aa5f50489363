// Package version exposes build version information.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is overridable with ldflags at build time.
	Version = "dev"
	// CommitHash is the git revision, overridable with ldflags.
	CommitHash = ""
)

// Info returns the version string, with a short commit hash when known.
func Info() string {
	if CommitHash == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					CommitHash = setting.Value
				}
			}
		}
	}

	res := Version
	if CommitHash != "" {
		short := CommitHash
		if len(short) > 7 {
			short = short[:7]
		}
		res += fmt.Sprintf(" (%s)", short)
	}
	return res
}
