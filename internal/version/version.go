// Package version reports the build identity of the workerhub binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via -ldflags "-X .../version.Commit=... -X .../version.BuildTime=...".
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version line shown by `workerhub --version`.
func String() string {
	commit, built := Commit, BuildTime
	if commit == "unknown" {
		commit, built = fromBuildInfo(debug.ReadBuildInfo)
	}
	return fmt.Sprintf("workerhub dev (commit: %s, built: %s)", short(commit), built)
}

// fromBuildInfo falls back to the VCS stamp the go tool embeds in binaries
// built from a checkout. A dirty tree gets a "+dirty" suffix.
func fromBuildInfo(read func() (*debug.BuildInfo, bool)) (commit, built string) {
	commit, built = Commit, BuildTime
	info, ok := read()
	if !ok {
		return commit, built
	}
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			built = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty && commit != "unknown" {
		commit = short(commit) + "+dirty"
	}
	return commit, built
}

func short(commit string) string {
	if len(commit) > 7 && commit[7] != '+' {
		return commit[:7]
	}
	return commit
}
