// Package version reports the build version of cyberarsenal.
package version

import "runtime/debug"

// Version is the release version. This can be overridden at build time using ldflags.
var Version = "development"

// Commit is the git commit hash. This can be overridden at build time using ldflags.
var Commit = "unknown"

var readBuildInfo = debug.ReadBuildInfo

// String returns the version with the commit appended when known. Without a
// commit from ldflags the VCS revision stamped by the go tool is used.
func String() string {
	commit := Commit
	if commit == "unknown" || commit == "" {
		commit = vcsRevision()
	}
	if commit == "" {
		return Version
	}
	return Version + "+" + commit
}

func vcsRevision() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key != "vcs.revision" {
			continue
		}
		if len(s.Value) > 7 {
			return s.Value[:7]
		}
		return s.Value
	}
	return ""
}
