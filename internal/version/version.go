/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports the stepex build version.
package version

import (
	"runtime/debug"
)

// Version may be set at build time with -ldflags "-X ...version.Version=v1.2.3".
var Version = "dev"

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
}

// Get returns the version string.
func Get() string {
	return Read().String()
}

// Read collects version information from the linker flag and the module
// and VCS metadata embedded by the go command.
func Read() Info {
	info := Info{Version: Version}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.time":
			info.BuildTime = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// String renders the version with a short commit suffix for development
// builds.
func (i Info) String() string {
	v := i.Version
	if v != "dev" || i.Commit == "" {
		return v
	}
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	v += "-" + commit
	if i.Dirty {
		v += "-dirty"
	}
	return v
}
