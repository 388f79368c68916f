// Package compileinfo reports how the running binary was built, based on the
// version control metadata that the Go toolchain stamps into it.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type BuildInfo struct {
	Path       string
	GoVersion  string
	Commit     string
	CommitTime string
	Dirty      bool
}

func (b BuildInfo) String() string {
	suffix := ""
	if b.Dirty {
		suffix = " The working tree was modified after that commit."
	}

	return fmt.Sprintf("%s built with %s at commit %s (%s).%s", b.Path, b.GoVersion, b.Commit, b.CommitTime, suffix)
}

func Get() BuildInfo {
	out := BuildInfo{}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Path = info.Path
	out.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Dirty = s.Value == "true"
		}
	}

	return out
}

func PrintToStdErr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
