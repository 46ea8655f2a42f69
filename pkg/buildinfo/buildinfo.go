// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/kuzur-lang/kuzur/pkg/buildinfo.Var=value" to
// "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/kuzur-lang/kuzur/pkg/prog"
)

// Version identifies the version of Kuzur. On development commits, it
// identifies the next release.
const Version = "v0.5.0"

// VersionSuffix is appended to Version in the output of "kuzur -version" and
// "kuzur -buildinfo" to build the full version string. This can be overridden
// when building Kuzur.
var VersionSuffix = "-dev.unknown"

// Program is the buildinfo subprogram.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version && !f.BuildInfo {
		return prog.ErrNotSuitable
	}
	fullVersion := Version + VersionSuffix
	if f.Version {
		fmt.Fprintln(fds[1], fullVersion)
		return nil
	}
	if f.JSON {
		fmt.Fprintf(fds[1], `{"version":%s,"goversion":%s}`+"\n",
			quoteJSON(fullVersion), quoteJSON(runtime.Version()))
	} else {
		fmt.Fprintln(fds[1], "Version:", fullVersion)
		fmt.Fprintln(fds[1], "Go version:", runtime.Version())
	}
	return nil
}

func quoteJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// Strings always marshal.
		panic(err)
	}
	return string(b)
}
