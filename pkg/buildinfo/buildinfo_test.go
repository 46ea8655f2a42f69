package buildinfo

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	. "github.com/kuzur-lang/kuzur/pkg/prog/progtest"
)

func TestProgram_Version(t *testing.T) {
	got := Run(t, Program, "", "kuzur", "-version")
	want := Version + VersionSuffix + "\n"
	if got.Exit != 0 || got.Stdout != want {
		t.Errorf("got exit %d, stdout %q; want 0, %q",
			got.Exit, got.Stdout, want)
	}
}

func TestProgram_BuildInfo(t *testing.T) {
	got := Run(t, Program, "", "kuzur", "-buildinfo")
	if got.Exit != 0 {
		t.Errorf("exit = %d, want 0", got.Exit)
	}
	if !strings.Contains(got.Stdout, Version+VersionSuffix) ||
		!strings.Contains(got.Stdout, runtime.Version()) {
		t.Errorf("stdout does not contain version info:\n%s", got.Stdout)
	}
}

func TestProgram_BuildInfoJSON(t *testing.T) {
	got := Run(t, Program, "", "kuzur", "-buildinfo", "-json")
	var decoded struct {
		Version   string `json:"version"`
		GoVersion string `json:"goversion"`
	}
	if err := json.Unmarshal([]byte(got.Stdout), &decoded); err != nil {
		t.Fatalf("stdout is not valid JSON: %v\n%s", err, got.Stdout)
	}
	if decoded.Version != Version+VersionSuffix {
		t.Errorf("version = %q, want %q",
			decoded.Version, Version+VersionSuffix)
	}
	if decoded.GoVersion != runtime.Version() {
		t.Errorf("goversion = %q, want %q", decoded.GoVersion, runtime.Version())
	}
}

func TestProgram_NotSuitable(t *testing.T) {
	got := Run(t, Program, "", "kuzur")
	if got.Exit != 2 || !strings.Contains(got.Stderr, "internal error") {
		t.Errorf("got exit %d, stderr %q; want 2 and internal error",
			got.Exit, got.Stderr)
	}
}
