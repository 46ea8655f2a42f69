package shell

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/kuzur-lang/kuzur/pkg/must"
	. "github.com/kuzur-lang/kuzur/pkg/prog/progtest"
	"github.com/kuzur-lang/kuzur/pkg/store"
)

func writeScript(t *testing.T, name, code string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	must.WriteFile(fname, code)
	return fname
}

func TestScript(t *testing.T) {
	fname := writeScript(t, "hello.kz", `print("hello from a script")`+"\n")
	got := Run(t, Program{}, "", "kuzur", fname)
	if got.Exit != 0 || got.Stdout != "hello from a script\n" {
		t.Errorf("got exit %d, stdout %q", got.Exit, got.Stdout)
	}
}

func TestScript_WrongExtension(t *testing.T) {
	fname := writeScript(t, "hello.txt", "print(1)\n")
	got := Run(t, Program{}, "", "kuzur", fname)
	if got.Exit != 2 || !strings.Contains(got.Stderr, "does not end in .kz") {
		t.Errorf("got exit %d, stderr %q", got.Exit, got.Stderr)
	}
}

func TestScript_MissingFile(t *testing.T) {
	got := Run(t, Program{}, "", "kuzur",
		filepath.Join(t.TempDir(), "nonexistent.kz"))
	if got.Exit != 2 || !strings.Contains(got.Stderr, "cannot read script") {
		t.Errorf("got exit %d, stderr %q", got.Exit, got.Stderr)
	}
}

func TestScript_RuntimeError(t *testing.T) {
	fname := writeScript(t, "oops.kz", "print(missing)\n")
	got := Run(t, Program{}, "", "kuzur", fname)
	if got.Exit != 2 || !strings.Contains(got.Stderr, `undefined name "missing"`) {
		t.Errorf("got exit %d, stderr %q", got.Exit, got.Stderr)
	}
}

func TestCodeInArg(t *testing.T) {
	got := Run(t, Program{}, "", "kuzur", "-c", "print(6 * 7)")
	if got.Exit != 0 || got.Stdout != "42\n" {
		t.Errorf("got exit %d, stdout %q", got.Exit, got.Stdout)
	}
}

func TestCodeInArg_NoArg(t *testing.T) {
	got := Run(t, Program{}, "", "kuzur", "-c")
	if got.Exit != 2 {
		t.Errorf("got exit %d, want 2", got.Exit)
	}
}

func TestCompileOnly_OK(t *testing.T) {
	fname := writeScript(t, "ok.kz", "x = 1\nprint(x)\n")
	got := Run(t, Program{}, "", "kuzur", "-compileonly", fname)
	if got.Exit != 0 || got.Stdout != "" {
		t.Errorf("got exit %d, stdout %q", got.Exit, got.Stdout)
	}
}

func TestCompileOnly_ParseError(t *testing.T) {
	fname := writeScript(t, "bad.kz", "if x {\n")
	got := Run(t, Program{}, "", "kuzur", "-compileonly", fname)
	if got.Exit != 2 || !strings.Contains(got.Stderr, "Parse error") {
		t.Errorf("got exit %d, stderr %q", got.Exit, got.Stderr)
	}
}

func TestCompileOnly_JSON(t *testing.T) {
	fname := writeScript(t, "bad.kz", "if x {\n")
	got := Run(t, Program{}, "", "kuzur", "-compileonly", "-json", fname)
	if got.Exit != 2 {
		t.Errorf("got exit %d, want 2", got.Exit)
	}
	if !strings.HasPrefix(got.Stdout, `[{"fileName"`) {
		t.Errorf("stdout is not a JSON error list: %q", got.Stdout)
	}
}

func TestCompileOnly_JSON_OK(t *testing.T) {
	fname := writeScript(t, "ok.kz", "print(1)\n")
	got := Run(t, Program{}, "", "kuzur", "-compileonly", "-json", fname)
	if got.Exit != 0 || strings.TrimSpace(got.Stdout) != "[]" {
		t.Errorf("got exit %d, stdout %q", got.Exit, got.Stdout)
	}
}

func TestInteract(t *testing.T) {
	got := Run(t, Program{}, "x = 7\nprint(x * 6)\n",
		"kuzur", "-norc", "-db", dbInTemp(t))
	if got.Exit != 0 || got.Stdout != "42\n" {
		t.Errorf("got exit %d, stdout %q", got.Exit, got.Stdout)
	}
}

func TestInteract_ErrorDoesNotStopLoop(t *testing.T) {
	got := Run(t, Program{}, "missing\nprint(1)\n",
		"kuzur", "-norc", "-db", dbInTemp(t))
	if got.Exit != 0 || got.Stdout != "1\n" {
		t.Errorf("got exit %d, stdout %q", got.Exit, got.Stdout)
	}
	if !strings.Contains(got.Stderr, `undefined name "missing"`) {
		t.Errorf("stderr does not show the error: %q", got.Stderr)
	}
}

func TestInteract_GlobalPersistsAcrossLines(t *testing.T) {
	got := Run(t, Program{}, "func f(n) { return n + 1 }\nprint(f(1))\n",
		"kuzur", "-norc", "-db", dbInTemp(t))
	if got.Stdout != "2\n" {
		t.Errorf("stdout = %q, want %q", got.Stdout, "2\n")
	}
}

func TestInteract_RC(t *testing.T) {
	rc := writeScript(t, "rc.kz", "greeting = \"hi\"\n")
	got := Run(t, Program{}, "print(greeting)\n",
		"kuzur", "-rc", rc, "-db", dbInTemp(t))
	if got.Stdout != "hi\n" {
		t.Errorf("stdout = %q, want %q", got.Stdout, "hi\n")
	}
}

func TestInteract_SavesHistory(t *testing.T) {
	db := dbInTemp(t)
	got := Run(t, Program{}, "print(1 + 1)\n", "kuzur", "-norc", "-db", db)
	if got.Exit != 0 {
		t.Fatalf("exit = %d, want 0", got.Exit)
	}
	st := must.OK1(store.NewStore(db))
	defer st.Close()
	cmd, err := st.Cmd(1)
	if err != nil || cmd != "print(1 + 1)" {
		t.Errorf("Cmd(1) -> %q, %v, want %q, nil", cmd, err, "print(1 + 1)")
	}
}

func TestInteract_TooManyArgs(t *testing.T) {
	got := Run(t, Program{}, "", "kuzur", "a.kz", "b.kz")
	if got.Exit != 2 || !strings.Contains(got.Stderr, "at most one script") {
		t.Errorf("got exit %d, stderr %q", got.Exit, got.Stderr)
	}
}

func dbInTemp(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "db.bolt")
}
