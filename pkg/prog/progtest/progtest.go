// Package progtest provides utilities for testing subprograms.
package progtest

import (
	"io"
	"os"
	"testing"

	"github.com/kuzur-lang/kuzur/pkg/must"
	"github.com/kuzur-lang/kuzur/pkg/prog"
)

// Result of running a subprogram.
type Result struct {
	Exit   int
	Stdout string
	Stderr string
}

// Run runs a subprogram with the given command line and input, capturing its
// output. The first element of args is the program name.
func Run(t *testing.T, p prog.Program, input string, args ...string) Result {
	t.Helper()
	stdin := fileWithContent(t, input)
	stdout, getStdout := outputPipe(t)
	stderr, getStderr := outputPipe(t)
	exit := prog.Run([3]*os.File{stdin, stdout, stderr}, args, p)
	return Result{exit, getStdout(), getStderr()}
}

func fileWithContent(t *testing.T, content string) *os.File {
	t.Helper()
	r, w := must.OK2(os.Pipe())
	t.Cleanup(func() { r.Close() })
	go func() {
		w.WriteString(content)
		w.Close()
	}()
	return r
}

func outputPipe(t *testing.T) (*os.File, func() string) {
	t.Helper()
	r, w := must.OK2(os.Pipe())
	done := make(chan string, 1)
	go func() {
		content := must.OK1(io.ReadAll(r))
		r.Close()
		done <- string(content)
	}()
	return w, func() string {
		w.Close()
		return <-done
	}
}
