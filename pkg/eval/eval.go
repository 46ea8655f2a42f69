// Package eval handles evaluation of parsed Kuzur code and provides runtime
// facilities.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/kuzur-lang/kuzur/pkg/logutil"
	"github.com/kuzur-lang/kuzur/pkg/parse"
)

var logger = logutil.GetLogger("[eval] ")

// Evaler provides methods for evaluating code, and maintains the global
// scope that is persisted between evaluations of different pieces of code.
// The global scope is owned by the Evaler rather than being process-wide, so
// multiple independent Evalers can coexist in one process.
type Evaler struct {
	global  *Env
	builtin *Env
}

// NewEvaler creates a new Evaler. The global scope is empty, and its parent
// is the scope holding the builtin functions.
func NewEvaler() *Evaler {
	builtin := NewEnv(nil)
	for name, fn := range builtins {
		builtin.Set(name, fn)
	}
	return &Evaler{NewEnv(builtin), builtin}
}

// Global returns the global scope.
func (ev *Evaler) Global() *Env { return ev.global }

// Ports are the standard byte streams used by an evaluation: input reads
// from In, print writes to Out, and Err is where warnings would go.
type Ports struct {
	In  *bufio.Reader
	Out io.Writer
	Err io.Writer
}

// PortsFromFiles makes Ports from the three standard files.
func PortsFromFiles(fds [3]*os.File) *Ports {
	return &Ports{bufio.NewReader(fds[0]), fds[1], fds[2]}
}

// Eval parses and evaluates a piece of source code in the global scope. It
// returns nil on success, a *diag.Error if the code does not lex or parse,
// or an *Exception if evaluation raises an error. All errors are fatal to
// the evaluation; there is no catching construct in the language.
func (ev *Evaler) Eval(src parse.Source, ports *Ports) error {
	logger.Println("eval", src.Name)
	chunk, err := parse.Parse(src)
	if err != nil {
		return err
	}
	fm := &Frame{ev, src, ev.global, ports, nil}
	return stopFlow(fm.execStmts(chunk.Stmts))
}

// Converts a control flow sentinel that has unwound past the top level into
// a proper error.
func stopFlow(err error) error {
	exc, ok := err.(*Exception)
	if !ok {
		return err
	}
	var msg string
	switch reason := exc.Reason; {
	case reason == errBreak:
		msg = "break used outside of a loop"
	case reason == errContinue:
		msg = "continue used outside of a loop"
	default:
		if _, ok := reason.(*returnError); ok {
			msg = "return used outside of a function"
		} else {
			return err
		}
	}
	return NewException(&ControlFlowError{msg}, exc.StackTrace)
}
