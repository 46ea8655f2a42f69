// Package shell is the entry point for the interpreter: it runs scripts and
// the interactive read-eval-print loop.
package shell

import (
	"fmt"
	"os"

	"github.com/kuzur-lang/kuzur/pkg/eval"
	"github.com/kuzur-lang/kuzur/pkg/logutil"
	"github.com/kuzur-lang/kuzur/pkg/prog"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the interpreter subprogram.
type Program struct{}

// Run runs a script if one is given on the command line, and enters the
// interactive mode otherwise.
func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	ev := eval.NewEvaler()

	if len(args) > 0 {
		if len(args) > 1 {
			return prog.BadUsage("want at most one script argument")
		}
		exit := script(ev, fds, args[0], &scriptCfg{
			Cmd: f.CodeInArg, CompileOnly: f.CompileOnly, JSON: f.JSON})
		return prog.Exit(exit)
	}
	if f.CodeInArg {
		return prog.BadUsage("-c requires an argument")
	}
	if f.CompileOnly {
		return prog.BadUsage("-compileonly requires a script argument")
	}

	rc := ""
	if !f.NoRC {
		if f.RC != "" {
			rc = f.RC
		} else {
			var err error
			rc, err = rcPath()
			if err != nil {
				fmt.Fprintln(fds[2], "Warning:", err)
			}
		}
	}
	db := f.DB
	if db == "" {
		var err error
		db, err = dbPath()
		if err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
			fmt.Fprintln(fds[2], "Command history will not be saved.")
		}
	}
	interact(ev, fds, &interactCfg{RC: rc, DB: db})
	return nil
}
