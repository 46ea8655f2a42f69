package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/kuzur-lang/kuzur/pkg/buildinfo"
	"github.com/kuzur-lang/kuzur/pkg/diag"
	"github.com/kuzur-lang/kuzur/pkg/eval"
	"github.com/kuzur-lang/kuzur/pkg/parse"
	"github.com/kuzur-lang/kuzur/pkg/store"
)

// Configuration for the interactive mode.
type interactCfg struct {
	// Path of the rc file; empty to skip sourcing it.
	RC string
	// Path of the history database; empty to skip recording history.
	DB string
}

// Runs the read-eval-print loop. Lines are read from fds[0] until end of
// input. An error in one line is shown and does not terminate the loop.
func interact(ev *eval.Evaler, fds [3]*os.File, cfg *interactCfg) {
	// Only show prompts when the input is a terminal, so that piping code
	// into the interpreter does not echo prompts back.
	tty := isatty.IsTerminal(fds[0].Fd())

	st := openStore(fds[2], cfg.DB)
	if st != nil {
		defer st.Close()
	}

	if cfg.RC != "" {
		sourceRC(ev, fds, cfg.RC)
	}

	if tty {
		fmt.Fprintf(fds[1], "Kuzur %s%s\n",
			buildinfo.Version, buildinfo.VersionSuffix)
	}

	in := bufio.NewReader(fds[0])
	ports := &eval.Ports{In: in, Out: fds[1], Err: fds[2]}
	for i := 1; ; i++ {
		if tty {
			fmt.Fprint(fds[1], "kz> ")
		}
		line, err := in.ReadString('\n')
		if line == "" && err != nil {
			if tty {
				fmt.Fprintln(fds[1])
			}
			return
		}
		code := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(code) == "" {
			continue
		}
		if st != nil {
			if _, err := st.AddCmd(code); err != nil {
				logger.Println("failed to save command:", err)
			}
		}
		src := parse.Source{Name: fmt.Sprintf("[tty %d]", i), Code: code}
		if err := ev.Eval(src, ports); err != nil {
			diag.ShowError(fds[2], err)
		}
		if err == io.EOF {
			return
		}
	}
}

func sourceRC(ev *eval.Evaler, fds [3]*os.File, rc string) {
	code, err := readFileUTF8(rc)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintln(fds[2], "Warning: cannot read rc file:", err)
		}
		return
	}
	src := parse.Source{Name: rc, Code: code, IsFile: true}
	err = ev.Eval(src, eval.PortsFromFiles(fds))
	if err != nil {
		diag.ShowError(fds[2], err)
	}
}

func openStore(stderr io.Writer, db string) store.DBStore {
	if db == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(db), 0700); err != nil {
		fmt.Fprintln(stderr, "Warning: cannot create state directory:", err)
		return nil
	}
	st, err := store.NewStore(db)
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot open history database:", err)
		return nil
	}
	return st
}
