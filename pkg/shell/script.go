package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/kuzur-lang/kuzur/pkg/diag"
	"github.com/kuzur-lang/kuzur/pkg/eval"
	"github.com/kuzur-lang/kuzur/pkg/parse"
)

// Configuration for the script mode.
type scriptCfg struct {
	Cmd         bool
	CompileOnly bool
	JSON        bool
}

// Runs a script from a file, or from the command line with -c.
func script(ev *eval.Evaler, fds [3]*os.File, arg0 string, cfg *scriptCfg) int {
	var name, code string
	if cfg.Cmd {
		name = "code from -c"
		code = arg0
	} else {
		if !strings.HasSuffix(arg0, ".kz") {
			fmt.Fprintf(fds[2], "script %q does not end in .kz\n", arg0)
			return 2
		}
		var err error
		name, err = filepath.Abs(arg0)
		if err != nil {
			fmt.Fprintf(fds[2],
				"cannot get full path of script %q: %v\n", arg0, err)
			return 2
		}
		code, err = readFileUTF8(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return 2
		}
	}

	src := parse.Source{Name: name, Code: code, IsFile: true}
	if cfg.CompileOnly {
		_, err := parse.Parse(src)
		if cfg.JSON {
			fmt.Fprintf(fds[1], "%s\n", errorsToJSON(err))
		} else if err != nil {
			diag.ShowError(fds[2], err)
		}
		if err != nil {
			return 2
		}
		return 0
	}

	err := ev.Eval(src, eval.PortsFromFiles(fds))
	if err != nil {
		diag.ShowError(fds[2], err)
		return 2
	}
	return 0
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}

// An auxiliary struct for converting errors with diagnostics information to
// JSON.
type errorInJSON struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

// Converts a parse error into JSON, for use by editor integrations.
func errorsToJSON(err error) []byte {
	var converted []errorInJSON
	var parseErr *diag.Error
	if errors.As(err, &parseErr) {
		converted = append(converted, errorInJSON{
			parseErr.Context.Name,
			parseErr.Context.From, parseErr.Context.To,
			parseErr.Message,
		})
	} else if err != nil {
		converted = append(converted, errorInJSON{Message: err.Error()})
	}
	if converted == nil {
		converted = []errorInJSON{}
	}

	jsonError, errMarshal := json.Marshal(converted)
	if errMarshal != nil {
		return []byte(`[{"message":"Unable to convert the errors to JSON"}]`)
	}
	return jsonError
}
