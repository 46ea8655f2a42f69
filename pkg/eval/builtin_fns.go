package eval

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kuzur-lang/kuzur/pkg/eval/vals"
)

// The builtin functions. They live in a scope that is the parent of the
// global scope, so user code can shadow a builtin by assigning to its name.
var builtins = map[string]vals.Value{}

func addBuiltinFn(name string, impl func(*Frame, []vals.Value) (vals.Value, error)) {
	builtins[name] = &GoFn{name, impl}
}

func init() {
	addBuiltinFn("print", printFn)
	addBuiltinFn("input", inputFn)
	addBuiltinFn("len", lenFn)
	addBuiltinFn("int", intFn)
	addBuiltinFn("str", strFn)
}

// Writes the string forms of all arguments, separated by spaces and followed
// by a newline. Returns null.
func printFn(fm *Frame, args []vals.Value) (vals.Value, error) {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = vals.ToString(arg)
	}
	fmt.Fprintln(fm.ports.Out, strings.Join(parts, " "))
	return vals.Nil{}, nil
}

// Reads one line from the input port, without the trailing newline. The
// optional argument is written as a prompt first. At end of input, returns
// the empty string.
func inputFn(fm *Frame, args []vals.Value) (vals.Value, error) {
	if len(args) > 1 {
		return nil, &ArityError{"input", "at most 1 argument", len(args)}
	}
	if len(args) == 1 {
		fmt.Fprint(fm.ports.Out, vals.ToString(args[0]))
	}
	line, err := fm.ports.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return vals.Str(line), nil
}

func lenFn(fm *Frame, args []vals.Value) (vals.Value, error) {
	if len(args) != 1 {
		return nil, &ArityError{"len", "1 argument", len(args)}
	}
	s, ok := args[0].(vals.Str)
	if !ok {
		return nil, typeError("argument of len", "a string", args[0])
	}
	return vals.Num(utf8.RuneCountInString(string(s))), nil
}

// Converts a number or string to an integral number. Numbers are truncated
// towards zero; strings must spell an integer exactly.
func intFn(fm *Frame, args []vals.Value) (vals.Value, error) {
	if len(args) != 1 {
		return nil, &ArityError{"int", "1 argument", len(args)}
	}
	switch arg := args[0].(type) {
	case vals.Num:
		return vals.Num(math.Trunc(float64(arg))), nil
	case vals.Str:
		n, err := strconv.ParseInt(string(arg), 10, 64)
		if err != nil {
			return nil, &ValueError{fmt.Sprintf(
				"cannot parse %q as an integer", string(arg))}
		}
		return vals.Num(n), nil
	default:
		return nil, typeError("argument of int", "a number or a string", args[0])
	}
}

func strFn(fm *Frame, args []vals.Value) (vals.Value, error) {
	if len(args) != 1 {
		return nil, &ArityError{"str", "1 argument", len(args)}
	}
	switch args[0].(type) {
	case vals.Num, vals.Str, vals.Bool:
		return vals.Str(vals.ToString(args[0])), nil
	default:
		return nil, typeError(
			"argument of str", "a number, a string or a boolean", args[0])
	}
}
