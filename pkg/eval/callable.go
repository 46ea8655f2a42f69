package eval

import (
	"github.com/kuzur-lang/kuzur/pkg/diag"
	"github.com/kuzur-lang/kuzur/pkg/eval/vals"
	"github.com/kuzur-lang/kuzur/pkg/parse"
)

// Callable is implemented by Kuzur values that can be called. The Ranger
// argument is the range of the call site, used in tracebacks.
type Callable interface {
	vals.Value
	Call(fm *Frame, r diag.Ranger, args []vals.Value) (vals.Value, error)
}

// Fn is a user-defined function: ordered parameter names, a body, and a
// reference to the scope it was defined in. Keeping the captured scope
// alive is what makes Fn a closure.
type Fn struct {
	Name     string
	Params   []string
	Body     *parse.Block
	captured *Env
	src      parse.Source
}

// Kind returns "fn".
func (*Fn) Kind() string { return "fn" }

// Call calls the function. A fresh scope is created whose parent is the
// function's captured defining scope (lexical, not dynamic, scoping), and
// parameters are bound positionally. A return unwinding out of the body
// supplies the value of the call; falling off the end yields null.
func (fn *Fn) Call(fm *Frame, r diag.Ranger, args []vals.Value) (vals.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, &ArityError{
			fn.Name, plural(len(fn.Params), "argument"), len(args)}
	}
	local := NewEnv(fn.captured)
	for i, param := range fn.Params {
		local.Set(param, args[i])
	}
	fm2 := &Frame{fm.ev, fn.src, local, fm.ports, &StackTrace{
		Head: diag.NewContext(fm.src.Name, fm.src.Code, r),
		Next: fm.traceback,
	}}
	err := fm2.execStmts(fn.Body.Stmts)
	if err != nil {
		if ret, ok := Reason(err).(*returnError); ok {
			return ret.value, nil
		}
		// Exceptions, and break/continue looking for an enclosing loop
		// further down the call stack, keep unwinding.
		return nil, err
	}
	return vals.Nil{}, nil
}

// GoFn is a builtin function: a native operation callable from Kuzur code
// like any function, but not expressible in the language itself.
type GoFn struct {
	name string
	impl func(fm *Frame, args []vals.Value) (vals.Value, error)
}

// Kind returns "fn".
func (*GoFn) Kind() string { return "fn" }

// Call calls the builtin.
func (fn *GoFn) Call(fm *Frame, r diag.Ranger, args []vals.Value) (vals.Value, error) {
	return fn.impl(fm, args)
}
