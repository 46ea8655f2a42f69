package eval

import (
	"github.com/kuzur-lang/kuzur/pkg/eval/vals"
)

// Env is a scope: a mapping from names to values, chained to the enclosing
// scope. New Envs are created for function calls; blocks share the frame of
// the enclosing function, so a bare assignment inside a function always
// binds locally and shadows, rather than mutates, any outer binding with
// the same name.
//
// Envs captured by functions outlive the call that created them; they are
// shared by ordinary Go references, and Go's garbage collector handles
// their lifetime.
type Env struct {
	parent   *Env
	bindings map[string]vals.Value
}

// NewEnv creates an empty Env with the given parent. The parent may be nil
// for the outermost scope.
func NewEnv(parent *Env) *Env {
	return &Env{parent, make(map[string]vals.Value)}
}

// Get resolves a name, walking the parent chain outward from this Env. It
// returns false if the name is bound nowhere on the chain.
func (e *Env) Get(name string) (vals.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds a name in this Env, inserting or overwriting.
func (e *Env) Set(name string, v vals.Value) {
	e.bindings[name] = v
}
