package eval

import (
	"fmt"

	"github.com/kuzur-lang/kuzur/pkg/eval/vals"
)

// NameError is raised when looking up a name that is bound nowhere on the
// scope chain.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("undefined name %q", e.Name)
}

// TypeError is raised when an operator or builtin is applied to a value of
// the wrong kind.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string { return e.Message }

// typeError describes a single value of the wrong kind.
func typeError(what, want string, got vals.Value) *TypeError {
	return &TypeError{fmt.Sprintf(
		"%s must be %s, found %s", what, want, vals.Kind(got))}
}

// operandsError describes a pair of operands the operator does not accept.
func operandsError(op, want string, a, b vals.Value) *TypeError {
	return &TypeError{fmt.Sprintf(
		"operands of '%s' must be %s, found %s and %s",
		op, want, vals.Kind(a), vals.Kind(b))}
}

// ArityError is raised when a callable is called with the wrong number of
// arguments. Want is a description like "2 arguments" or "at most 1
// argument".
type ArityError struct {
	Name string
	Want string
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %s, got %d", e.Name, e.Want, e.Got)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// ValueError is raised when a value has the right kind but an unusable
// content, like int("abc").
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string { return e.Message }

// ControlFlowError is raised when break, continue or return unwinds past
// the outermost construct that could catch it.
type ControlFlowError struct {
	Message string
}

func (e *ControlFlowError) Error() string { return e.Message }
