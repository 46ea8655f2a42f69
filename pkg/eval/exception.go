package eval

import (
	"errors"
	"strings"

	"github.com/kuzur-lang/kuzur/pkg/diag"
	"github.com/kuzur-lang/kuzur/pkg/eval/vals"
)

// Exception represents a runtime error. It wraps the reason, such as a
// *TypeError, together with a stack trace pointing into the source code.
type Exception struct {
	Reason     error
	StackTrace *StackTrace
}

// StackTrace is a linked list of diag.Context; the head is the innermost
// frame.
type StackTrace struct {
	Head *diag.Context
	Next *StackTrace
}

// NewException creates a new Exception.
func NewException(reason error, stackTrace *StackTrace) *Exception {
	return &Exception{reason, stackTrace}
}

// Error returns the message of the reason of the exception.
func (exc *Exception) Error() string { return exc.Reason.Error() }

// Unwrap returns the reason of the exception.
func (exc *Exception) Unwrap() error { return exc.Reason }

// Show shows the exception with its traceback.
func (exc *Exception) Show(indent string) string {
	var sb strings.Builder
	sb.WriteString("Exception: \033[31;1m" + exc.Reason.Error() + "\033[m")

	if exc.StackTrace != nil {
		sb.WriteString("\n")
		if exc.StackTrace.Next == nil {
			sb.WriteString(exc.StackTrace.Head.ShowCompact(indent))
		} else {
			sb.WriteString(indent + "Traceback:")
			for tb := exc.StackTrace; tb != nil; tb = tb.Next {
				sb.WriteString("\n" + indent + "  ")
				sb.WriteString(tb.Head.Show(indent + "    "))
			}
		}
	}
	return sb.String()
}

// Reason returns the Reason field if err is an *Exception. Otherwise it
// returns err itself.
func Reason(err error) error {
	if exc, ok := err.(*Exception); ok {
		return exc.Reason
	}
	return err
}

// Sentinel errors used to unwind the Go call stack for Kuzur control flow.
// Loops catch errBreak and errContinue; function calls catch *returnError.
// A sentinel that unwinds all the way out becomes a *ControlFlowError.
var (
	errBreak    = errors.New("break")
	errContinue = errors.New("continue")
)

type returnError struct {
	value vals.Value
}

func (e *returnError) Error() string { return "return" }
