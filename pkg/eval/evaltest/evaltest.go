// Package evaltest supports testing the Kuzur evaluator.
//
// The entry point for every test is the Test function, driven by a table of
// cases built with the That function and its chained methods:
//
//	Test(t,
//		That("print(1 + 2)").Prints("3\n"),
//		That("x").Throws(ErrorWithType(&eval.NameError{})),
//	)
package evaltest

import (
	"bufio"
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/kuzur-lang/kuzur/pkg/eval"
	"github.com/kuzur-lang/kuzur/pkg/parse"
	"github.com/kuzur-lang/kuzur/pkg/tt"
)

// Case is a test case, describing a piece of code and the expected outcome
// of evaluating it.
type Case struct {
	code  string
	input string
	want  result
}

type result struct {
	out string
	// Checked against the error returned by Eval; nil means no error.
	errorMatcher error
}

// That returns a new Case with the given source code. Multiple arguments are
// joined with newlines.
func That(lines ...string) *Case {
	return &Case{code: strings.Join(lines, "\n")}
}

// WithInput sets the standard input for the evaluation and returns the
// receiver.
func (c *Case) WithInput(s string) *Case {
	c.input = s
	return c
}

// Prints requires the code to print exactly the given text and not error. It
// returns the receiver.
func (c *Case) Prints(out string) *Case {
	c.want.out = out
	return c
}

// DoesNothing requires the code to print nothing and not error. It returns
// the receiver.
func (c *Case) DoesNothing() *Case {
	return c
}

// Throws requires the evaluation to return an error matching the given
// matcher, typically built with ErrorWithType or ErrorWithMessage. Output
// written before the error is not checked. It returns the receiver.
func (c *Case) Throws(matcher error) *Case {
	c.want.errorMatcher = matcher
	return c
}

// Test runs test cases, each against a fresh Evaler.
func Test(t *testing.T, cases ...*Case) {
	t.Helper()
	TestWithSetup(t, func(ev *eval.Evaler) {}, cases...)
}

// TestWithSetup runs test cases. Before each case, a fresh Evaler is created
// and passed to the setup function.
func TestWithSetup(t *testing.T, setup func(ev *eval.Evaler), cases ...*Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.code, func(t *testing.T) {
			t.Helper()
			ev := eval.NewEvaler()
			setup(ev)
			out, err := run(ev, c.code, c.input)
			if !matchErr(c.want.errorMatcher, err) {
				t.Errorf("got error %v, want error matching %v",
					err, c.want.errorMatcher)
			}
			if c.want.errorMatcher == nil && out != c.want.out {
				t.Errorf("output mismatch (-want +got):\n%s",
					tt.Diff(c.want.out, out))
			}
		})
	}
}

func run(ev *eval.Evaler, code, input string) (string, error) {
	var out bytes.Buffer
	ports := &eval.Ports{
		In:  bufio.NewReader(strings.NewReader(input)),
		Out: &out,
		Err: &out,
	}
	err := ev.Eval(parse.SourceForTest(code), ports)
	return out.String(), err
}

func matchErr(matcher, err error) bool {
	if matcher == nil {
		return err == nil
	}
	if err == nil {
		return false
	}
	switch matcher := matcher.(type) {
	case errWithType:
		return reflect.TypeOf(eval.Reason(err)) == reflect.TypeOf(matcher.v)
	case errWithMessage:
		return eval.Reason(err).Error() == matcher.msg
	default:
		return errors.Is(err, matcher)
	}
}

// ErrorWithType matches any error whose reason has the same dynamic type as
// the argument.
func ErrorWithType(v error) error { return errWithType{v} }

type errWithType struct{ v error }

func (e errWithType) Error() string { return "error with type " + reflect.TypeOf(e.v).String() }

// ErrorWithMessage matches any error whose reason has the given message.
func ErrorWithMessage(msg string) error { return errWithMessage{msg} }

type errWithMessage struct{ msg string }

func (e errWithMessage) Error() string { return "error with message " + e.msg }
