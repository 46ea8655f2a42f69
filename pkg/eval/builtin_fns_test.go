package eval_test

import (
	"testing"

	"github.com/kuzur-lang/kuzur/pkg/eval"
	. "github.com/kuzur-lang/kuzur/pkg/eval/evaltest"
)

func TestPrint(t *testing.T) {
	Test(t,
		That("print()").Prints("\n"),
		That(`print("hello")`).Prints("hello\n"),
		That(`print(1, "two", true)`).Prints("1 two true\n"),
		That("print(print(1))").Prints("1\nnull\n"),
	)
}

func TestInput(t *testing.T) {
	Test(t,
		That("print(input())").WithInput("hello\n").Prints("hello\n"),
		That(`print(input("? "))`).WithInput("yes\n").Prints("? yes\n"),
		// Windows line endings are stripped too.
		That("print(len(input()))").WithInput("ab\r\n").Prints("2\n"),
		// At end of input, input returns the empty string.
		That(`print(input() + "!")`).Prints("!\n"),
		That("input(1, 2)").Throws(ErrorWithMessage(
			"input expects at most 1 argument, got 2")),
	)
}

func TestLen(t *testing.T) {
	Test(t,
		That(`print(len(""))`).Prints("0\n"),
		That(`print(len("hello"))`).Prints("5\n"),
		// Length counts characters, not bytes.
		That(`print(len("héllo"))`).Prints("5\n"),
		That("print(len(123))").Throws(ErrorWithMessage(
			"argument of len must be a string, found number")),
		That("len()").Throws(ErrorWithType(&eval.ArityError{})),
	)
}

func TestIntFn(t *testing.T) {
	Test(t,
		That("print(int(3.9))").Prints("3\n"),
		That("print(int(-3.9))").Prints("-3\n"),
		That(`print(int("42"))`).Prints("42\n"),
		That(`print(int("-7"))`).Prints("-7\n"),
		That(`print(int("3.5"))`).Throws(ErrorWithMessage(
			`cannot parse "3.5" as an integer`)),
		That(`print(int("abc"))`).Throws(ErrorWithType(&eval.ValueError{})),
		That("print(int(true))").Throws(ErrorWithMessage(
			"argument of int must be a number or a string, found boolean")),
		That("int(1, 2)").Throws(ErrorWithMessage(
			"int expects 1 argument, got 2")),
	)
}

func TestStrFn(t *testing.T) {
	Test(t,
		That(`print(str(42) + "!")`).Prints("42!\n"),
		That(`print(str(3.5))`).Prints("3.5\n"),
		That(`print(str(true))`).Prints("true\n"),
		That(`print(str("x"))`).Prints("x\n"),
		That("str()").Throws(ErrorWithType(&eval.ArityError{})),
	)
}
