package eval_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/kuzur-lang/kuzur/pkg/eval"
	. "github.com/kuzur-lang/kuzur/pkg/eval/evaltest"
	"github.com/kuzur-lang/kuzur/pkg/eval/vals"
	"github.com/kuzur-lang/kuzur/pkg/parse"
)

func TestEval_Arithmetic(t *testing.T) {
	Test(t,
		That("print(2 + 3 * 4)").Prints("14\n"),
		That("print((2 + 3) * 4)").Prints("20\n"),
		That("print(10 - 2 - 3)").Prints("5\n"),
		That("print(7 / 2)").Prints("3.5\n"),
		That("print(7 % 3)").Prints("1\n"),
		That("print(-3 + 1)").Prints("-2\n"),
		// Division and modulo by zero follow floating point semantics.
		That("print(1 / 0)").Prints("inf\n"),
		That("print(-1 / 0)").Prints("-inf\n"),
		That("print(0 % 0)").Prints("nan\n"),

		That(`print(1 + true)`).Throws(ErrorWithMessage(
			"operands of '+' must be numbers or strings, found number and boolean")),
		That(`print("a" - "b")`).Throws(ErrorWithType(&eval.TypeError{})),
	)
}

func TestEval_Strings(t *testing.T) {
	Test(t,
		That(`print("foo" + "bar")`).Prints("foobar\n"),
		// Concatenating a number with a string converts the number; an
		// integral number converts without a decimal point.
		That(`print("Loop: " + 3)`).Prints("Loop: 3\n"),
		That(`print(3.5 + "x")`).Prints("3.5x\n"),
		That(`print("a" < "b")`).Prints("true\n"),
		That(`print("b" <= "a")`).Prints("false\n"),
		That(`print("a" < 1)`).Throws(ErrorWithMessage(
			"operands of '<' must be two numbers or two strings, found string and number")),
	)
}

func TestEval_Equality(t *testing.T) {
	Test(t,
		That("print(1 == 1.0)").Prints("true\n"),
		That(`print("1" == 1)`).Prints("false\n"),
		That(`print("1" != 1)`).Prints("true\n"),
		That("print(true == true)").Prints("true\n"),
		// nan is not equal to itself.
		That("print(0 % 0 == 0 % 0)").Prints("false\n"),
	)
}

func TestEval_Logic(t *testing.T) {
	Test(t,
		That("print(true && false)").Prints("false\n"),
		That("print(true || false)").Prints("true\n"),
		That("print(!true)").Prints("false\n"),
		// Short-circuiting: the right operand is not reached.
		That("print(false && crash())").Prints("false\n"),
		That("print(true || crash())").Prints("true\n"),

		That("print(1 && true)").Throws(ErrorWithMessage(
			"operand of '&&' must be a boolean, found number")),
		That("print(true && 1)").Throws(ErrorWithType(&eval.TypeError{})),
		That("print(!1)").Throws(ErrorWithMessage(
			"operand of '!' must be a boolean, found number")),
		That(`print(-"x")`).Throws(ErrorWithMessage(
			"operand of '-' must be a number, found string")),
	)
}

func TestEval_If(t *testing.T) {
	Test(t,
		That("if (true) { print(1) }").Prints("1\n"),
		That("if (false) { print(1) }").DoesNothing(),
		That("if (false) { print(1) } else { print(2) }").Prints("2\n"),
		That("if (false) { print(1) } elif (true) { print(2) } else { print(3) }").
			Prints("2\n"),
		That("if (false) { print(1) } elif (false) { print(2) } else { print(3) }").
			Prints("3\n"),
		// Conditions must be booleans; there is no truthiness.
		That("if (1) { print(1) }").Throws(ErrorWithMessage(
			"condition must be a boolean, found number")),
		That(`if ("") { }`).Throws(ErrorWithType(&eval.TypeError{})),
	)
}

func TestEval_While(t *testing.T) {
	Test(t,
		That("i = 0", "while (i < 3) { print(i) i = i + 1 }").
			Prints("0\n1\n2\n"),
		That("while (false) { print(1) }").DoesNothing(),
		// A do-while body runs once even when the condition is false.
		That("do { print(1) } while (false)").Prints("1\n"),
		That("i = 0", "do { i = i + 1 } while (i < 3)", "print(i)").
			Prints("3\n"),
		That("while (1) { }").Throws(ErrorWithType(&eval.TypeError{})),
	)
}

func TestEval_For(t *testing.T) {
	Test(t,
		// Bounds are inclusive on both ends.
		That("for i = 1; 3 { print(i) }").Prints("1\n2\n3\n"),
		That("for i = 2; 1 { print(i) }").DoesNothing(),
		That("for i = 1; 1 { print(i) }").Prints("1\n"),
		// The loop variable remains visible after the loop.
		That("for i = 1; 3 { }", "print(i)").Prints("4\n"),
		// The end bound is re-evaluated before each iteration.
		That("n = 3", "for i = 1; n { print(i) n = n - 1 }").Prints("1\n2\n"),
		// Rebinding the loop variable in the body takes effect.
		That("for i = 1; 10 { print(i) i = i + 4 }").Prints("1\n6\n"),

		That(`for i = "a"; 3 { }`).Throws(ErrorWithMessage(
			"start bound of 'for' must be a number, found string")),
		That("for i = 1; true { }").Throws(ErrorWithMessage(
			"end bound of 'for' must be a number, found boolean")),
		That(`for i = 1; 3 { i = "x" }`).Throws(ErrorWithMessage(
			"loop variable 'i' must be a number, found string")),
	)
}

func TestEval_BreakContinue(t *testing.T) {
	Test(t,
		That("for i = 1; 3 {",
			"	if (i == 2) { continue }",
			"	print(i)",
			"}").Prints("1\n3\n"),
		That("i = 0",
			"while (true) {",
			"	i = i + 1",
			"	if (i == 3) { break }",
			"}",
			"print(i)").Prints("3\n"),
		// break and continue only affect the innermost enclosing loop.
		That("for i = 1; 2 {",
			"	for j = 1; 3 {",
			"		if (j == 2) { break }",
			"		print(i, j)",
			"	}",
			"}").Prints("1 1\n2 1\n"),
		// break propagates out of a function call into the loop enclosing
		// the call.
		That("func f() { break }",
			"for i = 1; 3 { f() print(i) }").DoesNothing(),

		That("break").Throws(ErrorWithMessage("break used outside of a loop")),
		That("continue").Throws(ErrorWithMessage(
			"continue used outside of a loop")),
		That("return 1").Throws(ErrorWithMessage(
			"return used outside of a function")),
		That("func f() { for i = 1; 3 { return i } }", "print(f())").
			Prints("1\n"),
	)
}

func TestEval_Functions(t *testing.T) {
	Test(t,
		That("func add(a, b) { return a + b }", "print(add(2, 3))").
			Prints("5\n"),
		// Falling off the end of a function yields null.
		That("func f() { }", "print(f())").Prints("null\n"),
		That("func f() { return }", "print(f())").Prints("null\n"),
		// Recursion.
		That("func fact(n) {",
			"	if (n <= 1) { return 1 }",
			"	return n * fact(n - 1)",
			"}",
			"print(fact(5))").Prints("120\n"),
		// Closures capture the defining scope, not the calling scope.
		That("x = 1",
			"func f() { return x }",
			"func g() { x = 2 return f() }",
			"print(g())").Prints("1\n"),

		That("func f(a) { }", "f()").Throws(ErrorWithMessage(
			"f expects 1 argument, got 0")),
		That("func f(a, b) { }", "f(1)").Throws(ErrorWithMessage(
			"f expects 2 arguments, got 1")),
		That("x = 1", "x(2)").Throws(ErrorWithMessage(
			"'x' must be a function, found number")),
	)
}

func TestEval_Scoping(t *testing.T) {
	Test(t,
		// Assignment in a function shadows an outer binding instead of
		// mutating it.
		That("x = 10",
			"func f() { x = 20 print(x) }",
			"f()",
			"print(x)").Prints("20\n10\n"),
		// Blocks share the enclosing scope.
		That("if (true) { y = 1 }", "print(y)").Prints("1\n"),
		That("x = 1", "x = x + 1", "print(x)").Prints("2\n"),
		// A builtin can be shadowed.
		That("len = 3", "print(len)").Prints("3\n"),

		That("print(nosuch)").Throws(ErrorWithMessage(
			`undefined name "nosuch"`)),
		That("nosuch()").Throws(ErrorWithType(&eval.NameError{})),
	)
}

func TestEval_GlobalPersistsAcrossEvals(t *testing.T) {
	ev := eval.NewEvaler()
	evalOrFatal(t, ev, "x = 10")
	out := evalOrFatal(t, ev, "print(x)")
	if out != "10\n" {
		t.Errorf("got output %q, want %q", out, "10\n")
	}
}

func TestEval_SetupGlobal(t *testing.T) {
	TestWithSetup(t, func(ev *eval.Evaler) {
		ev.Global().Set("answer", vals.Num(42))
	},
		That("print(answer)").Prints("42\n"),
	)
}

func TestEval_Fixtures(t *testing.T) {
	TestFixtures(t, "testdata/*.yaml")
}

func evalOrFatal(t *testing.T, ev *eval.Evaler, code string) string {
	t.Helper()
	var out strings.Builder
	ports := &eval.Ports{
		In: bufio.NewReader(strings.NewReader("")), Out: &out, Err: &out}
	err := ev.Eval(parse.SourceForTest(code), ports)
	if err != nil {
		t.Fatalf("eval %q: %v", code, err)
	}
	return out.String()
}
