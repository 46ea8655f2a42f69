package eval

import (
	"math"

	"github.com/kuzur-lang/kuzur/pkg/eval/vals"
	"github.com/kuzur-lang/kuzur/pkg/parse"
)

func (fm *Frame) evalExpr(e parse.Expr) (vals.Value, error) {
	switch e := e.(type) {
	case *parse.NumberLit:
		return vals.Num(e.Value), nil
	case *parse.StringLit:
		return vals.Str(e.Value), nil
	case *parse.BoolLit:
		return vals.Bool(e.Value), nil
	case *parse.Ident:
		v, ok := fm.local.Get(e.Name)
		if !ok {
			return nil, fm.errorp(e, &NameError{e.Name})
		}
		return v, nil
	case *parse.UnaryExpr:
		return fm.evalUnary(e)
	case *parse.BinaryExpr:
		left, err := fm.evalExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := fm.evalExpr(e.Right)
		if err != nil {
			return nil, err
		}
		v, err := applyBinary(e.Op, left, right)
		return v, fm.errorp(e, err)
	case *parse.LogicalExpr:
		return fm.evalLogical(e)
	case *parse.CallExpr:
		return fm.evalCall(e)
	default:
		panic("bug: unknown expression type")
	}
}

func (fm *Frame) evalUnary(e *parse.UnaryExpr) (vals.Value, error) {
	v, err := fm.evalExpr(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case "-":
		num, ok := v.(vals.Num)
		if !ok {
			return nil, fm.errorp(e, typeError("operand of '-'", "a number", v))
		}
		return -num, nil
	default: // "!"
		b, ok := v.(vals.Bool)
		if !ok {
			return nil, fm.errorp(e, typeError("operand of '!'", "a boolean", v))
		}
		return !b, nil
	}
}

// Short-circuiting: the right operand is not evaluated when the left
// operand already determines the result.
func (fm *Frame) evalLogical(e *parse.LogicalExpr) (vals.Value, error) {
	left, err := fm.logicalOperand(e, e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op == "&&" && !left {
		return vals.Bool(false), nil
	}
	if e.Op == "||" && left {
		return vals.Bool(true), nil
	}
	right, err := fm.logicalOperand(e, e.Right)
	if err != nil {
		return nil, err
	}
	return vals.Bool(right), nil
}

func (fm *Frame) logicalOperand(e *parse.LogicalExpr, operand parse.Expr) (bool, error) {
	v, err := fm.evalExpr(operand)
	if err != nil {
		return false, err
	}
	b, ok := v.(vals.Bool)
	if !ok {
		return false, fm.errorp(operand,
			typeError("operand of '"+e.Op+"'", "a boolean", v))
	}
	return bool(b), nil
}

func (fm *Frame) evalCall(e *parse.CallExpr) (vals.Value, error) {
	v, ok := fm.local.Get(e.Name)
	if !ok {
		return nil, fm.errorp(e, &NameError{e.Name})
	}
	callable, ok := v.(Callable)
	if !ok {
		return nil, fm.errorp(e, typeError("'"+e.Name+"'", "a function", v))
	}
	args := make([]vals.Value, len(e.Args))
	for i, argExpr := range e.Args {
		arg, err := fm.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	ret, err := callable.Call(fm, e, args)
	if err != nil {
		return nil, fm.errorp(e, err)
	}
	return ret, nil
}

func applyBinary(op string, a, b vals.Value) (vals.Value, error) {
	switch op {
	case "+":
		return plus(a, b)
	case "-", "*", "/", "%":
		x, y, ok := twoNums(a, b)
		if !ok {
			return nil, operandsError(op, "numbers", a, b)
		}
		switch op {
		case "-":
			return x - y, nil
		case "*":
			return x * y, nil
		case "/":
			// IEEE semantics: dividing by zero yields an infinity.
			return x / y, nil
		default:
			return vals.Num(math.Mod(float64(x), float64(y))), nil
		}
	case "<", "<=", ">", ">=":
		return compare(op, a, b)
	case "==":
		return vals.Bool(vals.Equal(a, b)), nil
	default: // "!="
		return vals.Bool(!vals.Equal(a, b)), nil
	}
}

// The + operator adds two numbers or concatenates two strings; when one
// operand is a string and the other a number, the number is coerced to its
// string form.
func plus(a, b vals.Value) (vals.Value, error) {
	switch a := a.(type) {
	case vals.Num:
		switch b := b.(type) {
		case vals.Num:
			return a + b, nil
		case vals.Str:
			return vals.Str(vals.ToString(a)) + b, nil
		}
	case vals.Str:
		switch b := b.(type) {
		case vals.Num:
			return a + vals.Str(vals.ToString(b)), nil
		case vals.Str:
			return a + b, nil
		}
	}
	return nil, operandsError("+", "numbers or strings", a, b)
}

// Ordered comparisons work on two numbers or two strings; strings compare
// lexicographically by bytes.
func compare(op string, a, b vals.Value) (vals.Value, error) {
	if x, y, ok := twoNums(a, b); ok {
		switch op {
		case "<":
			return vals.Bool(x < y), nil
		case "<=":
			return vals.Bool(x <= y), nil
		case ">":
			return vals.Bool(x > y), nil
		default:
			return vals.Bool(x >= y), nil
		}
	}
	if x, ok := a.(vals.Str); ok {
		if y, ok := b.(vals.Str); ok {
			switch op {
			case "<":
				return vals.Bool(x < y), nil
			case "<=":
				return vals.Bool(x <= y), nil
			case ">":
				return vals.Bool(x > y), nil
			default:
				return vals.Bool(x >= y), nil
			}
		}
	}
	return nil, operandsError(op, "two numbers or two strings", a, b)
}

func twoNums(a, b vals.Value) (vals.Num, vals.Num, bool) {
	x, ok1 := a.(vals.Num)
	y, ok2 := b.(vals.Num)
	return x, y, ok1 && ok2
}
