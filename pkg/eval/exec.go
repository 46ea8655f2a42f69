package eval

import (
	"github.com/kuzur-lang/kuzur/pkg/eval/vals"
	"github.com/kuzur-lang/kuzur/pkg/parse"
)

// Statement execution. Executing a statement returns nil for normal
// completion, or an error that unwinds: either a real *Exception, or an
// exception wrapping a control flow sentinel that an enclosing loop or
// function call will catch.

func (fm *Frame) execStmts(stmts []parse.Stmt) error {
	for _, stmt := range stmts {
		if err := fm.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (fm *Frame) execStmt(s parse.Stmt) error {
	switch s := s.(type) {
	case *parse.ExprStmt:
		_, err := fm.evalExpr(s.Expr)
		return err
	case *parse.AssignStmt:
		v, err := fm.evalExpr(s.Value)
		if err != nil {
			return err
		}
		fm.local.Set(s.Name, v)
		return nil
	case *parse.Block:
		// Blocks do not open a new scope.
		return fm.execStmts(s.Stmts)
	case *parse.IfStmt:
		for _, branch := range s.Branches {
			ok, err := fm.evalCond(branch.Cond)
			if err != nil {
				return err
			}
			if ok {
				return fm.execStmts(branch.Body.Stmts)
			}
		}
		if s.Else != nil {
			return fm.execStmts(s.Else.Stmts)
		}
		return nil
	case *parse.WhileStmt:
		return fm.execWhile(s)
	case *parse.DoWhileStmt:
		return fm.execDoWhile(s)
	case *parse.ForStmt:
		return fm.execFor(s)
	case *parse.FuncDecl:
		fm.local.Set(s.Name, &Fn{s.Name, s.Params, s.Body, fm.local, fm.src})
		return nil
	case *parse.ReturnStmt:
		value := vals.Value(vals.Nil{})
		if s.Value != nil {
			var err error
			value, err = fm.evalExpr(s.Value)
			if err != nil {
				return err
			}
		}
		return fm.errorp(s, &returnError{value})
	case *parse.BreakStmt:
		return fm.errorp(s, errBreak)
	case *parse.ContinueStmt:
		return fm.errorp(s, errContinue)
	default:
		panic("bug: unknown statement type")
	}
}

func (fm *Frame) execWhile(s *parse.WhileStmt) error {
	for {
		ok, err := fm.evalCond(s.Cond)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		broke, err := fm.execLoopBody(s.Body)
		if err != nil || broke {
			return err
		}
	}
}

func (fm *Frame) execDoWhile(s *parse.DoWhileStmt) error {
	for {
		broke, err := fm.execLoopBody(s.Body)
		if err != nil || broke {
			return err
		}
		ok, err := fm.evalCond(s.Cond)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// The counting loop rebinds its variable in the current scope, and repeats
// while the variable is <= the end bound, inclusive, incrementing it by 1
// after each iteration. The end bound is re-evaluated before each
// iteration.
func (fm *Frame) execFor(s *parse.ForStmt) error {
	start, err := fm.evalLoopBound(s.Start, "start bound of 'for'")
	if err != nil {
		return err
	}
	fm.local.Set(s.Var, start)
	for {
		end, err := fm.evalLoopBound(s.End, "end bound of 'for'")
		if err != nil {
			return err
		}
		cur, err := fm.loopVar(s)
		if err != nil {
			return err
		}
		if !(cur <= end) {
			return nil
		}
		broke, err := fm.execLoopBody(s.Body)
		if err != nil || broke {
			return err
		}
		// The body may have rebound the variable; increment its latest
		// value.
		cur, err = fm.loopVar(s)
		if err != nil {
			return err
		}
		fm.local.Set(s.Var, cur+1)
	}
}

func (fm *Frame) evalLoopBound(e parse.Expr, what string) (vals.Num, error) {
	v, err := fm.evalExpr(e)
	if err != nil {
		return 0, err
	}
	num, ok := v.(vals.Num)
	if !ok {
		return 0, fm.errorp(e, typeError(what, "a number", v))
	}
	return num, nil
}

func (fm *Frame) loopVar(s *parse.ForStmt) (vals.Num, error) {
	v, _ := fm.local.Get(s.Var)
	num, ok := v.(vals.Num)
	if !ok {
		return 0, fm.errorp(s, typeError(
			"loop variable '"+s.Var+"'", "a number", v))
	}
	return num, nil
}

// Runs a loop body, catching break and continue. Returns whether the loop
// was broken out of.
func (fm *Frame) execLoopBody(body *parse.Block) (bool, error) {
	err := fm.execStmts(body.Stmts)
	if err == nil {
		return false, nil
	}
	switch Reason(err) {
	case errBreak:
		return true, nil
	case errContinue:
		return false, nil
	}
	return false, err
}

// Evaluates a condition. Only booleans are accepted: there is no implicit
// truthiness for other kinds.
func (fm *Frame) evalCond(e parse.Expr) (bool, error) {
	v, err := fm.evalExpr(e)
	if err != nil {
		return false, err
	}
	b, ok := v.(vals.Bool)
	if !ok {
		return false, fm.errorp(e, typeError("condition", "a boolean", v))
	}
	return bool(b), nil
}
