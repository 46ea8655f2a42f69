package parse

import (
	"github.com/kuzur-lang/kuzur/pkg/diag"
)

// Node is implemented by all AST nodes. The AST is a strict tree; a node
// owns its children and no node is shared.
type Node interface {
	diag.Ranger
	node()
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Chunk is the root node, holding the ordered top-level statements of a
// program.
type Chunk struct {
	diag.Ranging
	Stmts []Stmt
}

// Block is a brace-delimited ordered sequence of statements. Blocks do not
// open a new scope; only function calls do.
type Block struct {
	diag.Ranging
	Stmts []Stmt
}

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	diag.Ranging
	Expr Expr
}

// AssignStmt binds the value of an expression to a name. Assignment doubles
// as declaration.
type AssignStmt struct {
	diag.Ranging
	Name  string
	Value Expr
}

// IfBranch is a condition plus the block to run when it holds.
type IfBranch struct {
	Cond Expr
	Body *Block
}

// IfStmt is an if statement with zero or more elif branches and an optional
// else block. Branches[0] is the if branch proper; the rest are elifs, in
// order.
type IfStmt struct {
	diag.Ranging
	Branches []IfBranch
	Else     *Block
}

// WhileStmt is a while loop.
type WhileStmt struct {
	diag.Ranging
	Cond Expr
	Body *Block
}

// DoWhileStmt is a do-while loop; the body runs at least once.
type DoWhileStmt struct {
	diag.Ranging
	Body *Block
	Cond Expr
}

// ForStmt is a counting loop: it binds Var to Start and runs Body while
// Var <= End, incrementing Var by 1 after each iteration. The bounds are
// inclusive.
type ForStmt struct {
	diag.Ranging
	Var        string
	Start, End Expr
	Body       *Block
}

// FuncDecl declares a named function. Functions capture a reference to their
// defining scope, not a syntax node.
type FuncDecl struct {
	diag.Ranging
	Name   string
	Params []string
	Body   *Block
}

// ReturnStmt returns from the enclosing function; Value is nil for a bare
// return.
type ReturnStmt struct {
	diag.Ranging
	Value Expr
}

// BreakStmt terminates the enclosing loop.
type BreakStmt struct {
	diag.Ranging
}

// ContinueStmt skips to the next iteration of the enclosing loop.
type ContinueStmt struct {
	diag.Ranging
}

// NumberLit is a number literal.
type NumberLit struct {
	diag.Ranging
	Value float64
}

// StringLit is a string literal; Value holds the text between the quotes.
type StringLit struct {
	diag.Ranging
	Value string
}

// BoolLit is a boolean literal.
type BoolLit struct {
	diag.Ranging
	Value bool
}

// Ident is a reference to a name.
type Ident struct {
	diag.Ranging
	Name string
}

// UnaryExpr applies a prefix operator ("!" or "-") to an operand.
type UnaryExpr struct {
	diag.Ranging
	Op      string
	Operand Expr
}

// BinaryExpr applies a binary operator to two operands, both always
// evaluated.
type BinaryExpr struct {
	diag.Ranging
	Op          string
	Left, Right Expr
}

// LogicalExpr applies "&&" or "||"; the right operand is only evaluated if
// the left operand does not already determine the result.
type LogicalExpr struct {
	diag.Ranging
	Op          string
	Left, Right Expr
}

// CallExpr calls the callable bound to Name with ordered arguments.
type CallExpr struct {
	diag.Ranging
	Name string
	Args []Expr
}

func (*Chunk) node()        {}
func (*Block) node()        {}
func (*ExprStmt) node()     {}
func (*AssignStmt) node()   {}
func (*IfStmt) node()       {}
func (*WhileStmt) node()    {}
func (*DoWhileStmt) node()  {}
func (*ForStmt) node()      {}
func (*FuncDecl) node()     {}
func (*ReturnStmt) node()   {}
func (*BreakStmt) node()    {}
func (*ContinueStmt) node() {}
func (*NumberLit) node()    {}
func (*StringLit) node()    {}
func (*BoolLit) node()      {}
func (*Ident) node()        {}
func (*UnaryExpr) node()    {}
func (*BinaryExpr) node()   {}
func (*LogicalExpr) node()  {}
func (*CallExpr) node()     {}

func (*Block) stmtNode()        {}
func (*ExprStmt) stmtNode()     {}
func (*AssignStmt) stmtNode()   {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*DoWhileStmt) stmtNode()  {}
func (*ForStmt) stmtNode()      {}
func (*FuncDecl) stmtNode()     {}
func (*ReturnStmt) stmtNode()   {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}

func (*NumberLit) exprNode()   {}
func (*StringLit) exprNode()   {}
func (*BoolLit) exprNode()     {}
func (*Ident) exprNode()       {}
func (*UnaryExpr) exprNode()   {}
func (*BinaryExpr) exprNode()  {}
func (*LogicalExpr) exprNode() {}
func (*CallExpr) exprNode()    {}
