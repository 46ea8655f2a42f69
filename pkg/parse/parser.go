package parse

import (
	"fmt"
	"strconv"

	"github.com/kuzur-lang/kuzur/pkg/diag"
)

// parser consumes a token sequence, building the AST by recursive descent.
// The first unexpected token aborts parsing; there is no error recovery.
type parser struct {
	src    Source
	tokens []Token
	pos    int
}

// Parsing is aborted by panicking with parseError, recovered in parse.
type parseError struct {
	err *diag.Error
}

func (p *parser) parse() (chunk *Chunk, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			chunk, err = nil, pe.err
		}
	}()
	chunk = &Chunk{Ranging: diag.Ranging{From: 0, To: len(p.src.Code)}}
	for p.peek().Kind != EOF {
		chunk.Stmts = append(chunk.Stmts, p.statement())
	}
	return chunk, nil
}

func (p *parser) peek() Token { return p.tokens[p.pos] }

// Returns the token after the next one. The token sequence always ends with
// EOF, which is never stepped over.
func (p *parser) peek2() Token {
	if p.tokens[p.pos].Kind == EOF {
		return p.tokens[p.pos]
	}
	return p.tokens[p.pos+1]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}

// End position of the last consumed token.
func (p *parser) prevEnd() int {
	return p.tokens[p.pos-1].To
}

func (p *parser) expect(k TokenKind) Token {
	tok := p.peek()
	if tok.Kind != k {
		p.failf(tok, "should be %s, found %s", k, tok)
	}
	return p.next()
}

func (p *parser) failf(r diag.Ranger, format string, args ...any) {
	panic(parseError{&diag.Error{
		Type:    "parse error",
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(p.src.Name, p.src.Code, r),
	}})
}

func (p *parser) statement() Stmt {
	switch tok := p.peek(); tok.Kind {
	case IF:
		return p.ifStmt()
	case WHILE:
		return p.whileStmt()
	case FOR:
		return p.forStmt()
	case DO:
		return p.doWhileStmt()
	case FUNC:
		return p.funcDecl()
	case RETURN:
		return p.returnStmt()
	case BREAK:
		p.next()
		return &BreakStmt{tok.Ranging}
	case CONTINUE:
		p.next()
		return &ContinueStmt{tok.Ranging}
	case LBRACE:
		return p.block()
	case IDENT:
		if p.peek2().Kind == ASSIGN {
			p.next()
			p.next()
			value := p.expression(0)
			return &AssignStmt{
				diag.Ranging{From: tok.From, To: p.prevEnd()},
				tok.Text, value}
		}
		fallthrough
	default:
		expr := p.expression(0)
		return &ExprStmt{expr.Range(), expr}
	}
}

func (p *parser) block() *Block {
	lbrace := p.expect(LBRACE)
	b := &Block{}
	for p.peek().Kind != RBRACE {
		if p.peek().Kind == EOF {
			p.failf(p.peek(), "should be '}', found %s", p.peek())
		}
		b.Stmts = append(b.Stmts, p.statement())
	}
	rbrace := p.next()
	b.Ranging = diag.Ranging{From: lbrace.From, To: rbrace.To}
	return b
}

// A parenthesized condition, as required by if, elif, while and do-while.
func (p *parser) parenCond() Expr {
	p.expect(LPAREN)
	cond := p.expression(0)
	p.expect(RPAREN)
	return cond
}

func (p *parser) ifStmt() Stmt {
	begin := p.expect(IF)
	branches := []IfBranch{{p.parenCond(), p.block()}}
	for p.peek().Kind == ELIF {
		p.next()
		branches = append(branches, IfBranch{p.parenCond(), p.block()})
	}
	var elseBlock *Block
	if p.peek().Kind == ELSE {
		p.next()
		elseBlock = p.block()
	}
	return &IfStmt{
		diag.Ranging{From: begin.From, To: p.prevEnd()}, branches, elseBlock}
}

func (p *parser) whileStmt() Stmt {
	begin := p.expect(WHILE)
	cond := p.parenCond()
	body := p.block()
	return &WhileStmt{
		diag.Ranging{From: begin.From, To: p.prevEnd()}, cond, body}
}

func (p *parser) doWhileStmt() Stmt {
	begin := p.expect(DO)
	body := p.block()
	p.expect(WHILE)
	cond := p.parenCond()
	return &DoWhileStmt{
		diag.Ranging{From: begin.From, To: p.prevEnd()}, body, cond}
}

func (p *parser) forStmt() Stmt {
	begin := p.expect(FOR)
	loopVar := p.expect(IDENT)
	p.expect(ASSIGN)
	start := p.expression(0)
	p.expect(SEMICOLON)
	end := p.expression(0)
	body := p.block()
	return &ForStmt{
		diag.Ranging{From: begin.From, To: p.prevEnd()},
		loopVar.Text, start, end, body}
}

func (p *parser) funcDecl() Stmt {
	begin := p.expect(FUNC)
	name := p.expect(IDENT)
	p.expect(LPAREN)
	var params []string
	if p.peek().Kind != RPAREN {
		params = append(params, p.expect(IDENT).Text)
		for p.peek().Kind == COMMA {
			p.next()
			params = append(params, p.expect(IDENT).Text)
		}
	}
	p.expect(RPAREN)
	body := p.block()
	return &FuncDecl{
		diag.Ranging{From: begin.From, To: p.prevEnd()},
		name.Text, params, body}
}

func (p *parser) returnStmt() Stmt {
	begin := p.expect(RETURN)
	var value Expr
	if canStartExpr(p.peek().Kind) {
		value = p.expression(0)
	}
	return &ReturnStmt{diag.Ranging{From: begin.From, To: p.prevEnd()}, value}
}

func canStartExpr(k TokenKind) bool {
	switch k {
	case NUMBER, STRING, BOOL, IDENT, NOT, MINUS, LPAREN:
		return true
	}
	return false
}

// Binding strengths for binary operators; higher binds tighter.
var binaryPrec = map[TokenKind]int{
	OR:  1,
	AND: 2,
	EQ:  3, NOTEQ: 3,
	LT: 4, LE: 4, GT: 4, GE: 4,
	PLUS: 5, MINUS: 5,
	STAR: 6, SLASH: 6, PERCENT: 6,
}

// Precedence climbing: parses operators that bind strictly tighter than
// prec. Recursing with the operator's own strength makes binary operators
// left-associative.
func (p *parser) expression(prec int) Expr {
	left := p.unary()
	for {
		tok := p.peek()
		opPrec, ok := binaryPrec[tok.Kind]
		if !ok || opPrec <= prec {
			return left
		}
		p.next()
		right := p.expression(opPrec)
		r := diag.MixedRanging(left, right)
		if tok.Kind == AND || tok.Kind == OR {
			left = &LogicalExpr{r, tok.Text, left, right}
		} else {
			left = &BinaryExpr{r, tok.Text, left, right}
		}
	}
}

func (p *parser) unary() Expr {
	if tok := p.peek(); tok.Kind == NOT || tok.Kind == MINUS {
		p.next()
		operand := p.unary()
		return &UnaryExpr{diag.MixedRanging(tok, operand), tok.Text, operand}
	}
	return p.primary()
}

func (p *parser) primary() Expr {
	tok := p.peek()
	switch tok.Kind {
	case NUMBER:
		p.next()
		// The lexer only emits digits with an optional decimal point, which
		// ParseFloat always accepts.
		value, _ := strconv.ParseFloat(tok.Text, 64)
		return &NumberLit{tok.Ranging, value}
	case STRING:
		p.next()
		return &StringLit{tok.Ranging, tok.Text}
	case BOOL:
		p.next()
		return &BoolLit{tok.Ranging, tok.Text == "true"}
	case IDENT:
		p.next()
		if p.peek().Kind == LPAREN {
			return p.call(tok)
		}
		return &Ident{tok.Ranging, tok.Text}
	case LPAREN:
		p.next()
		expr := p.expression(0)
		p.expect(RPAREN)
		return expr
	default:
		p.failf(tok, "should be an expression, found %s", tok)
		panic("unreachable")
	}
}

func (p *parser) call(name Token) Expr {
	p.expect(LPAREN)
	var args []Expr
	if p.peek().Kind != RPAREN {
		args = append(args, p.expression(0))
		for p.peek().Kind == COMMA {
			p.next()
			args = append(args, p.expression(0))
		}
	}
	rparen := p.expect(RPAREN)
	return &CallExpr{
		diag.Ranging{From: name.From, To: rparen.To}, name.Text, args}
}
