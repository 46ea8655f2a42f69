package parse

import (
	"fmt"

	"github.com/kuzur-lang/kuzur/pkg/diag"
)

// TokenKind identifies the kind of a token.
type TokenKind int

// Possible values for TokenKind.
const (
	EOF TokenKind = iota

	IDENT
	NUMBER
	STRING
	BOOL

	// Keywords.
	IF
	ELIF
	ELSE
	WHILE
	FOR
	DO
	FUNC
	RETURN
	BREAK
	CONTINUE

	// Operators and punctuation.
	ASSIGN    // =
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENT   // %
	EQ        // ==
	NOTEQ     // !=
	LT        // <
	LE        // <=
	GT        // >
	GE        // >=
	AND       // &&
	OR        // ||
	NOT       // !
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	SEMICOLON // ;
)

var tokenKindNames = map[TokenKind]string{
	EOF:    "end of code",
	IDENT:  "identifier",
	NUMBER: "number literal",
	STRING: "string literal",
	BOOL:   "boolean literal",

	IF: "'if'", ELIF: "'elif'", ELSE: "'else'", WHILE: "'while'",
	FOR: "'for'", DO: "'do'", FUNC: "'func'", RETURN: "'return'",
	BREAK: "'break'", CONTINUE: "'continue'",

	ASSIGN: "'='", PLUS: "'+'", MINUS: "'-'", STAR: "'*'", SLASH: "'/'",
	PERCENT: "'%'", EQ: "'=='", NOTEQ: "'!='", LT: "'<'", LE: "'<='",
	GT: "'>'", GE: "'>='", AND: "'&&'", OR: "'||'", NOT: "'!'",
	LPAREN: "'('", RPAREN: "')'", LBRACE: "'{'", RBRACE: "'}'",
	COMMA: "','", SEMICOLON: "';'",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("bad token kind %d", int(k))
}

var keywords = map[string]TokenKind{
	"if": IF, "elif": ELIF, "else": ELSE, "while": WHILE, "for": FOR,
	"do": DO, "func": FUNC, "return": RETURN, "break": BREAK,
	"continue": CONTINUE,
}

// Token is a lexical unit of Kuzur code. It is immutable once produced.
type Token struct {
	Kind TokenKind
	Text string
	diag.Ranging
}

func (t Token) String() string {
	switch t.Kind {
	case IDENT, NUMBER, STRING, BOOL:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}
