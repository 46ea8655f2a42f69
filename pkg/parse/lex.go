package parse

import (
	"fmt"
	"strings"

	"github.com/kuzur-lang/kuzur/pkg/diag"
)

// lexer scans a source string from left to right, producing tokens.
type lexer struct {
	src    Source
	pos    int
	tokens []Token
}

// Tokenize converts a piece of source code into a sequence of tokens, ending
// with an EOF token. The returned error, if not nil, is a *diag.Error with
// type "lex error".
func Tokenize(src Source) ([]Token, error) {
	lx := &lexer{src: src}
	for {
		lx.skipInsignificant()
		begin := lx.pos
		r := lx.peek()
		if r == eof {
			lx.emit(EOF, begin)
			return lx.tokens, nil
		}
		var err error
		switch {
		case isDigit(r):
			lx.lexNumber()
			lx.emit(NUMBER, begin)
		case r == '"':
			err = lx.lexString(begin)
		case isIdentStart(r):
			lx.lexIdent(begin)
		default:
			err = lx.lexOperator(begin)
		}
		if err != nil {
			return nil, err
		}
	}
}

const eof rune = -1

func (lx *lexer) peek() rune {
	if lx.pos == len(lx.src.Code) {
		return eof
	}
	// Kuzur's lexical grammar is all ASCII; non-ASCII bytes only ever appear
	// inside strings and comments, where they are passed through verbatim.
	return rune(lx.src.Code[lx.pos])
}

func (lx *lexer) next() rune {
	r := lx.peek()
	if r != eof {
		lx.pos++
	}
	return r
}

func (lx *lexer) hasPrefix(prefix string) bool {
	return strings.HasPrefix(lx.src.Code[lx.pos:], prefix)
}

// Skips whitespace and // comments, which run until the end of the line.
func (lx *lexer) skipInsignificant() {
	for {
		switch r := lx.peek(); {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			lx.next()
		case lx.hasPrefix("//"):
			for lx.peek() != '\n' && lx.peek() != eof {
				lx.next()
			}
		default:
			return
		}
	}
}

func (lx *lexer) emit(k TokenKind, begin int) {
	lx.tokens = append(lx.tokens, Token{
		k, lx.src.Code[begin:lx.pos], diag.Ranging{From: begin, To: lx.pos}})
}

// Contiguous digits, with an optional single decimal point that must be
// followed by more digits.
func (lx *lexer) lexNumber() {
	for isDigit(lx.peek()) {
		lx.next()
	}
	if lx.peek() == '.' && lx.pos+1 < len(lx.src.Code) &&
		isDigit(rune(lx.src.Code[lx.pos+1])) {
		lx.next()
		for isDigit(lx.peek()) {
			lx.next()
		}
	}
}

// Delimited by double quotes; the content is taken verbatim, with no escape
// sequences. A newline or end of code before the closing quote is an error.
func (lx *lexer) lexString(begin int) error {
	lx.next() // opening quote
	for {
		switch r := lx.peek(); r {
		case '"':
			lx.next()
			tok := Token{STRING, lx.src.Code[begin+1 : lx.pos-1],
				diag.Ranging{From: begin, To: lx.pos}}
			lx.tokens = append(lx.tokens, tok)
			return nil
		case '\n', eof:
			return lx.errorf(diag.Ranging{From: begin, To: lx.pos},
				"unterminated string")
		default:
			lx.next()
		}
	}
}

func (lx *lexer) lexIdent(begin int) {
	for isIdentCont(lx.peek()) {
		lx.next()
	}
	text := lx.src.Code[begin:lx.pos]
	switch {
	case text == "true" || text == "false":
		lx.emit(BOOL, begin)
	case keywords[text] != 0:
		lx.emit(keywords[text], begin)
	default:
		lx.emit(IDENT, begin)
	}
}

// Multi-character operators are matched greedily before single-character
// ones.
var operators = []struct {
	text string
	kind TokenKind
}{
	{"==", EQ}, {"!=", NOTEQ}, {"<=", LE}, {">=", GE},
	{"&&", AND}, {"||", OR},
	{"=", ASSIGN}, {"+", PLUS}, {"-", MINUS}, {"*", STAR}, {"/", SLASH},
	{"%", PERCENT}, {"<", LT}, {">", GT}, {"!", NOT},
	{"(", LPAREN}, {")", RPAREN}, {"{", LBRACE}, {"}", RBRACE},
	{",", COMMA}, {";", SEMICOLON},
}

func (lx *lexer) lexOperator(begin int) error {
	for _, op := range operators {
		if lx.hasPrefix(op.text) {
			lx.pos += len(op.text)
			lx.emit(op.kind, begin)
			return nil
		}
	}
	r := lx.next()
	return lx.errorf(diag.Ranging{From: begin, To: lx.pos},
		"unexpected character %q", r)
}

func (lx *lexer) errorf(r diag.Ranger, format string, args ...any) error {
	return &diag.Error{
		Type:    "lex error",
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(lx.src.Name, lx.src.Code, r),
	}
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isIdentCont(r rune) bool { return isIdentStart(r) || isDigit(r) }
