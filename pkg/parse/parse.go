// Package parse implements the parsing of Kuzur source code into an AST.
//
// Parsing has two stages: the lexer turns the source into a flat token
// sequence, and a recursive-descent parser with precedence climbing for
// expressions turns the tokens into a [Chunk]. Both stages abort at the
// first error, which is a [*diag.Error] carrying the offending source
// range.
package parse

// Parse parses Kuzur source code into an AST.
func Parse(src Source) (*Chunk, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, tokens: tokens}
	return p.parse()
}
