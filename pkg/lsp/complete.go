package lsp

import (
	"github.com/sahilm/fuzzy"

	"github.com/kuzur-lang/kuzur/pkg/parse"
)

// Words that are always offered as completion candidates.
var languageWords = []string{
	"if", "elif", "else", "while", "for", "do",
	"func", "return", "break", "continue",
	"true", "false",
	"print", "input", "len", "int", "str",
}

// complete returns completion candidates for the word being typed: language
// keywords, builtin functions, and identifiers appearing elsewhere in the
// document, fuzzily filtered by the word.
func complete(content, word string) []string {
	names := make(map[string]bool)
	for _, w := range languageWords {
		names[w] = true
	}
	// A syntactically broken document (likely, mid-edit) yields no tokens;
	// keywords and builtins are still offered.
	if tokens, err := parse.Tokenize(parse.Source{Name: "[lsp]", Code: content}); err == nil {
		for _, token := range tokens {
			if token.Kind == parse.IDENT {
				names[token.Text] = true
			}
		}
	}
	delete(names, word)

	candidates := uniqSorted(names)
	if word == "" {
		return candidates
	}
	matches := fuzzy.Find(word, candidates)
	result := make([]string, len(matches))
	for i, match := range matches {
		result[i] = match.Str
	}
	return result
}
