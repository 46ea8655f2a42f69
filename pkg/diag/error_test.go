package diag

import (
	"testing"
)

func TestError(t *testing.T) {
	culpritLineBegin = "<"
	culpritLineEnd = ">"

	err := &Error{
		Type:    "parse error",
		Message: "should be '}'",
		Context: *contextInParen("[test]", "print (x)"),
	}

	wantErrorString := "parse error: 6-9 in [test]: should be '}'"
	if gotErrorString := err.Error(); gotErrorString != wantErrorString {
		t.Errorf("Error() -> %q, want %q", gotErrorString, wantErrorString)
	}

	wantRanging := Ranging{From: 6, To: 9}
	if gotRanging := err.Range(); gotRanging != wantRanging {
		t.Errorf("Range() -> %v, want %v", gotRanging, wantRanging)
	}

	// The type is capitalized in the output of Show.
	wantShow := lines(
		"Parse error: \033[31;1mshould be '}'\033[m",
		"[test], line 1: print <(x)>",
	)
	if gotShow := err.Show(""); gotShow != wantShow {
		t.Errorf("Show() -> %q, want %q", gotShow, wantShow)
	}
}
