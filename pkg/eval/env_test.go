package eval

import (
	"testing"

	"github.com/kuzur-lang/kuzur/pkg/eval/vals"
)

func TestEnv(t *testing.T) {
	outer := NewEnv(nil)
	outer.Set("x", vals.Num(1))
	inner := NewEnv(outer)

	if v, ok := inner.Get("x"); !ok || v != vals.Num(1) {
		t.Errorf("Get(x) -> %v, %v, want 1, true", v, ok)
	}
	if _, ok := inner.Get("y"); ok {
		t.Errorf("Get(y) -> ok, want not ok")
	}

	// Setting in the inner scope shadows, and does not touch, the outer
	// binding.
	inner.Set("x", vals.Num(2))
	if v, _ := inner.Get("x"); v != vals.Num(2) {
		t.Errorf("inner Get(x) -> %v, want 2", v)
	}
	if v, _ := outer.Get("x"); v != vals.Num(1) {
		t.Errorf("outer Get(x) -> %v, want 1", v)
	}
}
