package store

import (
	"testing"

	"github.com/kuzur-lang/kuzur/pkg/store/storedefs"
	"github.com/kuzur-lang/kuzur/pkg/tt"
)

var cmds = []string{"print(1)", "x = 2", "print(x)", "x = x + 1"}

func setupStore(t *testing.T) DBStore {
	t.Helper()
	st, cleanup := MustGetTempStore()
	t.Cleanup(cleanup)
	for _, cmd := range cmds {
		if _, err := st.AddCmd(cmd); err != nil {
			t.Fatalf("AddCmd(%q): %v", cmd, err)
		}
	}
	return st
}

func TestNextCmdSeq(t *testing.T) {
	st := setupStore(t)
	seq, err := st.NextCmdSeq()
	if seq != len(cmds)+1 || err != nil {
		t.Errorf("NextCmdSeq -> %d, %v, want %d, nil", seq, err, len(cmds)+1)
	}
}

func TestCmd(t *testing.T) {
	st := setupStore(t)
	for i, want := range cmds {
		cmd, err := st.Cmd(i + 1)
		if cmd != want || err != nil {
			t.Errorf("Cmd(%d) -> %q, %v, want %q, nil", i+1, cmd, err, want)
		}
	}
	if _, err := st.Cmd(100); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("Cmd(100) -> error %v, want ErrNoMatchingCmd", err)
	}
}

func TestDelCmd(t *testing.T) {
	st := setupStore(t)
	if err := st.DelCmd(2); err != nil {
		t.Fatalf("DelCmd(2): %v", err)
	}
	if _, err := st.Cmd(2); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("Cmd(2) after DelCmd -> error %v, want ErrNoMatchingCmd", err)
	}
}

func TestCmdsWithSeq(t *testing.T) {
	st := setupStore(t)
	got, err := st.CmdsWithSeq(2, 4)
	if err != nil {
		t.Fatalf("CmdsWithSeq: %v", err)
	}
	want := []storedefs.Cmd{{Text: cmds[1], Seq: 2}, {Text: cmds[2], Seq: 3}}
	if diff := tt.Diff(want, got); diff != "" {
		t.Errorf("CmdsWithSeq(2, 4) mismatch (-want +got):\n%s", diff)
	}
}

func TestNextCmd(t *testing.T) {
	st := setupStore(t)
	cmd, err := st.NextCmd(1, "x = ")
	if err != nil || cmd != (storedefs.Cmd{Text: "x = 2", Seq: 2}) {
		t.Errorf("NextCmd(1, x = ) -> %v, %v", cmd, err)
	}
	cmd, err = st.NextCmd(3, "x = ")
	if err != nil || cmd != (storedefs.Cmd{Text: "x = x + 1", Seq: 4}) {
		t.Errorf("NextCmd(3, x = ) -> %v, %v", cmd, err)
	}
	if _, err := st.NextCmd(1, "nomatch"); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("NextCmd with no match -> error %v, want ErrNoMatchingCmd", err)
	}
}

func TestPrevCmd(t *testing.T) {
	st := setupStore(t)
	cmd, err := st.PrevCmd(100, "")
	if err != nil || cmd != (storedefs.Cmd{Text: "x = x + 1", Seq: 4}) {
		t.Errorf("PrevCmd(100, ) -> %v, %v", cmd, err)
	}
	cmd, err = st.PrevCmd(4, "print")
	if err != nil || cmd != (storedefs.Cmd{Text: "print(x)", Seq: 3}) {
		t.Errorf("PrevCmd(4, print) -> %v, %v", cmd, err)
	}
	if _, err := st.PrevCmd(1, ""); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("PrevCmd(1, ) -> error %v, want ErrNoMatchingCmd", err)
	}
}
