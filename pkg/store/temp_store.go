package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// MustGetTempStore returns a Store backed by a temporary file, and a cleanup
// function that should be called when the Store is no longer used.
func MustGetTempStore() (DBStore, func()) {
	dir, err := os.MkdirTemp("", "kuzur.test")
	if err != nil {
		panic(fmt.Sprintf("failed to make temp dir: %v", err))
	}
	st, err := NewStore(filepath.Join(dir, "kuzur.db"))
	if err != nil {
		os.RemoveAll(dir)
		panic(fmt.Sprintf("failed to create Store instance: %v", err))
	}
	return st, func() {
		st.Close()
		err := os.RemoveAll(dir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to remove temp dir:", err)
		}
	}
}
