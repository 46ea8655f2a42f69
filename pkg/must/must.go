// Package must contains simple functions that panic on errors.
//
// It should only be used in tests and rare places where errors are provably
// impossible.
package must

import (
	"os"
	"path/filepath"
)

// OK panics if the error value is not nil. It is intended for use with
// functions that return just an error.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// OK1 panics if the error value is not nil. It is intended for use with
// functions that return one value and an error.
func OK1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// OK2 panics if the error value is not nil. It is intended for use with
// functions that return two values and an error.
func OK2[T1, T2 any](v1 T1, v2 T2, err error) (T1, T2) {
	if err != nil {
		panic(err)
	}
	return v1, v2
}

// ReadFileString reads the named file and converts the content to a string.
func ReadFileString(fname string) string {
	return string(OK1(os.ReadFile(fname)))
}

// WriteFile writes data to a file, after creating all ancestor directories
// that don't exist.
func WriteFile(fname, data string) {
	OK(os.MkdirAll(filepath.Dir(fname), 0700))
	OK(os.WriteFile(fname, []byte(data), 0600))
}
