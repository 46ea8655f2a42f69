package evaltest

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// A fixture entry describes one test case in a YAML fixture file. The file
// is a list of entries:
//
//	- name: addition
//	  code: print(1 + 2)
//	  out: |
//	    3
//	- name: undefined name
//	  code: x
//	  error: undefined name "x"
type fixtureEntry struct {
	Name  string `yaml:"name"`
	Code  string `yaml:"code"`
	Input string `yaml:"input"`
	Out   string `yaml:"out"`
	Error string `yaml:"error"`
}

// TestFixtures runs all the test cases found in YAML files matching the
// pattern, which is interpreted relative to the test's working directory.
func TestFixtures(t *testing.T, pattern string) {
	t.Helper()
	fnames, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatal(err)
	}
	if len(fnames) == 0 {
		t.Fatalf("no fixture files match %q", pattern)
	}
	for _, fname := range fnames {
		entries, err := readFixture(fname)
		if err != nil {
			t.Fatalf("read %s: %v", fname, err)
		}
		t.Run(filepath.Base(fname), func(t *testing.T) {
			for _, entry := range entries {
				t.Run(entry.Name, func(t *testing.T) {
					runFixtureEntry(t, entry)
				})
			}
		})
	}
}

func readFixture(fname string) ([]fixtureEntry, error) {
	content, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	var entries []fixtureEntry
	err = yaml.Unmarshal(content, &entries)
	return entries, err
}

func runFixtureEntry(t *testing.T, entry fixtureEntry) {
	t.Helper()
	c := That(entry.Code).WithInput(entry.Input).Prints(entry.Out)
	if entry.Error != "" {
		c = c.Throws(ErrorWithMessage(entry.Error))
	}
	Test(t, c)
}
