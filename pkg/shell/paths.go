package shell

import (
	"os"
	"path/filepath"
)

// rcPath returns the path of the rc.kz file sourced when entering the
// interactive mode.
func rcPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "kuzur", "rc.kz"), nil
}

// dbPath returns the path of the command history database.
func dbPath() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".local", "state", "kuzur", "db.bolt"), nil
}
