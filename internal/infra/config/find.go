package config

import (
	"os"
	"path/filepath"
)

// Find returns the nearest DefaultPath at or above startDir. A file path
// is searched from its directory.
func Find(startDir string) (string, bool) {
	if startDir == "" {
		return "", false
	}
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		p := filepath.Join(cur, DefaultPath)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", false
		}
		cur = parent
	}
}
