package codexhistory

import (
	"os"
	"path/filepath"
	"strings"
)

func isDir(path string) bool {
	path = strings.TrimSpace(path)
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// normalizePath makes a path absolute and resolves symlinks where possible,
// so recorded cwds compare equal to the invoking cwd regardless of how
// either was spelled.
func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return filepath.Clean(path)
}

// dirsRelated reports whether a and b are the same directory or one is a
// path ancestor of the other.
func dirsRelated(a, b string) bool {
	a = normalizePath(a)
	b = normalizePath(b)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(b, strings.TrimSuffix(a, sep)+sep) ||
		strings.HasPrefix(a, strings.TrimSuffix(b, sep)+sep)
}
