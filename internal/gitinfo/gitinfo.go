// Package gitinfo discovers the git branch and repository identity of a
// directory by shelling out to the git executable. The process call sits
// behind a Runner so tests can substitute a fake.
package gitinfo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Context is the git identity of one directory. Either field may be empty
// when git is unavailable or the directory is not a repository.
type Context struct {
	Branch     string
	Repository string
}

func (c Context) IsZero() bool {
	return c.Branch == "" && c.Repository == ""
}

// Runner executes an external command in dir and returns its trimmed stdout.
type Runner func(ctx context.Context, dir string, name string, args ...string) (string, error)

// ExecRunner is the real Runner backed by os/exec.
func ExecRunner(ctx context.Context, dir string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Detector memoizes per-directory git lookups for the lifetime of one
// invocation, since session enrichment may probe the same cwd many times.
type Detector struct {
	run  Runner
	memo map[string]Context
}

func NewDetector(run Runner) *Detector {
	if run == nil {
		run = ExecRunner
	}
	return &Detector{run: run, memo: map[string]Context{}}
}

// Detect queries git for the branch and repository of dir. Failures are not
// errors: a missing git binary or a non-repository directory yields a zero
// Context.
func (d *Detector) Detect(ctx context.Context, dir string) Context {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return Context{}
	}
	if got, ok := d.memo[dir]; ok {
		return got
	}

	var info Context
	if branch, err := d.run(ctx, dir, "git", "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		info.Branch = branch
	}
	if remote, err := d.run(ctx, dir, "git", "config", "--get", "remote.origin.url"); err == nil && remote != "" {
		info.Repository = remote
	} else if top, err := d.run(ctx, dir, "git", "rev-parse", "--show-toplevel"); err == nil {
		info.Repository = top
	}

	d.memo[dir] = info
	return info
}

// NormalizeRepoIdentifier reduces a remote URL or local path to a comparable
// form: scheme and "git@" prefixes stripped, ".git" suffix dropped, local
// paths made absolute, everything lowercased.
func NormalizeRepoIdentifier(identifier string) string {
	value := strings.TrimSpace(identifier)
	if value == "" {
		return ""
	}

	if strings.HasPrefix(value, "git@") {
		value = value[len("git@"):]
		if user, rest, ok := strings.Cut(value, ":"); ok {
			value = user + "/" + rest
		}
	} else if _, rest, ok := strings.Cut(value, "://"); ok {
		value = rest
	}

	if strings.HasPrefix(value, "/") || strings.HasPrefix(value, "~") {
		if strings.HasPrefix(value, "~") {
			value = expandHome(value)
		}
		if abs, err := filepath.Abs(value); err == nil {
			value = abs
		}
		if resolved, err := filepath.EvalSymlinks(value); err == nil {
			value = resolved
		}
	} else {
		value = strings.Trim(value, "/")
	}

	value = strings.TrimSuffix(value, ".git")
	return strings.ToLower(value)
}

// SameRepo reports whether two repository identifiers refer to the same
// repository after normalization.
func SameRepo(a, b string) bool {
	return NormalizeRepoIdentifier(a) == NormalizeRepoIdentifier(b)
}

func expandHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
