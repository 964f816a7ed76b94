package codexhistory

import "strings"

// Filter restricts sessions to the invoking project directory and,
// optionally, the current git branch and repository. Zero-value git fields
// disable the git checks.
type Filter struct {
	Dir        string
	Branch     string
	Repository string

	// LookupGit backfills the branch and repository fields a rollout file
	// did not record. May be nil.
	LookupGit func(dir string) (branch, repository string)

	// SameRepo reports whether two repository identifiers name the same
	// repository. Required when Repository is set.
	SameRepo func(a, b string) bool
}

// Apply keeps the matching subset in input order.
func (f Filter) Apply(sessions []Session) []Session {
	gitScoped := f.Branch != "" || f.Repository != ""
	out := make([]Session, 0, len(sessions))
	for _, sess := range sessions {
		if gitScoped && f.LookupGit != nil && (sess.GitBranch == "" || sess.GitRepository == "") {
			branch, repo := f.LookupGit(sess.Cwd)
			if sess.GitBranch == "" {
				sess.GitBranch = branch
			}
			if sess.GitRepository == "" {
				sess.GitRepository = repo
			}
		}
		if f.matches(sess) {
			out = append(out, sess)
		}
	}
	return out
}

func (f Filter) matches(sess Session) bool {
	pathMatch := dirsRelated(sess.Cwd, f.Dir)

	if f.Branch != "" {
		if sess.GitBranch != f.Branch {
			return false
		}
		return f.repoCompatible(sess.GitRepository)
	}
	if f.Repository != "" {
		// Branch unknown for the current dir: widen the path match to any
		// session known to come from the same repository (worktrees).
		if pathMatch {
			return true
		}
		return sess.GitRepository != "" && f.sameRepo(sess.GitRepository)
	}
	return pathMatch
}

// repoCompatible is permissive: a session without a recorded repository is
// not excluded on repository grounds.
func (f Filter) repoCompatible(sessionRepo string) bool {
	if f.Repository == "" || strings.TrimSpace(sessionRepo) == "" {
		return true
	}
	return f.sameRepo(sessionRepo)
}

func (f Filter) sameRepo(sessionRepo string) bool {
	if f.SameRepo == nil {
		return sessionRepo == f.Repository
	}
	return f.SameRepo(sessionRepo, f.Repository)
}

// Limit truncates to the first n sessions; n <= 0 keeps everything.
func Limit(sessions []Session, n int) []Session {
	if n <= 0 || len(sessions) <= n {
		return sessions
	}
	return sessions[:n]
}
