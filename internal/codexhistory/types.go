package codexhistory

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const EnvCodexDir = "CODEX_DIR"

// Session is the metadata extracted from one rollout file. Parsing never
// mutates the underlying file; sessions are rebuilt from disk on every
// invocation.
type Session struct {
	SessionID     string    `json:"session_id"`
	Cwd           string    `json:"cwd"`
	GitBranch     string    `json:"git_branch,omitempty"`
	GitRepository string    `json:"git_repository,omitempty"`
	FirstPrompt   string    `json:"first_prompt"`
	Timestamp     time.Time `json:"timestamp"`
	FilePath      string    `json:"file_path"`
}

func (s Session) DisplayTitle() string {
	if s.FirstPrompt != "" {
		return s.FirstPrompt
	}
	if s.SessionID != "" {
		return s.SessionID
	}
	return "untitled"
}

func DefaultCodexDir() string {
	if v := os.Getenv(EnvCodexDir); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".codex")
}

func ResolveCodexDir(override string) (string, error) {
	if v := strings.TrimSpace(override); v != "" {
		return filepath.Clean(os.ExpandEnv(v)), nil
	}
	if v := strings.TrimSpace(os.Getenv(EnvCodexDir)); v != "" {
		return filepath.Clean(os.ExpandEnv(v)), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".codex"), nil
}
