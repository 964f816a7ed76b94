package codexhistory

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ListSessions scans the Codex data dir and returns all usable sessions,
// newest first. Malformed or unreadable rollout files are skipped; a missing
// sessions directory is an error.
func ListSessions(codexDir string) ([]Session, error) {
	root, err := ResolveCodexDir(codexDir)
	if err != nil {
		return nil, err
	}
	sessionsDir := filepath.Join(root, "sessions")
	if !isDir(sessionsDir) {
		return nil, fmt.Errorf("Codex sessions dir not found: %s", sessionsDir)
	}

	files, err := collectSessionFiles(sessionsDir)
	if err != nil {
		return nil, fmt.Errorf("walk sessions dir: %w", err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	historyIdx := loadHistoryIndex(root)

	sessionIndex := map[string]int{}
	modified := map[string]int64{}
	sessions := make([]Session, 0, len(files))

	for _, filePath := range files {
		name := filepath.Base(filePath)

		meta, err := readSessionFileMetaCached(filePath)
		if err != nil {
			continue
		}

		sessionID := meta.SessionID
		if sessionID == "" {
			sessionID = parseSessionIDFromFilename(name)
		}
		if sessionID == "" {
			continue
		}

		// Enrich from history.jsonl
		if meta.FirstPrompt == "" {
			if info, ok := historyIdx.lookup(sessionID); ok {
				meta.FirstPrompt = info.FirstPrompt
				if meta.CreatedAt.IsZero() {
					meta.CreatedAt = info.FirstPromptTime
				}
			}
		}

		// Fallback timestamp from filename
		if meta.CreatedAt.IsZero() {
			meta.CreatedAt = parseTimestampFromFilename(name)
		}

		if strings.TrimSpace(meta.Cwd) == "" || strings.TrimSpace(meta.FirstPrompt) == "" {
			continue
		}

		sess := Session{
			SessionID:     sessionID,
			Cwd:           strings.TrimSpace(meta.Cwd),
			GitBranch:     meta.GitBranch,
			GitRepository: meta.GitRepo,
			FirstPrompt:   meta.FirstPrompt,
			Timestamp:     meta.CreatedAt,
			FilePath:      filePath,
		}

		// Deduplicate by session ID, keep the more recently written file
		if existingIdx, ok := sessionIndex[sessionID]; ok {
			if meta.ModifiedAt.UnixNano() > modified[sessionID] {
				sessions[existingIdx] = sess
				modified[sessionID] = meta.ModifiedAt.UnixNano()
			}
			continue
		}
		sessionIndex[sessionID] = len(sessions)
		modified[sessionID] = meta.ModifiedAt.UnixNano()
		sessions = append(sessions, sess)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		if !sessions[i].Timestamp.Equal(sessions[j].Timestamp) {
			return sessions[i].Timestamp.After(sessions[j].Timestamp)
		}
		return sessions[i].FilePath < sessions[j].FilePath
	})

	return sessions, nil
}

// FindSessionByID locates one session by its exact id.
func FindSessionByID(codexDir, sessionID string) (*Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("empty session ID")
	}
	sessions, err := ListSessions(codexDir)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].SessionID == sessionID {
			sess := sessions[i]
			return &sess, nil
		}
	}
	return nil, fmt.Errorf("session not found: %s", sessionID)
}

// SessionWorkingDir returns the directory a resumed session should run in:
// the recorded cwd when it still exists, otherwise empty (caller's cwd).
func SessionWorkingDir(s Session) string {
	path := strings.TrimSpace(s.Cwd)
	if isDir(path) {
		return path
	}
	return ""
}
