package codexhistory

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type historyIndex struct {
	sessions map[string]*historySessionInfo
}

type historySessionInfo struct {
	FirstPrompt     string
	FirstPromptTime time.Time
}

// codexHistoryEntry maps to a line in ~/.codex/history.jsonl:
//
//	{"session_id":"uuid","ts":1770777540,"text":"user input"}
type codexHistoryEntry struct {
	SessionID string `json:"session_id"`
	Ts        int64  `json:"ts"`
	Text      string `json:"text"`
}

// loadHistoryIndex reads history.jsonl to backfill first prompts for rollout
// files that carry none. Any read or parse problem yields a partial (or
// empty) index, never an error.
func loadHistoryIndex(root string) historyIndex {
	idx := historyIndex{sessions: map[string]*historySessionInfo{}}
	f, err := os.Open(filepath.Join(root, "history.jsonl"))
	if err != nil {
		return idx
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return idx
		}
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			var entry codexHistoryEntry
			if json.Unmarshal(line, &entry) == nil && entry.SessionID != "" {
				recordHistoryEntry(idx, entry)
			}
		}
		if err == io.EOF {
			break
		}
	}
	return idx
}

func recordHistoryEntry(idx historyIndex, entry codexHistoryEntry) {
	text := strings.TrimSpace(entry.Text)
	if text == "" || shouldSkipFirstPrompt(text) {
		return
	}
	info := idx.sessions[entry.SessionID]
	if info == nil {
		info = &historySessionInfo{}
		idx.sessions[entry.SessionID] = info
	}
	ts := time.Unix(entry.Ts, 0)
	if info.FirstPrompt == "" || (!ts.IsZero() && (info.FirstPromptTime.IsZero() || ts.Before(info.FirstPromptTime))) {
		info.FirstPrompt = text
		info.FirstPromptTime = ts
	}
}

func (idx historyIndex) lookup(sessionID string) (historySessionInfo, bool) {
	if sessionID == "" || idx.sessions == nil {
		return historySessionInfo{}, false
	}
	info, ok := idx.sessions[sessionID]
	if !ok || info == nil {
		return historySessionInfo{}, false
	}
	return *info, true
}
