package codexhistory

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadHistoryIndex(t *testing.T) {
	root := t.TempDir()
	content := `{"session_id":"s1","ts":200,"text":"later prompt"}
{"session_id":"s1","ts":100,"text":"earliest prompt"}
{"session_id":"s2","ts":300,"text":"<environment_context>noise</environment_context>"}
{"session_id":"s2","ts":400,"text":"real prompt"}
not json at all
{"ts":500,"text":"missing id"}
`
	if err := os.WriteFile(filepath.Join(root, "history.jsonl"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	idx := loadHistoryIndex(root)

	info, ok := idx.lookup("s1")
	if !ok {
		t.Fatal("s1 not indexed")
	}
	if info.FirstPrompt != "earliest prompt" {
		t.Errorf("s1 prompt = %q, want earliest by ts", info.FirstPrompt)
	}

	info, ok = idx.lookup("s2")
	if !ok {
		t.Fatal("s2 not indexed")
	}
	if info.FirstPrompt != "real prompt" {
		t.Errorf("s2 prompt = %q, want noise skipped", info.FirstPrompt)
	}

	if _, ok := idx.lookup("absent"); ok {
		t.Error("unknown session id should not resolve")
	}
}

func TestLoadHistoryIndex_MissingFile(t *testing.T) {
	idx := loadHistoryIndex(t.TempDir())
	if _, ok := idx.lookup("anything"); ok {
		t.Error("empty index should resolve nothing")
	}
}
