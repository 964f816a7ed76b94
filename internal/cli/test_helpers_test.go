package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baaaaaaaka/codex-sessions/internal/codexhistory"
	"github.com/baaaaaaaka/codex-sessions/internal/config"
)

// stubSeams snapshots the package seams and restores them after the test.
func stubSeams(t *testing.T) {
	t.Helper()
	prevPick := pickIndex
	prevRunner := gitRunner
	prevGetwd := getwd
	prevTerm := isTerminal
	prevResume := runResumeFunc
	t.Cleanup(func() {
		pickIndex = prevPick
		gitRunner = prevRunner
		getwd = prevGetwd
		isTerminal = prevTerm
		runResumeFunc = prevResume
	})
}

func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func newTempStore(t *testing.T) *config.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	store, err := config.NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

// writeSessionFixture writes one rollout file under codexDir/sessions. stamp
// is the filename timestamp portion (2026-02-11T15-52-56).
func writeSessionFixture(t *testing.T, codexDir, stamp, id, cwd, branch, repo, prompt string) {
	t.Helper()

	isoStamp := stamp
	if len(isoStamp) == 19 {
		b := []byte(isoStamp)
		b[13] = ':'
		b[16] = ':'
		isoStamp = string(b) + "Z"
	}

	dir := filepath.Join(codexDir, "sessions", "2026", "02", "11")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, fmt.Sprintf("rollout-%s-%s.jsonl", stamp, id))

	var sb strings.Builder
	fmt.Fprintf(&sb, `{"timestamp":%q,"type":"session_meta","payload":{"id":%q,"cwd":%q,"timestamp":%q,"git":{"branch":%q,"repository_url":%q}}}`+"\n",
		isoStamp, id, cwd, isoStamp, branch, repo)
	fmt.Fprintf(&sb, `{"timestamp":%q,"type":"response_item","payload":{"type":"message","role":"user","content":[{"type":"input_text","text":%q}]}}`+"\n",
		isoStamp, prompt)
	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		t.Fatal(err)
	}
}

// fixtureArgs are the flags every test invocation passes so nothing touches
// the real user config or Codex dir.
func fixtureArgs(t *testing.T, codexDir string) []string {
	t.Helper()
	return []string{
		"--codex-dir", codexDir,
		"--config", filepath.Join(t.TempDir(), "config.json"),
	}
}

func newCodexFixture(t *testing.T, proj string) string {
	t.Helper()
	codexhistory.ResetCache()
	codexDir := t.TempDir()
	writeSessionFixture(t, codexDir, "2026-02-11T10-00-00", fixtureID1, proj, "", "", "oldest prompt")
	writeSessionFixture(t, codexDir, "2026-02-11T12-00-00", fixtureID2, proj, "", "", "newest prompt")
	writeSessionFixture(t, codexDir, "2026-02-11T11-00-00", fixtureID3, t.TempDir(), "", "", "other project")
	return codexDir
}

const (
	fixtureID1 = "119c4bb0-5fdb-7352-9b9c-9efe77d2d60d"
	fixtureID2 = "229c4bb0-5fdb-7352-9b9c-9efe77d2d60d"
	fixtureID3 = "339c4bb0-5fdb-7352-9b9c-9efe77d2d60d"
)
