package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/baaaaaaaka/codex-sessions/internal/codexhistory"
)

func TestListOutputsJSON(t *testing.T) {
	stubSeams(t)
	proj := t.TempDir()
	codexDir := newCodexFixture(t, proj)
	getwd = func() (string, error) { return proj, nil }

	stdout, _, err := runCommand(t, append([]string{"list"}, fixtureArgs(t, codexDir)...)...)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var payload struct {
		Sessions []codexhistory.Session `json:"sessions"`
	}
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("parse output: %v\n%s", err, stdout)
	}
	if len(payload.Sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(payload.Sessions))
	}
	if payload.Sessions[0].SessionID != fixtureID2 {
		t.Errorf("sessions[0] = %q, want newest first", payload.Sessions[0].SessionID)
	}
	if payload.Sessions[0].FirstPrompt != "newest prompt" {
		t.Errorf("FirstPrompt = %q", payload.Sessions[0].FirstPrompt)
	}
}

func TestListPretty(t *testing.T) {
	stubSeams(t)
	proj := t.TempDir()
	codexDir := newCodexFixture(t, proj)
	getwd = func() (string, error) { return proj, nil }

	stdout, _, err := runCommand(t, append([]string{"list", "--pretty"}, fixtureArgs(t, codexDir)...)...)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout, "\n  ") {
		t.Errorf("output not indented:\n%s", stdout)
	}
}
