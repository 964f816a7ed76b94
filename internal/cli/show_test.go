package cli

import (
	"strings"
	"testing"
)

func TestShowPrintsSessionDetails(t *testing.T) {
	stubSeams(t)
	proj := t.TempDir()
	codexDir := newCodexFixture(t, proj)
	getwd = func() (string, error) { return proj, nil }

	stdout, _, err := runCommand(t, append([]string{"show", fixtureID1}, fixtureArgs(t, codexDir)...)...)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout, fixtureID1) {
		t.Errorf("stdout = %q, want session id", stdout)
	}
	if !strings.Contains(stdout, "file:") {
		t.Errorf("stdout = %q, want file path line", stdout)
	}
	if !strings.Contains(stdout, "started:") {
		t.Errorf("stdout = %q, want start time line", stdout)
	}
}

func TestShowUnknownID(t *testing.T) {
	stubSeams(t)
	proj := t.TempDir()
	codexDir := newCodexFixture(t, proj)
	getwd = func() (string, error) { return proj, nil }

	_, _, err := runCommand(t, append([]string{"show", "999c4bb0-5fdb-7352-9b9c-9efe77d2d60d"}, fixtureArgs(t, codexDir)...)...)
	if err == nil {
		t.Fatal("expected error for unknown session id")
	}
}
