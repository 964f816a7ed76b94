package codexhistory

import (
	"regexp"
	"strings"
)

// MaxPromptLength caps the prompt snippet in summary lines.
const MaxPromptLength = 160

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// SummarizePrompt reduces a raw first prompt to a single display line:
// tags stripped, first non-empty line, whitespace collapsed, capped at
// MaxPromptLength with a trailing ellipsis.
func SummarizePrompt(prompt string) string {
	cleaned := tagPattern.ReplaceAllString(prompt, " ")

	meaningful := ""
	for _, rawLine := range strings.Split(cleaned, "\n") {
		if line := strings.TrimSpace(rawLine); line != "" {
			meaningful = line
			break
		}
	}
	if meaningful == "" {
		meaningful = cleaned
	}

	summary := strings.Join(strings.Fields(meaningful), " ")
	if summary == "" {
		return ""
	}
	// Length is measured in characters, not bytes; slicing bytes would split
	// multi-byte runes.
	if runes := []rune(summary); len(runes) > MaxPromptLength {
		summary = strings.TrimRight(string(runes[:MaxPromptLength-1]), " ") + "…"
	}
	return summary
}

// FormatSummaryLine renders one session as
// "<timestamp> | <id> | <cwd> [<branch>] | <prompt snippet>".
// The branch segment is omitted when the session recorded none.
func FormatSummaryLine(s Session) string {
	ts := "unknown"
	if !s.Timestamp.IsZero() {
		ts = s.Timestamp.Local().Format("2006-01-02 15:04:05 MST")
	}
	branch := ""
	if s.GitBranch != "" {
		branch = " [" + s.GitBranch + "]"
	}
	return ts + " | " + s.SessionID + " | " + s.Cwd + branch + " | " + SummarizePrompt(s.FirstPrompt)
}
