package codexhistory

import "strings"

// Codex injects system content as user messages; none of it is a usable
// first prompt.
var noisePromptPrefixes = []string{
	"<environment_context",
	"<user_instructions",
	"<system_instructions",
	"<codex_resume",
}

func shouldSkipFirstPrompt(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, prefix := range noisePromptPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	// Codex injects AGENTS.md skill instructions as a user message
	if strings.HasPrefix(trimmed, "# AGENTS.md") {
		return true
	}
	// Instruction blocks sometimes appear unwrapped
	if strings.Contains(trimmed, "<INSTRUCTIONS>") {
		return true
	}
	return false
}
