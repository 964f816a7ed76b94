package config

const CurrentVersion = 1

// Config holds the persisted user preferences. Flags override these; these
// override built-in defaults.
type Config struct {
	Version      int    `json:"version"`
	CodexPath    string `json:"codexPath,omitempty"`
	DefaultLimit int    `json:"defaultLimit,omitempty"`
}
