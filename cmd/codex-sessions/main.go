package main

import (
	"os"

	"github.com/baaaaaaaka/codex-sessions/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
