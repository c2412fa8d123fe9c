package main

import (
	"os"

	"github.com/wonny/techscreener/cmd/screener/commands"
)

// main is the entry point for the screener CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/screener [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
