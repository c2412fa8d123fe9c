package config_test

import (
	"fmt"

	"github.com/wonny/techscreener/pkg/config"
)

// Example demonstrates how to use the config package
func Example() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}

	// Access configuration values
	fmt.Printf("Server running on port: %s\n", cfg.Port)
	fmt.Printf("Screener API: %s\n", cfg.ScreenerAPI.BaseURL)
	fmt.Printf("Storage: %s\n", cfg.Storage.Backend)
}
