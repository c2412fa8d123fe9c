package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	apiURL  string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "NASDAQ Tech Screener - 기술주 스크리너 클라이언트",
	Long: `NASDAQ Tech Screener CLI

스크리너 백엔드 REST API(/stats, /stocks, /sectors, /screen)를 사용하는 클라이언트.
웹 UI 서버와 터미널 명령을 함께 제공합니다.

Usage:
  go run ./cmd/screener [command]

Examples:
  go run ./cmd/screener serve
  go run ./cmd/screener stocks
  go run ./cmd/screener screen --min-pe 10 --max-pe 30 --sector Software
  go run ./cmd/screener watchlist toggle NVDA
  go run ./cmd/screener export --output picks.csv`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "screener API base URL (default SCREENER_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
