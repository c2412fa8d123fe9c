package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/techscreener/internal/render"
)

// watchlistCmd represents the watchlist command
var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "관심종목 관리",
	Long: `저장된 관심종목을 조회하거나 추가/제거합니다.

Example:
  go run ./cmd/screener watchlist list
  go run ./cmd/screener watchlist toggle NVDA`,
}

// watchlistListCmd represents the list subcommand
var watchlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "관심종목 조회",
	RunE:  runWatchlistList,
}

// watchlistToggleCmd represents the toggle subcommand
var watchlistToggleCmd = &cobra.Command{
	Use:   "toggle <ticker>",
	Short: "관심종목 추가/제거",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatchlistToggle,
}

func init() {
	rootCmd.AddCommand(watchlistCmd)
	watchlistCmd.AddCommand(watchlistListCmd)
	watchlistCmd.AddCommand(watchlistToggleCmd)
}

func runWatchlistList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	// names and prices come from the full list; tickers alone still print
	if err := a.session.LoadStocks(ctx); err != nil {
		PrintWarning("Backend unavailable, showing tickers only")
		tickers := a.session.Watchlist().Tickers()
		if len(tickers) == 0 {
			fmt.Println(render.MsgEmptyWatchlist)
			return nil
		}
		PrintList(tickers)
		return nil
	}

	return render.NewTerminal().Watchlist(cmd.OutOrStdout(), a.session.WatchlistView())
}

func runWatchlistToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	ticker := args[0]
	added, err := a.session.ToggleWatchlist(ctx, ticker)
	if err != nil {
		PrintError("Failed to update watchlist")
		return err
	}

	if added {
		PrintSuccess(fmt.Sprintf("%s added to watchlist (%d)", ticker, a.session.Watchlist().Count()))
	} else {
		PrintSuccess(fmt.Sprintf("%s removed from watchlist (%d)", ticker, a.session.Watchlist().Count()))
	}
	return nil
}
