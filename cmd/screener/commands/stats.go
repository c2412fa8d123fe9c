package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wonny/techscreener/internal/render"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "요약 통계 조회",
	Long: `백엔드 /stats 요약 통계를 출력합니다.

Example:
  go run ./cmd/screener stats`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.session.LoadStats(ctx); err != nil {
		PrintError("Error loading stats")
		return err
	}

	stats := a.session.Snapshot().Stats
	view := render.BuildStats(stats)

	PrintHeader("Screener Stats")
	PrintKeyValue("Total Stocks", view.TotalStocks, 18)
	PrintKeyValue("Avg P/E", view.AveragePE, 18)
	PrintKeyValue("Avg Sentiment", view.AverageSentiment, 18)
	PrintKeyValue("Positive Guidance", view.PositiveGuidance, 18)

	if len(stats.GuidanceBreakdown) > 0 {
		PrintSeparator()
		keys := make([]string, 0, len(stats.GuidanceBreakdown))
		for k := range stats.GuidanceBreakdown {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			PrintKeyValue(k, fmt.Sprintf("%d", stats.GuidanceBreakdown[k]), 18)
		}
	}
	return nil
}
