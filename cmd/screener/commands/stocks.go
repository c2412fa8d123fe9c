package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/techscreener/internal/render"
)

// stocksCmd represents the stocks command
var stocksCmd = &cobra.Command{
	Use:   "stocks [ticker]",
	Short: "종목 목록 / 상세 조회",
	Long: `전체 종목 테이블을 출력합니다. 티커를 주면 상세 정보를 출력합니다.

Example:
  go run ./cmd/screener stocks
  go run ./cmd/screener stocks NVDA`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStocks,
}

func init() {
	rootCmd.AddCommand(stocksCmd)
}

func runStocks(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	out := render.NewTerminal()
	loadErr := a.session.LoadStocks(ctx)

	if len(args) == 0 {
		if err := out.Table(cmd.OutOrStdout(), a.session.TableView()); err != nil {
			return err
		}
		return loadErr
	}

	if loadErr != nil {
		PrintError(render.MsgLoadError)
		return loadErr
	}

	detail, err := a.session.DetailFor(args[0])
	if err != nil {
		return err
	}
	return out.Detail(cmd.OutOrStdout(), detail)
}
