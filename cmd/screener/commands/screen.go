package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/techscreener/internal/render"
)

// screenCmd represents the screen command
var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "필터 적용 (/screen)",
	Long: `필터 조건을 백엔드 /screen에 보내고 결과 테이블을 출력합니다.
비어 있거나 숫자가 아닌 값, 0은 조건에서 제외됩니다.

Example:
  go run ./cmd/screener screen --min-market-cap 100 --guidance positive
  go run ./cmd/screener screen --sector Software --sector Semiconductors
  go run ./cmd/screener screen --preset growth`,
	RunE: runScreen,
}

var screenFilters filterFlags

func init() {
	rootCmd.AddCommand(screenCmd)
	screenFilters.register(screenCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.session.LoadStocks(ctx); err != nil {
		PrintError(render.MsgLoadError)
		return err
	}

	if screenFilters.preset != "" {
		err = a.session.ApplyPreset(ctx, screenFilters.preset)
	} else {
		err = a.session.Apply(ctx, screenFilters.form())
	}
	if err != nil {
		PrintError("Error applying filters")
		return err
	}

	return render.NewTerminal().Table(cmd.OutOrStdout(), a.session.TableView())
}
