package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/techscreener/internal/export"
	"github.com/wonny/techscreener/internal/render"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "CSV 내보내기",
	Long: `현재 목록(필터 적용 시 결과)을 CSV로 저장합니다.
파일명 기본값: nasdaq-tech-screener-YYYY-MM-DD.csv

Example:
  go run ./cmd/screener export
  go run ./cmd/screener export --min-pe 10 --output cheap.csv
  go run ./cmd/screener export --output -`,
	RunE: runExport,
}

var (
	exportOutput  string
	exportFilters filterFlags
)

func init() {
	rootCmd.AddCommand(exportCmd)

	// Flags
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "출력 파일 (- = stdout)")
	exportFilters.register(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	if exportFilters.active() {
		if exportFilters.preset != "" {
			err = a.session.ApplyPreset(ctx, exportFilters.preset)
		} else {
			err = a.session.Apply(ctx, exportFilters.form())
		}
		if err != nil {
			PrintError("Error applying filters")
			return err
		}
	}

	stocks := a.session.Working()

	if exportOutput == "-" {
		return export.WriteCSV(cmd.OutOrStdout(), stocks)
	}

	path := exportOutput
	if path == "" {
		path = export.FileName(time.Now())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := export.WriteCSV(f, stocks); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	PrintSuccess(fmt.Sprintf("Exported %d stocks to %s", len(stocks), path))
	return nil
}
