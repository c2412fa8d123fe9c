package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "다크 모드 설정",
	Long: `웹 UI의 다크 모드 설정을 조회하거나 전환합니다.

Example:
  go run ./cmd/screener theme show
  go run ./cmd/screener theme toggle`,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "현재 테마 조회",
	RunE:  runThemeShow,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "테마 전환",
	RunE:  runThemeToggle,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeToggleCmd)
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	th := a.session.Theme()
	PrintInfo(fmt.Sprintf("Theme: %s %s", themeName(th.Dark()), th.Icon()))
	return nil
}

func runThemeToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	dark, err := a.session.ToggleTheme(ctx)
	if err != nil {
		PrintError("Failed to update theme")
		return err
	}

	PrintSuccess(fmt.Sprintf("Theme switched to %s %s", themeName(dark), a.session.Theme().Icon()))
	return nil
}
