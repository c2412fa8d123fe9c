package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/techscreener/internal/filter"
)

// filterFlags mirrors the filter panel inputs on the command line
type filterFlags struct {
	minMarketCap string
	maxMarketCap string
	minPE        string
	maxPE        string
	minPS        string
	maxPS        string
	minRevGrowth string
	minSentiment string
	guidance     string
	sectors      []string
	preset       string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.minMarketCap, "min-market-cap", "", "최소 시가총액 (B)")
	flags.StringVar(&f.maxMarketCap, "max-market-cap", "", "최대 시가총액 (B)")
	flags.StringVar(&f.minPE, "min-pe", "", "최소 P/E")
	flags.StringVar(&f.maxPE, "max-pe", "", "최대 P/E")
	flags.StringVar(&f.minPS, "min-ps", "", "최소 P/S")
	flags.StringVar(&f.maxPS, "max-ps", "", "최대 P/S")
	flags.StringVar(&f.minRevGrowth, "min-rev-growth", "", "최소 매출 성장률 (%)")
	flags.StringVar(&f.minSentiment, "min-sentiment", "", "최소 센티먼트 점수")
	flags.StringVar(&f.guidance, "guidance", "", "경영진 가이던스 (positive|neutral|negative)")
	flags.StringSliceVar(&f.sectors, "sector", nil, "섹터 (반복 가능)")
	flags.StringVar(&f.preset, "preset", "", "PRESETS_FILE에 정의된 프리셋 이름")
}

// form returns the typed inputs as a raw filter form
func (f *filterFlags) form() filter.Form {
	return filter.Form{
		MinMarketCap:     f.minMarketCap,
		MaxMarketCap:     f.maxMarketCap,
		MinPERatio:       f.minPE,
		MaxPERatio:       f.maxPE,
		MinPSRatio:       f.minPS,
		MaxPSRatio:       f.maxPS,
		MinRevenueGrowth: f.minRevGrowth,
		MinSentiment:     f.minSentiment,
		Guidance:         f.guidance,
		Sectors:          f.sectors,
	}
}

// active reports whether any filter or a preset was given
func (f *filterFlags) active() bool {
	return f.preset != "" || !f.form().IsZero()
}
