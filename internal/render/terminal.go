package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wonny/techscreener/internal/contracts"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(18)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	neutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	starStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Terminal table columns
const (
	colGrowth    = 7
	colSentiment = 8
	colStar      = 10
)

// Terminal renders view models as lipgloss tables for the CLI
type Terminal struct{}

// NewTerminal creates a terminal renderer
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Table writes the stock table, or the placeholder message
func (r *Terminal) Table(w io.Writer, t Table) error {
	if t.Message != "" {
		_, err := fmt.Fprintln(w, dimStyle.Render(t.Message))
		return err
	}

	rows := t.Rows
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Ticker", "Company", "Sector", "Price", "Mkt Cap", "P/E", "P/S", "Rev Growth", "Sentiment", "Guidance", "★").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(rows) {
				return headerStyle
			}
			switch col {
			case colGrowth:
				return classStyle(rows[row].GrowthClass)
			case colSentiment:
				return classStyle(rows[row].SentimentClass)
			case colStar:
				return cellStyle.Foreground(starStyle.GetForeground())
			}
			return cellStyle
		})

	for _, row := range rows {
		tbl.Row(row.Ticker, row.Name, row.Sector, row.Price, row.MarketCap, row.PE, row.PS,
			row.RevenueGrowth, row.Sentiment+trendArrow(row.TrendClass), row.Guidance, row.Star)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", tbl.Render(), dimStyle.Render(fmt.Sprintf("%d stocks", t.Count)))
	return err
}

// Detail writes the labelled detail view
func (r *Terminal) Detail(w io.Writer, d Detail) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n\n")

	lines := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Current Price", d.Price, cellStyle},
		{"Market Cap", d.MarketCap, cellStyle},
		{"P/E Ratio", d.PE, cellStyle},
		{"P/S Ratio", d.PS, cellStyle},
		{"P/B Ratio", d.PB, cellStyle},
		{"EV/EBITDA", d.EVEBITDA, cellStyle},
		{"Revenue Growth", d.RevenueGrowth, classStyle(d.RevenueClass)},
		{"Earnings Growth", d.EarningsGrowth, classStyle(d.EarningsClass)},
		{"Volume", d.Volume, cellStyle},
		{"Sector", d.Sector, cellStyle},
		{"Sentiment Score", d.Sentiment, classStyle(d.SentimentClass)},
		{"Guidance", d.Guidance, classStyle(d.Guidance)},
	}
	for _, l := range lines {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(l.label), l.style.Render(l.value)))
		b.WriteString("\n")
	}

	if d.InWatchlist {
		b.WriteString("\n" + starStyle.Render(StarOn+" in watchlist") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Watchlist writes the watchlist entries, or the empty-state message
func (r *Terminal) Watchlist(w io.Writer, v WatchlistView) error {
	if v.Message != "" {
		_, err := fmt.Fprintln(w, dimStyle.Render(v.Message))
		return err
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Ticker", "Company", "Price", "Growth").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(v.Entries) {
				return headerStyle
			}
			if col == 3 {
				return classStyle(v.Entries[row].GrowthClass)
			}
			return cellStyle
		})

	for _, e := range v.Entries {
		tbl.Row(e.Ticker, e.Name, e.Price, e.Growth)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", tbl.Render(), dimStyle.Render(fmt.Sprintf("%d tickers watched", v.Count)))
	return err
}

// classStyle colours a cell by its CSS class (growth, sentiment or guidance)
func classStyle(class string) lipgloss.Style {
	switch class {
	case ClassSuccess, contracts.SentimentPositive:
		return cellStyle.Foreground(successStyle.GetForeground())
	case ClassDanger, contracts.SentimentNegative:
		return cellStyle.Foreground(dangerStyle.GetForeground())
	case contracts.SentimentNeutral:
		return cellStyle.Foreground(neutralStyle.GetForeground())
	}
	return cellStyle
}

func trendArrow(trendClass string) string {
	switch trendClass {
	case "trend-up":
		return " ↑"
	case "trend-down":
		return " ↓"
	}
	return ""
}
