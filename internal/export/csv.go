package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/wonny/techscreener/internal/contracts"
)

// ContentType of the export download
const ContentType = "text/csv"

// Header is the first CSV record
var Header = []string{
	"Ticker", "Company", "Sector", "Price", "Market Cap (B)",
	"P/E", "P/S", "Revenue Growth %", "Sentiment", "Guidance",
}

// WriteCSV writes a header plus one record per stock. Absent or zero
// P/E and P/S become "N/A"; numbers use the shortest exact formatting.
func WriteCSV(w io.Writer, stocks []contracts.Stock) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i := range stocks {
		if err := cw.Write(record(&stocks[i])); err != nil {
			return fmt.Errorf("write csv row %s: %w", stocks[i].Ticker, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// FileName is the download name for an export made at t (UTC date)
func FileName(t time.Time) string {
	return "nasdaq-tech-screener-" + t.UTC().Format("2006-01-02") + ".csv"
}

func record(s *contracts.Stock) []string {
	return []string{
		s.Ticker,
		s.Name,
		s.Sector,
		number(s.Price),
		number(s.MarketCap),
		ratio(s.PERatio),
		ratio(s.PSRatio),
		number(s.RevenueGrowth),
		number(s.SentimentScore),
		s.ManagementGuidance,
	}
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func ratio(v *float64) string {
	if !contracts.HasRatio(v) {
		return "N/A"
	}
	return number(*v)
}
