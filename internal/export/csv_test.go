package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/techscreener/internal/contracts"
)

func f64(v float64) *float64 { return &v }

func readBack(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSV_NullRatio(t *testing.T) {
	stocks := []contracts.Stock{
		{Ticker: "AAA", Name: "Alpha", Sector: "Software", Price: 12.5, MarketCap: 3.2,
			PERatio: nil, PSRatio: f64(4.25), RevenueGrowth: 5.2, SentimentScore: 0.75, ManagementGuidance: "positive"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, stocks))

	records := readBack(t, buf.Bytes())
	require.Len(t, records, len(stocks)+1)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{"AAA", "Alpha", "Software", "12.5", "3.2", "N/A", "4.25", "5.2", "0.75", "positive"}, records[1])
}

func TestWriteCSV_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Ticker,Company,Sector,Price,Market Cap (B),P/E,P/S,Revenue Growth %,Sentiment,Guidance\n", buf.String())
}

func TestWriteCSV_RowCount(t *testing.T) {
	stocks := make([]contracts.Stock, 25)
	for i := range stocks {
		stocks[i] = contracts.Stock{Ticker: strings.Repeat("X", i%4+1), PERatio: f64(0)}
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, stocks))

	records := readBack(t, buf.Bytes())
	assert.Len(t, records, 26)
	// a zero ratio is also N/A
	assert.Equal(t, "N/A", records[1][5])
}

func TestWriteCSV_QuotesFields(t *testing.T) {
	stocks := []contracts.Stock{
		{Ticker: "CMA", Name: `Comma, "Quoted"` + "\nInc", Sector: "Software", PERatio: f64(10)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, stocks))
	assert.Contains(t, buf.String(), `"Comma, ""Quoted""`)

	records := readBack(t, buf.Bytes())
	require.Len(t, records, 2)
	assert.Equal(t, stocks[0].Name, records[1][1])
	assert.Len(t, records[1], len(Header))
}

func TestFileName(t *testing.T) {
	ts := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("PST", -8*3600))
	assert.Equal(t, "nasdaq-tech-screener-2024-03-10.csv", FileName(ts))
}
