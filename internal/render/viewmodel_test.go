package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/techscreener/internal/contracts"
)

func sampleStocks() []contracts.Stock {
	return []contracts.Stock{
		{
			Ticker: "AAA", Name: "Alpha & Co", Sector: "Software", Price: 12.5, MarketCap: 3.21,
			PERatio: f64(20.1), PSRatio: nil, PBRatio: f64(4.567), EVEBITDA: f64(0),
			RevenueGrowth: 5.2, EarningsGrowth: -1.25, Volume: 1234567,
			SentimentScore: 0.75, SentimentTrend: "up", ManagementGuidance: "positive",
		},
		{
			Ticker: "BBB", Name: "Beta", Sector: "Semiconductors", Price: 8, MarketCap: 120,
			PSRatio: f64(3.33), RevenueGrowth: -2.5, SentimentScore: 0.3,
			SentimentTrend: "down", ManagementGuidance: "neutral",
		},
	}
}

func TestBuildTable_Scenario(t *testing.T) {
	stocks := sampleStocks()[:1]

	table := BuildTable(stocks, TickerSet{})
	require.Len(t, table.Rows, 1)
	assert.Empty(t, table.Message)

	row := table.Rows[0]
	assert.Equal(t, "AAA", row.Ticker)
	assert.Equal(t, "$12.50", row.Price)
	assert.Equal(t, "$3.2B", row.MarketCap)
	assert.Equal(t, "20.1", row.PE)
	assert.Equal(t, NotAvailable, row.PS)
	assert.Equal(t, "5.2%", row.RevenueGrowth)
	assert.Equal(t, ClassSuccess, row.GrowthClass)
	assert.Equal(t, "0.75", row.Sentiment)
	assert.Equal(t, contracts.SentimentPositive, row.SentimentClass)
	assert.Equal(t, "trend-up", row.TrendClass)
	assert.Equal(t, "positive", row.Guidance)
	assert.Equal(t, StarOff, row.Star)

	table = BuildTable(stocks, TickerSet{"AAA": true})
	assert.Equal(t, StarOn, table.Rows[0].Star)
	assert.True(t, table.Rows[0].InWatchlist)
}

func TestBuildTable_Empty(t *testing.T) {
	table := BuildTable(nil, TickerSet{})
	assert.Equal(t, MsgNoMatches, table.Message)
	assert.Empty(t, table.Rows)
	assert.Equal(t, 0, table.Count)
}

func TestErrorTable(t *testing.T) {
	table := ErrorTable()
	assert.Equal(t, MsgLoadError, table.Message)
	assert.Empty(t, table.Rows)
}

func TestBuildTable_StarEqualsContains(t *testing.T) {
	stocks := sampleStocks()
	sets := []TickerSet{
		{},
		{"AAA": true},
		{"BBB": true, "GONE": true},
		{"AAA": true, "BBB": true},
	}

	for _, set := range sets {
		for _, row := range BuildTable(stocks, set).Rows {
			assert.Equal(t, set.Contains(row.Ticker), row.InWatchlist)
			assert.Equal(t, set.Contains(row.Ticker), row.Star == StarOn)
		}
	}
}

func TestBuildTable_SentimentBoundary(t *testing.T) {
	row := BuildTable(sampleStocks()[1:], TickerSet{}).Rows[0]
	assert.Equal(t, contracts.SentimentNeutral, row.SentimentClass)
	assert.Equal(t, ClassDanger, row.GrowthClass)
	assert.Equal(t, "trend-down", row.TrendClass)
	assert.Equal(t, NotAvailable, row.PE)
	assert.Equal(t, "3.3", row.PS)
}

func TestBuildDetail(t *testing.T) {
	s := sampleStocks()[0]

	d := BuildDetail(&s, TickerSet{})
	assert.Equal(t, "Alpha & Co (AAA)", d.Title)
	assert.Equal(t, "20.10", d.PE)
	assert.Equal(t, NotAvailable, d.PS)
	assert.Equal(t, "4.57", d.PB)
	assert.Equal(t, NotAvailable, d.EVEBITDA)
	assert.Equal(t, "-1.3%", d.EarningsGrowth)
	assert.Equal(t, ClassDanger, d.EarningsClass)
	assert.Equal(t, "1,234,567", d.Volume)
	assert.Equal(t, "0.75 (up)", d.Sentiment)
	assert.Equal(t, "Add to Watchlist", d.ToggleLabel)
	assert.False(t, d.InWatchlist)

	d = BuildDetail(&s, TickerSet{"AAA": true})
	assert.Equal(t, "Remove from Watchlist", d.ToggleLabel)
	assert.True(t, d.InWatchlist)
}

func TestBuildWatchlist(t *testing.T) {
	all := sampleStocks()

	v := BuildWatchlist(all, nil)
	assert.Equal(t, MsgEmptyWatchlist, v.Message)
	assert.Empty(t, v.Entries)

	// entries follow the full-list order, stale tickers are skipped
	v = BuildWatchlist(all, []string{"BBB", "GONE", "AAA"})
	assert.Empty(t, v.Message)
	assert.Equal(t, 3, v.Count)
	require.Len(t, v.Entries, 2)
	assert.Equal(t, "AAA", v.Entries[0].Ticker)
	assert.Equal(t, "5.2% growth", v.Entries[0].Growth)
	assert.Equal(t, "BBB", v.Entries[1].Ticker)
	assert.Equal(t, "$8.00", v.Entries[1].Price)
	assert.Equal(t, ClassDanger, v.Entries[1].GrowthClass)
}

func TestBuildStats(t *testing.T) {
	assert.Equal(t, "-", BuildStats(nil).TotalStocks)

	v := BuildStats(&contracts.Stats{
		TotalStocks:       42,
		AveragePE:         28.75,
		AverageSentiment:  0.61,
		GuidanceBreakdown: map[string]int{"positive": 17, "neutral": 20},
	})
	assert.Equal(t, "42", v.TotalStocks)
	assert.Equal(t, "28.75", v.AveragePE)
	assert.Equal(t, "0.61", v.AverageSentiment)
	assert.Equal(t, "17", v.PositiveGuidance)
}
