package render

import (
	"github.com/wonny/techscreener/internal/contracts"
)

// Placeholder messages
const (
	MsgNoMatches      = "No stocks match your filters."
	MsgLoadError      = "Error loading stocks. Please ensure the backend is running."
	MsgEmptyWatchlist = "Your watchlist is empty. Add stocks by clicking the star icon."
)

// Star glyphs
const (
	StarOn  = "★"
	StarOff = "☆"
)

// TableColumns is the column count of the stock table
const TableColumns = 11

// Membership answers watchlist lookups during a render
type Membership interface {
	Contains(ticker string) bool
}

// TickerSet is a snapshot of watchlist membership
type TickerSet map[string]bool

// Contains implements Membership
func (s TickerSet) Contains(ticker string) bool {
	return s[ticker]
}

// Row is one rendered table row
type Row struct {
	Ticker         string `json:"ticker"`
	Name           string `json:"name"`
	Sector         string `json:"sector"`
	Price          string `json:"price"`
	MarketCap      string `json:"market_cap"`
	PE             string `json:"pe"`
	PS             string `json:"ps"`
	RevenueGrowth  string `json:"revenue_growth"`
	GrowthClass    string `json:"growth_class"`
	Sentiment      string `json:"sentiment"`
	SentimentClass string `json:"sentiment_class"`
	TrendClass     string `json:"trend_class"`
	Guidance       string `json:"guidance"`
	InWatchlist    bool   `json:"in_watchlist"`
	Star           string `json:"star"`
}

// Table is the whole table body. When Message is set the body is a single
// placeholder row and Rows is empty.
type Table struct {
	Rows    []Row  `json:"rows"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

// BuildTable maps the working list and watchlist onto table rows
func BuildTable(stocks []contracts.Stock, watch Membership) Table {
	t := Table{
		Rows:  make([]Row, 0, len(stocks)),
		Count: len(stocks),
	}

	if len(stocks) == 0 {
		t.Message = MsgNoMatches
		return t
	}

	for i := range stocks {
		t.Rows = append(t.Rows, buildRow(&stocks[i], watch.Contains(stocks[i].Ticker)))
	}
	return t
}

// ErrorTable is the table shown when the stock list could not be loaded
func ErrorTable() Table {
	return Table{Rows: []Row{}, Message: MsgLoadError}
}

func buildRow(s *contracts.Stock, inWatchlist bool) Row {
	star := StarOff
	if inWatchlist {
		star = StarOn
	}

	return Row{
		Ticker:         s.Ticker,
		Name:           s.Name,
		Sector:         s.Sector,
		Price:          Money(s.Price),
		MarketCap:      Billions(s.MarketCap),
		PE:             Ratio(s.PERatio, 1),
		PS:             Ratio(s.PSRatio, 1),
		RevenueGrowth:  Percent(s.RevenueGrowth),
		GrowthClass:    GrowthClass(s.RevenueGrowth),
		Sentiment:      Score(s.SentimentScore),
		SentimentClass: s.SentimentClass(),
		TrendClass:     TrendClass(s.SentimentTrend),
		Guidance:       s.ManagementGuidance,
		InWatchlist:    inWatchlist,
		Star:           star,
	}
}

// Detail is the stock detail modal
type Detail struct {
	Ticker         string `json:"ticker"`
	Title          string `json:"title"`
	Price          string `json:"price"`
	MarketCap      string `json:"market_cap"`
	PE             string `json:"pe"`
	PS             string `json:"ps"`
	PB             string `json:"pb"`
	EVEBITDA       string `json:"ev_ebitda"`
	RevenueGrowth  string `json:"revenue_growth"`
	RevenueClass   string `json:"revenue_class"`
	EarningsGrowth string `json:"earnings_growth"`
	EarningsClass  string `json:"earnings_class"`
	Volume         string `json:"volume"`
	Sector         string `json:"sector"`
	Sentiment      string `json:"sentiment"`
	SentimentClass string `json:"sentiment_class"`
	Guidance       string `json:"guidance"`
	InWatchlist    bool   `json:"in_watchlist"`
	ToggleLabel    string `json:"toggle_label"`
}

// BuildDetail maps one stock onto the detail view
func BuildDetail(s *contracts.Stock, watch Membership) Detail {
	in := watch.Contains(s.Ticker)
	label := "Add to Watchlist"
	if in {
		label = "Remove from Watchlist"
	}

	return Detail{
		Ticker:         s.Ticker,
		Title:          s.Name + " (" + s.Ticker + ")",
		Price:          Money(s.Price),
		MarketCap:      Billions(s.MarketCap),
		PE:             Ratio(s.PERatio, 2),
		PS:             Ratio(s.PSRatio, 2),
		PB:             Ratio(s.PBRatio, 2),
		EVEBITDA:       Ratio(s.EVEBITDA, 2),
		RevenueGrowth:  Percent(s.RevenueGrowth),
		RevenueClass:   GrowthClass(s.RevenueGrowth),
		EarningsGrowth: Percent(s.EarningsGrowth),
		EarningsClass:  GrowthClass(s.EarningsGrowth),
		Volume:         Volume(s.Volume),
		Sector:         s.Sector,
		Sentiment:      Score(s.SentimentScore) + " (" + s.SentimentTrend + ")",
		SentimentClass: s.SentimentClass(),
		Guidance:       s.ManagementGuidance,
		InWatchlist:    in,
		ToggleLabel:    label,
	}
}

// WatchEntry is one line of the watchlist modal
type WatchEntry struct {
	Ticker      string `json:"ticker"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Growth      string `json:"growth"`
	GrowthClass string `json:"growth_class"`
}

// WatchlistView is the watchlist modal
type WatchlistView struct {
	Entries []WatchEntry `json:"entries"`
	Count   int          `json:"count"`
	Message string       `json:"message,omitempty"`
}

// BuildWatchlist lists watchlisted stocks in full-list order.
// Stale tickers (no longer served by the backend) are counted but not listed.
func BuildWatchlist(all []contracts.Stock, tickers []string) WatchlistView {
	v := WatchlistView{
		Entries: []WatchEntry{},
		Count:   len(tickers),
	}

	if len(tickers) == 0 {
		v.Message = MsgEmptyWatchlist
		return v
	}

	set := make(TickerSet, len(tickers))
	for _, t := range tickers {
		set[t] = true
	}

	for i := range all {
		s := &all[i]
		if !set[s.Ticker] {
			continue
		}
		v.Entries = append(v.Entries, WatchEntry{
			Ticker:      s.Ticker,
			Name:        s.Name,
			Price:       Money(s.Price),
			Growth:      Percent(s.RevenueGrowth) + " growth",
			GrowthClass: GrowthClass(s.RevenueGrowth),
		})
	}
	return v
}

// StatsView is the summary header
type StatsView struct {
	TotalStocks      string `json:"total_stocks"`
	AveragePE        string `json:"average_pe"`
	AverageSentiment string `json:"average_sentiment"`
	PositiveGuidance string `json:"positive_guidance"`
}

// BuildStats formats summary statistics; nil stats render as dashes
func BuildStats(s *contracts.Stats) StatsView {
	if s == nil {
		return StatsView{TotalStocks: "-", AveragePE: "-", AverageSentiment: "-", PositiveGuidance: "-"}
	}
	return StatsView{
		TotalStocks:      Plain(float64(s.TotalStocks)),
		AveragePE:        Plain(s.AveragePE),
		AverageSentiment: Plain(s.AverageSentiment),
		PositiveGuidance: Plain(float64(s.PositiveGuidance())),
	}
}
