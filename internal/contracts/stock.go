package contracts

// Stock is one row of precomputed metrics served by the screener backend.
// Read-only on the client: lists are replaced wholesale, never patched.
// ⭐ SSOT: 백엔드 /stocks, /screen 응답 스키마는 여기서만 정의
type Stock struct {
	Ticker             string   `json:"ticker"`
	Name               string   `json:"name"`
	Sector             string   `json:"sector"`
	Price              float64  `json:"price"`
	MarketCap          float64  `json:"market_cap"` // billions
	PERatio            *float64 `json:"pe_ratio"`
	PSRatio            *float64 `json:"ps_ratio"`
	PBRatio            *float64 `json:"pb_ratio"`
	EVEBITDA           *float64 `json:"ev_ebitda"`
	RevenueGrowth      float64  `json:"revenue_growth"`  // percent, signed
	EarningsGrowth     float64  `json:"earnings_growth"` // percent, signed
	Volume             int64    `json:"volume"`
	SentimentScore     float64  `json:"sentiment_score"`
	SentimentTrend     string   `json:"sentiment_trend"`     // up, down, flat
	ManagementGuidance string   `json:"management_guidance"` // positive, neutral, negative
	LastUpdated        string   `json:"last_updated,omitempty"`
}

// Sentiment classes
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Sentiment thresholds (inclusive lower bounds)
const (
	SentimentPositiveMin = 0.6
	SentimentNeutralMin  = 0.3
)

// ClassifySentiment maps a score onto the three-way badge class.
// score >= 0.6 → positive, >= 0.3 → neutral, else negative.
func ClassifySentiment(score float64) string {
	if score >= SentimentPositiveMin {
		return SentimentPositive
	}
	if score >= SentimentNeutralMin {
		return SentimentNeutral
	}
	return SentimentNegative
}

// SentimentClass returns the badge class for this stock
func (s *Stock) SentimentClass() string {
	return ClassifySentiment(s.SentimentScore)
}

// HasRatio reports whether an optional ratio should be displayed.
// Absent and zero are both treated as "no value" (shown as N/A).
func HasRatio(v *float64) bool {
	return v != nil && *v != 0
}

// FindByTicker returns the stock with the given ticker, or nil
func FindByTicker(stocks []Stock, ticker string) *Stock {
	for i := range stocks {
		if stocks[i].Ticker == ticker {
			return &stocks[i]
		}
	}
	return nil
}

// Stats is the summary served by GET /stats
type Stats struct {
	TotalStocks       int            `json:"total_stocks"`
	AveragePE         float64        `json:"average_pe"`
	AverageSentiment  float64        `json:"average_sentiment"`
	GuidanceBreakdown map[string]int `json:"guidance_breakdown"`
}

// PositiveGuidance returns the number of stocks with positive guidance
func (s *Stats) PositiveGuidance() int {
	return s.GuidanceBreakdown["positive"]
}
