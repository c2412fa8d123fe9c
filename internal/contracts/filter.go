package contracts

// FilterCriteria is the JSON body of POST /screen.
// Every field is optional; an absent field means "no constraint" and must not
// be serialized at all (never as null).
// ⭐ SSOT: /screen 요청 스키마는 여기서만 정의
type FilterCriteria struct {
	MinMarketCap       *float64 `json:"min_market_cap,omitempty"`
	MaxMarketCap       *float64 `json:"max_market_cap,omitempty"`
	MinPERatio         *float64 `json:"min_pe_ratio,omitempty"`
	MaxPERatio         *float64 `json:"max_pe_ratio,omitempty"`
	MinPSRatio         *float64 `json:"min_ps_ratio,omitempty"`
	MaxPSRatio         *float64 `json:"max_ps_ratio,omitempty"`
	MinRevenueGrowth   *float64 `json:"min_revenue_growth,omitempty"`
	MinSentimentScore  *float64 `json:"min_sentiment_score,omitempty"`
	ManagementGuidance string   `json:"management_guidance,omitempty"`
	Sectors            []string `json:"sectors,omitempty"`
}

// IsEmpty reports whether no constraint is set
func (f FilterCriteria) IsEmpty() bool {
	return f.MinMarketCap == nil && f.MaxMarketCap == nil &&
		f.MinPERatio == nil && f.MaxPERatio == nil &&
		f.MinPSRatio == nil && f.MaxPSRatio == nil &&
		f.MinRevenueGrowth == nil && f.MinSentimentScore == nil &&
		f.ManagementGuidance == "" && len(f.Sectors) == 0
}
