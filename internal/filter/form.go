package filter

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/wonny/techscreener/internal/contracts"
)

// HTML form field names
const (
	FieldMinMarketCap = "minMarketCap"
	FieldMaxMarketCap = "maxMarketCap"
	FieldMinPE        = "minPE"
	FieldMaxPE        = "maxPE"
	FieldMinPS        = "minPS"
	FieldMaxPS        = "maxPS"
	FieldMinRevGrowth = "minRevGrowth"
	FieldMinSentiment = "minSentiment"
	FieldGuidance     = "guidanceFilter"
	FieldSector       = "sector"
)

// Form holds the raw filter inputs exactly as the user typed them.
// Keeping the raw strings lets the UI redisplay the last submission.
type Form struct {
	MinMarketCap     string   `yaml:"min_market_cap" json:"min_market_cap,omitempty"`
	MaxMarketCap     string   `yaml:"max_market_cap" json:"max_market_cap,omitempty"`
	MinPERatio       string   `yaml:"min_pe_ratio" json:"min_pe_ratio,omitempty"`
	MaxPERatio       string   `yaml:"max_pe_ratio" json:"max_pe_ratio,omitempty"`
	MinPSRatio       string   `yaml:"min_ps_ratio" json:"min_ps_ratio,omitempty"`
	MaxPSRatio       string   `yaml:"max_ps_ratio" json:"max_ps_ratio,omitempty"`
	MinRevenueGrowth string   `yaml:"min_revenue_growth" json:"min_revenue_growth,omitempty"`
	MinSentiment     string   `yaml:"min_sentiment_score" json:"min_sentiment_score,omitempty"`
	Guidance         string   `yaml:"management_guidance" json:"management_guidance,omitempty"`
	Sectors          []string `yaml:"sectors" json:"sectors,omitempty"`
}

// FromValues reads a submitted HTML form
func FromValues(v url.Values) Form {
	return Form{
		MinMarketCap:     v.Get(FieldMinMarketCap),
		MaxMarketCap:     v.Get(FieldMaxMarketCap),
		MinPERatio:       v.Get(FieldMinPE),
		MaxPERatio:       v.Get(FieldMaxPE),
		MinPSRatio:       v.Get(FieldMinPS),
		MaxPSRatio:       v.Get(FieldMaxPS),
		MinRevenueGrowth: v.Get(FieldMinRevGrowth),
		MinSentiment:     v.Get(FieldMinSentiment),
		Guidance:         v.Get(FieldGuidance),
		Sectors:          v[FieldSector],
	}
}

// Criteria converts the form into the sparse request body.
// A numeric field is dropped when it is empty, does not parse, is not finite
// or is zero. No cross-field validation happens (min > max is sent as is).
func (f Form) Criteria() contracts.FilterCriteria {
	c := contracts.FilterCriteria{
		MinMarketCap:       parseBound(f.MinMarketCap),
		MaxMarketCap:       parseBound(f.MaxMarketCap),
		MinPERatio:         parseBound(f.MinPERatio),
		MaxPERatio:         parseBound(f.MaxPERatio),
		MinPSRatio:         parseBound(f.MinPSRatio),
		MaxPSRatio:         parseBound(f.MaxPSRatio),
		MinRevenueGrowth:   parseBound(f.MinRevenueGrowth),
		MinSentimentScore:  parseBound(f.MinSentiment),
		ManagementGuidance: strings.TrimSpace(f.Guidance),
	}

	for _, s := range f.Sectors {
		if s = strings.TrimSpace(s); s != "" {
			c.Sectors = append(c.Sectors, s)
		}
	}

	return c
}

// HasSector reports whether the sector checkbox is checked
func (f Form) HasSector(sector string) bool {
	for _, s := range f.Sectors {
		if s == sector {
			return true
		}
	}
	return false
}

// IsZero reports whether every field is blank
func (f Form) IsZero() bool {
	return f.MinMarketCap == "" && f.MaxMarketCap == "" &&
		f.MinPERatio == "" && f.MaxPERatio == "" &&
		f.MinPSRatio == "" && f.MaxPSRatio == "" &&
		f.MinRevenueGrowth == "" && f.MinSentiment == "" &&
		f.Guidance == "" && len(f.Sectors) == 0
}

func parseBound(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return nil
	}
	return &v
}
