package filter

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf(t *testing.T, f Form) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(f.Criteria())
	require.NoError(t, err)

	var keys map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &keys))
	return keys
}

func TestCriteria_EmptyFormSendsNothing(t *testing.T) {
	assert.Empty(t, keysOf(t, Form{}))
	assert.True(t, Form{}.IsZero())
}

func TestCriteria_StripsEmptyEquivalents(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"text", "abc"},
		{"numeric prefix", "12abc"},
		{"zero", "0"},
		{"negative zero", "-0.0"},
		{"nan", "NaN"},
		{"inf", "Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Form{
				MinMarketCap:     tt.raw,
				MaxMarketCap:     tt.raw,
				MinPERatio:       tt.raw,
				MaxPERatio:       tt.raw,
				MinPSRatio:       tt.raw,
				MaxPSRatio:       tt.raw,
				MinRevenueGrowth: tt.raw,
				MinSentiment:     tt.raw,
			}
			assert.Empty(t, keysOf(t, f))
		})
	}
}

func TestCriteria_KeepsParsedValues(t *testing.T) {
	f := Form{
		MinMarketCap:     "10",
		MaxPERatio:       " 35.5 ",
		MinRevenueGrowth: "-5",
		MinSentiment:     "0.6",
		Guidance:         "positive",
		Sectors:          []string{"Software", "", "Semiconductors"},
	}

	assert.Equal(t, map[string]interface{}{
		"min_market_cap":      10.0,
		"max_pe_ratio":        35.5,
		"min_revenue_growth":  -5.0,
		"min_sentiment_score": 0.6,
		"management_guidance": "positive",
		"sectors":             []interface{}{"Software", "Semiconductors"},
	}, keysOf(t, f))
}

func TestCriteria_NoBoundValidation(t *testing.T) {
	// min > max is passed through untouched
	c := Form{MinPERatio: "50", MaxPERatio: "10"}.Criteria()

	require.NotNil(t, c.MinPERatio)
	require.NotNil(t, c.MaxPERatio)
	assert.Equal(t, 50.0, *c.MinPERatio)
	assert.Equal(t, 10.0, *c.MaxPERatio)
}

func TestCriteria_OnlyBlankSectors(t *testing.T) {
	c := Form{Sectors: []string{"", " "}}.Criteria()
	assert.Nil(t, c.Sectors)
	assert.True(t, c.IsEmpty())
}

func TestFromValues(t *testing.T) {
	v := url.Values{}
	v.Set(FieldMinMarketCap, "5")
	v.Set(FieldMaxPS, "12")
	v.Set(FieldGuidance, "neutral")
	v.Add(FieldSector, "Software")
	v.Add(FieldSector, "Hardware")

	f := FromValues(v)

	assert.Equal(t, "5", f.MinMarketCap)
	assert.Equal(t, "12", f.MaxPSRatio)
	assert.Equal(t, "neutral", f.Guidance)
	assert.Equal(t, []string{"Software", "Hardware"}, f.Sectors)
	assert.True(t, f.HasSector("Hardware"))
	assert.False(t, f.HasSector("Biotech"))
	assert.False(t, f.IsZero())
}
