package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestFormatters(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"money", Money(12.5), "$12.50"},
		{"money rounds", Money(99.999), "$100.00"},
		{"billions", Billions(3.21), "$3.2B"},
		{"ratio nil", Ratio(nil, 1), NotAvailable},
		{"ratio zero", Ratio(f64(0), 1), NotAvailable},
		{"ratio", Ratio(f64(20.14), 1), "20.1"},
		{"ratio detail", Ratio(f64(20.1), 2), "20.10"},
		{"percent", Percent(5.2), "5.2%"},
		{"percent negative", Percent(-3.14), "-3.1%"},
		{"score", Score(0.75), "0.75"},
		{"volume", Volume(1234567), "1,234,567"},
		{"volume small", Volume(999), "999"},
		{"plain", Plain(25.5), "25.5"},
		{"plain integer", Plain(120), "120"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestGrowthClass(t *testing.T) {
	assert.Equal(t, ClassSuccess, GrowthClass(0))
	assert.Equal(t, ClassSuccess, GrowthClass(5.2))
	assert.Equal(t, ClassDanger, GrowthClass(-0.1))
	assert.Equal(t, ClassDanger, GrowthClass(math.Inf(-1)))
}

func TestTrendClass(t *testing.T) {
	assert.Equal(t, "trend-up", TrendClass("up"))
	assert.Equal(t, "trend-down", TrendClass("down"))
	assert.Equal(t, "", TrendClass("flat"))
	assert.Equal(t, "", TrendClass(""))
}
