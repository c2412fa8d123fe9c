package render

import (
	"github.com/wonny/techscreener/internal/filter"
)

// GuidanceOptions are the choices of the guidance dropdown; empty means any
var GuidanceOptions = []string{"", "positive", "neutral", "negative"}

// SectorOption is one sector checkbox
type SectorOption struct {
	Name    string
	Checked bool
}

// Page is everything the full HTML page shows
type Page struct {
	Theme          string // data-theme attribute value, empty for light
	ThemeIcon      string
	Stats          StatsView
	Sectors        []SectorOption
	Form           filter.Form
	Presets        []string
	Table          Table
	WatchlistCount int
	Detail         *Detail        // nil when the detail modal is closed
	Watchlist      *WatchlistView // nil when the watchlist modal is closed
}

// BuildSectors marks the sectors checked in the form
func BuildSectors(sectors []string, form filter.Form) []SectorOption {
	opts := make([]SectorOption, 0, len(sectors))
	for _, s := range sectors {
		opts = append(opts, SectorOption{Name: s, Checked: form.HasSector(s)})
	}
	return opts
}
