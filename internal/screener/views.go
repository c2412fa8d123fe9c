package screener

import (
	"github.com/wonny/techscreener/internal/contracts"
	"github.com/wonny/techscreener/internal/render"
)

// TableView renders the working list against the current watchlist
func (s *Session) TableView() render.Table {
	snap := s.Snapshot()
	return s.tableFrom(snap)
}

// DetailView renders the open detail modal, nil when closed
func (s *Session) DetailView() *render.Detail {
	snap := s.Snapshot()
	return s.detailFrom(snap)
}

// DetailFor renders the detail view of any stock in the full list
func (s *Session) DetailFor(ticker string) (render.Detail, error) {
	st, err := s.Stock(ticker)
	if err != nil {
		return render.Detail{}, err
	}
	return render.BuildDetail(&st, s.membership()), nil
}

// WatchlistView renders the watchlist modal content
func (s *Session) WatchlistView() render.WatchlistView {
	snap := s.Snapshot()
	return render.BuildWatchlist(snap.All, s.watchlist.Tickers())
}

// Page renders the whole page
func (s *Session) Page() render.Page {
	snap := s.Snapshot()

	page := render.Page{
		Theme:          s.theme.Attribute(),
		ThemeIcon:      s.theme.Icon(),
		Stats:          render.BuildStats(snap.Stats),
		Sectors:        render.BuildSectors(snap.Sectors, snap.Form),
		Form:           snap.Form,
		Presets:        s.PresetNames(),
		Table:          s.tableFrom(snap),
		WatchlistCount: s.watchlist.Count(),
		Detail:         s.detailFrom(snap),
	}

	if snap.WatchlistOpen {
		wv := render.BuildWatchlist(snap.All, s.watchlist.Tickers())
		page.Watchlist = &wv
	}

	return page
}

func (s *Session) membership() render.TickerSet {
	return render.TickerSet(s.watchlist.Set())
}

func (s *Session) tableFrom(snap Snapshot) render.Table {
	if snap.LoadFailed {
		return render.ErrorTable()
	}
	return render.BuildTable(snap.Working, s.membership())
}

func (s *Session) detailFrom(snap Snapshot) *render.Detail {
	if snap.DetailTicker == "" {
		return nil
	}
	st := contracts.FindByTicker(snap.All, snap.DetailTicker)
	if st == nil {
		return nil
	}
	d := render.BuildDetail(st, s.membership())
	return &d
}
