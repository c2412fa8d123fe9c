package render

import "io"

// View writes the three render targets to some output.
// Every call re-renders the whole target from the view model.
type View interface {
	Table(w io.Writer, t Table) error
	Detail(w io.Writer, d Detail) error
	Watchlist(w io.Writer, v WatchlistView) error
}

var (
	_ View = (*HTML)(nil)
	_ View = (*Terminal)(nil)
)
