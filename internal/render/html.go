package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTML renders view models with html/template. Output is escaped by the
// template engine, so tickers and names are safe to interpolate.
type HTML struct {
	tmpl *template.Template
}

// NewHTML parses the embedded templates
func NewHTML() (*HTML, error) {
	funcs := template.FuncMap{
		"columns":         func() int { return TableColumns },
		"guidanceOptions": func() []string { return GuidanceOptions },
	}

	tmpl, err := template.New("screener").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &HTML{tmpl: tmpl}, nil
}

// Page writes the whole document
func (h *HTML) Page(w io.Writer, p Page) error {
	return h.execute(w, "page", p)
}

// Table writes the table body rows (the content of #stocksTableBody)
func (h *HTML) Table(w io.Writer, t Table) error {
	return h.execute(w, "table_rows", t)
}

// Detail writes the detail modal content
func (h *HTML) Detail(w io.Writer, d Detail) error {
	return h.execute(w, "detail", d)
}

// Watchlist writes the watchlist modal content
func (h *HTML) Watchlist(w io.Writer, v WatchlistView) error {
	return h.execute(w, "watchlist", v)
}

// Stats writes the summary cards
func (h *HTML) Stats(w io.Writer, s StatsView) error {
	return h.execute(w, "stats", s)
}

func (h *HTML) execute(w io.Writer, name string, data interface{}) error {
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
