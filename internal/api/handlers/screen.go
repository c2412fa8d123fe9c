package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/techscreener/internal/filter"
	"github.com/wonny/techscreener/internal/render"
	"github.com/wonny/techscreener/internal/screener"
	"github.com/wonny/techscreener/pkg/logger"
)

// ScreenHandler serves the page, its fragments and the filter/modal actions
// ⭐ SSOT: 화면/필터/모달 핸들러는 이 구조체에서만
type ScreenHandler struct {
	session *screener.Session
	html    *render.HTML
	logger  *logger.Logger
}

// NewScreenHandler creates a new screen handler
func NewScreenHandler(session *screener.Session, html *render.HTML, log *logger.Logger) *ScreenHandler {
	return &ScreenHandler{
		session: session,
		html:    html,
		logger:  log,
	}
}

// Index renders the whole page
// GET /
func (h *ScreenHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.html.Page(&buf, h.session.Page()); err != nil {
		h.logger.WithError(err).Error("Failed to render page")
		respondError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Fragment renders one part of the page for websocket-driven redraws
// GET /fragments/{name}
func (h *ScreenHandler) Fragment(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var (
		buf bytes.Buffer
		err error
	)
	switch name {
	case "table":
		err = h.html.Table(&buf, h.session.TableView())
	case "stats":
		err = h.html.Stats(&buf, h.session.Page().Stats)
	case "watchlist":
		err = h.html.Watchlist(&buf, h.session.WatchlistView())
	case "detail":
		d := h.session.DetailView()
		if d == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		err = h.html.Detail(&buf, *d)
	default:
		respondError(w, http.StatusNotFound, "unknown fragment: "+name)
		return
	}

	if err != nil {
		h.logger.WithError(err).WithField("fragment", name).Error("Failed to render fragment")
		respondError(w, http.StatusInternalServerError, "Failed to render fragment")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// TableView returns the table view model as JSON
// GET /api/view/table
func (h *ScreenHandler) TableView(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.session.TableView())
}

// WatchlistView returns the watchlist view model as JSON
// GET /api/view/watchlist
func (h *ScreenHandler) WatchlistView(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.session.WatchlistView())
}

// ApplyFilters submits the posted form to the backend screen
// POST /filters
func (h *ScreenHandler) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}

	h.afterApply(w, r, h.session.Apply(r.Context(), filter.FromValues(r.PostForm)))
}

// ApplyPreset applies a named preset
// POST /filters/preset
func (h *ScreenHandler) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}

	err := h.session.ApplyPreset(r.Context(), r.PostForm.Get("preset"))
	if errors.Is(err, screener.ErrUnknownPreset) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	h.afterApply(w, r, err)
}

// ResetFilters clears the form and shows the full list
// POST /filters/reset
func (h *ScreenHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	h.session.Reset()
	h.afterApply(w, r, nil)
}

// afterApply answers a filter action. A stale response is not an error for
// the caller: a newer request already owns the table.
func (h *ScreenHandler) afterApply(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil && !errors.Is(err, screener.ErrStaleResponse) {
		if wantsJSON(r) {
			respondError(w, http.StatusBadGateway, "Failed to apply filters")
			return
		}
		// the table keeps its previous content
		redirectHome(w, r)
		return
	}

	if wantsJSON(r) {
		respondJSON(w, http.StatusOK, h.session.TableView())
		return
	}
	redirectHome(w, r)
}

// OpenDetail opens the detail modal on a ticker
// POST /stocks/{ticker}
func (h *ScreenHandler) OpenDetail(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]
	h.afterOpenDetail(w, r, ticker, h.session.OpenDetail(ticker))
}

// ViewFromWatchlist closes the watchlist modal and opens the detail modal
// POST /watchlist/{ticker}/view
func (h *ScreenHandler) ViewFromWatchlist(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]
	h.afterOpenDetail(w, r, ticker, h.session.ViewFromWatchlist(ticker))
}

func (h *ScreenHandler) afterOpenDetail(w http.ResponseWriter, r *http.Request, ticker string, err error) {
	if err != nil {
		if errors.Is(err, screener.ErrStockNotFound) {
			respondError(w, http.StatusNotFound, "stock not found: "+ticker)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to open stock")
		return
	}

	if wantsJSON(r) {
		respondJSON(w, http.StatusOK, h.session.DetailView())
		return
	}
	redirectHome(w, r)
}

// OpenWatchlist opens the watchlist modal
// POST /watchlist
func (h *ScreenHandler) OpenWatchlist(w http.ResponseWriter, r *http.Request) {
	h.session.OpenWatchlist()

	if wantsJSON(r) {
		respondJSON(w, http.StatusOK, h.session.WatchlistView())
		return
	}
	redirectHome(w, r)
}

// CloseModal closes the detail or watchlist modal
// POST /modals/{name}/close
func (h *ScreenHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.session.CloseModal(name); err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	if wantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	redirectHome(w, r)
}
