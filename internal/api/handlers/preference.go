package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/techscreener/internal/screener"
	"github.com/wonny/techscreener/pkg/logger"
)

// PreferenceHandler handles the persisted preferences (watchlist, theme)
// ⭐ SSOT: 관심종목/테마 변경 핸들러는 이 구조체에서만
type PreferenceHandler struct {
	session *screener.Session
	logger  *logger.Logger
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(session *screener.Session, log *logger.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		session: session,
		logger:  log,
	}
}

// ToggleResponse is the JSON answer of a watchlist toggle
type ToggleResponse struct {
	Ticker  string   `json:"ticker"`
	Added   bool     `json:"added"`
	Count   int      `json:"count"`
	Tickers []string `json:"tickers"`
}

// ToggleWatchlist adds or removes a ticker
// POST /watchlist/{ticker}/toggle
func (h *PreferenceHandler) ToggleWatchlist(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]
	if ticker == "" {
		respondError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	added, err := h.session.ToggleWatchlist(r.Context(), ticker)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update watchlist")
		return
	}

	if wantsJSON(r) {
		wl := h.session.Watchlist()
		respondJSON(w, http.StatusOK, ToggleResponse{
			Ticker:  ticker,
			Added:   added,
			Count:   wl.Count(),
			Tickers: wl.Tickers(),
		})
		return
	}
	redirectHome(w, r)
}

// ThemeResponse is the JSON answer of a theme toggle
type ThemeResponse struct {
	Dark bool   `json:"dark"`
	Icon string `json:"icon"`
}

// ToggleTheme flips dark mode
// POST /theme/toggle
func (h *PreferenceHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	dark, err := h.session.ToggleTheme(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update theme")
		return
	}

	if wantsJSON(r) {
		respondJSON(w, http.StatusOK, ThemeResponse{Dark: dark, Icon: h.session.Theme().Icon()})
		return
	}
	redirectHome(w, r)
}
