package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/wonny/techscreener/internal/export"
	"github.com/wonny/techscreener/internal/screener"
	"github.com/wonny/techscreener/pkg/logger"
)

// ExportHandler serves the CSV download of the working list
type ExportHandler struct {
	session *screener.Session
	logger  *logger.Logger
	now     func() time.Time
}

// NewExportHandler creates a new export handler
func NewExportHandler(session *screener.Session, log *logger.Logger) *ExportHandler {
	return &ExportHandler{
		session: session,
		logger:  log,
		now:     time.Now,
	}
}

// CSV writes the working list as an attachment
// GET /export.csv
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	stocks := h.session.Working()

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, stocks); err != nil {
		h.logger.WithError(err).Error("Failed to export CSV")
		respondError(w, http.StatusInternalServerError, "Failed to export CSV")
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(h.now())+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())

	h.logger.WithField("rows", len(stocks)).Info("CSV exported")
}
