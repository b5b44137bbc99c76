package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"fxmonitor/internal/domain"
	"fxmonitor/internal/monitor"
)

// GetLatest serves the most recent scheduler-refreshed snapshot for the
// requested currency without touching any upstream.
func (h *Handler) GetLatest(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "code")))
	if err := h.validator.ValidateCode(code); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, ok := h.store.Latest(domain.CurrencyCode(code))
	if !ok {
		writeError(w, http.StatusNotFound, "no snapshot published yet")
		return
	}

	writeView(w, monitor.NewView(snap))
}
