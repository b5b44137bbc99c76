package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"fxmonitor/internal/domain"
	"fxmonitor/internal/monitor"
)

// GetSnapshot builds a fresh snapshot for the requested currency. The
// optional ?window= query selects a preset; unset means the default.
func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "code")))
	if err := h.validator.ValidateCode(code); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rawWindow := strings.TrimSpace(r.URL.Query().Get("window"))
	if err := h.validator.ValidateWindow(rawWindow); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	window := h.defaultWindow
	if rawWindow != "" {
		window = domain.WindowSpec(rawWindow)
	}

	snap, err := h.service.BuildSnapshot(r.Context(), domain.CurrencyCode(code), window)
	if err != nil {
		msg := "ups, couldn't build snapshot this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetSnapshot", "code": code, "window": window}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeView(w, monitor.NewView(snap))
}
