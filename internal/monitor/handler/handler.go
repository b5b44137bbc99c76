package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"fxmonitor/internal/domain"
	"fxmonitor/internal/monitor"
)

// SnapshotService builds a fresh snapshot on demand.
type SnapshotService interface {
	BuildSnapshot(ctx context.Context, currency domain.CurrencyCode, window domain.WindowSpec) (domain.RateSnapshot, error)
}

// SnapshotReader serves the scheduler-refreshed latest snapshots.
type SnapshotReader interface {
	Latest(currency domain.CurrencyCode) (domain.RateSnapshot, bool)
}

// RequestValidator checks request parameters before they reach the service.
type RequestValidator interface {
	ValidateCode(code string) error
	ValidateWindow(window string) error
	SupportedCodes() []string
	SupportedWindows() []string
}

type Handler struct {
	validator     RequestValidator
	service       SnapshotService
	store         SnapshotReader
	defaultWindow domain.WindowSpec
}

func NewHandler(validator RequestValidator, service SnapshotService, store SnapshotReader, defaultWindow domain.WindowSpec) *Handler {
	if !defaultWindow.Supported() {
		defaultWindow = domain.Window48h
	}
	return &Handler{validator: validator, service: service, store: store, defaultWindow: defaultWindow}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeView(w http.ResponseWriter, view monitor.View) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(view)
}
