package handler

import (
	"encoding/json"
	"net/http"
)

type GetSupportedCodesResponse struct {
	Codes []string `json:"codes"`
}

func (h *Handler) GetSupportedCodes(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(GetSupportedCodesResponse{
		Codes: h.validator.SupportedCodes(),
	})
}

type GetSupportedWindowsResponse struct {
	Windows []string `json:"windows"`
	Default string   `json:"default"`
}

func (h *Handler) GetSupportedWindows(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(GetSupportedWindowsResponse{
		Windows: h.validator.SupportedWindows(),
		Default: string(h.defaultWindow),
	})
}
