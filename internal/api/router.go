package api

import (
	"fxmonitor/internal/monitor/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(snapshotHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Handle("/metrics", promhttp.Handler())

	router.Get("/api/v1/currencies", snapshotHandler.GetSupportedCodes)
	router.Get("/api/v1/windows", snapshotHandler.GetSupportedWindows)
	router.Get("/api/v1/snapshot/{code:[A-Za-z]{3}}", snapshotHandler.GetSnapshot)
	router.Get("/api/v1/snapshot/{code:[A-Za-z]{3}}/latest", snapshotHandler.GetLatest)
	return router
}
