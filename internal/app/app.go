package app

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"fxmonitor/internal/adapters"
	"fxmonitor/internal/adapters/cache"
	"fxmonitor/internal/adapters/httpclient"
	"fxmonitor/internal/api"
	"fxmonitor/internal/config"
	"fxmonitor/internal/domain"
	"fxmonitor/internal/metrics"
	"fxmonitor/internal/monitor"
	"fxmonitor/internal/monitor/handler"
	httpserver "fxmonitor/internal/platform/http"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 5 * time.Second
	}
	baseHTTPClient := httpclient.NewClient(httpTimeout)

	// External clients
	chartClient := httpclient.NewChartClient(
		baseHTTPClient,
		strings.TrimSuffix(appCfg.Upstreams.ChartBaseURL, "/"),
	)
	cachedSeries, err := cache.NewCachingSeriesClient(
		chartClient,
		appCfg.SeriesCache.MaxEntries,
		time.Duration(appCfg.SeriesCache.TTLSeconds)*time.Second,
	)
	if err != nil {
		logrus.WithError(err).Error("Failed to init series cache")
		return err
	}
	defer cachedSeries.Close()

	banks := []adapters.QuoteProvider{
		httpclient.NewBOCClient(baseHTTPClient, appCfg.Upstreams.BOCRateURL),
		httpclient.NewCMBClient(
			baseHTTPClient,
			appCfg.Upstreams.CMBRateURL,
			appCfg.Upstreams.CMBReferer,
			appCfg.Upstreams.CMBOrigin,
		),
	}

	// Metrics
	met := metrics.New(prometheus.DefaultRegisterer)

	// Services
	snapshotService := monitor.NewService(cachedSeries, banks, met, httpTimeout)
	snapshotStore := monitor.NewSnapshotStore()
	requestValidator := monitor.NewValidator()

	defaultWindow := domain.WindowSpec(appCfg.Scheduler.DefaultWindow)
	if !defaultWindow.Supported() {
		logrus.Warnf("Unsupported default window %q in config, falling back to 48h", appCfg.Scheduler.DefaultWindow)
		defaultWindow = domain.Window48h
	}

	scheduler := monitor.NewScheduler(
		snapshotService,
		snapshotStore,
		met,
		defaultWindow,
		time.Duration(appCfg.Scheduler.RefreshIntervalSec)*time.Second,
	)
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	snapshotHandler := handler.NewHandler(requestValidator, snapshotService, snapshotStore, defaultWindow)
	router := api.NewRouter(snapshotHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
