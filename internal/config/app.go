package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Upstreams struct {
	ChartBaseURL string `mapstructure:"chart_base_url"`
	BOCRateURL   string `mapstructure:"boc_rate_url"`
	CMBRateURL   string `mapstructure:"cmb_rate_url"`
	CMBReferer   string `mapstructure:"cmb_referer"`
	CMBOrigin    string `mapstructure:"cmb_origin"`
}

type SeriesCache struct {
	TTLSeconds int   `mapstructure:"ttl_seconds"`
	MaxEntries int64 `mapstructure:"max_entries"`
}

type Scheduler struct {
	RefreshIntervalSec int    `mapstructure:"refresh_interval_seconds"`
	DefaultWindow      string `mapstructure:"default_window"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer  HTTPServer  `mapstructure:"http_server"`
	HTTPClient  HTTPClient  `mapstructure:"http_client"`
	Upstreams   Upstreams   `mapstructure:"upstreams"`
	SeriesCache SeriesCache `mapstructure:"series_cache"`
	Scheduler   Scheduler   `mapstructure:"scheduler"`
	Logging     Logging     `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional, config.yaml is not
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("http_client.timeout_seconds", 5)
	viper.SetDefault("series_cache.ttl_seconds", 60)
	viper.SetDefault("series_cache.max_entries", 128)
	viper.SetDefault("scheduler.refresh_interval_seconds", 10)
	viper.SetDefault("scheduler.default_window", "48h")
	viper.SetDefault("logging.level", "info")

	// http server env vars
	_ = viper.BindEnv("http_server.port", "HTTP_SERVER_PORT")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// upstream env vars
	_ = viper.BindEnv("upstreams.chart_base_url", "CHART_BASE_URL")
	_ = viper.BindEnv("upstreams.boc_rate_url", "BOC_RATE_URL")
	_ = viper.BindEnv("upstreams.cmb_rate_url", "CMB_RATE_URL")

	// scheduler env vars
	_ = viper.BindEnv("scheduler.refresh_interval_seconds", "SCHEDULER_REFRESH_INTERVAL_SECONDS")
	_ = viper.BindEnv("scheduler.default_window", "SCHEDULER_DEFAULT_WINDOW")

	// logging env vars
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
