package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Log      Log
	Currency Currency
	Postgres Postgres
	Redis    Redis
	Worker   Worker
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"numconv"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ReadHeaderTimeout    time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	WriteTimeout         time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type Log struct {
	Level          slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format         string     `env:"LOG_FORMAT" envDefault:"text"`
	FieldMaxLen    int        `env:"LOG_FIELD_MAX_LEN" envDefault:"2000"`
	RequestBodies  bool       `env:"LOG_REQUEST_BODIES" envDefault:"false"`
	ResponseBodies bool       `env:"LOG_RESPONSE_BODIES" envDefault:"false"`
}

type Worker struct {
	RefreshInterval time.Duration `env:"RATE_REFRESH_INTERVAL" envDefault:"5m"`
	Concurrency     int           `env:"WORKER_CONCURRENCY" envDefault:"2"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
