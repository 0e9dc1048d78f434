package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"

	"screener_service/pkg/logger"
)

const (
	configFilePathENV = "CONFIG_FILE"
	scannerURLENV     = "SCANNER_URL"
	tickersFileENV    = "TICKERS_FILE"
	databaseDSN       = "DATABASE_DSN"
)

type Config struct {
	Service struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"service"`

	Scanner struct {
		BaseURL string `yaml:"base_url"`
		// Env-only (SCANNER_TIMEOUT), yaml.v2 cannot decode durations.
		Timeout time.Duration `yaml:"-"`
	} `yaml:"scanner"`

	Tickers struct {
		File string `yaml:"file"`
	} `yaml:"tickers"`

	// Scan history is written only when a DSN is configured.
	History struct {
		DSN string `yaml:"dsn"`
	} `yaml:"history"`

	Jaeger struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"jaeger"`

	CORS struct {
		Origins []string `yaml:"origins"`
	} `yaml:"cors"`
}

func NewConfig() (*Config, error) {
	config := Config{}
	config.Service.Host = getenvDefault("SERVICE_HOST", "0.0.0.0")
	config.Service.Port = intFromEnv("SERVICE_PORT", 8001)
	config.Scanner.BaseURL = "https://scanner.tradingview.com"
	config.Scanner.Timeout = durationFromEnv("SCANNER_TIMEOUT", "30s")
	config.Tickers.File = "data/tickers.json"
	config.CORS.Origins = []string{"http://localhost:5173", "http://localhost:3000"}

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	path := configFileName
	if !filepath.IsAbs(path) {
		path = filepath.Join("configs", configFileName)
	}

	file, err := os.Open(path)
	if err != nil {
		// The file is optional: defaults plus env cover a local run.
		logger.Info("config file %s not found, using defaults", path)
	} else {
		defer func() {
			_ = file.Close()
		}()
		if err = yaml.NewDecoder(file).Decode(&config); err != nil {
			return nil, err
		}
	}

	if url := os.Getenv(scannerURLENV); url != "" {
		config.Scanner.BaseURL = url
	}
	if f := os.Getenv(tickersFileENV); f != "" {
		config.Tickers.File = f
	}
	if dsn := os.Getenv(databaseDSN); dsn != "" {
		config.History.DSN = dsn
	}

	return &config, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func durationFromEnv(key, def string) time.Duration {
	val := getenvDefault(key, def)
	d, err := time.ParseDuration(val)
	if err != nil {
		d, _ = time.ParseDuration(def)
	}
	return d
}
