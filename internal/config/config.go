package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/entity/currency"
)

const (
	configFile    = "data/config.yaml"
	configFileEnv = "CONFIG_FILE"
	envFile       = ".env"

	telegramTokenEnv    = "TELEGRAM_TOKEN"
	ratesAccessKeyEnv   = "RATES_ACCESS_KEY"
	postgresPasswordEnv = "POSTGRES_PASSWORD"
)

const (
	defaultRecentCount    = 5
	defaultRatesURL       = "https://api.exchangeratesapi.io/v1/"
	defaultRatesTimeout   = 10
	defaultCacheDriver    = "file"
	defaultCachePath      = "data/inr_rates_map.json"
	defaultStorageDriver  = "sqlite3"
	defaultStoragePath    = "data/expenses.db"
	defaultTracingService = "expense-tracker"
)

type config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	App      AppConfig      `yaml:"app"`
	Rates    RatesConfig    `yaml:"rates"`
	Storage  StorageConfig  `yaml:"storage"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads the YAML config file, then lets the environment (and an optional
// .env file) override secrets.
func New() (*Service, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrap(err, "loading .env")
	}

	path := os.Getenv(configFileEnv)
	if path == "" {
		path = configFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	s, err := Parse(rawYAML)
	if err != nil {
		return nil, err
	}
	s.applyEnv()
	return s, nil
}

// Parse builds a Service from raw YAML and fills in defaults.
func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}
	if err := yaml.Unmarshal(rawYAML, &s.config); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	s.applyDefaults()
	return s, nil
}

func (s *Service) applyDefaults() {
	app := &s.config.App
	if app.HomeCurrencyName == "" {
		app.HomeCurrencyName = currency.INR
	}
	app.HomeCurrencyName = currency.Normalize(app.HomeCurrencyName)
	if app.RecentCount <= 0 {
		app.RecentCount = defaultRecentCount
	}
	if len(app.DefaultCategories) == 0 {
		app.DefaultCategories = append([]string(nil), category.Defaults...)
	}

	rates := &s.config.Rates
	if rates.URL == "" {
		rates.URL = defaultRatesURL
	}
	if rates.TimeoutSeconds <= 0 {
		rates.TimeoutSeconds = defaultRatesTimeout
	}
	if rates.Cache.CacheDriver == "" {
		rates.Cache.CacheDriver = defaultCacheDriver
	}
	if rates.Cache.FilePath == "" {
		rates.Cache.FilePath = defaultCachePath
	}

	if s.config.Storage.StorageDriver == "" {
		s.config.Storage.StorageDriver = defaultStorageDriver
	}
	if s.config.Storage.FilePath == "" {
		s.config.Storage.FilePath = defaultStoragePath
	}

	if s.config.Tracing.Service == "" {
		s.config.Tracing.Service = defaultTracingService
	}
}

func (s *Service) applyEnv() {
	if v := os.Getenv(telegramTokenEnv); v != "" {
		s.config.Telegram.ApiToken = v
	}
	if v := os.Getenv(ratesAccessKeyEnv); v != "" {
		s.config.Rates.AccessKeyValue = v
	}
	if v := os.Getenv(postgresPasswordEnv); v != "" {
		s.config.Storage.Pswd = v
	}
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Rates() *RatesConfig {
	return &s.config.Rates
}

func (s *Service) Cache() *CacheConfig {
	return &s.config.Rates.Cache
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
