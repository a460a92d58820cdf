package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig описывает конфигурацию сервиса.
type AppConfig struct {
	AppEnv      string `envconfig:"APP_ENV" default:"dev"`
	Port        int    `envconfig:"PORT" default:"8080"`
	MetricsPort int    `envconfig:"METRICS_PORT" default:"9090"`

	Neynar struct {
		APIKey  string        `envconfig:"NEYNAR_API_KEY" default:"NEYNAR_API_DOCS"`
		BaseURL string        `envconfig:"NEYNAR_BASE_URL"`
		Timeout time.Duration `envconfig:"NEYNAR_TIMEOUT" default:"15s"`
	} `envconfig:""`

	Limits struct {
		CastsLimit int `envconfig:"CASTS_LIMIT" default:"150"`
	} `envconfig:""`

	RedisAddr string        `envconfig:"REDIS_ADDR"`
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"5m"`
}

// Load загружает конфиг из окружения.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("не удалось загрузить конфиг: %v", err)
	}
	return cfg
}
