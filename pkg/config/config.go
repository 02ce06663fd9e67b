package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Gemini  GeminiConfig
	Pricing PricingConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ECART_APP_ENV" default:"development"`
	Port         string `envconfig:"ECART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"ECART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ECART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig points GORM at the catalog database. The default DSN is a shared
// in-memory SQLite instance seeded from the fixture at boot.
type DBConfig struct {
	DSN string `envconfig:"ECART_DB_DSN" default:"file::memory:?cache=shared"`

	MaxOpenConns    int           `envconfig:"ECART_DB_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns    int           `envconfig:"ECART_DB_MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"ECART_DB_CONN_MAX_LIFETIME" default:"0"`
	ConnMaxIdleTime time.Duration `envconfig:"ECART_DB_CONN_MAX_IDLE_TIME" default:"0"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ECART_REDIS_URL"`
	Address      string        `envconfig:"ECART_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"ECART_REDIS_PASSWORD"`
	DB           int           `envconfig:"ECART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ECART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ECART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ECART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ECART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ECART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type GeminiConfig struct {
	APIKey  string        `envconfig:"ECART_GEMINI_API_KEY"`
	Model   string        `envconfig:"ECART_GEMINI_MODEL" default:"gemini-pro"`
	BaseURL string        `envconfig:"ECART_GEMINI_BASE_URL"`
	Timeout time.Duration `envconfig:"ECART_GEMINI_TIMEOUT" default:"10s"`
}

// PricingConfig holds the checkout estimate knobs. Amounts are minor units.
type PricingConfig struct {
	FreeShippingMinCents int64 `envconfig:"ECART_PRICING_FREE_SHIPPING_MIN_CENTS" default:"2000"`
	ShippingFlatCents    int64 `envconfig:"ECART_PRICING_SHIPPING_FLAT_CENTS" default:"299"`
	TaxPercent           int   `envconfig:"ECART_PRICING_TAX_PERCENT" default:"18"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ECART_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
