package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/nikolayk812/storefront/internal/core"
	logx "github.com/nikolayk812/storefront/pkg/logger"
	pkgredis "github.com/nikolayk812/storefront/pkg/redis"
	"golang.org/x/text/currency"
)

const Prefix = "storefront"

// AppConfig is read from STOREFRONT_* environment variables, optionally seeded from a .env file.
type AppConfig struct {
	Environment core.Environment `default:"development"`
	Currency    Currency         `default:"INR"`

	HTTP     HTTPConfig
	Postgres PostgresConfig
	Redis    pkgredis.Config
	Session  SessionConfig
	Checkout CheckoutConfig
}

type HTTPConfig struct {
	Addr            string        `default:":8080"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
	ReadTimeout     time.Duration `split_words:"true" default:"5s"`
	WriteTimeout    time.Duration `split_words:"true" default:"10s"`
}

type PostgresConfig struct {
	URL      string `required:"true"`
	MaxConns int32  `split_words:"true" default:"10"`
}

type SessionConfig struct {
	TTL    time.Duration `default:"24h"`
	Cookie string        `default:"sid"`
	Secure bool          `default:"false"`
}

type CheckoutConfig struct {
	LockTTL time.Duration `split_words:"true" default:"10s"`
}

// Currency is an ISO 4217 code decoded by envconfig.
type Currency struct {
	currency.Unit
}

func (c *Currency) Decode(value string) error {
	unit, err := currency.ParseISO(value)
	if err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", value, err)
	}

	c.Unit = unit
	return nil
}

// Load reads envFiles (".env" when none given) and then processes the environment.
// Variables already set in the environment win over file values.
func Load(envFiles ...string) (AppConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return AppConfig{}, fmt.Errorf("godotenv.Load: %w", err)
		}
		logx.Warn().Strs("files", envFiles).Msg("env file not found, using process environment")
	}

	var cfg AppConfig
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("envconfig.Process: %w", err)
	}

	return cfg, nil
}
