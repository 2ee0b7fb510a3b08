package config

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	HTTPPort  string `env:"HTTP_PORT,  default=3000"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	StaticDir string `env:"STATIC_DIR, default=public"`

	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Balance  BalanceConfig
}

// DatabaseConfig mirrors the DB_* variables the service has always read.
type DatabaseConfig struct {
	Host        string `env:"DB_HOST,      default=localhost"`
	User        string `env:"DB_USER,      default=postgres"`
	Password    string `env:"DB_PASSWORD"`
	Name        string `env:"DB_NAME,      default=roulette"`
	Port        int    `env:"DB_PORT,      default=5432"`
	SSLMode     string `env:"DB_SSLMODE,   default=disable"`
	MaxConns    int32  `env:"DB_MAX_CONNS, default=10"`
	AutoMigrate bool   `env:"AUTO_MIGRATE, default=true"`
}

// RedisConfig is optional; an empty Addr disables the login throttle.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type AuthConfig struct {
	// JWTSecret enables token issuing on login when set.
	JWTSecret    string        `env:"JWT_SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL,          default=24h"`
	RequireToken bool          `env:"REQUIRE_TOKEN,      default=false"`
	MaxAttempts  int           `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	Lockout      time.Duration `env:"LOGIN_LOCKOUT,      default=15m"`
}

type BalanceConfig struct {
	AllowNegative bool `env:"ALLOW_NEGATIVE_BALANCE, default=true"`
}

// URL renders the settings as a postgres:// connection string.
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}
	return u.String()
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through l, which lets tests supply a map.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.RequireToken && cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: REQUIRE_TOKEN needs JWT_SECRET")
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
