package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "LINKSHELF_"

// MinSessionSecretLength is the shortest accepted HS256 key.
const MinSessionSecretLength = 32

type Config struct {
	ListenPort      string        `env:"LISTEN_PORT" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"` // "debug" | "info" | "warn" | "error"
	PrettyLog bool   `env:"PRETTY_LOG" envDefault:"true"`

	SessionSecret string        `env:"SESSION_SECRET,required"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	SecureCookies bool          `env:"SECURE_COOKIES" envDefault:"false"`
	DefaultUserID string        `env:"DEFAULT_USER_ID"` // optional, pins every new session to this user

	SeedFile string `env:"SEED_FILE"` // optional YAML imported at startup

	RateLimitBurst        int `env:"RATE_LIMIT_BURST" envDefault:"10"`
	RateLimitRefillPerMin int `env:"RATE_LIMIT_REFILL_PER_MIN" envDefault:"30"`

	AllowedHosts []string `env:"ALLOWED_HOSTS" envSeparator:","` // optional, restrict Host headers
	AllowedCIDRS []string `env:"ALLOWED_CIDRS" envSeparator:","` // optional, restrict readyz/infra
	TrustProxy   bool     `env:"TRUST_PROXY" envDefault:"false"`

	Redis Redis `envPrefix:"REDIS_"`
}

// Redis holds connection settings. An empty Addr selects the in-memory repository.
type Redis struct {
	Addr             string        `env:"ADDR"`
	User             string        `env:"USERNAME" envDefault:"default"`
	Password         string        `env:"PASSWORD"`
	PasswordRequired bool          `env:"PASSWORD_REQUIRED" envDefault:"true"`
	DB               int           `env:"DB" envDefault:"0"`
	DialTimeout      time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout      time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout     time.Duration `env:"WRITE_TIMEOUT" envDefault:"3s"`
	PoolSize         int           `env:"POOL_SIZE" envDefault:"10"`
	ConnectTimeout   time.Duration `env:"CONNECT_TIMEOUT" envDefault:"30s"`
	RetryInterval    time.Duration `env:"RETRY_INTERVAL" envDefault:"2s"`
	MaxWait          time.Duration `env:"MAX_WAIT" envDefault:"10s"`
	PingTimeout      time.Duration `env:"PING_TIMEOUT" envDefault:"5s"`
	WarnThreshold    int           `env:"WARN_THRESHOLD" envDefault:"3"`
}

// Enabled reports whether Redis storage is configured.
func (r Redis) Enabled() bool { return r.Addr != "" }

// Load reads the configuration from the environment and panics when it is invalid.
func Load() *Config {
	cfg, err := Parse()
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}
	return cfg
}

// Parse reads and validates the configuration.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, err
	}

	cfg.AllowedHosts = cleanList(cfg.AllowedHosts)
	cfg.AllowedCIDRS = cleanList(cfg.AllowedCIDRS)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%sLOG_LEVEL must be debug, info, warn or error, got %q", EnvPrefix, c.LogLevel))
	}
	if len(c.SessionSecret) < MinSessionSecretLength {
		errs = append(errs, fmt.Errorf("%sSESSION_SECRET must be at least %d characters", EnvPrefix, MinSessionSecretLength))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("%sSESSION_TTL must be > 0, got %v", EnvPrefix, c.SessionTTL))
	}
	if c.RateLimitBurst < 1 || c.RateLimitRefillPerMin < 1 {
		errs = append(errs, fmt.Errorf("%sRATE_LIMIT_BURST and %sRATE_LIMIT_REFILL_PER_MIN must be >= 1", EnvPrefix, EnvPrefix))
	}
	if c.Redis.Enabled() && c.Redis.PasswordRequired && c.Redis.Password == "" {
		errs = append(errs, fmt.Errorf("%sREDIS_PASSWORD is required when %sREDIS_PASSWORD_REQUIRED=true", EnvPrefix, EnvPrefix))
	}

	return errors.Join(errs...)
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	cp := *c
	cp.SessionSecret = "***REDACTED***"
	if cp.Redis.Password != "" {
		cp.Redis.Password = "***REDACTED***"
	}
	return cp
}

// cleanList trims whitespace and surrounding quotes and drops empty entries.
func cleanList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, part := range in {
		trimmed := strings.Trim(strings.TrimSpace(part), `"'`)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
