package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Snapshot SnapshotConfig
	JWT      JWTConfig
	Backend  BackendConfig
	Payments PaymentsConfig
	CMS      CMSConfig
	Checkout CheckoutConfig
	Session  SessionConfig
	Jobs     HousekeepingConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Snapshot.validate(); err != nil {
		return nil, err
	}
	if cfg.Snapshot.Normalized() == SnapshotBackendRedis && !cfg.Redis.IsConfigured() {
		return nil, fmt.Errorf("%s=redis requires %s or %s", EnvSnapshotBackend, EnvRedisURL, EnvRedisAddr)
	}
	if cfg.Snapshot.Normalized() == SnapshotBackendDB {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	if cfg.Payments.ForwardBaseURL == "" {
		cfg.Payments.ForwardBaseURL = "http://127.0.0.1:" + cfg.App.Port
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MODESTSTYLE_APP_ENV" required:"true"`
	Port         string `envconfig:"MODESTSTYLE_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"MODESTSTYLE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MODESTSTYLE_LOG_WARN_STACK" default:"false"`
	// AllowedOrigins feeds the CORS policy; comma separated.
	AllowedOrigins []string `envconfig:"MODESTSTYLE_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MODESTSTYLE_DB_DSN"`
	Driver string `envconfig:"MODESTSTYLE_DB_DRIVER" default:"postgres"`
	// AutoMigrate applies pending goose migrations when the api boots.
	AutoMigrate bool `envconfig:"MODESTSTYLE_DB_AUTO_MIGRATE" default:"true"`

	LegacyHost     string `envconfig:"MODESTSTYLE_DB_HOST"`
	LegacyPort     int    `envconfig:"MODESTSTYLE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MODESTSTYLE_DB_USER"`
	LegacyPassword string `envconfig:"MODESTSTYLE_DB_PASSWORD"`
	LegacyName     string `envconfig:"MODESTSTYLE_DB_NAME"`
	LegacySSLMode  string `envconfig:"MODESTSTYLE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MODESTSTYLE_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"MODESTSTYLE_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"MODESTSTYLE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MODESTSTYLE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the snapshot database is a local sqlite file.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DBDriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"MODESTSTYLE_REDIS_URL"`
	Address      string        `envconfig:"MODESTSTYLE_REDIS_ADDR"`
	Password     string        `envconfig:"MODESTSTYLE_REDIS_PASSWORD"`
	DB           int           `envconfig:"MODESTSTYLE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MODESTSTYLE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MODESTSTYLE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MODESTSTYLE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MODESTSTYLE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MODESTSTYLE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// IsConfigured reports whether a redis endpoint was provided at all.
func (r RedisConfig) IsConfigured() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

// SnapshotConfig selects where cart and wishlist snapshots are kept.
type SnapshotConfig struct {
	Backend string        `envconfig:"MODESTSTYLE_SNAPSHOT_BACKEND" default:"memory"`
	TTL     time.Duration `envconfig:"MODESTSTYLE_SNAPSHOT_TTL" default:"720h"`
}

// Normalized returns the backend name lower-cased and trimmed.
func (s SnapshotConfig) Normalized() string {
	return strings.ToLower(strings.TrimSpace(s.Backend))
}

func (s SnapshotConfig) validate() error {
	switch s.Normalized() {
	case SnapshotBackendMemory, SnapshotBackendRedis, SnapshotBackendDB:
		return nil
	}
	return fmt.Errorf("%s must be one of %s, %s, %s", EnvSnapshotBackend, SnapshotBackendMemory, SnapshotBackendRedis, SnapshotBackendDB)
}

type JWTConfig struct {
	Secret            string `envconfig:"MODESTSTYLE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MODESTSTYLE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"MODESTSTYLE_JWT_EXPIRATION_MINUTES" default:"60"`
	CookieName        string `envconfig:"MODESTSTYLE_JWT_COOKIE" default:"__session"`
}

// BackendConfig points at the external REST backend that owns orders and payments.
type BackendConfig struct {
	BaseURL string `envconfig:"MODESTSTYLE_API_URL" default:"http://localhost:8000"`
}

type PaymentsConfig struct {
	// ForwardBaseURL is where the checkout adapters reach the forwarding routes.
	// Defaults to this process.
	ForwardBaseURL string `envconfig:"MODESTSTYLE_PAYMENT_FORWARD_URL"`
}

type CMSConfig struct {
	ProjectID  string        `envconfig:"MODESTSTYLE_SANITY_PROJECT_ID"`
	Dataset    string        `envconfig:"MODESTSTYLE_SANITY_DATASET" default:"production"`
	APIVersion string        `envconfig:"MODESTSTYLE_SANITY_API_VERSION" default:"2026-02-16"`
	UseCDN     bool          `envconfig:"MODESTSTYLE_SANITY_USE_CDN" default:"true"`
	Timeout    time.Duration `envconfig:"MODESTSTYLE_SANITY_TIMEOUT" default:"10s"`
}

// IsConfigured mirrors the storefront rule: a real project id, not a placeholder.
func (c CMSConfig) IsConfigured() bool {
	id := strings.TrimSpace(c.ProjectID)
	if id == "" || strings.HasPrefix(id, "your_") {
		return false
	}
	for _, r := range id {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
			return false
		}
	}
	return true
}

type CheckoutConfig struct {
	SessionTTL time.Duration `envconfig:"MODESTSTYLE_CHECKOUT_SESSION_TTL" default:"30m"`
}

// SessionConfig controls the anonymous client-session cookie that keys carts,
// wishlists and checkout drafts.
type SessionConfig struct {
	CookieName string        `envconfig:"MODESTSTYLE_SESSION_COOKIE" default:"ms_sid"`
	MaxAge     time.Duration `envconfig:"MODESTSTYLE_SESSION_MAX_AGE" default:"720h"`
	IdleTTL    time.Duration `envconfig:"MODESTSTYLE_SESSION_IDLE_TTL" default:"30m"`
}

type HousekeepingConfig struct {
	Enabled  bool          `envconfig:"MODESTSTYLE_HOUSEKEEPING_ENABLED" default:"true"`
	Interval time.Duration `envconfig:"MODESTSTYLE_HOUSEKEEPING_INTERVAL" default:"15m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		db.DSN = "modeststyle.db"
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
