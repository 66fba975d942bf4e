package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverRedis    = "redis"
)

// Notification channels accepted by NOTIFY_CHANNEL.
const (
	ChannelLog  = "log"
	ChannelSES  = "ses"
	ChannelNone = "none"
)

type PostgresConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Name)
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type Config struct {
	ServerPort string

	StoreDriver    string
	StoreNamespace string
	SQLitePath     string
	Postgres       PostgresConfig
	MySQLDSN       string
	Redis          RedisConfig

	CacheEnabled bool
	CacheTTL     time.Duration

	RateLimit  int
	RateWindow time.Duration

	Location         *time.Location
	ReminderInterval time.Duration

	NotifyChannel    string
	NotifyPermission string
	AWSRegion        string
	SESFromEmail     string
	SESToEmail       string

	AuthSecret         string
	AuthPassphraseHash string
	TokenTTL           time.Duration
}

// AuthEnabled reports whether the API requires a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.AuthSecret != ""
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:     getEnv("PORT", "8080"),
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
		StoreNamespace: getEnv("STORE_NAMESPACE", "habitcalendar_"),
		SQLitePath:     getEnv("SQLITE_PATH", "./habitcalendar.db"),
		Postgres: PostgresConfig{
			User:     getEnv("DB_USER", "kanso_user"),
			Password: getEnv("DB_PASSWORD", "secret"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "kanso_db"),
		},
		MySQLDSN: getEnv("MYSQL_DSN", ""),
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		NotifyChannel:      strings.ToLower(getEnv("NOTIFY_CHANNEL", ChannelLog)),
		NotifyPermission:   strings.ToLower(getEnv("NOTIFY_PERMISSION", "default")),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail:       getEnv("SES_FROM_EMAIL", ""),
		SESToEmail:         getEnv("SES_TO_EMAIL", ""),
		AuthSecret:         getEnv("AUTH_SECRET", ""),
		AuthPassphraseHash: getEnv("AUTH_PASSPHRASE_HASH", ""),
	}

	var err error
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.CacheEnabled, err = getBool("CACHE_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = getInt("RATE_LIMIT", 0); err != nil {
		return nil, err
	}
	if cfg.RateWindow, err = getDuration("RATE_WINDOW", time.Minute); err != nil {
		return nil, err
	}
	if cfg.ReminderInterval, err = getDuration("REMINDER_INTERVAL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	tz := getEnv("TIMEZONE", "Local")
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("config: TIMEZONE %q: %w", tz, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverSQLite, DriverPostgres, DriverRedis:
	case DriverMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("config: STORE_DRIVER=mysql requires MYSQL_DSN")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.NotifyChannel {
	case ChannelLog, ChannelSES, ChannelNone:
	default:
		return fmt.Errorf("config: unknown NOTIFY_CHANNEL %q", c.NotifyChannel)
	}

	if c.AuthEnabled() && c.AuthPassphraseHash == "" {
		return fmt.Errorf("config: AUTH_SECRET is set but AUTH_PASSPHRASE_HASH is empty")
	}
	if c.ReminderInterval <= 0 {
		return fmt.Errorf("config: REMINDER_INTERVAL must be positive")
	}
	return nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}
