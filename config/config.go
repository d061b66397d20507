package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Booking  BookingConfig  `yaml:"booking"`
	Owner    OwnerConfig    `yaml:"owner"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type AppConfig struct {
	Port       string `yaml:"port"`
	GinMode    string `yaml:"gin_mode"`
	CORSOrigin string `yaml:"cors_origin"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"` // mysql | sqlite
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	Path            string        `yaml:"path"` // sqlite file
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"`
	TokenTTL          time.Duration `yaml:"token_ttl"`
	RequireOwnerToken bool          `yaml:"require_owner_token"`
	RatePerMinute     int           `yaml:"rate_per_minute"`
}

type BookingConfig struct {
	PlaceholderPassword string `yaml:"placeholder_password"`
	StaffDefaultPass    string `yaml:"staff_default_password"`
	StrictStatus        bool   `yaml:"strict_status"`
	TransactionalCreate bool   `yaml:"transactional_create"`
}

type OwnerConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Port:       "3000",
			GinMode:    "debug",
			CORSOrigin: "*",
		},
		Database: DatabaseConfig{
			Driver:          "mysql",
			Host:            "127.0.0.1",
			Port:            3306,
			User:            "laundry",
			Name:            "laundry",
			Path:            "laundry.db",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Auth: AuthConfig{
			TokenTTL:      24 * time.Hour,
			RatePerMinute: 20,
		},
		Booking: BookingConfig{
			PlaceholderPassword: "temp123",
			StaffDefaultPass:    "123456",
		},
		Owner: OwnerConfig{
			Email:    "owner@laundry.com",
			Password: "admin",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads .env (if present), then the YAML file at path (if set), then
// environment overrides. An empty path falls back to CONFIG_FILE.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("database.driver must be mysql or sqlite, got %q", c.Database.Driver)
	}
	if c.Database.MaxOpenConns <= 0 {
		return errors.New("database.max_open_conns must be positive")
	}
	if c.App.GinMode == "release" && c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret (JWT_SECRET) is required in release mode")
	}
	if c.Booking.PlaceholderPassword == "" {
		return errors.New("booking.placeholder_password must not be empty")
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.App.Port, "PORT")
	setString(&cfg.App.GinMode, "GIN_MODE")
	setString(&cfg.App.CORSOrigin, "CORS_ORIGIN")

	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.Path, "DB_PATH")
	setInt(&cfg.Database.MaxOpenConns, "DB_MAX_OPEN_CONNS")

	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setBool(&cfg.Auth.RequireOwnerToken, "REQUIRE_OWNER_TOKEN")
	setInt(&cfg.Auth.RatePerMinute, "AUTH_RATE_PER_MINUTE")

	setString(&cfg.Booking.PlaceholderPassword, "PLACEHOLDER_PASSWORD")
	setBool(&cfg.Booking.StrictStatus, "STRICT_STATUS")
	setBool(&cfg.Booking.TransactionalCreate, "TRANSACTIONAL_CREATE")

	setString(&cfg.Owner.Email, "OWNER_EMAIL")
	setString(&cfg.Owner.Password, "OWNER_PASSWORD")

	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Format, "LOG_FORMAT")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			*dst = b
		}
	}
}
