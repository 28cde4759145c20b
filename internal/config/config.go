package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port     int
	Env      string
	Database DatabaseConfig
	JWT      JWTConfig
	Log      LogConfig
	AMQP     AMQPConfig
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrateOnStart  bool
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type AMQPConfig struct {
	URL      string
	Exchange string
}

// legacyEnv lists the plain variable names the service has always read.
var legacyEnv = map[string]string{
	"database.url": "DB_CONNECTION_STRING",
	"jwt.secret":   "JWT_SECRET",
	"port":         "PORT",
	"app.env":      "APP_ENV",
	"amqp.url":     "AMQP_URL",
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.max_idle_conns", 25)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("database.migrate_on_start", true)
	v.SetDefault("jwt.ttl", 24*time.Hour)
	v.SetDefault("app.env", EnvDevelopment)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("amqp.exchange", "finance.events")
}

// Init prepares v to read the config file (if any), FT_ prefixed
// environment variables and the legacy variable names. A missing .env file
// is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	_ = godotenv.Load()

	SetDefaults(v)

	v.SetEnvPrefix("FT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, "FT_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func FromViper(v *viper.Viper) *Config {
	return &Config{
		Port: v.GetInt("port"),
		Env:  strings.ToLower(v.GetString("app.env")),
		Database: DatabaseConfig{
			URL:             v.GetString("database.url"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
			MigrateOnStart:  v.GetBool("database.migrate_on_start"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("jwt.secret"),
			TTL:    v.GetDuration("jwt.ttl"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		AMQP: AMQPConfig{
			URL:      v.GetString("amqp.url"),
			Exchange: v.GetString("amqp.exchange"),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Sprintf("port must be between 1 and 65535, got %d", c.Port))
	}
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		errs = append(errs, fmt.Sprintf("app.env must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Env))
	}
	if c.Database.URL == "" {
		errs = append(errs, "database.url (DB_CONNECTION_STRING) is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		errs = append(errs, "database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		errs = append(errs, "database.max_idle_conns must not be negative")
	}
	if c.JWT.Secret == "" {
		errs = append(errs, "jwt.secret (JWT_SECRET) is required")
	}
	if c.JWT.TTL <= 0 {
		errs = append(errs, "jwt.ttl must be positive")
	}
	if c.AMQP.URL != "" && c.AMQP.Exchange == "" {
		errs = append(errs, "amqp.exchange is required when amqp.url is set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
