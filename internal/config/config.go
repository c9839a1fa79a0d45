package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root application configuration, injected explicitly into
// every component instead of being read from ambient globals.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Email    EmailConfig    `yaml:"email"`
	Family   FamilyConfig   `yaml:"family"`
	Log      LogConfig      `yaml:"log"`

	// Environment is "production" or "development"; production disables the
	// mock dashboard fallback.
	Environment string `yaml:"environment" env:"ENVIRONMENT" env-default:"development"`
	Debug       bool   `yaml:"debug"       env:"DEBUG"       env-default:"false"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings. An empty DSN means no
// backend is configured: outside production the dashboard serves mock data.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds session and login-link settings.
type AuthConfig struct {
	JWTSecret    string        `yaml:"jwt_secret"     env:"AUTH_JWT_SECRET"`
	JWTIssuer    string        `yaml:"jwt_issuer"     env:"AUTH_JWT_ISSUER"    env-default:"family-dashboard"`
	SessionTTL   time.Duration `yaml:"session_ttl"    env:"AUTH_SESSION_TTL"   env-default:"24h"`
	LoginLinkTTL time.Duration `yaml:"login_link_ttl" env:"AUTH_LOGIN_LINK_TTL" env-default:"15m"`
	// AdminEmails is the comma-separated allow-list for login links.
	AdminEmails string `yaml:"admin_emails" env:"AUTH_ADMIN_EMAILS"`
}

// EmailConfig holds Resend settings for login-link delivery.
type EmailConfig struct {
	ResendAPIKey string `yaml:"resend_api_key" env:"EMAIL_RESEND_API_KEY"`
	From         string `yaml:"from"           env:"EMAIL_FROM"     env-default:"dashboard@localhost"`
	// BaseURL is the externally visible origin used to build login links.
	BaseURL string `yaml:"base_url" env:"EMAIL_BASE_URL" env-default:"http://localhost:8080"`
}

// FamilyConfig holds the household display settings.
type FamilyConfig struct {
	// Timezone is the fixed IANA zone "today" is computed in, independent of
	// the viewing device.
	Timezone string `yaml:"timezone" env:"FAMILY_TIMEZONE" env-default:"America/Chicago"`
	// WeekStartDay is 0=Sunday..6=Saturday.
	WeekStartDay int `yaml:"week_start_day" env:"FAMILY_WEEK_START_DAY" env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Production reports whether the production environment is configured
func (c *Config) Production() bool {
	return strings.EqualFold(c.Environment, "production")
}

// AdminEmailList splits the configured allow-list into normalized addresses
func (c *AuthConfig) AdminEmailList() []string {
	if c.AdminEmails == "" {
		return nil
	}
	parts := strings.Split(c.AdminEmails, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		if e := strings.ToLower(strings.TrimSpace(p)); e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

// Validate checks cross-field requirements cleanenv cannot express
func (c *Config) Validate() error {
	if c.Production() {
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required in production")
		}
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("auth.jwt_secret is required in production")
		}
	}
	if c.Family.WeekStartDay < 0 || c.Family.WeekStartDay > 6 {
		return fmt.Errorf("family.week_start_day must be between 0 and 6")
	}
	if _, err := time.LoadLocation(c.Family.Timezone); err != nil {
		return fmt.Errorf("family.timezone %q: %w", c.Family.Timezone, err)
	}
	return nil
}
