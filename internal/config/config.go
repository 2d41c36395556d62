package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `env:"DB_HOST"`
	Port               string `env:"DB_PORT" env-default:"5432"`
	User               string `env:"DB_USER"`
	Password           string `env:"DB_PASSWORD"`
	Name               string `env:"DB_NAME"`
	SSLMode            string `env:"DB_SSLMODE" env-default:"disable"`
	MaxOpenConns       int    `env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns       int    `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetimeSec int    `env:"DB_CONN_MAX_LIFETIME_SEC" env-default:"300"`
}

// MinIOConfig holds object storage settings for founder pictures and startup logos.
type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET" env-default:"founderhub-images"`
	UseSSL    bool   `env:"MINIO_USE_SSL" env-default:"false"`
	// PresignTTLSec controls how long image URLs handed to clients stay valid.
	PresignTTLSec int `env:"MINIO_PRESIGN_TTL_SEC" env-default:"86400"`
}

// AuthConfig describes the external identity provider that issues bearer tokens.
type AuthConfig struct {
	Issuer   string `env:"AUTH_ISSUER"`
	Audience string `env:"AUTH_AUDIENCE"`
	JWKSURL  string `env:"AUTH_JWKS_URL"`
	// EmailClaim is the claim carrying the user's email. Auth0 access tokens
	// usually need a namespaced custom claim for this.
	EmailClaim string `env:"AUTH_EMAIL_CLAIM" env-default:"email"`
	// Unless RequireVerifiedEmail is off, the email only counts when
	// EmailVerifiedClaim is boolean true.
	EmailVerifiedClaim   string   `env:"AUTH_EMAIL_VERIFIED_CLAIM" env-default:"email_verified"`
	RequireVerifiedEmail bool     `env:"AUTH_REQUIRE_VERIFIED_EMAIL" env-default:"true"`
	AdminEmails          []string `env:"ADMIN_EMAILS" env-separator:","`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level    string `env:"LOG_LEVEL" env-default:"info"`
	Timezone string `env:"LOG_TZ" env-default:"UTC"`
}

// TracingConfig mirrors the standard OTEL_* variables the exporter setup reads.
type TracingConfig struct {
	Disabled    bool   `env:"OTEL_SDK_DISABLED" env-default:"false"`
	ServiceName string `env:"OTEL_SERVICE_NAME" env-default:"founderhub"`
	Protocol    string `env:"OTEL_EXPORTER_OTLP_PROTOCOL" env-default:"grpc"`
	Sampler     string `env:"OTEL_TRACES_SAMPLER" env-default:"parentbased_traceidratio"`
	SamplerArg  string `env:"OTEL_TRACES_SAMPLER_ARG" env-default:"1.0"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	// AppHost is the host written into the Swagger document; empty means the UI's own origin.
	AppHost     string `env:"APP_HOST"`
	Port        string `env:"PORT" env-default:"8080"`
	CORSOrigins string `env:"CORS_ORIGINS" env-default:"*"`
	// MaxUploadMB caps multipart bodies (images and CSV imports).
	MaxUploadMB int `env:"MAX_UPLOAD_MB" env-default:"8"`
	// Timezone is the community's home zone: bare dates and the calendar use it
	// unless a request passes tz.
	Timezone string `env:"APP_TZ" env-default:"UTC"`

	Database DatabaseConfig
	MinIO    MinIOConfig
	Auth     AuthConfig
	Log      LogConfig
	Tracing  TracingConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over defaults.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	cfg.Auth.AdminEmails = normalizeEmails(cfg.Auth.AdminEmails)
	return &cfg, nil
}

// Validate reports the first missing value the API server cannot start without.
func (c *AppConfig) Validate() error {
	switch {
	case c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "":
		return fmt.Errorf("database config: DB_HOST, DB_USER and DB_NAME are required")
	case c.Auth.Issuer == "" || c.Auth.Audience == "":
		return fmt.Errorf("auth config: AUTH_ISSUER and AUTH_AUDIENCE are required")
	case len(c.Auth.AdminEmails) == 0:
		return fmt.Errorf("auth config: ADMIN_EMAILS must list at least one address")
	}
	return nil
}

// KeySetURL returns the configured key set URL or the well-known location under the issuer.
func (a AuthConfig) KeySetURL() string {
	if a.JWKSURL != "" {
		return a.JWKSURL
	}
	return strings.TrimSuffix(a.Issuer, "/") + "/.well-known/jwks.json"
}

// Location resolves LOG_TZ, falling back to UTC when the zone is unknown.
func (l LogConfig) Location() *time.Location {
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Location resolves APP_TZ, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// PresignTTL returns the presigned URL lifetime.
func (m MinIOConfig) PresignTTL() time.Duration {
	if m.PresignTTLSec <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(m.PresignTTLSec) * time.Second
}

func normalizeEmails(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
